package wikidata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alkaloid/internal/ratelimit"
	"alkaloid/internal/services"
)

// SourceID identifies Wikidata to the rate limiter. SPARQL and EntityData
// calls share one budget; they hit the same operator.
const SourceID = "wikidata"

// Row is one compound/reference binding returned by the SPARQL service.
type Row struct {
	CompoundQID   string
	CompoundLabel string
	SMILES        string
	InChIKey      string
	ReferenceQID  string
}

// Client provides access to the Wikidata SPARQL and EntityData endpoints.
type Client struct {
	sparqlURL  string
	entityURL  string
	userAgent  string
	httpClient *http.Client
	limiter    ratelimit.Waiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLimiter spaces out calls through the shared process-wide limiter.
func WithLimiter(limiter ratelimit.Waiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func (c *Client) wait(ctx context.Context, operation string) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx, SourceID); err != nil {
		return services.Wrap(services.ErrSourceUnavailable, "wikidata", operation, "rate limit wait", err)
	}
	return nil
}

// New creates a Wikidata client.
func New(sparqlURL, entityURL, userAgent string, timeout time.Duration, opts ...Option) (*Client, error) {
	sparqlURL = strings.TrimSpace(sparqlURL)
	if sparqlURL == "" {
		return nil, errors.New("wikidata sparql url required")
	}
	entityURL = strings.TrimSpace(entityURL)
	if entityURL == "" {
		return nil, errors.New("wikidata entity url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &Client{
		sparqlURL:  sparqlURL,
		entityURL:  strings.TrimRight(entityURL, "/"),
		userAgent:  strings.TrimSpace(userAgent),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ReferencesByInChIKey returns occurrence references for the compound with
// the given InChIKey (wdt:P235).
func (c *Client) ReferencesByInChIKey(ctx context.Context, inchiKey string) ([]Row, error) {
	inchiKey = strings.TrimSpace(inchiKey)
	if inchiKey == "" {
		return nil, services.Wrap(services.ErrNotFound, "wikidata", "sparql", "empty inchikey", nil)
	}
	selector := fmt.Sprintf(`?compound wdt:P235 %s .`, sparqlString(inchiKey))
	return c.referenceQuery(ctx, selector)
}

// ReferencesByLabel returns occurrence references for compounds whose English
// label matches exactly.
func (c *Client) ReferencesByLabel(ctx context.Context, label string) ([]Row, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, services.Wrap(services.ErrNotFound, "wikidata", "sparql", "empty label", nil)
	}
	selector := fmt.Sprintf(`?compound rdfs:label %s@en .`, sparqlString(label))
	return c.referenceQuery(ctx, selector)
}

func (c *Client) referenceQuery(ctx context.Context, selector string) ([]Row, error) {
	query := fmt.Sprintf(`
SELECT ?compound ?compoundLabel ?smiles ?inchikey ?reference WHERE {
  %s
  ?compound p:P703 ?statement .
  OPTIONAL { ?statement prov:wasDerivedFrom ?refnode .
             ?refnode pr:P248 ?reference . }
  OPTIONAL { ?compound wdt:P233 ?smiles . }
  OPTIONAL { ?compound wdt:P235 ?inchikey . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en" . }
}
ORDER BY ?compoundLabel`, selector)

	bindings, err := c.runQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(bindings))
	for _, binding := range bindings {
		rows = append(rows, Row{
			CompoundQID:   qidFromURI(binding.value("compound")),
			CompoundLabel: binding.value("compoundLabel"),
			SMILES:        binding.value("smiles"),
			InChIKey:      binding.value("inchikey"),
			ReferenceQID:  qidFromURI(binding.value("reference")),
		})
	}
	return rows, nil
}

type sparqlBinding map[string]struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (b sparqlBinding) value(name string) string {
	return strings.TrimSpace(b[name].Value)
}

type sparqlResponse struct {
	Results struct {
		Bindings []sparqlBinding `json:"bindings"`
	} `json:"results"`
}

func (c *Client) runQuery(ctx context.Context, query string) ([]sparqlBinding, error) {
	if err := c.wait(ctx, "sparql"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sparqlURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "wikidata", "sparql", "build request", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "wikidata", "sparql", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrSourceUnavailable, "wikidata", "sparql",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "wikidata", "sparql", "decode response", err)
	}
	return payload.Results.Bindings, nil
}

// sparqlString quotes a literal for inclusion in a SPARQL query.
func sparqlString(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)
	return `"` + replacer.Replace(value) + `"`
}

func qidFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}
