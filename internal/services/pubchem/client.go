package pubchem

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

// SourceID identifies PubChem to the rate limiter.
const SourceID = "pubchem"

// Fetcher defines the property lookups used by the resolver sources.
type Fetcher interface {
	SMILESByInChIKey(ctx context.Context, inchiKey string) (string, error)
	SMILESByName(ctx context.Context, name string) (string, error)
}

// Client provides access to the PubChem PUG REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Waiter
}

var _ Fetcher = (*Client)(nil)

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

// New creates a PubChem client.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("pubchem base url required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SMILESByInChIKey fetches the isomeric SMILES for a compound by InChIKey.
func (c *Client) SMILESByInChIKey(ctx context.Context, inchiKey string) (string, error) {
	inchiKey = strings.TrimSpace(inchiKey)
	if inchiKey == "" {
		return "", services.Wrap(services.ErrNotFound, "pubchem", "inchikey", "empty key", nil)
	}
	return c.property(ctx, "inchikey", inchiKey)
}

// SMILESByName fetches the isomeric SMILES for a compound by name.
func (c *Client) SMILESByName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", services.Wrap(services.ErrNotFound, "pubchem", "name", "empty name", nil)
	}
	return c.property(ctx, "name", name)
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID            int64  `json:"CID"`
			SMILES         string `json:"SMILES"`
			IsomericSMILES string `json:"IsomericSMILES"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

func (c *Client) property(ctx context.Context, namespace, identifier string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, SourceID); err != nil {
			return "", services.Wrap(services.ErrSourceUnavailable, "pubchem", namespace, "rate limit wait", err)
		}
	}

	endpoint := fmt.Sprintf("%s/compound/%s/%s/property/IsomericSMILES/JSON",
		c.baseURL, namespace, url.PathEscape(identifier))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", services.Wrap(services.ErrSourceUnavailable, "pubchem", namespace, "build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrSourceUnavailable, "pubchem", namespace, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", services.Wrap(services.ErrNotFound, "pubchem", namespace, identifier, nil)
	case resp.StatusCode != http.StatusOK:
		return "", services.Wrap(services.ErrSourceUnavailable, "pubchem", namespace,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", services.Wrap(services.ErrSourceUnavailable, "pubchem", namespace, "decode response", err)
	}
	if len(payload.PropertyTable.Properties) == 0 {
		return "", services.Wrap(services.ErrNotFound, "pubchem", namespace, identifier, nil)
	}

	// Newer PUG deployments return the requested property under "SMILES";
	// older ones keep the "IsomericSMILES" key.
	prop := payload.PropertyTable.Properties[0]
	smiles := strings.TrimSpace(prop.IsomericSMILES)
	if smiles == "" {
		smiles = strings.TrimSpace(prop.SMILES)
	}
	if smiles == "" {
		return "", services.Wrap(services.ErrNotFound, "pubchem", namespace, "empty property", nil)
	}
	return smiles, nil
}
