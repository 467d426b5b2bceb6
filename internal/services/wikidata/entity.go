package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"alkaloid/internal/services"
)

// ReferenceMetadata holds the bibliographic fields extracted from a reference
// entity.
type ReferenceMetadata struct {
	DOI       string
	Title     string
	Published string
}

// Wikidata property identifiers for bibliographic claims.
const (
	propDOI             = "P356"
	propTitle           = "P1476"
	propPublicationDate = "P577"
)

// ReferenceMetadata fetches DOI, title, and publication date for a reference
// QID through the EntityData JSON API.
func (c *Client) ReferenceMetadata(ctx context.Context, qid string) (ReferenceMetadata, error) {
	qid = strings.TrimSpace(qid)
	if qid == "" {
		return ReferenceMetadata{}, services.Wrap(services.ErrNotFound, "wikidata", "entitydata", "empty qid", nil)
	}

	if err := c.wait(ctx, "entitydata"); err != nil {
		return ReferenceMetadata{}, err
	}

	endpoint := fmt.Sprintf("%s/%s.json", c.entityURL, qid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ReferenceMetadata{}, services.Wrap(services.ErrSourceUnavailable, "wikidata", "entitydata", "build request", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ReferenceMetadata{}, services.Wrap(services.ErrSourceUnavailable, "wikidata", "entitydata", "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ReferenceMetadata{}, services.Wrap(services.ErrNotFound, "wikidata", "entitydata", qid, nil)
	case resp.StatusCode != http.StatusOK:
		return ReferenceMetadata{}, services.Wrap(services.ErrSourceUnavailable, "wikidata", "entitydata",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload entityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ReferenceMetadata{}, services.Wrap(services.ErrSourceUnavailable, "wikidata", "entitydata", "decode response", err)
	}

	entity, ok := payload.Entities[qid]
	if !ok {
		return ReferenceMetadata{}, services.Wrap(services.ErrNotFound, "wikidata", "entitydata", qid, nil)
	}

	return ReferenceMetadata{
		DOI:       entity.claimString(propDOI),
		Title:     entity.claimMonolingualText(propTitle),
		Published: entity.claimTime(propPublicationDate),
	}, nil
}

type entityResponse struct {
	Entities map[string]entity `json:"entities"`
}

type entity struct {
	Claims map[string][]claim `json:"claims"`
}

type claim struct {
	MainSnak struct {
		DataValue struct {
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

func (e entity) firstClaimValue(property string) json.RawMessage {
	claims := e.Claims[property]
	if len(claims) == 0 {
		return nil
	}
	return claims[0].MainSnak.DataValue.Value
}

func (e entity) claimString(property string) string {
	raw := e.firstClaimValue(property)
	if raw == nil {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

func (e entity) claimMonolingualText(property string) string {
	raw := e.firstClaimValue(property)
	if raw == nil {
		return ""
	}
	var value struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		// Some older statements store the title as a bare string.
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return ""
		}
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(value.Text)
}

func (e entity) claimTime(property string) string {
	raw := e.firstClaimValue(property)
	if raw == nil {
		return ""
	}
	var value struct {
		Time string `json:"time"`
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value.Time)
}
