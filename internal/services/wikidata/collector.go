package wikidata

import (
	"context"
	"log/slog"

	"alkaloid/internal/aggregate"
	"alkaloid/internal/logging"
	"alkaloid/internal/workset"
)

// Collector gathers raw literature reference entries for a work item. It
// queries by InChIKey when the item has one, then by every synonym, and
// enriches each distinct reference QID through the EntityData API. Failed
// queries contribute nothing; the caller sees whatever the surviving queries
// produced.
type Collector struct {
	client *Client
	logger *slog.Logger
}

// NewCollector creates a Collector on top of the given client.
func NewCollector(client *Client, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Collector{
		client: client,
		logger: logging.NewComponentLogger(logger, "wikidata"),
	}
}

// Collect returns raw entries for the item, in query order. The only error
// it surfaces is context cancellation; per-query failures are logged and
// skipped.
func (c *Collector) Collect(ctx context.Context, item workset.Item) ([]aggregate.Entry, error) {
	var rows []Row

	if item.InChIKey != "" {
		found, err := c.client.ReferencesByInChIKey(ctx, item.InChIKey)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("inchikey reference query failed",
				logging.String("item", item.Key),
				logging.Error(err))
		}
		rows = append(rows, found...)
	}

	for _, synonym := range item.Synonyms {
		found, err := c.client.ReferencesByLabel(ctx, synonym)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("label reference query failed",
				logging.String("item", item.Key),
				logging.String("label", synonym),
				logging.Error(err))
			continue
		}
		rows = append(rows, found...)
	}

	return c.enrich(ctx, item, rows)
}

func (c *Collector) enrich(ctx context.Context, item workset.Item, rows []Row) ([]aggregate.Entry, error) {
	// Reference entities repeat across rows; fetch each QID once.
	metadata := make(map[string]ReferenceMetadata)

	entries := make([]aggregate.Entry, 0, len(rows))
	for _, row := range rows {
		entry := aggregate.Entry{
			Label:    row.CompoundLabel,
			SMILES:   row.SMILES,
			InChIKey: row.InChIKey,
		}
		if row.ReferenceQID != "" {
			meta, ok := metadata[row.ReferenceQID]
			if !ok {
				fetched, err := c.client.ReferenceMetadata(ctx, row.ReferenceQID)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					c.logger.Debug("reference metadata lookup failed",
						logging.String("item", item.Key),
						logging.String("reference", row.ReferenceQID),
						logging.Error(err))
				}
				meta = fetched
				metadata[row.ReferenceQID] = meta
			}
			entry.Title = meta.Title
			entry.DOI = meta.DOI
			entry.Published = meta.Published
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
