package resolve

import (
	"context"
	"errors"
	"log/slog"

	"alkaloid/internal/logging"
	"alkaloid/internal/services"
	"alkaloid/internal/workset"
)

// Source is one lookup backend in the fallback chain. Implementations decide
// whether an item gives them anything to query and how to grade what came
// back.
type Source interface {
	Name() string
	Applicable(item workset.Item) bool
	Lookup(ctx context.Context, item workset.Item) (string, error)
	Classify(value string) Tier
}

// Resolver drives an ordered list of sources per item.
type Resolver struct {
	sources []Source
	logger  *slog.Logger
}

// New creates a Resolver consulting the given sources in order.
func New(logger *slog.Logger, sources ...Source) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		sources: sources,
		logger:  logging.NewComponentLogger(logger, "resolve"),
	}
}

// Resolve walks the source chain for one item. It never fails; every source
// error collapses to "this source contributed nothing".
func (r *Resolver) Resolve(ctx context.Context, item workset.Item) Result {
	if !item.HasHints() {
		return Result{Tier: TierUnresolved}
	}

	var best *Result
	for _, source := range r.sources {
		if ctx.Err() != nil {
			break
		}
		if !source.Applicable(item) {
			continue
		}

		value, err := source.Lookup(ctx, item)
		if err != nil {
			r.logAttemptFailure(source.Name(), item.Key, err)
			continue
		}

		switch tier := source.Classify(value); tier {
		case TierFull:
			return Result{Value: value, Tier: TierFull, Source: source.Name()}
		case TierDegraded:
			if best == nil {
				best = &Result{Value: value, Tier: TierDegraded, Source: source.Name()}
			}
		}
	}

	if best != nil {
		return *best
	}
	return Result{Tier: TierUnresolved}
}

func (r *Resolver) logAttemptFailure(source, key string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		r.logger.Debug("source had no match",
			logging.String("source", source),
			logging.String("item", key))
		return
	}
	r.logger.Warn("source lookup failed",
		logging.String("source", source),
		logging.String("item", key),
		logging.Error(err))
}
