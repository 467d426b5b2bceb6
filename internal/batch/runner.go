package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"alkaloid/internal/aggregate"
	"alkaloid/internal/logging"
	"alkaloid/internal/ratelimit"
	"alkaloid/internal/report"
	"alkaloid/internal/resolve"
	"alkaloid/internal/services"
	"alkaloid/internal/workset"
)

// Resolver resolves one item's canonical identifier. Implementations never
// fail; the worst outcome is an unresolved result.
type Resolver interface {
	Resolve(ctx context.Context, item workset.Item) resolve.Result
}

// Collector gathers raw reference entries for one item.
type Collector interface {
	Collect(ctx context.Context, item workset.Item) ([]aggregate.Entry, error)
}

// ProgressFunc receives advisory per-item updates: how many items of the run
// are finished, and how the latest one ended.
type ProgressFunc func(done, total int, item workset.Item, outcome string)

// Options configures a single run.
type Options struct {
	OutputPath string
	ExportPath string
	MaxItems   int
	ItemDelay  time.Duration
	Progress   ProgressFunc
}

// Runner drives the enrichment batch.
type Runner struct {
	resolver  Resolver
	collector Collector
	logger    *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(resolver Resolver, collector Collector, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		resolver:  resolver,
		collector: collector,
		logger:    logging.NewComponentLogger(logger, "batch"),
	}
}

// Run processes the work set in order, resuming past items already present
// in the output. It returns the statistics for this run; the returned error
// is non-nil only for fatal conditions (unusable output, cancellation), never
// for individual item failures.
func (r *Runner) Run(ctx context.Context, items []workset.Item, opts Options) (Stats, error) {
	stats := Stats{}

	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		items = items[:opts.MaxItems]
	}

	completed, err := report.CompletionSet(opts.OutputPath)
	if err != nil {
		return stats, services.Wrap(services.ErrConfiguration, "batch", "checkpoint", "scan output", err)
	}

	writer, err := report.OpenAppend(opts.OutputPath, len(items), time.Now())
	if err != nil {
		return stats, err
	}
	defer writer.Close()

	logger := r.logger.With(logging.String("run_id", uuid.NewString()))
	logger.Info("run started",
		logging.Int("items", len(items)),
		logging.Int("already_completed", len(completed)))

	rows := make([]ExportRow, 0, len(items))
	for idx, item := range items {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		if _, done := completed[item.Key]; done {
			stats.Skipped++
			logger.Debug("item already completed, skipping",
				logging.String("item", item.Key),
				logging.String("label", item.Label))
			r.report(opts.Progress, idx+1, len(items), item, "skipped")
			continue
		}

		result, entries, err := r.processItem(ctx, item)
		// A cancelled context can surface as an aborted resolver chain
		// rather than an error. Nothing may be appended for this item:
		// a terminated section would checkpoint it as done and the next
		// run would never retry it.
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		var section, outcome string
		switch {
		case err != nil:
			stats.recordFailure()
			logger.Error("item processing failed, continuing",
				logging.String("item", item.Key),
				logging.String("label", item.Label),
				logging.Error(err))
			section = report.FailedSection(item, err)
			outcome = "failed"
			rows = append(rows, ExportRow{Item: item, Result: resolve.Result{Tier: resolve.TierUnresolved}})
		default:
			compounds := aggregate.CountLabels(entries)
			stats.record(result.Tier)
			stats.UniqueEntries += len(entries)
			stats.Compounds += compounds
			logger.Info("item processed",
				logging.String("item", item.Key),
				logging.String("label", item.Label),
				logging.String("tier", result.Tier.String()),
				logging.String("source", result.Source),
				logging.Int("entries", len(entries)),
				logging.Int("compounds", compounds))
			section = report.Section(item, result, entries)
			outcome = result.Tier.String()
			rows = append(rows, ExportRow{Item: item, Result: result})
		}

		if err := writer.AppendSection(section); err != nil {
			return stats, err
		}
		r.report(opts.Progress, idx+1, len(items), item, outcome)

		if opts.ItemDelay > 0 {
			if err := ratelimit.SleepWithContext(ctx, opts.ItemDelay); err != nil {
				return stats, err
			}
		}
	}

	if opts.ExportPath != "" && len(rows) > 0 {
		if err := WriteExport(opts.ExportPath, rows); err != nil {
			return stats, err
		}
	}

	logger.Info("run finished",
		logging.Int("processed", stats.Total),
		logging.Int("skipped", stats.Skipped),
		logging.Int("full", stats.Full),
		logging.Int("degraded", stats.Degraded),
		logging.Int("unresolved", stats.Unresolved),
		logging.Int("failed", stats.Failed),
		logging.Int("unique_entries", stats.UniqueEntries),
		logging.Int("compounds", stats.Compounds))
	return stats, nil
}

func (r *Runner) processItem(ctx context.Context, item workset.Item) (result resolve.Result, entries []aggregate.Entry, err error) {
	// A single malformed record must never abort the run; panics inside
	// item handling are demoted to isolated failures.
	defer func() {
		if rec := recover(); rec != nil {
			err = services.Wrap(services.ErrItemFault, "batch", "process", fmt.Sprintf("panic: %v", rec), nil)
		}
	}()

	raw, err := r.collector.Collect(ctx, item)
	if err != nil {
		return resolve.Result{}, nil, services.Wrap(services.ErrItemFault, "batch", "collect", item.Key, err)
	}
	entries = aggregate.Deduplicate(raw)
	result = r.resolver.Resolve(ctx, item)
	return result, entries, nil
}

func (r *Runner) report(progress ProgressFunc, done, total int, item workset.Item, outcome string) {
	if progress == nil {
		return
	}
	progress(done, total, item, outcome)
}
