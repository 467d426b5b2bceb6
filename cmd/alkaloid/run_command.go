package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"alkaloid/internal/batch"
	"alkaloid/internal/logging"
	"alkaloid/internal/ratelimit"
	"alkaloid/internal/resolve"
	"alkaloid/internal/services/pubchem"
	"alkaloid/internal/services/wikidata"
	"alkaloid/internal/smilescache"
	"alkaloid/internal/workset"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var maxItems int
	var worksetPath string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process the work set, resuming past completed items",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				LogDir: cfg.Paths.LogDir,
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			limiter := ratelimit.New()
			limiter.SetInterval(pubchem.SourceID, time.Duration(cfg.PubChem.MinIntervalMS)*time.Millisecond)
			limiter.SetInterval(wikidata.SourceID, time.Duration(cfg.Wikidata.MinIntervalMS)*time.Millisecond)

			pubchemClient, err := pubchem.New(
				cfg.PubChem.BaseURL,
				time.Duration(cfg.PubChem.TimeoutSeconds)*time.Second,
				pubchem.WithLimiter(limiter),
			)
			if err != nil {
				return fmt.Errorf("pubchem client: %w", err)
			}

			fetcher := pubchem.Fetcher(pubchemClient)
			if cfg.Batch.CacheLookups && !noCache && cfg.Paths.CacheFile != "" {
				cache, err := smilescache.Open(cfg.Paths.CacheFile)
				if err != nil {
					logger.Warn("lookup cache unavailable, continuing without it", logging.Error(err))
				} else {
					defer cache.Close()
					fetcher = smilescache.WrapFetcher(fetcher, cache, logger)
				}
			}

			wikidataClient, err := wikidata.New(
				cfg.Wikidata.SPARQLURL,
				cfg.Wikidata.EntityURL,
				cfg.Wikidata.UserAgent,
				time.Duration(cfg.Wikidata.TimeoutSeconds)*time.Second,
				wikidata.WithLimiter(limiter),
			)
			if err != nil {
				return fmt.Errorf("wikidata client: %w", err)
			}

			path := strings.TrimSpace(worksetPath)
			if path == "" {
				path = cfg.Paths.Workset
			}
			items, err := workset.Load(path)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Work set is empty; nothing to do")
				return nil
			}

			opts := batch.Options{
				OutputPath: cfg.Paths.Output,
				ExportPath: cfg.Paths.Export,
				MaxItems:   cfg.Batch.MaxItems,
				ItemDelay:  time.Duration(cfg.Batch.ItemDelayMS) * time.Millisecond,
			}
			if maxItems > 0 {
				opts.MaxItems = maxItems
			}
			opts.Progress = newProgressReporter(len(items), opts.MaxItems)

			resolver := resolve.New(logger, resolve.PubChemSources(fetcher)...)
			collector := wikidata.NewCollector(wikidataClient, logger)
			runner := batch.NewRunner(resolver, collector, logger)

			stats, err := runner.Run(signalCtx, items, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxItems, "max-items", 0, "Process at most this many work items (0 = all)")
	cmd.Flags().StringVar(&worksetPath, "workset", "", "Work set CSV path (defaults to the configured path)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the local lookup cache for this run")
	return cmd
}

// newProgressReporter returns a terminal progress bar callback when stderr
// is a TTY, and nil otherwise so runs under cron or redirection stay quiet.
func newProgressReporter(total, maxItems int) batch.ProgressFunc {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	if maxItems > 0 && maxItems < total {
		total = maxItems
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("enriching"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func(done, _ int, item workset.Item, outcome string) {
		bar.Describe(fmt.Sprintf("%s (%s)", item.Label, outcome))
		_ = bar.Set(done)
	}
}

func renderSummary(stats batch.Stats) string {
	rows := [][]string{
		{"Processed", strconv.Itoa(stats.Total)},
		{"Skipped (already complete)", strconv.Itoa(stats.Skipped)},
		{"Full", strconv.Itoa(stats.Full)},
		{"Degraded", strconv.Itoa(stats.Degraded)},
		{"Unresolved", strconv.Itoa(stats.Unresolved)},
		{"Failed", strconv.Itoa(stats.Failed)},
		{"Unique reference entries", strconv.Itoa(stats.UniqueEntries)},
		{"Distinct compounds matched", strconv.Itoa(stats.Compounds)},
	}
	return renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
