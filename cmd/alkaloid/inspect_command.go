package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alkaloid/internal/report"
	"alkaloid/internal/workset"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show which work items the output already covers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			items, err := workset.Load(cfg.Paths.Workset)
			if err != nil {
				return err
			}
			completed, err := report.CompletionSet(cfg.Paths.Output)
			if err != nil {
				return fmt.Errorf("scan output: %w", err)
			}

			rows := make([][]string, 0, len(items))
			done := 0
			for _, item := range items {
				_, ok := completed[item.Key]
				if ok {
					done++
				}
				if pendingOnly && ok {
					continue
				}
				status := "pending"
				if ok {
					status = "complete"
				}
				hints := item.InChIKey
				if hints == "" {
					hints = strings.Join(item.Synonyms, ", ")
				}
				rows = append(rows, []string{item.Key, item.Label, hints, status})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Key", "Compound", "Hints", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d of %d items complete\n", done, len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "List only items not yet in the output")
	return cmd
}
