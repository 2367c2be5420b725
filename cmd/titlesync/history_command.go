package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"titlesync/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent synchronization runs from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs journaled yet")
				return nil
			}
			headers := []string{"Run", "Timeline", "Started", "Mode", "Markers", "Placed", "Removed"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				mode := "live"
				if run.DryRun {
					mode = "dry run"
				}
				rows = append(rows, []string{
					shortRunID(run.ID),
					run.Timeline,
					run.StartedAt.UTC().Format("2006-01-02 15:04"),
					mode,
					fmt.Sprintf("%d/%d", run.Recognized, run.TotalMarkers),
					fmt.Sprintf("%d", run.Placed),
					fmt.Sprintf("%d", run.Removed),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit runs as JSON")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the per-marker results of one journaled run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openJournal(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			runID, err := resolveRunID(cmd, store, args[0])
			if err != nil {
				return err
			}
			records, err := store.MarkerResults(cmd.Context(), runID)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No marker results for run %s\n", runID)
				return nil
			}
			headers := []string{"Frame", "Marker", "Track", "Template", "Status", "Matched", "Placed", "Removed", "Detail"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				detail := rec.Detail
				if detail == "" && rec.Reason != "" {
					detail = rec.Reason
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", rec.Frame),
					rec.MarkerName,
					rec.Track,
					rec.Template,
					formatStatusLabel(rec.Status),
					fmt.Sprintf("%d", rec.Matched),
					fmt.Sprintf("%d", rec.Placed),
					fmt.Sprintf("%d", rec.Removed),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, markerResultAligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit marker results as JSON")
	return cmd
}

func openJournal(ctx *commandContext) (*runlog.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Journal.Enabled {
		return nil, errors.New("run journal is disabled; set journal.enabled = true in the config")
	}
	return runlog.Open(cfg.Journal.Path)
}

// resolveRunID accepts either a full run ID or the shortened prefix the
// history table prints.
func resolveRunID(cmd *cobra.Command, store *runlog.Store, arg string) (string, error) {
	if len(arg) >= 36 {
		return arg, nil
	}
	runs, err := store.RecentRuns(cmd.Context(), 0)
	if err != nil {
		return "", err
	}
	for _, run := range runs {
		if shortRunID(run.ID) == arg || run.ID == arg {
			return run.ID, nil
		}
	}
	return "", fmt.Errorf("no journaled run matches %q", arg)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
