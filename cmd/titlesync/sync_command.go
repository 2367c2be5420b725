package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"titlesync/internal/engine"
	"titlesync/internal/host/bridge"
	"titlesync/internal/logging"
	"titlesync/internal/runlog"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Place overlays for every convention marker on the open timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lockPath := filepath.Join(cfg.Paths.LogDir, "titlesync.lock")
			lock := flock.New(lockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another titlesync run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, "titlesync.log")},
			})
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			var summary *engine.Summary
			err = ctx.withClient(func(client *bridge.Client) error {
				controller := engine.New(client, engine.Options{
					Prefix:         cfg.Markers.Prefix,
					SkipHiddenText: cfg.Overlays.SkipHiddenTextAttributes,
					DryRun:         dryRun,
					Logger:         logger,
				})
				var runErr error
				summary, runErr = controller.Run(cmd.Context())
				return runErr
			})
			if err != nil {
				return err
			}

			if cfg.Journal.Enabled && !dryRun {
				if journalErr := recordRun(cmd.Context(), cfg.Journal.Path, summary); journalErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: journal write failed: %v\n", journalErr)
				}
			}

			if jsonOutput {
				return writeJSON(cmd, buildSyncReport(summary))
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSummaryLines(summary, colorize) {
				fmt.Fprintln(out, line)
			}
			if summary.NeedsGuidance() {
				for _, line := range renderGuidance(cfg.Markers.Prefix) {
					fmt.Fprintln(out, line)
				}
				return nil
			}
			if rows := buildMarkerRows(summary.Results); len(rows) > 0 {
				fmt.Fprintln(out, renderTable(markerResultHeaders, rows, markerResultAligns))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan placements without modifying the timeline")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	return cmd
}

func recordRun(ctx context.Context, path string, summary *engine.Summary) error {
	store, err := runlog.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordRun(ctx, summary)
}
