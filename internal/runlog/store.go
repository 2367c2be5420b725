package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"titlesync/internal/engine"
)

// Store manages the run journal backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one journal row.
type Run struct {
	ID           string
	Timeline     string
	StartedAt    time.Time
	Elapsed      time.Duration
	DryRun       bool
	TotalMarkers int
	Recognized   int
	Placed       int
	Removed      int
}

// MarkerRecord is one per-marker outcome of a journaled run.
type MarkerRecord struct {
	MarkerName        string
	Frame             int64
	Track             string
	Template          string
	Status            string
	Reason            string
	Detail            string
	Matched           int
	Placed            int
	Removed           int
	PlacementFailures int
	TextFailures      int
}

// Open initializes or connects to the journal database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location backing the journal.
func (s *Store) Path() string {
	return s.path
}

// RecordRun journals one run summary with its per-marker results.
func (s *Store) RecordRun(ctx context.Context, summary *engine.Summary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, timeline, started_at, elapsed_ms, dry_run,
            total_markers, recognized, placed, removed
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID,
		summary.Timeline,
		summary.StartedAt.UTC().Format(time.RFC3339Nano),
		summary.Elapsed.Milliseconds(),
		boolToInt(summary.DryRun),
		summary.TotalMarkers,
		summary.Recognized(),
		summary.Placed(),
		summary.Removed(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for position, result := range summary.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO marker_results (
                run_id, position, marker_name, frame, track, template,
                status, reason, detail, matched, placed, removed,
                placement_failures, text_failures
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			summary.RunID,
			position,
			result.Marker.Name,
			result.Marker.Frame,
			result.Track,
			result.Template,
			string(result.Status),
			string(result.Reason),
			result.Detail,
			result.Matched,
			result.Placed,
			result.Removed,
			result.PlacementFailures,
			result.TextFailures,
		)
		if err != nil {
			return fmt.Errorf("insert marker result %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}
	return nil
}

// RecentRuns returns the newest runs first, up to limit (0 means 20).
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timeline, started_at, elapsed_ms, dry_run,
                total_markers, recognized, placed, removed
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			startedAt string
			elapsedMS int64
			dryRun    int
		)
		if err := rows.Scan(&run.ID, &run.Timeline, &startedAt, &elapsedMS, &dryRun,
			&run.TotalMarkers, &run.Recognized, &run.Placed, &run.Removed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", startedAt, err)
		}
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		run.DryRun = dryRun != 0
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// MarkerResults returns the per-marker outcomes of one run in timeline order.
func (s *Store) MarkerResults(ctx context.Context, runID string) ([]MarkerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT marker_name, frame, track, template, status, reason, detail,
                matched, placed, removed, placement_failures, text_failures
         FROM marker_results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query marker results: %w", err)
	}
	defer rows.Close()

	var records []MarkerRecord
	for rows.Next() {
		var rec MarkerRecord
		if err := rows.Scan(&rec.MarkerName, &rec.Frame, &rec.Track, &rec.Template,
			&rec.Status, &rec.Reason, &rec.Detail, &rec.Matched, &rec.Placed,
			&rec.Removed, &rec.PlacementFailures, &rec.TextFailures); err != nil {
			return nil, fmt.Errorf("scan marker result: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
