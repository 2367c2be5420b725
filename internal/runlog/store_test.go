package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"titlesync/internal/engine"
	"titlesync/internal/timeline"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleSummary(runID string, started time.Time) *engine.Summary {
	return &engine.Summary{
		RunID:        runID,
		Timeline:     "Episode 12",
		StartedAt:    started,
		Elapsed:      1500 * time.Millisecond,
		TotalMarkers: 3,
		Results: []engine.MarkerResult{
			{
				Marker:   timeline.Marker{Name: "::Main-StyleA", Frame: 100, Duration: 50},
				Track:    "::Main",
				Template: "StyleA",
				Status:   engine.StatusPlaced,
				Matched:  2,
				Placed:   2,
				Removed:  1,
			},
			{
				Marker: timeline.Marker{Name: "::Main", Frame: 200},
				Status: engine.StatusSkipped,
				Reason: engine.SkipMalformedName,
				Detail: "missing hyphen",
			},
		},
	}
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	if err := store.RecordRun(ctx, sampleSummary("run-1", base)); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.RecordRun(ctx, sampleSummary("run-2", base.Add(time.Minute))); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "run-2" || runs[1].ID != "run-1" {
		t.Fatalf("runs not newest-first: %s, %s", runs[0].ID, runs[1].ID)
	}
	first := runs[1]
	if first.Timeline != "Episode 12" || first.Recognized != 2 || first.Placed != 2 || first.Removed != 1 {
		t.Fatalf("run row = %+v", first)
	}
	if !first.StartedAt.Equal(base) {
		t.Fatalf("StartedAt = %v, want %v", first.StartedAt, base)
	}
	if first.Elapsed != 1500*time.Millisecond {
		t.Fatalf("Elapsed = %v", first.Elapsed)
	}
}

func TestMarkerResults(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, sampleSummary("run-1", time.Now().UTC())); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	records, err := store.MarkerResults(ctx, "run-1")
	if err != nil {
		t.Fatalf("MarkerResults: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].MarkerName != "::Main-StyleA" || records[0].Status != string(engine.StatusPlaced) {
		t.Fatalf("record 0 = %+v", records[0])
	}
	if records[1].Reason != string(engine.SkipMalformedName) || records[1].Detail != "missing hyphen" {
		t.Fatalf("record 1 = %+v", records[1])
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		summary := sampleSummary("", base.Add(time.Duration(i)*time.Second))
		summary.RunID = string(rune('a' + i))
		if err := store.RecordRun(ctx, summary); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}
	runs, err := store.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
}

func TestOpenReusesExistingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.RecordRun(context.Background(), sampleSummary("run-1", time.Now().UTC())); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.RecentRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs after reopen, want 1", len(runs))
	}
}
