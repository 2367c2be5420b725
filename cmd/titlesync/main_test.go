package main

import (
	"encoding/json"
	"strings"
	"testing"

	"titlesync/internal/testsupport"
)

func TestCLISyncPlacesOverlays(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"sync"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "Episode 12")
	requireContains(t, out, "2 overlays")
	requireContains(t, out, "::Main-StyleA")

	if got := len(env.fake.TextWrites); got != 2 {
		t.Fatalf("expected 2 text writes, got %d", got)
	}
	if got := len(env.fake.VideoItems(2)); got != 2 {
		t.Fatalf("expected 2 overlays on video track 2, got %d", got)
	}
}

func TestCLISyncDryRunLeavesTimelineUntouched(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"sync", "--dry-run"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("sync --dry-run: %v", err)
	}
	requireContains(t, out, "dry run")

	if got := len(env.fake.TextWrites); got != 0 {
		t.Fatalf("dry run wrote text %d times", got)
	}
	if got := len(env.fake.VideoItems(2)); got != 0 {
		t.Fatalf("dry run placed %d overlays", got)
	}
}

func TestCLISyncJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"sync", "--json"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("sync --json: %v", err)
	}

	var report syncReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse sync JSON: %v\noutput: %s", err, out)
	}
	if report.Timeline != "Episode 12" {
		t.Fatalf("timeline = %q", report.Timeline)
	}
	if report.Placed != 2 || report.Recognized != 1 {
		t.Fatalf("placed = %d recognized = %d", report.Placed, report.Recognized)
	}
	if len(report.Markers) != 1 || report.Markers[0].Status != "placed" {
		t.Fatalf("markers = %+v", report.Markers)
	}
}

func TestCLISyncPrintsGuidanceWhenNothingRecognized(t *testing.T) {
	fake := seededFakeHost()
	fake.MarkerList = fake.MarkerList[1:] // only the unrelated chapter marker
	env := setupCLITestEnv(t, fake)

	out, _, err := runCLI(t, []string{"sync"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "No markers matched the naming convention")
	requireContains(t, out, "::Main")
}

func TestCLISyncFailsWithoutTimeline(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHostWithoutTimeline())

	_, _, err := runCLI(t, []string{"sync"}, env.socketPath, env.configPath)
	if err == nil {
		t.Fatal("expected sync to fail with no open timeline")
	}
	requireContains(t, err.Error(), "no timeline")
}

func seededFakeHostWithoutTimeline() *testsupport.FakeHost {
	fake := seededFakeHost()
	fake.Name = ""
	return fake
}

func TestCLIMarkersCommand(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"markers"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("markers: %v", err)
	}
	requireContains(t, out, "::Main-StyleA")
	requireContains(t, out, "target")
	requireContains(t, out, "chapter 2")
	requireContains(t, out, "unrelated")
}

func TestCLITracksCommand(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"tracks"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	requireContains(t, out, "::Main")
	requireContains(t, out, "Video 1")
	requireContains(t, out, "yes")
}

func TestCLITemplatesCommand(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	out, _, err := runCLI(t, []string{"templates"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	requireContains(t, out, "StyleA")
	requireContains(t, out, "Library")
}

func TestCLIHistoryAfterSync(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	if _, _, err := runCLI(t, []string{"sync"}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("sync: %v", err)
	}

	out, _, err := runCLI(t, []string{"history"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Episode 12")
	requireContains(t, out, "1/2")

	runID := firstHistoryRunID(t, env)
	out, _, err = runCLI(t, []string{"history", "show", runID}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "::Main-StyleA")
	requireContains(t, out, "Placed")
}

func firstHistoryRunID(t *testing.T, env *cliTestEnv) string {
	t.Helper()
	out, _, err := runCLI(t, []string{"history", "--json"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}
	var runs []struct {
		ID string `json:"ID"`
	}
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("parse history JSON: %v\noutput: %s", err, out)
	}
	if len(runs) == 0 {
		t.Fatal("no journaled runs")
	}
	return runs[0].ID
}

func TestCLIUnknownCommandFails(t *testing.T) {
	env := setupCLITestEnv(t, seededFakeHost())

	_, _, err := runCLI(t, []string{"nonsense"}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
