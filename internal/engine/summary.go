package engine

import (
	"time"

	"titlesync/internal/timeline"
)

// Status classifies the outcome of one recognized marker.
type Status string

const (
	// StatusPlaced means every matched caption produced a textured overlay.
	StatusPlaced Status = "placed"
	// StatusPartial means at least one caption failed softly.
	StatusPartial Status = "partial"
	// StatusSkipped means the marker was recognized but not processed.
	StatusSkipped Status = "skipped"
)

// SkipReason explains a skipped marker.
type SkipReason string

const (
	SkipMalformedName    SkipReason = "malformed-name"
	SkipTrackNotFound    SkipReason = "track-not-found"
	SkipTemplateNotFound SkipReason = "template-not-found"
	SkipNoCaptions       SkipReason = "no-captions-in-region"
)

// MarkerResult reports what happened to one recognized marker.
type MarkerResult struct {
	Marker   timeline.Marker
	Track    string
	Template string

	Status Status
	Reason SkipReason
	Detail string

	// Matched is the number of captions overlapping the marker region.
	Matched int
	// Placed counts overlays that were appended; TextFailures says how many
	// of them are still missing their text.
	Placed int
	// Removed counts pre-existing overlays cleared from the region.
	Removed int
	// PlacementFailures counts captions whose append was rejected.
	PlacementFailures int
	// TextFailures counts placed overlays whose text attribute could not be
	// resolved or written.
	TextFailures int
}

// Summary aggregates one run.
type Summary struct {
	RunID     string
	Timeline  string
	StartedAt time.Time
	Elapsed   time.Duration
	DryRun    bool

	// Results holds one entry per recognized marker, in timeline order.
	Results []MarkerResult
	// TotalMarkers is the number of markers on the timeline, recognized or
	// not.
	TotalMarkers int
}

// Recognized is the number of markers that matched the naming convention.
func (s *Summary) Recognized() int {
	return len(s.Results)
}

// Placed totals overlays placed with text across all markers.
func (s *Summary) Placed() int {
	total := 0
	for _, r := range s.Results {
		total += r.Placed
	}
	return total
}

// Removed totals pre-existing overlays cleared across all markers.
func (s *Summary) Removed() int {
	total := 0
	for _, r := range s.Results {
		total += r.Removed
	}
	return total
}

// NeedsGuidance reports whether the run recognized no markers at all, in
// which case the CLI prints setup guidance instead of a bare completion line.
func (s *Summary) NeedsGuidance() bool {
	return len(s.Results) == 0
}
