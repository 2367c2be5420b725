// Package engine orchestrates one synchronization run: it scans timeline
// markers in time order, and for each convention marker resolves its track
// pair and template, clears the marker region of previous overlays, selects
// the captions inside the region, places one overlay per caption, and writes
// each caption's text into the placed instance.
//
// The engine is stateless and strictly sequential. Every read is re-derived
// from the host at the moment it is needed because each placement mutates the
// track contents the next overlap computation must observe. Per-marker
// failures (bad name, missing track or template, empty region) skip the
// marker; per-caption failures (placement rejected, text attribute
// unresolved) skip the caption; only a missing open timeline or a dead
// bridge aborts the run.
package engine
