// Package overwrite plans which existing overlay clips must be removed before
// a marker's captions are re-placed. Removal scope is always the full marker
// region, never per-caption sub-intervals: the full-region sweep is what
// makes re-running the engine on an unchanged timeline idempotent.
package overwrite
