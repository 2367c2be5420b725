// Package timeline defines the coordinate model shared by every part of the
// sync engine: markers, track items, and half-open frame intervals.
//
// Markers carry frames relative to the timeline start; track items (captions
// and overlay clips) carry absolute frames. MarkerRegion is the single place
// where relative marker coordinates become absolute, and Overlaps is the
// single overlap predicate used both for caption selection and for overwrite
// planning. Keeping both in one package guarantees the two directions of
// interval matching can never drift apart.
package timeline
