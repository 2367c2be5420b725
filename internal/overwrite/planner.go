package overwrite

import (
	"titlesync/internal/host"
	"titlesync/internal/timeline"
)

// PlanRemovals selects every clip on the target track whose extent overlaps
// the marker region, using the same half-open predicate that selects
// captions. The returned refs are deleted as a single batch before any
// placement for the marker is attempted.
func PlanRemovals(items []timeline.TrackItem, region timeline.Interval) []host.ItemRef {
	var refs []host.ItemRef
	for _, item := range items {
		if timeline.Overlaps(item.Interval(), region) {
			refs = append(refs, host.ItemRef(item.ID))
		}
	}
	return refs
}
