package timeline

// Interval is a half-open frame range [Start, End) in absolute coordinates.
type Interval struct {
	Start int64
	End   int64
}

// Overlaps reports whether two half-open intervals share at least one frame.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Empty reports whether the interval covers no frames.
func (i Interval) Empty() bool {
	return i.End <= i.Start
}

// minMarkerDuration is the extent assumed for markers the host reports with
// no duration. A zero-length region could never overlap anything, so a bare
// marker is treated as covering exactly the frame it sits on.
const minMarkerDuration = 1

// MarkerRegion converts a marker's relative frame and duration into an
// absolute half-open region using the timeline start offset. Markers with a
// zero or missing duration get a one-frame extent.
func MarkerRegion(m Marker, startOffset int64) Interval {
	duration := m.Duration
	if duration < minMarkerDuration {
		duration = minMarkerDuration
	}
	start := m.Frame + startOffset
	return Interval{Start: start, End: start + duration}
}
