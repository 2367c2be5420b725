package timeline

import "fmt"

// TrackKind identifies the two track families the engine works with.
type TrackKind string

const (
	// TrackVideo is the overlay destination track kind.
	TrackVideo TrackKind = "video"
	// TrackCaption is the subtitle source track kind.
	TrackCaption TrackKind = "caption"
)

// Valid reports whether the kind is one of the known track families.
func (k TrackKind) Valid() bool {
	return k == TrackVideo || k == TrackCaption
}

// Marker is an operator-placed annotation on the timeline. Frame is relative
// to the timeline start; Duration may be zero when the host reports a marker
// without an explicit extent.
type Marker struct {
	Name     string
	Frame    int64
	Duration int64
}

func (m Marker) String() string {
	return fmt.Sprintf("%s@%d", m.Name, m.Frame)
}

// TrackItem is a timed item on a track in absolute frames. For caption tracks
// Name carries the subtitle text; for video tracks it is the clip name. ID is
// the host's opaque handle used for deletion.
type TrackItem struct {
	ID       string
	Name     string
	Start    int64
	Duration int64
}

// Interval returns the item's half-open absolute extent.
func (i TrackItem) Interval() Interval {
	return Interval{Start: i.Start, End: i.Start + i.Duration}
}

// End returns the absolute frame one past the item's last frame.
func (i TrackItem) End() int64 {
	return i.Start + i.Duration
}
