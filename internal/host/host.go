package host

import (
	"context"
	"errors"

	"titlesync/internal/timeline"
)

// ErrNoTimeline indicates no project or timeline is open in the editor. It is
// the only condition that aborts a whole run.
var ErrNoTimeline = errors.New("no timeline is open")

// ItemRef is the host's opaque handle to a placed item on a track.
type ItemRef string

// OverlayRef is the host's opaque handle to a freshly appended overlay
// instance. It is only valid for the duration of one placement.
type OverlayRef string

// Placement asks the host to append one overlay instance derived from a
// library template. Coordinates are absolute frames; TrackIndex is the
// 1-based video track position.
type Placement struct {
	TemplateID string
	Start      int64
	Duration   int64
	TrackIndex int
}

// Host is the editing application seen through the scripting bridge. All
// reads reflect the timeline's current contents at call time; the engine
// re-derives everything per marker rather than caching, so concurrent edits
// in the host degrade gracefully instead of corrupting placement.
type Host interface {
	// TimelineName identifies the open timeline, or returns ErrNoTimeline.
	TimelineName(ctx context.Context) (string, error)

	// StartFrame returns the timeline's absolute start offset. Marker frames
	// are relative to this value.
	StartFrame(ctx context.Context) (int64, error)

	// Markers lists all markers on the timeline in host order.
	Markers(ctx context.Context) ([]timeline.Marker, error)

	// TrackNames lists the track names of a kind in host order.
	TrackNames(ctx context.Context, kind timeline.TrackKind) ([]string, error)

	// TrackItems lists the items on the 1-based track of a kind, in track
	// order, with absolute coordinates.
	TrackItems(ctx context.Context, kind timeline.TrackKind, index int) ([]timeline.TrackItem, error)

	// DeleteItems removes the referenced items as one batch.
	DeleteItems(ctx context.Context, refs []ItemRef) error

	// AppendOverlay realizes one placement and returns a handle to the new
	// overlay instance.
	AppendOverlay(ctx context.Context, p Placement) (OverlayRef, error)

	// TemplateLibrary returns the root of the template library folder tree.
	TemplateLibrary(ctx context.Context) (*TemplateFolder, error)

	// OverlayComposition lists the composition components of an overlay
	// instance together with their text-bearing attributes.
	OverlayComposition(ctx context.Context, ref OverlayRef) ([]Component, error)

	// SetComponentText writes text into one attribute of one component of an
	// overlay instance.
	SetComponentText(ctx context.Context, ref OverlayRef, target TextTarget, text string) error
}

// TextTarget names the component attribute that should receive caption text.
type TextTarget struct {
	ComponentID string
	Attribute   string
}
