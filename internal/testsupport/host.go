package testsupport

import (
	"context"
	"fmt"
	"slices"

	"titlesync/internal/host"
	"titlesync/internal/timeline"
)

// TextWrite records one SetComponentText call against the fake host.
type TextWrite struct {
	Ref    host.OverlayRef
	Target host.TextTarget
	Text   string
}

// FakeHost is an in-memory Timeline Host. Zero value is unusable; construct
// with NewFakeHost and seed tracks, markers, and templates. It is not safe
// for concurrent use, matching the engine's strictly sequential access.
type FakeHost struct {
	Name   string
	Offset int64

	MarkerList    []timeline.Marker
	VideoTracks   []string
	CaptionTracks []string
	Library       *host.TemplateFolder

	// Components returned for every appended overlay unless overridden per
	// template ID in ComponentsByTemplate.
	DefaultComponents    []host.Component
	ComponentsByTemplate map[string][]host.Component

	// AppendErr, when set, fails AppendOverlay for matching template IDs.
	AppendErr map[string]error
	// SetTextErr fails every SetComponentText call when set.
	SetTextErr error

	// TextWrites records successful SetComponentText calls in order.
	TextWrites []TextWrite
	// Deleted records every ref passed to DeleteItems in order.
	Deleted []host.ItemRef

	videoItems   map[int][]timeline.TrackItem
	captionItems map[int][]timeline.TrackItem
	overlayTmpl  map[host.OverlayRef]string
	nextID       int
}

// NewFakeHost returns a fake with an open timeline of the given name.
func NewFakeHost(name string) *FakeHost {
	return &FakeHost{
		Name:                 name,
		ComponentsByTemplate: map[string][]host.Component{},
		AppendErr:            map[string]error{},
		videoItems:           map[int][]timeline.TrackItem{},
		captionItems:         map[int][]timeline.TrackItem{},
		overlayTmpl:          map[host.OverlayRef]string{},
	}
}

// AddCaption places a caption on the 1-based caption track.
func (f *FakeHost) AddCaption(track int, text string, start, duration int64) {
	f.nextID++
	f.captionItems[track] = append(f.captionItems[track], timeline.TrackItem{
		ID:       fmt.Sprintf("cap-%d", f.nextID),
		Name:     text,
		Start:    start,
		Duration: duration,
	})
}

// AddVideoItem places a pre-existing clip on the 1-based video track.
func (f *FakeHost) AddVideoItem(track int, name string, start, duration int64) string {
	f.nextID++
	id := fmt.Sprintf("clip-%d", f.nextID)
	f.videoItems[track] = append(f.videoItems[track], timeline.TrackItem{
		ID:       id,
		Name:     name,
		Start:    start,
		Duration: duration,
	})
	return id
}

// VideoItems returns a copy of the items currently on the 1-based video track.
func (f *FakeHost) VideoItems(track int) []timeline.TrackItem {
	return slices.Clone(f.videoItems[track])
}

func (f *FakeHost) TimelineName(context.Context) (string, error) {
	if f.Name == "" {
		return "", host.ErrNoTimeline
	}
	return f.Name, nil
}

func (f *FakeHost) StartFrame(context.Context) (int64, error) {
	if f.Name == "" {
		return 0, host.ErrNoTimeline
	}
	return f.Offset, nil
}

func (f *FakeHost) Markers(context.Context) ([]timeline.Marker, error) {
	if f.Name == "" {
		return nil, host.ErrNoTimeline
	}
	return slices.Clone(f.MarkerList), nil
}

func (f *FakeHost) TrackNames(_ context.Context, kind timeline.TrackKind) ([]string, error) {
	switch kind {
	case timeline.TrackVideo:
		return slices.Clone(f.VideoTracks), nil
	case timeline.TrackCaption:
		return slices.Clone(f.CaptionTracks), nil
	default:
		return nil, fmt.Errorf("unknown track kind %q", kind)
	}
}

func (f *FakeHost) TrackItems(_ context.Context, kind timeline.TrackKind, index int) ([]timeline.TrackItem, error) {
	switch kind {
	case timeline.TrackVideo:
		return slices.Clone(f.videoItems[index]), nil
	case timeline.TrackCaption:
		return slices.Clone(f.captionItems[index]), nil
	default:
		return nil, fmt.Errorf("unknown track kind %q", kind)
	}
}

func (f *FakeHost) DeleteItems(_ context.Context, refs []host.ItemRef) error {
	for _, ref := range refs {
		f.Deleted = append(f.Deleted, ref)
		for track, items := range f.videoItems {
			f.videoItems[track] = slices.DeleteFunc(items, func(item timeline.TrackItem) bool {
				return item.ID == string(ref)
			})
		}
	}
	return nil
}

func (f *FakeHost) AppendOverlay(_ context.Context, p host.Placement) (host.OverlayRef, error) {
	if err := f.AppendErr[p.TemplateID]; err != nil {
		return "", err
	}
	f.nextID++
	id := fmt.Sprintf("ov-%d", f.nextID)
	f.videoItems[p.TrackIndex] = append(f.videoItems[p.TrackIndex], timeline.TrackItem{
		ID:       id,
		Name:     p.TemplateID,
		Start:    p.Start,
		Duration: p.Duration,
	})
	ref := host.OverlayRef(id)
	f.overlayTmpl[ref] = p.TemplateID
	return ref, nil
}

func (f *FakeHost) TemplateLibrary(context.Context) (*host.TemplateFolder, error) {
	if f.Library == nil {
		return &host.TemplateFolder{Name: "Library"}, nil
	}
	return f.Library, nil
}

func (f *FakeHost) OverlayComposition(_ context.Context, ref host.OverlayRef) ([]host.Component, error) {
	if tmpl, ok := f.overlayTmpl[ref]; ok {
		if comps, ok := f.ComponentsByTemplate[tmpl]; ok {
			return comps, nil
		}
	}
	return f.DefaultComponents, nil
}

func (f *FakeHost) SetComponentText(_ context.Context, ref host.OverlayRef, target host.TextTarget, text string) error {
	if f.SetTextErr != nil {
		return f.SetTextErr
	}
	f.TextWrites = append(f.TextWrites, TextWrite{Ref: ref, Target: target, Text: text})
	return nil
}
