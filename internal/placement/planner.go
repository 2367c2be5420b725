package placement

import (
	"titlesync/internal/host"
	"titlesync/internal/textutil"
	"titlesync/internal/timeline"
)

// Instruction is one planned overlay placement: a template instance timed to
// a single caption, destined for a 1-based video track, carrying the
// caption's cleaned text.
type Instruction struct {
	Template   host.TemplateRef
	Start      int64
	Duration   int64
	TrackIndex int
	Text       string
}

// Placement converts the instruction into the host request shape.
func (in Instruction) Placement() host.Placement {
	return host.Placement{
		TemplateID: in.Template.ID,
		Start:      in.Start,
		Duration:   in.Duration,
		TrackIndex: in.TrackIndex,
	}
}

// SelectCaptions filters a caption track's items down to those overlapping
// the marker region, preserving track order.
func SelectCaptions(items []timeline.TrackItem, region timeline.Interval) []timeline.TrackItem {
	var matched []timeline.TrackItem
	for _, item := range items {
		if timeline.Overlaps(item.Interval(), region) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Plan emits one instruction per caption in the order given. Instructions are
// never batched: contiguous captions still become independently timed
// overlays so each one can be removed or restyled on its own.
func Plan(captions []timeline.TrackItem, tmpl host.TemplateRef, trackIndex int) []Instruction {
	instructions := make([]Instruction, 0, len(captions))
	for _, caption := range captions {
		instructions = append(instructions, Instruction{
			Template:   tmpl,
			Start:      caption.Start,
			Duration:   caption.Duration,
			TrackIndex: trackIndex,
			Text:       textutil.CleanCaption(caption.Name),
		})
	}
	return instructions
}
