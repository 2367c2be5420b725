package placement

import (
	"testing"

	"titlesync/internal/host"
	"titlesync/internal/timeline"
)

func TestPlanTimingMirrorsCaptions(t *testing.T) {
	// Marker region [100,200) with two captions inside it must produce two
	// instructions timed to the captions, never one spanning the region.
	region := timeline.Interval{Start: 100, End: 200}
	track := []timeline.TrackItem{
		{ID: "c1", Name: "first", Start: 110, Duration: 20},
		{ID: "c2", Name: "second", Start: 150, Duration: 20},
		{ID: "c3", Name: "outside", Start: 300, Duration: 20},
	}
	tmpl := host.TemplateRef{ID: "t1", Name: "StyleA"}

	matched := SelectCaptions(track, region)
	if len(matched) != 2 {
		t.Fatalf("matched %d captions, want 2", len(matched))
	}

	instructions := Plan(matched, tmpl, 3)
	if len(instructions) != 2 {
		t.Fatalf("planned %d instructions, want 2", len(instructions))
	}
	want := []Instruction{
		{Template: tmpl, Start: 110, Duration: 20, TrackIndex: 3, Text: "first"},
		{Template: tmpl, Start: 150, Duration: 20, TrackIndex: 3, Text: "second"},
	}
	for i := range want {
		if instructions[i] != want[i] {
			t.Fatalf("instruction %d = %+v, want %+v", i, instructions[i], want[i])
		}
	}
}

func TestSelectCaptionsBoundaries(t *testing.T) {
	region := timeline.Interval{Start: 100, End: 200}
	track := []timeline.TrackItem{
		{ID: "ends-at-start", Start: 50, Duration: 50},
		{ID: "starts-at-end", Start: 200, Duration: 50},
		{ID: "straddles-start", Start: 90, Duration: 20},
	}
	matched := SelectCaptions(track, region)
	if len(matched) != 1 || matched[0].ID != "straddles-start" {
		t.Fatalf("matched = %+v, want only straddles-start", matched)
	}
}

func TestPlanCleansText(t *testing.T) {
	captions := []timeline.TrackItem{{ID: "c", Name: "  hello \r\n world  ", Start: 0, Duration: 10}}
	instructions := Plan(captions, host.TemplateRef{ID: "t"}, 1)
	if instructions[0].Text != "hello\nworld" {
		t.Fatalf("Text = %q", instructions[0].Text)
	}
}

func TestPlanZeroCaptions(t *testing.T) {
	if got := Plan(nil, host.TemplateRef{ID: "t"}, 1); len(got) != 0 {
		t.Fatalf("expected no instructions, got %d", len(got))
	}
}

func TestInstructionPlacement(t *testing.T) {
	in := Instruction{Template: host.TemplateRef{ID: "t9"}, Start: 5, Duration: 7, TrackIndex: 2, Text: "x"}
	p := in.Placement()
	want := host.Placement{TemplateID: "t9", Start: 5, Duration: 7, TrackIndex: 2}
	if p != want {
		t.Fatalf("Placement() = %+v, want %+v", p, want)
	}
}
