package textattr

import (
	"testing"

	"titlesync/internal/host"
)

func visible(name string) host.TextAttribute {
	return host.TextAttribute{Name: name, Visible: true}
}

func hidden(name string) host.TextAttribute {
	return host.TextAttribute{Name: name, Visible: false}
}

func TestResolveCanonicalName(t *testing.T) {
	components := []host.Component{
		{ID: "bg", Name: "Background", Attributes: []host.TextAttribute{visible(AttrPlain)}},
		{ID: "tpl", Name: "Template", Attributes: []host.TextAttribute{visible(AttrStyled)}},
	}
	target, strategy, ok := Resolver{SkipHidden: true}.Resolve(components)
	if !ok {
		t.Fatal("expected resolution")
	}
	if strategy != StrategyCanonicalName {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyCanonicalName)
	}
	if target != (host.TextTarget{ComponentID: "tpl", Attribute: AttrStyled}) {
		t.Fatalf("target = %+v", target)
	}
}

func TestResolveFallsBackToAttributePresence(t *testing.T) {
	components := []host.Component{
		{ID: "shape", Name: "Shape", Attributes: nil},
		{ID: "txt", Name: "Caption Layer", Attributes: []host.TextAttribute{visible(AttrPlain)}},
	}
	target, strategy, ok := Resolver{SkipHidden: true}.Resolve(components)
	if !ok {
		t.Fatal("expected resolution via tier 2")
	}
	if strategy != StrategyAttributePresence {
		t.Fatalf("strategy = %q, want %q", strategy, StrategyAttributePresence)
	}
	if target != (host.TextTarget{ComponentID: "txt", Attribute: AttrPlain}) {
		t.Fatalf("target = %+v", target)
	}
}

func TestResolvePrefersStyledOverPlain(t *testing.T) {
	components := []host.Component{
		{ID: "txt", Name: "Caption Layer", Attributes: []host.TextAttribute{visible(AttrPlain), visible(AttrStyled)}},
	}
	target, _, ok := Resolver{}.Resolve(components)
	if !ok || target.Attribute != AttrStyled {
		t.Fatalf("target = %+v, ok = %v, want StyledText", target, ok)
	}
}

func TestResolveSkipsHiddenCandidates(t *testing.T) {
	components := []host.Component{
		{ID: "decoy", Name: "Unused", Attributes: []host.TextAttribute{hidden(AttrStyled)}},
		{ID: "real", Name: "Lower", Attributes: []host.TextAttribute{visible(AttrPlain)}},
	}
	target, _, ok := Resolver{SkipHidden: true}.Resolve(components)
	if !ok || target.ComponentID != "real" {
		t.Fatalf("target = %+v, ok = %v, want component real", target, ok)
	}

	// Without the hint the hidden styled input wins on order and richness.
	target, _, ok = Resolver{SkipHidden: false}.Resolve(components)
	if !ok || target.ComponentID != "decoy" {
		t.Fatalf("target = %+v, ok = %v, want component decoy when hidden allowed", target, ok)
	}
}

func TestResolveCanonicalComponentWithoutTextFallsThrough(t *testing.T) {
	components := []host.Component{
		{ID: "tpl", Name: "Template", Attributes: []host.TextAttribute{visible("Size")}},
		{ID: "txt", Name: "Other", Attributes: []host.TextAttribute{visible(AttrPlain)}},
	}
	target, strategy, ok := Resolver{SkipHidden: true}.Resolve(components)
	if !ok || strategy != StrategyAttributePresence || target.ComponentID != "txt" {
		t.Fatalf("target = %+v, strategy = %q, ok = %v", target, strategy, ok)
	}
}

func TestResolveUnresolved(t *testing.T) {
	components := []host.Component{
		{ID: "a", Name: "Shape"},
		{ID: "b", Name: "Media", Attributes: []host.TextAttribute{visible("Gain")}},
	}
	if _, _, ok := (Resolver{SkipHidden: true}).Resolve(components); ok {
		t.Fatal("expected unresolved")
	}
	if _, _, ok := (Resolver{}).Resolve(nil); ok {
		t.Fatal("expected unresolved on empty composition")
	}
}
