package textattr

import "titlesync/internal/host"

const (
	// CanonicalComponent is the component name well-behaved templates use
	// for their text tool.
	CanonicalComponent = "Template"
	// AttrStyled is the rich text input, preferred when present.
	AttrStyled = "StyledText"
	// AttrPlain is the fallback plain text input.
	AttrPlain = "Text"
)

// Strategy names reported alongside a resolution, for diagnostics.
const (
	StrategyCanonicalName     = "canonical-name"
	StrategyAttributePresence = "attribute-presence"
)

// Resolver walks an overlay's composition components looking for the text
// attribute to write. SkipHidden drops candidates whose attribute the
// template author marked not-visible, an authoring-time hint that the input
// is unused.
type Resolver struct {
	SkipHidden bool
}

// Resolve returns the component attribute that should carry caption text and
// the name of the strategy that found it. ok is false when no component
// anywhere exposes a recognized text attribute; callers treat that as a soft
// per-caption failure.
func (r Resolver) Resolve(components []host.Component) (host.TextTarget, string, bool) {
	type strategy struct {
		name string
		find func([]host.Component) (host.TextTarget, bool)
	}
	strategies := []strategy{
		{StrategyCanonicalName, r.byCanonicalName},
		{StrategyAttributePresence, r.byAttributePresence},
	}
	for _, s := range strategies {
		if target, ok := s.find(components); ok {
			return target, s.name, true
		}
	}
	return host.TextTarget{}, "", false
}

// byCanonicalName looks for the component named "Template" and uses its text
// attribute. A canonical component that exposes no recognized attribute falls
// through to the next strategy rather than failing the resolution.
func (r Resolver) byCanonicalName(components []host.Component) (host.TextTarget, bool) {
	for _, comp := range components {
		if comp.Name != CanonicalComponent {
			continue
		}
		if attr, ok := r.pickAttribute(comp); ok {
			return host.TextTarget{ComponentID: comp.ID, Attribute: attr}, true
		}
	}
	return host.TextTarget{}, false
}

// byAttributePresence scans every component for a recognized text attribute,
// in component order.
func (r Resolver) byAttributePresence(components []host.Component) (host.TextTarget, bool) {
	for _, comp := range components {
		if attr, ok := r.pickAttribute(comp); ok {
			return host.TextTarget{ComponentID: comp.ID, Attribute: attr}, true
		}
	}
	return host.TextTarget{}, false
}

// pickAttribute prefers the styled attribute over the plain one when a
// component exposes both.
func (r Resolver) pickAttribute(comp host.Component) (string, bool) {
	var plain string
	for _, attr := range comp.Attributes {
		if r.SkipHidden && !attr.Visible {
			continue
		}
		switch attr.Name {
		case AttrStyled:
			return AttrStyled, true
		case AttrPlain:
			plain = AttrPlain
		}
	}
	if plain != "" {
		return plain, true
	}
	return "", false
}
