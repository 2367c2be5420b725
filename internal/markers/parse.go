package markers

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPrefix is the marker prefix used when the config does not override
// it.
const DefaultPrefix = "::"

// ErrMalformedName indicates a marker matched the prefix but is missing the
// hyphen between track target and template name.
var ErrMalformedName = errors.New("marker name missing '-' between track and template")

// Target is the parsed form of a convention marker name.
type Target struct {
	prefix string

	// Track is the bare track target, without the prefix.
	Track string
	// Template is the template name, which may itself contain hyphens.
	Template string
}

// TrackName reconstructs the track name the convention requires: the same
// prefix the marker carries, followed by the track target.
func (t Target) TrackName() string {
	return t.prefix + t.Track
}

// Parser splits marker display names according to the naming convention.
type Parser struct {
	prefix string
}

// NewParser returns a parser for the given prefix. An empty prefix falls back
// to DefaultPrefix; a prefix that accepts every name would make the silent
// skip of unrelated markers impossible.
func NewParser(prefix string) Parser {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Parser{prefix: prefix}
}

// Prefix returns the configured marker prefix.
func (p Parser) Prefix() string {
	return p.prefix
}

// Parse splits a marker display name. The second return value reports whether
// the marker matched the convention at all: false with a nil error means the
// marker is unrelated and should be skipped silently. A matched marker with
// no hyphen returns true together with ErrMalformedName.
//
// Only the first hyphen splits, so "::Main-Lower-Third" targets track "Main"
// with template "Lower-Third".
func (p Parser) Parse(name string) (Target, bool, error) {
	if !strings.HasPrefix(name, p.prefix) {
		return Target{}, false, nil
	}
	rest := strings.TrimPrefix(name, p.prefix)
	track, template, found := strings.Cut(rest, "-")
	if !found {
		return Target{}, true, fmt.Errorf("parse marker %q: %w", name, ErrMalformedName)
	}
	if track == "" || template == "" {
		return Target{}, true, fmt.Errorf("parse marker %q: %w", name, ErrMalformedName)
	}
	return Target{prefix: p.prefix, Track: track, Template: template}, true, nil
}
