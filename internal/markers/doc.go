// Package markers parses the marker naming convention that drives overlay
// placement: a configured prefix, a track target, a hyphen, and a template
// name, e.g. "::Main-LowerThird". Markers without the prefix belong to other
// workflows and are ignored; markers with the prefix but no hyphen are
// malformed and reported.
package markers
