// Package placement turns matched captions into overlay placement
// instructions and resolves template names against the library's folder
// tree.
//
// Each caption produces exactly one instruction timed to the caption itself,
// not to the marker region, so overlay timing always mirrors the source
// subtitle even when the marker spans far more than the captions inside it.
// Template lookup is depth-first with a first-match-wins contract: when two
// templates share a name, traversal order decides, so the host's own folder
// ordering is preserved untouched.
package placement
