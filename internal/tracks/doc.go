// Package tracks resolves human-readable track names to positional indices.
// The host addresses tracks by 1-based position within a kind, so every
// marker resolves its named track pair to indices immediately before use and
// never caches them across markers.
package tracks
