// Package main hosts the titlesync CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into bridge
// calls against the editor's scripting shim: synchronization runs, timeline
// inspection (markers, tracks, templates), run history, and configuration
// scaffolding. It centralizes configuration resolution, socket discovery, and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
