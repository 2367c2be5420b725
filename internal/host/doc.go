// Package host declares the narrow interface the sync engine drives against
// a non-linear editing application, plus the data shapes exchanged across it:
// template library folders, overlay composition components, and placement
// requests.
//
// The engine never talks to an editor directly; everything flows through the
// Host interface so the core stays pure and testable against an in-memory
// fake. The production binding lives in host/bridge and speaks JSON-RPC to
// the editor's scripting shim over a unix socket.
package host
