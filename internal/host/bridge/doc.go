// Package bridge binds the Timeline Host interface to an editor's scripting
// shim over JSON-RPC on a unix domain socket.
//
// The shim registers the "Timeline" service; Client translates every Host
// method into one RPC call with flat JSON shapes, and Server exposes any Host
// implementation over the same wire, which is how shims written in Go (and
// the test suite) serve a timeline.
package bridge
