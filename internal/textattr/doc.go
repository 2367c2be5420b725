// Package textattr discovers which attribute of a freshly placed overlay
// instance should receive caption text.
//
// Template schemas are ambiguous: well-behaved templates expose a component
// literally named "Template", others bury a styled or plain text input
// somewhere in the composition graph, and some expose text inputs that the
// template author hid because they are unused. Resolution therefore runs an
// ordered list of strategies with early exit; a miss on every strategy is a
// soft failure the caller reports without stopping the run.
package textattr
