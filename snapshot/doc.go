// Package snapshot implements the Snapshot/Introspection component
// (spec.md §4.9): a deep, side-effect-free description of a built
// Schema, published for help renderers and shell-completion
// generators external to the core.
package snapshot
