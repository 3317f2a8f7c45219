// Package envbind implements the Environment Binder (spec.md §4.5): for
// every option with an env name whose cell is still Missing after
// token parsing, query the environment and populate the cell,
// respecting the provenance precedence order ahead of defaults.
package envbind
