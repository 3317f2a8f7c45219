// Package parser implements the Parser component (spec.md §4.4): the
// single pass over the classified token stream that selects the active
// domain, resolves switches against the schema, binds values into
// ValueCells with provenance, and — after token parsing, environment
// binding, validation and constraint evaluation — produces the final
// ParseOutcome.
package parser
