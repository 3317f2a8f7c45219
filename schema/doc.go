// Package schema is the Schema Registry of Argos: the catalog of option,
// positional and domain specs, the constraint records that bind them, and
// the fluent builder that constructs all of the above once per CLI
// description (spec.md §3, §4.2).
//
// Construction never panics on a malformed schema. Errors (duplicate
// switches, inheritance cycles, bad positional ordering) are accumulated
// on the built Schema and surfaced through Schema.Errors(); a parse call
// against an invalid schema fails fast with a schema-invalid diagnostic
// before reading any tokens.
package schema
