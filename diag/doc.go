// Package diag is the Diagnostics component of the parsing pipeline:
// the error-kind taxonomy, a stable numeric code per kind, aggregation
// with a configurable cap, and a "did you mean" suggestion engine for
// unknown switches and domain tokens.
package diag
