// Package token implements the Token Stream component of the parsing
// pipeline (spec.md §4.3): argument-file expansion, the "--"
// end-of-options sentinel, switch/value-attachment splitting, and
// short-option clustering. It classifies a raw argument vector into a
// flat sequence of Tokens for the parser to walk.
package token
