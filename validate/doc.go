// Package validate implements the Validator component (spec.md §4.6):
// per-value and per-collection user predicates, with message-template
// substitution, run after binding and before constraint evaluation.
package validate
