// Package constraint implements the Constraint Evaluator (spec.md
// §4.7): after binding, it checks requirement/group/conflict
// predicates restricted to the active constraint set (global plus the
// active domain's own and inherited constraints).
package constraint
