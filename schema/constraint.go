package schema

// ConstraintKind tags the variant of a Constraint record (spec.md §3
// "Constraint record").
type ConstraintKind int

const (
	ConstraintRequire ConstraintKind = iota
	ConstraintRequireIfAnyPresent
	ConstraintRequireIfAllPresent
	ConstraintRequireIfAnyAbsent
	ConstraintRequireIfAllAbsent
	ConstraintRequireIfValue
	ConstraintGroup
	ConstraintConflict
)

// GroupKind further tags ConstraintGroup records.
type GroupKind int

const (
	GroupExactlyOne GroupKind = iota
	GroupAtMostOne
	GroupAtLeastOne
)

func (g GroupKind) String() string {
	switch g {
	case GroupExactlyOne:
		return "exactly-one"
	case GroupAtMostOne:
		return "at-most-one"
	case GroupAtLeastOne:
		return "at-least-one"
	default:
		return "unknown"
	}
}

// Constraint is the tagged union described in spec.md §3. Every field is
// resolved to owner names (not closures over the schema), matching the
// "Constraints referring to other owners" design note in spec.md §9 —
// except RequireIfValue's Predicate, which the same note explicitly
// keeps as a closure.
type Constraint struct {
	Kind ConstraintKind

	Owner string   // Require, RequireIfX, RequireIfValue
	Refs  []string // RequireIfAnyPresent/AllPresent/AnyAbsent/AllAbsent
	Ref   string   // RequireIfValue

	Predicate func(v any) bool // RequireIfValue

	Group   GroupKind
	Members []string // Group, Conflict

	// DeclaringDomain is the owner name of the domain that declared this
	// constraint ("" for a global, schema-level constraint). The builder
	// leaves it empty; Schema.ActiveConstraints and the snapshot set it
	// on the copies they return, and the constraint evaluator copies it
	// onto the diagnostics it raises.
	DeclaringDomain string
}

// Require returns a constraint requiring owner to be bound at least its
// configured minimum number of times.
func Require(owner string) Constraint {
	return Constraint{Kind: ConstraintRequire, Owner: owner}
}

// RequireIfAnyPresent requires owner whenever any of refs is present.
func RequireIfAnyPresent(owner string, refs ...string) Constraint {
	return Constraint{Kind: ConstraintRequireIfAnyPresent, Owner: owner, Refs: refs}
}

// RequireIfAllPresent requires owner whenever all of refs are present.
func RequireIfAllPresent(owner string, refs ...string) Constraint {
	return Constraint{Kind: ConstraintRequireIfAllPresent, Owner: owner, Refs: refs}
}

// RequireIfAnyAbsent requires owner whenever any of refs is absent.
func RequireIfAnyAbsent(owner string, refs ...string) Constraint {
	return Constraint{Kind: ConstraintRequireIfAnyAbsent, Owner: owner, Refs: refs}
}

// RequireIfAllAbsent requires owner whenever all of refs are absent.
func RequireIfAllAbsent(owner string, refs ...string) Constraint {
	return Constraint{Kind: ConstraintRequireIfAllAbsent, Owner: owner, Refs: refs}
}

// RequireIfValue requires owner whenever ref is bound and pred(ref's
// value) is true.
func RequireIfValue(owner, ref string, pred func(v any) bool) Constraint {
	return Constraint{Kind: ConstraintRequireIfValue, Owner: owner, Ref: ref, Predicate: pred}
}

// Group constrains how many of members are bound, per kind.
func Group(kind GroupKind, members ...string) Constraint {
	return Constraint{Kind: ConstraintGroup, Group: kind, Members: members}
}

// Conflict marks members as mutually exclusive (at most one bound).
func Conflict(members ...string) Constraint {
	return Constraint{Kind: ConstraintConflict, Members: members}
}
