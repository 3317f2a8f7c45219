package constraint

import (
	"argos/diag"
	"argos/schema"
	"argos/value"
)

// Evaluate runs the active constraint set for activeDomain ("" for
// root/no-domain mode) against cells, plus the implicit minimum-count
// requirement every OptionSpec/PositionalSpec carries via its own
// Required(n) attribute — which fires unconditionally, the same as a
// built-in global Require (spec.md's S1 scenario: a bare .Required(1)
// option with no explicit Require() constraint still yields
// missing-required).
func Evaluate(sch *schema.Schema, cells map[string]*value.Cell, activeDomain string) []*diag.Error {
	var errs []*diag.Error

	for _, o := range sch.Options() {
		if o.MinCount > 0 {
			if e := checkMinCount(o.Owner, o.MinCount, cells[o.Owner]); e != nil {
				errs = append(errs, e)
			}
		}
	}
	for _, p := range sch.Positionals() {
		if p.MinCount > 0 {
			if e := checkMinCount(p.Owner, p.MinCount, cells[p.Owner]); e != nil {
				errs = append(errs, e)
			}
		}
	}

	for _, c := range sch.ActiveConstraints(activeDomain) {
		for _, e := range evalOne(c, cells) {
			e.Domain = c.DeclaringDomain
			errs = append(errs, e)
		}
	}
	return errs
}

func checkMinCount(owner string, min int, cell *value.Cell) *diag.Error {
	if cell != nil && cell.Occurrences() >= min {
		return nil
	}
	return diag.MissingRequired(owner, min)
}

func evalOne(c schema.Constraint, cells map[string]*value.Cell) []*diag.Error {
	switch c.Kind {
	case schema.ConstraintRequire:
		if !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.MissingRequired(c.Owner, 1)}
		}
		return nil
	case schema.ConstraintRequireIfAnyPresent:
		if anyPresent(c.Refs, cells) && !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.ConditionalRequirement(c.Owner, c.Refs)}
		}
	case schema.ConstraintRequireIfAllPresent:
		if allPresent(c.Refs, cells) && !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.ConditionalRequirement(c.Owner, c.Refs)}
		}
	case schema.ConstraintRequireIfAnyAbsent:
		if anyAbsent(c.Refs, cells) && !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.ConditionalRequirement(c.Owner, c.Refs)}
		}
	case schema.ConstraintRequireIfAllAbsent:
		if allAbsent(c.Refs, cells) && !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.ConditionalRequirement(c.Owner, c.Refs)}
		}
	case schema.ConstraintRequireIfValue:
		ref := cells[c.Ref]
		if ref != nil && ref.Present() && c.Predicate != nil && c.Predicate(scalarOrFirst(ref)) && !boundOK(c.Owner, cells) {
			return []*diag.Error{diag.ConditionalRequirement(c.Owner, []string{c.Ref})}
		}
	case schema.ConstraintGroup:
		bound := presentMembers(c.Members, cells)
		switch c.Group {
		case schema.GroupExactlyOne:
			if len(bound) != 1 {
				return []*diag.Error{diag.GroupViolation(c.Group.String(), c.Members, bound)}
			}
		case schema.GroupAtMostOne:
			if len(bound) > 1 {
				return []*diag.Error{diag.GroupViolation(c.Group.String(), c.Members, bound)}
			}
		case schema.GroupAtLeastOne:
			if len(bound) < 1 {
				return []*diag.Error{diag.GroupViolation(c.Group.String(), c.Members, bound)}
			}
		}
	case schema.ConstraintConflict:
		bound := presentMembers(c.Members, cells)
		if len(bound) > 1 {
			return []*diag.Error{diag.Conflict(bound)}
		}
	}
	return nil
}

func boundOK(owner string, cells map[string]*value.Cell) bool {
	cell := cells[owner]
	return cell != nil && cell.Bound()
}

func anyPresent(refs []string, cells map[string]*value.Cell) bool {
	for _, r := range refs {
		if cell := cells[r]; cell != nil && cell.Present() {
			return true
		}
	}
	return false
}

func allPresent(refs []string, cells map[string]*value.Cell) bool {
	if len(refs) == 0 {
		return true
	}
	for _, r := range refs {
		if cell := cells[r]; cell == nil || !cell.Present() {
			return false
		}
	}
	return true
}

func anyAbsent(refs []string, cells map[string]*value.Cell) bool {
	for _, r := range refs {
		if cell := cells[r]; cell == nil || !cell.Present() {
			return true
		}
	}
	return false
}

func allAbsent(refs []string, cells map[string]*value.Cell) bool {
	for _, r := range refs {
		if cell := cells[r]; cell != nil && cell.Present() {
			return false
		}
	}
	return true
}

func presentMembers(members []string, cells map[string]*value.Cell) []string {
	var out []string
	for _, m := range members {
		if cell := cells[m]; cell != nil && cell.Present() {
			out = append(out, m)
		}
	}
	return out
}

func scalarOrFirst(cell *value.Cell) any {
	switch cell.Arity {
	case value.ArityList:
		if l := cell.List(); len(l) > 0 {
			return l[0]
		}
		return nil
	case value.ArritySet:
		if s := cell.Set(); len(s) > 0 {
			return s[0]
		}
		return nil
	default:
		return cell.Scalar()
	}
}
