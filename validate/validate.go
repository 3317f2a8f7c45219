package validate

import (
	"fmt"
	"strconv"
	"strings"

	"argos/diag"
	"argos/schema"
	"argos/value"
)

// Option runs every per-value and per-collection predicate declared on
// o against cell, in that order, appending one diagnostic per failure
// (spec.md §4.6 — failures never remove the value, they only append).
func Option(o *schema.OptionSpec, cell *value.Cell) []*diag.Error {
	return run(o.Owner, switchList(o.Switches), o.ValueValid, o.CollValid, cell)
}

// Positional runs the same predicates for a positional spec.
func Positional(p *schema.PositionalSpec, cell *value.Cell) []*diag.Error {
	return run(p.Owner, "", p.ValueValid, p.CollValid, cell)
}

func run(owner, switches string, valuePreds []schema.ValuePredicate, collPreds []schema.CollectionPredicate, cell *value.Cell) []*diag.Error {
	var errs []*diag.Error
	if !cell.Bound() {
		return errs
	}
	for _, elem := range elements(cell) {
		for _, vp := range valuePreds {
			if !vp.Predicate(elem) {
				msg := render(vp.Template, owner, switches, elem, cell.Len())
				errs = append(errs, diag.InvalidValue(owner, msg))
			}
		}
	}
	count := cell.Len()
	for _, cp := range collPreds {
		if !cp.Predicate(count) {
			msg := render(cp.Template, owner, switches, count, count)
			errs = append(errs, diag.InvalidValue(owner, msg))
		}
	}
	return errs
}

func elements(cell *value.Cell) []any {
	switch cell.Arity {
	case value.ArityList, value.ArityFixed:
		return cell.List()
	case value.ArritySet, value.ArityKeyValue:
		return cell.Set()
	case value.ArityCount:
		return nil
	default:
		if cell.Bound() {
			return []any{cell.Scalar()}
		}
		return nil
	}
}

func switchList(switches []schema.Switch) string {
	toks := make([]string, len(switches))
	for i, sw := range switches {
		toks[i] = sw.Token
	}
	return strings.Join(toks, ", ")
}

// render substitutes {value}, {switches}, {name}, {count} and {option}
// placeholders in a validator's message template (spec.md §4.6).
func render(tpl, owner, switches string, v any, count int) string {
	valStr := ""
	if v != nil {
		valStr = fmt.Sprint(v)
	}
	r := strings.NewReplacer(
		"{value}", valStr,
		"{switches}", switches,
		"{name}", owner,
		"{option}", owner,
		"{count}", strconv.Itoa(count),
	)
	return r.Replace(tpl)
}
