package envbind

import (
	"fmt"

	"argos/diag"
	"argos/schema"
	"argos/token"
	"argos/value"
)

// Bind populates still-Missing cells from the environment, for every
// option spec that declares an EnvName (spec.md §4.5). Cells already
// at Environment or User source are left untouched — Bind only ever
// advances a Missing cell.
func Bind(sch *schema.Schema, cells map[string]*value.Cell, reader Reader) []*diag.Error {
	var errs []*diag.Error
	for _, o := range sch.Options() {
		if o.EnvName == "" {
			continue
		}
		cell := cells[o.Owner]
		if cell == nil || cell.Bound() {
			continue
		}
		raw, ok := reader.Lookup(o.EnvName)
		if !ok {
			continue
		}
		if err := bindOne(o, cell, raw); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func bindOne(o *schema.OptionSpec, cell *value.Cell, raw string) *diag.Error {
	switch o.Arity {
	case value.ArityList, value.ArritySet, value.ArityKeyValue:
		parts, err := token.SplitQuoted(raw)
		if err != nil {
			return diag.InvalidValue(o.Owner, fmt.Sprintf("environment value for %q could not be split: %v", o.EnvName, err))
		}
		for _, p := range parts {
			v, cerr := o.Converter(p)
			if cerr != nil {
				return diag.InvalidValue(o.Owner, fmt.Sprintf("environment variable %q: %v", o.EnvName, cerr))
			}
			if o.Arity == value.ArityList {
				cell.AppendList(v, []string{p}, value.SourceEnvironment)
			} else {
				cell.AppendSet(v, setKey(v), []string{p}, value.SourceEnvironment)
			}
		}
		return nil
	default:
		v, err := o.Converter(raw)
		if err != nil {
			return diag.InvalidValue(o.Owner, fmt.Sprintf("environment variable %q: %v", o.EnvName, err))
		}
		cell.BindScalarRaw(v, []string{raw}, value.SourceEnvironment)
		return nil
	}
}

func setKey(v any) string {
	if kv, ok := v.(value.KeyValue); ok {
		return kv.Key
	}
	return fmt.Sprint(v)
}

// ApplyDefaults runs last, after token parsing and environment
// binding: any cell still Missing whose spec declares a Default
// producer becomes Default-sourced (spec.md §3 "Lifecycles").
func ApplyDefaults(sch *schema.Schema, cells map[string]*value.Cell) {
	for _, o := range sch.Options() {
		if o.Default == nil {
			continue
		}
		cell := cells[o.Owner]
		if cell == nil || cell.Bound() {
			continue
		}
		v := o.Default()
		switch o.Arity {
		case value.ArityList:
			for _, elem := range asSlice(v) {
				cell.AppendList(elem, nil, value.SourceDefault)
			}
		case value.ArritySet:
			for _, elem := range asSlice(v) {
				cell.AppendSet(elem, setKey(elem), nil, value.SourceDefault)
			}
		default:
			cell.BindScalar(v, value.SourceDefault)
		}
	}
}

// asSlice lets a collection-arity Default producer return either a
// []any or a concrete slice type via reflection-free type switches on
// the common cases; anything else is treated as a single element.
func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	if s, ok := v.([]string); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	}
	return []any{v}
}
