package value

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// ConversionError is returned by a Converter when a raw token cannot be
// turned into the target type. It is never panicked across the parse
// call (spec.md §7) — it is always a value.
type ConversionError struct {
	Raw    string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Raw, e.Reason)
}

// Converter is a pure function from a raw token to a typed value, per
// spec.md §4.1. Built-in converters below all have this shape; custom
// (host-supplied) converters share it too.
type Converter func(raw string) (any, error)

var fold = cases.Fold()

func foldEqual(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

// IntConverter parses a signed 64-bit decimal integer. Leading '+' is
// accepted; embedded whitespace is rejected.
func IntConverter(raw string) (any, error) {
	if raw == "" || strings.ContainsAny(raw, " \t\n\r") {
		return nil, &ConversionError{Raw: raw, Reason: "expected an integer"}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &ConversionError{Raw: raw, Reason: "expected an integer"}
	}
	return n, nil
}

// FloatConverter parses decimal or scientific-notation floats. NaN and
// infinity tokens are rejected even though strconv would otherwise accept
// them, per spec.md §4.1.
func FloatConverter(raw string) (any, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || strings.Contains(lower, "nan") || strings.Contains(lower, "inf") {
		return nil, &ConversionError{Raw: raw, Reason: "expected a number"}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ConversionError{Raw: raw, Reason: "expected a number"}
	}
	return f, nil
}

var boolTokens = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false,
}

// BoolConverter accepts true|false|yes|no|on|off|1|0 case-insensitively.
// Flag-only booleans never invoke this — presence/absence is the value.
func BoolConverter(raw string) (any, error) {
	b, ok := boolTokens[fold.String(raw)]
	if !ok {
		return nil, &ConversionError{Raw: raw, Reason: "expected true/false/yes/no/on/off/1/0"}
	}
	return b, nil
}

// IdentityConverter returns the raw string unmodified.
func IdentityConverter(raw string) (any, error) {
	return raw, nil
}

// EnumConverter matches raw against the declared variants, case
// insensitively, with an optional alias map layered on top (alias ->
// canonical variant, also matched case-insensitively).
func EnumConverter(variants []string, aliases map[string]string) Converter {
	return func(raw string) (any, error) {
		if canon, ok := aliases[fold.String(raw)]; ok {
			raw = canon
		}
		for _, v := range variants {
			if foldEqual(v, raw) {
				return v, nil
			}
		}
		return nil, &ConversionError{Raw: raw, Reason: "expected one of " + strings.Join(variants, ", ")}
	}
}

// OneOfConverter is a restricted string: membership in a fixed set,
// case-insensitive by default.
func OneOfConverter(values []string, caseSensitive bool) Converter {
	return func(raw string) (any, error) {
		for _, v := range values {
			if caseSensitive {
				if v == raw {
					return raw, nil
				}
			} else if foldEqual(v, raw) {
				return raw, nil
			}
		}
		return nil, &ConversionError{Raw: raw, Reason: "expected one of " + strings.Join(values, ", ")}
	}
}

// KeyValue is the element type of keyvalue-arity cells.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValueConverter splits raw on the first occurrence of sep; both
// sides must be non-empty.
func KeyValueConverter(sep string) Converter {
	return func(raw string) (any, error) {
		idx := strings.Index(raw, sep)
		key, val := "", ""
		if idx >= 0 {
			key, val = raw[:idx], raw[idx+len(sep):]
		}
		if key == "" || val == "" {
			return nil, &ConversionError{Raw: raw, Reason: fmt.Sprintf("expected key%svalue", sep)}
		}
		return KeyValue{Key: key, Value: val}, nil
	}
}
