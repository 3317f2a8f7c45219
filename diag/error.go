package diag

import "fmt"

// Error is one diagnostic raised by any pipeline stage. Every field
// beyond Kind/Code/Message is optional context, populated by whichever
// stage raised it.
type Error struct {
	Kind    Kind
	Code    int
	Message string

	Owner   string   // the option/positional this diagnostic concerns, if any
	Switch  string   // the literal switch token involved, if any
	Domain  string   // the domain that declared a violated constraint, if any
	Refs    []string // triggering refs for conditional constraints
	Members []string // bound members for group/conflict violations

	Suggestions []string // "did you mean" candidates, closest first
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: CodeFor(kind), Message: fmt.Sprintf(format, args...)}
}

func UnknownOption(tok string, suggestions []string) *Error {
	e := newError(KindUnknownOption, "unknown option %q", tok)
	e.Switch = tok
	e.Suggestions = suggestions
	return e
}

func UnknownDomain(tok string, suggestions []string) *Error {
	e := newError(KindUnknownDomain, "unknown domain %q", tok)
	e.Suggestions = suggestions
	return e
}

func MissingValue(owner, sw string) *Error {
	e := newError(KindMissingValue, "option %q requires a value", sw)
	e.Owner, e.Switch = owner, sw
	return e
}

func InvalidValue(owner, message string) *Error {
	e := newError(KindInvalidValue, "%s", message)
	e.Owner = owner
	return e
}

func UnexpectedPositional(raw string) *Error {
	return newError(KindUnexpectedPositional, "unexpected positional argument %q", raw)
}

func MissingRequired(owner string, min int) *Error {
	var e *Error
	if min <= 1 {
		e = newError(KindMissingRequired, "%q is required", owner)
	} else {
		e = newError(KindMissingRequired, "%q is required at least %d times", owner, min)
	}
	e.Owner = owner
	return e
}

func ConditionalRequirement(owner string, refs []string) *Error {
	e := newError(KindConditionalRequirement, "%q is required given %v", owner, refs)
	e.Owner, e.Refs = owner, refs
	return e
}

func GroupViolation(kind string, members []string, bound []string) *Error {
	e := newError(KindGroupViolation, "group %s violated among %v (bound: %v)", kind, members, bound)
	e.Members = bound
	return e
}

func Conflict(bound []string) *Error {
	e := newError(KindConflict, "conflicting options bound: %v", bound)
	e.Members = bound
	return e
}

func SchemaInvalid(message string) *Error {
	return newError(KindSchemaInvalid, "%s", message)
}
