package schema

import "argos/value"

// EagerAction marks an option whose presence short-circuits the whole
// pipeline (spec.md §4.4 "Eager short-circuit").
type EagerAction int

const (
	EagerNone EagerAction = iota
	EagerHelp
	EagerVersion
)

// Switch is one user-facing token for an option, e.g. "--verbose" or "-v".
type Switch struct {
	Token string
	Long  bool // true for "--verbose"-style switches, false for "-v"-style
}

// Char returns the single character a short switch matches against,
// i.e. the token's last byte. On a long switch that byte carries no
// meaning; callers check Long first.
func (s Switch) Char() byte { return s.Token[len(s.Token)-1] }

// ValuePredicate is a per-value validator: it runs once per converted
// occurrence (scalars: once; collections: once per element).
type ValuePredicate struct {
	Template  string
	Predicate func(v any) bool
}

// CollectionPredicate runs once after all occurrences of a collection
// owner are gathered.
type CollectionPredicate struct {
	Template  string
	Predicate func(count int) bool
}

// OptionSpec is the built, immutable description of one option,
// corresponding to spec.md §3 "OptionSpec".
type OptionSpec struct {
	Owner       string
	Switches    []Switch
	Arity       value.Arity
	FixedN      int // only meaningful when Arity == ArityFixed
	Policy      value.Policy
	Converter   value.Converter
	Default     func() any
	EnvName     string
	Hidden      bool
	Interactive bool // host should prompt for this option when left unbound
	Negatable   bool
	NegPrefix   string // resolved negation prefix, only set when Negatable
	Eager       EagerAction
	DomainOnly  []string // nil => all domains
	MinCount    int
	Help        string
	ValueDesc   string
	ValueValid  []ValuePredicate
	CollValid   []CollectionPredicate
	KVSep       string // only meaningful when Arity == ArityKeyValue
}

// InDomain reports whether the option is visible/active for the given
// domain owner name (empty string = root/no-domain mode).
func (o *OptionSpec) InDomain(domain string) bool {
	if o.DomainOnly == nil {
		return true
	}
	for _, d := range o.DomainOnly {
		if d == domain {
			return true
		}
	}
	return false
}

// PositionalSpec is the built, immutable description of one positional
// slot, corresponding to spec.md §3 "PositionalSpec".
type PositionalSpec struct {
	Owner      string
	Arity      value.Arity // ArityScalar ("single"), ArityList, ArritySet
	Converter  value.Converter
	Sequence   int
	MinCount   int
	DomainOnly []string
	Help       string
	ValueDesc  string
	ValueValid []ValuePredicate
	CollValid  []CollectionPredicate
}

func (p *PositionalSpec) InDomain(domain string) bool {
	if p.DomainOnly == nil {
		return true
	}
	for _, d := range p.DomainOnly {
		if d == domain {
			return true
		}
	}
	return false
}

func (p *PositionalSpec) Variadic() bool {
	return p.Arity == ArityListPositional || p.Arity == ArritySetPositional
}

// Positional arity aliases: spec.md names these "single"/"list"/"set" but
// they reuse the same value.Arity enum as options for uniformity.
const (
	ArityListPositional = value.ArityList
	ArritySetPositional  = value.ArritySet
)

// DomainSpec is the built, immutable description of one domain
// (subcommand-like scope), corresponding to spec.md §3 "DomainSpec".
type DomainSpec struct {
	Owner       string
	Names       []string // selection tokens: name + aliases; empty for fragments
	Fragment    bool
	Parents     []string // owner names of inherited domains, declaration order
	Constraints []Constraint
	Label       string
	Description string
}
