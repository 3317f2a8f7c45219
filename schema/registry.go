package schema

import "sort"

// Schema is the built, immutable catalog spec.md §3 calls the "Schema
// Registry": option/positional/domain specs, the constraint set, and
// any construction errors found along the way. It is safe to share
// across goroutines for concurrent parse invocations (spec.md §5).
type Schema struct {
	settings          Settings
	options           []*OptionSpec
	positionals       []*PositionalSpec
	domains           []*DomainSpec
	globalConstraints []Constraint
	errors            []ConstructionError

	switchIndex map[string]switchBinding
	domainToken map[string]*DomainSpec
	domainOwner map[string]*DomainSpec
	optionOwner map[string]*OptionSpec
	posOwner    map[string]*PositionalSpec
	closures    map[string][]*DomainSpec // domain owner -> inheritance closure (self first)
}

type switchBinding struct {
	Spec     *OptionSpec
	Negation bool
}

func (s *Schema) Settings() Settings                 { return s.settings }
func (s *Schema) Options() []*OptionSpec             { return s.options }
func (s *Schema) Positionals() []*PositionalSpec     { return s.positionals }
func (s *Schema) Domains() []*DomainSpec             { return s.domains }
func (s *Schema) GlobalConstraints() []Constraint    { return s.globalConstraints }
func (s *Schema) Errors() []ConstructionError        { return s.errors }
func (s *Schema) Valid() bool                        { return len(s.errors) == 0 }

// LookupSwitch resolves a literal switch token (long or short, already
// split from any attached value) to its owning option. negation
// reports whether this particular token is the auto-derived negation
// form.
func (s *Schema) LookupSwitch(tok string) (spec *OptionSpec, negation bool, ok bool) {
	b, ok := s.switchIndex[tok]
	return b.Spec, b.Negation, ok
}

// LookupDomainToken resolves a positional's literal value against the
// set of concrete (non-fragment) domain names/aliases.
func (s *Schema) LookupDomainToken(tok string) (*DomainSpec, bool) {
	d, ok := s.domainToken[tok]
	return d, ok
}

func (s *Schema) DomainByOwner(name string) (*DomainSpec, bool) {
	d, ok := s.domainOwner[name]
	return d, ok
}

func (s *Schema) OptionByOwner(name string) (*OptionSpec, bool) {
	o, ok := s.optionOwner[name]
	return o, ok
}

func (s *Schema) PositionalByOwner(name string) (*PositionalSpec, bool) {
	p, ok := s.posOwner[name]
	return p, ok
}

// OwnerExists reports whether name is a known option or positional
// owner, used by diagnostics/constraint validation for ref checking.
func (s *Schema) OwnerExists(name string) bool {
	_, o := s.optionOwner[name]
	_, p := s.posOwner[name]
	return o || p
}

// InheritanceClosure returns domain plus every domain it transitively
// inherits, self first, in declaration order with duplicates removed —
// the "Active constraint set" traversal of spec.md §4.7.
func (s *Schema) InheritanceClosure(domainOwner string) []*DomainSpec {
	return s.closures[domainOwner]
}

// ActiveConstraints returns every constraint that fires for the given
// active domain (""  for root/no-domain mode): global constraints plus
// every constraint declared on the domain or anything it inherits.
func (s *Schema) ActiveConstraints(activeDomain string) []Constraint {
	out := append([]Constraint{}, s.globalConstraints...)
	if activeDomain == "" {
		return out
	}
	for _, d := range s.InheritanceClosure(activeDomain) {
		for _, c := range d.Constraints {
			c.DeclaringDomain = d.Owner
			out = append(out, c)
		}
	}
	return out
}

// PositionalSchedule returns the positionals visible in activeDomain
// ("" for root mode), sorted by sequence number.
func (s *Schema) PositionalSchedule(activeDomain string) []*PositionalSpec {
	var out []*PositionalSpec
	for _, p := range s.positionals {
		if p.InDomain(activeDomain) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

func (s *Schema) buildIndexes() {
	s.switchIndex = make(map[string]switchBinding)
	s.domainToken = make(map[string]*DomainSpec)
	s.domainOwner = make(map[string]*DomainSpec)
	s.optionOwner = make(map[string]*OptionSpec)
	s.posOwner = make(map[string]*PositionalSpec)

	for _, o := range s.options {
		s.optionOwner[o.Owner] = o
		for _, sw := range o.Switches {
			s.switchIndex[sw.Token] = switchBinding{Spec: o}
		}
		if o.Negatable {
			for _, sw := range o.Switches {
				if !sw.Long {
					continue
				}
				negTok := s.settings.LongPrefix + o.NegPrefix + sw.Token[len(s.settings.LongPrefix):]
				s.switchIndex[negTok] = switchBinding{Spec: o, Negation: true}
			}
		}
	}
	for _, p := range s.positionals {
		s.posOwner[p.Owner] = p
	}
	for _, d := range s.domains {
		s.domainOwner[d.Owner] = d
		if !d.Fragment {
			for _, n := range d.Names {
				s.domainToken[n] = d
			}
		}
	}
}

func (s *Schema) validate() {
	s.validatePositionalOrdering()
	s.validateInheritance()
	s.validateOwnerRefs()
}

func (s *Schema) validatePositionalOrdering() {
	contexts := map[string]bool{"": true}
	for _, d := range s.domains {
		if !d.Fragment {
			contexts[d.Owner] = true
		}
	}
	for ctx := range contexts {
		active := s.PositionalSchedule(ctx)
		seen := map[int]bool{}
		variadicCount := 0
		maxSeq := -1
		for _, p := range active {
			if seen[p.Sequence] {
				s.errors = append(s.errors, newErr(ErrPositionalOrdering,
					"duplicate positional sequence %d in domain %q", p.Sequence, displayCtx(ctx)))
			}
			seen[p.Sequence] = true
			if p.Sequence > maxSeq {
				maxSeq = p.Sequence
			}
			if p.Variadic() {
				variadicCount++
			}
		}
		if variadicCount > 1 {
			s.errors = append(s.errors, newErr(ErrMultipleVariadic,
				"domain %q has more than one variadic positional", displayCtx(ctx)))
		}
		for _, p := range active {
			if p.Variadic() && p.Sequence != maxSeq {
				s.errors = append(s.errors, newErr(ErrVariadicNotLast,
					"variadic positional %q must be last in domain %q", p.Owner, displayCtx(ctx)))
			}
		}
	}
}

func displayCtx(ctx string) string {
	if ctx == "" {
		return "(root)"
	}
	return ctx
}

func (s *Schema) validateInheritance() {
	s.closures = make(map[string][]*DomainSpec)
	for _, d := range s.domains {
		visiting := map[string]bool{}
		if cyc := findCycle(s, d.Owner, visiting, nil); cyc != nil {
			s.errors = append(s.errors, newErr(ErrInheritanceCycle, "inheritance cycle: %v", cyc))
			continue
		}
		seen := map[string]bool{}
		s.closures[d.Owner] = collectClosure(s, d, seen)
	}
}

func findCycle(s *Schema, owner string, visiting map[string]bool, path []string) []string {
	if visiting[owner] {
		return append(append([]string{}, path...), owner)
	}
	d, ok := s.domainOwner[owner]
	if !ok {
		return nil
	}
	visiting[owner] = true
	path = append(path, owner)
	for _, p := range d.Parents {
		if cyc := findCycle(s, p, visiting, path); cyc != nil {
			return cyc
		}
	}
	visiting[owner] = false
	return nil
}

func collectClosure(s *Schema, d *DomainSpec, seen map[string]bool) []*DomainSpec {
	if seen[d.Owner] {
		return nil
	}
	seen[d.Owner] = true
	out := []*DomainSpec{d}
	for _, pname := range d.Parents {
		p, ok := s.domainOwner[pname]
		if !ok {
			continue
		}
		out = append(out, collectClosure(s, p, seen)...)
	}
	return out
}

func (s *Schema) validateOwnerRefs() {
	check := func(c Constraint) {
		refs := []string{}
		if c.Owner != "" {
			refs = append(refs, c.Owner)
		}
		if c.Ref != "" {
			refs = append(refs, c.Ref)
		}
		refs = append(refs, c.Refs...)
		refs = append(refs, c.Members...)
		for _, r := range refs {
			if !s.OwnerExists(r) {
				s.errors = append(s.errors, newErr(ErrUnknownOwnerRef, "constraint references unknown owner %q", r))
			}
		}
	}
	for _, c := range s.globalConstraints {
		check(c)
	}
	for _, d := range s.domains {
		for _, p := range d.Parents {
			if _, ok := s.domainOwner[p]; !ok {
				s.errors = append(s.errors, newErr(ErrUnknownDomainRef, "domain %q inherits unknown domain %q", d.Owner, p))
			}
		}
		for _, c := range d.Constraints {
			check(c)
		}
	}
}
