package schema

import (
	"strings"

	"argos/value"
)

// Builder is the fluent schema-description surface of spec.md §6.2
// ("Schema builder"). It is mutated only during CLI description; the
// Schema it produces via Build() is immutable thereafter.
type Builder struct {
	settings Settings

	options     []*OptionSpec
	positionals []*PositionalSpec
	domains     []*DomainSpec

	globalConstraints []Constraint

	ownerNames map[string]OwnerKind
	switchSeen map[string]string // switch token -> owning owner name
	domainSeen map[string]string // domain selection token -> owning domain owner name

	errs []ConstructionError
}

// BuilderOption configures a Builder's Settings at construction time.
type BuilderOption func(*Settings)

func WithLongPrefix(p string) BuilderOption    { return func(s *Settings) { s.LongPrefix = p } }
func WithShortPrefix(p byte) BuilderOption     { return func(s *Settings) { s.ShortPrefix = p } }
func WithSeparators(seps ...byte) BuilderOption {
	return func(s *Settings) { s.Separators = seps }
}
func WithFilePrefix(p byte) BuilderOption {
	return func(s *Settings) { s.FilePrefix = p; s.FileEnabled = p != 0 }
}
func WithFileExpansionDisabled() BuilderOption { return func(s *Settings) { s.FileEnabled = false } }
func WithNegationPrefix(p string) BuilderOption {
	return func(s *Settings) { s.NegationPrefix = p }
}
func WithClusteringDisabled() BuilderOption { return func(s *Settings) { s.ClusterEnabled = false } }
func WithUnknownAsPositionals() BuilderOption {
	return func(s *Settings) { s.UnknownAsPositionals = true }
}
func WithAggregationDisabled() BuilderOption { return func(s *Settings) { s.Aggregate = false } }
func WithAggregationCap(n int) BuilderOption { return func(s *Settings) { s.AggregateCap = n } }
func WithSuggestionsDisabled() BuilderOption { return func(s *Settings) { s.SuggestEnabled = false } }
func WithSuggestMaxDistance(n int) BuilderOption {
	return func(s *Settings) { s.SuggestMaxDistance = n }
}
func WithMaxFileDepth(n int) BuilderOption { return func(s *Settings) { s.MaxFileDepth = n } }

// NewBuilder starts a Schema description with spec.md's documented
// defaults, refined by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}
	return &Builder{
		settings:   settings,
		ownerNames: make(map[string]OwnerKind),
		switchSeen: make(map[string]string),
		domainSeen: make(map[string]string),
	}
}

func (b *Builder) addErr(e ConstructionError) { b.errs = append(b.errs, e) }

func (b *Builder) classifySwitch(tok string) Switch {
	if b.settings.LongPrefix != "" && strings.HasPrefix(tok, b.settings.LongPrefix) && len(tok) > len(b.settings.LongPrefix) {
		return Switch{Token: tok, Long: true}
	}
	return Switch{Token: tok, Long: false}
}

func (b *Builder) registerOwner(name string, kind OwnerKind) {
	if name == "" {
		b.addErr(newErr(ErrDuplicateOwner, "owner name must not be empty"))
		return
	}
	if _, dup := b.ownerNames[name]; dup {
		b.addErr(newErr(ErrDuplicateOwner, "duplicate owner name %q", name))
		return
	}
	b.ownerNames[name] = kind
}

func (b *Builder) registerSwitch(tok, owner string) {
	if existing, dup := b.switchSeen[tok]; dup {
		b.addErr(newErr(ErrDuplicateSwitch, "switch %q already registered by %q (wanted by %q)", tok, existing, owner))
		return
	}
	b.switchSeen[tok] = owner
}

// Option begins describing a new option owned by owner, presented to
// users as switches (e.g. "--name", "-n").
func (b *Builder) Option(owner string, switches ...string) *OptionBuilder {
	b.registerOwner(owner, KindOption)
	spec := &OptionSpec{
		Owner:     owner,
		Policy:    value.PolicyRequiresValue,
		Converter: value.IdentityConverter,
		Arity:     value.ArityScalar,
	}
	for _, raw := range switches {
		sw := b.classifySwitch(raw)
		spec.Switches = append(spec.Switches, sw)
		b.registerSwitch(sw.Token, owner)
	}
	b.options = append(b.options, spec)
	return &OptionBuilder{b: b, spec: spec}
}

// Positional begins describing a new positional slot at the given
// sequence number (spec.md §3 "PositionalSpec" — "ordering is total").
func (b *Builder) Positional(owner string, sequence int) *PositionalBuilder {
	b.registerOwner(owner, KindPositional)
	spec := &PositionalSpec{
		Owner:     owner,
		Arity:     value.ArityScalar,
		Converter: value.IdentityConverter,
		Sequence:  sequence,
	}
	b.positionals = append(b.positionals, spec)
	return &PositionalBuilder{b: b, spec: spec}
}

// Domain begins describing a new concrete (selectable) domain.
func (b *Builder) Domain(owner string, names ...string) *DomainBuilder {
	spec := &DomainSpec{Owner: owner, Names: names}
	for _, n := range names {
		if existing, dup := b.domainSeen[n]; dup {
			b.addErr(newErr(ErrDuplicateDomainAlias, "domain alias %q already registered by %q (wanted by %q)", n, existing, owner))
			continue
		}
		b.domainSeen[n] = owner
	}
	b.domains = append(b.domains, spec)
	return &DomainBuilder{b: b, spec: spec}
}

// Fragment begins describing a new fragment domain: not user-selectable,
// contributing constraints only through inheritance (spec.md §3).
func (b *Builder) Fragment(owner string) *DomainBuilder {
	spec := &DomainSpec{Owner: owner, Fragment: true}
	b.domains = append(b.domains, spec)
	return &DomainBuilder{b: b, spec: spec}
}

// Require adds a global (schema-level) Require constraint.
func (b *Builder) Require(owner string) *Builder {
	b.globalConstraints = append(b.globalConstraints, Require(owner))
	return b
}

// RequireIfAnyPresent adds a global conditional-presence constraint.
func (b *Builder) RequireIfAnyPresent(owner string, refs ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, RequireIfAnyPresent(owner, refs...))
	return b
}

// RequireIfAllPresent adds a global conditional-presence constraint.
func (b *Builder) RequireIfAllPresent(owner string, refs ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, RequireIfAllPresent(owner, refs...))
	return b
}

// RequireIfAnyAbsent adds a global conditional-absence constraint.
func (b *Builder) RequireIfAnyAbsent(owner string, refs ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, RequireIfAnyAbsent(owner, refs...))
	return b
}

// RequireIfAllAbsent adds a global conditional-absence constraint.
func (b *Builder) RequireIfAllAbsent(owner string, refs ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, RequireIfAllAbsent(owner, refs...))
	return b
}

// RequireIfValue adds a global value-conditional constraint.
func (b *Builder) RequireIfValue(owner, ref string, pred func(v any) bool) *Builder {
	b.globalConstraints = append(b.globalConstraints, RequireIfValue(owner, ref, pred))
	return b
}

// Group adds a global group constraint.
func (b *Builder) Group(kind GroupKind, members ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, Group(kind, members...))
	return b
}

// Conflict adds a global mutual-exclusion constraint.
func (b *Builder) Conflict(members ...string) *Builder {
	b.globalConstraints = append(b.globalConstraints, Conflict(members...))
	return b
}

// Build finalizes the schema. Construction errors (duplicate switches,
// inheritance cycles, bad positional ordering, ...) are validated here
// and attached to the returned Schema rather than returned as a
// separate error value, per spec.md §4.2.
func (b *Builder) Build() *Schema {
	s := &Schema{
		settings:          b.settings,
		options:           b.options,
		positionals:       b.positionals,
		domains:           b.domains,
		globalConstraints: b.globalConstraints,
		errors:            append([]ConstructionError{}, b.errs...),
	}
	s.buildIndexes()
	s.validate()
	return s
}
