package schema

import "argos/value"

// OptionBuilder refines one OptionSpec. Every method mutates the spec
// in place and returns the same builder, in the fluent style the
// teacher's cobra flag registration (cmd/root.go's init()) uses. The
// builder is dynamic: its methods set the spec's converter and arity,
// and the static value type of a Handle is the T the caller passes to
// OptionHandle[T].
type OptionBuilder struct {
	b    *Builder
	spec *OptionSpec
}

// String sets the option's type to string (the default converter).
func (ob *OptionBuilder) String() *OptionBuilder {
	ob.spec.Converter = value.IdentityConverter
	ob.spec.ValueDesc = "string"
	return ob
}

// Int sets the option's type to a signed 64-bit integer.
func (ob *OptionBuilder) Int() *OptionBuilder {
	ob.spec.Converter = value.IntConverter
	ob.spec.ValueDesc = "int"
	return ob
}

// Float sets the option's type to a 64-bit float.
func (ob *OptionBuilder) Float() *OptionBuilder {
	ob.spec.Converter = value.FloatConverter
	ob.spec.ValueDesc = "float"
	return ob
}

// Bool sets the option's type to a boolean. Combine with Flag() for a
// presence/absence switch, or leave the default RequiresValue policy
// for a boolean that must be spelled out ("--feature=true").
func (ob *OptionBuilder) Bool() *OptionBuilder {
	ob.spec.Converter = value.BoolConverter
	ob.spec.ValueDesc = "bool"
	return ob
}

// Enum restricts the value to variants, matched case-insensitively,
// with an optional alias map (alias -> canonical variant).
func (ob *OptionBuilder) Enum(variants []string, aliases map[string]string) *OptionBuilder {
	ob.spec.Converter = value.EnumConverter(variants, aliases)
	ob.spec.ValueDesc = "one of " + joinComma(variants)
	return ob
}

// OneOf restricts the value to a fixed set, case-insensitive unless
// caseSensitive is true.
func (ob *OptionBuilder) OneOf(values []string, caseSensitive bool) *OptionBuilder {
	ob.spec.Converter = value.OneOfConverter(values, caseSensitive)
	ob.spec.ValueDesc = "one of " + joinComma(values)
	return ob
}

// KeyValue sets the option's type to a key=value pair split on sep.
func (ob *OptionBuilder) KeyValue(sep string) *OptionBuilder {
	ob.spec.Converter = value.KeyValueConverter(sep)
	ob.spec.KVSep = sep
	ob.spec.ValueDesc = "key" + sep + "value"
	return ob
}

// Custom installs a host-supplied converter (spec.md §4.1, "custom
// (map)"). desc is used in generated help/error text.
func (ob *OptionBuilder) Custom(conv value.Converter, desc string) *OptionBuilder {
	ob.spec.Converter = conv
	ob.spec.ValueDesc = desc
	return ob
}

// Flag marks the option as flag-only (boolean presence, no value
// token consumed).
func (ob *OptionBuilder) Flag() *OptionBuilder {
	ob.spec.Policy = value.PolicyFlagOnly
	if ob.spec.Converter == nil {
		ob.spec.Converter = value.BoolConverter
	}
	return ob
}

// OptionalValue marks the option as accepting, but not requiring, an
// attached value (spec.md §4.4).
func (ob *OptionBuilder) OptionalValue() *OptionBuilder {
	ob.spec.Policy = value.PolicyOptionalValue
	return ob
}

// List makes the option a list (ordered, duplicates kept).
func (ob *OptionBuilder) List() *OptionBuilder {
	ob.spec.Arity = value.ArityList
	return ob
}

// Set makes the option a set (de-duplicated by element, or by key for
// key-value options).
func (ob *OptionBuilder) Set() *OptionBuilder {
	ob.spec.Arity = value.ArritySet
	return ob
}

// Count makes the option a repeat counter (e.g. "-vvv"), implying
// Flag().
func (ob *OptionBuilder) Count() *OptionBuilder {
	ob.spec.Arity = value.ArityCount
	return ob.Flag()
}

// Fixed makes the option consume exactly n values per occurrence.
func (ob *OptionBuilder) Fixed(n int) *OptionBuilder {
	ob.spec.Arity = value.ArityFixed
	ob.spec.FixedN = n
	return ob
}

// Negatable auto-derives a "--no-<name>" switch for every long switch
// (spec.md §3 "negatable"). Only meaningful for boolean scalars.
func (ob *OptionBuilder) Negatable() *OptionBuilder {
	ob.spec.Negatable = true
	ob.spec.NegPrefix = ob.b.settings.NegationPrefix
	for _, sw := range ob.spec.Switches {
		if !sw.Long {
			continue
		}
		negTok := ob.b.settings.LongPrefix + ob.spec.NegPrefix + sw.Token[len(ob.b.settings.LongPrefix):]
		if existing, dup := ob.b.switchSeen[negTok]; dup {
			ob.b.addErr(newErr(ErrNegationCollision, "negation switch %q for %q collides with existing switch owned by %q", negTok, ob.spec.Owner, existing))
			continue
		}
		ob.b.switchSeen[negTok] = ob.spec.Owner
	}
	return ob
}

// Eager marks the option as an eager help/version switch (spec.md §4.4).
func (ob *OptionBuilder) Eager(action EagerAction) *OptionBuilder {
	ob.spec.Eager = action
	return ob
}

// Domains scopes the option to the given domain owner names; without
// this call the option is available in every domain.
func (ob *OptionBuilder) Domains(domains ...string) *OptionBuilder {
	ob.spec.DomainOnly = domains
	return ob
}

// Required sets the minimum number of times the option must be bound
// globally (0, the default, means optional).
func (ob *OptionBuilder) Required(min int) *OptionBuilder {
	ob.spec.MinCount = min
	return ob
}

// Default installs a default-value producer, invoked only when no
// user or environment source supplies a value (spec.md §3 invariants).
func (ob *OptionBuilder) Default(fn func() any) *OptionBuilder {
	ob.spec.Default = fn
	return ob
}

// DefaultValue is a convenience wrapper around Default for constants.
func (ob *OptionBuilder) DefaultValue(v any) *OptionBuilder {
	return ob.Default(func() any { return v })
}

// Env binds an environment-variable fallback (spec.md §4.5).
func (ob *OptionBuilder) Env(name string) *OptionBuilder {
	ob.spec.EnvName = name
	return ob
}

// Hidden excludes the option from help/snapshot visibility without
// affecting parsing.
func (ob *OptionBuilder) Hidden() *OptionBuilder {
	ob.spec.Hidden = true
	return ob
}

// Interactive marks the option as a host-prompted value (spec.md §6.1):
// if it's still unbound once parsing and env/default binding finish,
// a host wired to a collaborator such as providers/interactive should
// prompt the user for it rather than treat it as simply absent.
func (ob *OptionBuilder) Interactive() *OptionBuilder {
	ob.spec.Interactive = true
	return ob
}

// Help sets the option's help text.
func (ob *OptionBuilder) Help(text string) *OptionBuilder {
	ob.spec.Help = text
	return ob
}

// ValueDesc overrides the expected-value description shown in help.
func (ob *OptionBuilder) ValueDesc(text string) *OptionBuilder {
	ob.spec.ValueDesc = text
	return ob
}

// Validate adds a per-value predicate; template supports {value},
// {switches} and {name} placeholders (spec.md §4.6).
func (ob *OptionBuilder) Validate(template string, pred func(v any) bool) *OptionBuilder {
	ob.spec.ValueValid = append(ob.spec.ValueValid, ValuePredicate{Template: template, Predicate: pred})
	return ob
}

// ValidateCollection adds a per-collection predicate; template
// supports {count}, {value} and {option} placeholders.
func (ob *OptionBuilder) ValidateCollection(template string, pred func(count int) bool) *OptionBuilder {
	ob.spec.CollValid = append(ob.spec.CollValid, CollectionPredicate{Template: template, Predicate: pred})
	return ob
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}
