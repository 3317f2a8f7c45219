package schema

import "argos/value"

// PositionalBuilder refines one PositionalSpec.
type PositionalBuilder struct {
	b    *Builder
	spec *PositionalSpec
}

func (pb *PositionalBuilder) String() *PositionalBuilder {
	pb.spec.Converter = value.IdentityConverter
	pb.spec.ValueDesc = "string"
	return pb
}

func (pb *PositionalBuilder) Int() *PositionalBuilder {
	pb.spec.Converter = value.IntConverter
	pb.spec.ValueDesc = "int"
	return pb
}

func (pb *PositionalBuilder) Float() *PositionalBuilder {
	pb.spec.Converter = value.FloatConverter
	pb.spec.ValueDesc = "float"
	return pb
}

func (pb *PositionalBuilder) OneOf(values []string, caseSensitive bool) *PositionalBuilder {
	pb.spec.Converter = value.OneOfConverter(values, caseSensitive)
	pb.spec.ValueDesc = "one of " + joinComma(values)
	return pb
}

func (pb *PositionalBuilder) Custom(conv value.Converter, desc string) *PositionalBuilder {
	pb.spec.Converter = conv
	pb.spec.ValueDesc = desc
	return pb
}

// List makes the positional variadic (ordered, duplicates kept).
func (pb *PositionalBuilder) List() *PositionalBuilder {
	pb.spec.Arity = value.ArityList
	return pb
}

// Set makes the positional variadic and de-duplicated.
func (pb *PositionalBuilder) Set() *PositionalBuilder {
	pb.spec.Arity = value.ArritySet
	return pb
}

// Domains scopes the positional to the given domain owner names.
func (pb *PositionalBuilder) Domains(domains ...string) *PositionalBuilder {
	pb.spec.DomainOnly = domains
	return pb
}

// Required sets the minimum required count (0 = optional).
func (pb *PositionalBuilder) Required(min int) *PositionalBuilder {
	pb.spec.MinCount = min
	return pb
}

func (pb *PositionalBuilder) Help(text string) *PositionalBuilder {
	pb.spec.Help = text
	return pb
}

func (pb *PositionalBuilder) ValueDesc(text string) *PositionalBuilder {
	pb.spec.ValueDesc = text
	return pb
}

func (pb *PositionalBuilder) Validate(template string, pred func(v any) bool) *PositionalBuilder {
	pb.spec.ValueValid = append(pb.spec.ValueValid, ValuePredicate{Template: template, Predicate: pred})
	return pb
}

func (pb *PositionalBuilder) ValidateCollection(template string, pred func(count int) bool) *PositionalBuilder {
	pb.spec.CollValid = append(pb.spec.CollValid, CollectionPredicate{Template: template, Predicate: pred})
	return pb
}
