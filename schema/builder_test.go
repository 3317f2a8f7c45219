package schema

import "testing"

func TestBuilderDuplicateSwitchCollision(t *testing.T) {
	b := NewBuilder()
	b.Option("verbose", "--verbose", "-v")
	b.Option("version", "-v")

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected duplicate switch to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrDuplicateSwitch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrDuplicateSwitch, got %v", s.Errors())
	}
}

func TestBuilderDuplicateOwnerCollision(t *testing.T) {
	b := NewBuilder()
	b.Option("name", "--name")
	b.Positional("name", 0)

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected duplicate owner to be reported")
	}
}

func TestBuilderNegationCollision(t *testing.T) {
	b := NewBuilder()
	b.Option("cache", "--no-cache")
	b.Option("enable-cache", "--cache").Bool().Negatable()

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected negation collision to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrNegationCollision {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrNegationCollision, got %v", s.Errors())
	}
}

func TestBuilderInheritanceCycleDetected(t *testing.T) {
	b := NewBuilder()
	a := b.Fragment("a")
	c := b.Fragment("c")
	a.Inherits(c.Handle())
	c.Inherits(a.Handle())

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected inheritance cycle to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrInheritanceCycle {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrInheritanceCycle, got %v", s.Errors())
	}
}

func TestBuilderInheritanceClosureOrder(t *testing.T) {
	b := NewBuilder()
	base := b.Fragment("base")
	mid := b.Fragment("mid")
	mid.Inherits(base.Handle())
	leaf := b.Domain("leaf", "leaf")
	leaf.Inherits(mid.Handle())

	s := b.Build()
	if !s.Valid() {
		t.Fatalf("unexpected construction errors: %v", s.Errors())
	}
	closure := s.InheritanceClosure("leaf")
	if len(closure) != 3 {
		t.Fatalf("expected closure of 3, got %d: %v", len(closure), closure)
	}
	if closure[0].Owner != "leaf" || closure[1].Owner != "mid" || closure[2].Owner != "base" {
		t.Fatalf("unexpected closure order: %v", closure)
	}
}

func TestBuilderPositionalOrderingDuplicateSequence(t *testing.T) {
	b := NewBuilder()
	b.Positional("first", 0).String()
	b.Positional("second", 0).String()

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected duplicate positional sequence to be reported")
	}
}

func TestBuilderVariadicMustBeLast(t *testing.T) {
	b := NewBuilder()
	b.Positional("files", 0).String().List()
	b.Positional("mode", 1).String()

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected variadic-not-last to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrVariadicNotLast {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrVariadicNotLast, got %v", s.Errors())
	}
}

func TestBuilderMultipleVariadicRejected(t *testing.T) {
	b := NewBuilder()
	b.Positional("a", 0).String().List()
	b.Positional("b", 1).String().Set()

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected multiple-variadic to be reported")
	}
}

func TestBuilderDomainAliasCollision(t *testing.T) {
	b := NewBuilder()
	b.Domain("deploy", "deploy", "d")
	b.Domain("destroy", "destroy", "d")

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected domain alias collision to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrDuplicateDomainAlias {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrDuplicateDomainAlias, got %v", s.Errors())
	}
}

func TestBuilderUnknownOwnerRefInConstraint(t *testing.T) {
	b := NewBuilder()
	b.Option("name", "--name").String()
	b.Require("ghost")

	s := b.Build()
	if s.Valid() {
		t.Fatalf("expected unknown owner ref to be reported")
	}
	found := false
	for _, e := range s.Errors() {
		if e.Kind == ErrUnknownOwnerRef {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrUnknownOwnerRef, got %v", s.Errors())
	}
}

func TestBuilderValidSchemaLookups(t *testing.T) {
	b := NewBuilder()
	b.Option("verbose", "--verbose", "-v").Flag()
	b.Domain("deploy", "deploy")
	b.Positional("target", 0).String().Domains("deploy")

	s := b.Build()
	if !s.Valid() {
		t.Fatalf("unexpected construction errors: %v", s.Errors())
	}
	if _, _, ok := s.LookupSwitch("--verbose"); !ok {
		t.Fatalf("expected --verbose to resolve")
	}
	if _, ok := s.LookupDomainToken("deploy"); !ok {
		t.Fatalf("expected deploy domain to resolve")
	}
	schedule := s.PositionalSchedule("deploy")
	if len(schedule) != 1 || schedule[0].Owner != "target" {
		t.Fatalf("expected target in deploy schedule, got %v", schedule)
	}
	if len(s.PositionalSchedule("")) != 0 {
		t.Fatalf("expected target not visible at root")
	}
}
