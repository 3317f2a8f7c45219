package value

import "testing"

func TestCellMonotonicSource(t *testing.T) {
	c := NewCell("name", ArityScalar)
	c.BindScalar("a", SourceDefault)
	if c.Source != SourceDefault {
		t.Fatalf("source = %v, want default", c.Source)
	}
	c.BindScalar("b", SourceEnvironment)
	if c.Source != SourceEnvironment {
		t.Fatalf("source = %v, want environment", c.Source)
	}
	c.BindScalar("c", SourceUser)
	if c.Source != SourceUser {
		t.Fatalf("source = %v, want user", c.Source)
	}
	// re-binding at user stays at user
	c.BindScalar("d", SourceUser)
	if c.Source != SourceUser {
		t.Fatalf("source regressed to %v", c.Source)
	}
}

func TestCellRegressionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on source regression")
		}
	}()
	c := NewCell("name", ArityScalar)
	c.BindScalar("a", SourceUser)
	c.BindScalar("b", SourceDefault)
}

func TestCellSetDedupByKey(t *testing.T) {
	c := NewCell("tag", ArritySet)
	c.AppendSet("a", "a", []string{"a"}, SourceUser)
	c.AppendSet("b", "b", []string{"b"}, SourceUser)
	c.AppendSet("a", "a", []string{"a"}, SourceUser)
	if got := c.Set(); len(got) != 2 {
		t.Fatalf("Set() = %v, want 2 elements", got)
	}
}

func TestCellMissingDistinguishableFromEmpty(t *testing.T) {
	missing := NewCell("x", ArityList)
	if missing.Bound() {
		t.Fatal("fresh cell should not be bound")
	}
	bound := NewCell("y", ArityList)
	bound.setSource(SourceUser) // explicit empty occurrence, e.g. a flag with zero args
	if !bound.Bound() {
		t.Fatal("explicitly sourced cell should be bound even with no elements")
	}
	if bound.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", bound.Len())
	}
}
