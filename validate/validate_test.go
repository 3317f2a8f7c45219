package validate

import (
	"testing"

	"argos/schema"
	"argos/value"
)

func TestOptionPerValuePredicateFailureRendersTemplate(t *testing.T) {
	b := schema.NewBuilder()
	ob := b.Option("port", "--port").Int()
	ob.Validate("{value} is not a valid port for {name}", func(v any) bool {
		n, _ := v.(int64)
		return n > 0 && n < 65536
	})
	s := b.Build()
	if !s.Valid() {
		t.Fatalf("unexpected schema errors: %v", s.Errors())
	}
	opt, _ := s.OptionByOwner("port")

	cell := value.NewCell("port", value.ArityScalar)
	cell.BindScalar(int64(99999), value.SourceUser)

	errs := Option(opt, cell)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Message != "99999 is not a valid port for port" {
		t.Fatalf("unexpected rendered message: %q", errs[0].Message)
	}
}

func TestOptionPerCollectionPredicate(t *testing.T) {
	b := schema.NewBuilder()
	ob := b.Option("tags", "--tags").String().List()
	ob.ValidateCollection("expected at most 2 tags, got {count}", func(count int) bool { return count <= 2 })
	s := b.Build()
	opt, _ := s.OptionByOwner("tags")

	cell := value.NewCell("tags", value.ArityList)
	cell.AppendList("a", nil, value.SourceUser)
	cell.AppendList("b", nil, value.SourceUser)
	cell.AppendList("c", nil, value.SourceUser)

	errs := Option(opt, cell)
	if len(errs) != 1 || errs[0].Message != "expected at most 2 tags, got 3" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestOptionUnboundCellSkipsValidation(t *testing.T) {
	b := schema.NewBuilder()
	ob := b.Option("port", "--port").Int()
	ob.Validate("bad", func(v any) bool { return false })
	s := b.Build()
	opt, _ := s.OptionByOwner("port")

	cell := value.NewCell("port", value.ArityScalar)
	if errs := Option(opt, cell); len(errs) != 0 {
		t.Fatalf("expected no errors for unbound cell, got %v", errs)
	}
}
