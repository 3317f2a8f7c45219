package argos

import "testing"

func TestFacadeParseEndToEnd(t *testing.T) {
	b := NewBuilder()
	b.Option("name", "--name").String().Required(1)
	sch := b.Build()

	out := Parse(sch, []string{"--name", "Ada"})
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	v, ok := out.Get("name")
	if !ok || v != "Ada" {
		t.Fatalf("expected name=Ada, got %v ok=%v", v, ok)
	}
}

func TestFacadeExitCode(t *testing.T) {
	b := NewBuilder()
	b.Option("name", "--name").String().Required(1)
	sch := b.Build()

	out := Parse(sch, []string{})
	if out.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out.Kind)
	}
	if code := ExitCode(out); code == 0 {
		t.Fatalf("expected a non-zero exit code for a failed parse")
	}

	okOut := Parse(sch, []string{"--name", "Ada"})
	if code := ExitCode(okOut); code != 0 {
		t.Fatalf("expected exit code 0 for a successful parse, got %d", code)
	}
}
