package parser

import (
	"fmt"
	"testing"

	"github.com/sourcegraph/conc"

	"argos/schema"
	"argos/token"
	"argos/value"
)

type fakeEnv map[string]string

func (f fakeEnv) Lookup(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

type fakeFiles map[string]string

func (f fakeFiles) ReadFile(path string) (string, error) {
	return f[path], nil
}

func providersWith(env fakeEnv) Providers {
	return Providers{Env: env, File: token.OSFileReader{}}
}

func TestS1BasicRequired(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("name", "--name").String().Required(1)
	sch := b.Build()

	out := Parse(sch, []string{"--name", "Ada"}, providersWith(nil))
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	v, ok := out.Get("name")
	if !ok || v != "Ada" {
		t.Fatalf("expected name=Ada, got %v ok=%v", v, ok)
	}
	if out.Provenance("name") != value.SourceUser {
		t.Fatalf("expected source user, got %s", out.Provenance("name"))
	}

	out2 := Parse(sch, []string{}, providersWith(nil))
	if out2.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out2.Kind)
	}
	if len(out2.Errors) != 1 || out2.Errors[0].Kind.String() != "missing-required" {
		t.Fatalf("expected one missing-required error, got %v", out2.Errors)
	}
}

func TestS2ClusterWithValue(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("v", "-v").Flag()
	b.Option("q", "-q").Flag()
	b.Option("n", "-n").Int()
	sch := b.Build()

	out := Parse(sch, []string{"-vn42"}, providersWith(nil))
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	v, _ := out.Get("v")
	n, _ := out.Get("n")
	if v != true || n != int64(42) {
		t.Fatalf("expected v=true n=42, got v=%v n=%v", v, n)
	}
	if _, ok := out.Get("q"); ok {
		t.Fatalf("expected q unbound")
	}

	out2 := Parse(sch, []string{"-vqn", "7"}, providersWith(nil))
	if out2.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out2.Kind, out2.Errors)
	}
	v2, _ := out2.Get("v")
	q2, _ := out2.Get("q")
	n2, _ := out2.Get("n")
	if v2 != true || q2 != true || n2 != int64(7) {
		t.Fatalf("expected v=q=true n=7, got v=%v q=%v n=%v", v2, q2, n2)
	}
}

func buildS3(t *testing.T) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder()
	b.Option("key", "--key").String()
	b.Option("token", "--token").String()
	b.Option("env", "--env").String()
	auth := b.Fragment("auth")
	auth.Group(schema.GroupExactlyOne, "key", "token")
	deploy := b.Domain("deploy", "deploy")
	deploy.Inherits(auth.Handle())
	deploy.Require("env")
	sch := b.Build()
	if !sch.Valid() {
		t.Fatalf("unexpected schema errors: %v", sch.Errors())
	}
	return sch
}

func TestS3DomainScopedFragmentInheritance(t *testing.T) {
	sch := buildS3(t)

	out := Parse(sch, []string{"deploy", "--env", "prod", "--key", "K"}, providersWith(nil))
	if out.Kind != Parsed || out.ActiveDomain != "deploy" {
		t.Fatalf("expected Parsed in deploy domain, got %s (%s): %v", out.Kind, out.ActiveDomain, out.Errors)
	}

	out2 := Parse(sch, []string{"deploy", "--env", "prod", "--key", "K", "--token", "T"}, providersWith(nil))
	if out2.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out2.Kind)
	}
	found := false
	for _, e := range out2.Errors {
		if e.Kind.String() == "group-violation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected group-violation, got %v", out2.Errors)
	}

	out3 := Parse(sch, []string{"deploy", "--key", "K"}, providersWith(nil))
	if out3.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out3.Kind)
	}
	found = false
	for _, e := range out3.Errors {
		if e.Kind.String() == "missing-required" && e.Owner == "env" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing-required for env, got %v", out3.Errors)
	}
}

func TestS4EnvironmentFallbackAndPrecedence(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("port", "--port").Int().Env("PORT").DefaultValue(int64(8080))
	b.RequireIfAnyPresent("confirmed", "port")
	b.Option("confirmed", "--confirmed").Flag()
	sch := b.Build()
	if !sch.Valid() {
		t.Fatalf("unexpected schema errors: %v", sch.Errors())
	}

	out := Parse(sch, []string{}, providersWith(fakeEnv{"PORT": "9090"}))
	if out.Kind != Failed {
		t.Fatalf("expected Failed (env-sourced port counts as present), got %s: %v", out.Kind, out.Errors)
	}

	out2 := Parse(sch, []string{"--port", "7000"}, providersWith(fakeEnv{}))
	if out2.Kind != Failed {
		t.Fatalf("expected Failed (user-sourced port counts as present), got %s: %v", out2.Kind, out2.Errors)
	}
	v, _ := out2.Get("port")
	if v != int64(7000) {
		t.Fatalf("expected port=7000, got %v", v)
	}

	out3 := Parse(sch, []string{}, providersWith(fakeEnv{}))
	if out3.Kind != Parsed {
		t.Fatalf("expected Parsed (defaulted port does not count as present), got %s: %v", out3.Kind, out3.Errors)
	}
	v3, _ := out3.Get("port")
	if v3 != int64(8080) {
		t.Fatalf("expected port=8080 (default), got %v", v3)
	}
	if out3.Provenance("port") != value.SourceDefault {
		t.Fatalf("expected source default, got %s", out3.Provenance("port"))
	}
}

func TestS5EagerShortCircuit(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("name", "--name").String().Required(1)
	b.Option("help", "--help").Flag().Eager(schema.EagerHelp)
	sch := b.Build()

	out := Parse(sch, []string{"--help"}, providersWith(nil))
	if out.Kind != HelpRequested {
		t.Fatalf("expected HelpRequested, got %s", out.Kind)
	}

	out2 := Parse(sch, []string{"--help", "--name", "foo"}, providersWith(nil))
	if out2.Kind != HelpRequested {
		t.Fatalf("expected HelpRequested (eager wins), got %s: %v", out2.Kind, out2.Errors)
	}
}

func TestS6AggregationCap(t *testing.T) {
	b := schema.NewBuilder(schema.WithAggregationCap(3))
	b.Option("x", "--x").Int().List().Validate("{value} out of range", func(v any) bool {
		n, _ := v.(int64)
		return n >= 1 && n <= 10
	})
	sch := b.Build()

	out := Parse(sch, []string{
		"--x", "11", "--x", "12", "--x", "13", "--x", "14", "--x", "15",
	}, providersWith(nil))
	if out.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out.Kind)
	}
	if len(out.Errors) != 3 {
		t.Fatalf("expected exactly 3 errors (cap), got %d: %v", len(out.Errors), out.Errors)
	}
	if out.Suppressed == "" {
		t.Fatalf("expected a non-empty suppressed summary")
	}
}

func TestUnknownOptionSuggestsClosestSwitch(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("verbose", "--verbose").Flag()
	sch := b.Build()

	out := Parse(sch, []string{"--verbos"}, providersWith(nil))
	if out.Kind != Failed {
		t.Fatalf("expected Failed, got %s", out.Kind)
	}
	if len(out.Errors) != 1 || out.Errors[0].Kind.String() != "unknown-option" {
		t.Fatalf("expected one unknown-option error, got %v", out.Errors)
	}
	if len(out.Errors[0].Suggestions) == 0 || out.Errors[0].Suggestions[0] != "--verbose" {
		t.Fatalf("expected suggestion --verbose, got %v", out.Errors[0].Suggestions)
	}
}

func TestSentinelAbsorbsRemainingPositionals(t *testing.T) {
	b := schema.NewBuilder()
	b.Positional("files", 0).List()
	sch := b.Build()

	out := Parse(sch, []string{"--", "--not-a-flag", "-x"}, providersWith(nil))
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	cell := out.Cells["files"]
	if cell.Len() != 2 {
		t.Fatalf("expected 2 positionals absorbed, got %d (%v)", cell.Len(), cell.List())
	}
}

func TestFixedArityConsumesTupleAcrossTokens(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("region", "--region").Fixed(2).String()
	sch := b.Build()

	out := Parse(sch, []string{"--region", "us", "east-1"}, providersWith(nil))
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	cell := out.Cells["region"]
	if len(cell.Raw) != 1 || len(cell.Raw[0]) != 2 {
		t.Fatalf("expected one occurrence with a 2-string tuple, got %v", cell.Raw)
	}
}

func TestUnknownAsPositionalsDemotesUnmatchedSwitch(t *testing.T) {
	b := schema.NewBuilder(schema.WithUnknownAsPositionals())
	b.Positional("rest", 0).List()
	sch := b.Build()

	out := Parse(sch, []string{"--mystery"}, providersWith(nil))
	if out.Kind != Parsed {
		t.Fatalf("expected Parsed, got %s: %v", out.Kind, out.Errors)
	}
	cell := out.Cells["rest"]
	if cell.Len() != 1 || cell.List()[0] != "--mystery" {
		t.Fatalf("expected rest=[--mystery], got %v", cell.List())
	}
}

func TestConcurrentParseInvocationsShareNoState(t *testing.T) {
	b := schema.NewBuilder()
	b.Option("name", "--name").String().Required(1)
	sch := b.Build()

	var wg conc.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Go(func() {
			name := fmt.Sprintf("worker-%d", i)
			out := Parse(sch, []string{"--name", name}, providersWith(nil))
			if out.Kind != Parsed {
				t.Errorf("worker %d: expected Parsed, got %s: %v", i, out.Kind, out.Errors)
				return
			}
			got, _ := out.Get("name")
			if got != name {
				t.Errorf("worker %d: expected name=%q, got %q (cross-invocation state leak)", i, name, got)
			}
		})
	}
	wg.Wait()
}
