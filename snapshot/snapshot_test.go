package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"argos/schema"
)

func buildSample(t *testing.T) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder()
	b.Option("verbose", "--verbose", "-v").Flag().Negatable()
	b.Option("name", "--name").String().Required(1)
	auth := b.Fragment("auth")
	auth.Group(schema.GroupExactlyOne, "name")
	deploy := b.Domain("deploy", "deploy")
	deploy.Inherits(auth.Handle())
	s := b.Build()
	if !s.Valid() {
		t.Fatalf("unexpected schema errors: %v", s.Errors())
	}
	return s
}

func TestBuildReflectsOptionsAndDomains(t *testing.T) {
	s := buildSample(t)
	snap := Build(s)

	if len(snap.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(snap.Options))
	}
	if len(snap.Domains) != 2 {
		t.Fatalf("expected 2 domains (fragment + concrete), got %d", len(snap.Domains))
	}

	var verbose *OptionView
	for i := range snap.Options {
		if snap.Options[i].Owner == "verbose" {
			verbose = &snap.Options[i]
		}
	}
	if verbose == nil {
		t.Fatalf("verbose option missing from snapshot")
	}
	if len(verbose.NegationSwitches) == 0 {
		t.Fatalf("expected resolved negation switch for verbose, got none")
	}
	if verbose.NegationSwitches[0] != "--no-verbose" {
		t.Fatalf("expected --no-verbose, got %q", verbose.NegationSwitches[0])
	}
}

func TestBuildIsPure(t *testing.T) {
	s := buildSample(t)
	a := Build(s)
	b := Build(s)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("Build is not pure, diff:\n%s", diff)
	}
}

func TestSnapshotSerializationNilSafe(t *testing.T) {
	var snap *Snapshot
	if _, err := snap.YAML(); err == nil {
		t.Fatalf("expected error serializing nil snapshot to YAML")
	}
	if _, err := snap.JSON(); err == nil {
		t.Fatalf("expected error serializing nil snapshot to JSON")
	}
	if _, err := snap.JSONPretty(); err == nil {
		t.Fatalf("expected error pretty-serializing nil snapshot to JSON")
	}
}

func TestSnapshotJSONRoundTripShape(t *testing.T) {
	s := buildSample(t)
	snap := Build(s)

	b, err := snap.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("expected non-empty JSON output")
	}

	pretty, err := snap.JSONPretty()
	if err != nil {
		t.Fatalf("JSONPretty: %v", err)
	}
	if len(pretty) <= len(b) {
		t.Fatalf("expected pretty JSON to be longer than compact JSON")
	}

	y, err := snap.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if len(y) == 0 {
		t.Fatalf("expected non-empty YAML output")
	}
}

func TestConstraintViewCarriesDeclaringDomain(t *testing.T) {
	s := buildSample(t)
	snap := Build(s)

	var found bool
	for _, d := range snap.Domains {
		for _, c := range d.Constraints {
			if c.Kind == "group" && c.DeclaringDomain == "auth" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected group constraint tagged with declaring domain %q, domains: %+v", "auth", snap.Domains)
	}
}
