package viperdefaults

import (
	"testing"

	"github.com/spf13/viper"
)

func TestReaderLookupReflectsViperKeys(t *testing.T) {
	v := viper.New()
	v.Set("port", "9090")
	r := NewReader(v)

	got, ok := r.Lookup("port")
	if !ok || got != "9090" {
		t.Fatalf("expected port=9090, got %q ok=%v", got, ok)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
}

func TestReaderNilViperIsEmpty(t *testing.T) {
	r := NewReader(nil)
	if _, ok := r.Lookup("anything"); ok {
		t.Fatalf("expected nil-viper reader to report nothing set")
	}
}

func TestDefaultFromReadsLazily(t *testing.T) {
	v := viper.New()
	fn := DefaultFrom(v, "region")
	if got := fn(); got != nil {
		t.Fatalf("expected nil before the key is set, got %v", got)
	}

	v.Set("region", "us-east-1")
	if got := fn(); got != "us-east-1" {
		t.Fatalf("expected us-east-1, got %v", got)
	}
}

func TestLoadMissingConfigFileIsNotAnError(t *testing.T) {
	v, err := Load("/nonexistent/path/config.yaml", "ARGOS")
	if err != nil {
		t.Fatalf("expected a missing config file to be tolerated, got %v", err)
	}
	if v == nil {
		t.Fatalf("expected a usable viper instance back")
	}
}
