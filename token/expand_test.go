package token

import "testing"

type fakeReader map[string]string

func (f fakeReader) ReadFile(path string) (string, error) {
	c, ok := f[path]
	if !ok {
		return "", &notFoundError{path}
	}
	return c, nil
}

type notFoundError struct{ path string }

func (e *notFoundError) Error() string { return "file not found: " + e.path }

func TestExpandFilesSplicesContent(t *testing.T) {
	reader := fakeReader{"args.txt": `--name "Ada Lovelace" --verbose`}
	out, err := ExpandFiles([]string{"@args.txt"}, '@', true, 16, reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"--name", "Ada Lovelace", "--verbose"}
	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, out)
		}
	}
}

func TestExpandFilesRecursiveDepthLimit(t *testing.T) {
	reader := fakeReader{"a.txt": "@a.txt"}
	_, err := ExpandFiles([]string{"@a.txt"}, '@', true, 3, reader)
	if err == nil {
		t.Fatalf("expected depth-limit error on self-referencing file")
	}
}

func TestExpandFilesDisabledPassesThrough(t *testing.T) {
	out, err := ExpandFiles([]string{"@args.txt"}, '@', false, 16, fakeReader{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != "@args.txt" {
		t.Fatalf("expected pass-through, got %v", out)
	}
}

func TestExpandFilesMissingFileErrors(t *testing.T) {
	_, err := ExpandFiles([]string{"@missing.txt"}, '@', true, 16, fakeReader{})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
