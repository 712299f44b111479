package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func defaultConfig() Config {
	return Config{
		ExcludeBasenames: []string{"readme.md", "overview.md", "documentation-index.md"},
		ExcludePrefixes:  []string{"diagram-"},
	}
}

func TestListDocumentFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"guides/error-handling.md":        &fstest.MapFile{Data: []byte("# Errors")},
		"guides/concurrency.md":           &fstest.MapFile{Data: []byte("# Concurrency")},
		"patterns/singleton.md":           &fstest.MapFile{Data: []byte("# Singleton")},
		"patterns/factory_method.md":      &fstest.MapFile{Data: []byte("# Factory")},
		"guides/README.md":                &fstest.MapFile{Data: []byte("nav aid")},
		"guides/overview.md":              &fstest.MapFile{Data: []byte("nav aid")},
		"patterns/documentation-index.md": &fstest.MapFile{Data: []byte("nav aid")},
		"patterns/diagram-singleton.md":   &fstest.MapFile{Data: []byte("diagram")},
		"guides/notes.txt":                &fstest.MapFile{Data: []byte("not markdown")},
	}

	cat := New(fsys, defaultConfig())
	entries, err := cat.ListDocumentFiles(context.Background())
	if err != nil {
		t.Fatalf("ListDocumentFiles: %v", err)
	}

	want := []Entry{
		{Path: "guides/concurrency.md", Slug: "guides/concurrency"},
		{Path: "guides/error-handling.md", Slug: "guides/error-handling"},
		{Path: "patterns/factory_method.md", Slug: "patterns/factory-method"},
		{Path: "patterns/singleton.md", Slug: "patterns/singleton"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %#v", len(want), len(entries), entries)
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Fatalf("entry %d mismatch: got %#v, want %#v", i, entry, want[i])
		}
	}
}

func TestListDocumentFiles_Deterministic(t *testing.T) {
	fsys := fstest.MapFS{
		"b/two.md":   &fstest.MapFile{Data: []byte("x")},
		"a/one.md":   &fstest.MapFile{Data: []byte("x")},
		"a/three.md": &fstest.MapFile{Data: []byte("x")},
	}

	cat := New(fsys, defaultConfig())

	first, err := cat.ListDocumentFiles(context.Background())
	if err != nil {
		t.Fatalf("first walk: %v", err)
	}
	second, err := cat.ListDocumentFiles(context.Background())
	if err != nil {
		t.Fatalf("second walk: %v", err)
	}

	if len(first) != 3 || first[0].Slug != "a/one" || first[1].Slug != "a/three" || first[2].Slug != "b/two" {
		t.Fatalf("unexpected order: %#v", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order changed between walks at %d: %#v vs %#v", i, first[i], second[i])
		}
	}
}

func TestListDocumentFiles_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	cat := New(os.DirFS(missing), defaultConfig())
	_, err := cat.ListDocumentFiles(context.Background())
	if !errors.Is(err, ErrRootUnavailable) {
		t.Fatalf("expected ErrRootUnavailable, got %v", err)
	}
}

func TestListDocumentFiles_NilFilesystem(t *testing.T) {
	cat := New(nil, defaultConfig())
	if _, err := cat.ListDocumentFiles(context.Background()); !errors.Is(err, ErrRootUnavailable) {
		t.Fatalf("expected ErrRootUnavailable, got %v", err)
	}
}

func TestListDocumentFiles_ContextCancelled(t *testing.T) {
	fsys := fstest.MapFS{
		"a/one.md": &fstest.MapFile{Data: []byte("x")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cat := New(fsys, defaultConfig())
	if _, err := cat.ListDocumentFiles(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSlugForPath(t *testing.T) {
	cases := map[string]string{
		"guides/error-handling.md": "guides/error-handling",
		"guides/error_handling.md": "guides/error-handling",
		"Guides/Mixed-Case.md":     "guides/mixed-case",
		"intro.md":                 "intro",
	}
	for path, want := range cases {
		got, ok := SlugForPath(path)
		if !ok || got != want {
			t.Fatalf("SlugForPath(%q) = %q,%v want %q", path, got, ok, want)
		}
	}

	if _, ok := SlugForPath(""); ok {
		t.Fatalf("empty path must not produce a slug")
	}
}
