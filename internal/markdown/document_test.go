package markdown

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Document" {
		t.Fatalf("front matter title mismatch, got %q", fm.Title)
	}
	if fm.Difficulty != "intermediate" {
		t.Fatalf("front matter difficulty mismatch, got %q", fm.Difficulty)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "docs" {
		t.Fatalf("front matter tags mismatch: %#v", fm.Tags)
	}
	if len(fm.Related) != 1 || fm.Related[0] != "guides/other-document" {
		t.Fatalf("front matter related mismatch: %#v", fm.Related)
	}
	if !strings.Contains(string(body), "# Body Heading") {
		t.Fatalf("markdown body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "Sample Document") {
		t.Fatalf("front matter block leaked into body")
	}
}

func TestParseFrontMatter_NoBlock(t *testing.T) {
	source := []byte("# Plain\n\nNo front matter here.\n")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || fm.Difficulty != "" || len(fm.Tags) != 0 {
		t.Fatalf("expected zero-value front matter, got %#v", fm)
	}
	if string(body) != string(source) {
		t.Fatalf("body should pass through unchanged, got %q", string(body))
	}
}

func TestParseFrontMatter_UnknownDifficultyDropped(t *testing.T) {
	source := []byte("---\ndifficulty: impossible\n---\nbody\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Difficulty != "" {
		t.Fatalf("expected unknown difficulty to be dropped, got %q", fm.Difficulty)
	}
}

func TestBuildDocument_FrontMatterWins(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	doc, err := BuildDocument("guides/sample.md", "guides/sample", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.Title != "Sample Document" {
		t.Fatalf("expected front matter title, got %q", doc.Title)
	}
	if doc.Description != "Structured metadata wins over body conventions" {
		t.Fatalf("expected front matter description, got %q", doc.Description)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatalf("expected BodyHTML to stay empty until rendered")
	}
}

func TestBuildDocument_BodyConventions(t *testing.T) {
	source := []byte("# From Heading\n\n**Purpose:** From purpose line.\n")

	doc, err := BuildDocument("a/b.md", "a/b", source, time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Title != "From Heading" {
		t.Fatalf("expected body heading title, got %q", doc.Title)
	}
	if doc.Description != "From purpose line." {
		t.Fatalf("expected purpose description, got %q", doc.Description)
	}
}

func TestBuildDocument_FallbackTitle(t *testing.T) {
	doc, err := BuildDocument("guides/error-handling.md", "guides/error-handling", []byte("plain body\n"), time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Title != "Error Handling" {
		t.Fatalf("expected humanized fallback title, got %q", doc.Title)
	}
	if doc.Description != "" {
		t.Fatalf("expected empty description, got %q", doc.Description)
	}
}

func TestReadDocument_WrapsReadFailure(t *testing.T) {
	fsys := fstest.MapFS{}

	_, err := ReadDocument(fsys, "missing.md", "missing")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !IsReadError(err) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestIsReadError_MatchesOnlyReadFailures(t *testing.T) {
	if IsReadError(errors.New("boom")) {
		t.Fatalf("plain errors must not match")
	}
	if IsReadError(nil) {
		t.Fatalf("nil must not match")
	}

	_, _, err := ParseFrontMatter([]byte("---\ntitle: [broken\n---\nbody\n"))
	if err == nil {
		t.Fatalf("expected front matter parse error")
	}
	if IsReadError(err) {
		t.Fatalf("parse failures must not match the read-failure code")
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
