package nav

import (
	"testing"

	"github.com/goliatone/go-docrepo/pkg/interfaces"
)

func ordered(slugs ...string) []interfaces.DocumentSummary {
	out := make([]interfaces.DocumentSummary, len(slugs))
	for i, slug := range slugs {
		out[i] = interfaces.DocumentSummary{Slug: slug}
	}
	return out
}

func TestSiblings_Middle(t *testing.T) {
	list := ordered("a/one", "a/two", "a/three")

	prev, next := Siblings("a/two", list)
	if prev == nil || *prev != "a/one" {
		t.Fatalf("prev mismatch: %v", prev)
	}
	if next == nil || *next != "a/three" {
		t.Fatalf("next mismatch: %v", next)
	}
}

func TestSiblings_Boundaries(t *testing.T) {
	list := ordered("a/one", "a/two")

	prev, next := Siblings("a/one", list)
	if prev != nil {
		t.Fatalf("first document must have no prev, got %q", *prev)
	}
	if next == nil || *next != "a/two" {
		t.Fatalf("next mismatch: %v", next)
	}

	prev, next = Siblings("a/two", list)
	if prev == nil || *prev != "a/one" {
		t.Fatalf("prev mismatch: %v", prev)
	}
	if next != nil {
		t.Fatalf("last document must have no next, got %q", *next)
	}
}

func TestSiblings_Symmetric(t *testing.T) {
	list := ordered("a/one", "a/two", "a/three", "a/four")

	for i := 0; i < len(list)-1; i++ {
		_, next := Siblings(list[i].Slug, list)
		if next == nil {
			t.Fatalf("document %q should have a next", list[i].Slug)
		}
		prev, _ := Siblings(*next, list)
		if prev == nil || *prev != list[i].Slug {
			t.Fatalf("navigation asymmetric: %q.next=%q but %q.prev=%v", list[i].Slug, *next, *next, prev)
		}
	}
}

func TestSiblings_SingleAndUnknown(t *testing.T) {
	single := ordered("a/only")

	prev, next := Siblings("a/only", single)
	if prev != nil || next != nil {
		t.Fatalf("single document must have no siblings: %v %v", prev, next)
	}

	prev, next = Siblings("a/missing", single)
	if prev != nil || next != nil {
		t.Fatalf("unknown slug must have no siblings: %v %v", prev, next)
	}
}
