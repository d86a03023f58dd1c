package search

import (
	"fmt"
	"testing"

	"github.com/ayumu/zukan/internal/catalog"
)

func TestRecencyPushFront(t *testing.T) {
	r := NewRecency()
	r.Push("a")
	r.Push("b")
	r.Push("c")

	got := r.IDs()
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}
}

func TestRecencyDedupeMovesToFront(t *testing.T) {
	r := NewRecency()
	r.Push("a")
	r.Push("b")
	r.Push("a")

	got := r.IDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("IDs() = %v, want [a b]", got)
	}
}

func TestRecencyCap(t *testing.T) {
	r := NewRecency()
	for i := 0; i < RecencyCap+5; i++ {
		r.Push(fmt.Sprintf("id-%d", i))
	}

	if r.Len() != RecencyCap {
		t.Fatalf("Len() = %d, want %d", r.Len(), RecencyCap)
	}
	if r.IDs()[0] != fmt.Sprintf("id-%d", RecencyCap+4) {
		t.Fatalf("newest id missing from front: %v", r.IDs())
	}
}

func TestRecencyTermsDropsStaleIDs(t *testing.T) {
	c := catalog.New([]catalog.Term{
		{ID: "live", Name: "DNS", Category: "c", Subcategory: "s"},
	})

	r := NewRecency()
	r.Push("live")
	r.Push("gone")

	got := r.Terms(c)
	if len(got) != 1 || got[0].ID != "live" {
		t.Fatalf("Terms() = %v, want only the live term", got)
	}
	// The stale id stays in the list; it is only skipped at render time.
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}
