package search

import (
	"testing"

	"github.com/ayumu/zukan/internal/catalog"
)

func fixtureTerms() []catalog.Term {
	return []catalog.Term{
		{ID: "1", Name: "二分法探索", Category: "情報技術の基礎", Subcategory: "プログラミング"},
		{ID: "2", Name: "DNS", Category: "ネットワーク", Subcategory: "プロトコル"},
		{ID: "3", Name: "HTTPとHTTPS", Category: "ネットワーク", Subcategory: "プロトコル"},
		{ID: "4", Name: "ハッシュ関数", Category: "セキュリティ", Subcategory: "暗号技術"},
	}
}

func TestFilterEmptyQueryReturnsWholeCatalog(t *testing.T) {
	terms := fixtureTerms()
	got := Filter(terms, "")
	if len(got) != len(terms) {
		t.Fatalf("empty query: got %d terms, want %d", len(got), len(terms))
	}
	for i := range got {
		if got[i].ID != terms[i].ID {
			t.Fatalf("order changed at %d: %s", i, got[i].ID)
		}
	}
}

func TestFilterSubstringMatch(t *testing.T) {
	terms := fixtureTerms()

	tests := []struct {
		query string
		want  []string
	}{
		{"二分", []string{"1"}},
		{"dns", []string{"2"}},          // case-insensitive
		{"HTTPS", []string{"3"}},        // substring anywhere in the name
		{"ハッシュ", []string{"4"}},
		{"ッ", []string{"4"}},           // single rune substring
		{"存在しない用語", nil},
	}

	for _, tt := range tests {
		got := Filter(terms, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q): got %d results, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("Filter(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
			}
		}
	}
}

func TestFilterNoMatchIsEmptyNotNilQuery(t *testing.T) {
	terms := fixtureTerms()

	got := Filter(terms, "xyz")
	if len(got) != 0 {
		t.Fatalf("expected zero matches, got %d", len(got))
	}
	// The distinction from the empty-query case is carried by the query
	// itself: a non-empty query with zero results is a "no results"
	// state, never the unfiltered view.
	if len(Filter(terms, "")) == 0 {
		t.Fatal("empty query must not be empty")
	}
}

func TestFilterMatchesNameOnly(t *testing.T) {
	terms := []catalog.Term{
		{ID: "1", Name: "DNS", Description: "ドメイン名", Content: "<p>firewall</p>"},
	}

	if got := Filter(terms, "ドメイン"); len(got) != 0 {
		t.Fatal("description must not be searched")
	}
	if got := Filter(terms, "firewall"); len(got) != 0 {
		t.Fatal("content must not be searched")
	}
}

func TestFavoritesProjection(t *testing.T) {
	c := catalog.New(fixtureTerms())
	favs := map[string]bool{"4": true, "2": true, "stale": true}

	got := Favorites(c, favs)
	if len(got) != 2 {
		t.Fatalf("got %d favorites, want 2", len(got))
	}
	// Catalog order, not favorite-insertion order.
	if got[0].ID != "2" || got[1].ID != "4" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}
