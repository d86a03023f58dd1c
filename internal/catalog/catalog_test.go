package catalog

import "testing"

func testTerms() []Term {
	return []Term{
		{ID: "t1", Name: "二分法探索", Category: "情報技術の基礎", Subcategory: "プログラミング"},
		{ID: "t2", Name: "再帰", Category: "情報技術の基礎", Subcategory: "プログラミング"},
		{ID: "t3", Name: "2進数", Category: "情報技術の基礎", Subcategory: "データ表現"},
		{ID: "t4", Name: "DNS", Category: "ネットワーク", Subcategory: "プロトコル"},
	}
}

func TestTaxonomyOrder(t *testing.T) {
	c := New(testTerms())

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "情報技術の基礎" || cats[1] != "ネットワーク" {
		t.Fatalf("unexpected categories: %v", cats)
	}

	subs := c.Subcategories("情報技術の基礎")
	if len(subs) != 2 || subs[0] != "プログラミング" || subs[1] != "データ表現" {
		t.Fatalf("unexpected subcategories: %v", subs)
	}

	if c.Subcategories("unknown") != nil {
		t.Fatal("expected nil subcategories for unknown category")
	}
}

func TestByID(t *testing.T) {
	c := New(testTerms())

	term, ok := c.ByID("t3")
	if !ok || term.Name != "2進数" {
		t.Fatalf("ByID(t3) = %v, %v", term, ok)
	}

	if _, ok := c.ByID("missing"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestTermsIn(t *testing.T) {
	c := New(testTerms())

	got := c.TermsIn("情報技術の基礎", "プログラミング")
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t2" {
		t.Fatalf("unexpected terms: %v", got)
	}

	if got := c.TermsIn("ネットワーク", "ウェブ"); len(got) != 0 {
		t.Fatalf("expected empty term list, got %v", got)
	}
}

func TestHasSubcategory(t *testing.T) {
	c := New(testTerms())

	if !c.HasSubcategory("ネットワーク", "プロトコル") {
		t.Fatal("expected subcategory to exist")
	}
	if c.HasSubcategory("ネットワーク", "プログラミング") {
		t.Fatal("subcategory is scoped to its parent category")
	}
}

func TestCountIn(t *testing.T) {
	c := New(testTerms())
	if got := c.CountIn("情報技術の基礎"); got != 3 {
		t.Fatalf("CountIn = %d, want 3", got)
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	terms := testTerms()
	c := New(terms)
	terms[0].Name = "mutated"

	term, _ := c.ByID("t1")
	if term.Name != "二分法探索" {
		t.Fatal("catalog must not alias the caller's slice")
	}
}
