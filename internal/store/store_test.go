package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Create(ctx, "あゆむ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 || p.UID == "" {
		t.Fatalf("profile missing identifiers: %+v", p)
	}

	got, err := repo.ByName(ctx, "あゆむ")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("lookup returned a different profile: %d vs %d", got.ID, p.ID)
	}

	if _, err := repo.ByName(ctx, "いない"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Create(ctx, "あゆむ"); err == nil {
		t.Fatal("duplicate name must be rejected")
	}
}

func TestProfileList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for _, name := range []string{"p1", "p2"} {
		if _, err := repo.Create(ctx, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	profiles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 2 || profiles[0].Name != "p1" {
		t.Fatalf("unexpected list: %+v", profiles)
	}
}

func TestFavoriteSetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.ProfileRepo().Create(ctx, "fav")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	repo := s.FavoriteRepo()

	// Empty by default.
	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}

	// Whole-set replace.
	if err := repo.Set(ctx, p.ID, map[string]bool{"t1": true, "t2": true}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, p.ID, map[string]bool{"t2": true, "t3": true}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err = repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if len(got) != 2 || !got["t2"] || !got["t3"] || got["t1"] {
		t.Fatalf("unexpected set: %v", got)
	}
}

func TestFavoriteSetIgnoresFalseEntries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, _ := s.ProfileRepo().Create(ctx, "fav2")
	repo := s.FavoriteRepo()

	if err := repo.Set(ctx, p.ID, map[string]bool{"on": true, "off": false}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ := repo.Get(ctx, p.ID)
	if len(got) != 1 || !got["on"] {
		t.Fatalf("unexpected set: %v", got)
	}
}

func TestProfileDeleteRemovesFavorites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, _ := s.ProfileRepo().Create(ctx, "gone")
	_ = s.FavoriteRepo().Set(ctx, p.ID, map[string]bool{"t1": true})

	if err := s.ProfileRepo().Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := s.FavoriteRepo().Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("favorites survived profile delete: %v", got)
	}
}

func TestViewEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ViewEventRepo()
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		err := repo.Append(ctx, ViewEventData{ProfileID: 1, TermID: id, TermName: "name-" + id})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	// A different scope must not leak in.
	_ = repo.Append(ctx, ViewEventData{ProfileID: 2, TermID: "other", TermName: "other"})

	events, err := repo.Recent(ctx, 1, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].TermID != "t3" || events[1].TermID != "t2" {
		t.Fatalf("unexpected order: %s, %s", events[0].TermID, events[1].TermID)
	}

	n, err := repo.Count(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}
