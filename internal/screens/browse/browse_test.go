package browse

import (
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/favorites"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Term{
		{ID: "http", Name: "HTTP", Category: "ネットワーク", Subcategory: "プロトコル"},
		{ID: "https", Name: "HTTPS", Category: "ネットワーク", Subcategory: "プロトコル"},
		{ID: "dns", Name: "DNS", Category: "ネットワーク", Subcategory: "プロトコル"},
	})
}

func testScreen() *Screen {
	session := auth.NewSession(nil)
	favs := favorites.NewService(nil, session)
	return New(fixtureCatalog(), session, favs, nil, nil, rand.New(rand.NewSource(1)))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSearchCursorStaysVisibleWhileTyping(t *testing.T) {
	s := testScreen()

	s.Update(keyPress('/'))
	if !s.searchBox.Focused() {
		t.Fatal("expected search box focused after /")
	}
	s.Update(keyPress('h'))

	if got := len(s.machine.Visible()); got != 2 {
		t.Fatalf("expected 2 results for %q, got %d", "h", got)
	}

	s.Update(specialKey(tea.KeyDown))
	if s.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", s.cursor)
	}
	if !s.searchBox.Focused() {
		t.Fatal("moving the cursor must not blur the search box")
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "▸ HTTPS") {
		t.Fatalf("selected result not highlighted while search is focused:\n%s", view)
	}
	if strings.Count(view, "▸") != 1 {
		t.Fatalf("expected exactly one highlighted row:\n%s", view)
	}
}
