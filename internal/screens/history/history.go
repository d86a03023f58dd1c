// Package history shows the recorded term views, newest first.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/router"
	"github.com/ayumu/zukan/internal/screen"
	"github.com/ayumu/zukan/internal/store"
	"github.com/ayumu/zukan/internal/ui/layout"
	"github.com/ayumu/zukan/internal/ui/theme"
)

type historyLoadedMsg struct {
	Events []*store.ViewEvent
	Total  int
	Err    error
}

// Screen displays the viewing history of the current profile scope.
type Screen struct {
	views store.ViewEventRepo
	auth  *auth.Session

	events   []*store.ViewEvent
	total    int
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a history screen.
func New(views store.ViewEventRepo, authSession *auth.Session) *Screen {
	return &Screen{views: views, auth: authSession}
}

func (s *Screen) Init() tea.Cmd {
	profileID := 0
	if u := s.auth.Current(); u != nil {
		profileID = u.ID
	}
	return func() tea.Msg {
		ctx := context.Background()
		events, err := s.views.Recent(ctx, profileID, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		total, err := s.views.Count(ctx, profileID)
		if err != nil {
			return historyLoadedMsg{Events: events, Total: len(events)}
		}
		return historyLoadedMsg{Events: events, Total: total}
	}
}

func (s *Screen) Title() string {
	return "閲覧履歴"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選ぶ"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.events = msg.Events
		s.total = msg.Total
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n " + theme.Incorrect.Render("履歴を読み込めませんでした: "+s.errMsg)
	}
	if !s.loaded {
		return "\n " + theme.Hint.Render("読み込み中...")
	}
	if len(s.events) == 0 {
		return "\n " + theme.Hint.Render("まだ履歴がありません。図鑑で用語を開くとここに並びます。")
	}

	var b strings.Builder
	b.WriteString("\n " + theme.Subtitle.Render(fmt.Sprintf("これまでに %d 回用語を開きました", s.total)) + "\n\n")

	visible := height - 5
	if visible < 1 {
		visible = len(s.events)
	}
	for i, ev := range s.events {
		if i >= visible {
			break
		}
		when := theme.CountBadge.Render(ev.Timestamp.Format("01/02 15:04"))
		line := fmt.Sprintf("%s  %s", when, ev.TermName)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	return b.String()
}
