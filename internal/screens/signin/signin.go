// Package signin lets the user pick, create, or leave a local profile.
package signin

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/favorites"
	"github.com/ayumu/zukan/internal/router"
	"github.com/ayumu/zukan/internal/screen"
	"github.com/ayumu/zukan/internal/store"
	"github.com/ayumu/zukan/internal/ui/components"
	"github.com/ayumu/zukan/internal/ui/layout"
	"github.com/ayumu/zukan/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeCreate
)

type profilesLoadedMsg struct {
	Profiles []*store.Profile
	Err      error
}

type signedInMsg struct {
	Err error
}

// Screen is the profile selection screen.
type Screen struct {
	auth *auth.Session
	favs *favorites.Service

	mode     mode
	profiles []*store.Profile
	cursor   int
	input    components.TextInput
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the signin screen.
func New(authSession *auth.Session, favs *favorites.Service) *Screen {
	return &Screen{
		auth:  authSession,
		favs:  favs,
		input: components.NewTextInput("名前", "あたらしいプロフィール名", 24),
	}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		profiles, err := s.auth.Profiles(context.Background())
		return profilesLoadedMsg{Profiles: profiles, Err: err}
	}
}

func (s *Screen) Title() string {
	return "プロフィール"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeCreate {
		return []layout.KeyHint{
			{Key: "Enter", Description: "作成"},
			{Key: "Esc", Description: "キャンセル"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "選ぶ"},
		{Key: "Enter", Description: "サインイン"},
		{Key: "Esc", Description: "戻る"},
	}
}

// rowCount is the selectable rows: profiles, then "new", then
// "sign out" when signed in.
func (s *Screen) rowCount() int {
	n := len(s.profiles) + 1
	if s.auth.Current() != nil {
		n++
	}
	return n
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = "プロフィールを読み込めませんでした"
			log.Errorf("loading profiles: %v", msg.Err)
			return s, nil
		}
		s.profiles = msg.Profiles
		return s, nil

	case signedInMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		if s.mode == modeCreate {
			return s.handleCreateKey(msg)
		}
		return s.handleListKey(msg)
	}
	return s, nil
}

func (s *Screen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
	case "enter":
		switch {
		case s.cursor < len(s.profiles):
			name := s.profiles[s.cursor].Name
			return s, s.signIn(name)
		case s.cursor == len(s.profiles):
			s.mode = modeCreate
			s.input.Reset()
			return s, s.input.Focus()
		default:
			s.auth.SignOut()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) handleCreateKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		s.input.Blur()
		return s, nil
	case "enter":
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			s.errMsg = "名前を入力してください"
			return s, nil
		}
		return s, s.signUp(name)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) signIn(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := s.auth.SignIn(ctx, name); err != nil {
			return signedInMsg{Err: err}
		}
		if err := s.favs.Load(ctx); err != nil {
			log.Warnf("loading favorites for %s: %v", name, err)
		}
		return signedInMsg{}
	}
}

func (s *Screen) signUp(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := s.auth.SignUp(ctx, name); err != nil {
			return signedInMsg{Err: err}
		}
		if err := s.favs.Load(ctx); err != nil {
			log.Warnf("loading favorites for %s: %v", name, err)
		}
		return signedInMsg{}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(" " + theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	if s.mode == modeCreate {
		b.WriteString(theme.Subtitle.Render("あたらしいプロフィールを作る") + "\n\n")
		b.WriteString("  " + s.input.View() + "\n")
		return b.String()
	}

	if !s.loaded {
		return b.String() + theme.Hint.Render("  読み込み中...")
	}

	current := s.auth.Current()
	if current != nil {
		b.WriteString(theme.Subtitle.Render(current.Name+" としてサインイン中") + "\n\n")
	} else {
		b.WriteString(theme.Subtitle.Render("プロフィールを選んでください") + "\n\n")
	}

	row := 0
	for _, p := range s.profiles {
		label := p.Name
		if current != nil && current.ID == p.ID {
			label += " " + theme.CategoryBadge.Render("●")
		}
		b.WriteString(s.renderRow(row, label))
		row++
	}
	b.WriteString(s.renderRow(row, "＋ あたらしいプロフィール"))
	row++
	if current != nil {
		b.WriteString(s.renderRow(row, "サインアウト"))
	}

	return b.String()
}

func (s *Screen) renderRow(i int, label string) string {
	if i == s.cursor {
		return theme.Selected.Render("  ▸ "+label) + "\n"
	}
	return theme.Unselected.Render("    "+label) + "\n"
}
