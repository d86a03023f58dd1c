// Package home is the entry screen: the main menu plus a few catalog
// stats.
package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/explain"
	"github.com/ayumu/zukan/internal/favorites"
	"github.com/ayumu/zukan/internal/router"
	"github.com/ayumu/zukan/internal/screen"
	"github.com/ayumu/zukan/internal/screens/browse"
	"github.com/ayumu/zukan/internal/screens/history"
	"github.com/ayumu/zukan/internal/screens/signin"
	"github.com/ayumu/zukan/internal/store"
	"github.com/ayumu/zukan/internal/ui/components"
	"github.com/ayumu/zukan/internal/ui/theme"
)

// UpdateAvailableMsg tells the home screen a newer release exists.
type UpdateAvailableMsg struct {
	Version string
}

// Screen is the home screen.
type Screen struct {
	catalog *catalog.Catalog
	auth    *auth.Session
	favs    *favorites.Service

	menu         components.Menu
	updateNotice string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen. explainSvc and views may be nil.
func New(c *catalog.Catalog, authSession *auth.Session, favs *favorites.Service, views store.ViewEventRepo, explainSvc *explain.Service, rng *rand.Rand) *Screen {
	items := []components.MenuItem{
		{Label: "図鑑を見る", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: browse.New(c, authSession, favs, views, explainSvc, rng),
				}
			}
		}},
		{Label: "閲覧履歴", Disabled: views == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(views, authSession)}
			}
		}},
		{Label: "プロフィール", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: signin.New(authSession, favs)}
			}
		}},
		{Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &Screen{
		catalog: c,
		auth:    authSession,
		favs:    favs,
		menu:    components.NewMenu(items),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "ホーム"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateAvailableMsg:
		s.updateNotice = fmt.Sprintf("新しいバージョン %s が公開されています（zukan update）", msg.Version)
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Zukan — ITパスポート用語図鑑") + "\n")

	stats := fmt.Sprintf("%d語 / %dカテゴリ", s.catalog.Len(), len(s.catalog.Categories()))
	if n := s.favs.Count(); n > 0 {
		stats += fmt.Sprintf(" / お気に入り %d", n)
	}
	b.WriteString(theme.Subtitle.Width(width).Render(stats) + "\n")

	if u := s.auth.Current(); u != nil {
		b.WriteString(theme.Subtitle.Width(width).Render("こんにちは、"+u.Name+" さん") + "\n")
	}
	b.WriteString("\n")

	menu := s.menu.View()
	b.WriteString(lipglossCenter(menu, width))

	if s.updateNotice != "" {
		b.WriteString("\n" + theme.Hint.Width(width).Align(lipgloss.Center).Render(s.updateNotice) + "\n")
	}

	return b.String()
}

// lipglossCenter indents each menu line to roughly center the block.
func lipglossCenter(block string, width int) string {
	lines := strings.Split(block, "\n")
	longest := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > longest {
			longest = w
		}
	}
	pad := (width - longest) / 2
	if pad < 0 {
		pad = 0
	}
	indent := strings.Repeat(" ", pad)
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
