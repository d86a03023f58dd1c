// Package app wires the services into the root Bubble Tea model: the
// catalog loads asynchronously, then the screen stack takes over.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/explain"
	"github.com/ayumu/zukan/internal/favorites"
	"github.com/ayumu/zukan/internal/router"
	"github.com/ayumu/zukan/internal/screen"
	"github.com/ayumu/zukan/internal/screens/home"
	"github.com/ayumu/zukan/internal/selfupdate"
	"github.com/ayumu/zukan/internal/store"
	"github.com/ayumu/zukan/internal/ui/layout"
	"github.com/ayumu/zukan/internal/ui/theme"
)

// Deps are the services the TUI runs on. Explain and Updates are
// optional; Views may be nil when the store is unavailable.
type Deps struct {
	Provider  *catalog.Provider
	Auth      *auth.Session
	Favorites *favorites.Service
	Views     store.ViewEventRepo
	Explain   *explain.Service
	Updates   *selfupdate.Checker
	Version   string
	Rng       *rand.Rand
}

type catalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

type updateCheckedMsg struct {
	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    Deps
	router  *router.Router
	spinner spinner.Model
	width   int
	height  int
	errMsg  string
}

// newAppModel creates an AppModel in the loading state.
func newAppModel(deps Deps) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return AppModel{deps: deps, spinner: sp}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCatalog(), m.spinner.Tick}
	if m.deps.Updates != nil {
		cmds = append(cmds, m.checkUpdate())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		terms, err := m.deps.Provider.Load(context.Background())
		if err != nil {
			return catalogLoadedMsg{Err: err}
		}
		return catalogLoadedMsg{Catalog: catalog.New(terms)}
	}
}

func (m AppModel) checkUpdate() tea.Cmd {
	return func() tea.Msg {
		result, err := m.deps.Updates.Check(context.Background(), &selfupdate.CheckInput{
			Version: m.deps.Version,
		})
		if err != nil {
			log.Debugf("update check: %v", err)
			return nil
		}
		if !result.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{Version: result.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		if msg.Err != nil {
			log.Errorf("loading catalog: %v", msg.Err)
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		homeScreen := home.New(msg.Catalog, m.deps.Auth, m.deps.Favorites, m.deps.Views, m.deps.Explain, m.deps.Rng)
		m.router = router.New(homeScreen)
		return m, homeScreen.Init()

	case updateCheckedMsg:
		if m.router == nil {
			return m, nil
		}
		return m, m.forward(home.UpdateAvailableMsg{Version: msg.Version})

	case spinner.TickMsg:
		if m.router != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.router == nil {
		return m, nil
	}
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) forward(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.errMsg != "" {
		v.SetContent(lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("用語データを読み込めませんでした\n\n" + m.errMsg))
		return v
	}

	if m.router == nil {
		v.SetContent(lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(m.spinner.View() + " 用語データを読み込み中..."))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profile := ""
	if u := m.deps.Auth.Current(); u != nil {
		profile = u.Name
	}
	header := layout.RenderHeader(title, profile, m.deps.Favorites.Count(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "選ぶ"},
			{Key: "Enter", Description: "決定"},
			{Key: "Ctrl+C", Description: "終了"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	if deps.Rng == nil {
		deps.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
