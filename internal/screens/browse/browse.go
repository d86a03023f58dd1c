// Package browse is the encyclopedia screen: category and term grids,
// free-text search, term detail, and the per-term quiz overlay. All
// navigation state lives in nav.Machine; this screen only renders it and
// translates key presses into transitions.
package browse

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ayumu/zukan/internal/auth"
	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/explain"
	"github.com/ayumu/zukan/internal/favorites"
	"github.com/ayumu/zukan/internal/nav"
	"github.com/ayumu/zukan/internal/quiz"
	"github.com/ayumu/zukan/internal/router"
	"github.com/ayumu/zukan/internal/screen"
	"github.com/ayumu/zukan/internal/screens/signin"
	"github.com/ayumu/zukan/internal/search"
	"github.com/ayumu/zukan/internal/store"
	"github.com/ayumu/zukan/internal/ui/components"
	"github.com/ayumu/zukan/internal/ui/layout"
	"github.com/ayumu/zukan/internal/ui/theme"
)

const explainPollInterval = 150 * time.Millisecond

type favToggledMsg struct {
	ID  string
	Fav bool
	Err error
}

type explainPollMsg struct{}

// Screen is the browse screen.
type Screen struct {
	machine *nav.Machine
	auth    *auth.Session
	favs    *favorites.Service
	views   store.ViewEventRepo
	explain *explain.Service // nil when no provider is configured

	searchBox components.TextInput
	cursor    int
	mc        components.MultiChoice

	notice      string
	explaining  bool
	explanation string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a browse screen over the given catalog. explainSvc may be
// nil; the explanation key is hidden then.
func New(c *catalog.Catalog, authSession *auth.Session, favs *favorites.Service, views store.ViewEventRepo, explainSvc *explain.Service, rng *rand.Rand) *Screen {
	s := &Screen{
		auth:      authSession,
		favs:      favs,
		views:     views,
		explain:   explainSvc,
		searchBox: components.NewTextInput("検索", "用語名で絞り込み...", 40),
	}
	s.machine = nav.New(c, s.recordView, rng)
	return s
}

// recordView appends a view event in the background. Failures are logged
// and never surface to navigation.
func (s *Screen) recordView(term catalog.Term) {
	if s.views == nil {
		return
	}
	profileID := 0
	if u := s.auth.Current(); u != nil {
		profileID = u.ID
	}
	go func() {
		err := s.views.Append(context.Background(), store.ViewEventData{
			ProfileID: profileID,
			TermID:    term.ID,
			TermName:  term.Name,
		})
		if err != nil {
			log.Warnf("recording view of %s: %v", term.ID, err)
		}
	}()
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "図鑑"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.machine.Quiz() != nil {
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "選ぶ"},
			{Key: "Enter", Description: "答える / 次へ"},
		}
		if s.explain != nil && s.machine.Quiz().Phase() == quiz.PhaseAnswered {
			hints = append(hints, layout.KeyHint{Key: "e", Description: "解説"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "終了"})
	}
	if s.searchBox.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "確定"},
			{Key: "Esc", Description: "検索をやめる"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "選ぶ"},
		{Key: "Enter", Description: "開く"},
		{Key: "/", Description: "検索"},
	}
	if s.machine.Pos().Level == nav.LevelTerm {
		hints = append(hints,
			layout.KeyHint{Key: "f", Description: "お気に入り"})
		if s.machine.Pos().Term.HasQuiz() {
			hints = append(hints, layout.KeyHint{Key: "q", Description: "クイズ"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "戻る"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case favToggledMsg:
		return s, s.handleFavToggled(msg)

	case explainPollMsg:
		if !s.explaining {
			return s, nil
		}
		out, ok := s.explain.Consume()
		if !ok {
			return s, s.pollExplain()
		}
		s.explaining = false
		if out.Err != nil {
			log.Warnf("quiz explanation: %v", out.Err)
			s.notice = "解説を取得できませんでした"
			return s, nil
		}
		s.explanation = out.Explanation.Text
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.searchBox.Focused() {
		var cmd tea.Cmd
		s.searchBox, cmd = s.searchBox.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""

	if s.machine.Quiz() != nil {
		return s.handleQuizKey(msg)
	}

	if s.searchBox.Focused() {
		switch msg.String() {
		case "esc":
			s.searchBox.Blur()
			s.searchBox.Reset()
			s.machine.SetQuery("")
			s.cursor = 0
			return s, nil
		case "enter":
			s.searchBox.Blur()
			return s, nil
		case "up", "down":
			// Let the result list keep working while typing.
		default:
			var cmd tea.Cmd
			s.searchBox, cmd = s.searchBox.Update(msg)
			s.machine.SetQuery(s.searchBox.Value())
			s.cursor = 0
			return s, cmd
		}
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "j":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
		return s, nil
	case "enter":
		s.activate()
		return s, nil
	case "esc":
		if s.machine.Query() != "" && s.machine.Pos().Level == nav.LevelRoot {
			s.searchBox.Reset()
			s.machine.SetQuery("")
			s.cursor = 0
			return s, nil
		}
		if !s.machine.Up() {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.cursor = 0
		s.explanation = ""
		return s, nil
	case "/":
		s.cursor = 0
		return s, s.searchBox.Focus()
	case "h":
		s.machine.ResetToHome()
		s.searchBox.Reset()
		s.cursor = 0
		s.explanation = ""
		return s, nil
	case "f":
		if id, ok := s.favoriteTarget(); ok {
			return s, s.toggleFavorite(id)
		}
		return s, nil
	case "q":
		if s.machine.StartQuiz() {
			s.explanation = ""
			q := s.machine.Quiz().Current()
			s.mc = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
		}
		return s, nil
	case "p":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: signin.New(s.auth, s.favs)}
		}
	}

	return s, nil
}

func (s *Screen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	session := s.machine.Quiz()

	if msg.String() == "esc" {
		s.machine.EndQuiz()
		s.explaining = false
		return s, nil
	}

	switch session.Phase() {
	case quiz.PhaseShowing:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			session.Answer(s.mc.Chosen)
		}
		return s, cmd

	case quiz.PhaseAnswered:
		switch msg.String() {
		case "enter", "n":
			if session.Next() {
				s.explanation = ""
				s.explaining = false
				q := session.Current()
				s.mc = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
			}
			return s, nil
		case "e":
			return s, s.requestExplanation()
		}
	}
	return s, nil
}

// favoriteTarget resolves which term "f" applies to: the open term on
// the detail view, otherwise the highlighted row of a term list.
func (s *Screen) favoriteTarget() (string, bool) {
	pos := s.machine.Pos()
	if pos.Level == nav.LevelTerm {
		return pos.Term.ID, true
	}
	terms, ok := s.listedTerms()
	if !ok || s.cursor >= len(terms) {
		return "", false
	}
	return terms[s.cursor].ID, true
}

func (s *Screen) toggleFavorite(id string) tea.Cmd {
	return func() tea.Msg {
		fav, err := s.favs.Toggle(context.Background(), id)
		return favToggledMsg{ID: id, Fav: fav, Err: err}
	}
}

func (s *Screen) handleFavToggled(msg favToggledMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, favorites.ErrSignInRequired):
		s.notice = "お気に入りにはサインインが必要です（p でプロフィール）"
	case msg.Err != nil:
		s.notice = "お気に入りの保存に失敗しました。次回の操作で再試行します"
	}
	return nil
}

func (s *Screen) requestExplanation() tea.Cmd {
	session := s.machine.Quiz()
	if s.explain == nil || session == nil || session.Result() == nil {
		return nil
	}
	if s.explaining || s.explanation != "" {
		return nil
	}
	s.explaining = true
	s.explain.Request(context.Background(), explain.Input{
		Term:     s.machine.Pos().Term,
		Question: session.Current(),
		Result:   *session.Result(),
	})
	return s.pollExplain()
}

func (s *Screen) pollExplain() tea.Cmd {
	return tea.Tick(explainPollInterval, func(time.Time) tea.Msg {
		return explainPollMsg{}
	})
}

// listedTerms returns the terms behind the current list view, when the
// current view is a term list.
func (s *Screen) listedTerms() ([]catalog.Term, bool) {
	pos := s.machine.Pos()
	if s.searchActive() {
		return s.machine.Visible(), true
	}
	if pos.Level == nav.LevelSubcategory {
		return s.machine.Catalog().TermsIn(pos.Category, pos.Subcategory), true
	}
	return nil, false
}

// searchActive reports whether the search result list is the current
// view. The open term detail always wins over search results.
func (s *Screen) searchActive() bool {
	return s.machine.Query() != "" && s.machine.Pos().Level != nav.LevelTerm
}

func (s *Screen) rowCount() int {
	if terms, ok := s.listedTerms(); ok {
		return len(terms)
	}
	switch s.machine.Pos().Level {
	case nav.LevelRoot:
		return len(s.machine.Catalog().Categories())
	case nav.LevelCategory:
		return len(s.machine.Catalog().Subcategories(s.machine.Pos().Category))
	}
	return 0
}

func (s *Screen) activate() {
	if terms, ok := s.listedTerms(); ok {
		if s.cursor >= len(terms) {
			return
		}
		if s.searchActive() {
			s.machine.OpenDirect(terms[s.cursor].ID)
		} else {
			s.machine.SelectTerm(terms[s.cursor].ID)
		}
		s.cursor = 0
		return
	}

	pos := s.machine.Pos()
	switch pos.Level {
	case nav.LevelRoot:
		cats := s.machine.Catalog().Categories()
		if s.cursor < len(cats) {
			s.machine.SelectCategory(cats[s.cursor])
			s.cursor = 0
		}
	case nav.LevelCategory:
		subs := s.machine.Catalog().Subcategories(pos.Category)
		if s.cursor < len(subs) {
			s.machine.SelectSubcategory(subs[s.cursor])
			s.cursor = 0
		}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(" " + s.renderBreadcrumb() + "\n")
	b.WriteString(" " + s.searchBox.View() + "\n\n")

	if s.notice != "" {
		b.WriteString(" " + theme.Hint.Render(s.notice) + "\n\n")
	}

	main := s.renderMain(width)

	if layout.IsCompactWidth(width) || s.machine.Quiz() != nil {
		b.WriteString(main)
		return b.String()
	}

	sidebarWidth := 28
	mainWidth := width - sidebarWidth - 2
	if mainWidth < 20 {
		b.WriteString(main)
		return b.String()
	}

	mainBox := lipgloss.NewStyle().Width(mainWidth).Render(main)
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(s.renderSidebar())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, mainBox, "  ", sidebar))
	return b.String()
}

func (s *Screen) renderBreadcrumb() string {
	crumbs := s.machine.Breadcrumb()
	parts := make([]string, 0, len(crumbs))
	for i, c := range crumbs {
		label := c.Label
		switch c.Kind {
		case nav.CrumbRoot:
			label = "ホーム"
		case nav.CrumbSearch:
			label = "検索結果"
		}
		if i == len(crumbs)-1 {
			parts = append(parts, theme.BreadcrumbHead.Render(label))
		} else {
			parts = append(parts, theme.Breadcrumb.Render(label))
		}
	}
	return strings.Join(parts, theme.Breadcrumb.Render(" › "))
}

func (s *Screen) renderMain(width int) string {
	if s.machine.Quiz() != nil {
		return s.renderQuiz()
	}
	pos := s.machine.Pos()

	if s.searchActive() {
		return s.renderSearchResults()
	}

	switch pos.Level {
	case nav.LevelRoot:
		return s.renderCategoryGrid()
	case nav.LevelCategory:
		return s.renderSubcategoryGrid()
	case nav.LevelSubcategory:
		return s.renderTermGrid()
	case nav.LevelTerm:
		return s.renderDetail(width)
	}
	return ""
}

func (s *Screen) renderCategoryGrid() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("カテゴリを選んでください") + "\n\n")
	cats := s.machine.Catalog().Categories()
	for i, cat := range cats {
		count := s.machine.Catalog().CountIn(cat)
		b.WriteString(s.renderRow(i, cat, fmt.Sprintf("%d語", count)))
	}
	return b.String()
}

func (s *Screen) renderSubcategoryGrid() string {
	var b strings.Builder
	pos := s.machine.Pos()
	subs := s.machine.Catalog().Subcategories(pos.Category)
	for i, sub := range subs {
		count := len(s.machine.Catalog().TermsIn(pos.Category, sub))
		b.WriteString(s.renderRow(i, sub, fmt.Sprintf("%d語", count)))
	}
	return b.String()
}

func (s *Screen) renderTermGrid() string {
	pos := s.machine.Pos()
	terms := s.machine.Catalog().TermsIn(pos.Category, pos.Subcategory)
	if len(terms) == 0 {
		return theme.Hint.Render("  このサブカテゴリにはまだ用語がありません")
	}
	return s.renderTermRows(terms, false)
}

func (s *Screen) renderSearchResults() string {
	if s.machine.NoResults() {
		return theme.Hint.Render(fmt.Sprintf("  「%s」に一致する用語はありません", s.machine.Query()))
	}
	return s.renderTermRows(s.machine.Visible(), true)
}

func (s *Screen) renderTermRows(terms []catalog.Term, showCategory bool) string {
	var b strings.Builder
	for i, term := range terms {
		label := term.Name
		if s.favs.IsFavorite(term.ID) {
			label += " " + theme.Favorite.Render("★")
		}
		badge := ""
		if showCategory {
			badge = term.Category + " / " + term.Subcategory
		}
		b.WriteString(s.renderRow(i, label, badge))
	}
	return b.String()
}

func (s *Screen) renderRow(i int, label, badge string) string {
	if badge != "" {
		label = label + "  " + theme.CountBadge.Render(badge)
	}
	if i == s.cursor {
		return theme.Selected.Render("  ▸ "+label) + "\n"
	}
	return theme.Unselected.Render("    "+label) + "\n"
}

func (s *Screen) renderDetail(width int) string {
	term := s.machine.Pos().Term

	var b strings.Builder
	name := theme.Title.Render(term.Name)
	if s.favs.IsFavorite(term.ID) {
		name += " " + theme.Favorite.Render("★")
	}
	b.WriteString(name + "\n")
	b.WriteString(theme.CategoryBadge.Render(term.Category+" / "+term.Subcategory) + "\n\n")
	b.WriteString(theme.Body.Render(term.Description) + "\n")

	if term.Content != "" {
		b.WriteString("\n" + theme.Body.Render(term.Content) + "\n")
	}

	if term.HasQuiz() {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("q でクイズに挑戦（%d問）", len(term.Quiz))) + "\n")
	}

	cardWidth := width - 4
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 20 {
		return b.String()
	}
	return theme.Card.Width(cardWidth).Render(b.String())
}

func (s *Screen) renderQuiz() string {
	session := s.machine.Quiz()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("%s のクイズ — %d問中%d問正解", s.machine.Pos().Term.Name, session.Asked(), session.Correct())) + "\n\n")
	b.WriteString(s.mc.View())

	if result := session.Result(); result != nil {
		b.WriteString("\n")
		if result.IsCorrect {
			b.WriteString(theme.Correct.Render("正解！") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("不正解… 正解は「"+result.CorrectAnswer+"」") + "\n")
		}
		switch {
		case s.explaining:
			b.WriteString("\n" + theme.Hint.Render("解説を生成中...") + "\n")
		case s.explanation != "":
			b.WriteString("\n" + theme.Body.Render(s.explanation) + "\n")
		case s.explain != nil:
			b.WriteString("\n" + theme.Hint.Render("e で解説を見る") + "\n")
		}
		b.WriteString("\n" + theme.Hint.Render("Enter で次の問題 / Esc で終了") + "\n")
	}

	return b.String()
}

func (s *Screen) renderSidebar() string {
	var b strings.Builder

	recent := s.machine.Recency().Terms(s.machine.Catalog())
	b.WriteString(theme.Subtitle.Render("最近見た用語") + "\n")
	if len(recent) == 0 {
		b.WriteString(theme.Hint.Render("  まだありません") + "\n")
	}
	for _, term := range recent {
		b.WriteString(theme.Unselected.Render("  "+term.Name) + "\n")
	}

	favs := search.Favorites(s.machine.Catalog(), s.favs.Set())
	b.WriteString("\n" + theme.Subtitle.Render("お気に入り") + "\n")
	if len(favs) == 0 {
		b.WriteString(theme.Hint.Render("  まだありません") + "\n")
	}
	for _, term := range favs {
		b.WriteString(theme.Favorite.Render("  ★ ") + theme.Unselected.Render(term.Name) + "\n")
	}

	return b.String()
}
