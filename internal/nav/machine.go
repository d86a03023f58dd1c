// Package nav is the navigation state machine: the single owner of the
// browse position, the search query, and the nested quiz session. All
// transitions are synchronous; invalid requests are silent no-ops
// because the rendered UI should make them unreachable.
package nav

import (
	"math/rand"

	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/quiz"
	"github.com/ayumu/zukan/internal/search"
)

// ViewFunc is notified when a term is opened. It is fire-and-forget:
// failures never roll back the navigation transition.
type ViewFunc func(term catalog.Term)

// Machine holds the three session state slices (position, query, quiz)
// in one place so they can never drift apart.
type Machine struct {
	catalog *catalog.Catalog
	pos     Position
	query   string
	quiz    *quiz.Session
	recency *search.Recency
	onView  ViewFunc
	rng     *rand.Rand
}

// New creates a machine at the root position with an empty query.
// onView may be nil. rng seeds quiz sessions; nil means time-seeded.
func New(c *catalog.Catalog, onView ViewFunc, rng *rand.Rand) *Machine {
	return &Machine{
		catalog: c,
		recency: search.NewRecency(),
		onView:  onView,
		rng:     rng,
	}
}

// Pos returns the current position.
func (m *Machine) Pos() Position {
	return m.pos
}

// Catalog returns the catalog the machine navigates.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// Quiz returns the active quiz session, or nil.
func (m *Machine) Quiz() *quiz.Session {
	return m.quiz
}

// Recency returns the recently-viewed list.
func (m *Machine) Recency() *search.Recency {
	return m.recency
}

// Query returns the current search query.
func (m *Machine) Query() string {
	return m.query
}

// SetQuery updates the free-text query. Filtering itself is local and
// recomputed by Visible.
func (m *Machine) SetQuery(q string) {
	m.query = q
}

// Visible returns the terms matching the current query, catalog order.
// An empty query yields the whole catalog.
func (m *Machine) Visible() []catalog.Term {
	return search.Filter(m.catalog.Terms(), m.query)
}

// NoResults reports whether the current query is non-empty and matches
// nothing, which must render as an explicit no-results state.
func (m *Machine) NoResults() bool {
	return m.query != "" && len(m.Visible()) == 0
}

// SelectCategory moves to a category's subcategory grid, replacing any
// deeper selection. Unknown categories are a no-op.
func (m *Machine) SelectCategory(category string) bool {
	if !m.catalog.HasCategory(category) {
		return false
	}
	m.quiz = nil
	m.pos = Position{Level: LevelCategory, Category: category}
	return true
}

// SelectSubcategory moves to a subcategory's term grid. It requires a
// current category; an unknown pair is a no-op. The resulting term
// grid may legitimately be empty.
func (m *Machine) SelectSubcategory(subcategory string) bool {
	if m.pos.Level < LevelCategory {
		return false
	}
	if !m.catalog.HasSubcategory(m.pos.Category, subcategory) {
		return false
	}
	m.quiz = nil
	m.pos = Position{
		Level:       LevelSubcategory,
		Category:    m.pos.Category,
		Subcategory: subcategory,
	}
	return true
}

// SelectTerm opens a term from the current subcategory grid, recording
// it as most recently viewed and publishing the view.
func (m *Machine) SelectTerm(id string) bool {
	term, ok := m.catalog.ByID(id)
	if !ok {
		return false
	}
	if m.pos.Level < LevelSubcategory {
		return false
	}
	m.quiz = nil
	m.pos = Position{
		Level:       LevelTerm,
		Category:    m.pos.Category,
		Subcategory: m.pos.Subcategory,
		Term:        term,
	}
	m.recency.Push(term.ID)
	m.publishView(term)
	return true
}

// OpenDirect opens a term from a search result or a sidebar list,
// bypassing the hierarchy. The position carries no ancestry; the
// breadcrumb falls back to a search origin segment.
func (m *Machine) OpenDirect(id string) bool {
	term, ok := m.catalog.ByID(id)
	if !ok {
		return false
	}
	m.quiz = nil
	m.pos = Position{Level: LevelTerm, Term: term, Direct: true}
	m.publishView(term)
	return true
}

// Up moves one breadcrumb level towards the root. A directly-opened
// term has no ancestry and falls back to the root. Returns false at
// the root.
func (m *Machine) Up() bool {
	switch m.pos.Level {
	case LevelTerm:
		m.quiz = nil
		if m.pos.Direct {
			m.pos = Position{Level: LevelRoot}
		} else {
			m.pos = Position{
				Level:       LevelSubcategory,
				Category:    m.pos.Category,
				Subcategory: m.pos.Subcategory,
			}
		}
		return true
	case LevelSubcategory:
		m.pos = Position{Level: LevelCategory, Category: m.pos.Category}
		return true
	case LevelCategory:
		m.pos = Position{Level: LevelRoot}
		return true
	}
	return false
}

// ResetToHome returns to the root and clears the query in one
// transition, so navigation and search can never desync. Any active
// quiz session is discarded.
func (m *Machine) ResetToHome() {
	m.quiz = nil
	m.query = ""
	m.pos = Position{Level: LevelRoot}
}

// StartQuiz enters quiz mode on the current term. A term with an empty
// question bank is a silent no-op, not an error.
func (m *Machine) StartQuiz() bool {
	if m.pos.Level != LevelTerm || m.quiz != nil {
		return false
	}
	s := quiz.NewSession(m.pos.Term.Quiz, m.rng)
	if !s.Start() {
		return false
	}
	m.quiz = s
	return true
}

// EndQuiz discards the quiz session and returns to the plain term
// detail view.
func (m *Machine) EndQuiz() {
	if m.quiz != nil {
		m.quiz.End()
		m.quiz = nil
	}
}

// Breadcrumb returns the trail for the current position, root first.
func (m *Machine) Breadcrumb() []Crumb {
	crumbs := []Crumb{{Kind: CrumbRoot}}
	switch m.pos.Level {
	case LevelCategory:
		crumbs = append(crumbs, Crumb{Kind: CrumbCategory, Label: m.pos.Category})
	case LevelSubcategory:
		crumbs = append(crumbs,
			Crumb{Kind: CrumbCategory, Label: m.pos.Category},
			Crumb{Kind: CrumbSubcategory, Label: m.pos.Subcategory})
	case LevelTerm:
		if m.pos.Direct {
			crumbs = append(crumbs, Crumb{Kind: CrumbSearch})
		} else {
			crumbs = append(crumbs,
				Crumb{Kind: CrumbCategory, Label: m.pos.Category},
				Crumb{Kind: CrumbSubcategory, Label: m.pos.Subcategory})
		}
		crumbs = append(crumbs, Crumb{Kind: CrumbTerm, Label: m.pos.Term.Name})
	}
	return crumbs
}

func (m *Machine) publishView(term catalog.Term) {
	if m.onView != nil {
		m.onView(term)
	}
}
