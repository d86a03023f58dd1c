package nav

import (
	"math/rand"
	"testing"

	"github.com/ayumu/zukan/internal/catalog"
	"github.com/ayumu/zukan/internal/quiz"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Term{
		{ID: "t1", Name: "二分法探索", Category: "情報技術の基礎", Subcategory: "プログラミング"},
		{ID: "t2", Name: "再帰", Category: "情報技術の基礎", Subcategory: "プログラミング",
			Quiz: []catalog.Question{
				{Question: "Q1", Options: []string{"A", "B", "C"}, CorrectAnswer: "B"},
			}},
		{ID: "t3", Name: "DNS", Category: "ネットワーク", Subcategory: "プロトコル"},
	})
}

func fixtureMachine() *Machine {
	return New(fixtureCatalog(), nil, rand.New(rand.NewSource(1)))
}

func drillToTerm(m *Machine) {
	m.SelectCategory("情報技術の基礎")
	m.SelectSubcategory("プログラミング")
	m.SelectTerm("t2")
}

func TestInitialStateIsRoot(t *testing.T) {
	m := fixtureMachine()
	if m.Pos().Level != LevelRoot {
		t.Fatalf("level = %v, want LevelRoot", m.Pos().Level)
	}
	if m.Query() != "" || m.Quiz() != nil {
		t.Fatal("fresh machine must have empty query and no quiz")
	}
}

func TestDrillDown(t *testing.T) {
	m := fixtureMachine()

	if !m.SelectCategory("情報技術の基礎") {
		t.Fatal("valid category rejected")
	}
	if m.Pos().Level != LevelCategory || m.Pos().Category != "情報技術の基礎" {
		t.Fatalf("unexpected position: %+v", m.Pos())
	}

	if !m.SelectSubcategory("プログラミング") {
		t.Fatal("valid subcategory rejected")
	}
	if m.Pos().Level != LevelSubcategory {
		t.Fatalf("unexpected position: %+v", m.Pos())
	}

	if !m.SelectTerm("t1") {
		t.Fatal("valid term rejected")
	}
	pos := m.Pos()
	if pos.Level != LevelTerm || pos.Term.ID != "t1" || pos.Direct {
		t.Fatalf("unexpected position: %+v", pos)
	}
}

func TestInvalidSelectionsAreSilentNoOps(t *testing.T) {
	m := fixtureMachine()

	if m.SelectCategory("存在しないカテゴリ") {
		t.Fatal("unknown category must be a no-op")
	}
	if m.SelectSubcategory("プログラミング") {
		t.Fatal("subcategory selection needs a current category")
	}
	if m.SelectTerm("t1") {
		t.Fatal("term selection needs a current subcategory")
	}
	if m.Pos().Level != LevelRoot {
		t.Fatal("no-ops must not move the position")
	}

	m.SelectCategory("ネットワーク")
	if m.SelectSubcategory("プログラミング") {
		t.Fatal("subcategory from a different category must be a no-op")
	}
}

func TestReplaceNotAccumulate(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)

	// Selecting a subcategory clears the term selection.
	m.Up() // back to subcategory grid
	m.Up() // back to category grid
	m.SelectSubcategory("プログラミング")
	pos := m.Pos()
	if pos.Level != LevelSubcategory || pos.Term.ID != "" {
		t.Fatalf("term selection survived subcategory select: %+v", pos)
	}

	// Selecting a category from deep in another clears everything below.
	m.SelectTerm("t1")
	m.SelectCategory("ネットワーク")
	pos = m.Pos()
	if pos.Level != LevelCategory || pos.Subcategory != "" || pos.Term.ID != "" {
		t.Fatalf("deeper state survived category select: %+v", pos)
	}
}

func TestUpWalksBreadcrumb(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)

	if !m.Up() || m.Pos().Level != LevelSubcategory {
		t.Fatalf("up from term: %+v", m.Pos())
	}
	if !m.Up() || m.Pos().Level != LevelCategory {
		t.Fatalf("up from subcategory: %+v", m.Pos())
	}
	if !m.Up() || m.Pos().Level != LevelRoot {
		t.Fatalf("up from category: %+v", m.Pos())
	}
	if m.Up() {
		t.Fatal("up from root must report false")
	}
}

func TestOpenDirectBypassesHierarchy(t *testing.T) {
	m := fixtureMachine()
	m.SetQuery("DNS")

	if !m.OpenDirect("t3") {
		t.Fatal("valid direct open rejected")
	}
	pos := m.Pos()
	if pos.Level != LevelTerm || !pos.Direct || pos.Category != "" {
		t.Fatalf("unexpected position: %+v", pos)
	}

	// Without ancestry, up falls back to the root.
	m.Up()
	if m.Pos().Level != LevelRoot {
		t.Fatalf("direct term must fall back to root, got %+v", m.Pos())
	}
}

func TestResetToHomeClearsEverythingTogether(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)
	m.SetQuery("二分")
	m.StartQuiz()

	m.ResetToHome()

	if m.Pos().Level != LevelRoot {
		t.Fatal("position not reset")
	}
	if m.Query() != "" {
		t.Fatal("query not cleared")
	}
	if m.Quiz() != nil {
		t.Fatal("quiz session not discarded")
	}
	if len(m.Visible()) != m.Catalog().Len() {
		t.Fatal("result set not restored to the full catalog")
	}
}

func TestVisibleFollowsQuery(t *testing.T) {
	m := fixtureMachine()

	if len(m.Visible()) != 3 {
		t.Fatalf("empty query: %d visible, want 3", len(m.Visible()))
	}

	m.SetQuery("二分")
	got := m.Visible()
	if len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("Visible() = %v", got)
	}
	if m.NoResults() {
		t.Fatal("matching query must not report no-results")
	}

	m.SetQuery("xyz")
	if len(m.Visible()) != 0 || !m.NoResults() {
		t.Fatal("non-empty query with zero matches must report no-results")
	}
}

func TestQuizLifecycle(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)

	if !m.StartQuiz() {
		t.Fatal("quiz on a term with questions must start")
	}
	if m.Quiz() == nil || m.Quiz().Phase() != quiz.PhaseShowing {
		t.Fatal("quiz session missing or not showing")
	}
	if m.Pos().Level != LevelTerm {
		t.Fatal("quiz mode stays nested under the term")
	}

	// Starting again while active is a no-op.
	if m.StartQuiz() {
		t.Fatal("second StartQuiz must be a no-op")
	}

	m.EndQuiz()
	if m.Quiz() != nil {
		t.Fatal("quiz not cleared")
	}
	if m.Pos().Level != LevelTerm || m.Pos().Term.ID != "t2" {
		t.Fatal("ending the quiz must return to the same term detail")
	}
}

func TestQuizNoOpOnEmptyBank(t *testing.T) {
	m := fixtureMachine()
	m.SelectCategory("情報技術の基礎")
	m.SelectSubcategory("プログラミング")
	m.SelectTerm("t1") // no quiz

	if m.StartQuiz() {
		t.Fatal("StartQuiz on an empty bank must be a no-op")
	}
	if m.Quiz() != nil || m.Pos().Level != LevelTerm {
		t.Fatal("no-op must leave the state unchanged")
	}
}

func TestNavigatingAwayDiscardsQuiz(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)
	m.StartQuiz()

	m.Up()
	if m.Quiz() != nil {
		t.Fatal("quiz must not survive leaving the term")
	}
}

func TestSelectTermRecordsRecency(t *testing.T) {
	m := fixtureMachine()
	drillToTerm(m)

	ids := m.Recency().IDs()
	if len(ids) != 1 || ids[0] != "t2" {
		t.Fatalf("recency = %v, want [t2]", ids)
	}

	m.Up()
	m.SelectTerm("t1")
	ids = m.Recency().IDs()
	if len(ids) != 2 || ids[0] != "t1" {
		t.Fatalf("recency = %v, want [t1 t2]", ids)
	}
}

func TestViewPublishedFireAndForget(t *testing.T) {
	var seen []string
	m := New(fixtureCatalog(), func(term catalog.Term) {
		seen = append(seen, term.ID)
	}, rand.New(rand.NewSource(1)))

	drillToTerm(m)
	m.ResetToHome()
	m.OpenDirect("t3")

	if len(seen) != 2 || seen[0] != "t2" || seen[1] != "t3" {
		t.Fatalf("views = %v, want [t2 t3]", seen)
	}
}

func TestBreadcrumbTrail(t *testing.T) {
	m := fixtureMachine()

	if crumbs := m.Breadcrumb(); len(crumbs) != 1 || crumbs[0].Kind != CrumbRoot {
		t.Fatalf("root breadcrumb = %v", crumbs)
	}

	drillToTerm(m)
	crumbs := m.Breadcrumb()
	if len(crumbs) != 4 {
		t.Fatalf("breadcrumb length = %d, want 4", len(crumbs))
	}
	if crumbs[1].Label != "情報技術の基礎" || crumbs[2].Label != "プログラミング" || crumbs[3].Label != "再帰" {
		t.Fatalf("breadcrumb = %v", crumbs)
	}

	// A directly-opened term shows a search-origin segment instead of
	// a fabricated category path.
	m.OpenDirect("t3")
	crumbs = m.Breadcrumb()
	if len(crumbs) != 3 || crumbs[1].Kind != CrumbSearch || crumbs[2].Label != "DNS" {
		t.Fatalf("direct breadcrumb = %v", crumbs)
	}
}
