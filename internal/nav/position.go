package nav

import "github.com/ayumu/zukan/internal/catalog"

// Level is the depth of the current position in the category →
// subcategory → term hierarchy.
type Level int

const (
	// LevelRoot shows the category grid.
	LevelRoot Level = iota
	// LevelCategory shows one category's subcategory grid.
	LevelCategory
	// LevelSubcategory shows one subcategory's term grid.
	LevelSubcategory
	// LevelTerm shows a single term's detail view.
	LevelTerm
)

// Position is the current place in the hierarchy. Deeper fields are
// only meaningful at their level and below; transitions replace, never
// accumulate.
type Position struct {
	Level       Level
	Category    string
	Subcategory string
	Term        catalog.Term

	// Direct marks a term reached from a search result rather than by
	// drilling down, so it carries no category/subcategory ancestry.
	Direct bool
}

// CrumbKind identifies a breadcrumb segment.
type CrumbKind int

const (
	CrumbRoot CrumbKind = iota
	CrumbCategory
	CrumbSubcategory
	CrumbSearch
	CrumbTerm
)

// Crumb is one breadcrumb segment. Label is empty for CrumbRoot and
// CrumbSearch; the view supplies their display text.
type Crumb struct {
	Kind  CrumbKind
	Label string
}
