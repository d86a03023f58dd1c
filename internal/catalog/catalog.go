package catalog

// Term is a single catalog entry: one taught concept.
type Term struct {
	// ID is an opaque identifier, unique across the catalog.
	ID string `json:"id"`

	// Name is the display name, also the search key.
	Name string `json:"name"`

	// Category and Subcategory place the term in the fixed
	// two-level taxonomy. Both are assigned at authoring time.
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// Description is a short plain-text summary.
	Description string `json:"description"`

	// Content is the rich body shown on the detail view.
	// It is trusted as authored; the app never edits it.
	Content string `json:"content"`

	// Quiz is the term's question bank. May be empty.
	Quiz []Question `json:"quiz,omitempty"`
}

// HasQuiz reports whether the term has at least one question.
func (t Term) HasQuiz() bool {
	return len(t.Quiz) > 0
}

// Question is one multiple-choice quiz item.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Catalog is the full in-memory term collection, loaded once per run
// and immutable afterwards. Term order is load order.
type Catalog struct {
	terms      []Term
	byID       map[string]int
	categories []string
	subs       map[string][]string
}

// New builds a Catalog from an ordered term list. The slice is copied;
// callers keep no write path into the catalog.
func New(terms []Term) *Catalog {
	c := &Catalog{
		terms: append([]Term(nil), terms...),
		byID:  make(map[string]int, len(terms)),
		subs:  make(map[string][]string),
	}

	seenCat := make(map[string]bool)
	seenSub := make(map[string]map[string]bool)

	for i, t := range c.terms {
		c.byID[t.ID] = i

		if !seenCat[t.Category] {
			seenCat[t.Category] = true
			c.categories = append(c.categories, t.Category)
		}
		if seenSub[t.Category] == nil {
			seenSub[t.Category] = make(map[string]bool)
		}
		if !seenSub[t.Category][t.Subcategory] {
			seenSub[t.Category][t.Subcategory] = true
			c.subs[t.Category] = append(c.subs[t.Category], t.Subcategory)
		}
	}

	return c
}

// Len returns the number of terms.
func (c *Catalog) Len() int {
	return len(c.terms)
}

// Terms returns all terms in load order.
func (c *Catalog) Terms() []Term {
	return c.terms
}

// ByID looks up a term by id.
func (c *Catalog) ByID(id string) (Term, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Term{}, false
	}
	return c.terms[i], true
}

// Categories returns the top-level categories in first-seen order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Subcategories returns the subcategories of a category in first-seen
// order. Unknown categories yield nil.
func (c *Catalog) Subcategories(category string) []string {
	return c.subs[category]
}

// HasCategory reports whether the category exists in the taxonomy.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.subs[category]
	return ok
}

// HasSubcategory reports whether the pair exists in the taxonomy.
func (c *Catalog) HasSubcategory(category, subcategory string) bool {
	for _, s := range c.subs[category] {
		if s == subcategory {
			return true
		}
	}
	return false
}

// TermsIn returns the terms of one subcategory, in catalog order.
func (c *Catalog) TermsIn(category, subcategory string) []Term {
	var out []Term
	for _, t := range c.terms {
		if t.Category == category && t.Subcategory == subcategory {
			out = append(out, t)
		}
	}
	return out
}

// CountIn returns the number of terms under a category.
func (c *Catalog) CountIn(category string) int {
	n := 0
	for _, t := range c.terms {
		if t.Category == category {
			n++
		}
	}
	return n
}
