package search

import "github.com/ayumu/zukan/internal/catalog"

// RecencyCap is the maximum number of ids the recency list keeps.
const RecencyCap = 10

// Recency is a capped most-recently-viewed ordering of term ids. The
// newest id is always at the front. It is pure session state: nothing
// persists it.
type Recency struct {
	cap int
	ids []string
}

// NewRecency creates a recency list with the default cap.
func NewRecency() *Recency {
	return &Recency{cap: RecencyCap}
}

// Push records a term id as most recently viewed. An id already in the
// list moves to the front rather than appearing twice.
func (r *Recency) Push(id string) {
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	r.ids = append([]string{id}, r.ids...)
	if len(r.ids) > r.cap {
		r.ids = r.ids[:r.cap]
	}
}

// IDs returns the ids, newest first.
func (r *Recency) IDs() []string {
	return r.ids
}

// Len returns the number of recorded ids.
func (r *Recency) Len() int {
	return len(r.ids)
}

// Terms resolves the list against the catalog, newest first. Ids no
// longer present in the catalog are silently skipped; the list may
// outlive a term when the catalog source changes between runs.
func (r *Recency) Terms(c *catalog.Catalog) []catalog.Term {
	var out []catalog.Term
	for _, id := range r.ids {
		if t, ok := c.ByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}
