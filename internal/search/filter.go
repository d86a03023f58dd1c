// Package search computes the visible term list from the catalog: the
// free-text name filter, the recently-viewed ordering, and the
// favorites projection. Everything here is in-memory and synchronous.
package search

import (
	"strings"

	"github.com/ayumu/zukan/internal/catalog"
)

// Filter returns the terms whose name contains query, case-insensitively,
// preserving catalog order.
//
// An empty query is "no query yet" and returns the whole catalog. A
// non-empty query with zero matches returns an empty list; callers must
// render that as an explicit no-results state, not a blank screen.
func Filter(terms []catalog.Term, query string) []catalog.Term {
	if query == "" {
		return terms
	}

	q := strings.ToLower(query)
	out := make([]catalog.Term, 0, len(terms))
	for _, t := range terms {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// Favorites projects the catalog down to the terms whose id is in the
// favorite set, in catalog order.
func Favorites(c *catalog.Catalog, favs map[string]bool) []catalog.Term {
	var out []catalog.Term
	for _, t := range c.Terms() {
		if favs[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
