// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Favorite is the predicate function for favorite builders.
type Favorite func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// ViewEvent is the predicate function for viewevent builders.
type ViewEvent func(*sql.Selector)
