package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Profile is a locally stored user identity. Favorites are scoped to a
// profile; with no profile signed in, the favorite set is always empty.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("uid", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable().
			Comment("Stable external identifier for the profile"),
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, chosen at sign-up"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
