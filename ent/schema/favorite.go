package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Favorite marks one term id as starred by one profile. The whole set
// for a profile is replaced on write; there is no per-id patch.
type Favorite struct {
	ent.Schema
}

func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Comment("Owning profile"),
		field.String("term_id").
			NotEmpty().
			Comment("Catalog term id; may go stale if the catalog changes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "term_id").Unique(),
		index.Fields("profile_id"),
	}
}
