package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViewEvent records one term being opened. Appended fire-and-forget on
// every term selection; feeds the history screen and stats.
type ViewEvent struct {
	ent.Schema
}

func (ViewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (ViewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("profile_id").
			Default(0).
			Comment("Owning profile; 0 when browsing anonymously"),
		field.String("term_id").
			NotEmpty(),
		field.String("term_name").
			Comment("Denormalized for display after catalog changes"),
	}
}

func (ViewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("term_id"),
	}
}
