package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewReward holds the schema definition for the ReviewReward entity.
// Enforces at-most-once review bonus per order; revocable when the
// review is later deleted.
type ReviewReward struct {
	ent.Schema
}

// Fields of the ReviewReward.
func (ReviewReward) Fields() []ent.Field {
	return []ent.Field{
		field.String("order_id"),
		field.String("owner"),
		field.Int("user_id"),
		field.Int("workspace_id"),
		field.Int("rating").
			Default(0),
		field.Text("review_text").
			Default(""),
		field.Int("account_id").
			Optional().
			Nillable(),
		field.Time("claimed_at").
			Default(time.Now),
		field.Time("revoked_at").
			Optional().
			Nillable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ReviewReward.
func (ReviewReward) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id").
			Unique(),
		index.Fields("owner"),
	}
}
