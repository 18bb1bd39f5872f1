package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BonusHistory holds the schema definition for the BonusHistory entity.
type BonusHistory struct {
	ent.Schema
}

// Fields of the BonusHistory.
func (BonusHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("owner"),
		field.Int("delta_minutes").
			Comment("Positive credit, negative debit"),
		field.String("reason").
			Default(""),
		field.String("order_id").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BonusHistory.
func (BonusHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id", "owner"),
	}
}
