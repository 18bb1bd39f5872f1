package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlacklistLog holds the schema definition for the BlacklistLog entity.
// Immutable audit of blacklist changes and blocked orders.
type BlacklistLog struct {
	ent.Schema
}

// Fields of the BlacklistLog.
func (BlacklistLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Default(0),
		field.String("owner"),
		field.Enum("action").
			Values("added", "removed", "auto_unblacklist", "blocked_order", "cleared"),
		field.String("reason").
			Default(""),
		field.String("details").
			Default(""),
		field.Int("amount").
			Default(0).
			Comment("Minutes involved, when the action carries compensation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BlacklistLog.
func (BlacklistLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner", "created_at"),
	}
}
