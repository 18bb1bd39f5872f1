package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrderEvent holds the schema definition for the OrderEvent entity.
// Append-only order history: used for deduplication, statistics,
// review-bonus audit and blacklist-compensation accounting.
type OrderEvent struct {
	ent.Schema
}

// Fields of the OrderEvent.
func (OrderEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("order_id"),
		field.String("owner").
			Default(""),
		field.Int("account_id").
			Optional().
			Nillable(),
		field.String("account_name").
			Default(""),
		field.Int64("steam_id").
			Optional().
			Nillable(),
		field.String("lot_number").
			Default(""),
		field.Int("amount").
			Default(0),
		field.Float("price").
			Default(0),
		field.Int("rental_minutes").
			Default(0),
		field.Enum("action").
			Values(
				"paid", "issued", "extended", "replace_assign", "refunded",
				"closed", "busy", "unmapped", "blacklisted", "blacklist_comp",
				"auto_unblacklist", "review_bonus", "review_bonus_revert",
				"assign", "ticket_auto",
			),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OrderEvent.
func (OrderEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("order_events").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the OrderEvent.
func (OrderEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "order_id"),
		index.Fields("order_id", "action"),
		index.Fields("workspace_id", "user_id", "owner", "action"),
		index.Fields("user_id", "created_at"),
	}
}
