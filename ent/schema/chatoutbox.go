package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatOutbox holds the schema definition for the ChatOutbox entity.
// FIFO outbound message queue per workspace, drained by the chat bridge.
type ChatOutbox struct {
	ent.Schema
}

// Fields of the ChatOutbox.
func (ChatOutbox) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("chat_id"),
		field.Text("text"),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ChatOutbox.
func (ChatOutbox) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("chat_outbox").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatOutbox.
func (ChatOutbox) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status", "created_at"),
	}
}
