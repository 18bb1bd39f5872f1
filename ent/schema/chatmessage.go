package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Unique on (workspace_id, chat_id, message_id): duplicate sends after a
// crash are absorbed here.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("chat_id"),
		field.String("message_id"),
		field.String("author").
			Default(""),
		field.Text("text").
			Default(""),
		field.Time("sent_time").
			Optional().
			Nillable(),
		field.Bool("by_bot").
			Default(false),
		field.String("type").
			Default("text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("chat_messages").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "chat_id", "message_id").
			Unique(),
		index.Fields("workspace_id", "chat_id", "sent_time"),
	}
}
