package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatSnapshot holds the schema definition for the ChatSnapshot entity.
// Dashboard-visible chat list state, synchronised from the marketplace
// by the chat bridge. Admin flags are preserved across syncs.
type ChatSnapshot struct {
	ent.Schema
}

// Fields of the ChatSnapshot.
func (ChatSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("chat_id"),
		field.String("peer_name").
			Default(""),
		field.Text("last_message_text").
			Default(""),
		field.Time("last_message_time").
			Optional().
			Nillable(),
		field.Bool("unread").
			Default(false),
		field.Int("admin_unread_count").
			Default(0),
		field.Bool("admin_requested").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatSnapshot.
func (ChatSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("chat_snapshots").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the ChatSnapshot.
func (ChatSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "chat_id").
			Unique(),
		index.Fields("user_id", "updated_at"),
	}
}
