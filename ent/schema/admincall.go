package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdminCall holds the schema definition for the AdminCall entity.
// Upserted when a buyer types the admin-call command; cleared from
// the dashboard.
type AdminCall struct {
	ent.Schema
}

// Fields of the AdminCall.
func (AdminCall) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("chat_id"),
		field.String("owner").
			Default(""),
		field.Int("count").
			Default(0),
		field.Time("last_called_at").
			Default(time.Now),
	}
}

// Edges of the AdminCall.
func (AdminCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("admin_calls").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the AdminCall.
func (AdminCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "chat_id").
			Unique(),
	}
}
