package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlacklistEntry holds the schema definition for the BlacklistEntry entity.
// Removal is explicit (dashboard) or automatic once the compensation
// threshold is met.
type BlacklistEntry struct {
	ent.Schema
}

// Fields of the BlacklistEntry.
func (BlacklistEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("owner"),
		field.String("owner_key").
			Comment("Lowercased owner, uniqueness key"),
		field.String("reason").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BlacklistEntry.
func (BlacklistEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("blacklist_entries").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the BlacklistEntry.
func (BlacklistEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id", "owner_key").
			Unique(),
	}
}
