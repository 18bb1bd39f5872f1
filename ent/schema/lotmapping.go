package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LotMapping holds the schema definition for the LotMapping entity.
// Maps a marketplace lot number (SKU) to exactly one account per
// (user, workspace).
type LotMapping struct {
	ent.Schema
}

// Fields of the LotMapping.
func (LotMapping) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("lot_number"),
		field.Int("account_id"),
		field.String("lot_url").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LotMapping.
func (LotMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("lot_mappings").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the LotMapping.
func (LotMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id", "lot_number").
			Unique(),
		index.Fields("account_id"),
	}
}
