package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BonusWallet holds the schema definition for the BonusWallet entity.
// Balance in rental minutes, updated atomically with a BonusHistory append.
type BonusWallet struct {
	ent.Schema
}

// Fields of the BonusWallet.
func (BonusWallet) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("owner"),
		field.Int("balance_minutes").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BonusWallet.
func (BonusWallet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("bonus_wallets").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the BonusWallet.
func (BonusWallet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id", "owner").
			Unique(),
	}
}
