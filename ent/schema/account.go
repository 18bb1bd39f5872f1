package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
// A rentable Steam credential. Invariant: owner = NULL implies
// rental_start = NULL, rental_frozen = false, rental_frozen_at = NULL.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.Int("workspace_id"),
		field.Int("user_id"),
		field.String("display_name"),
		field.String("login"),
		field.String("password").
			Sensitive().
			Comment("Stored through pkg/crypto; value carries the enc: prefix when a key is configured"),
		field.Text("mafile_json").
			Sensitive().
			Default("").
			Comment("Steam mobile authenticator payload, encrypted like password"),
		field.Int("mmr").
			Default(0),
		field.Int("rental_duration_minutes").
			Default(60),
		field.String("owner").
			Optional().
			Nillable().
			Comment("Buyer currently renting the account"),
		field.Time("rental_start").
			Optional().
			Nillable().
			Comment("Persisted in marketplace time (UTC+3); NULL until the first guard-code request"),
		field.Bool("rental_frozen").
			Default(false),
		field.Time("rental_frozen_at").
			Optional().
			Nillable(),
		field.Bool("account_frozen").
			Default(false).
			Comment("Admin freeze: no assignment, no code issuance"),
		field.String("rental_order_id").
			Optional().
			Nillable(),
		field.Bool("low_priority").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("accounts").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("user_id"),
		index.Fields("owner"),
		index.Fields("workspace_id", "owner"),
	}
}
