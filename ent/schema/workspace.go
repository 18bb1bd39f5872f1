package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for the Workspace entity.
// A workspace is one marketplace account: session token + outbound proxy,
// owned by a single dashboard user. One live bot per workspace.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.String("label").
			Default(""),
		field.String("token").
			Sensitive().
			Comment("Marketplace golden_key session token"),
		field.String("proxy_uri").
			Default(""),
		field.String("proxy_user").
			Default(""),
		field.String("proxy_pass").
			Sensitive().
			Default(""),
		field.Bool("is_default").
			Default(false),
		field.Enum("status").
			Values("ok", "unauthorized", "error").
			Default("ok").
			Comment("Last observed bot status, written by the bot manager"),
		field.String("status_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workspace. Children are dropped with the workspace.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("accounts", Account.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lot_mappings", LotMapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("order_events", OrderEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("blacklist_entries", BlacklistEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bonus_wallets", BonusWallet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_snapshots", ChatSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_outbox", ChatOutbox.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("admin_calls", AdminCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "is_default"),
	}
}
