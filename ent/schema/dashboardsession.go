package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DashboardSession holds the schema definition for the DashboardSession
// entity. Cookie session with sliding 7-day expiry.
type DashboardSession struct {
	ent.Schema
}

// Fields of the DashboardSession.
func (DashboardSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int("user_id"),
		field.Time("expires_at"),
		field.Time("last_seen_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DashboardSession.
func (DashboardSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("expires_at"),
	}
}
