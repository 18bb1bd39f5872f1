// Code generated by ent, DO NOT EDIT.

package blacklistentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldUserID, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldOwner, v))
}

// OwnerKey applies equality check predicate on the "owner_key" field. It's identical to OwnerKeyEQ.
func OwnerKey(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldOwnerKey, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldUserID, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContainsFold(FieldOwner, v))
}

// OwnerKeyEQ applies the EQ predicate on the "owner_key" field.
func OwnerKeyEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldOwnerKey, v))
}

// OwnerKeyNEQ applies the NEQ predicate on the "owner_key" field.
func OwnerKeyNEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldOwnerKey, v))
}

// OwnerKeyIn applies the In predicate on the "owner_key" field.
func OwnerKeyIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldOwnerKey, vs...))
}

// OwnerKeyNotIn applies the NotIn predicate on the "owner_key" field.
func OwnerKeyNotIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldOwnerKey, vs...))
}

// OwnerKeyGT applies the GT predicate on the "owner_key" field.
func OwnerKeyGT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldOwnerKey, v))
}

// OwnerKeyGTE applies the GTE predicate on the "owner_key" field.
func OwnerKeyGTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldOwnerKey, v))
}

// OwnerKeyLT applies the LT predicate on the "owner_key" field.
func OwnerKeyLT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldOwnerKey, v))
}

// OwnerKeyLTE applies the LTE predicate on the "owner_key" field.
func OwnerKeyLTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldOwnerKey, v))
}

// OwnerKeyContains applies the Contains predicate on the "owner_key" field.
func OwnerKeyContains(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContains(FieldOwnerKey, v))
}

// OwnerKeyHasPrefix applies the HasPrefix predicate on the "owner_key" field.
func OwnerKeyHasPrefix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasPrefix(FieldOwnerKey, v))
}

// OwnerKeyHasSuffix applies the HasSuffix predicate on the "owner_key" field.
func OwnerKeyHasSuffix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasSuffix(FieldOwnerKey, v))
}

// OwnerKeyEqualFold applies the EqualFold predicate on the "owner_key" field.
func OwnerKeyEqualFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEqualFold(FieldOwnerKey, v))
}

// OwnerKeyContainsFold applies the ContainsFold predicate on the "owner_key" field.
func OwnerKeyContainsFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContainsFold(FieldOwnerKey, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.BlacklistEntry {
	return predicate.BlacklistEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BlacklistEntry) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BlacklistEntry) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BlacklistEntry) predicate.BlacklistEntry {
	return predicate.BlacklistEntry(sql.NotPredicates(p))
}
