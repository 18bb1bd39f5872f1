// Code generated by ent, DO NOT EDIT.

package bonuswallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldUserID, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldOwner, v))
}

// BalanceMinutes applies equality check predicate on the "balance_minutes" field. It's identical to BalanceMinutesEQ.
func BalanceMinutes(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldBalanceMinutes, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLTE(FieldUserID, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldContainsFold(FieldOwner, v))
}

// BalanceMinutesEQ applies the EQ predicate on the "balance_minutes" field.
func BalanceMinutesEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldBalanceMinutes, v))
}

// BalanceMinutesNEQ applies the NEQ predicate on the "balance_minutes" field.
func BalanceMinutesNEQ(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldBalanceMinutes, v))
}

// BalanceMinutesIn applies the In predicate on the "balance_minutes" field.
func BalanceMinutesIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldBalanceMinutes, vs...))
}

// BalanceMinutesNotIn applies the NotIn predicate on the "balance_minutes" field.
func BalanceMinutesNotIn(vs ...int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldBalanceMinutes, vs...))
}

// BalanceMinutesGT applies the GT predicate on the "balance_minutes" field.
func BalanceMinutesGT(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGT(FieldBalanceMinutes, v))
}

// BalanceMinutesGTE applies the GTE predicate on the "balance_minutes" field.
func BalanceMinutesGTE(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGTE(FieldBalanceMinutes, v))
}

// BalanceMinutesLT applies the LT predicate on the "balance_minutes" field.
func BalanceMinutesLT(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLT(FieldBalanceMinutes, v))
}

// BalanceMinutesLTE applies the LTE predicate on the "balance_minutes" field.
func BalanceMinutesLTE(v int) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLTE(FieldBalanceMinutes, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BonusWallet {
	return predicate.BonusWallet(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.BonusWallet {
	return predicate.BonusWallet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.BonusWallet {
	return predicate.BonusWallet(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BonusWallet) predicate.BonusWallet {
	return predicate.BonusWallet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BonusWallet) predicate.BonusWallet {
	return predicate.BonusWallet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BonusWallet) predicate.BonusWallet {
	return predicate.BonusWallet(sql.NotPredicates(p))
}
