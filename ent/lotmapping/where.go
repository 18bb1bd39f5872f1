// Code generated by ent, DO NOT EDIT.

package lotmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldUserID, v))
}

// LotNumber applies equality check predicate on the "lot_number" field. It's identical to LotNumberEQ.
func LotNumber(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldLotNumber, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldAccountID, v))
}

// LotURL applies equality check predicate on the "lot_url" field. It's identical to LotURLEQ.
func LotURL(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldLotURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldUserID, v))
}

// LotNumberEQ applies the EQ predicate on the "lot_number" field.
func LotNumberEQ(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldLotNumber, v))
}

// LotNumberNEQ applies the NEQ predicate on the "lot_number" field.
func LotNumberNEQ(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldLotNumber, v))
}

// LotNumberIn applies the In predicate on the "lot_number" field.
func LotNumberIn(vs ...string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldLotNumber, vs...))
}

// LotNumberNotIn applies the NotIn predicate on the "lot_number" field.
func LotNumberNotIn(vs ...string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldLotNumber, vs...))
}

// LotNumberGT applies the GT predicate on the "lot_number" field.
func LotNumberGT(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldLotNumber, v))
}

// LotNumberGTE applies the GTE predicate on the "lot_number" field.
func LotNumberGTE(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldLotNumber, v))
}

// LotNumberLT applies the LT predicate on the "lot_number" field.
func LotNumberLT(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldLotNumber, v))
}

// LotNumberLTE applies the LTE predicate on the "lot_number" field.
func LotNumberLTE(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldLotNumber, v))
}

// LotNumberContains applies the Contains predicate on the "lot_number" field.
func LotNumberContains(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldContains(FieldLotNumber, v))
}

// LotNumberHasPrefix applies the HasPrefix predicate on the "lot_number" field.
func LotNumberHasPrefix(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldHasPrefix(FieldLotNumber, v))
}

// LotNumberHasSuffix applies the HasSuffix predicate on the "lot_number" field.
func LotNumberHasSuffix(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldHasSuffix(FieldLotNumber, v))
}

// LotNumberEqualFold applies the EqualFold predicate on the "lot_number" field.
func LotNumberEqualFold(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEqualFold(FieldLotNumber, v))
}

// LotNumberContainsFold applies the ContainsFold predicate on the "lot_number" field.
func LotNumberContainsFold(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldContainsFold(FieldLotNumber, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v int) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldAccountID, v))
}

// LotURLEQ applies the EQ predicate on the "lot_url" field.
func LotURLEQ(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldLotURL, v))
}

// LotURLNEQ applies the NEQ predicate on the "lot_url" field.
func LotURLNEQ(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldLotURL, v))
}

// LotURLIn applies the In predicate on the "lot_url" field.
func LotURLIn(vs ...string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldLotURL, vs...))
}

// LotURLNotIn applies the NotIn predicate on the "lot_url" field.
func LotURLNotIn(vs ...string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldLotURL, vs...))
}

// LotURLGT applies the GT predicate on the "lot_url" field.
func LotURLGT(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldLotURL, v))
}

// LotURLGTE applies the GTE predicate on the "lot_url" field.
func LotURLGTE(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldLotURL, v))
}

// LotURLLT applies the LT predicate on the "lot_url" field.
func LotURLLT(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldLotURL, v))
}

// LotURLLTE applies the LTE predicate on the "lot_url" field.
func LotURLLTE(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldLotURL, v))
}

// LotURLContains applies the Contains predicate on the "lot_url" field.
func LotURLContains(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldContains(FieldLotURL, v))
}

// LotURLHasPrefix applies the HasPrefix predicate on the "lot_url" field.
func LotURLHasPrefix(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldHasPrefix(FieldLotURL, v))
}

// LotURLHasSuffix applies the HasSuffix predicate on the "lot_url" field.
func LotURLHasSuffix(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldHasSuffix(FieldLotURL, v))
}

// LotURLEqualFold applies the EqualFold predicate on the "lot_url" field.
func LotURLEqualFold(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEqualFold(FieldLotURL, v))
}

// LotURLContainsFold applies the ContainsFold predicate on the "lot_url" field.
func LotURLContainsFold(v string) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldContainsFold(FieldLotURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LotMapping {
	return predicate.LotMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.LotMapping {
	return predicate.LotMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.LotMapping {
	return predicate.LotMapping(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LotMapping) predicate.LotMapping {
	return predicate.LotMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LotMapping) predicate.LotMapping {
	return predicate.LotMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LotMapping) predicate.LotMapping {
	return predicate.LotMapping(sql.NotPredicates(p))
}
