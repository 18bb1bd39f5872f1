// Code generated by ent, DO NOT EDIT.

package admincall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldUserID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldChatID, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldOwner, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldCount, v))
}

// LastCalledAt applies equality check predicate on the "last_called_at" field. It's identical to LastCalledAtEQ.
func LastCalledAt(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldLastCalledAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldUserID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldContainsFold(FieldChatID, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldContainsFold(FieldOwner, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldCount, v))
}

// LastCalledAtEQ applies the EQ predicate on the "last_called_at" field.
func LastCalledAtEQ(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldEQ(FieldLastCalledAt, v))
}

// LastCalledAtNEQ applies the NEQ predicate on the "last_called_at" field.
func LastCalledAtNEQ(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNEQ(FieldLastCalledAt, v))
}

// LastCalledAtIn applies the In predicate on the "last_called_at" field.
func LastCalledAtIn(vs ...time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldIn(FieldLastCalledAt, vs...))
}

// LastCalledAtNotIn applies the NotIn predicate on the "last_called_at" field.
func LastCalledAtNotIn(vs ...time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldNotIn(FieldLastCalledAt, vs...))
}

// LastCalledAtGT applies the GT predicate on the "last_called_at" field.
func LastCalledAtGT(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGT(FieldLastCalledAt, v))
}

// LastCalledAtGTE applies the GTE predicate on the "last_called_at" field.
func LastCalledAtGTE(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldGTE(FieldLastCalledAt, v))
}

// LastCalledAtLT applies the LT predicate on the "last_called_at" field.
func LastCalledAtLT(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLT(FieldLastCalledAt, v))
}

// LastCalledAtLTE applies the LTE predicate on the "last_called_at" field.
func LastCalledAtLTE(v time.Time) predicate.AdminCall {
	return predicate.AdminCall(sql.FieldLTE(FieldLastCalledAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.AdminCall {
	return predicate.AdminCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.AdminCall {
	return predicate.AdminCall(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdminCall) predicate.AdminCall {
	return predicate.AdminCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdminCall) predicate.AdminCall {
	return predicate.AdminCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdminCall) predicate.AdminCall {
	return predicate.AdminCall(sql.NotPredicates(p))
}
