// Code generated by ent, DO NOT EDIT.

package bonushistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldUserID, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldOwner, v))
}

// DeltaMinutes applies equality check predicate on the "delta_minutes" field. It's identical to DeltaMinutesEQ.
func DeltaMinutes(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldDeltaMinutes, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldReason, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldOrderID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldWorkspaceID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldUserID, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContainsFold(FieldOwner, v))
}

// DeltaMinutesEQ applies the EQ predicate on the "delta_minutes" field.
func DeltaMinutesEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldDeltaMinutes, v))
}

// DeltaMinutesNEQ applies the NEQ predicate on the "delta_minutes" field.
func DeltaMinutesNEQ(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldDeltaMinutes, v))
}

// DeltaMinutesIn applies the In predicate on the "delta_minutes" field.
func DeltaMinutesIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldDeltaMinutes, vs...))
}

// DeltaMinutesNotIn applies the NotIn predicate on the "delta_minutes" field.
func DeltaMinutesNotIn(vs ...int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldDeltaMinutes, vs...))
}

// DeltaMinutesGT applies the GT predicate on the "delta_minutes" field.
func DeltaMinutesGT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldDeltaMinutes, v))
}

// DeltaMinutesGTE applies the GTE predicate on the "delta_minutes" field.
func DeltaMinutesGTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldDeltaMinutes, v))
}

// DeltaMinutesLT applies the LT predicate on the "delta_minutes" field.
func DeltaMinutesLT(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldDeltaMinutes, v))
}

// DeltaMinutesLTE applies the LTE predicate on the "delta_minutes" field.
func DeltaMinutesLTE(v int) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldDeltaMinutes, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContainsFold(FieldReason, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldContainsFold(FieldOrderID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BonusHistory {
	return predicate.BonusHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BonusHistory) predicate.BonusHistory {
	return predicate.BonusHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BonusHistory) predicate.BonusHistory {
	return predicate.BonusHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BonusHistory) predicate.BonusHistory {
	return predicate.BonusHistory(sql.NotPredicates(p))
}
