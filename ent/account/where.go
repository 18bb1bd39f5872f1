// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUserID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDisplayName, v))
}

// Login applies equality check predicate on the "login" field. It's identical to LoginEQ.
func Login(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLogin, v))
}

// Password applies equality check predicate on the "password" field. It's identical to PasswordEQ.
func Password(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPassword, v))
}

// MafileJSON applies equality check predicate on the "mafile_json" field. It's identical to MafileJSONEQ.
func MafileJSON(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMafileJSON, v))
}

// Mmr applies equality check predicate on the "mmr" field. It's identical to MmrEQ.
func Mmr(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMmr, v))
}

// RentalDurationMinutes applies equality check predicate on the "rental_duration_minutes" field. It's identical to RentalDurationMinutesEQ.
func RentalDurationMinutes(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalDurationMinutes, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldOwner, v))
}

// RentalStart applies equality check predicate on the "rental_start" field. It's identical to RentalStartEQ.
func RentalStart(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalStart, v))
}

// RentalFrozen applies equality check predicate on the "rental_frozen" field. It's identical to RentalFrozenEQ.
func RentalFrozen(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalFrozen, v))
}

// RentalFrozenAt applies equality check predicate on the "rental_frozen_at" field. It's identical to RentalFrozenAtEQ.
func RentalFrozenAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalFrozenAt, v))
}

// AccountFrozen applies equality check predicate on the "account_frozen" field. It's identical to AccountFrozenEQ.
func AccountFrozen(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccountFrozen, v))
}

// RentalOrderID applies equality check predicate on the "rental_order_id" field. It's identical to RentalOrderIDEQ.
func RentalOrderID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalOrderID, v))
}

// LowPriority applies equality check predicate on the "low_priority" field. It's identical to LowPriorityEQ.
func LowPriority(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLowPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUserID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldDisplayName, v))
}

// LoginEQ applies the EQ predicate on the "login" field.
func LoginEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLogin, v))
}

// LoginNEQ applies the NEQ predicate on the "login" field.
func LoginNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLogin, v))
}

// LoginIn applies the In predicate on the "login" field.
func LoginIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLogin, vs...))
}

// LoginNotIn applies the NotIn predicate on the "login" field.
func LoginNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLogin, vs...))
}

// LoginGT applies the GT predicate on the "login" field.
func LoginGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLogin, v))
}

// LoginGTE applies the GTE predicate on the "login" field.
func LoginGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLogin, v))
}

// LoginLT applies the LT predicate on the "login" field.
func LoginLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLogin, v))
}

// LoginLTE applies the LTE predicate on the "login" field.
func LoginLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLogin, v))
}

// LoginContains applies the Contains predicate on the "login" field.
func LoginContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldLogin, v))
}

// LoginHasPrefix applies the HasPrefix predicate on the "login" field.
func LoginHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldLogin, v))
}

// LoginHasSuffix applies the HasSuffix predicate on the "login" field.
func LoginHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldLogin, v))
}

// LoginEqualFold applies the EqualFold predicate on the "login" field.
func LoginEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldLogin, v))
}

// LoginContainsFold applies the ContainsFold predicate on the "login" field.
func LoginContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldLogin, v))
}

// PasswordEQ applies the EQ predicate on the "password" field.
func PasswordEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPassword, v))
}

// PasswordNEQ applies the NEQ predicate on the "password" field.
func PasswordNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPassword, v))
}

// PasswordIn applies the In predicate on the "password" field.
func PasswordIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPassword, vs...))
}

// PasswordNotIn applies the NotIn predicate on the "password" field.
func PasswordNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPassword, vs...))
}

// PasswordGT applies the GT predicate on the "password" field.
func PasswordGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldPassword, v))
}

// PasswordGTE applies the GTE predicate on the "password" field.
func PasswordGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldPassword, v))
}

// PasswordLT applies the LT predicate on the "password" field.
func PasswordLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldPassword, v))
}

// PasswordLTE applies the LTE predicate on the "password" field.
func PasswordLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldPassword, v))
}

// PasswordContains applies the Contains predicate on the "password" field.
func PasswordContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldPassword, v))
}

// PasswordHasPrefix applies the HasPrefix predicate on the "password" field.
func PasswordHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldPassword, v))
}

// PasswordHasSuffix applies the HasSuffix predicate on the "password" field.
func PasswordHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldPassword, v))
}

// PasswordEqualFold applies the EqualFold predicate on the "password" field.
func PasswordEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldPassword, v))
}

// PasswordContainsFold applies the ContainsFold predicate on the "password" field.
func PasswordContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldPassword, v))
}

// MafileJSONEQ applies the EQ predicate on the "mafile_json" field.
func MafileJSONEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMafileJSON, v))
}

// MafileJSONNEQ applies the NEQ predicate on the "mafile_json" field.
func MafileJSONNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldMafileJSON, v))
}

// MafileJSONIn applies the In predicate on the "mafile_json" field.
func MafileJSONIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldMafileJSON, vs...))
}

// MafileJSONNotIn applies the NotIn predicate on the "mafile_json" field.
func MafileJSONNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldMafileJSON, vs...))
}

// MafileJSONGT applies the GT predicate on the "mafile_json" field.
func MafileJSONGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldMafileJSON, v))
}

// MafileJSONGTE applies the GTE predicate on the "mafile_json" field.
func MafileJSONGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldMafileJSON, v))
}

// MafileJSONLT applies the LT predicate on the "mafile_json" field.
func MafileJSONLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldMafileJSON, v))
}

// MafileJSONLTE applies the LTE predicate on the "mafile_json" field.
func MafileJSONLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldMafileJSON, v))
}

// MafileJSONContains applies the Contains predicate on the "mafile_json" field.
func MafileJSONContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldMafileJSON, v))
}

// MafileJSONHasPrefix applies the HasPrefix predicate on the "mafile_json" field.
func MafileJSONHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldMafileJSON, v))
}

// MafileJSONHasSuffix applies the HasSuffix predicate on the "mafile_json" field.
func MafileJSONHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldMafileJSON, v))
}

// MafileJSONEqualFold applies the EqualFold predicate on the "mafile_json" field.
func MafileJSONEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldMafileJSON, v))
}

// MafileJSONContainsFold applies the ContainsFold predicate on the "mafile_json" field.
func MafileJSONContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldMafileJSON, v))
}

// MmrEQ applies the EQ predicate on the "mmr" field.
func MmrEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldMmr, v))
}

// MmrNEQ applies the NEQ predicate on the "mmr" field.
func MmrNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldMmr, v))
}

// MmrIn applies the In predicate on the "mmr" field.
func MmrIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldMmr, vs...))
}

// MmrNotIn applies the NotIn predicate on the "mmr" field.
func MmrNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldMmr, vs...))
}

// MmrGT applies the GT predicate on the "mmr" field.
func MmrGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldMmr, v))
}

// MmrGTE applies the GTE predicate on the "mmr" field.
func MmrGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldMmr, v))
}

// MmrLT applies the LT predicate on the "mmr" field.
func MmrLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldMmr, v))
}

// MmrLTE applies the LTE predicate on the "mmr" field.
func MmrLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldMmr, v))
}

// RentalDurationMinutesEQ applies the EQ predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalDurationMinutes, v))
}

// RentalDurationMinutesNEQ applies the NEQ predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRentalDurationMinutes, v))
}

// RentalDurationMinutesIn applies the In predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldRentalDurationMinutes, vs...))
}

// RentalDurationMinutesNotIn applies the NotIn predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldRentalDurationMinutes, vs...))
}

// RentalDurationMinutesGT applies the GT predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldRentalDurationMinutes, v))
}

// RentalDurationMinutesGTE applies the GTE predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldRentalDurationMinutes, v))
}

// RentalDurationMinutesLT applies the LT predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldRentalDurationMinutes, v))
}

// RentalDurationMinutesLTE applies the LTE predicate on the "rental_duration_minutes" field.
func RentalDurationMinutesLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldRentalDurationMinutes, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldOwner, v))
}

// RentalStartEQ applies the EQ predicate on the "rental_start" field.
func RentalStartEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalStart, v))
}

// RentalStartNEQ applies the NEQ predicate on the "rental_start" field.
func RentalStartNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRentalStart, v))
}

// RentalStartIn applies the In predicate on the "rental_start" field.
func RentalStartIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldRentalStart, vs...))
}

// RentalStartNotIn applies the NotIn predicate on the "rental_start" field.
func RentalStartNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldRentalStart, vs...))
}

// RentalStartGT applies the GT predicate on the "rental_start" field.
func RentalStartGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldRentalStart, v))
}

// RentalStartGTE applies the GTE predicate on the "rental_start" field.
func RentalStartGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldRentalStart, v))
}

// RentalStartLT applies the LT predicate on the "rental_start" field.
func RentalStartLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldRentalStart, v))
}

// RentalStartLTE applies the LTE predicate on the "rental_start" field.
func RentalStartLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldRentalStart, v))
}

// RentalStartIsNil applies the IsNil predicate on the "rental_start" field.
func RentalStartIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldRentalStart))
}

// RentalStartNotNil applies the NotNil predicate on the "rental_start" field.
func RentalStartNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldRentalStart))
}

// RentalFrozenEQ applies the EQ predicate on the "rental_frozen" field.
func RentalFrozenEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalFrozen, v))
}

// RentalFrozenNEQ applies the NEQ predicate on the "rental_frozen" field.
func RentalFrozenNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRentalFrozen, v))
}

// RentalFrozenAtEQ applies the EQ predicate on the "rental_frozen_at" field.
func RentalFrozenAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalFrozenAt, v))
}

// RentalFrozenAtNEQ applies the NEQ predicate on the "rental_frozen_at" field.
func RentalFrozenAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRentalFrozenAt, v))
}

// RentalFrozenAtIn applies the In predicate on the "rental_frozen_at" field.
func RentalFrozenAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldRentalFrozenAt, vs...))
}

// RentalFrozenAtNotIn applies the NotIn predicate on the "rental_frozen_at" field.
func RentalFrozenAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldRentalFrozenAt, vs...))
}

// RentalFrozenAtGT applies the GT predicate on the "rental_frozen_at" field.
func RentalFrozenAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldRentalFrozenAt, v))
}

// RentalFrozenAtGTE applies the GTE predicate on the "rental_frozen_at" field.
func RentalFrozenAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldRentalFrozenAt, v))
}

// RentalFrozenAtLT applies the LT predicate on the "rental_frozen_at" field.
func RentalFrozenAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldRentalFrozenAt, v))
}

// RentalFrozenAtLTE applies the LTE predicate on the "rental_frozen_at" field.
func RentalFrozenAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldRentalFrozenAt, v))
}

// RentalFrozenAtIsNil applies the IsNil predicate on the "rental_frozen_at" field.
func RentalFrozenAtIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldRentalFrozenAt))
}

// RentalFrozenAtNotNil applies the NotNil predicate on the "rental_frozen_at" field.
func RentalFrozenAtNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldRentalFrozenAt))
}

// AccountFrozenEQ applies the EQ predicate on the "account_frozen" field.
func AccountFrozenEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccountFrozen, v))
}

// AccountFrozenNEQ applies the NEQ predicate on the "account_frozen" field.
func AccountFrozenNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldAccountFrozen, v))
}

// RentalOrderIDEQ applies the EQ predicate on the "rental_order_id" field.
func RentalOrderIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldRentalOrderID, v))
}

// RentalOrderIDNEQ applies the NEQ predicate on the "rental_order_id" field.
func RentalOrderIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldRentalOrderID, v))
}

// RentalOrderIDIn applies the In predicate on the "rental_order_id" field.
func RentalOrderIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldRentalOrderID, vs...))
}

// RentalOrderIDNotIn applies the NotIn predicate on the "rental_order_id" field.
func RentalOrderIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldRentalOrderID, vs...))
}

// RentalOrderIDGT applies the GT predicate on the "rental_order_id" field.
func RentalOrderIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldRentalOrderID, v))
}

// RentalOrderIDGTE applies the GTE predicate on the "rental_order_id" field.
func RentalOrderIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldRentalOrderID, v))
}

// RentalOrderIDLT applies the LT predicate on the "rental_order_id" field.
func RentalOrderIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldRentalOrderID, v))
}

// RentalOrderIDLTE applies the LTE predicate on the "rental_order_id" field.
func RentalOrderIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldRentalOrderID, v))
}

// RentalOrderIDContains applies the Contains predicate on the "rental_order_id" field.
func RentalOrderIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldRentalOrderID, v))
}

// RentalOrderIDHasPrefix applies the HasPrefix predicate on the "rental_order_id" field.
func RentalOrderIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldRentalOrderID, v))
}

// RentalOrderIDHasSuffix applies the HasSuffix predicate on the "rental_order_id" field.
func RentalOrderIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldRentalOrderID, v))
}

// RentalOrderIDIsNil applies the IsNil predicate on the "rental_order_id" field.
func RentalOrderIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldRentalOrderID))
}

// RentalOrderIDNotNil applies the NotNil predicate on the "rental_order_id" field.
func RentalOrderIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldRentalOrderID))
}

// RentalOrderIDEqualFold applies the EqualFold predicate on the "rental_order_id" field.
func RentalOrderIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldRentalOrderID, v))
}

// RentalOrderIDContainsFold applies the ContainsFold predicate on the "rental_order_id" field.
func RentalOrderIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldRentalOrderID, v))
}

// LowPriorityEQ applies the EQ predicate on the "low_priority" field.
func LowPriorityEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLowPriority, v))
}

// LowPriorityNEQ applies the NEQ predicate on the "low_priority" field.
func LowPriorityNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLowPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
