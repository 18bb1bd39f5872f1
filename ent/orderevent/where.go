// Code generated by ent, DO NOT EDIT.

package orderevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldUserID, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldOrderID, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldOwner, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAccountID, v))
}

// AccountName applies equality check predicate on the "account_name" field. It's identical to AccountNameEQ.
func AccountName(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAccountName, v))
}

// SteamID applies equality check predicate on the "steam_id" field. It's identical to SteamIDEQ.
func SteamID(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldSteamID, v))
}

// LotNumber applies equality check predicate on the "lot_number" field. It's identical to LotNumberEQ.
func LotNumber(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldLotNumber, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAmount, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldPrice, v))
}

// RentalMinutes applies equality check predicate on the "rental_minutes" field. It's identical to RentalMinutesEQ.
func RentalMinutes(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldRentalMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldUserID, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContainsFold(FieldOrderID, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContainsFold(FieldOwner, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDIsNil applies the IsNil predicate on the "account_id" field.
func AccountIDIsNil() predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIsNull(FieldAccountID))
}

// AccountIDNotNil applies the NotNil predicate on the "account_id" field.
func AccountIDNotNil() predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotNull(FieldAccountID))
}

// AccountNameEQ applies the EQ predicate on the "account_name" field.
func AccountNameEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAccountName, v))
}

// AccountNameNEQ applies the NEQ predicate on the "account_name" field.
func AccountNameNEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldAccountName, v))
}

// AccountNameIn applies the In predicate on the "account_name" field.
func AccountNameIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldAccountName, vs...))
}

// AccountNameNotIn applies the NotIn predicate on the "account_name" field.
func AccountNameNotIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldAccountName, vs...))
}

// AccountNameGT applies the GT predicate on the "account_name" field.
func AccountNameGT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldAccountName, v))
}

// AccountNameGTE applies the GTE predicate on the "account_name" field.
func AccountNameGTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldAccountName, v))
}

// AccountNameLT applies the LT predicate on the "account_name" field.
func AccountNameLT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldAccountName, v))
}

// AccountNameLTE applies the LTE predicate on the "account_name" field.
func AccountNameLTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldAccountName, v))
}

// AccountNameContains applies the Contains predicate on the "account_name" field.
func AccountNameContains(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContains(FieldAccountName, v))
}

// AccountNameHasPrefix applies the HasPrefix predicate on the "account_name" field.
func AccountNameHasPrefix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasPrefix(FieldAccountName, v))
}

// AccountNameHasSuffix applies the HasSuffix predicate on the "account_name" field.
func AccountNameHasSuffix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasSuffix(FieldAccountName, v))
}

// AccountNameEqualFold applies the EqualFold predicate on the "account_name" field.
func AccountNameEqualFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEqualFold(FieldAccountName, v))
}

// AccountNameContainsFold applies the ContainsFold predicate on the "account_name" field.
func AccountNameContainsFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContainsFold(FieldAccountName, v))
}

// SteamIDEQ applies the EQ predicate on the "steam_id" field.
func SteamIDEQ(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldSteamID, v))
}

// SteamIDNEQ applies the NEQ predicate on the "steam_id" field.
func SteamIDNEQ(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldSteamID, v))
}

// SteamIDIn applies the In predicate on the "steam_id" field.
func SteamIDIn(vs ...int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldSteamID, vs...))
}

// SteamIDNotIn applies the NotIn predicate on the "steam_id" field.
func SteamIDNotIn(vs ...int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldSteamID, vs...))
}

// SteamIDGT applies the GT predicate on the "steam_id" field.
func SteamIDGT(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldSteamID, v))
}

// SteamIDGTE applies the GTE predicate on the "steam_id" field.
func SteamIDGTE(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldSteamID, v))
}

// SteamIDLT applies the LT predicate on the "steam_id" field.
func SteamIDLT(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldSteamID, v))
}

// SteamIDLTE applies the LTE predicate on the "steam_id" field.
func SteamIDLTE(v int64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldSteamID, v))
}

// SteamIDIsNil applies the IsNil predicate on the "steam_id" field.
func SteamIDIsNil() predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIsNull(FieldSteamID))
}

// SteamIDNotNil applies the NotNil predicate on the "steam_id" field.
func SteamIDNotNil() predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotNull(FieldSteamID))
}

// LotNumberEQ applies the EQ predicate on the "lot_number" field.
func LotNumberEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldLotNumber, v))
}

// LotNumberNEQ applies the NEQ predicate on the "lot_number" field.
func LotNumberNEQ(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldLotNumber, v))
}

// LotNumberIn applies the In predicate on the "lot_number" field.
func LotNumberIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldLotNumber, vs...))
}

// LotNumberNotIn applies the NotIn predicate on the "lot_number" field.
func LotNumberNotIn(vs ...string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldLotNumber, vs...))
}

// LotNumberGT applies the GT predicate on the "lot_number" field.
func LotNumberGT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldLotNumber, v))
}

// LotNumberGTE applies the GTE predicate on the "lot_number" field.
func LotNumberGTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldLotNumber, v))
}

// LotNumberLT applies the LT predicate on the "lot_number" field.
func LotNumberLT(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldLotNumber, v))
}

// LotNumberLTE applies the LTE predicate on the "lot_number" field.
func LotNumberLTE(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldLotNumber, v))
}

// LotNumberContains applies the Contains predicate on the "lot_number" field.
func LotNumberContains(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContains(FieldLotNumber, v))
}

// LotNumberHasPrefix applies the HasPrefix predicate on the "lot_number" field.
func LotNumberHasPrefix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasPrefix(FieldLotNumber, v))
}

// LotNumberHasSuffix applies the HasSuffix predicate on the "lot_number" field.
func LotNumberHasSuffix(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldHasSuffix(FieldLotNumber, v))
}

// LotNumberEqualFold applies the EqualFold predicate on the "lot_number" field.
func LotNumberEqualFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEqualFold(FieldLotNumber, v))
}

// LotNumberContainsFold applies the ContainsFold predicate on the "lot_number" field.
func LotNumberContainsFold(v string) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldContainsFold(FieldLotNumber, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldAmount, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldPrice, v))
}

// RentalMinutesEQ applies the EQ predicate on the "rental_minutes" field.
func RentalMinutesEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldRentalMinutes, v))
}

// RentalMinutesNEQ applies the NEQ predicate on the "rental_minutes" field.
func RentalMinutesNEQ(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldRentalMinutes, v))
}

// RentalMinutesIn applies the In predicate on the "rental_minutes" field.
func RentalMinutesIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldRentalMinutes, vs...))
}

// RentalMinutesNotIn applies the NotIn predicate on the "rental_minutes" field.
func RentalMinutesNotIn(vs ...int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldRentalMinutes, vs...))
}

// RentalMinutesGT applies the GT predicate on the "rental_minutes" field.
func RentalMinutesGT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldRentalMinutes, v))
}

// RentalMinutesGTE applies the GTE predicate on the "rental_minutes" field.
func RentalMinutesGTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldRentalMinutes, v))
}

// RentalMinutesLT applies the LT predicate on the "rental_minutes" field.
func RentalMinutesLT(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldRentalMinutes, v))
}

// RentalMinutesLTE applies the LTE predicate on the "rental_minutes" field.
func RentalMinutesLTE(v int) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldRentalMinutes, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldAction, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrderEvent {
	return predicate.OrderEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.OrderEvent {
	return predicate.OrderEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.OrderEvent {
	return predicate.OrderEvent(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderEvent) predicate.OrderEvent {
	return predicate.OrderEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderEvent) predicate.OrderEvent {
	return predicate.OrderEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderEvent) predicate.OrderEvent {
	return predicate.OrderEvent(sql.NotPredicates(p))
}
