// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUserID, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldToken, v))
}

// ProxyURI applies equality check predicate on the "proxy_uri" field. It's identical to ProxyURIEQ.
func ProxyURI(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyURI, v))
}

// ProxyUser applies equality check predicate on the "proxy_user" field. It's identical to ProxyUserEQ.
func ProxyUser(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyUser, v))
}

// ProxyPass applies equality check predicate on the "proxy_pass" field. It's identical to ProxyPassEQ.
func ProxyPass(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyPass, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldIsDefault, v))
}

// StatusMessage applies equality check predicate on the "status_message" field. It's identical to StatusMessageEQ.
func StatusMessage(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStatusMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldUserID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldLabel, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldToken, v))
}

// ProxyURIEQ applies the EQ predicate on the "proxy_uri" field.
func ProxyURIEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyURI, v))
}

// ProxyURINEQ applies the NEQ predicate on the "proxy_uri" field.
func ProxyURINEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldProxyURI, v))
}

// ProxyURIIn applies the In predicate on the "proxy_uri" field.
func ProxyURIIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldProxyURI, vs...))
}

// ProxyURINotIn applies the NotIn predicate on the "proxy_uri" field.
func ProxyURINotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldProxyURI, vs...))
}

// ProxyURIGT applies the GT predicate on the "proxy_uri" field.
func ProxyURIGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldProxyURI, v))
}

// ProxyURIGTE applies the GTE predicate on the "proxy_uri" field.
func ProxyURIGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldProxyURI, v))
}

// ProxyURILT applies the LT predicate on the "proxy_uri" field.
func ProxyURILT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldProxyURI, v))
}

// ProxyURILTE applies the LTE predicate on the "proxy_uri" field.
func ProxyURILTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldProxyURI, v))
}

// ProxyURIContains applies the Contains predicate on the "proxy_uri" field.
func ProxyURIContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldProxyURI, v))
}

// ProxyURIHasPrefix applies the HasPrefix predicate on the "proxy_uri" field.
func ProxyURIHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldProxyURI, v))
}

// ProxyURIHasSuffix applies the HasSuffix predicate on the "proxy_uri" field.
func ProxyURIHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldProxyURI, v))
}

// ProxyURIEqualFold applies the EqualFold predicate on the "proxy_uri" field.
func ProxyURIEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldProxyURI, v))
}

// ProxyURIContainsFold applies the ContainsFold predicate on the "proxy_uri" field.
func ProxyURIContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldProxyURI, v))
}

// ProxyUserEQ applies the EQ predicate on the "proxy_user" field.
func ProxyUserEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyUser, v))
}

// ProxyUserNEQ applies the NEQ predicate on the "proxy_user" field.
func ProxyUserNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldProxyUser, v))
}

// ProxyUserIn applies the In predicate on the "proxy_user" field.
func ProxyUserIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldProxyUser, vs...))
}

// ProxyUserNotIn applies the NotIn predicate on the "proxy_user" field.
func ProxyUserNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldProxyUser, vs...))
}

// ProxyUserGT applies the GT predicate on the "proxy_user" field.
func ProxyUserGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldProxyUser, v))
}

// ProxyUserGTE applies the GTE predicate on the "proxy_user" field.
func ProxyUserGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldProxyUser, v))
}

// ProxyUserLT applies the LT predicate on the "proxy_user" field.
func ProxyUserLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldProxyUser, v))
}

// ProxyUserLTE applies the LTE predicate on the "proxy_user" field.
func ProxyUserLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldProxyUser, v))
}

// ProxyUserContains applies the Contains predicate on the "proxy_user" field.
func ProxyUserContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldProxyUser, v))
}

// ProxyUserHasPrefix applies the HasPrefix predicate on the "proxy_user" field.
func ProxyUserHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldProxyUser, v))
}

// ProxyUserHasSuffix applies the HasSuffix predicate on the "proxy_user" field.
func ProxyUserHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldProxyUser, v))
}

// ProxyUserEqualFold applies the EqualFold predicate on the "proxy_user" field.
func ProxyUserEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldProxyUser, v))
}

// ProxyUserContainsFold applies the ContainsFold predicate on the "proxy_user" field.
func ProxyUserContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldProxyUser, v))
}

// ProxyPassEQ applies the EQ predicate on the "proxy_pass" field.
func ProxyPassEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldProxyPass, v))
}

// ProxyPassNEQ applies the NEQ predicate on the "proxy_pass" field.
func ProxyPassNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldProxyPass, v))
}

// ProxyPassIn applies the In predicate on the "proxy_pass" field.
func ProxyPassIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldProxyPass, vs...))
}

// ProxyPassNotIn applies the NotIn predicate on the "proxy_pass" field.
func ProxyPassNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldProxyPass, vs...))
}

// ProxyPassGT applies the GT predicate on the "proxy_pass" field.
func ProxyPassGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldProxyPass, v))
}

// ProxyPassGTE applies the GTE predicate on the "proxy_pass" field.
func ProxyPassGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldProxyPass, v))
}

// ProxyPassLT applies the LT predicate on the "proxy_pass" field.
func ProxyPassLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldProxyPass, v))
}

// ProxyPassLTE applies the LTE predicate on the "proxy_pass" field.
func ProxyPassLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldProxyPass, v))
}

// ProxyPassContains applies the Contains predicate on the "proxy_pass" field.
func ProxyPassContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldProxyPass, v))
}

// ProxyPassHasPrefix applies the HasPrefix predicate on the "proxy_pass" field.
func ProxyPassHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldProxyPass, v))
}

// ProxyPassHasSuffix applies the HasSuffix predicate on the "proxy_pass" field.
func ProxyPassHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldProxyPass, v))
}

// ProxyPassEqualFold applies the EqualFold predicate on the "proxy_pass" field.
func ProxyPassEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldProxyPass, v))
}

// ProxyPassContainsFold applies the ContainsFold predicate on the "proxy_pass" field.
func ProxyPassContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldProxyPass, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldIsDefault, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusMessageEQ applies the EQ predicate on the "status_message" field.
func StatusMessageEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStatusMessage, v))
}

// StatusMessageNEQ applies the NEQ predicate on the "status_message" field.
func StatusMessageNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldStatusMessage, v))
}

// StatusMessageIn applies the In predicate on the "status_message" field.
func StatusMessageIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldStatusMessage, vs...))
}

// StatusMessageNotIn applies the NotIn predicate on the "status_message" field.
func StatusMessageNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldStatusMessage, vs...))
}

// StatusMessageGT applies the GT predicate on the "status_message" field.
func StatusMessageGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldStatusMessage, v))
}

// StatusMessageGTE applies the GTE predicate on the "status_message" field.
func StatusMessageGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldStatusMessage, v))
}

// StatusMessageLT applies the LT predicate on the "status_message" field.
func StatusMessageLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldStatusMessage, v))
}

// StatusMessageLTE applies the LTE predicate on the "status_message" field.
func StatusMessageLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldStatusMessage, v))
}

// StatusMessageContains applies the Contains predicate on the "status_message" field.
func StatusMessageContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldStatusMessage, v))
}

// StatusMessageHasPrefix applies the HasPrefix predicate on the "status_message" field.
func StatusMessageHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldStatusMessage, v))
}

// StatusMessageHasSuffix applies the HasSuffix predicate on the "status_message" field.
func StatusMessageHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldStatusMessage, v))
}

// StatusMessageIsNil applies the IsNil predicate on the "status_message" field.
func StatusMessageIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldStatusMessage))
}

// StatusMessageNotNil applies the NotNil predicate on the "status_message" field.
func StatusMessageNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldStatusMessage))
}

// StatusMessageEqualFold applies the EqualFold predicate on the "status_message" field.
func StatusMessageEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldStatusMessage, v))
}

// StatusMessageContainsFold applies the ContainsFold predicate on the "status_message" field.
func StatusMessageContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldStatusMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAccounts applies the HasEdge predicate on the "accounts" edge.
func HasAccounts() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AccountsTable, AccountsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountsWith applies the HasEdge predicate on the "accounts" edge with a given conditions (other predicates).
func HasAccountsWith(preds ...predicate.Account) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newAccountsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLotMappings applies the HasEdge predicate on the "lot_mappings" edge.
func HasLotMappings() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LotMappingsTable, LotMappingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLotMappingsWith applies the HasEdge predicate on the "lot_mappings" edge with a given conditions (other predicates).
func HasLotMappingsWith(preds ...predicate.LotMapping) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newLotMappingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrderEvents applies the HasEdge predicate on the "order_events" edge.
func HasOrderEvents() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrderEventsTable, OrderEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderEventsWith applies the HasEdge predicate on the "order_events" edge with a given conditions (other predicates).
func HasOrderEventsWith(preds ...predicate.OrderEvent) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newOrderEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlacklistEntries applies the HasEdge predicate on the "blacklist_entries" edge.
func HasBlacklistEntries() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BlacklistEntriesTable, BlacklistEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlacklistEntriesWith applies the HasEdge predicate on the "blacklist_entries" edge with a given conditions (other predicates).
func HasBlacklistEntriesWith(preds ...predicate.BlacklistEntry) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newBlacklistEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBonusWallets applies the HasEdge predicate on the "bonus_wallets" edge.
func HasBonusWallets() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BonusWalletsTable, BonusWalletsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBonusWalletsWith applies the HasEdge predicate on the "bonus_wallets" edge with a given conditions (other predicates).
func HasBonusWalletsWith(preds ...predicate.BonusWallet) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newBonusWalletsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatSnapshots applies the HasEdge predicate on the "chat_snapshots" edge.
func HasChatSnapshots() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatSnapshotsTable, ChatSnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatSnapshotsWith applies the HasEdge predicate on the "chat_snapshots" edge with a given conditions (other predicates).
func HasChatSnapshotsWith(preds ...predicate.ChatSnapshot) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newChatSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatMessages applies the HasEdge predicate on the "chat_messages" edge.
func HasChatMessages() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatMessagesWith applies the HasEdge predicate on the "chat_messages" edge with a given conditions (other predicates).
func HasChatMessagesWith(preds ...predicate.ChatMessage) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newChatMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatOutbox applies the HasEdge predicate on the "chat_outbox" edge.
func HasChatOutbox() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatOutboxTable, ChatOutboxColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatOutboxWith applies the HasEdge predicate on the "chat_outbox" edge with a given conditions (other predicates).
func HasChatOutboxWith(preds ...predicate.ChatOutbox) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newChatOutboxStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAdminCalls applies the HasEdge predicate on the "admin_calls" edge.
func HasAdminCalls() predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AdminCallsTable, AdminCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdminCallsWith applies the HasEdge predicate on the "admin_calls" edge with a given conditions (other predicates).
func HasAdminCallsWith(preds ...predicate.AdminCall) predicate.Workspace {
	return predicate.Workspace(func(s *sql.Selector) {
		step := newAdminCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.NotPredicates(p))
}
