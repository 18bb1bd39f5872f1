// Code generated by ent, DO NOT EDIT.

package chatsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUserID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldChatID, v))
}

// PeerName applies equality check predicate on the "peer_name" field. It's identical to PeerNameEQ.
func PeerName(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldPeerName, v))
}

// LastMessageText applies equality check predicate on the "last_message_text" field. It's identical to LastMessageTextEQ.
func LastMessageText(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldLastMessageText, v))
}

// LastMessageTime applies equality check predicate on the "last_message_time" field. It's identical to LastMessageTimeEQ.
func LastMessageTime(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldLastMessageTime, v))
}

// Unread applies equality check predicate on the "unread" field. It's identical to UnreadEQ.
func Unread(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUnread, v))
}

// AdminUnreadCount applies equality check predicate on the "admin_unread_count" field. It's identical to AdminUnreadCountEQ.
func AdminUnreadCount(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldAdminUnreadCount, v))
}

// AdminRequested applies equality check predicate on the "admin_requested" field. It's identical to AdminRequestedEQ.
func AdminRequested(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldAdminRequested, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldUserID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContainsFold(FieldChatID, v))
}

// PeerNameEQ applies the EQ predicate on the "peer_name" field.
func PeerNameEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldPeerName, v))
}

// PeerNameNEQ applies the NEQ predicate on the "peer_name" field.
func PeerNameNEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldPeerName, v))
}

// PeerNameIn applies the In predicate on the "peer_name" field.
func PeerNameIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldPeerName, vs...))
}

// PeerNameNotIn applies the NotIn predicate on the "peer_name" field.
func PeerNameNotIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldPeerName, vs...))
}

// PeerNameGT applies the GT predicate on the "peer_name" field.
func PeerNameGT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldPeerName, v))
}

// PeerNameGTE applies the GTE predicate on the "peer_name" field.
func PeerNameGTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldPeerName, v))
}

// PeerNameLT applies the LT predicate on the "peer_name" field.
func PeerNameLT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldPeerName, v))
}

// PeerNameLTE applies the LTE predicate on the "peer_name" field.
func PeerNameLTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldPeerName, v))
}

// PeerNameContains applies the Contains predicate on the "peer_name" field.
func PeerNameContains(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContains(FieldPeerName, v))
}

// PeerNameHasPrefix applies the HasPrefix predicate on the "peer_name" field.
func PeerNameHasPrefix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasPrefix(FieldPeerName, v))
}

// PeerNameHasSuffix applies the HasSuffix predicate on the "peer_name" field.
func PeerNameHasSuffix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasSuffix(FieldPeerName, v))
}

// PeerNameEqualFold applies the EqualFold predicate on the "peer_name" field.
func PeerNameEqualFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEqualFold(FieldPeerName, v))
}

// PeerNameContainsFold applies the ContainsFold predicate on the "peer_name" field.
func PeerNameContainsFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContainsFold(FieldPeerName, v))
}

// LastMessageTextEQ applies the EQ predicate on the "last_message_text" field.
func LastMessageTextEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldLastMessageText, v))
}

// LastMessageTextNEQ applies the NEQ predicate on the "last_message_text" field.
func LastMessageTextNEQ(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldLastMessageText, v))
}

// LastMessageTextIn applies the In predicate on the "last_message_text" field.
func LastMessageTextIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldLastMessageText, vs...))
}

// LastMessageTextNotIn applies the NotIn predicate on the "last_message_text" field.
func LastMessageTextNotIn(vs ...string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldLastMessageText, vs...))
}

// LastMessageTextGT applies the GT predicate on the "last_message_text" field.
func LastMessageTextGT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldLastMessageText, v))
}

// LastMessageTextGTE applies the GTE predicate on the "last_message_text" field.
func LastMessageTextGTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldLastMessageText, v))
}

// LastMessageTextLT applies the LT predicate on the "last_message_text" field.
func LastMessageTextLT(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldLastMessageText, v))
}

// LastMessageTextLTE applies the LTE predicate on the "last_message_text" field.
func LastMessageTextLTE(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldLastMessageText, v))
}

// LastMessageTextContains applies the Contains predicate on the "last_message_text" field.
func LastMessageTextContains(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContains(FieldLastMessageText, v))
}

// LastMessageTextHasPrefix applies the HasPrefix predicate on the "last_message_text" field.
func LastMessageTextHasPrefix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasPrefix(FieldLastMessageText, v))
}

// LastMessageTextHasSuffix applies the HasSuffix predicate on the "last_message_text" field.
func LastMessageTextHasSuffix(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldHasSuffix(FieldLastMessageText, v))
}

// LastMessageTextEqualFold applies the EqualFold predicate on the "last_message_text" field.
func LastMessageTextEqualFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEqualFold(FieldLastMessageText, v))
}

// LastMessageTextContainsFold applies the ContainsFold predicate on the "last_message_text" field.
func LastMessageTextContainsFold(v string) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldContainsFold(FieldLastMessageText, v))
}

// LastMessageTimeEQ applies the EQ predicate on the "last_message_time" field.
func LastMessageTimeEQ(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldLastMessageTime, v))
}

// LastMessageTimeNEQ applies the NEQ predicate on the "last_message_time" field.
func LastMessageTimeNEQ(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldLastMessageTime, v))
}

// LastMessageTimeIn applies the In predicate on the "last_message_time" field.
func LastMessageTimeIn(vs ...time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldLastMessageTime, vs...))
}

// LastMessageTimeNotIn applies the NotIn predicate on the "last_message_time" field.
func LastMessageTimeNotIn(vs ...time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldLastMessageTime, vs...))
}

// LastMessageTimeGT applies the GT predicate on the "last_message_time" field.
func LastMessageTimeGT(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldLastMessageTime, v))
}

// LastMessageTimeGTE applies the GTE predicate on the "last_message_time" field.
func LastMessageTimeGTE(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldLastMessageTime, v))
}

// LastMessageTimeLT applies the LT predicate on the "last_message_time" field.
func LastMessageTimeLT(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldLastMessageTime, v))
}

// LastMessageTimeLTE applies the LTE predicate on the "last_message_time" field.
func LastMessageTimeLTE(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldLastMessageTime, v))
}

// LastMessageTimeIsNil applies the IsNil predicate on the "last_message_time" field.
func LastMessageTimeIsNil() predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIsNull(FieldLastMessageTime))
}

// LastMessageTimeNotNil applies the NotNil predicate on the "last_message_time" field.
func LastMessageTimeNotNil() predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotNull(FieldLastMessageTime))
}

// UnreadEQ applies the EQ predicate on the "unread" field.
func UnreadEQ(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUnread, v))
}

// UnreadNEQ applies the NEQ predicate on the "unread" field.
func UnreadNEQ(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldUnread, v))
}

// AdminUnreadCountEQ applies the EQ predicate on the "admin_unread_count" field.
func AdminUnreadCountEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldAdminUnreadCount, v))
}

// AdminUnreadCountNEQ applies the NEQ predicate on the "admin_unread_count" field.
func AdminUnreadCountNEQ(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldAdminUnreadCount, v))
}

// AdminUnreadCountIn applies the In predicate on the "admin_unread_count" field.
func AdminUnreadCountIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldAdminUnreadCount, vs...))
}

// AdminUnreadCountNotIn applies the NotIn predicate on the "admin_unread_count" field.
func AdminUnreadCountNotIn(vs ...int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldAdminUnreadCount, vs...))
}

// AdminUnreadCountGT applies the GT predicate on the "admin_unread_count" field.
func AdminUnreadCountGT(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldAdminUnreadCount, v))
}

// AdminUnreadCountGTE applies the GTE predicate on the "admin_unread_count" field.
func AdminUnreadCountGTE(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldAdminUnreadCount, v))
}

// AdminUnreadCountLT applies the LT predicate on the "admin_unread_count" field.
func AdminUnreadCountLT(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldAdminUnreadCount, v))
}

// AdminUnreadCountLTE applies the LTE predicate on the "admin_unread_count" field.
func AdminUnreadCountLTE(v int) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldAdminUnreadCount, v))
}

// AdminRequestedEQ applies the EQ predicate on the "admin_requested" field.
func AdminRequestedEQ(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldAdminRequested, v))
}

// AdminRequestedNEQ applies the NEQ predicate on the "admin_requested" field.
func AdminRequestedNEQ(v bool) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldAdminRequested, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.ChatSnapshot {
	return predicate.ChatSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatSnapshot) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatSnapshot) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatSnapshot) predicate.ChatSnapshot {
	return predicate.ChatSnapshot(sql.NotPredicates(p))
}
