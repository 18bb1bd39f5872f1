// Code generated by ent, DO NOT EDIT.

package chatsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatsnapshot type in the database.
	Label = "chat_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldPeerName holds the string denoting the peer_name field in the database.
	FieldPeerName = "peer_name"
	// FieldLastMessageText holds the string denoting the last_message_text field in the database.
	FieldLastMessageText = "last_message_text"
	// FieldLastMessageTime holds the string denoting the last_message_time field in the database.
	FieldLastMessageTime = "last_message_time"
	// FieldUnread holds the string denoting the unread field in the database.
	FieldUnread = "unread"
	// FieldAdminUnreadCount holds the string denoting the admin_unread_count field in the database.
	FieldAdminUnreadCount = "admin_unread_count"
	// FieldAdminRequested holds the string denoting the admin_requested field in the database.
	FieldAdminRequested = "admin_requested"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// Table holds the table name of the chatsnapshot in the database.
	Table = "chat_snapshots"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "chat_snapshots"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for chatsnapshot fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldUserID,
	FieldChatID,
	FieldPeerName,
	FieldLastMessageText,
	FieldLastMessageTime,
	FieldUnread,
	FieldAdminUnreadCount,
	FieldAdminRequested,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPeerName holds the default value on creation for the "peer_name" field.
	DefaultPeerName string
	// DefaultLastMessageText holds the default value on creation for the "last_message_text" field.
	DefaultLastMessageText string
	// DefaultUnread holds the default value on creation for the "unread" field.
	DefaultUnread bool
	// DefaultAdminUnreadCount holds the default value on creation for the "admin_unread_count" field.
	DefaultAdminUnreadCount int
	// DefaultAdminRequested holds the default value on creation for the "admin_requested" field.
	DefaultAdminRequested bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChatSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByPeerName orders the results by the peer_name field.
func ByPeerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeerName, opts...).ToFunc()
}

// ByLastMessageText orders the results by the last_message_text field.
func ByLastMessageText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageText, opts...).ToFunc()
}

// ByLastMessageTime orders the results by the last_message_time field.
func ByLastMessageTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageTime, opts...).ToFunc()
}

// ByUnread orders the results by the unread field.
func ByUnread(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnread, opts...).ToFunc()
}

// ByAdminUnreadCount orders the results by the admin_unread_count field.
func ByAdminUnreadCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminUnreadCount, opts...).ToFunc()
}

// ByAdminRequested orders the results by the admin_requested field.
func ByAdminRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminRequested, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
