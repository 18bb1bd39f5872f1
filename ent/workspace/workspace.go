// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workspace type in the database.
	Label = "workspace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldProxyURI holds the string denoting the proxy_uri field in the database.
	FieldProxyURI = "proxy_uri"
	// FieldProxyUser holds the string denoting the proxy_user field in the database.
	FieldProxyUser = "proxy_user"
	// FieldProxyPass holds the string denoting the proxy_pass field in the database.
	FieldProxyPass = "proxy_pass"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusMessage holds the string denoting the status_message field in the database.
	FieldStatusMessage = "status_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAccounts holds the string denoting the accounts edge name in mutations.
	EdgeAccounts = "accounts"
	// EdgeLotMappings holds the string denoting the lot_mappings edge name in mutations.
	EdgeLotMappings = "lot_mappings"
	// EdgeOrderEvents holds the string denoting the order_events edge name in mutations.
	EdgeOrderEvents = "order_events"
	// EdgeBlacklistEntries holds the string denoting the blacklist_entries edge name in mutations.
	EdgeBlacklistEntries = "blacklist_entries"
	// EdgeBonusWallets holds the string denoting the bonus_wallets edge name in mutations.
	EdgeBonusWallets = "bonus_wallets"
	// EdgeChatSnapshots holds the string denoting the chat_snapshots edge name in mutations.
	EdgeChatSnapshots = "chat_snapshots"
	// EdgeChatMessages holds the string denoting the chat_messages edge name in mutations.
	EdgeChatMessages = "chat_messages"
	// EdgeChatOutbox holds the string denoting the chat_outbox edge name in mutations.
	EdgeChatOutbox = "chat_outbox"
	// EdgeAdminCalls holds the string denoting the admin_calls edge name in mutations.
	EdgeAdminCalls = "admin_calls"
	// Table holds the table name of the workspace in the database.
	Table = "workspaces"
	// AccountsTable is the table that holds the accounts relation/edge.
	AccountsTable = "accounts"
	// AccountsInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountsInverseTable = "accounts"
	// AccountsColumn is the table column denoting the accounts relation/edge.
	AccountsColumn = "workspace_id"
	// LotMappingsTable is the table that holds the lot_mappings relation/edge.
	LotMappingsTable = "lot_mappings"
	// LotMappingsInverseTable is the table name for the LotMapping entity.
	// It exists in this package in order to avoid circular dependency with the "lotmapping" package.
	LotMappingsInverseTable = "lot_mappings"
	// LotMappingsColumn is the table column denoting the lot_mappings relation/edge.
	LotMappingsColumn = "workspace_id"
	// OrderEventsTable is the table that holds the order_events relation/edge.
	OrderEventsTable = "order_events"
	// OrderEventsInverseTable is the table name for the OrderEvent entity.
	// It exists in this package in order to avoid circular dependency with the "orderevent" package.
	OrderEventsInverseTable = "order_events"
	// OrderEventsColumn is the table column denoting the order_events relation/edge.
	OrderEventsColumn = "workspace_id"
	// BlacklistEntriesTable is the table that holds the blacklist_entries relation/edge.
	BlacklistEntriesTable = "blacklist_entries"
	// BlacklistEntriesInverseTable is the table name for the BlacklistEntry entity.
	// It exists in this package in order to avoid circular dependency with the "blacklistentry" package.
	BlacklistEntriesInverseTable = "blacklist_entries"
	// BlacklistEntriesColumn is the table column denoting the blacklist_entries relation/edge.
	BlacklistEntriesColumn = "workspace_id"
	// BonusWalletsTable is the table that holds the bonus_wallets relation/edge.
	BonusWalletsTable = "bonus_wallets"
	// BonusWalletsInverseTable is the table name for the BonusWallet entity.
	// It exists in this package in order to avoid circular dependency with the "bonuswallet" package.
	BonusWalletsInverseTable = "bonus_wallets"
	// BonusWalletsColumn is the table column denoting the bonus_wallets relation/edge.
	BonusWalletsColumn = "workspace_id"
	// ChatSnapshotsTable is the table that holds the chat_snapshots relation/edge.
	ChatSnapshotsTable = "chat_snapshots"
	// ChatSnapshotsInverseTable is the table name for the ChatSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "chatsnapshot" package.
	ChatSnapshotsInverseTable = "chat_snapshots"
	// ChatSnapshotsColumn is the table column denoting the chat_snapshots relation/edge.
	ChatSnapshotsColumn = "workspace_id"
	// ChatMessagesTable is the table that holds the chat_messages relation/edge.
	ChatMessagesTable = "chat_messages"
	// ChatMessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	ChatMessagesInverseTable = "chat_messages"
	// ChatMessagesColumn is the table column denoting the chat_messages relation/edge.
	ChatMessagesColumn = "workspace_id"
	// ChatOutboxTable is the table that holds the chat_outbox relation/edge.
	ChatOutboxTable = "chat_outboxes"
	// ChatOutboxInverseTable is the table name for the ChatOutbox entity.
	// It exists in this package in order to avoid circular dependency with the "chatoutbox" package.
	ChatOutboxInverseTable = "chat_outboxes"
	// ChatOutboxColumn is the table column denoting the chat_outbox relation/edge.
	ChatOutboxColumn = "workspace_id"
	// AdminCallsTable is the table that holds the admin_calls relation/edge.
	AdminCallsTable = "admin_calls"
	// AdminCallsInverseTable is the table name for the AdminCall entity.
	// It exists in this package in order to avoid circular dependency with the "admincall" package.
	AdminCallsInverseTable = "admin_calls"
	// AdminCallsColumn is the table column denoting the admin_calls relation/edge.
	AdminCallsColumn = "workspace_id"
)

// Columns holds all SQL columns for workspace fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLabel,
	FieldToken,
	FieldProxyURI,
	FieldProxyUser,
	FieldProxyPass,
	FieldIsDefault,
	FieldStatus,
	FieldStatusMessage,
	FieldCreatedAt,
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
	// DefaultLabel holds the default value on creation for the "label" field.
	DefaultLabel string
	// DefaultProxyURI holds the default value on creation for the "proxy_uri" field.
	DefaultProxyURI string
	// DefaultProxyUser holds the default value on creation for the "proxy_user" field.
	DefaultProxyUser string
	// DefaultProxyPass holds the default value on creation for the "proxy_pass" field.
	DefaultProxyPass string
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOk is the default value of the Status enum.
const DefaultStatus = StatusOk

// Status values.
const (
	StatusOk           Status = "ok"
	StatusUnauthorized Status = "unauthorized"
	StatusError        Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOk, StatusUnauthorized, StatusError:
		return nil
	default:
		return fmt.Errorf("workspace: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workspace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByProxyURI orders the results by the proxy_uri field.
func ByProxyURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProxyURI, opts...).ToFunc()
}

// ByProxyUser orders the results by the proxy_user field.
func ByProxyUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProxyUser, opts...).ToFunc()
}

// ByProxyPass orders the results by the proxy_pass field.
func ByProxyPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProxyPass, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusMessage orders the results by the status_message field.
func ByStatusMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAccountsCount orders the results by accounts count.
func ByAccountsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAccountsStep(), opts...)
	}
}

// ByAccounts orders the results by accounts terms.
func ByAccounts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLotMappingsCount orders the results by lot_mappings count.
func ByLotMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLotMappingsStep(), opts...)
	}
}

// ByLotMappings orders the results by lot_mappings terms.
func ByLotMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLotMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrderEventsCount orders the results by order_events count.
func ByOrderEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrderEventsStep(), opts...)
	}
}

// ByOrderEvents orders the results by order_events terms.
func ByOrderEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrderEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBlacklistEntriesCount orders the results by blacklist_entries count.
func ByBlacklistEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlacklistEntriesStep(), opts...)
	}
}

// ByBlacklistEntries orders the results by blacklist_entries terms.
func ByBlacklistEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlacklistEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBonusWalletsCount orders the results by bonus_wallets count.
func ByBonusWalletsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBonusWalletsStep(), opts...)
	}
}

// ByBonusWallets orders the results by bonus_wallets terms.
func ByBonusWallets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBonusWalletsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatSnapshotsCount orders the results by chat_snapshots count.
func ByChatSnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatSnapshotsStep(), opts...)
	}
}

// ByChatSnapshots orders the results by chat_snapshots terms.
func ByChatSnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatMessagesCount orders the results by chat_messages count.
func ByChatMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatMessagesStep(), opts...)
	}
}

// ByChatMessages orders the results by chat_messages terms.
func ByChatMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatOutboxCount orders the results by chat_outbox count.
func ByChatOutboxCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatOutboxStep(), opts...)
	}
}

// ByChatOutbox orders the results by chat_outbox terms.
func ByChatOutbox(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatOutboxStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAdminCallsCount orders the results by admin_calls count.
func ByAdminCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAdminCallsStep(), opts...)
	}
}

// ByAdminCalls orders the results by admin_calls terms.
func ByAdminCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAdminCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAccountsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AccountsTable, AccountsColumn),
	)
}
func newLotMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LotMappingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LotMappingsTable, LotMappingsColumn),
	)
}
func newOrderEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrderEventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrderEventsTable, OrderEventsColumn),
	)
}
func newBlacklistEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlacklistEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BlacklistEntriesTable, BlacklistEntriesColumn),
	)
}
func newBonusWalletsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BonusWalletsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BonusWalletsTable, BonusWalletsColumn),
	)
}
func newChatSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatSnapshotsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatSnapshotsTable, ChatSnapshotsColumn),
	)
}
func newChatMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatMessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
	)
}
func newChatOutboxStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatOutboxInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatOutboxTable, ChatOutboxColumn),
	)
}
func newAdminCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AdminCallsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AdminCallsTable, AdminCallsColumn),
	)
}
