// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldLogin holds the string denoting the login field in the database.
	FieldLogin = "login"
	// FieldPassword holds the string denoting the password field in the database.
	FieldPassword = "password"
	// FieldMafileJSON holds the string denoting the mafile_json field in the database.
	FieldMafileJSON = "mafile_json"
	// FieldMmr holds the string denoting the mmr field in the database.
	FieldMmr = "mmr"
	// FieldRentalDurationMinutes holds the string denoting the rental_duration_minutes field in the database.
	FieldRentalDurationMinutes = "rental_duration_minutes"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldRentalStart holds the string denoting the rental_start field in the database.
	FieldRentalStart = "rental_start"
	// FieldRentalFrozen holds the string denoting the rental_frozen field in the database.
	FieldRentalFrozen = "rental_frozen"
	// FieldRentalFrozenAt holds the string denoting the rental_frozen_at field in the database.
	FieldRentalFrozenAt = "rental_frozen_at"
	// FieldAccountFrozen holds the string denoting the account_frozen field in the database.
	FieldAccountFrozen = "account_frozen"
	// FieldRentalOrderID holds the string denoting the rental_order_id field in the database.
	FieldRentalOrderID = "rental_order_id"
	// FieldLowPriority holds the string denoting the low_priority field in the database.
	FieldLowPriority = "low_priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "accounts"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldUserID,
	FieldDisplayName,
	FieldLogin,
	FieldPassword,
	FieldMafileJSON,
	FieldMmr,
	FieldRentalDurationMinutes,
	FieldOwner,
	FieldRentalStart,
	FieldRentalFrozen,
	FieldRentalFrozenAt,
	FieldAccountFrozen,
	FieldRentalOrderID,
	FieldLowPriority,
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
	// DefaultMafileJSON holds the default value on creation for the "mafile_json" field.
	DefaultMafileJSON string
	// DefaultMmr holds the default value on creation for the "mmr" field.
	DefaultMmr int
	// DefaultRentalDurationMinutes holds the default value on creation for the "rental_duration_minutes" field.
	DefaultRentalDurationMinutes int
	// DefaultRentalFrozen holds the default value on creation for the "rental_frozen" field.
	DefaultRentalFrozen bool
	// DefaultAccountFrozen holds the default value on creation for the "account_frozen" field.
	DefaultAccountFrozen bool
	// DefaultLowPriority holds the default value on creation for the "low_priority" field.
	DefaultLowPriority bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Account queries.
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

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByLogin orders the results by the login field.
func ByLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogin, opts...).ToFunc()
}

// ByPassword orders the results by the password field.
func ByPassword(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassword, opts...).ToFunc()
}

// ByMafileJSON orders the results by the mafile_json field.
func ByMafileJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMafileJSON, opts...).ToFunc()
}

// ByMmr orders the results by the mmr field.
func ByMmr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMmr, opts...).ToFunc()
}

// ByRentalDurationMinutes orders the results by the rental_duration_minutes field.
func ByRentalDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalDurationMinutes, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByRentalStart orders the results by the rental_start field.
func ByRentalStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalStart, opts...).ToFunc()
}

// ByRentalFrozen orders the results by the rental_frozen field.
func ByRentalFrozen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalFrozen, opts...).ToFunc()
}

// ByRentalFrozenAt orders the results by the rental_frozen_at field.
func ByRentalFrozenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalFrozenAt, opts...).ToFunc()
}

// ByAccountFrozen orders the results by the account_frozen field.
func ByAccountFrozen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountFrozen, opts...).ToFunc()
}

// ByRentalOrderID orders the results by the rental_order_id field.
func ByRentalOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalOrderID, opts...).ToFunc()
}

// ByLowPriority orders the results by the low_priority field.
func ByLowPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
