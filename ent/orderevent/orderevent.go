// Code generated by ent, DO NOT EDIT.

package orderevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the orderevent type in the database.
	Label = "order_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldOrderID holds the string denoting the order_id field in the database.
	FieldOrderID = "order_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldAccountName holds the string denoting the account_name field in the database.
	FieldAccountName = "account_name"
	// FieldSteamID holds the string denoting the steam_id field in the database.
	FieldSteamID = "steam_id"
	// FieldLotNumber holds the string denoting the lot_number field in the database.
	FieldLotNumber = "lot_number"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldRentalMinutes holds the string denoting the rental_minutes field in the database.
	FieldRentalMinutes = "rental_minutes"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// Table holds the table name of the orderevent in the database.
	Table = "order_events"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "order_events"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for orderevent fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldUserID,
	FieldOrderID,
	FieldOwner,
	FieldAccountID,
	FieldAccountName,
	FieldSteamID,
	FieldLotNumber,
	FieldAmount,
	FieldPrice,
	FieldRentalMinutes,
	FieldAction,
	FieldCreatedAt,
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
	// DefaultOwner holds the default value on creation for the "owner" field.
	DefaultOwner string
	// DefaultAccountName holds the default value on creation for the "account_name" field.
	DefaultAccountName string
	// DefaultLotNumber holds the default value on creation for the "lot_number" field.
	DefaultLotNumber string
	// DefaultAmount holds the default value on creation for the "amount" field.
	DefaultAmount int
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultRentalMinutes holds the default value on creation for the "rental_minutes" field.
	DefaultRentalMinutes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionPaid              Action = "paid"
	ActionIssued            Action = "issued"
	ActionExtended          Action = "extended"
	ActionReplaceAssign     Action = "replace_assign"
	ActionRefunded          Action = "refunded"
	ActionClosed            Action = "closed"
	ActionBusy              Action = "busy"
	ActionUnmapped          Action = "unmapped"
	ActionBlacklisted       Action = "blacklisted"
	ActionBlacklistComp     Action = "blacklist_comp"
	ActionAutoUnblacklist   Action = "auto_unblacklist"
	ActionReviewBonus       Action = "review_bonus"
	ActionReviewBonusRevert Action = "review_bonus_revert"
	ActionAssign            Action = "assign"
	ActionTicketAuto        Action = "ticket_auto"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionPaid, ActionIssued, ActionExtended, ActionReplaceAssign, ActionRefunded, ActionClosed, ActionBusy, ActionUnmapped, ActionBlacklisted, ActionBlacklistComp, ActionAutoUnblacklist, ActionReviewBonus, ActionReviewBonusRevert, ActionAssign, ActionTicketAuto:
		return nil
	default:
		return fmt.Errorf("orderevent: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the OrderEvent queries.
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

// ByOrderID orders the results by the order_id field.
func ByOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByAccountName orders the results by the account_name field.
func ByAccountName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountName, opts...).ToFunc()
}

// BySteamID orders the results by the steam_id field.
func BySteamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteamID, opts...).ToFunc()
}

// ByLotNumber orders the results by the lot_number field.
func ByLotNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLotNumber, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByRentalMinutes orders the results by the rental_minutes field.
func ByRentalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentalMinutes, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
