// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// Workspace is the model entity for the Workspace schema.
type Workspace struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Marketplace golden_key session token
	Token string `json:"-"`
	// ProxyURI holds the value of the "proxy_uri" field.
	ProxyURI string `json:"proxy_uri,omitempty"`
	// ProxyUser holds the value of the "proxy_user" field.
	ProxyUser string `json:"proxy_user,omitempty"`
	// ProxyPass holds the value of the "proxy_pass" field.
	ProxyPass string `json:"-"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// Last observed bot status, written by the bot manager
	Status workspace.Status `json:"status,omitempty"`
	// StatusMessage holds the value of the "status_message" field.
	StatusMessage *string `json:"status_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkspaceQuery when eager-loading is set.
	Edges        WorkspaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkspaceEdges holds the relations/edges for other nodes in the graph.
type WorkspaceEdges struct {
	// Accounts holds the value of the accounts edge.
	Accounts []*Account `json:"accounts,omitempty"`
	// LotMappings holds the value of the lot_mappings edge.
	LotMappings []*LotMapping `json:"lot_mappings,omitempty"`
	// OrderEvents holds the value of the order_events edge.
	OrderEvents []*OrderEvent `json:"order_events,omitempty"`
	// BlacklistEntries holds the value of the blacklist_entries edge.
	BlacklistEntries []*BlacklistEntry `json:"blacklist_entries,omitempty"`
	// BonusWallets holds the value of the bonus_wallets edge.
	BonusWallets []*BonusWallet `json:"bonus_wallets,omitempty"`
	// ChatSnapshots holds the value of the chat_snapshots edge.
	ChatSnapshots []*ChatSnapshot `json:"chat_snapshots,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// ChatOutbox holds the value of the chat_outbox edge.
	ChatOutbox []*ChatOutbox `json:"chat_outbox,omitempty"`
	// AdminCalls holds the value of the admin_calls edge.
	AdminCalls []*AdminCall `json:"admin_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// AccountsOrErr returns the Accounts value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) AccountsOrErr() ([]*Account, error) {
	if e.loadedTypes[0] {
		return e.Accounts, nil
	}
	return nil, &NotLoadedError{edge: "accounts"}
}

// LotMappingsOrErr returns the LotMappings value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) LotMappingsOrErr() ([]*LotMapping, error) {
	if e.loadedTypes[1] {
		return e.LotMappings, nil
	}
	return nil, &NotLoadedError{edge: "lot_mappings"}
}

// OrderEventsOrErr returns the OrderEvents value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) OrderEventsOrErr() ([]*OrderEvent, error) {
	if e.loadedTypes[2] {
		return e.OrderEvents, nil
	}
	return nil, &NotLoadedError{edge: "order_events"}
}

// BlacklistEntriesOrErr returns the BlacklistEntries value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) BlacklistEntriesOrErr() ([]*BlacklistEntry, error) {
	if e.loadedTypes[3] {
		return e.BlacklistEntries, nil
	}
	return nil, &NotLoadedError{edge: "blacklist_entries"}
}

// BonusWalletsOrErr returns the BonusWallets value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) BonusWalletsOrErr() ([]*BonusWallet, error) {
	if e.loadedTypes[4] {
		return e.BonusWallets, nil
	}
	return nil, &NotLoadedError{edge: "bonus_wallets"}
}

// ChatSnapshotsOrErr returns the ChatSnapshots value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ChatSnapshotsOrErr() ([]*ChatSnapshot, error) {
	if e.loadedTypes[5] {
		return e.ChatSnapshots, nil
	}
	return nil, &NotLoadedError{edge: "chat_snapshots"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[6] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// ChatOutboxOrErr returns the ChatOutbox value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ChatOutboxOrErr() ([]*ChatOutbox, error) {
	if e.loadedTypes[7] {
		return e.ChatOutbox, nil
	}
	return nil, &NotLoadedError{edge: "chat_outbox"}
}

// AdminCallsOrErr returns the AdminCalls value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) AdminCallsOrErr() ([]*AdminCall, error) {
	if e.loadedTypes[8] {
		return e.AdminCalls, nil
	}
	return nil, &NotLoadedError{edge: "admin_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workspace.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case workspace.FieldID, workspace.FieldUserID:
			values[i] = new(sql.NullInt64)
		case workspace.FieldLabel, workspace.FieldToken, workspace.FieldProxyURI, workspace.FieldProxyUser, workspace.FieldProxyPass, workspace.FieldStatus, workspace.FieldStatusMessage:
			values[i] = new(sql.NullString)
		case workspace.FieldCreatedAt, workspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workspace fields.
func (_m *Workspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workspace.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workspace.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case workspace.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case workspace.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case workspace.FieldProxyURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proxy_uri", values[i])
			} else if value.Valid {
				_m.ProxyURI = value.String
			}
		case workspace.FieldProxyUser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proxy_user", values[i])
			} else if value.Valid {
				_m.ProxyUser = value.String
			}
		case workspace.FieldProxyPass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proxy_pass", values[i])
			} else if value.Valid {
				_m.ProxyPass = value.String
			}
		case workspace.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case workspace.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workspace.Status(value.String)
			}
		case workspace.FieldStatusMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_message", values[i])
			} else if value.Valid {
				_m.StatusMessage = new(string)
				*_m.StatusMessage = value.String
			}
		case workspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workspace.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Workspace.
// This includes values selected through modifiers, order, etc.
func (_m *Workspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccounts queries the "accounts" edge of the Workspace entity.
func (_m *Workspace) QueryAccounts() *AccountQuery {
	return NewWorkspaceClient(_m.config).QueryAccounts(_m)
}

// QueryLotMappings queries the "lot_mappings" edge of the Workspace entity.
func (_m *Workspace) QueryLotMappings() *LotMappingQuery {
	return NewWorkspaceClient(_m.config).QueryLotMappings(_m)
}

// QueryOrderEvents queries the "order_events" edge of the Workspace entity.
func (_m *Workspace) QueryOrderEvents() *OrderEventQuery {
	return NewWorkspaceClient(_m.config).QueryOrderEvents(_m)
}

// QueryBlacklistEntries queries the "blacklist_entries" edge of the Workspace entity.
func (_m *Workspace) QueryBlacklistEntries() *BlacklistEntryQuery {
	return NewWorkspaceClient(_m.config).QueryBlacklistEntries(_m)
}

// QueryBonusWallets queries the "bonus_wallets" edge of the Workspace entity.
func (_m *Workspace) QueryBonusWallets() *BonusWalletQuery {
	return NewWorkspaceClient(_m.config).QueryBonusWallets(_m)
}

// QueryChatSnapshots queries the "chat_snapshots" edge of the Workspace entity.
func (_m *Workspace) QueryChatSnapshots() *ChatSnapshotQuery {
	return NewWorkspaceClient(_m.config).QueryChatSnapshots(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Workspace entity.
func (_m *Workspace) QueryChatMessages() *ChatMessageQuery {
	return NewWorkspaceClient(_m.config).QueryChatMessages(_m)
}

// QueryChatOutbox queries the "chat_outbox" edge of the Workspace entity.
func (_m *Workspace) QueryChatOutbox() *ChatOutboxQuery {
	return NewWorkspaceClient(_m.config).QueryChatOutbox(_m)
}

// QueryAdminCalls queries the "admin_calls" edge of the Workspace entity.
func (_m *Workspace) QueryAdminCalls() *AdminCallQuery {
	return NewWorkspaceClient(_m.config).QueryAdminCalls(_m)
}

// Update returns a builder for updating this Workspace.
// Note that you need to call Workspace.Unwrap() before calling this method if this Workspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workspace) Update() *WorkspaceUpdateOne {
	return NewWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workspace) Unwrap() *Workspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workspace) String() string {
	var builder strings.Builder
	builder.WriteString("Workspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("proxy_uri=")
	builder.WriteString(_m.ProxyURI)
	builder.WriteString(", ")
	builder.WriteString("proxy_user=")
	builder.WriteString(_m.ProxyUser)
	builder.WriteString(", ")
	builder.WriteString("proxy_pass=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StatusMessage; v != nil {
		builder.WriteString("status_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workspaces is a parsable slice of Workspace.
type Workspaces []*Workspace
