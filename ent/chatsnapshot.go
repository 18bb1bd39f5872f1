// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatSnapshot is the model entity for the ChatSnapshot schema.
type ChatSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID int `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// PeerName holds the value of the "peer_name" field.
	PeerName string `json:"peer_name,omitempty"`
	// LastMessageText holds the value of the "last_message_text" field.
	LastMessageText string `json:"last_message_text,omitempty"`
	// LastMessageTime holds the value of the "last_message_time" field.
	LastMessageTime *time.Time `json:"last_message_time,omitempty"`
	// Unread holds the value of the "unread" field.
	Unread bool `json:"unread,omitempty"`
	// AdminUnreadCount holds the value of the "admin_unread_count" field.
	AdminUnreadCount int `json:"admin_unread_count,omitempty"`
	// AdminRequested holds the value of the "admin_requested" field.
	AdminRequested bool `json:"admin_requested,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatSnapshotQuery when eager-loading is set.
	Edges        ChatSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatSnapshotEdges holds the relations/edges for other nodes in the graph.
type ChatSnapshotEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChatSnapshotEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatsnapshot.FieldUnread, chatsnapshot.FieldAdminRequested:
			values[i] = new(sql.NullBool)
		case chatsnapshot.FieldID, chatsnapshot.FieldWorkspaceID, chatsnapshot.FieldUserID, chatsnapshot.FieldAdminUnreadCount:
			values[i] = new(sql.NullInt64)
		case chatsnapshot.FieldChatID, chatsnapshot.FieldPeerName, chatsnapshot.FieldLastMessageText:
			values[i] = new(sql.NullString)
		case chatsnapshot.FieldLastMessageTime, chatsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatSnapshot fields.
func (_m *ChatSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chatsnapshot.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case chatsnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case chatsnapshot.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case chatsnapshot.FieldPeerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field peer_name", values[i])
			} else if value.Valid {
				_m.PeerName = value.String
			}
		case chatsnapshot.FieldLastMessageText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_text", values[i])
			} else if value.Valid {
				_m.LastMessageText = value.String
			}
		case chatsnapshot.FieldLastMessageTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_time", values[i])
			} else if value.Valid {
				_m.LastMessageTime = new(time.Time)
				*_m.LastMessageTime = value.Time
			}
		case chatsnapshot.FieldUnread:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unread", values[i])
			} else if value.Valid {
				_m.Unread = value.Bool
			}
		case chatsnapshot.FieldAdminUnreadCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_unread_count", values[i])
			} else if value.Valid {
				_m.AdminUnreadCount = int(value.Int64)
			}
		case chatsnapshot.FieldAdminRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field admin_requested", values[i])
			} else if value.Valid {
				_m.AdminRequested = value.Bool
			}
		case chatsnapshot.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChatSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ChatSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the ChatSnapshot entity.
func (_m *ChatSnapshot) QueryWorkspace() *WorkspaceQuery {
	return NewChatSnapshotClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this ChatSnapshot.
// Note that you need to call ChatSnapshot.Unwrap() before calling this method if this ChatSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatSnapshot) Update() *ChatSnapshotUpdateOne {
	return NewChatSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatSnapshot) Unwrap() *ChatSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ChatSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("peer_name=")
	builder.WriteString(_m.PeerName)
	builder.WriteString(", ")
	builder.WriteString("last_message_text=")
	builder.WriteString(_m.LastMessageText)
	builder.WriteString(", ")
	if v := _m.LastMessageTime; v != nil {
		builder.WriteString("last_message_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("unread=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unread))
	builder.WriteString(", ")
	builder.WriteString("admin_unread_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdminUnreadCount))
	builder.WriteString(", ")
	builder.WriteString("admin_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdminRequested))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatSnapshots is a parsable slice of ChatSnapshot.
type ChatSnapshots []*ChatSnapshot
