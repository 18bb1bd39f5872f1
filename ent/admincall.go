// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// AdminCall is the model entity for the AdminCall schema.
type AdminCall struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID int `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// LastCalledAt holds the value of the "last_called_at" field.
	LastCalledAt time.Time `json:"last_called_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdminCallQuery when eager-loading is set.
	Edges        AdminCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdminCallEdges holds the relations/edges for other nodes in the graph.
type AdminCallEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdminCallEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdminCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case admincall.FieldID, admincall.FieldWorkspaceID, admincall.FieldUserID, admincall.FieldCount:
			values[i] = new(sql.NullInt64)
		case admincall.FieldChatID, admincall.FieldOwner:
			values[i] = new(sql.NullString)
		case admincall.FieldLastCalledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdminCall fields.
func (_m *AdminCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case admincall.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case admincall.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case admincall.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case admincall.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case admincall.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case admincall.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case admincall.FieldLastCalledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_called_at", values[i])
			} else if value.Valid {
				_m.LastCalledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdminCall.
// This includes values selected through modifiers, order, etc.
func (_m *AdminCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AdminCall entity.
func (_m *AdminCall) QueryWorkspace() *WorkspaceQuery {
	return NewAdminCallClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this AdminCall.
// Note that you need to call AdminCall.Unwrap() before calling this method if this AdminCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdminCall) Update() *AdminCallUpdateOne {
	return NewAdminCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdminCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdminCall) Unwrap() *AdminCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdminCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdminCall) String() string {
	var builder strings.Builder
	builder.WriteString("AdminCall(")
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
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("last_called_at=")
	builder.WriteString(_m.LastCalledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdminCalls is a parsable slice of AdminCall.
type AdminCalls []*AdminCall
