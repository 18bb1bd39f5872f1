// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BlacklistEntry is the model entity for the BlacklistEntry schema.
type BlacklistEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID int `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Lowercased owner, uniqueness key
	OwnerKey string `json:"owner_key,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlacklistEntryQuery when eager-loading is set.
	Edges        BlacklistEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlacklistEntryEdges holds the relations/edges for other nodes in the graph.
type BlacklistEntryEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlacklistEntryEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlacklistEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blacklistentry.FieldID, blacklistentry.FieldWorkspaceID, blacklistentry.FieldUserID:
			values[i] = new(sql.NullInt64)
		case blacklistentry.FieldOwner, blacklistentry.FieldOwnerKey, blacklistentry.FieldReason:
			values[i] = new(sql.NullString)
		case blacklistentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlacklistEntry fields.
func (_m *BlacklistEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blacklistentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case blacklistentry.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case blacklistentry.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case blacklistentry.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case blacklistentry.FieldOwnerKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_key", values[i])
			} else if value.Valid {
				_m.OwnerKey = value.String
			}
		case blacklistentry.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case blacklistentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlacklistEntry.
// This includes values selected through modifiers, order, etc.
func (_m *BlacklistEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the BlacklistEntry entity.
func (_m *BlacklistEntry) QueryWorkspace() *WorkspaceQuery {
	return NewBlacklistEntryClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this BlacklistEntry.
// Note that you need to call BlacklistEntry.Unwrap() before calling this method if this BlacklistEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlacklistEntry) Update() *BlacklistEntryUpdateOne {
	return NewBlacklistEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlacklistEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlacklistEntry) Unwrap() *BlacklistEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlacklistEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlacklistEntry) String() string {
	var builder strings.Builder
	builder.WriteString("BlacklistEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("owner_key=")
	builder.WriteString(_m.OwnerKey)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlacklistEntries is a parsable slice of BlacklistEntry.
type BlacklistEntries []*BlacklistEntry
