// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BonusWallet is the model entity for the BonusWallet schema.
type BonusWallet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID int `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// BalanceMinutes holds the value of the "balance_minutes" field.
	BalanceMinutes int `json:"balance_minutes,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BonusWalletQuery when eager-loading is set.
	Edges        BonusWalletEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BonusWalletEdges holds the relations/edges for other nodes in the graph.
type BonusWalletEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BonusWalletEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BonusWallet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bonuswallet.FieldID, bonuswallet.FieldWorkspaceID, bonuswallet.FieldUserID, bonuswallet.FieldBalanceMinutes:
			values[i] = new(sql.NullInt64)
		case bonuswallet.FieldOwner:
			values[i] = new(sql.NullString)
		case bonuswallet.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BonusWallet fields.
func (_m *BonusWallet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bonuswallet.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bonuswallet.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case bonuswallet.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case bonuswallet.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case bonuswallet.FieldBalanceMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_minutes", values[i])
			} else if value.Valid {
				_m.BalanceMinutes = int(value.Int64)
			}
		case bonuswallet.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BonusWallet.
// This includes values selected through modifiers, order, etc.
func (_m *BonusWallet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the BonusWallet entity.
func (_m *BonusWallet) QueryWorkspace() *WorkspaceQuery {
	return NewBonusWalletClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this BonusWallet.
// Note that you need to call BonusWallet.Unwrap() before calling this method if this BonusWallet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BonusWallet) Update() *BonusWalletUpdateOne {
	return NewBonusWalletClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BonusWallet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BonusWallet) Unwrap() *BonusWallet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BonusWallet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BonusWallet) String() string {
	var builder strings.Builder
	builder.WriteString("BonusWallet(")
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
	builder.WriteString("balance_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceMinutes))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BonusWallets is a parsable slice of BonusWallet.
type BonusWallets []*BonusWallet
