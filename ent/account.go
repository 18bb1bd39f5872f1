// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID int `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Login holds the value of the "login" field.
	Login string `json:"login,omitempty"`
	// Stored through pkg/crypto; value carries the enc: prefix when a key is configured
	Password string `json:"-"`
	// Steam mobile authenticator payload, encrypted like password
	MafileJSON string `json:"-"`
	// Mmr holds the value of the "mmr" field.
	Mmr int `json:"mmr,omitempty"`
	// RentalDurationMinutes holds the value of the "rental_duration_minutes" field.
	RentalDurationMinutes int `json:"rental_duration_minutes,omitempty"`
	// Buyer currently renting the account
	Owner *string `json:"owner,omitempty"`
	// Persisted in marketplace time (UTC+3); NULL until the first guard-code request
	RentalStart *time.Time `json:"rental_start,omitempty"`
	// RentalFrozen holds the value of the "rental_frozen" field.
	RentalFrozen bool `json:"rental_frozen,omitempty"`
	// RentalFrozenAt holds the value of the "rental_frozen_at" field.
	RentalFrozenAt *time.Time `json:"rental_frozen_at,omitempty"`
	// Admin freeze: no assignment, no code issuance
	AccountFrozen bool `json:"account_frozen,omitempty"`
	// RentalOrderID holds the value of the "rental_order_id" field.
	RentalOrderID *string `json:"rental_order_id,omitempty"`
	// LowPriority holds the value of the "low_priority" field.
	LowPriority bool `json:"low_priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountQuery when eager-loading is set.
	Edges        AccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountEdges holds the relations/edges for other nodes in the graph.
type AccountEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AccountEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldRentalFrozen, account.FieldAccountFrozen, account.FieldLowPriority:
			values[i] = new(sql.NullBool)
		case account.FieldID, account.FieldWorkspaceID, account.FieldUserID, account.FieldMmr, account.FieldRentalDurationMinutes:
			values[i] = new(sql.NullInt64)
		case account.FieldDisplayName, account.FieldLogin, account.FieldPassword, account.FieldMafileJSON, account.FieldOwner, account.FieldRentalOrderID:
			values[i] = new(sql.NullString)
		case account.FieldRentalStart, account.FieldRentalFrozenAt, account.FieldCreatedAt, account.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (_m *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case account.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = int(value.Int64)
			}
		case account.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case account.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case account.FieldLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field login", values[i])
			} else if value.Valid {
				_m.Login = value.String
			}
		case account.FieldPassword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password", values[i])
			} else if value.Valid {
				_m.Password = value.String
			}
		case account.FieldMafileJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mafile_json", values[i])
			} else if value.Valid {
				_m.MafileJSON = value.String
			}
		case account.FieldMmr:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mmr", values[i])
			} else if value.Valid {
				_m.Mmr = int(value.Int64)
			}
		case account.FieldRentalDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rental_duration_minutes", values[i])
			} else if value.Valid {
				_m.RentalDurationMinutes = int(value.Int64)
			}
		case account.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = new(string)
				*_m.Owner = value.String
			}
		case account.FieldRentalStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rental_start", values[i])
			} else if value.Valid {
				_m.RentalStart = new(time.Time)
				*_m.RentalStart = value.Time
			}
		case account.FieldRentalFrozen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field rental_frozen", values[i])
			} else if value.Valid {
				_m.RentalFrozen = value.Bool
			}
		case account.FieldRentalFrozenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rental_frozen_at", values[i])
			} else if value.Valid {
				_m.RentalFrozenAt = new(time.Time)
				*_m.RentalFrozenAt = value.Time
			}
		case account.FieldAccountFrozen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field account_frozen", values[i])
			} else if value.Valid {
				_m.AccountFrozen = value.Bool
			}
		case account.FieldRentalOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rental_order_id", values[i])
			} else if value.Valid {
				_m.RentalOrderID = new(string)
				*_m.RentalOrderID = value.String
			}
		case account.FieldLowPriority:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field low_priority", values[i])
			} else if value.Valid {
				_m.LowPriority = value.Bool
			}
		case account.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case account.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (_m *Account) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the Account entity.
func (_m *Account) QueryWorkspace() *WorkspaceQuery {
	return NewAccountClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Account) Update() *AccountUpdateOne {
	return NewAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Account) Unwrap() *Account {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("login=")
	builder.WriteString(_m.Login)
	builder.WriteString(", ")
	builder.WriteString("password=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("mafile_json=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("mmr=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mmr))
	builder.WriteString(", ")
	builder.WriteString("rental_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RentalDurationMinutes))
	builder.WriteString(", ")
	if v := _m.Owner; v != nil {
		builder.WriteString("owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RentalStart; v != nil {
		builder.WriteString("rental_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("rental_frozen=")
	builder.WriteString(fmt.Sprintf("%v", _m.RentalFrozen))
	builder.WriteString(", ")
	if v := _m.RentalFrozenAt; v != nil {
		builder.WriteString("rental_frozen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("account_frozen=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountFrozen))
	builder.WriteString(", ")
	if v := _m.RentalOrderID; v != nil {
		builder.WriteString("rental_order_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("low_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowPriority))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
