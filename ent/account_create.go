// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AccountCreate) SetWorkspaceID(v int) *AccountCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AccountCreate) SetUserID(v int) *AccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *AccountCreate) SetDisplayName(v string) *AccountCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetLogin sets the "login" field.
func (_c *AccountCreate) SetLogin(v string) *AccountCreate {
	_c.mutation.SetLogin(v)
	return _c
}

// SetPassword sets the "password" field.
func (_c *AccountCreate) SetPassword(v string) *AccountCreate {
	_c.mutation.SetPassword(v)
	return _c
}

// SetMafileJSON sets the "mafile_json" field.
func (_c *AccountCreate) SetMafileJSON(v string) *AccountCreate {
	_c.mutation.SetMafileJSON(v)
	return _c
}

// SetNillableMafileJSON sets the "mafile_json" field if the given value is not nil.
func (_c *AccountCreate) SetNillableMafileJSON(v *string) *AccountCreate {
	if v != nil {
		_c.SetMafileJSON(*v)
	}
	return _c
}

// SetMmr sets the "mmr" field.
func (_c *AccountCreate) SetMmr(v int) *AccountCreate {
	_c.mutation.SetMmr(v)
	return _c
}

// SetNillableMmr sets the "mmr" field if the given value is not nil.
func (_c *AccountCreate) SetNillableMmr(v *int) *AccountCreate {
	if v != nil {
		_c.SetMmr(*v)
	}
	return _c
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (_c *AccountCreate) SetRentalDurationMinutes(v int) *AccountCreate {
	_c.mutation.SetRentalDurationMinutes(v)
	return _c
}

// SetNillableRentalDurationMinutes sets the "rental_duration_minutes" field if the given value is not nil.
func (_c *AccountCreate) SetNillableRentalDurationMinutes(v *int) *AccountCreate {
	if v != nil {
		_c.SetRentalDurationMinutes(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *AccountCreate) SetOwner(v string) *AccountCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *AccountCreate) SetNillableOwner(v *string) *AccountCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetRentalStart sets the "rental_start" field.
func (_c *AccountCreate) SetRentalStart(v time.Time) *AccountCreate {
	_c.mutation.SetRentalStart(v)
	return _c
}

// SetNillableRentalStart sets the "rental_start" field if the given value is not nil.
func (_c *AccountCreate) SetNillableRentalStart(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetRentalStart(*v)
	}
	return _c
}

// SetRentalFrozen sets the "rental_frozen" field.
func (_c *AccountCreate) SetRentalFrozen(v bool) *AccountCreate {
	_c.mutation.SetRentalFrozen(v)
	return _c
}

// SetNillableRentalFrozen sets the "rental_frozen" field if the given value is not nil.
func (_c *AccountCreate) SetNillableRentalFrozen(v *bool) *AccountCreate {
	if v != nil {
		_c.SetRentalFrozen(*v)
	}
	return _c
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (_c *AccountCreate) SetRentalFrozenAt(v time.Time) *AccountCreate {
	_c.mutation.SetRentalFrozenAt(v)
	return _c
}

// SetNillableRentalFrozenAt sets the "rental_frozen_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableRentalFrozenAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetRentalFrozenAt(*v)
	}
	return _c
}

// SetAccountFrozen sets the "account_frozen" field.
func (_c *AccountCreate) SetAccountFrozen(v bool) *AccountCreate {
	_c.mutation.SetAccountFrozen(v)
	return _c
}

// SetNillableAccountFrozen sets the "account_frozen" field if the given value is not nil.
func (_c *AccountCreate) SetNillableAccountFrozen(v *bool) *AccountCreate {
	if v != nil {
		_c.SetAccountFrozen(*v)
	}
	return _c
}

// SetRentalOrderID sets the "rental_order_id" field.
func (_c *AccountCreate) SetRentalOrderID(v string) *AccountCreate {
	_c.mutation.SetRentalOrderID(v)
	return _c
}

// SetNillableRentalOrderID sets the "rental_order_id" field if the given value is not nil.
func (_c *AccountCreate) SetNillableRentalOrderID(v *string) *AccountCreate {
	if v != nil {
		_c.SetRentalOrderID(*v)
	}
	return _c
}

// SetLowPriority sets the "low_priority" field.
func (_c *AccountCreate) SetLowPriority(v bool) *AccountCreate {
	_c.mutation.SetLowPriority(v)
	return _c
}

// SetNillableLowPriority sets the "low_priority" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLowPriority(v *bool) *AccountCreate {
	if v != nil {
		_c.SetLowPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCreate) SetUpdatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUpdatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AccountCreate) SetWorkspace(v *Workspace) *AccountCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.MafileJSON(); !ok {
		v := account.DefaultMafileJSON
		_c.mutation.SetMafileJSON(v)
	}
	if _, ok := _c.mutation.Mmr(); !ok {
		v := account.DefaultMmr
		_c.mutation.SetMmr(v)
	}
	if _, ok := _c.mutation.RentalDurationMinutes(); !ok {
		v := account.DefaultRentalDurationMinutes
		_c.mutation.SetRentalDurationMinutes(v)
	}
	if _, ok := _c.mutation.RentalFrozen(); !ok {
		v := account.DefaultRentalFrozen
		_c.mutation.SetRentalFrozen(v)
	}
	if _, ok := _c.mutation.AccountFrozen(); !ok {
		v := account.DefaultAccountFrozen
		_c.mutation.SetAccountFrozen(v)
	}
	if _, ok := _c.mutation.LowPriority(); !ok {
		v := account.DefaultLowPriority
		_c.mutation.SetLowPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Account.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Account.user_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Account.display_name"`)}
	}
	if _, ok := _c.mutation.Login(); !ok {
		return &ValidationError{Name: "login", err: errors.New(`ent: missing required field "Account.login"`)}
	}
	if _, ok := _c.mutation.Password(); !ok {
		return &ValidationError{Name: "password", err: errors.New(`ent: missing required field "Account.password"`)}
	}
	if _, ok := _c.mutation.MafileJSON(); !ok {
		return &ValidationError{Name: "mafile_json", err: errors.New(`ent: missing required field "Account.mafile_json"`)}
	}
	if _, ok := _c.mutation.Mmr(); !ok {
		return &ValidationError{Name: "mmr", err: errors.New(`ent: missing required field "Account.mmr"`)}
	}
	if _, ok := _c.mutation.RentalDurationMinutes(); !ok {
		return &ValidationError{Name: "rental_duration_minutes", err: errors.New(`ent: missing required field "Account.rental_duration_minutes"`)}
	}
	if _, ok := _c.mutation.RentalFrozen(); !ok {
		return &ValidationError{Name: "rental_frozen", err: errors.New(`ent: missing required field "Account.rental_frozen"`)}
	}
	if _, ok := _c.mutation.AccountFrozen(); !ok {
		return &ValidationError{Name: "account_frozen", err: errors.New(`ent: missing required field "Account.account_frozen"`)}
	}
	if _, ok := _c.mutation.LowPriority(); !ok {
		return &ValidationError{Name: "low_priority", err: errors.New(`ent: missing required field "Account.low_priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "Account.workspace"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(account.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Login(); ok {
		_spec.SetField(account.FieldLogin, field.TypeString, value)
		_node.Login = value
	}
	if value, ok := _c.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := _c.mutation.MafileJSON(); ok {
		_spec.SetField(account.FieldMafileJSON, field.TypeString, value)
		_node.MafileJSON = value
	}
	if value, ok := _c.mutation.Mmr(); ok {
		_spec.SetField(account.FieldMmr, field.TypeInt, value)
		_node.Mmr = value
	}
	if value, ok := _c.mutation.RentalDurationMinutes(); ok {
		_spec.SetField(account.FieldRentalDurationMinutes, field.TypeInt, value)
		_node.RentalDurationMinutes = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(account.FieldOwner, field.TypeString, value)
		_node.Owner = &value
	}
	if value, ok := _c.mutation.RentalStart(); ok {
		_spec.SetField(account.FieldRentalStart, field.TypeTime, value)
		_node.RentalStart = &value
	}
	if value, ok := _c.mutation.RentalFrozen(); ok {
		_spec.SetField(account.FieldRentalFrozen, field.TypeBool, value)
		_node.RentalFrozen = value
	}
	if value, ok := _c.mutation.RentalFrozenAt(); ok {
		_spec.SetField(account.FieldRentalFrozenAt, field.TypeTime, value)
		_node.RentalFrozenAt = &value
	}
	if value, ok := _c.mutation.AccountFrozen(); ok {
		_spec.SetField(account.FieldAccountFrozen, field.TypeBool, value)
		_node.AccountFrozen = value
	}
	if value, ok := _c.mutation.RentalOrderID(); ok {
		_spec.SetField(account.FieldRentalOrderID, field.TypeString, value)
		_node.RentalOrderID = &value
	}
	if value, ok := _c.mutation.LowPriority(); ok {
		_spec.SetField(account.FieldLowPriority, field.TypeBool, value)
		_node.LowPriority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   account.WorkspaceTable,
			Columns: []string{account.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreate) OnConflict(opts ...sql.ConflictOption) *AccountUpsertOne {
	_c.conflict = opts
	return &AccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreate) OnConflictColumns(columns ...string) *AccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertOne{
		create: _c,
	}
}

type (
	// AccountUpsertOne is the builder for "upsert"-ing
	//  one Account node.
	AccountUpsertOne struct {
		create *AccountCreate
	}

	// AccountUpsert is the "OnConflict" setter.
	AccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *AccountUpsert) SetWorkspaceID(v int) *AccountUpsert {
	u.Set(account.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AccountUpsert) UpdateWorkspaceID() *AccountUpsert {
	u.SetExcluded(account.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *AccountUpsert) SetUserID(v int) *AccountUpsert {
	u.Set(account.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AccountUpsert) UpdateUserID() *AccountUpsert {
	u.SetExcluded(account.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *AccountUpsert) AddUserID(v int) *AccountUpsert {
	u.Add(account.FieldUserID, v)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsert) SetDisplayName(v string) *AccountUpsert {
	u.Set(account.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsert) UpdateDisplayName() *AccountUpsert {
	u.SetExcluded(account.FieldDisplayName)
	return u
}

// SetLogin sets the "login" field.
func (u *AccountUpsert) SetLogin(v string) *AccountUpsert {
	u.Set(account.FieldLogin, v)
	return u
}

// UpdateLogin sets the "login" field to the value that was provided on create.
func (u *AccountUpsert) UpdateLogin() *AccountUpsert {
	u.SetExcluded(account.FieldLogin)
	return u
}

// SetPassword sets the "password" field.
func (u *AccountUpsert) SetPassword(v string) *AccountUpsert {
	u.Set(account.FieldPassword, v)
	return u
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsert) UpdatePassword() *AccountUpsert {
	u.SetExcluded(account.FieldPassword)
	return u
}

// SetMafileJSON sets the "mafile_json" field.
func (u *AccountUpsert) SetMafileJSON(v string) *AccountUpsert {
	u.Set(account.FieldMafileJSON, v)
	return u
}

// UpdateMafileJSON sets the "mafile_json" field to the value that was provided on create.
func (u *AccountUpsert) UpdateMafileJSON() *AccountUpsert {
	u.SetExcluded(account.FieldMafileJSON)
	return u
}

// SetMmr sets the "mmr" field.
func (u *AccountUpsert) SetMmr(v int) *AccountUpsert {
	u.Set(account.FieldMmr, v)
	return u
}

// UpdateMmr sets the "mmr" field to the value that was provided on create.
func (u *AccountUpsert) UpdateMmr() *AccountUpsert {
	u.SetExcluded(account.FieldMmr)
	return u
}

// AddMmr adds v to the "mmr" field.
func (u *AccountUpsert) AddMmr(v int) *AccountUpsert {
	u.Add(account.FieldMmr, v)
	return u
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (u *AccountUpsert) SetRentalDurationMinutes(v int) *AccountUpsert {
	u.Set(account.FieldRentalDurationMinutes, v)
	return u
}

// UpdateRentalDurationMinutes sets the "rental_duration_minutes" field to the value that was provided on create.
func (u *AccountUpsert) UpdateRentalDurationMinutes() *AccountUpsert {
	u.SetExcluded(account.FieldRentalDurationMinutes)
	return u
}

// AddRentalDurationMinutes adds v to the "rental_duration_minutes" field.
func (u *AccountUpsert) AddRentalDurationMinutes(v int) *AccountUpsert {
	u.Add(account.FieldRentalDurationMinutes, v)
	return u
}

// SetOwner sets the "owner" field.
func (u *AccountUpsert) SetOwner(v string) *AccountUpsert {
	u.Set(account.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AccountUpsert) UpdateOwner() *AccountUpsert {
	u.SetExcluded(account.FieldOwner)
	return u
}

// ClearOwner clears the value of the "owner" field.
func (u *AccountUpsert) ClearOwner() *AccountUpsert {
	u.SetNull(account.FieldOwner)
	return u
}

// SetRentalStart sets the "rental_start" field.
func (u *AccountUpsert) SetRentalStart(v time.Time) *AccountUpsert {
	u.Set(account.FieldRentalStart, v)
	return u
}

// UpdateRentalStart sets the "rental_start" field to the value that was provided on create.
func (u *AccountUpsert) UpdateRentalStart() *AccountUpsert {
	u.SetExcluded(account.FieldRentalStart)
	return u
}

// ClearRentalStart clears the value of the "rental_start" field.
func (u *AccountUpsert) ClearRentalStart() *AccountUpsert {
	u.SetNull(account.FieldRentalStart)
	return u
}

// SetRentalFrozen sets the "rental_frozen" field.
func (u *AccountUpsert) SetRentalFrozen(v bool) *AccountUpsert {
	u.Set(account.FieldRentalFrozen, v)
	return u
}

// UpdateRentalFrozen sets the "rental_frozen" field to the value that was provided on create.
func (u *AccountUpsert) UpdateRentalFrozen() *AccountUpsert {
	u.SetExcluded(account.FieldRentalFrozen)
	return u
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (u *AccountUpsert) SetRentalFrozenAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldRentalFrozenAt, v)
	return u
}

// UpdateRentalFrozenAt sets the "rental_frozen_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateRentalFrozenAt() *AccountUpsert {
	u.SetExcluded(account.FieldRentalFrozenAt)
	return u
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (u *AccountUpsert) ClearRentalFrozenAt() *AccountUpsert {
	u.SetNull(account.FieldRentalFrozenAt)
	return u
}

// SetAccountFrozen sets the "account_frozen" field.
func (u *AccountUpsert) SetAccountFrozen(v bool) *AccountUpsert {
	u.Set(account.FieldAccountFrozen, v)
	return u
}

// UpdateAccountFrozen sets the "account_frozen" field to the value that was provided on create.
func (u *AccountUpsert) UpdateAccountFrozen() *AccountUpsert {
	u.SetExcluded(account.FieldAccountFrozen)
	return u
}

// SetRentalOrderID sets the "rental_order_id" field.
func (u *AccountUpsert) SetRentalOrderID(v string) *AccountUpsert {
	u.Set(account.FieldRentalOrderID, v)
	return u
}

// UpdateRentalOrderID sets the "rental_order_id" field to the value that was provided on create.
func (u *AccountUpsert) UpdateRentalOrderID() *AccountUpsert {
	u.SetExcluded(account.FieldRentalOrderID)
	return u
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (u *AccountUpsert) ClearRentalOrderID() *AccountUpsert {
	u.SetNull(account.FieldRentalOrderID)
	return u
}

// SetLowPriority sets the "low_priority" field.
func (u *AccountUpsert) SetLowPriority(v bool) *AccountUpsert {
	u.Set(account.FieldLowPriority, v)
	return u
}

// UpdateLowPriority sets the "low_priority" field to the value that was provided on create.
func (u *AccountUpsert) UpdateLowPriority() *AccountUpsert {
	u.SetExcluded(account.FieldLowPriority)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsert) SetUpdatedAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateUpdatedAt() *AccountUpsert {
	u.SetExcluded(account.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AccountUpsertOne) UpdateNewValues() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(account.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountUpsertOne) Ignore() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertOne) DoNothing() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreate.OnConflict
// documentation for more info.
func (u *AccountUpsertOne) Update(set func(*AccountUpsert)) *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AccountUpsertOne) SetWorkspaceID(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateWorkspaceID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *AccountUpsertOne) SetUserID(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AccountUpsertOne) AddUserID(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateUserID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsertOne) SetDisplayName(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateDisplayName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDisplayName()
	})
}

// SetLogin sets the "login" field.
func (u *AccountUpsertOne) SetLogin(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetLogin(v)
	})
}

// UpdateLogin sets the "login" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateLogin() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLogin()
	})
}

// SetPassword sets the "password" field.
func (u *AccountUpsertOne) SetPassword(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdatePassword() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePassword()
	})
}

// SetMafileJSON sets the "mafile_json" field.
func (u *AccountUpsertOne) SetMafileJSON(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetMafileJSON(v)
	})
}

// UpdateMafileJSON sets the "mafile_json" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateMafileJSON() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateMafileJSON()
	})
}

// SetMmr sets the "mmr" field.
func (u *AccountUpsertOne) SetMmr(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetMmr(v)
	})
}

// AddMmr adds v to the "mmr" field.
func (u *AccountUpsertOne) AddMmr(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.AddMmr(v)
	})
}

// UpdateMmr sets the "mmr" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateMmr() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateMmr()
	})
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (u *AccountUpsertOne) SetRentalDurationMinutes(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalDurationMinutes(v)
	})
}

// AddRentalDurationMinutes adds v to the "rental_duration_minutes" field.
func (u *AccountUpsertOne) AddRentalDurationMinutes(v int) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.AddRentalDurationMinutes(v)
	})
}

// UpdateRentalDurationMinutes sets the "rental_duration_minutes" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateRentalDurationMinutes() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalDurationMinutes()
	})
}

// SetOwner sets the "owner" field.
func (u *AccountUpsertOne) SetOwner(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateOwner() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *AccountUpsertOne) ClearOwner() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearOwner()
	})
}

// SetRentalStart sets the "rental_start" field.
func (u *AccountUpsertOne) SetRentalStart(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalStart(v)
	})
}

// UpdateRentalStart sets the "rental_start" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateRentalStart() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalStart()
	})
}

// ClearRentalStart clears the value of the "rental_start" field.
func (u *AccountUpsertOne) ClearRentalStart() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalStart()
	})
}

// SetRentalFrozen sets the "rental_frozen" field.
func (u *AccountUpsertOne) SetRentalFrozen(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalFrozen(v)
	})
}

// UpdateRentalFrozen sets the "rental_frozen" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateRentalFrozen() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalFrozen()
	})
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (u *AccountUpsertOne) SetRentalFrozenAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalFrozenAt(v)
	})
}

// UpdateRentalFrozenAt sets the "rental_frozen_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateRentalFrozenAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalFrozenAt()
	})
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (u *AccountUpsertOne) ClearRentalFrozenAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalFrozenAt()
	})
}

// SetAccountFrozen sets the "account_frozen" field.
func (u *AccountUpsertOne) SetAccountFrozen(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetAccountFrozen(v)
	})
}

// UpdateAccountFrozen sets the "account_frozen" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateAccountFrozen() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAccountFrozen()
	})
}

// SetRentalOrderID sets the "rental_order_id" field.
func (u *AccountUpsertOne) SetRentalOrderID(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalOrderID(v)
	})
}

// UpdateRentalOrderID sets the "rental_order_id" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateRentalOrderID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalOrderID()
	})
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (u *AccountUpsertOne) ClearRentalOrderID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalOrderID()
	})
}

// SetLowPriority sets the "low_priority" field.
func (u *AccountUpsertOne) SetLowPriority(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetLowPriority(v)
	})
}

// UpdateLowPriority sets the "low_priority" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateLowPriority() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLowPriority()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertOne) SetUpdatedAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateUpdatedAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
	conflict []sql.ConflictOption
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountUpsertBulk {
	_c.conflict = opts
	return &AccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AccountCreateBulk) OnConflictColumns(columns ...string) *AccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertBulk{
		create: _c,
	}
}

// AccountUpsertBulk is the builder for "upsert"-ing
// a bulk of Account nodes.
type AccountUpsertBulk struct {
	create *AccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AccountUpsertBulk) UpdateNewValues() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(account.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountUpsertBulk) Ignore() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertBulk) DoNothing() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreateBulk.OnConflict
// documentation for more info.
func (u *AccountUpsertBulk) Update(set func(*AccountUpsert)) *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AccountUpsertBulk) SetWorkspaceID(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateWorkspaceID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *AccountUpsertBulk) SetUserID(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AccountUpsertBulk) AddUserID(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateUserID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUserID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsertBulk) SetDisplayName(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateDisplayName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDisplayName()
	})
}

// SetLogin sets the "login" field.
func (u *AccountUpsertBulk) SetLogin(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetLogin(v)
	})
}

// UpdateLogin sets the "login" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateLogin() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLogin()
	})
}

// SetPassword sets the "password" field.
func (u *AccountUpsertBulk) SetPassword(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdatePassword() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePassword()
	})
}

// SetMafileJSON sets the "mafile_json" field.
func (u *AccountUpsertBulk) SetMafileJSON(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetMafileJSON(v)
	})
}

// UpdateMafileJSON sets the "mafile_json" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateMafileJSON() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateMafileJSON()
	})
}

// SetMmr sets the "mmr" field.
func (u *AccountUpsertBulk) SetMmr(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetMmr(v)
	})
}

// AddMmr adds v to the "mmr" field.
func (u *AccountUpsertBulk) AddMmr(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.AddMmr(v)
	})
}

// UpdateMmr sets the "mmr" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateMmr() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateMmr()
	})
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (u *AccountUpsertBulk) SetRentalDurationMinutes(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalDurationMinutes(v)
	})
}

// AddRentalDurationMinutes adds v to the "rental_duration_minutes" field.
func (u *AccountUpsertBulk) AddRentalDurationMinutes(v int) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.AddRentalDurationMinutes(v)
	})
}

// UpdateRentalDurationMinutes sets the "rental_duration_minutes" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateRentalDurationMinutes() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalDurationMinutes()
	})
}

// SetOwner sets the "owner" field.
func (u *AccountUpsertBulk) SetOwner(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateOwner() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateOwner()
	})
}

// ClearOwner clears the value of the "owner" field.
func (u *AccountUpsertBulk) ClearOwner() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearOwner()
	})
}

// SetRentalStart sets the "rental_start" field.
func (u *AccountUpsertBulk) SetRentalStart(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalStart(v)
	})
}

// UpdateRentalStart sets the "rental_start" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateRentalStart() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalStart()
	})
}

// ClearRentalStart clears the value of the "rental_start" field.
func (u *AccountUpsertBulk) ClearRentalStart() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalStart()
	})
}

// SetRentalFrozen sets the "rental_frozen" field.
func (u *AccountUpsertBulk) SetRentalFrozen(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalFrozen(v)
	})
}

// UpdateRentalFrozen sets the "rental_frozen" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateRentalFrozen() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalFrozen()
	})
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (u *AccountUpsertBulk) SetRentalFrozenAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalFrozenAt(v)
	})
}

// UpdateRentalFrozenAt sets the "rental_frozen_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateRentalFrozenAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalFrozenAt()
	})
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (u *AccountUpsertBulk) ClearRentalFrozenAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalFrozenAt()
	})
}

// SetAccountFrozen sets the "account_frozen" field.
func (u *AccountUpsertBulk) SetAccountFrozen(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetAccountFrozen(v)
	})
}

// UpdateAccountFrozen sets the "account_frozen" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateAccountFrozen() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAccountFrozen()
	})
}

// SetRentalOrderID sets the "rental_order_id" field.
func (u *AccountUpsertBulk) SetRentalOrderID(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetRentalOrderID(v)
	})
}

// UpdateRentalOrderID sets the "rental_order_id" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateRentalOrderID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateRentalOrderID()
	})
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (u *AccountUpsertBulk) ClearRentalOrderID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.ClearRentalOrderID()
	})
}

// SetLowPriority sets the "low_priority" field.
func (u *AccountUpsertBulk) SetLowPriority(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetLowPriority(v)
	})
}

// UpdateLowPriority sets the "low_priority" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateLowPriority() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLowPriority()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AccountUpsertBulk) SetUpdatedAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateUpdatedAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
