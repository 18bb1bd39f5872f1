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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AccountUpdate) SetWorkspaceID(v int) *AccountUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableWorkspaceID(v *int) *AccountUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AccountUpdate) SetUserID(v int) *AccountUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableUserID(v *int) *AccountUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AccountUpdate) AddUserID(v int) *AccountUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdate) SetDisplayName(v string) *AccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDisplayName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetLogin sets the "login" field.
func (_u *AccountUpdate) SetLogin(v string) *AccountUpdate {
	_u.mutation.SetLogin(v)
	return _u
}

// SetNillableLogin sets the "login" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLogin(v *string) *AccountUpdate {
	if v != nil {
		_u.SetLogin(*v)
	}
	return _u
}

// SetPassword sets the "password" field.
func (_u *AccountUpdate) SetPassword(v string) *AccountUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePassword(v *string) *AccountUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetMafileJSON sets the "mafile_json" field.
func (_u *AccountUpdate) SetMafileJSON(v string) *AccountUpdate {
	_u.mutation.SetMafileJSON(v)
	return _u
}

// SetNillableMafileJSON sets the "mafile_json" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableMafileJSON(v *string) *AccountUpdate {
	if v != nil {
		_u.SetMafileJSON(*v)
	}
	return _u
}

// SetMmr sets the "mmr" field.
func (_u *AccountUpdate) SetMmr(v int) *AccountUpdate {
	_u.mutation.ResetMmr()
	_u.mutation.SetMmr(v)
	return _u
}

// SetNillableMmr sets the "mmr" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableMmr(v *int) *AccountUpdate {
	if v != nil {
		_u.SetMmr(*v)
	}
	return _u
}

// AddMmr adds value to the "mmr" field.
func (_u *AccountUpdate) AddMmr(v int) *AccountUpdate {
	_u.mutation.AddMmr(v)
	return _u
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (_u *AccountUpdate) SetRentalDurationMinutes(v int) *AccountUpdate {
	_u.mutation.ResetRentalDurationMinutes()
	_u.mutation.SetRentalDurationMinutes(v)
	return _u
}

// SetNillableRentalDurationMinutes sets the "rental_duration_minutes" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableRentalDurationMinutes(v *int) *AccountUpdate {
	if v != nil {
		_u.SetRentalDurationMinutes(*v)
	}
	return _u
}

// AddRentalDurationMinutes adds value to the "rental_duration_minutes" field.
func (_u *AccountUpdate) AddRentalDurationMinutes(v int) *AccountUpdate {
	_u.mutation.AddRentalDurationMinutes(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AccountUpdate) SetOwner(v string) *AccountUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableOwner(v *string) *AccountUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *AccountUpdate) ClearOwner() *AccountUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetRentalStart sets the "rental_start" field.
func (_u *AccountUpdate) SetRentalStart(v time.Time) *AccountUpdate {
	_u.mutation.SetRentalStart(v)
	return _u
}

// SetNillableRentalStart sets the "rental_start" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableRentalStart(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetRentalStart(*v)
	}
	return _u
}

// ClearRentalStart clears the value of the "rental_start" field.
func (_u *AccountUpdate) ClearRentalStart() *AccountUpdate {
	_u.mutation.ClearRentalStart()
	return _u
}

// SetRentalFrozen sets the "rental_frozen" field.
func (_u *AccountUpdate) SetRentalFrozen(v bool) *AccountUpdate {
	_u.mutation.SetRentalFrozen(v)
	return _u
}

// SetNillableRentalFrozen sets the "rental_frozen" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableRentalFrozen(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetRentalFrozen(*v)
	}
	return _u
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (_u *AccountUpdate) SetRentalFrozenAt(v time.Time) *AccountUpdate {
	_u.mutation.SetRentalFrozenAt(v)
	return _u
}

// SetNillableRentalFrozenAt sets the "rental_frozen_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableRentalFrozenAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetRentalFrozenAt(*v)
	}
	return _u
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (_u *AccountUpdate) ClearRentalFrozenAt() *AccountUpdate {
	_u.mutation.ClearRentalFrozenAt()
	return _u
}

// SetAccountFrozen sets the "account_frozen" field.
func (_u *AccountUpdate) SetAccountFrozen(v bool) *AccountUpdate {
	_u.mutation.SetAccountFrozen(v)
	return _u
}

// SetNillableAccountFrozen sets the "account_frozen" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableAccountFrozen(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetAccountFrozen(*v)
	}
	return _u
}

// SetRentalOrderID sets the "rental_order_id" field.
func (_u *AccountUpdate) SetRentalOrderID(v string) *AccountUpdate {
	_u.mutation.SetRentalOrderID(v)
	return _u
}

// SetNillableRentalOrderID sets the "rental_order_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableRentalOrderID(v *string) *AccountUpdate {
	if v != nil {
		_u.SetRentalOrderID(*v)
	}
	return _u
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (_u *AccountUpdate) ClearRentalOrderID() *AccountUpdate {
	_u.mutation.ClearRentalOrderID()
	return _u
}

// SetLowPriority sets the "low_priority" field.
func (_u *AccountUpdate) SetLowPriority(v bool) *AccountUpdate {
	_u.mutation.SetLowPriority(v)
	return _u
}

// SetNillableLowPriority sets the "low_priority" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLowPriority(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetLowPriority(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AccountUpdate) SetWorkspace(v *Workspace) *AccountUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AccountUpdate) ClearWorkspace() *AccountUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Account.workspace"`)
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(account.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(account.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Login(); ok {
		_spec.SetField(account.FieldLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.MafileJSON(); ok {
		_spec.SetField(account.FieldMafileJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mmr(); ok {
		_spec.SetField(account.FieldMmr, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMmr(); ok {
		_spec.AddField(account.FieldMmr, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RentalDurationMinutes(); ok {
		_spec.SetField(account.FieldRentalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRentalDurationMinutes(); ok {
		_spec.AddField(account.FieldRentalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(account.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(account.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.RentalStart(); ok {
		_spec.SetField(account.FieldRentalStart, field.TypeTime, value)
	}
	if _u.mutation.RentalStartCleared() {
		_spec.ClearField(account.FieldRentalStart, field.TypeTime)
	}
	if value, ok := _u.mutation.RentalFrozen(); ok {
		_spec.SetField(account.FieldRentalFrozen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RentalFrozenAt(); ok {
		_spec.SetField(account.FieldRentalFrozenAt, field.TypeTime, value)
	}
	if _u.mutation.RentalFrozenAtCleared() {
		_spec.ClearField(account.FieldRentalFrozenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountFrozen(); ok {
		_spec.SetField(account.FieldAccountFrozen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RentalOrderID(); ok {
		_spec.SetField(account.FieldRentalOrderID, field.TypeString, value)
	}
	if _u.mutation.RentalOrderIDCleared() {
		_spec.ClearField(account.FieldRentalOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.LowPriority(); ok {
		_spec.SetField(account.FieldLowPriority, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AccountUpdateOne) SetWorkspaceID(v int) *AccountUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableWorkspaceID(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AccountUpdateOne) SetUserID(v int) *AccountUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableUserID(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AccountUpdateOne) AddUserID(v int) *AccountUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdateOne) SetDisplayName(v string) *AccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDisplayName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetLogin sets the "login" field.
func (_u *AccountUpdateOne) SetLogin(v string) *AccountUpdateOne {
	_u.mutation.SetLogin(v)
	return _u
}

// SetNillableLogin sets the "login" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLogin(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetLogin(*v)
	}
	return _u
}

// SetPassword sets the "password" field.
func (_u *AccountUpdateOne) SetPassword(v string) *AccountUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePassword(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetMafileJSON sets the "mafile_json" field.
func (_u *AccountUpdateOne) SetMafileJSON(v string) *AccountUpdateOne {
	_u.mutation.SetMafileJSON(v)
	return _u
}

// SetNillableMafileJSON sets the "mafile_json" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableMafileJSON(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetMafileJSON(*v)
	}
	return _u
}

// SetMmr sets the "mmr" field.
func (_u *AccountUpdateOne) SetMmr(v int) *AccountUpdateOne {
	_u.mutation.ResetMmr()
	_u.mutation.SetMmr(v)
	return _u
}

// SetNillableMmr sets the "mmr" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableMmr(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetMmr(*v)
	}
	return _u
}

// AddMmr adds value to the "mmr" field.
func (_u *AccountUpdateOne) AddMmr(v int) *AccountUpdateOne {
	_u.mutation.AddMmr(v)
	return _u
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (_u *AccountUpdateOne) SetRentalDurationMinutes(v int) *AccountUpdateOne {
	_u.mutation.ResetRentalDurationMinutes()
	_u.mutation.SetRentalDurationMinutes(v)
	return _u
}

// SetNillableRentalDurationMinutes sets the "rental_duration_minutes" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableRentalDurationMinutes(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetRentalDurationMinutes(*v)
	}
	return _u
}

// AddRentalDurationMinutes adds value to the "rental_duration_minutes" field.
func (_u *AccountUpdateOne) AddRentalDurationMinutes(v int) *AccountUpdateOne {
	_u.mutation.AddRentalDurationMinutes(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AccountUpdateOne) SetOwner(v string) *AccountUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableOwner(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *AccountUpdateOne) ClearOwner() *AccountUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetRentalStart sets the "rental_start" field.
func (_u *AccountUpdateOne) SetRentalStart(v time.Time) *AccountUpdateOne {
	_u.mutation.SetRentalStart(v)
	return _u
}

// SetNillableRentalStart sets the "rental_start" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableRentalStart(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetRentalStart(*v)
	}
	return _u
}

// ClearRentalStart clears the value of the "rental_start" field.
func (_u *AccountUpdateOne) ClearRentalStart() *AccountUpdateOne {
	_u.mutation.ClearRentalStart()
	return _u
}

// SetRentalFrozen sets the "rental_frozen" field.
func (_u *AccountUpdateOne) SetRentalFrozen(v bool) *AccountUpdateOne {
	_u.mutation.SetRentalFrozen(v)
	return _u
}

// SetNillableRentalFrozen sets the "rental_frozen" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableRentalFrozen(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetRentalFrozen(*v)
	}
	return _u
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (_u *AccountUpdateOne) SetRentalFrozenAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetRentalFrozenAt(v)
	return _u
}

// SetNillableRentalFrozenAt sets the "rental_frozen_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableRentalFrozenAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetRentalFrozenAt(*v)
	}
	return _u
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (_u *AccountUpdateOne) ClearRentalFrozenAt() *AccountUpdateOne {
	_u.mutation.ClearRentalFrozenAt()
	return _u
}

// SetAccountFrozen sets the "account_frozen" field.
func (_u *AccountUpdateOne) SetAccountFrozen(v bool) *AccountUpdateOne {
	_u.mutation.SetAccountFrozen(v)
	return _u
}

// SetNillableAccountFrozen sets the "account_frozen" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableAccountFrozen(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetAccountFrozen(*v)
	}
	return _u
}

// SetRentalOrderID sets the "rental_order_id" field.
func (_u *AccountUpdateOne) SetRentalOrderID(v string) *AccountUpdateOne {
	_u.mutation.SetRentalOrderID(v)
	return _u
}

// SetNillableRentalOrderID sets the "rental_order_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableRentalOrderID(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetRentalOrderID(*v)
	}
	return _u
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (_u *AccountUpdateOne) ClearRentalOrderID() *AccountUpdateOne {
	_u.mutation.ClearRentalOrderID()
	return _u
}

// SetLowPriority sets the "low_priority" field.
func (_u *AccountUpdateOne) SetLowPriority(v bool) *AccountUpdateOne {
	_u.mutation.SetLowPriority(v)
	return _u
}

// SetNillableLowPriority sets the "low_priority" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLowPriority(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetLowPriority(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AccountUpdateOne) SetWorkspace(v *Workspace) *AccountUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AccountUpdateOne) ClearWorkspace() *AccountUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Account.workspace"`)
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(account.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(account.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Login(); ok {
		_spec.SetField(account.FieldLogin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.MafileJSON(); ok {
		_spec.SetField(account.FieldMafileJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mmr(); ok {
		_spec.SetField(account.FieldMmr, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMmr(); ok {
		_spec.AddField(account.FieldMmr, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RentalDurationMinutes(); ok {
		_spec.SetField(account.FieldRentalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRentalDurationMinutes(); ok {
		_spec.AddField(account.FieldRentalDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(account.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(account.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.RentalStart(); ok {
		_spec.SetField(account.FieldRentalStart, field.TypeTime, value)
	}
	if _u.mutation.RentalStartCleared() {
		_spec.ClearField(account.FieldRentalStart, field.TypeTime)
	}
	if value, ok := _u.mutation.RentalFrozen(); ok {
		_spec.SetField(account.FieldRentalFrozen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RentalFrozenAt(); ok {
		_spec.SetField(account.FieldRentalFrozenAt, field.TypeTime, value)
	}
	if _u.mutation.RentalFrozenAtCleared() {
		_spec.ClearField(account.FieldRentalFrozenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountFrozen(); ok {
		_spec.SetField(account.FieldAccountFrozen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RentalOrderID(); ok {
		_spec.SetField(account.FieldRentalOrderID, field.TypeString, value)
	}
	if _u.mutation.RentalOrderIDCleared() {
		_spec.ClearField(account.FieldRentalOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.LowPriority(); ok {
		_spec.SetField(account.FieldLowPriority, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
