// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// OrderEventUpdate is the builder for updating OrderEvent entities.
type OrderEventUpdate struct {
	config
	hooks    []Hook
	mutation *OrderEventMutation
}

// Where appends a list predicates to the OrderEventUpdate builder.
func (_u *OrderEventUpdate) Where(ps ...predicate.OrderEvent) *OrderEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *OrderEventUpdate) SetWorkspaceID(v int) *OrderEventUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableWorkspaceID(v *int) *OrderEventUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OrderEventUpdate) SetUserID(v int) *OrderEventUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableUserID(v *int) *OrderEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *OrderEventUpdate) AddUserID(v int) *OrderEventUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderEventUpdate) SetOrderID(v string) *OrderEventUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableOrderID(v *string) *OrderEventUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *OrderEventUpdate) SetOwner(v string) *OrderEventUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableOwner(v *string) *OrderEventUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OrderEventUpdate) SetAccountID(v int) *OrderEventUpdate {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableAccountID(v *int) *OrderEventUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *OrderEventUpdate) AddAccountID(v int) *OrderEventUpdate {
	_u.mutation.AddAccountID(v)
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *OrderEventUpdate) ClearAccountID() *OrderEventUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetAccountName sets the "account_name" field.
func (_u *OrderEventUpdate) SetAccountName(v string) *OrderEventUpdate {
	_u.mutation.SetAccountName(v)
	return _u
}

// SetNillableAccountName sets the "account_name" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableAccountName(v *string) *OrderEventUpdate {
	if v != nil {
		_u.SetAccountName(*v)
	}
	return _u
}

// SetSteamID sets the "steam_id" field.
func (_u *OrderEventUpdate) SetSteamID(v int64) *OrderEventUpdate {
	_u.mutation.ResetSteamID()
	_u.mutation.SetSteamID(v)
	return _u
}

// SetNillableSteamID sets the "steam_id" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableSteamID(v *int64) *OrderEventUpdate {
	if v != nil {
		_u.SetSteamID(*v)
	}
	return _u
}

// AddSteamID adds value to the "steam_id" field.
func (_u *OrderEventUpdate) AddSteamID(v int64) *OrderEventUpdate {
	_u.mutation.AddSteamID(v)
	return _u
}

// ClearSteamID clears the value of the "steam_id" field.
func (_u *OrderEventUpdate) ClearSteamID() *OrderEventUpdate {
	_u.mutation.ClearSteamID()
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *OrderEventUpdate) SetLotNumber(v string) *OrderEventUpdate {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableLotNumber(v *string) *OrderEventUpdate {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OrderEventUpdate) SetAmount(v int) *OrderEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableAmount(v *int) *OrderEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OrderEventUpdate) AddAmount(v int) *OrderEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderEventUpdate) SetPrice(v float64) *OrderEventUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillablePrice(v *float64) *OrderEventUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OrderEventUpdate) AddPrice(v float64) *OrderEventUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetRentalMinutes sets the "rental_minutes" field.
func (_u *OrderEventUpdate) SetRentalMinutes(v int) *OrderEventUpdate {
	_u.mutation.ResetRentalMinutes()
	_u.mutation.SetRentalMinutes(v)
	return _u
}

// SetNillableRentalMinutes sets the "rental_minutes" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableRentalMinutes(v *int) *OrderEventUpdate {
	if v != nil {
		_u.SetRentalMinutes(*v)
	}
	return _u
}

// AddRentalMinutes adds value to the "rental_minutes" field.
func (_u *OrderEventUpdate) AddRentalMinutes(v int) *OrderEventUpdate {
	_u.mutation.AddRentalMinutes(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *OrderEventUpdate) SetAction(v orderevent.Action) *OrderEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *OrderEventUpdate) SetNillableAction(v *orderevent.Action) *OrderEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *OrderEventUpdate) SetWorkspace(v *Workspace) *OrderEventUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the OrderEventMutation object of the builder.
func (_u *OrderEventUpdate) Mutation() *OrderEventMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *OrderEventUpdate) ClearWorkspace() *OrderEventUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := orderevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "OrderEvent.action": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderEvent.workspace"`)
	}
	return nil
}

func (_u *OrderEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderevent.Table, orderevent.Columns, sqlgraph.NewFieldSpec(orderevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(orderevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(orderevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(orderevent.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(orderevent.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(orderevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(orderevent.FieldAccountID, field.TypeInt, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(orderevent.FieldAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.AccountName(); ok {
		_spec.SetField(orderevent.FieldAccountName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SteamID(); ok {
		_spec.SetField(orderevent.FieldSteamID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSteamID(); ok {
		_spec.AddField(orderevent.FieldSteamID, field.TypeInt64, value)
	}
	if _u.mutation.SteamIDCleared() {
		_spec.ClearField(orderevent.FieldSteamID, field.TypeInt64)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(orderevent.FieldLotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(orderevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(orderevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(orderevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(orderevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RentalMinutes(); ok {
		_spec.SetField(orderevent.FieldRentalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRentalMinutes(); ok {
		_spec.AddField(orderevent.FieldRentalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(orderevent.FieldAction, field.TypeEnum, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderevent.WorkspaceTable,
			Columns: []string{orderevent.WorkspaceColumn},
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
			Table:   orderevent.WorkspaceTable,
			Columns: []string{orderevent.WorkspaceColumn},
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
			err = &NotFoundError{orderevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderEventUpdateOne is the builder for updating a single OrderEvent entity.
type OrderEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderEventMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *OrderEventUpdateOne) SetWorkspaceID(v int) *OrderEventUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableWorkspaceID(v *int) *OrderEventUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OrderEventUpdateOne) SetUserID(v int) *OrderEventUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableUserID(v *int) *OrderEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *OrderEventUpdateOne) AddUserID(v int) *OrderEventUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderEventUpdateOne) SetOrderID(v string) *OrderEventUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableOrderID(v *string) *OrderEventUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *OrderEventUpdateOne) SetOwner(v string) *OrderEventUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableOwner(v *string) *OrderEventUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OrderEventUpdateOne) SetAccountID(v int) *OrderEventUpdateOne {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableAccountID(v *int) *OrderEventUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *OrderEventUpdateOne) AddAccountID(v int) *OrderEventUpdateOne {
	_u.mutation.AddAccountID(v)
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *OrderEventUpdateOne) ClearAccountID() *OrderEventUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetAccountName sets the "account_name" field.
func (_u *OrderEventUpdateOne) SetAccountName(v string) *OrderEventUpdateOne {
	_u.mutation.SetAccountName(v)
	return _u
}

// SetNillableAccountName sets the "account_name" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableAccountName(v *string) *OrderEventUpdateOne {
	if v != nil {
		_u.SetAccountName(*v)
	}
	return _u
}

// SetSteamID sets the "steam_id" field.
func (_u *OrderEventUpdateOne) SetSteamID(v int64) *OrderEventUpdateOne {
	_u.mutation.ResetSteamID()
	_u.mutation.SetSteamID(v)
	return _u
}

// SetNillableSteamID sets the "steam_id" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableSteamID(v *int64) *OrderEventUpdateOne {
	if v != nil {
		_u.SetSteamID(*v)
	}
	return _u
}

// AddSteamID adds value to the "steam_id" field.
func (_u *OrderEventUpdateOne) AddSteamID(v int64) *OrderEventUpdateOne {
	_u.mutation.AddSteamID(v)
	return _u
}

// ClearSteamID clears the value of the "steam_id" field.
func (_u *OrderEventUpdateOne) ClearSteamID() *OrderEventUpdateOne {
	_u.mutation.ClearSteamID()
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *OrderEventUpdateOne) SetLotNumber(v string) *OrderEventUpdateOne {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableLotNumber(v *string) *OrderEventUpdateOne {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OrderEventUpdateOne) SetAmount(v int) *OrderEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableAmount(v *int) *OrderEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OrderEventUpdateOne) AddAmount(v int) *OrderEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *OrderEventUpdateOne) SetPrice(v float64) *OrderEventUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillablePrice(v *float64) *OrderEventUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *OrderEventUpdateOne) AddPrice(v float64) *OrderEventUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetRentalMinutes sets the "rental_minutes" field.
func (_u *OrderEventUpdateOne) SetRentalMinutes(v int) *OrderEventUpdateOne {
	_u.mutation.ResetRentalMinutes()
	_u.mutation.SetRentalMinutes(v)
	return _u
}

// SetNillableRentalMinutes sets the "rental_minutes" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableRentalMinutes(v *int) *OrderEventUpdateOne {
	if v != nil {
		_u.SetRentalMinutes(*v)
	}
	return _u
}

// AddRentalMinutes adds value to the "rental_minutes" field.
func (_u *OrderEventUpdateOne) AddRentalMinutes(v int) *OrderEventUpdateOne {
	_u.mutation.AddRentalMinutes(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *OrderEventUpdateOne) SetAction(v orderevent.Action) *OrderEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *OrderEventUpdateOne) SetNillableAction(v *orderevent.Action) *OrderEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *OrderEventUpdateOne) SetWorkspace(v *Workspace) *OrderEventUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the OrderEventMutation object of the builder.
func (_u *OrderEventUpdateOne) Mutation() *OrderEventMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *OrderEventUpdateOne) ClearWorkspace() *OrderEventUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the OrderEventUpdate builder.
func (_u *OrderEventUpdateOne) Where(ps ...predicate.OrderEvent) *OrderEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderEventUpdateOne) Select(field string, fields ...string) *OrderEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderEvent entity.
func (_u *OrderEventUpdateOne) Save(ctx context.Context) (*OrderEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderEventUpdateOne) SaveX(ctx context.Context) *OrderEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := orderevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "OrderEvent.action": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderEvent.workspace"`)
	}
	return nil
}

func (_u *OrderEventUpdateOne) sqlSave(ctx context.Context) (_node *OrderEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderevent.Table, orderevent.Columns, sqlgraph.NewFieldSpec(orderevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderevent.FieldID)
		for _, f := range fields {
			if !orderevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderevent.FieldID {
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
		_spec.SetField(orderevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(orderevent.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(orderevent.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(orderevent.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(orderevent.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(orderevent.FieldAccountID, field.TypeInt, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(orderevent.FieldAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.AccountName(); ok {
		_spec.SetField(orderevent.FieldAccountName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SteamID(); ok {
		_spec.SetField(orderevent.FieldSteamID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSteamID(); ok {
		_spec.AddField(orderevent.FieldSteamID, field.TypeInt64, value)
	}
	if _u.mutation.SteamIDCleared() {
		_spec.ClearField(orderevent.FieldSteamID, field.TypeInt64)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(orderevent.FieldLotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(orderevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(orderevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(orderevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(orderevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RentalMinutes(); ok {
		_spec.SetField(orderevent.FieldRentalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRentalMinutes(); ok {
		_spec.AddField(orderevent.FieldRentalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(orderevent.FieldAction, field.TypeEnum, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderevent.WorkspaceTable,
			Columns: []string{orderevent.WorkspaceColumn},
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
			Table:   orderevent.WorkspaceTable,
			Columns: []string{orderevent.WorkspaceColumn},
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
	_node = &OrderEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
