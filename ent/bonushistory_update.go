// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// BonusHistoryUpdate is the builder for updating BonusHistory entities.
type BonusHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *BonusHistoryMutation
}

// Where appends a list predicates to the BonusHistoryUpdate builder.
func (_u *BonusHistoryUpdate) Where(ps ...predicate.BonusHistory) *BonusHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BonusHistoryUpdate) SetWorkspaceID(v int) *BonusHistoryUpdate {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableWorkspaceID(v *int) *BonusHistoryUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *BonusHistoryUpdate) AddWorkspaceID(v int) *BonusHistoryUpdate {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BonusHistoryUpdate) SetUserID(v int) *BonusHistoryUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableUserID(v *int) *BonusHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BonusHistoryUpdate) AddUserID(v int) *BonusHistoryUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BonusHistoryUpdate) SetOwner(v string) *BonusHistoryUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableOwner(v *string) *BonusHistoryUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (_u *BonusHistoryUpdate) SetDeltaMinutes(v int) *BonusHistoryUpdate {
	_u.mutation.ResetDeltaMinutes()
	_u.mutation.SetDeltaMinutes(v)
	return _u
}

// SetNillableDeltaMinutes sets the "delta_minutes" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableDeltaMinutes(v *int) *BonusHistoryUpdate {
	if v != nil {
		_u.SetDeltaMinutes(*v)
	}
	return _u
}

// AddDeltaMinutes adds value to the "delta_minutes" field.
func (_u *BonusHistoryUpdate) AddDeltaMinutes(v int) *BonusHistoryUpdate {
	_u.mutation.AddDeltaMinutes(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *BonusHistoryUpdate) SetReason(v string) *BonusHistoryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableReason(v *string) *BonusHistoryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *BonusHistoryUpdate) SetOrderID(v string) *BonusHistoryUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *BonusHistoryUpdate) SetNillableOrderID(v *string) *BonusHistoryUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// Mutation returns the BonusHistoryMutation object of the builder.
func (_u *BonusHistoryUpdate) Mutation() *BonusHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BonusHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BonusHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BonusHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BonusHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BonusHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(bonushistory.Table, bonushistory.Columns, sqlgraph.NewFieldSpec(bonushistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(bonushistory.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(bonushistory.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bonushistory.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(bonushistory.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(bonushistory.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaMinutes(); ok {
		_spec.SetField(bonushistory.FieldDeltaMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeltaMinutes(); ok {
		_spec.AddField(bonushistory.FieldDeltaMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(bonushistory.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(bonushistory.FieldOrderID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bonushistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BonusHistoryUpdateOne is the builder for updating a single BonusHistory entity.
type BonusHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BonusHistoryMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BonusHistoryUpdateOne) SetWorkspaceID(v int) *BonusHistoryUpdateOne {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableWorkspaceID(v *int) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *BonusHistoryUpdateOne) AddWorkspaceID(v int) *BonusHistoryUpdateOne {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BonusHistoryUpdateOne) SetUserID(v int) *BonusHistoryUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableUserID(v *int) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BonusHistoryUpdateOne) AddUserID(v int) *BonusHistoryUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BonusHistoryUpdateOne) SetOwner(v string) *BonusHistoryUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableOwner(v *string) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (_u *BonusHistoryUpdateOne) SetDeltaMinutes(v int) *BonusHistoryUpdateOne {
	_u.mutation.ResetDeltaMinutes()
	_u.mutation.SetDeltaMinutes(v)
	return _u
}

// SetNillableDeltaMinutes sets the "delta_minutes" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableDeltaMinutes(v *int) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetDeltaMinutes(*v)
	}
	return _u
}

// AddDeltaMinutes adds value to the "delta_minutes" field.
func (_u *BonusHistoryUpdateOne) AddDeltaMinutes(v int) *BonusHistoryUpdateOne {
	_u.mutation.AddDeltaMinutes(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *BonusHistoryUpdateOne) SetReason(v string) *BonusHistoryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableReason(v *string) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *BonusHistoryUpdateOne) SetOrderID(v string) *BonusHistoryUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *BonusHistoryUpdateOne) SetNillableOrderID(v *string) *BonusHistoryUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// Mutation returns the BonusHistoryMutation object of the builder.
func (_u *BonusHistoryUpdateOne) Mutation() *BonusHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the BonusHistoryUpdate builder.
func (_u *BonusHistoryUpdateOne) Where(ps ...predicate.BonusHistory) *BonusHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BonusHistoryUpdateOne) Select(field string, fields ...string) *BonusHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BonusHistory entity.
func (_u *BonusHistoryUpdateOne) Save(ctx context.Context) (*BonusHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BonusHistoryUpdateOne) SaveX(ctx context.Context) *BonusHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BonusHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BonusHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BonusHistoryUpdateOne) sqlSave(ctx context.Context) (_node *BonusHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(bonushistory.Table, bonushistory.Columns, sqlgraph.NewFieldSpec(bonushistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BonusHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bonushistory.FieldID)
		for _, f := range fields {
			if !bonushistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bonushistory.FieldID {
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
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(bonushistory.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(bonushistory.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bonushistory.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(bonushistory.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(bonushistory.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaMinutes(); ok {
		_spec.SetField(bonushistory.FieldDeltaMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeltaMinutes(); ok {
		_spec.AddField(bonushistory.FieldDeltaMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(bonushistory.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(bonushistory.FieldOrderID, field.TypeString, value)
	}
	_node = &BonusHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bonushistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
