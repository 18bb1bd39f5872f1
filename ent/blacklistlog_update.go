// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// BlacklistLogUpdate is the builder for updating BlacklistLog entities.
type BlacklistLogUpdate struct {
	config
	hooks    []Hook
	mutation *BlacklistLogMutation
}

// Where appends a list predicates to the BlacklistLogUpdate builder.
func (_u *BlacklistLogUpdate) Where(ps ...predicate.BlacklistLog) *BlacklistLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BlacklistLogUpdate) SetUserID(v int) *BlacklistLogUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableUserID(v *int) *BlacklistLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BlacklistLogUpdate) AddUserID(v int) *BlacklistLogUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BlacklistLogUpdate) SetOwner(v string) *BlacklistLogUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableOwner(v *string) *BlacklistLogUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BlacklistLogUpdate) SetAction(v blacklistlog.Action) *BlacklistLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableAction(v *blacklistlog.Action) *BlacklistLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlacklistLogUpdate) SetReason(v string) *BlacklistLogUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableReason(v *string) *BlacklistLogUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *BlacklistLogUpdate) SetDetails(v string) *BlacklistLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableDetails(v *string) *BlacklistLogUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BlacklistLogUpdate) SetAmount(v int) *BlacklistLogUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BlacklistLogUpdate) SetNillableAmount(v *int) *BlacklistLogUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BlacklistLogUpdate) AddAmount(v int) *BlacklistLogUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// Mutation returns the BlacklistLogMutation object of the builder.
func (_u *BlacklistLogUpdate) Mutation() *BlacklistLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlacklistLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlacklistLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlacklistLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlacklistLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlacklistLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := blacklistlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BlacklistLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BlacklistLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blacklistlog.Table, blacklistlog.Columns, sqlgraph.NewFieldSpec(blacklistlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(blacklistlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(blacklistlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(blacklistlog.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(blacklistlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blacklistlog.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(blacklistlog.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(blacklistlog.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(blacklistlog.FieldAmount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blacklistlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlacklistLogUpdateOne is the builder for updating a single BlacklistLog entity.
type BlacklistLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlacklistLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *BlacklistLogUpdateOne) SetUserID(v int) *BlacklistLogUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableUserID(v *int) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BlacklistLogUpdateOne) AddUserID(v int) *BlacklistLogUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BlacklistLogUpdateOne) SetOwner(v string) *BlacklistLogUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableOwner(v *string) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BlacklistLogUpdateOne) SetAction(v blacklistlog.Action) *BlacklistLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableAction(v *blacklistlog.Action) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlacklistLogUpdateOne) SetReason(v string) *BlacklistLogUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableReason(v *string) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *BlacklistLogUpdateOne) SetDetails(v string) *BlacklistLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableDetails(v *string) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BlacklistLogUpdateOne) SetAmount(v int) *BlacklistLogUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BlacklistLogUpdateOne) SetNillableAmount(v *int) *BlacklistLogUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BlacklistLogUpdateOne) AddAmount(v int) *BlacklistLogUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// Mutation returns the BlacklistLogMutation object of the builder.
func (_u *BlacklistLogUpdateOne) Mutation() *BlacklistLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlacklistLogUpdate builder.
func (_u *BlacklistLogUpdateOne) Where(ps ...predicate.BlacklistLog) *BlacklistLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlacklistLogUpdateOne) Select(field string, fields ...string) *BlacklistLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlacklistLog entity.
func (_u *BlacklistLogUpdateOne) Save(ctx context.Context) (*BlacklistLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlacklistLogUpdateOne) SaveX(ctx context.Context) *BlacklistLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlacklistLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlacklistLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlacklistLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := blacklistlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BlacklistLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BlacklistLogUpdateOne) sqlSave(ctx context.Context) (_node *BlacklistLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blacklistlog.Table, blacklistlog.Columns, sqlgraph.NewFieldSpec(blacklistlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlacklistLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blacklistlog.FieldID)
		for _, f := range fields {
			if !blacklistlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blacklistlog.FieldID {
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
		_spec.SetField(blacklistlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(blacklistlog.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(blacklistlog.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(blacklistlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blacklistlog.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(blacklistlog.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(blacklistlog.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(blacklistlog.FieldAmount, field.TypeInt, value)
	}
	_node = &BlacklistLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blacklistlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
