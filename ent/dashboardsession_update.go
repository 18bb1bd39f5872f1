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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// DashboardSessionUpdate is the builder for updating DashboardSession entities.
type DashboardSessionUpdate struct {
	config
	hooks    []Hook
	mutation *DashboardSessionMutation
}

// Where appends a list predicates to the DashboardSessionUpdate builder.
func (_u *DashboardSessionUpdate) Where(ps ...predicate.DashboardSession) *DashboardSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DashboardSessionUpdate) SetUserID(v int) *DashboardSessionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DashboardSessionUpdate) SetNillableUserID(v *int) *DashboardSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DashboardSessionUpdate) AddUserID(v int) *DashboardSessionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DashboardSessionUpdate) SetExpiresAt(v time.Time) *DashboardSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DashboardSessionUpdate) SetNillableExpiresAt(v *time.Time) *DashboardSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *DashboardSessionUpdate) SetLastSeenAt(v time.Time) *DashboardSessionUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *DashboardSessionUpdate) SetNillableLastSeenAt(v *time.Time) *DashboardSessionUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the DashboardSessionMutation object of the builder.
func (_u *DashboardSessionUpdate) Mutation() *DashboardSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DashboardSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DashboardSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DashboardSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DashboardSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DashboardSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dashboardsession.Table, dashboardsession.Columns, sqlgraph.NewFieldSpec(dashboardsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(dashboardsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(dashboardsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(dashboardsession.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(dashboardsession.FieldLastSeenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboardsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DashboardSessionUpdateOne is the builder for updating a single DashboardSession entity.
type DashboardSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DashboardSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *DashboardSessionUpdateOne) SetUserID(v int) *DashboardSessionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DashboardSessionUpdateOne) SetNillableUserID(v *int) *DashboardSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DashboardSessionUpdateOne) AddUserID(v int) *DashboardSessionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *DashboardSessionUpdateOne) SetExpiresAt(v time.Time) *DashboardSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *DashboardSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *DashboardSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *DashboardSessionUpdateOne) SetLastSeenAt(v time.Time) *DashboardSessionUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *DashboardSessionUpdateOne) SetNillableLastSeenAt(v *time.Time) *DashboardSessionUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the DashboardSessionMutation object of the builder.
func (_u *DashboardSessionUpdateOne) Mutation() *DashboardSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DashboardSessionUpdate builder.
func (_u *DashboardSessionUpdateOne) Where(ps ...predicate.DashboardSession) *DashboardSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DashboardSessionUpdateOne) Select(field string, fields ...string) *DashboardSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DashboardSession entity.
func (_u *DashboardSessionUpdateOne) Save(ctx context.Context) (*DashboardSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DashboardSessionUpdateOne) SaveX(ctx context.Context) *DashboardSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DashboardSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DashboardSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DashboardSessionUpdateOne) sqlSave(ctx context.Context) (_node *DashboardSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(dashboardsession.Table, dashboardsession.Columns, sqlgraph.NewFieldSpec(dashboardsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DashboardSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dashboardsession.FieldID)
		for _, f := range fields {
			if !dashboardsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dashboardsession.FieldID {
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
		_spec.SetField(dashboardsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(dashboardsession.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(dashboardsession.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(dashboardsession.FieldLastSeenAt, field.TypeTime, value)
	}
	_node = &DashboardSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dashboardsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
