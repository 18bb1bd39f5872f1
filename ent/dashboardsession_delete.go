// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// DashboardSessionDelete is the builder for deleting a DashboardSession entity.
type DashboardSessionDelete struct {
	config
	hooks    []Hook
	mutation *DashboardSessionMutation
}

// Where appends a list predicates to the DashboardSessionDelete builder.
func (_d *DashboardSessionDelete) Where(ps ...predicate.DashboardSession) *DashboardSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DashboardSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DashboardSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DashboardSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dashboardsession.Table, sqlgraph.NewFieldSpec(dashboardsession.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DashboardSessionDeleteOne is the builder for deleting a single DashboardSession entity.
type DashboardSessionDeleteOne struct {
	_d *DashboardSessionDelete
}

// Where appends a list predicates to the DashboardSessionDelete builder.
func (_d *DashboardSessionDeleteOne) Where(ps ...predicate.DashboardSession) *DashboardSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DashboardSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dashboardsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DashboardSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
