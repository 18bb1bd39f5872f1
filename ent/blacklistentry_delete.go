// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// BlacklistEntryDelete is the builder for deleting a BlacklistEntry entity.
type BlacklistEntryDelete struct {
	config
	hooks    []Hook
	mutation *BlacklistEntryMutation
}

// Where appends a list predicates to the BlacklistEntryDelete builder.
func (_d *BlacklistEntryDelete) Where(ps ...predicate.BlacklistEntry) *BlacklistEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BlacklistEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlacklistEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BlacklistEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blacklistentry.Table, sqlgraph.NewFieldSpec(blacklistentry.FieldID, field.TypeInt))
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

// BlacklistEntryDeleteOne is the builder for deleting a single BlacklistEntry entity.
type BlacklistEntryDeleteOne struct {
	_d *BlacklistEntryDelete
}

// Where appends a list predicates to the BlacklistEntryDelete builder.
func (_d *BlacklistEntryDeleteOne) Where(ps ...predicate.BlacklistEntry) *BlacklistEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BlacklistEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blacklistentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BlacklistEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
