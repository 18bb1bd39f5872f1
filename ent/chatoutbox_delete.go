// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
)

// ChatOutboxDelete is the builder for deleting a ChatOutbox entity.
type ChatOutboxDelete struct {
	config
	hooks    []Hook
	mutation *ChatOutboxMutation
}

// Where appends a list predicates to the ChatOutboxDelete builder.
func (_d *ChatOutboxDelete) Where(ps ...predicate.ChatOutbox) *ChatOutboxDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChatOutboxDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatOutboxDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChatOutboxDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chatoutbox.Table, sqlgraph.NewFieldSpec(chatoutbox.FieldID, field.TypeInt))
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

// ChatOutboxDeleteOne is the builder for deleting a single ChatOutbox entity.
type ChatOutboxDeleteOne struct {
	_d *ChatOutboxDelete
}

// Where appends a list predicates to the ChatOutboxDelete builder.
func (_d *ChatOutboxDeleteOne) Where(ps ...predicate.ChatOutbox) *ChatOutboxDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChatOutboxDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chatoutbox.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatOutboxDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
