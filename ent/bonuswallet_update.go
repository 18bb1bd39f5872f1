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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BonusWalletUpdate is the builder for updating BonusWallet entities.
type BonusWalletUpdate struct {
	config
	hooks    []Hook
	mutation *BonusWalletMutation
}

// Where appends a list predicates to the BonusWalletUpdate builder.
func (_u *BonusWalletUpdate) Where(ps ...predicate.BonusWallet) *BonusWalletUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BonusWalletUpdate) SetWorkspaceID(v int) *BonusWalletUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BonusWalletUpdate) SetNillableWorkspaceID(v *int) *BonusWalletUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BonusWalletUpdate) SetUserID(v int) *BonusWalletUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BonusWalletUpdate) SetNillableUserID(v *int) *BonusWalletUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BonusWalletUpdate) AddUserID(v int) *BonusWalletUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BonusWalletUpdate) SetOwner(v string) *BonusWalletUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BonusWalletUpdate) SetNillableOwner(v *string) *BonusWalletUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (_u *BonusWalletUpdate) SetBalanceMinutes(v int) *BonusWalletUpdate {
	_u.mutation.ResetBalanceMinutes()
	_u.mutation.SetBalanceMinutes(v)
	return _u
}

// SetNillableBalanceMinutes sets the "balance_minutes" field if the given value is not nil.
func (_u *BonusWalletUpdate) SetNillableBalanceMinutes(v *int) *BonusWalletUpdate {
	if v != nil {
		_u.SetBalanceMinutes(*v)
	}
	return _u
}

// AddBalanceMinutes adds value to the "balance_minutes" field.
func (_u *BonusWalletUpdate) AddBalanceMinutes(v int) *BonusWalletUpdate {
	_u.mutation.AddBalanceMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BonusWalletUpdate) SetUpdatedAt(v time.Time) *BonusWalletUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *BonusWalletUpdate) SetWorkspace(v *Workspace) *BonusWalletUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the BonusWalletMutation object of the builder.
func (_u *BonusWalletUpdate) Mutation() *BonusWalletMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *BonusWalletUpdate) ClearWorkspace() *BonusWalletUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BonusWalletUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BonusWalletUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BonusWalletUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BonusWalletUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BonusWalletUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bonuswallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BonusWalletUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BonusWallet.workspace"`)
	}
	return nil
}

func (_u *BonusWalletUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bonuswallet.Table, bonuswallet.Columns, sqlgraph.NewFieldSpec(bonuswallet.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bonuswallet.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(bonuswallet.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(bonuswallet.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceMinutes(); ok {
		_spec.SetField(bonuswallet.FieldBalanceMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceMinutes(); ok {
		_spec.AddField(bonuswallet.FieldBalanceMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bonuswallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bonuswallet.WorkspaceTable,
			Columns: []string{bonuswallet.WorkspaceColumn},
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
			Table:   bonuswallet.WorkspaceTable,
			Columns: []string{bonuswallet.WorkspaceColumn},
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
			err = &NotFoundError{bonuswallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BonusWalletUpdateOne is the builder for updating a single BonusWallet entity.
type BonusWalletUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BonusWalletMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BonusWalletUpdateOne) SetWorkspaceID(v int) *BonusWalletUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BonusWalletUpdateOne) SetNillableWorkspaceID(v *int) *BonusWalletUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BonusWalletUpdateOne) SetUserID(v int) *BonusWalletUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BonusWalletUpdateOne) SetNillableUserID(v *int) *BonusWalletUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BonusWalletUpdateOne) AddUserID(v int) *BonusWalletUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BonusWalletUpdateOne) SetOwner(v string) *BonusWalletUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BonusWalletUpdateOne) SetNillableOwner(v *string) *BonusWalletUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (_u *BonusWalletUpdateOne) SetBalanceMinutes(v int) *BonusWalletUpdateOne {
	_u.mutation.ResetBalanceMinutes()
	_u.mutation.SetBalanceMinutes(v)
	return _u
}

// SetNillableBalanceMinutes sets the "balance_minutes" field if the given value is not nil.
func (_u *BonusWalletUpdateOne) SetNillableBalanceMinutes(v *int) *BonusWalletUpdateOne {
	if v != nil {
		_u.SetBalanceMinutes(*v)
	}
	return _u
}

// AddBalanceMinutes adds value to the "balance_minutes" field.
func (_u *BonusWalletUpdateOne) AddBalanceMinutes(v int) *BonusWalletUpdateOne {
	_u.mutation.AddBalanceMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BonusWalletUpdateOne) SetUpdatedAt(v time.Time) *BonusWalletUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *BonusWalletUpdateOne) SetWorkspace(v *Workspace) *BonusWalletUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the BonusWalletMutation object of the builder.
func (_u *BonusWalletUpdateOne) Mutation() *BonusWalletMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *BonusWalletUpdateOne) ClearWorkspace() *BonusWalletUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the BonusWalletUpdate builder.
func (_u *BonusWalletUpdateOne) Where(ps ...predicate.BonusWallet) *BonusWalletUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BonusWalletUpdateOne) Select(field string, fields ...string) *BonusWalletUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BonusWallet entity.
func (_u *BonusWalletUpdateOne) Save(ctx context.Context) (*BonusWallet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BonusWalletUpdateOne) SaveX(ctx context.Context) *BonusWallet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BonusWalletUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BonusWalletUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BonusWalletUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bonuswallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BonusWalletUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BonusWallet.workspace"`)
	}
	return nil
}

func (_u *BonusWalletUpdateOne) sqlSave(ctx context.Context) (_node *BonusWallet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bonuswallet.Table, bonuswallet.Columns, sqlgraph.NewFieldSpec(bonuswallet.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BonusWallet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bonuswallet.FieldID)
		for _, f := range fields {
			if !bonuswallet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bonuswallet.FieldID {
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
		_spec.SetField(bonuswallet.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(bonuswallet.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(bonuswallet.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.BalanceMinutes(); ok {
		_spec.SetField(bonuswallet.FieldBalanceMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalanceMinutes(); ok {
		_spec.AddField(bonuswallet.FieldBalanceMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bonuswallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bonuswallet.WorkspaceTable,
			Columns: []string{bonuswallet.WorkspaceColumn},
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
			Table:   bonuswallet.WorkspaceTable,
			Columns: []string{bonuswallet.WorkspaceColumn},
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
	_node = &BonusWallet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bonuswallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
