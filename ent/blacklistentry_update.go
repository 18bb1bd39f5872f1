// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BlacklistEntryUpdate is the builder for updating BlacklistEntry entities.
type BlacklistEntryUpdate struct {
	config
	hooks    []Hook
	mutation *BlacklistEntryMutation
}

// Where appends a list predicates to the BlacklistEntryUpdate builder.
func (_u *BlacklistEntryUpdate) Where(ps ...predicate.BlacklistEntry) *BlacklistEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BlacklistEntryUpdate) SetWorkspaceID(v int) *BlacklistEntryUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BlacklistEntryUpdate) SetNillableWorkspaceID(v *int) *BlacklistEntryUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BlacklistEntryUpdate) SetUserID(v int) *BlacklistEntryUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BlacklistEntryUpdate) SetNillableUserID(v *int) *BlacklistEntryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BlacklistEntryUpdate) AddUserID(v int) *BlacklistEntryUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BlacklistEntryUpdate) SetOwner(v string) *BlacklistEntryUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BlacklistEntryUpdate) SetNillableOwner(v *string) *BlacklistEntryUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetOwnerKey sets the "owner_key" field.
func (_u *BlacklistEntryUpdate) SetOwnerKey(v string) *BlacklistEntryUpdate {
	_u.mutation.SetOwnerKey(v)
	return _u
}

// SetNillableOwnerKey sets the "owner_key" field if the given value is not nil.
func (_u *BlacklistEntryUpdate) SetNillableOwnerKey(v *string) *BlacklistEntryUpdate {
	if v != nil {
		_u.SetOwnerKey(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlacklistEntryUpdate) SetReason(v string) *BlacklistEntryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlacklistEntryUpdate) SetNillableReason(v *string) *BlacklistEntryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *BlacklistEntryUpdate) SetWorkspace(v *Workspace) *BlacklistEntryUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the BlacklistEntryMutation object of the builder.
func (_u *BlacklistEntryUpdate) Mutation() *BlacklistEntryMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *BlacklistEntryUpdate) ClearWorkspace() *BlacklistEntryUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlacklistEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlacklistEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlacklistEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlacklistEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlacklistEntryUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlacklistEntry.workspace"`)
	}
	return nil
}

func (_u *BlacklistEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blacklistentry.Table, blacklistentry.Columns, sqlgraph.NewFieldSpec(blacklistentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(blacklistentry.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(blacklistentry.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(blacklistentry.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerKey(); ok {
		_spec.SetField(blacklistentry.FieldOwnerKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blacklistentry.FieldReason, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blacklistentry.WorkspaceTable,
			Columns: []string{blacklistentry.WorkspaceColumn},
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
			Table:   blacklistentry.WorkspaceTable,
			Columns: []string{blacklistentry.WorkspaceColumn},
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
			err = &NotFoundError{blacklistentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlacklistEntryUpdateOne is the builder for updating a single BlacklistEntry entity.
type BlacklistEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlacklistEntryMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *BlacklistEntryUpdateOne) SetWorkspaceID(v int) *BlacklistEntryUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *BlacklistEntryUpdateOne) SetNillableWorkspaceID(v *int) *BlacklistEntryUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BlacklistEntryUpdateOne) SetUserID(v int) *BlacklistEntryUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BlacklistEntryUpdateOne) SetNillableUserID(v *int) *BlacklistEntryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *BlacklistEntryUpdateOne) AddUserID(v int) *BlacklistEntryUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetOwner sets the "owner" field.
func (_u *BlacklistEntryUpdateOne) SetOwner(v string) *BlacklistEntryUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *BlacklistEntryUpdateOne) SetNillableOwner(v *string) *BlacklistEntryUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetOwnerKey sets the "owner_key" field.
func (_u *BlacklistEntryUpdateOne) SetOwnerKey(v string) *BlacklistEntryUpdateOne {
	_u.mutation.SetOwnerKey(v)
	return _u
}

// SetNillableOwnerKey sets the "owner_key" field if the given value is not nil.
func (_u *BlacklistEntryUpdateOne) SetNillableOwnerKey(v *string) *BlacklistEntryUpdateOne {
	if v != nil {
		_u.SetOwnerKey(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *BlacklistEntryUpdateOne) SetReason(v string) *BlacklistEntryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BlacklistEntryUpdateOne) SetNillableReason(v *string) *BlacklistEntryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *BlacklistEntryUpdateOne) SetWorkspace(v *Workspace) *BlacklistEntryUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the BlacklistEntryMutation object of the builder.
func (_u *BlacklistEntryUpdateOne) Mutation() *BlacklistEntryMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *BlacklistEntryUpdateOne) ClearWorkspace() *BlacklistEntryUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the BlacklistEntryUpdate builder.
func (_u *BlacklistEntryUpdateOne) Where(ps ...predicate.BlacklistEntry) *BlacklistEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlacklistEntryUpdateOne) Select(field string, fields ...string) *BlacklistEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlacklistEntry entity.
func (_u *BlacklistEntryUpdateOne) Save(ctx context.Context) (*BlacklistEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlacklistEntryUpdateOne) SaveX(ctx context.Context) *BlacklistEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlacklistEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlacklistEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlacklistEntryUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BlacklistEntry.workspace"`)
	}
	return nil
}

func (_u *BlacklistEntryUpdateOne) sqlSave(ctx context.Context) (_node *BlacklistEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blacklistentry.Table, blacklistentry.Columns, sqlgraph.NewFieldSpec(blacklistentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlacklistEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blacklistentry.FieldID)
		for _, f := range fields {
			if !blacklistentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blacklistentry.FieldID {
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
		_spec.SetField(blacklistentry.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(blacklistentry.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(blacklistentry.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerKey(); ok {
		_spec.SetField(blacklistentry.FieldOwnerKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(blacklistentry.FieldReason, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   blacklistentry.WorkspaceTable,
			Columns: []string{blacklistentry.WorkspaceColumn},
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
			Table:   blacklistentry.WorkspaceTable,
			Columns: []string{blacklistentry.WorkspaceColumn},
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
	_node = &BlacklistEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blacklistentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
