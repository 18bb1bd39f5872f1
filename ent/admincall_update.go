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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// AdminCallUpdate is the builder for updating AdminCall entities.
type AdminCallUpdate struct {
	config
	hooks    []Hook
	mutation *AdminCallMutation
}

// Where appends a list predicates to the AdminCallUpdate builder.
func (_u *AdminCallUpdate) Where(ps ...predicate.AdminCall) *AdminCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AdminCallUpdate) SetWorkspaceID(v int) *AdminCallUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableWorkspaceID(v *int) *AdminCallUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdminCallUpdate) SetUserID(v int) *AdminCallUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableUserID(v *int) *AdminCallUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AdminCallUpdate) AddUserID(v int) *AdminCallUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *AdminCallUpdate) SetChatID(v string) *AdminCallUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableChatID(v *string) *AdminCallUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AdminCallUpdate) SetOwner(v string) *AdminCallUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableOwner(v *string) *AdminCallUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AdminCallUpdate) SetCount(v int) *AdminCallUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableCount(v *int) *AdminCallUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AdminCallUpdate) AddCount(v int) *AdminCallUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastCalledAt sets the "last_called_at" field.
func (_u *AdminCallUpdate) SetLastCalledAt(v time.Time) *AdminCallUpdate {
	_u.mutation.SetLastCalledAt(v)
	return _u
}

// SetNillableLastCalledAt sets the "last_called_at" field if the given value is not nil.
func (_u *AdminCallUpdate) SetNillableLastCalledAt(v *time.Time) *AdminCallUpdate {
	if v != nil {
		_u.SetLastCalledAt(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AdminCallUpdate) SetWorkspace(v *Workspace) *AdminCallUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AdminCallMutation object of the builder.
func (_u *AdminCallUpdate) Mutation() *AdminCallMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AdminCallUpdate) ClearWorkspace() *AdminCallUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdminCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdminCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminCallUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminCall.workspace"`)
	}
	return nil
}

func (_u *AdminCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admincall.Table, admincall.Columns, sqlgraph.NewFieldSpec(admincall.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(admincall.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(admincall.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(admincall.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(admincall.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(admincall.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(admincall.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCalledAt(); ok {
		_spec.SetField(admincall.FieldLastCalledAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admincall.WorkspaceTable,
			Columns: []string{admincall.WorkspaceColumn},
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
			Table:   admincall.WorkspaceTable,
			Columns: []string{admincall.WorkspaceColumn},
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
			err = &NotFoundError{admincall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdminCallUpdateOne is the builder for updating a single AdminCall entity.
type AdminCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdminCallMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AdminCallUpdateOne) SetWorkspaceID(v int) *AdminCallUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableWorkspaceID(v *int) *AdminCallUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdminCallUpdateOne) SetUserID(v int) *AdminCallUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableUserID(v *int) *AdminCallUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AdminCallUpdateOne) AddUserID(v int) *AdminCallUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *AdminCallUpdateOne) SetChatID(v string) *AdminCallUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableChatID(v *string) *AdminCallUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *AdminCallUpdateOne) SetOwner(v string) *AdminCallUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableOwner(v *string) *AdminCallUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *AdminCallUpdateOne) SetCount(v int) *AdminCallUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableCount(v *int) *AdminCallUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *AdminCallUpdateOne) AddCount(v int) *AdminCallUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastCalledAt sets the "last_called_at" field.
func (_u *AdminCallUpdateOne) SetLastCalledAt(v time.Time) *AdminCallUpdateOne {
	_u.mutation.SetLastCalledAt(v)
	return _u
}

// SetNillableLastCalledAt sets the "last_called_at" field if the given value is not nil.
func (_u *AdminCallUpdateOne) SetNillableLastCalledAt(v *time.Time) *AdminCallUpdateOne {
	if v != nil {
		_u.SetLastCalledAt(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AdminCallUpdateOne) SetWorkspace(v *Workspace) *AdminCallUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the AdminCallMutation object of the builder.
func (_u *AdminCallUpdateOne) Mutation() *AdminCallMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AdminCallUpdateOne) ClearWorkspace() *AdminCallUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the AdminCallUpdate builder.
func (_u *AdminCallUpdateOne) Where(ps ...predicate.AdminCall) *AdminCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdminCallUpdateOne) Select(field string, fields ...string) *AdminCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdminCall entity.
func (_u *AdminCallUpdateOne) Save(ctx context.Context) (*AdminCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdminCallUpdateOne) SaveX(ctx context.Context) *AdminCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdminCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdminCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdminCallUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AdminCall.workspace"`)
	}
	return nil
}

func (_u *AdminCallUpdateOne) sqlSave(ctx context.Context) (_node *AdminCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(admincall.Table, admincall.Columns, sqlgraph.NewFieldSpec(admincall.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdminCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, admincall.FieldID)
		for _, f := range fields {
			if !admincall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != admincall.FieldID {
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
		_spec.SetField(admincall.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(admincall.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(admincall.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(admincall.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(admincall.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(admincall.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCalledAt(); ok {
		_spec.SetField(admincall.FieldLastCalledAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   admincall.WorkspaceTable,
			Columns: []string{admincall.WorkspaceColumn},
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
			Table:   admincall.WorkspaceTable,
			Columns: []string{admincall.WorkspaceColumn},
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
	_node = &AdminCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{admincall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
