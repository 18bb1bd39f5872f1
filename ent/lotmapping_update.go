// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// LotMappingUpdate is the builder for updating LotMapping entities.
type LotMappingUpdate struct {
	config
	hooks    []Hook
	mutation *LotMappingMutation
}

// Where appends a list predicates to the LotMappingUpdate builder.
func (_u *LotMappingUpdate) Where(ps ...predicate.LotMapping) *LotMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LotMappingUpdate) SetWorkspaceID(v int) *LotMappingUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LotMappingUpdate) SetNillableWorkspaceID(v *int) *LotMappingUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LotMappingUpdate) SetUserID(v int) *LotMappingUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LotMappingUpdate) SetNillableUserID(v *int) *LotMappingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LotMappingUpdate) AddUserID(v int) *LotMappingUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *LotMappingUpdate) SetLotNumber(v string) *LotMappingUpdate {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *LotMappingUpdate) SetNillableLotNumber(v *string) *LotMappingUpdate {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *LotMappingUpdate) SetAccountID(v int) *LotMappingUpdate {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *LotMappingUpdate) SetNillableAccountID(v *int) *LotMappingUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *LotMappingUpdate) AddAccountID(v int) *LotMappingUpdate {
	_u.mutation.AddAccountID(v)
	return _u
}

// SetLotURL sets the "lot_url" field.
func (_u *LotMappingUpdate) SetLotURL(v string) *LotMappingUpdate {
	_u.mutation.SetLotURL(v)
	return _u
}

// SetNillableLotURL sets the "lot_url" field if the given value is not nil.
func (_u *LotMappingUpdate) SetNillableLotURL(v *string) *LotMappingUpdate {
	if v != nil {
		_u.SetLotURL(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *LotMappingUpdate) SetWorkspace(v *Workspace) *LotMappingUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the LotMappingMutation object of the builder.
func (_u *LotMappingUpdate) Mutation() *LotMappingMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *LotMappingUpdate) ClearWorkspace() *LotMappingUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LotMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LotMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LotMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LotMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LotMappingUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LotMapping.workspace"`)
	}
	return nil
}

func (_u *LotMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lotmapping.Table, lotmapping.Columns, sqlgraph.NewFieldSpec(lotmapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(lotmapping.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(lotmapping.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(lotmapping.FieldLotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(lotmapping.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(lotmapping.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotURL(); ok {
		_spec.SetField(lotmapping.FieldLotURL, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lotmapping.WorkspaceTable,
			Columns: []string{lotmapping.WorkspaceColumn},
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
			Table:   lotmapping.WorkspaceTable,
			Columns: []string{lotmapping.WorkspaceColumn},
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
			err = &NotFoundError{lotmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LotMappingUpdateOne is the builder for updating a single LotMapping entity.
type LotMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LotMappingMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *LotMappingUpdateOne) SetWorkspaceID(v int) *LotMappingUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *LotMappingUpdateOne) SetNillableWorkspaceID(v *int) *LotMappingUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LotMappingUpdateOne) SetUserID(v int) *LotMappingUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LotMappingUpdateOne) SetNillableUserID(v *int) *LotMappingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *LotMappingUpdateOne) AddUserID(v int) *LotMappingUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetLotNumber sets the "lot_number" field.
func (_u *LotMappingUpdateOne) SetLotNumber(v string) *LotMappingUpdateOne {
	_u.mutation.SetLotNumber(v)
	return _u
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_u *LotMappingUpdateOne) SetNillableLotNumber(v *string) *LotMappingUpdateOne {
	if v != nil {
		_u.SetLotNumber(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *LotMappingUpdateOne) SetAccountID(v int) *LotMappingUpdateOne {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *LotMappingUpdateOne) SetNillableAccountID(v *int) *LotMappingUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *LotMappingUpdateOne) AddAccountID(v int) *LotMappingUpdateOne {
	_u.mutation.AddAccountID(v)
	return _u
}

// SetLotURL sets the "lot_url" field.
func (_u *LotMappingUpdateOne) SetLotURL(v string) *LotMappingUpdateOne {
	_u.mutation.SetLotURL(v)
	return _u
}

// SetNillableLotURL sets the "lot_url" field if the given value is not nil.
func (_u *LotMappingUpdateOne) SetNillableLotURL(v *string) *LotMappingUpdateOne {
	if v != nil {
		_u.SetLotURL(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *LotMappingUpdateOne) SetWorkspace(v *Workspace) *LotMappingUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the LotMappingMutation object of the builder.
func (_u *LotMappingUpdateOne) Mutation() *LotMappingMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *LotMappingUpdateOne) ClearWorkspace() *LotMappingUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the LotMappingUpdate builder.
func (_u *LotMappingUpdateOne) Where(ps ...predicate.LotMapping) *LotMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LotMappingUpdateOne) Select(field string, fields ...string) *LotMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LotMapping entity.
func (_u *LotMappingUpdateOne) Save(ctx context.Context) (*LotMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LotMappingUpdateOne) SaveX(ctx context.Context) *LotMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LotMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LotMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LotMappingUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LotMapping.workspace"`)
	}
	return nil
}

func (_u *LotMappingUpdateOne) sqlSave(ctx context.Context) (_node *LotMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lotmapping.Table, lotmapping.Columns, sqlgraph.NewFieldSpec(lotmapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LotMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lotmapping.FieldID)
		for _, f := range fields {
			if !lotmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lotmapping.FieldID {
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
		_spec.SetField(lotmapping.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(lotmapping.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotNumber(); ok {
		_spec.SetField(lotmapping.FieldLotNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(lotmapping.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(lotmapping.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LotURL(); ok {
		_spec.SetField(lotmapping.FieldLotURL, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lotmapping.WorkspaceTable,
			Columns: []string{lotmapping.WorkspaceColumn},
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
			Table:   lotmapping.WorkspaceTable,
			Columns: []string{lotmapping.WorkspaceColumn},
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
	_node = &LotMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lotmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
