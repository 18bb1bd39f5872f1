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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatOutboxUpdate is the builder for updating ChatOutbox entities.
type ChatOutboxUpdate struct {
	config
	hooks    []Hook
	mutation *ChatOutboxMutation
}

// Where appends a list predicates to the ChatOutboxUpdate builder.
func (_u *ChatOutboxUpdate) Where(ps ...predicate.ChatOutbox) *ChatOutboxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatOutboxUpdate) SetWorkspaceID(v int) *ChatOutboxUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableWorkspaceID(v *int) *ChatOutboxUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatOutboxUpdate) SetUserID(v int) *ChatOutboxUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableUserID(v *int) *ChatOutboxUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatOutboxUpdate) AddUserID(v int) *ChatOutboxUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatOutboxUpdate) SetChatID(v string) *ChatOutboxUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableChatID(v *string) *ChatOutboxUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatOutboxUpdate) SetText(v string) *ChatOutboxUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableText(v *string) *ChatOutboxUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatOutboxUpdate) SetStatus(v chatoutbox.Status) *ChatOutboxUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableStatus(v *chatoutbox.Status) *ChatOutboxUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ChatOutboxUpdate) SetAttempts(v int) *ChatOutboxUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableAttempts(v *int) *ChatOutboxUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ChatOutboxUpdate) AddAttempts(v int) *ChatOutboxUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ChatOutboxUpdate) SetLastError(v string) *ChatOutboxUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableLastError(v *string) *ChatOutboxUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ChatOutboxUpdate) ClearLastError() *ChatOutboxUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ChatOutboxUpdate) SetSentAt(v time.Time) *ChatOutboxUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ChatOutboxUpdate) SetNillableSentAt(v *time.Time) *ChatOutboxUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ChatOutboxUpdate) ClearSentAt() *ChatOutboxUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatOutboxUpdate) SetWorkspace(v *Workspace) *ChatOutboxUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatOutboxMutation object of the builder.
func (_u *ChatOutboxUpdate) Mutation() *ChatOutboxMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatOutboxUpdate) ClearWorkspace() *ChatOutboxUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatOutboxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatOutboxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatOutboxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatOutboxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatOutboxUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatoutbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatOutbox.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatOutbox.workspace"`)
	}
	return nil
}

func (_u *ChatOutboxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatoutbox.Table, chatoutbox.Columns, sqlgraph.NewFieldSpec(chatoutbox.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatoutbox.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatoutbox.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatoutbox.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatoutbox.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatoutbox.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(chatoutbox.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(chatoutbox.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(chatoutbox.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(chatoutbox.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(chatoutbox.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(chatoutbox.FieldSentAt, field.TypeTime)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatoutbox.WorkspaceTable,
			Columns: []string{chatoutbox.WorkspaceColumn},
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
			Table:   chatoutbox.WorkspaceTable,
			Columns: []string{chatoutbox.WorkspaceColumn},
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
			err = &NotFoundError{chatoutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatOutboxUpdateOne is the builder for updating a single ChatOutbox entity.
type ChatOutboxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatOutboxMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatOutboxUpdateOne) SetWorkspaceID(v int) *ChatOutboxUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableWorkspaceID(v *int) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatOutboxUpdateOne) SetUserID(v int) *ChatOutboxUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableUserID(v *int) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatOutboxUpdateOne) AddUserID(v int) *ChatOutboxUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatOutboxUpdateOne) SetChatID(v string) *ChatOutboxUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableChatID(v *string) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatOutboxUpdateOne) SetText(v string) *ChatOutboxUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableText(v *string) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatOutboxUpdateOne) SetStatus(v chatoutbox.Status) *ChatOutboxUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableStatus(v *chatoutbox.Status) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ChatOutboxUpdateOne) SetAttempts(v int) *ChatOutboxUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableAttempts(v *int) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ChatOutboxUpdateOne) AddAttempts(v int) *ChatOutboxUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ChatOutboxUpdateOne) SetLastError(v string) *ChatOutboxUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableLastError(v *string) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ChatOutboxUpdateOne) ClearLastError() *ChatOutboxUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ChatOutboxUpdateOne) SetSentAt(v time.Time) *ChatOutboxUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ChatOutboxUpdateOne) SetNillableSentAt(v *time.Time) *ChatOutboxUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ChatOutboxUpdateOne) ClearSentAt() *ChatOutboxUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatOutboxUpdateOne) SetWorkspace(v *Workspace) *ChatOutboxUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatOutboxMutation object of the builder.
func (_u *ChatOutboxUpdateOne) Mutation() *ChatOutboxMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatOutboxUpdateOne) ClearWorkspace() *ChatOutboxUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ChatOutboxUpdate builder.
func (_u *ChatOutboxUpdateOne) Where(ps ...predicate.ChatOutbox) *ChatOutboxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatOutboxUpdateOne) Select(field string, fields ...string) *ChatOutboxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatOutbox entity.
func (_u *ChatOutboxUpdateOne) Save(ctx context.Context) (*ChatOutbox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatOutboxUpdateOne) SaveX(ctx context.Context) *ChatOutbox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatOutboxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatOutboxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatOutboxUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := chatoutbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatOutbox.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatOutbox.workspace"`)
	}
	return nil
}

func (_u *ChatOutboxUpdateOne) sqlSave(ctx context.Context) (_node *ChatOutbox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatoutbox.Table, chatoutbox.Columns, sqlgraph.NewFieldSpec(chatoutbox.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatOutbox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatoutbox.FieldID)
		for _, f := range fields {
			if !chatoutbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatoutbox.FieldID {
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
		_spec.SetField(chatoutbox.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatoutbox.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatoutbox.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatoutbox.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatoutbox.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(chatoutbox.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(chatoutbox.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(chatoutbox.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(chatoutbox.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(chatoutbox.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(chatoutbox.FieldSentAt, field.TypeTime)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatoutbox.WorkspaceTable,
			Columns: []string{chatoutbox.WorkspaceColumn},
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
			Table:   chatoutbox.WorkspaceTable,
			Columns: []string{chatoutbox.WorkspaceColumn},
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
	_node = &ChatOutbox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatoutbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
