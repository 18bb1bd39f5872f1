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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatMessageUpdate) SetWorkspaceID(v int) *ChatMessageUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableWorkspaceID(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatMessageUpdate) SetUserID(v int) *ChatMessageUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableUserID(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatMessageUpdate) AddUserID(v int) *ChatMessageUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatMessageUpdate) SetChatID(v string) *ChatMessageUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableChatID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ChatMessageUpdate) SetMessageID(v string) *ChatMessageUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableMessageID(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ChatMessageUpdate) SetAuthor(v string) *ChatMessageUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableAuthor(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdate) SetText(v string) *ChatMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableText(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSentTime sets the "sent_time" field.
func (_u *ChatMessageUpdate) SetSentTime(v time.Time) *ChatMessageUpdate {
	_u.mutation.SetSentTime(v)
	return _u
}

// SetNillableSentTime sets the "sent_time" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSentTime(v *time.Time) *ChatMessageUpdate {
	if v != nil {
		_u.SetSentTime(*v)
	}
	return _u
}

// ClearSentTime clears the value of the "sent_time" field.
func (_u *ChatMessageUpdate) ClearSentTime() *ChatMessageUpdate {
	_u.mutation.ClearSentTime()
	return _u
}

// SetByBot sets the "by_bot" field.
func (_u *ChatMessageUpdate) SetByBot(v bool) *ChatMessageUpdate {
	_u.mutation.SetByBot(v)
	return _u
}

// SetNillableByBot sets the "by_bot" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableByBot(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetByBot(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ChatMessageUpdate) SetType(v string) *ChatMessageUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableType(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatMessageUpdate) SetWorkspace(v *Workspace) *ChatMessageUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatMessageUpdate) ClearWorkspace() *ChatMessageUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.workspace"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatmessage.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatmessage.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatmessage.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(chatmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(chatmessage.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentTime(); ok {
		_spec.SetField(chatmessage.FieldSentTime, field.TypeTime, value)
	}
	if _u.mutation.SentTimeCleared() {
		_spec.ClearField(chatmessage.FieldSentTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ByBot(); ok {
		_spec.SetField(chatmessage.FieldByBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chatmessage.FieldType, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.WorkspaceTable,
			Columns: []string{chatmessage.WorkspaceColumn},
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
			Table:   chatmessage.WorkspaceTable,
			Columns: []string{chatmessage.WorkspaceColumn},
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
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatMessageUpdateOne) SetWorkspaceID(v int) *ChatMessageUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableWorkspaceID(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatMessageUpdateOne) SetUserID(v int) *ChatMessageUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableUserID(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatMessageUpdateOne) AddUserID(v int) *ChatMessageUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatMessageUpdateOne) SetChatID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableChatID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ChatMessageUpdateOne) SetMessageID(v string) *ChatMessageUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableMessageID(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *ChatMessageUpdateOne) SetAuthor(v string) *ChatMessageUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableAuthor(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChatMessageUpdateOne) SetText(v string) *ChatMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableText(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSentTime sets the "sent_time" field.
func (_u *ChatMessageUpdateOne) SetSentTime(v time.Time) *ChatMessageUpdateOne {
	_u.mutation.SetSentTime(v)
	return _u
}

// SetNillableSentTime sets the "sent_time" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSentTime(v *time.Time) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSentTime(*v)
	}
	return _u
}

// ClearSentTime clears the value of the "sent_time" field.
func (_u *ChatMessageUpdateOne) ClearSentTime() *ChatMessageUpdateOne {
	_u.mutation.ClearSentTime()
	return _u
}

// SetByBot sets the "by_bot" field.
func (_u *ChatMessageUpdateOne) SetByBot(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetByBot(v)
	return _u
}

// SetNillableByBot sets the "by_bot" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableByBot(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetByBot(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ChatMessageUpdateOne) SetType(v string) *ChatMessageUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableType(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatMessageUpdateOne) SetWorkspace(v *Workspace) *ChatMessageUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatMessageUpdateOne) ClearWorkspace() *ChatMessageUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.workspace"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
		_spec.SetField(chatmessage.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatmessage.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatmessage.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(chatmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(chatmessage.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(chatmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentTime(); ok {
		_spec.SetField(chatmessage.FieldSentTime, field.TypeTime, value)
	}
	if _u.mutation.SentTimeCleared() {
		_spec.ClearField(chatmessage.FieldSentTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ByBot(); ok {
		_spec.SetField(chatmessage.FieldByBot, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(chatmessage.FieldType, field.TypeString, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatmessage.WorkspaceTable,
			Columns: []string{chatmessage.WorkspaceColumn},
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
			Table:   chatmessage.WorkspaceTable,
			Columns: []string{chatmessage.WorkspaceColumn},
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
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
