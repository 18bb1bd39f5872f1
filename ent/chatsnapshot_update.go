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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatSnapshotUpdate is the builder for updating ChatSnapshot entities.
type ChatSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ChatSnapshotMutation
}

// Where appends a list predicates to the ChatSnapshotUpdate builder.
func (_u *ChatSnapshotUpdate) Where(ps ...predicate.ChatSnapshot) *ChatSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatSnapshotUpdate) SetWorkspaceID(v int) *ChatSnapshotUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableWorkspaceID(v *int) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatSnapshotUpdate) SetUserID(v int) *ChatSnapshotUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableUserID(v *int) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatSnapshotUpdate) AddUserID(v int) *ChatSnapshotUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatSnapshotUpdate) SetChatID(v string) *ChatSnapshotUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableChatID(v *string) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetPeerName sets the "peer_name" field.
func (_u *ChatSnapshotUpdate) SetPeerName(v string) *ChatSnapshotUpdate {
	_u.mutation.SetPeerName(v)
	return _u
}

// SetNillablePeerName sets the "peer_name" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillablePeerName(v *string) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetPeerName(*v)
	}
	return _u
}

// SetLastMessageText sets the "last_message_text" field.
func (_u *ChatSnapshotUpdate) SetLastMessageText(v string) *ChatSnapshotUpdate {
	_u.mutation.SetLastMessageText(v)
	return _u
}

// SetNillableLastMessageText sets the "last_message_text" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableLastMessageText(v *string) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetLastMessageText(*v)
	}
	return _u
}

// SetLastMessageTime sets the "last_message_time" field.
func (_u *ChatSnapshotUpdate) SetLastMessageTime(v time.Time) *ChatSnapshotUpdate {
	_u.mutation.SetLastMessageTime(v)
	return _u
}

// SetNillableLastMessageTime sets the "last_message_time" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableLastMessageTime(v *time.Time) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetLastMessageTime(*v)
	}
	return _u
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (_u *ChatSnapshotUpdate) ClearLastMessageTime() *ChatSnapshotUpdate {
	_u.mutation.ClearLastMessageTime()
	return _u
}

// SetUnread sets the "unread" field.
func (_u *ChatSnapshotUpdate) SetUnread(v bool) *ChatSnapshotUpdate {
	_u.mutation.SetUnread(v)
	return _u
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableUnread(v *bool) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetUnread(*v)
	}
	return _u
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (_u *ChatSnapshotUpdate) SetAdminUnreadCount(v int) *ChatSnapshotUpdate {
	_u.mutation.ResetAdminUnreadCount()
	_u.mutation.SetAdminUnreadCount(v)
	return _u
}

// SetNillableAdminUnreadCount sets the "admin_unread_count" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableAdminUnreadCount(v *int) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetAdminUnreadCount(*v)
	}
	return _u
}

// AddAdminUnreadCount adds value to the "admin_unread_count" field.
func (_u *ChatSnapshotUpdate) AddAdminUnreadCount(v int) *ChatSnapshotUpdate {
	_u.mutation.AddAdminUnreadCount(v)
	return _u
}

// SetAdminRequested sets the "admin_requested" field.
func (_u *ChatSnapshotUpdate) SetAdminRequested(v bool) *ChatSnapshotUpdate {
	_u.mutation.SetAdminRequested(v)
	return _u
}

// SetNillableAdminRequested sets the "admin_requested" field if the given value is not nil.
func (_u *ChatSnapshotUpdate) SetNillableAdminRequested(v *bool) *ChatSnapshotUpdate {
	if v != nil {
		_u.SetAdminRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSnapshotUpdate) SetUpdatedAt(v time.Time) *ChatSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatSnapshotUpdate) SetWorkspace(v *Workspace) *ChatSnapshotUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatSnapshotMutation object of the builder.
func (_u *ChatSnapshotUpdate) Mutation() *ChatSnapshotMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatSnapshotUpdate) ClearWorkspace() *ChatSnapshotUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSnapshotUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatSnapshot.workspace"`)
	}
	return nil
}

func (_u *ChatSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsnapshot.Table, chatsnapshot.Columns, sqlgraph.NewFieldSpec(chatsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(chatsnapshot.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatsnapshot.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatsnapshot.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeerName(); ok {
		_spec.SetField(chatsnapshot.FieldPeerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageText(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageTime(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageTime, field.TypeTime, value)
	}
	if _u.mutation.LastMessageTimeCleared() {
		_spec.ClearField(chatsnapshot.FieldLastMessageTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Unread(); ok {
		_spec.SetField(chatsnapshot.FieldUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminUnreadCount(); ok {
		_spec.SetField(chatsnapshot.FieldAdminUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdminUnreadCount(); ok {
		_spec.AddField(chatsnapshot.FieldAdminUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdminRequested(); ok {
		_spec.SetField(chatsnapshot.FieldAdminRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsnapshot.WorkspaceTable,
			Columns: []string{chatsnapshot.WorkspaceColumn},
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
			Table:   chatsnapshot.WorkspaceTable,
			Columns: []string{chatsnapshot.WorkspaceColumn},
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
			err = &NotFoundError{chatsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatSnapshotUpdateOne is the builder for updating a single ChatSnapshot entity.
type ChatSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatSnapshotMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ChatSnapshotUpdateOne) SetWorkspaceID(v int) *ChatSnapshotUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableWorkspaceID(v *int) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChatSnapshotUpdateOne) SetUserID(v int) *ChatSnapshotUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableUserID(v *int) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ChatSnapshotUpdateOne) AddUserID(v int) *ChatSnapshotUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *ChatSnapshotUpdateOne) SetChatID(v string) *ChatSnapshotUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableChatID(v *string) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetPeerName sets the "peer_name" field.
func (_u *ChatSnapshotUpdateOne) SetPeerName(v string) *ChatSnapshotUpdateOne {
	_u.mutation.SetPeerName(v)
	return _u
}

// SetNillablePeerName sets the "peer_name" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillablePeerName(v *string) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetPeerName(*v)
	}
	return _u
}

// SetLastMessageText sets the "last_message_text" field.
func (_u *ChatSnapshotUpdateOne) SetLastMessageText(v string) *ChatSnapshotUpdateOne {
	_u.mutation.SetLastMessageText(v)
	return _u
}

// SetNillableLastMessageText sets the "last_message_text" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableLastMessageText(v *string) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetLastMessageText(*v)
	}
	return _u
}

// SetLastMessageTime sets the "last_message_time" field.
func (_u *ChatSnapshotUpdateOne) SetLastMessageTime(v time.Time) *ChatSnapshotUpdateOne {
	_u.mutation.SetLastMessageTime(v)
	return _u
}

// SetNillableLastMessageTime sets the "last_message_time" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableLastMessageTime(v *time.Time) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetLastMessageTime(*v)
	}
	return _u
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (_u *ChatSnapshotUpdateOne) ClearLastMessageTime() *ChatSnapshotUpdateOne {
	_u.mutation.ClearLastMessageTime()
	return _u
}

// SetUnread sets the "unread" field.
func (_u *ChatSnapshotUpdateOne) SetUnread(v bool) *ChatSnapshotUpdateOne {
	_u.mutation.SetUnread(v)
	return _u
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableUnread(v *bool) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetUnread(*v)
	}
	return _u
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (_u *ChatSnapshotUpdateOne) SetAdminUnreadCount(v int) *ChatSnapshotUpdateOne {
	_u.mutation.ResetAdminUnreadCount()
	_u.mutation.SetAdminUnreadCount(v)
	return _u
}

// SetNillableAdminUnreadCount sets the "admin_unread_count" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableAdminUnreadCount(v *int) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetAdminUnreadCount(*v)
	}
	return _u
}

// AddAdminUnreadCount adds value to the "admin_unread_count" field.
func (_u *ChatSnapshotUpdateOne) AddAdminUnreadCount(v int) *ChatSnapshotUpdateOne {
	_u.mutation.AddAdminUnreadCount(v)
	return _u
}

// SetAdminRequested sets the "admin_requested" field.
func (_u *ChatSnapshotUpdateOne) SetAdminRequested(v bool) *ChatSnapshotUpdateOne {
	_u.mutation.SetAdminRequested(v)
	return _u
}

// SetNillableAdminRequested sets the "admin_requested" field if the given value is not nil.
func (_u *ChatSnapshotUpdateOne) SetNillableAdminRequested(v *bool) *ChatSnapshotUpdateOne {
	if v != nil {
		_u.SetAdminRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatSnapshotUpdateOne) SetUpdatedAt(v time.Time) *ChatSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ChatSnapshotUpdateOne) SetWorkspace(v *Workspace) *ChatSnapshotUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatSnapshotMutation object of the builder.
func (_u *ChatSnapshotUpdateOne) Mutation() *ChatSnapshotMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ChatSnapshotUpdateOne) ClearWorkspace() *ChatSnapshotUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ChatSnapshotUpdate builder.
func (_u *ChatSnapshotUpdateOne) Where(ps ...predicate.ChatSnapshot) *ChatSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatSnapshotUpdateOne) Select(field string, fields ...string) *ChatSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatSnapshot entity.
func (_u *ChatSnapshotUpdateOne) Save(ctx context.Context) (*ChatSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatSnapshotUpdateOne) SaveX(ctx context.Context) *ChatSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatSnapshotUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatSnapshot.workspace"`)
	}
	return nil
}

func (_u *ChatSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ChatSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatsnapshot.Table, chatsnapshot.Columns, sqlgraph.NewFieldSpec(chatsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatsnapshot.FieldID)
		for _, f := range fields {
			if !chatsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatsnapshot.FieldID {
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
		_spec.SetField(chatsnapshot.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(chatsnapshot.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(chatsnapshot.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeerName(); ok {
		_spec.SetField(chatsnapshot.FieldPeerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageText(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageTime(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageTime, field.TypeTime, value)
	}
	if _u.mutation.LastMessageTimeCleared() {
		_spec.ClearField(chatsnapshot.FieldLastMessageTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Unread(); ok {
		_spec.SetField(chatsnapshot.FieldUnread, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminUnreadCount(); ok {
		_spec.SetField(chatsnapshot.FieldAdminUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdminUnreadCount(); ok {
		_spec.AddField(chatsnapshot.FieldAdminUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdminRequested(); ok {
		_spec.SetField(chatsnapshot.FieldAdminRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsnapshot.WorkspaceTable,
			Columns: []string{chatsnapshot.WorkspaceColumn},
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
			Table:   chatsnapshot.WorkspaceTable,
			Columns: []string{chatsnapshot.WorkspaceColumn},
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
	_node = &ChatSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
