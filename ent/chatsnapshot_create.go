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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatSnapshotCreate is the builder for creating a ChatSnapshot entity.
type ChatSnapshotCreate struct {
	config
	mutation *ChatSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ChatSnapshotCreate) SetWorkspaceID(v int) *ChatSnapshotCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChatSnapshotCreate) SetUserID(v int) *ChatSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *ChatSnapshotCreate) SetChatID(v string) *ChatSnapshotCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetPeerName sets the "peer_name" field.
func (_c *ChatSnapshotCreate) SetPeerName(v string) *ChatSnapshotCreate {
	_c.mutation.SetPeerName(v)
	return _c
}

// SetNillablePeerName sets the "peer_name" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillablePeerName(v *string) *ChatSnapshotCreate {
	if v != nil {
		_c.SetPeerName(*v)
	}
	return _c
}

// SetLastMessageText sets the "last_message_text" field.
func (_c *ChatSnapshotCreate) SetLastMessageText(v string) *ChatSnapshotCreate {
	_c.mutation.SetLastMessageText(v)
	return _c
}

// SetNillableLastMessageText sets the "last_message_text" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableLastMessageText(v *string) *ChatSnapshotCreate {
	if v != nil {
		_c.SetLastMessageText(*v)
	}
	return _c
}

// SetLastMessageTime sets the "last_message_time" field.
func (_c *ChatSnapshotCreate) SetLastMessageTime(v time.Time) *ChatSnapshotCreate {
	_c.mutation.SetLastMessageTime(v)
	return _c
}

// SetNillableLastMessageTime sets the "last_message_time" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableLastMessageTime(v *time.Time) *ChatSnapshotCreate {
	if v != nil {
		_c.SetLastMessageTime(*v)
	}
	return _c
}

// SetUnread sets the "unread" field.
func (_c *ChatSnapshotCreate) SetUnread(v bool) *ChatSnapshotCreate {
	_c.mutation.SetUnread(v)
	return _c
}

// SetNillableUnread sets the "unread" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableUnread(v *bool) *ChatSnapshotCreate {
	if v != nil {
		_c.SetUnread(*v)
	}
	return _c
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (_c *ChatSnapshotCreate) SetAdminUnreadCount(v int) *ChatSnapshotCreate {
	_c.mutation.SetAdminUnreadCount(v)
	return _c
}

// SetNillableAdminUnreadCount sets the "admin_unread_count" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableAdminUnreadCount(v *int) *ChatSnapshotCreate {
	if v != nil {
		_c.SetAdminUnreadCount(*v)
	}
	return _c
}

// SetAdminRequested sets the "admin_requested" field.
func (_c *ChatSnapshotCreate) SetAdminRequested(v bool) *ChatSnapshotCreate {
	_c.mutation.SetAdminRequested(v)
	return _c
}

// SetNillableAdminRequested sets the "admin_requested" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableAdminRequested(v *bool) *ChatSnapshotCreate {
	if v != nil {
		_c.SetAdminRequested(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatSnapshotCreate) SetUpdatedAt(v time.Time) *ChatSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *ChatSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ChatSnapshotCreate) SetWorkspace(v *Workspace) *ChatSnapshotCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatSnapshotMutation object of the builder.
func (_c *ChatSnapshotCreate) Mutation() *ChatSnapshotMutation {
	return _c.mutation
}

// Save creates the ChatSnapshot in the database.
func (_c *ChatSnapshotCreate) Save(ctx context.Context) (*ChatSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSnapshotCreate) SaveX(ctx context.Context) *ChatSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSnapshotCreate) defaults() {
	if _, ok := _c.mutation.PeerName(); !ok {
		v := chatsnapshot.DefaultPeerName
		_c.mutation.SetPeerName(v)
	}
	if _, ok := _c.mutation.LastMessageText(); !ok {
		v := chatsnapshot.DefaultLastMessageText
		_c.mutation.SetLastMessageText(v)
	}
	if _, ok := _c.mutation.Unread(); !ok {
		v := chatsnapshot.DefaultUnread
		_c.mutation.SetUnread(v)
	}
	if _, ok := _c.mutation.AdminUnreadCount(); !ok {
		v := chatsnapshot.DefaultAdminUnreadCount
		_c.mutation.SetAdminUnreadCount(v)
	}
	if _, ok := _c.mutation.AdminRequested(); !ok {
		v := chatsnapshot.DefaultAdminRequested
		_c.mutation.SetAdminRequested(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatsnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSnapshotCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ChatSnapshot.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatSnapshot.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatSnapshot.chat_id"`)}
	}
	if _, ok := _c.mutation.PeerName(); !ok {
		return &ValidationError{Name: "peer_name", err: errors.New(`ent: missing required field "ChatSnapshot.peer_name"`)}
	}
	if _, ok := _c.mutation.LastMessageText(); !ok {
		return &ValidationError{Name: "last_message_text", err: errors.New(`ent: missing required field "ChatSnapshot.last_message_text"`)}
	}
	if _, ok := _c.mutation.Unread(); !ok {
		return &ValidationError{Name: "unread", err: errors.New(`ent: missing required field "ChatSnapshot.unread"`)}
	}
	if _, ok := _c.mutation.AdminUnreadCount(); !ok {
		return &ValidationError{Name: "admin_unread_count", err: errors.New(`ent: missing required field "ChatSnapshot.admin_unread_count"`)}
	}
	if _, ok := _c.mutation.AdminRequested(); !ok {
		return &ValidationError{Name: "admin_requested", err: errors.New(`ent: missing required field "ChatSnapshot.admin_requested"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatSnapshot.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ChatSnapshot.workspace"`)}
	}
	return nil
}

func (_c *ChatSnapshotCreate) sqlSave(ctx context.Context) (*ChatSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSnapshotCreate) createSpec() (*ChatSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsnapshot.Table, sqlgraph.NewFieldSpec(chatsnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chatsnapshot.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(chatsnapshot.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.PeerName(); ok {
		_spec.SetField(chatsnapshot.FieldPeerName, field.TypeString, value)
		_node.PeerName = value
	}
	if value, ok := _c.mutation.LastMessageText(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageText, field.TypeString, value)
		_node.LastMessageText = value
	}
	if value, ok := _c.mutation.LastMessageTime(); ok {
		_spec.SetField(chatsnapshot.FieldLastMessageTime, field.TypeTime, value)
		_node.LastMessageTime = &value
	}
	if value, ok := _c.mutation.Unread(); ok {
		_spec.SetField(chatsnapshot.FieldUnread, field.TypeBool, value)
		_node.Unread = value
	}
	if value, ok := _c.mutation.AdminUnreadCount(); ok {
		_spec.SetField(chatsnapshot.FieldAdminUnreadCount, field.TypeInt, value)
		_node.AdminUnreadCount = value
	}
	if value, ok := _c.mutation.AdminRequested(); ok {
		_spec.SetField(chatsnapshot.FieldAdminRequested, field.TypeBool, value)
		_node.AdminRequested = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSnapshot.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSnapshotUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *ChatSnapshotUpsertOne {
	_c.conflict = opts
	return &ChatSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSnapshotCreate) OnConflictColumns(columns ...string) *ChatSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// ChatSnapshotUpsertOne is the builder for "upsert"-ing
	//  one ChatSnapshot node.
	ChatSnapshotUpsertOne struct {
		create *ChatSnapshotCreate
	}

	// ChatSnapshotUpsert is the "OnConflict" setter.
	ChatSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatSnapshotUpsert) SetWorkspaceID(v int) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateWorkspaceID() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChatSnapshotUpsert) SetUserID(v int) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateUserID() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ChatSnapshotUpsert) AddUserID(v int) *ChatSnapshotUpsert {
	u.Add(chatsnapshot.FieldUserID, v)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatSnapshotUpsert) SetChatID(v string) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateChatID() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldChatID)
	return u
}

// SetPeerName sets the "peer_name" field.
func (u *ChatSnapshotUpsert) SetPeerName(v string) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldPeerName, v)
	return u
}

// UpdatePeerName sets the "peer_name" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdatePeerName() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldPeerName)
	return u
}

// SetLastMessageText sets the "last_message_text" field.
func (u *ChatSnapshotUpsert) SetLastMessageText(v string) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldLastMessageText, v)
	return u
}

// UpdateLastMessageText sets the "last_message_text" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateLastMessageText() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldLastMessageText)
	return u
}

// SetLastMessageTime sets the "last_message_time" field.
func (u *ChatSnapshotUpsert) SetLastMessageTime(v time.Time) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldLastMessageTime, v)
	return u
}

// UpdateLastMessageTime sets the "last_message_time" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateLastMessageTime() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldLastMessageTime)
	return u
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (u *ChatSnapshotUpsert) ClearLastMessageTime() *ChatSnapshotUpsert {
	u.SetNull(chatsnapshot.FieldLastMessageTime)
	return u
}

// SetUnread sets the "unread" field.
func (u *ChatSnapshotUpsert) SetUnread(v bool) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldUnread, v)
	return u
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateUnread() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldUnread)
	return u
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (u *ChatSnapshotUpsert) SetAdminUnreadCount(v int) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldAdminUnreadCount, v)
	return u
}

// UpdateAdminUnreadCount sets the "admin_unread_count" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateAdminUnreadCount() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldAdminUnreadCount)
	return u
}

// AddAdminUnreadCount adds v to the "admin_unread_count" field.
func (u *ChatSnapshotUpsert) AddAdminUnreadCount(v int) *ChatSnapshotUpsert {
	u.Add(chatsnapshot.FieldAdminUnreadCount, v)
	return u
}

// SetAdminRequested sets the "admin_requested" field.
func (u *ChatSnapshotUpsert) SetAdminRequested(v bool) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldAdminRequested, v)
	return u
}

// UpdateAdminRequested sets the "admin_requested" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateAdminRequested() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldAdminRequested)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSnapshotUpsert) SetUpdatedAt(v time.Time) *ChatSnapshotUpsert {
	u.Set(chatsnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSnapshotUpsert) UpdateUpdatedAt() *ChatSnapshotUpsert {
	u.SetExcluded(chatsnapshot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatSnapshotUpsertOne) UpdateNewValues() *ChatSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatSnapshotUpsertOne) Ignore() *ChatSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSnapshotUpsertOne) DoNothing() *ChatSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSnapshotCreate.OnConflict
// documentation for more info.
func (u *ChatSnapshotUpsertOne) Update(set func(*ChatSnapshotUpsert)) *ChatSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatSnapshotUpsertOne) SetWorkspaceID(v int) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateWorkspaceID() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ChatSnapshotUpsertOne) SetUserID(v int) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ChatSnapshotUpsertOne) AddUserID(v int) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateUserID() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ChatSnapshotUpsertOne) SetChatID(v string) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateChatID() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateChatID()
	})
}

// SetPeerName sets the "peer_name" field.
func (u *ChatSnapshotUpsertOne) SetPeerName(v string) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetPeerName(v)
	})
}

// UpdatePeerName sets the "peer_name" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdatePeerName() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdatePeerName()
	})
}

// SetLastMessageText sets the "last_message_text" field.
func (u *ChatSnapshotUpsertOne) SetLastMessageText(v string) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetLastMessageText(v)
	})
}

// UpdateLastMessageText sets the "last_message_text" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateLastMessageText() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateLastMessageText()
	})
}

// SetLastMessageTime sets the "last_message_time" field.
func (u *ChatSnapshotUpsertOne) SetLastMessageTime(v time.Time) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetLastMessageTime(v)
	})
}

// UpdateLastMessageTime sets the "last_message_time" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateLastMessageTime() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateLastMessageTime()
	})
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (u *ChatSnapshotUpsertOne) ClearLastMessageTime() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.ClearLastMessageTime()
	})
}

// SetUnread sets the "unread" field.
func (u *ChatSnapshotUpsertOne) SetUnread(v bool) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUnread(v)
	})
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateUnread() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUnread()
	})
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (u *ChatSnapshotUpsertOne) SetAdminUnreadCount(v int) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetAdminUnreadCount(v)
	})
}

// AddAdminUnreadCount adds v to the "admin_unread_count" field.
func (u *ChatSnapshotUpsertOne) AddAdminUnreadCount(v int) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.AddAdminUnreadCount(v)
	})
}

// UpdateAdminUnreadCount sets the "admin_unread_count" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateAdminUnreadCount() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateAdminUnreadCount()
	})
}

// SetAdminRequested sets the "admin_requested" field.
func (u *ChatSnapshotUpsertOne) SetAdminRequested(v bool) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetAdminRequested(v)
	})
}

// UpdateAdminRequested sets the "admin_requested" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateAdminRequested() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateAdminRequested()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSnapshotUpsertOne) SetUpdatedAt(v time.Time) *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSnapshotUpsertOne) UpdateUpdatedAt() *ChatSnapshotUpsertOne {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatSnapshotCreateBulk is the builder for creating many ChatSnapshot entities in bulk.
type ChatSnapshotCreateBulk struct {
	config
	err      error
	builders []*ChatSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatSnapshot entities in the database.
func (_c *ChatSnapshotCreateBulk) Save(ctx context.Context) ([]*ChatSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatSnapshotCreateBulk) SaveX(ctx context.Context) []*ChatSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSnapshotUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatSnapshotUpsertBulk {
	_c.conflict = opts
	return &ChatSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSnapshotCreateBulk) OnConflictColumns(columns ...string) *ChatSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSnapshotUpsertBulk{
		create: _c,
	}
}

// ChatSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatSnapshot nodes.
type ChatSnapshotUpsertBulk struct {
	create *ChatSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatSnapshotUpsertBulk) UpdateNewValues() *ChatSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatSnapshotUpsertBulk) Ignore() *ChatSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSnapshotUpsertBulk) DoNothing() *ChatSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *ChatSnapshotUpsertBulk) Update(set func(*ChatSnapshotUpsert)) *ChatSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatSnapshotUpsertBulk) SetWorkspaceID(v int) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateWorkspaceID() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ChatSnapshotUpsertBulk) SetUserID(v int) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ChatSnapshotUpsertBulk) AddUserID(v int) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateUserID() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ChatSnapshotUpsertBulk) SetChatID(v string) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateChatID() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateChatID()
	})
}

// SetPeerName sets the "peer_name" field.
func (u *ChatSnapshotUpsertBulk) SetPeerName(v string) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetPeerName(v)
	})
}

// UpdatePeerName sets the "peer_name" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdatePeerName() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdatePeerName()
	})
}

// SetLastMessageText sets the "last_message_text" field.
func (u *ChatSnapshotUpsertBulk) SetLastMessageText(v string) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetLastMessageText(v)
	})
}

// UpdateLastMessageText sets the "last_message_text" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateLastMessageText() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateLastMessageText()
	})
}

// SetLastMessageTime sets the "last_message_time" field.
func (u *ChatSnapshotUpsertBulk) SetLastMessageTime(v time.Time) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetLastMessageTime(v)
	})
}

// UpdateLastMessageTime sets the "last_message_time" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateLastMessageTime() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateLastMessageTime()
	})
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (u *ChatSnapshotUpsertBulk) ClearLastMessageTime() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.ClearLastMessageTime()
	})
}

// SetUnread sets the "unread" field.
func (u *ChatSnapshotUpsertBulk) SetUnread(v bool) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUnread(v)
	})
}

// UpdateUnread sets the "unread" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateUnread() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUnread()
	})
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (u *ChatSnapshotUpsertBulk) SetAdminUnreadCount(v int) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetAdminUnreadCount(v)
	})
}

// AddAdminUnreadCount adds v to the "admin_unread_count" field.
func (u *ChatSnapshotUpsertBulk) AddAdminUnreadCount(v int) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.AddAdminUnreadCount(v)
	})
}

// UpdateAdminUnreadCount sets the "admin_unread_count" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateAdminUnreadCount() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateAdminUnreadCount()
	})
}

// SetAdminRequested sets the "admin_requested" field.
func (u *ChatSnapshotUpsertBulk) SetAdminRequested(v bool) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetAdminRequested(v)
	})
}

// UpdateAdminRequested sets the "admin_requested" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateAdminRequested() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateAdminRequested()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatSnapshotUpsertBulk) UpdateUpdatedAt() *ChatSnapshotUpsertBulk {
	return u.Update(func(s *ChatSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
