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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// ChatOutboxCreate is the builder for creating a ChatOutbox entity.
type ChatOutboxCreate struct {
	config
	mutation *ChatOutboxMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ChatOutboxCreate) SetWorkspaceID(v int) *ChatOutboxCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChatOutboxCreate) SetUserID(v int) *ChatOutboxCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *ChatOutboxCreate) SetChatID(v string) *ChatOutboxCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ChatOutboxCreate) SetText(v string) *ChatOutboxCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatOutboxCreate) SetStatus(v chatoutbox.Status) *ChatOutboxCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatOutboxCreate) SetNillableStatus(v *chatoutbox.Status) *ChatOutboxCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ChatOutboxCreate) SetAttempts(v int) *ChatOutboxCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ChatOutboxCreate) SetNillableAttempts(v *int) *ChatOutboxCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ChatOutboxCreate) SetLastError(v string) *ChatOutboxCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ChatOutboxCreate) SetNillableLastError(v *string) *ChatOutboxCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatOutboxCreate) SetCreatedAt(v time.Time) *ChatOutboxCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatOutboxCreate) SetNillableCreatedAt(v *time.Time) *ChatOutboxCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ChatOutboxCreate) SetSentAt(v time.Time) *ChatOutboxCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ChatOutboxCreate) SetNillableSentAt(v *time.Time) *ChatOutboxCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ChatOutboxCreate) SetWorkspace(v *Workspace) *ChatOutboxCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ChatOutboxMutation object of the builder.
func (_c *ChatOutboxCreate) Mutation() *ChatOutboxMutation {
	return _c.mutation
}

// Save creates the ChatOutbox in the database.
func (_c *ChatOutboxCreate) Save(ctx context.Context) (*ChatOutbox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatOutboxCreate) SaveX(ctx context.Context) *ChatOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatOutboxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatOutboxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatOutboxCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := chatoutbox.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := chatoutbox.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatoutbox.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatOutboxCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ChatOutbox.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChatOutbox.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "ChatOutbox.chat_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ChatOutbox.text"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChatOutbox.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatoutbox.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChatOutbox.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ChatOutbox.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatOutbox.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ChatOutbox.workspace"`)}
	}
	return nil
}

func (_c *ChatOutboxCreate) sqlSave(ctx context.Context) (*ChatOutbox, error) {
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

func (_c *ChatOutboxCreate) createSpec() (*ChatOutbox, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatOutbox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatoutbox.Table, sqlgraph.NewFieldSpec(chatoutbox.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(chatoutbox.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(chatoutbox.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(chatoutbox.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatoutbox.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(chatoutbox.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(chatoutbox.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatoutbox.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(chatoutbox.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatOutbox.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatOutboxUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatOutboxCreate) OnConflict(opts ...sql.ConflictOption) *ChatOutboxUpsertOne {
	_c.conflict = opts
	return &ChatOutboxUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatOutboxCreate) OnConflictColumns(columns ...string) *ChatOutboxUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatOutboxUpsertOne{
		create: _c,
	}
}

type (
	// ChatOutboxUpsertOne is the builder for "upsert"-ing
	//  one ChatOutbox node.
	ChatOutboxUpsertOne struct {
		create *ChatOutboxCreate
	}

	// ChatOutboxUpsert is the "OnConflict" setter.
	ChatOutboxUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatOutboxUpsert) SetWorkspaceID(v int) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateWorkspaceID() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ChatOutboxUpsert) SetUserID(v int) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateUserID() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ChatOutboxUpsert) AddUserID(v int) *ChatOutboxUpsert {
	u.Add(chatoutbox.FieldUserID, v)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *ChatOutboxUpsert) SetChatID(v string) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateChatID() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldChatID)
	return u
}

// SetText sets the "text" field.
func (u *ChatOutboxUpsert) SetText(v string) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateText() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldText)
	return u
}

// SetStatus sets the "status" field.
func (u *ChatOutboxUpsert) SetStatus(v chatoutbox.Status) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateStatus() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *ChatOutboxUpsert) SetAttempts(v int) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateAttempts() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *ChatOutboxUpsert) AddAttempts(v int) *ChatOutboxUpsert {
	u.Add(chatoutbox.FieldAttempts, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ChatOutboxUpsert) SetLastError(v string) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateLastError() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ChatOutboxUpsert) ClearLastError() *ChatOutboxUpsert {
	u.SetNull(chatoutbox.FieldLastError)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *ChatOutboxUpsert) SetSentAt(v time.Time) *ChatOutboxUpsert {
	u.Set(chatoutbox.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *ChatOutboxUpsert) UpdateSentAt() *ChatOutboxUpsert {
	u.SetExcluded(chatoutbox.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *ChatOutboxUpsert) ClearSentAt() *ChatOutboxUpsert {
	u.SetNull(chatoutbox.FieldSentAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatOutboxUpsertOne) UpdateNewValues() *ChatOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatoutbox.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatOutboxUpsertOne) Ignore() *ChatOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatOutboxUpsertOne) DoNothing() *ChatOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatOutboxCreate.OnConflict
// documentation for more info.
func (u *ChatOutboxUpsertOne) Update(set func(*ChatOutboxUpsert)) *ChatOutboxUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatOutboxUpsertOne) SetWorkspaceID(v int) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateWorkspaceID() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ChatOutboxUpsertOne) SetUserID(v int) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ChatOutboxUpsertOne) AddUserID(v int) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateUserID() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ChatOutboxUpsertOne) SetChatID(v string) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateChatID() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateChatID()
	})
}

// SetText sets the "text" field.
func (u *ChatOutboxUpsertOne) SetText(v string) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateText() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateText()
	})
}

// SetStatus sets the "status" field.
func (u *ChatOutboxUpsertOne) SetStatus(v chatoutbox.Status) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateStatus() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ChatOutboxUpsertOne) SetAttempts(v int) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ChatOutboxUpsertOne) AddAttempts(v int) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateAttempts() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *ChatOutboxUpsertOne) SetLastError(v string) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateLastError() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ChatOutboxUpsertOne) ClearLastError() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.ClearLastError()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *ChatOutboxUpsertOne) SetSentAt(v time.Time) *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *ChatOutboxUpsertOne) UpdateSentAt() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *ChatOutboxUpsertOne) ClearSentAt() *ChatOutboxUpsertOne {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *ChatOutboxUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatOutboxCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatOutboxUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatOutboxUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatOutboxUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatOutboxCreateBulk is the builder for creating many ChatOutbox entities in bulk.
type ChatOutboxCreateBulk struct {
	config
	err      error
	builders []*ChatOutboxCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatOutbox entities in the database.
func (_c *ChatOutboxCreateBulk) Save(ctx context.Context) ([]*ChatOutbox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatOutbox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatOutboxMutation)
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
func (_c *ChatOutboxCreateBulk) SaveX(ctx context.Context) []*ChatOutbox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatOutboxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatOutboxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatOutbox.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatOutboxUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatOutboxCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatOutboxUpsertBulk {
	_c.conflict = opts
	return &ChatOutboxUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatOutboxCreateBulk) OnConflictColumns(columns ...string) *ChatOutboxUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatOutboxUpsertBulk{
		create: _c,
	}
}

// ChatOutboxUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatOutbox nodes.
type ChatOutboxUpsertBulk struct {
	create *ChatOutboxCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ChatOutboxUpsertBulk) UpdateNewValues() *ChatOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatoutbox.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatOutbox.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatOutboxUpsertBulk) Ignore() *ChatOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatOutboxUpsertBulk) DoNothing() *ChatOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatOutboxCreateBulk.OnConflict
// documentation for more info.
func (u *ChatOutboxUpsertBulk) Update(set func(*ChatOutboxUpsert)) *ChatOutboxUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatOutboxUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ChatOutboxUpsertBulk) SetWorkspaceID(v int) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateWorkspaceID() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ChatOutboxUpsertBulk) SetUserID(v int) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ChatOutboxUpsertBulk) AddUserID(v int) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateUserID() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *ChatOutboxUpsertBulk) SetChatID(v string) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateChatID() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateChatID()
	})
}

// SetText sets the "text" field.
func (u *ChatOutboxUpsertBulk) SetText(v string) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateText() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateText()
	})
}

// SetStatus sets the "status" field.
func (u *ChatOutboxUpsertBulk) SetStatus(v chatoutbox.Status) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateStatus() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ChatOutboxUpsertBulk) SetAttempts(v int) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ChatOutboxUpsertBulk) AddAttempts(v int) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateAttempts() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *ChatOutboxUpsertBulk) SetLastError(v string) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateLastError() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ChatOutboxUpsertBulk) ClearLastError() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.ClearLastError()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *ChatOutboxUpsertBulk) SetSentAt(v time.Time) *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *ChatOutboxUpsertBulk) UpdateSentAt() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *ChatOutboxUpsertBulk) ClearSentAt() *ChatOutboxUpsertBulk {
	return u.Update(func(s *ChatOutboxUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *ChatOutboxUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatOutboxCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatOutboxCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatOutboxUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
