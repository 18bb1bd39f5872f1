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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// AdminCallCreate is the builder for creating a AdminCall entity.
type AdminCallCreate struct {
	config
	mutation *AdminCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AdminCallCreate) SetWorkspaceID(v int) *AdminCallCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AdminCallCreate) SetUserID(v int) *AdminCallCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *AdminCallCreate) SetChatID(v string) *AdminCallCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *AdminCallCreate) SetOwner(v string) *AdminCallCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *AdminCallCreate) SetNillableOwner(v *string) *AdminCallCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetCount sets the "count" field.
func (_c *AdminCallCreate) SetCount(v int) *AdminCallCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *AdminCallCreate) SetNillableCount(v *int) *AdminCallCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetLastCalledAt sets the "last_called_at" field.
func (_c *AdminCallCreate) SetLastCalledAt(v time.Time) *AdminCallCreate {
	_c.mutation.SetLastCalledAt(v)
	return _c
}

// SetNillableLastCalledAt sets the "last_called_at" field if the given value is not nil.
func (_c *AdminCallCreate) SetNillableLastCalledAt(v *time.Time) *AdminCallCreate {
	if v != nil {
		_c.SetLastCalledAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AdminCallCreate) SetWorkspace(v *Workspace) *AdminCallCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the AdminCallMutation object of the builder.
func (_c *AdminCallCreate) Mutation() *AdminCallMutation {
	return _c.mutation
}

// Save creates the AdminCall in the database.
func (_c *AdminCallCreate) Save(ctx context.Context) (*AdminCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdminCallCreate) SaveX(ctx context.Context) *AdminCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdminCallCreate) defaults() {
	if _, ok := _c.mutation.Owner(); !ok {
		v := admincall.DefaultOwner
		_c.mutation.SetOwner(v)
	}
	if _, ok := _c.mutation.Count(); !ok {
		v := admincall.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.LastCalledAt(); !ok {
		v := admincall.DefaultLastCalledAt()
		_c.mutation.SetLastCalledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdminCallCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AdminCall.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AdminCall.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "AdminCall.chat_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "AdminCall.owner"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "AdminCall.count"`)}
	}
	if _, ok := _c.mutation.LastCalledAt(); !ok {
		return &ValidationError{Name: "last_called_at", err: errors.New(`ent: missing required field "AdminCall.last_called_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AdminCall.workspace"`)}
	}
	return nil
}

func (_c *AdminCallCreate) sqlSave(ctx context.Context) (*AdminCall, error) {
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

func (_c *AdminCallCreate) createSpec() (*AdminCall, *sqlgraph.CreateSpec) {
	var (
		_node = &AdminCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(admincall.Table, sqlgraph.NewFieldSpec(admincall.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(admincall.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(admincall.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(admincall.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(admincall.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.LastCalledAt(); ok {
		_spec.SetField(admincall.FieldLastCalledAt, field.TypeTime, value)
		_node.LastCalledAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminCall.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminCallUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminCallCreate) OnConflict(opts ...sql.ConflictOption) *AdminCallUpsertOne {
	_c.conflict = opts
	return &AdminCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminCallCreate) OnConflictColumns(columns ...string) *AdminCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminCallUpsertOne{
		create: _c,
	}
}

type (
	// AdminCallUpsertOne is the builder for "upsert"-ing
	//  one AdminCall node.
	AdminCallUpsertOne struct {
		create *AdminCallCreate
	}

	// AdminCallUpsert is the "OnConflict" setter.
	AdminCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *AdminCallUpsert) SetWorkspaceID(v int) *AdminCallUpsert {
	u.Set(admincall.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateWorkspaceID() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *AdminCallUpsert) SetUserID(v int) *AdminCallUpsert {
	u.Set(admincall.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateUserID() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *AdminCallUpsert) AddUserID(v int) *AdminCallUpsert {
	u.Add(admincall.FieldUserID, v)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *AdminCallUpsert) SetChatID(v string) *AdminCallUpsert {
	u.Set(admincall.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateChatID() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldChatID)
	return u
}

// SetOwner sets the "owner" field.
func (u *AdminCallUpsert) SetOwner(v string) *AdminCallUpsert {
	u.Set(admincall.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateOwner() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldOwner)
	return u
}

// SetCount sets the "count" field.
func (u *AdminCallUpsert) SetCount(v int) *AdminCallUpsert {
	u.Set(admincall.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateCount() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *AdminCallUpsert) AddCount(v int) *AdminCallUpsert {
	u.Add(admincall.FieldCount, v)
	return u
}

// SetLastCalledAt sets the "last_called_at" field.
func (u *AdminCallUpsert) SetLastCalledAt(v time.Time) *AdminCallUpsert {
	u.Set(admincall.FieldLastCalledAt, v)
	return u
}

// UpdateLastCalledAt sets the "last_called_at" field to the value that was provided on create.
func (u *AdminCallUpsert) UpdateLastCalledAt() *AdminCallUpsert {
	u.SetExcluded(admincall.FieldLastCalledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdminCallUpsertOne) UpdateNewValues() *AdminCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AdminCallUpsertOne) Ignore() *AdminCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminCallUpsertOne) DoNothing() *AdminCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminCallCreate.OnConflict
// documentation for more info.
func (u *AdminCallUpsertOne) Update(set func(*AdminCallUpsert)) *AdminCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AdminCallUpsertOne) SetWorkspaceID(v int) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateWorkspaceID() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *AdminCallUpsertOne) SetUserID(v int) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AdminCallUpsertOne) AddUserID(v int) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateUserID() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *AdminCallUpsertOne) SetChatID(v string) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateChatID() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateChatID()
	})
}

// SetOwner sets the "owner" field.
func (u *AdminCallUpsertOne) SetOwner(v string) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateOwner() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateOwner()
	})
}

// SetCount sets the "count" field.
func (u *AdminCallUpsertOne) SetCount(v int) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *AdminCallUpsertOne) AddCount(v int) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateCount() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateCount()
	})
}

// SetLastCalledAt sets the "last_called_at" field.
func (u *AdminCallUpsertOne) SetLastCalledAt(v time.Time) *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetLastCalledAt(v)
	})
}

// UpdateLastCalledAt sets the "last_called_at" field to the value that was provided on create.
func (u *AdminCallUpsertOne) UpdateLastCalledAt() *AdminCallUpsertOne {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateLastCalledAt()
	})
}

// Exec executes the query.
func (u *AdminCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AdminCallUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AdminCallUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AdminCallCreateBulk is the builder for creating many AdminCall entities in bulk.
type AdminCallCreateBulk struct {
	config
	err      error
	builders []*AdminCallCreate
	conflict []sql.ConflictOption
}

// Save creates the AdminCall entities in the database.
func (_c *AdminCallCreateBulk) Save(ctx context.Context) ([]*AdminCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdminCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdminCallMutation)
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
func (_c *AdminCallCreateBulk) SaveX(ctx context.Context) []*AdminCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdminCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdminCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AdminCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AdminCallUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AdminCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *AdminCallUpsertBulk {
	_c.conflict = opts
	return &AdminCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AdminCallCreateBulk) OnConflictColumns(columns ...string) *AdminCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AdminCallUpsertBulk{
		create: _c,
	}
}

// AdminCallUpsertBulk is the builder for "upsert"-ing
// a bulk of AdminCall nodes.
type AdminCallUpsertBulk struct {
	create *AdminCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AdminCallUpsertBulk) UpdateNewValues() *AdminCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AdminCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AdminCallUpsertBulk) Ignore() *AdminCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AdminCallUpsertBulk) DoNothing() *AdminCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AdminCallCreateBulk.OnConflict
// documentation for more info.
func (u *AdminCallUpsertBulk) Update(set func(*AdminCallUpsert)) *AdminCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AdminCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AdminCallUpsertBulk) SetWorkspaceID(v int) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateWorkspaceID() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *AdminCallUpsertBulk) SetUserID(v int) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AdminCallUpsertBulk) AddUserID(v int) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateUserID() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *AdminCallUpsertBulk) SetChatID(v string) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateChatID() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateChatID()
	})
}

// SetOwner sets the "owner" field.
func (u *AdminCallUpsertBulk) SetOwner(v string) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateOwner() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateOwner()
	})
}

// SetCount sets the "count" field.
func (u *AdminCallUpsertBulk) SetCount(v int) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *AdminCallUpsertBulk) AddCount(v int) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateCount() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateCount()
	})
}

// SetLastCalledAt sets the "last_called_at" field.
func (u *AdminCallUpsertBulk) SetLastCalledAt(v time.Time) *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.SetLastCalledAt(v)
	})
}

// UpdateLastCalledAt sets the "last_called_at" field to the value that was provided on create.
func (u *AdminCallUpsertBulk) UpdateLastCalledAt() *AdminCallUpsertBulk {
	return u.Update(func(s *AdminCallUpsert) {
		s.UpdateLastCalledAt()
	})
}

// Exec executes the query.
func (u *AdminCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AdminCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AdminCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AdminCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
