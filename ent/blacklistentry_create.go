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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BlacklistEntryCreate is the builder for creating a BlacklistEntry entity.
type BlacklistEntryCreate struct {
	config
	mutation *BlacklistEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *BlacklistEntryCreate) SetWorkspaceID(v int) *BlacklistEntryCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BlacklistEntryCreate) SetUserID(v int) *BlacklistEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *BlacklistEntryCreate) SetOwner(v string) *BlacklistEntryCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetOwnerKey sets the "owner_key" field.
func (_c *BlacklistEntryCreate) SetOwnerKey(v string) *BlacklistEntryCreate {
	_c.mutation.SetOwnerKey(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BlacklistEntryCreate) SetReason(v string) *BlacklistEntryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *BlacklistEntryCreate) SetNillableReason(v *string) *BlacklistEntryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlacklistEntryCreate) SetCreatedAt(v time.Time) *BlacklistEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlacklistEntryCreate) SetNillableCreatedAt(v *time.Time) *BlacklistEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *BlacklistEntryCreate) SetWorkspace(v *Workspace) *BlacklistEntryCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the BlacklistEntryMutation object of the builder.
func (_c *BlacklistEntryCreate) Mutation() *BlacklistEntryMutation {
	return _c.mutation
}

// Save creates the BlacklistEntry in the database.
func (_c *BlacklistEntryCreate) Save(ctx context.Context) (*BlacklistEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlacklistEntryCreate) SaveX(ctx context.Context) *BlacklistEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlacklistEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlacklistEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlacklistEntryCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := blacklistentry.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blacklistentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlacklistEntryCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "BlacklistEntry.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BlacklistEntry.user_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "BlacklistEntry.owner"`)}
	}
	if _, ok := _c.mutation.OwnerKey(); !ok {
		return &ValidationError{Name: "owner_key", err: errors.New(`ent: missing required field "BlacklistEntry.owner_key"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "BlacklistEntry.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlacklistEntry.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "BlacklistEntry.workspace"`)}
	}
	return nil
}

func (_c *BlacklistEntryCreate) sqlSave(ctx context.Context) (*BlacklistEntry, error) {
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

func (_c *BlacklistEntryCreate) createSpec() (*BlacklistEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &BlacklistEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blacklistentry.Table, sqlgraph.NewFieldSpec(blacklistentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(blacklistentry.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(blacklistentry.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.OwnerKey(); ok {
		_spec.SetField(blacklistentry.FieldOwnerKey, field.TypeString, value)
		_node.OwnerKey = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(blacklistentry.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blacklistentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlacklistEntry.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlacklistEntryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlacklistEntryCreate) OnConflict(opts ...sql.ConflictOption) *BlacklistEntryUpsertOne {
	_c.conflict = opts
	return &BlacklistEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlacklistEntryCreate) OnConflictColumns(columns ...string) *BlacklistEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlacklistEntryUpsertOne{
		create: _c,
	}
}

type (
	// BlacklistEntryUpsertOne is the builder for "upsert"-ing
	//  one BlacklistEntry node.
	BlacklistEntryUpsertOne struct {
		create *BlacklistEntryCreate
	}

	// BlacklistEntryUpsert is the "OnConflict" setter.
	BlacklistEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *BlacklistEntryUpsert) SetWorkspaceID(v int) *BlacklistEntryUpsert {
	u.Set(blacklistentry.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsert) UpdateWorkspaceID() *BlacklistEntryUpsert {
	u.SetExcluded(blacklistentry.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *BlacklistEntryUpsert) SetUserID(v int) *BlacklistEntryUpsert {
	u.Set(blacklistentry.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsert) UpdateUserID() *BlacklistEntryUpsert {
	u.SetExcluded(blacklistentry.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistEntryUpsert) AddUserID(v int) *BlacklistEntryUpsert {
	u.Add(blacklistentry.FieldUserID, v)
	return u
}

// SetOwner sets the "owner" field.
func (u *BlacklistEntryUpsert) SetOwner(v string) *BlacklistEntryUpsert {
	u.Set(blacklistentry.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistEntryUpsert) UpdateOwner() *BlacklistEntryUpsert {
	u.SetExcluded(blacklistentry.FieldOwner)
	return u
}

// SetOwnerKey sets the "owner_key" field.
func (u *BlacklistEntryUpsert) SetOwnerKey(v string) *BlacklistEntryUpsert {
	u.Set(blacklistentry.FieldOwnerKey, v)
	return u
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *BlacklistEntryUpsert) UpdateOwnerKey() *BlacklistEntryUpsert {
	u.SetExcluded(blacklistentry.FieldOwnerKey)
	return u
}

// SetReason sets the "reason" field.
func (u *BlacklistEntryUpsert) SetReason(v string) *BlacklistEntryUpsert {
	u.Set(blacklistentry.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistEntryUpsert) UpdateReason() *BlacklistEntryUpsert {
	u.SetExcluded(blacklistentry.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlacklistEntryUpsertOne) UpdateNewValues() *BlacklistEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blacklistentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlacklistEntryUpsertOne) Ignore() *BlacklistEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlacklistEntryUpsertOne) DoNothing() *BlacklistEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlacklistEntryCreate.OnConflict
// documentation for more info.
func (u *BlacklistEntryUpsertOne) Update(set func(*BlacklistEntryUpsert)) *BlacklistEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlacklistEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BlacklistEntryUpsertOne) SetWorkspaceID(v int) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsertOne) UpdateWorkspaceID() *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BlacklistEntryUpsertOne) SetUserID(v int) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistEntryUpsertOne) AddUserID(v int) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsertOne) UpdateUserID() *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BlacklistEntryUpsertOne) SetOwner(v string) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistEntryUpsertOne) UpdateOwner() *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateOwner()
	})
}

// SetOwnerKey sets the "owner_key" field.
func (u *BlacklistEntryUpsertOne) SetOwnerKey(v string) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetOwnerKey(v)
	})
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *BlacklistEntryUpsertOne) UpdateOwnerKey() *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateOwnerKey()
	})
}

// SetReason sets the "reason" field.
func (u *BlacklistEntryUpsertOne) SetReason(v string) *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistEntryUpsertOne) UpdateReason() *BlacklistEntryUpsertOne {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *BlacklistEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlacklistEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlacklistEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlacklistEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlacklistEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlacklistEntryCreateBulk is the builder for creating many BlacklistEntry entities in bulk.
type BlacklistEntryCreateBulk struct {
	config
	err      error
	builders []*BlacklistEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the BlacklistEntry entities in the database.
func (_c *BlacklistEntryCreateBulk) Save(ctx context.Context) ([]*BlacklistEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlacklistEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlacklistEntryMutation)
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
func (_c *BlacklistEntryCreateBulk) SaveX(ctx context.Context) []*BlacklistEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlacklistEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlacklistEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlacklistEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlacklistEntryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlacklistEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlacklistEntryUpsertBulk {
	_c.conflict = opts
	return &BlacklistEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlacklistEntryCreateBulk) OnConflictColumns(columns ...string) *BlacklistEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlacklistEntryUpsertBulk{
		create: _c,
	}
}

// BlacklistEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of BlacklistEntry nodes.
type BlacklistEntryUpsertBulk struct {
	create *BlacklistEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlacklistEntryUpsertBulk) UpdateNewValues() *BlacklistEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blacklistentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlacklistEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlacklistEntryUpsertBulk) Ignore() *BlacklistEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlacklistEntryUpsertBulk) DoNothing() *BlacklistEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlacklistEntryCreateBulk.OnConflict
// documentation for more info.
func (u *BlacklistEntryUpsertBulk) Update(set func(*BlacklistEntryUpsert)) *BlacklistEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlacklistEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BlacklistEntryUpsertBulk) SetWorkspaceID(v int) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsertBulk) UpdateWorkspaceID() *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BlacklistEntryUpsertBulk) SetUserID(v int) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistEntryUpsertBulk) AddUserID(v int) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistEntryUpsertBulk) UpdateUserID() *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BlacklistEntryUpsertBulk) SetOwner(v string) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistEntryUpsertBulk) UpdateOwner() *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateOwner()
	})
}

// SetOwnerKey sets the "owner_key" field.
func (u *BlacklistEntryUpsertBulk) SetOwnerKey(v string) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetOwnerKey(v)
	})
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *BlacklistEntryUpsertBulk) UpdateOwnerKey() *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateOwnerKey()
	})
}

// SetReason sets the "reason" field.
func (u *BlacklistEntryUpsertBulk) SetReason(v string) *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistEntryUpsertBulk) UpdateReason() *BlacklistEntryUpsertBulk {
	return u.Update(func(s *BlacklistEntryUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *BlacklistEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BlacklistEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlacklistEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlacklistEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
