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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// BonusWalletCreate is the builder for creating a BonusWallet entity.
type BonusWalletCreate struct {
	config
	mutation *BonusWalletMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *BonusWalletCreate) SetWorkspaceID(v int) *BonusWalletCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BonusWalletCreate) SetUserID(v int) *BonusWalletCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *BonusWalletCreate) SetOwner(v string) *BonusWalletCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (_c *BonusWalletCreate) SetBalanceMinutes(v int) *BonusWalletCreate {
	_c.mutation.SetBalanceMinutes(v)
	return _c
}

// SetNillableBalanceMinutes sets the "balance_minutes" field if the given value is not nil.
func (_c *BonusWalletCreate) SetNillableBalanceMinutes(v *int) *BonusWalletCreate {
	if v != nil {
		_c.SetBalanceMinutes(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BonusWalletCreate) SetUpdatedAt(v time.Time) *BonusWalletCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BonusWalletCreate) SetNillableUpdatedAt(v *time.Time) *BonusWalletCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *BonusWalletCreate) SetWorkspace(v *Workspace) *BonusWalletCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the BonusWalletMutation object of the builder.
func (_c *BonusWalletCreate) Mutation() *BonusWalletMutation {
	return _c.mutation
}

// Save creates the BonusWallet in the database.
func (_c *BonusWalletCreate) Save(ctx context.Context) (*BonusWallet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BonusWalletCreate) SaveX(ctx context.Context) *BonusWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BonusWalletCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BonusWalletCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BonusWalletCreate) defaults() {
	if _, ok := _c.mutation.BalanceMinutes(); !ok {
		v := bonuswallet.DefaultBalanceMinutes
		_c.mutation.SetBalanceMinutes(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bonuswallet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BonusWalletCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "BonusWallet.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BonusWallet.user_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "BonusWallet.owner"`)}
	}
	if _, ok := _c.mutation.BalanceMinutes(); !ok {
		return &ValidationError{Name: "balance_minutes", err: errors.New(`ent: missing required field "BonusWallet.balance_minutes"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BonusWallet.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "BonusWallet.workspace"`)}
	}
	return nil
}

func (_c *BonusWalletCreate) sqlSave(ctx context.Context) (*BonusWallet, error) {
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

func (_c *BonusWalletCreate) createSpec() (*BonusWallet, *sqlgraph.CreateSpec) {
	var (
		_node = &BonusWallet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bonuswallet.Table, sqlgraph.NewFieldSpec(bonuswallet.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bonuswallet.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(bonuswallet.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.BalanceMinutes(); ok {
		_spec.SetField(bonuswallet.FieldBalanceMinutes, field.TypeInt, value)
		_node.BalanceMinutes = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bonuswallet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bonuswallet.WorkspaceTable,
			Columns: []string{bonuswallet.WorkspaceColumn},
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
//	client.BonusWallet.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BonusWalletUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BonusWalletCreate) OnConflict(opts ...sql.ConflictOption) *BonusWalletUpsertOne {
	_c.conflict = opts
	return &BonusWalletUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BonusWalletCreate) OnConflictColumns(columns ...string) *BonusWalletUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BonusWalletUpsertOne{
		create: _c,
	}
}

type (
	// BonusWalletUpsertOne is the builder for "upsert"-ing
	//  one BonusWallet node.
	BonusWalletUpsertOne struct {
		create *BonusWalletCreate
	}

	// BonusWalletUpsert is the "OnConflict" setter.
	BonusWalletUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusWalletUpsert) SetWorkspaceID(v int) *BonusWalletUpsert {
	u.Set(bonuswallet.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusWalletUpsert) UpdateWorkspaceID() *BonusWalletUpsert {
	u.SetExcluded(bonuswallet.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *BonusWalletUpsert) SetUserID(v int) *BonusWalletUpsert {
	u.Set(bonuswallet.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusWalletUpsert) UpdateUserID() *BonusWalletUpsert {
	u.SetExcluded(bonuswallet.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *BonusWalletUpsert) AddUserID(v int) *BonusWalletUpsert {
	u.Add(bonuswallet.FieldUserID, v)
	return u
}

// SetOwner sets the "owner" field.
func (u *BonusWalletUpsert) SetOwner(v string) *BonusWalletUpsert {
	u.Set(bonuswallet.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusWalletUpsert) UpdateOwner() *BonusWalletUpsert {
	u.SetExcluded(bonuswallet.FieldOwner)
	return u
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (u *BonusWalletUpsert) SetBalanceMinutes(v int) *BonusWalletUpsert {
	u.Set(bonuswallet.FieldBalanceMinutes, v)
	return u
}

// UpdateBalanceMinutes sets the "balance_minutes" field to the value that was provided on create.
func (u *BonusWalletUpsert) UpdateBalanceMinutes() *BonusWalletUpsert {
	u.SetExcluded(bonuswallet.FieldBalanceMinutes)
	return u
}

// AddBalanceMinutes adds v to the "balance_minutes" field.
func (u *BonusWalletUpsert) AddBalanceMinutes(v int) *BonusWalletUpsert {
	u.Add(bonuswallet.FieldBalanceMinutes, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BonusWalletUpsert) SetUpdatedAt(v time.Time) *BonusWalletUpsert {
	u.Set(bonuswallet.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BonusWalletUpsert) UpdateUpdatedAt() *BonusWalletUpsert {
	u.SetExcluded(bonuswallet.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BonusWalletUpsertOne) UpdateNewValues() *BonusWalletUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BonusWalletUpsertOne) Ignore() *BonusWalletUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BonusWalletUpsertOne) DoNothing() *BonusWalletUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BonusWalletCreate.OnConflict
// documentation for more info.
func (u *BonusWalletUpsertOne) Update(set func(*BonusWalletUpsert)) *BonusWalletUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BonusWalletUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusWalletUpsertOne) SetWorkspaceID(v int) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusWalletUpsertOne) UpdateWorkspaceID() *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BonusWalletUpsertOne) SetUserID(v int) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BonusWalletUpsertOne) AddUserID(v int) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusWalletUpsertOne) UpdateUserID() *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BonusWalletUpsertOne) SetOwner(v string) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusWalletUpsertOne) UpdateOwner() *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateOwner()
	})
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (u *BonusWalletUpsertOne) SetBalanceMinutes(v int) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetBalanceMinutes(v)
	})
}

// AddBalanceMinutes adds v to the "balance_minutes" field.
func (u *BonusWalletUpsertOne) AddBalanceMinutes(v int) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.AddBalanceMinutes(v)
	})
}

// UpdateBalanceMinutes sets the "balance_minutes" field to the value that was provided on create.
func (u *BonusWalletUpsertOne) UpdateBalanceMinutes() *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateBalanceMinutes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BonusWalletUpsertOne) SetUpdatedAt(v time.Time) *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BonusWalletUpsertOne) UpdateUpdatedAt() *BonusWalletUpsertOne {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BonusWalletUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BonusWalletCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BonusWalletUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BonusWalletUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BonusWalletUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BonusWalletCreateBulk is the builder for creating many BonusWallet entities in bulk.
type BonusWalletCreateBulk struct {
	config
	err      error
	builders []*BonusWalletCreate
	conflict []sql.ConflictOption
}

// Save creates the BonusWallet entities in the database.
func (_c *BonusWalletCreateBulk) Save(ctx context.Context) ([]*BonusWallet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BonusWallet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BonusWalletMutation)
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
func (_c *BonusWalletCreateBulk) SaveX(ctx context.Context) []*BonusWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BonusWalletCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BonusWalletCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BonusWallet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BonusWalletUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BonusWalletCreateBulk) OnConflict(opts ...sql.ConflictOption) *BonusWalletUpsertBulk {
	_c.conflict = opts
	return &BonusWalletUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BonusWalletCreateBulk) OnConflictColumns(columns ...string) *BonusWalletUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BonusWalletUpsertBulk{
		create: _c,
	}
}

// BonusWalletUpsertBulk is the builder for "upsert"-ing
// a bulk of BonusWallet nodes.
type BonusWalletUpsertBulk struct {
	create *BonusWalletCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BonusWalletUpsertBulk) UpdateNewValues() *BonusWalletUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BonusWallet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BonusWalletUpsertBulk) Ignore() *BonusWalletUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BonusWalletUpsertBulk) DoNothing() *BonusWalletUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BonusWalletCreateBulk.OnConflict
// documentation for more info.
func (u *BonusWalletUpsertBulk) Update(set func(*BonusWalletUpsert)) *BonusWalletUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BonusWalletUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusWalletUpsertBulk) SetWorkspaceID(v int) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusWalletUpsertBulk) UpdateWorkspaceID() *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BonusWalletUpsertBulk) SetUserID(v int) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BonusWalletUpsertBulk) AddUserID(v int) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusWalletUpsertBulk) UpdateUserID() *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BonusWalletUpsertBulk) SetOwner(v string) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusWalletUpsertBulk) UpdateOwner() *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateOwner()
	})
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (u *BonusWalletUpsertBulk) SetBalanceMinutes(v int) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetBalanceMinutes(v)
	})
}

// AddBalanceMinutes adds v to the "balance_minutes" field.
func (u *BonusWalletUpsertBulk) AddBalanceMinutes(v int) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.AddBalanceMinutes(v)
	})
}

// UpdateBalanceMinutes sets the "balance_minutes" field to the value that was provided on create.
func (u *BonusWalletUpsertBulk) UpdateBalanceMinutes() *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateBalanceMinutes()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BonusWalletUpsertBulk) SetUpdatedAt(v time.Time) *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BonusWalletUpsertBulk) UpdateUpdatedAt() *BonusWalletUpsertBulk {
	return u.Update(func(s *BonusWalletUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BonusWalletUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BonusWalletCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BonusWalletCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BonusWalletUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
