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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
)

// BonusHistoryCreate is the builder for creating a BonusHistory entity.
type BonusHistoryCreate struct {
	config
	mutation *BonusHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *BonusHistoryCreate) SetWorkspaceID(v int) *BonusHistoryCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BonusHistoryCreate) SetUserID(v int) *BonusHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *BonusHistoryCreate) SetOwner(v string) *BonusHistoryCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (_c *BonusHistoryCreate) SetDeltaMinutes(v int) *BonusHistoryCreate {
	_c.mutation.SetDeltaMinutes(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BonusHistoryCreate) SetReason(v string) *BonusHistoryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *BonusHistoryCreate) SetNillableReason(v *string) *BonusHistoryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *BonusHistoryCreate) SetOrderID(v string) *BonusHistoryCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *BonusHistoryCreate) SetNillableOrderID(v *string) *BonusHistoryCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BonusHistoryCreate) SetCreatedAt(v time.Time) *BonusHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BonusHistoryCreate) SetNillableCreatedAt(v *time.Time) *BonusHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BonusHistoryMutation object of the builder.
func (_c *BonusHistoryCreate) Mutation() *BonusHistoryMutation {
	return _c.mutation
}

// Save creates the BonusHistory in the database.
func (_c *BonusHistoryCreate) Save(ctx context.Context) (*BonusHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BonusHistoryCreate) SaveX(ctx context.Context) *BonusHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BonusHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BonusHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BonusHistoryCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := bonushistory.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		v := bonushistory.DefaultOrderID
		_c.mutation.SetOrderID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bonushistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BonusHistoryCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "BonusHistory.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BonusHistory.user_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "BonusHistory.owner"`)}
	}
	if _, ok := _c.mutation.DeltaMinutes(); !ok {
		return &ValidationError{Name: "delta_minutes", err: errors.New(`ent: missing required field "BonusHistory.delta_minutes"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "BonusHistory.reason"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "BonusHistory.order_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BonusHistory.created_at"`)}
	}
	return nil
}

func (_c *BonusHistoryCreate) sqlSave(ctx context.Context) (*BonusHistory, error) {
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

func (_c *BonusHistoryCreate) createSpec() (*BonusHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &BonusHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bonushistory.Table, sqlgraph.NewFieldSpec(bonushistory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(bonushistory.FieldWorkspaceID, field.TypeInt, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bonushistory.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(bonushistory.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.DeltaMinutes(); ok {
		_spec.SetField(bonushistory.FieldDeltaMinutes, field.TypeInt, value)
		_node.DeltaMinutes = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(bonushistory.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(bonushistory.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bonushistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BonusHistory.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BonusHistoryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BonusHistoryCreate) OnConflict(opts ...sql.ConflictOption) *BonusHistoryUpsertOne {
	_c.conflict = opts
	return &BonusHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BonusHistoryCreate) OnConflictColumns(columns ...string) *BonusHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BonusHistoryUpsertOne{
		create: _c,
	}
}

type (
	// BonusHistoryUpsertOne is the builder for "upsert"-ing
	//  one BonusHistory node.
	BonusHistoryUpsertOne struct {
		create *BonusHistoryCreate
	}

	// BonusHistoryUpsert is the "OnConflict" setter.
	BonusHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusHistoryUpsert) SetWorkspaceID(v int) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateWorkspaceID() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldWorkspaceID)
	return u
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *BonusHistoryUpsert) AddWorkspaceID(v int) *BonusHistoryUpsert {
	u.Add(bonushistory.FieldWorkspaceID, v)
	return u
}

// SetUserID sets the "user_id" field.
func (u *BonusHistoryUpsert) SetUserID(v int) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateUserID() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *BonusHistoryUpsert) AddUserID(v int) *BonusHistoryUpsert {
	u.Add(bonushistory.FieldUserID, v)
	return u
}

// SetOwner sets the "owner" field.
func (u *BonusHistoryUpsert) SetOwner(v string) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateOwner() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldOwner)
	return u
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (u *BonusHistoryUpsert) SetDeltaMinutes(v int) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldDeltaMinutes, v)
	return u
}

// UpdateDeltaMinutes sets the "delta_minutes" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateDeltaMinutes() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldDeltaMinutes)
	return u
}

// AddDeltaMinutes adds v to the "delta_minutes" field.
func (u *BonusHistoryUpsert) AddDeltaMinutes(v int) *BonusHistoryUpsert {
	u.Add(bonushistory.FieldDeltaMinutes, v)
	return u
}

// SetReason sets the "reason" field.
func (u *BonusHistoryUpsert) SetReason(v string) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateReason() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldReason)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *BonusHistoryUpsert) SetOrderID(v string) *BonusHistoryUpsert {
	u.Set(bonushistory.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *BonusHistoryUpsert) UpdateOrderID() *BonusHistoryUpsert {
	u.SetExcluded(bonushistory.FieldOrderID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BonusHistoryUpsertOne) UpdateNewValues() *BonusHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bonushistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BonusHistoryUpsertOne) Ignore() *BonusHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BonusHistoryUpsertOne) DoNothing() *BonusHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BonusHistoryCreate.OnConflict
// documentation for more info.
func (u *BonusHistoryUpsertOne) Update(set func(*BonusHistoryUpsert)) *BonusHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BonusHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusHistoryUpsertOne) SetWorkspaceID(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *BonusHistoryUpsertOne) AddWorkspaceID(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateWorkspaceID() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BonusHistoryUpsertOne) SetUserID(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BonusHistoryUpsertOne) AddUserID(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateUserID() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BonusHistoryUpsertOne) SetOwner(v string) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateOwner() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateOwner()
	})
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (u *BonusHistoryUpsertOne) SetDeltaMinutes(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetDeltaMinutes(v)
	})
}

// AddDeltaMinutes adds v to the "delta_minutes" field.
func (u *BonusHistoryUpsertOne) AddDeltaMinutes(v int) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddDeltaMinutes(v)
	})
}

// UpdateDeltaMinutes sets the "delta_minutes" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateDeltaMinutes() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateDeltaMinutes()
	})
}

// SetReason sets the "reason" field.
func (u *BonusHistoryUpsertOne) SetReason(v string) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateReason() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateReason()
	})
}

// SetOrderID sets the "order_id" field.
func (u *BonusHistoryUpsertOne) SetOrderID(v string) *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertOne) UpdateOrderID() *BonusHistoryUpsertOne {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateOrderID()
	})
}

// Exec executes the query.
func (u *BonusHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BonusHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BonusHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BonusHistoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BonusHistoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BonusHistoryCreateBulk is the builder for creating many BonusHistory entities in bulk.
type BonusHistoryCreateBulk struct {
	config
	err      error
	builders []*BonusHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the BonusHistory entities in the database.
func (_c *BonusHistoryCreateBulk) Save(ctx context.Context) ([]*BonusHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BonusHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BonusHistoryMutation)
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
func (_c *BonusHistoryCreateBulk) SaveX(ctx context.Context) []*BonusHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BonusHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BonusHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BonusHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BonusHistoryUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *BonusHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *BonusHistoryUpsertBulk {
	_c.conflict = opts
	return &BonusHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BonusHistoryCreateBulk) OnConflictColumns(columns ...string) *BonusHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BonusHistoryUpsertBulk{
		create: _c,
	}
}

// BonusHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of BonusHistory nodes.
type BonusHistoryUpsertBulk struct {
	create *BonusHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BonusHistoryUpsertBulk) UpdateNewValues() *BonusHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bonushistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BonusHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BonusHistoryUpsertBulk) Ignore() *BonusHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BonusHistoryUpsertBulk) DoNothing() *BonusHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BonusHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *BonusHistoryUpsertBulk) Update(set func(*BonusHistoryUpsert)) *BonusHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BonusHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *BonusHistoryUpsertBulk) SetWorkspaceID(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetWorkspaceID(v)
	})
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *BonusHistoryUpsertBulk) AddWorkspaceID(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateWorkspaceID() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *BonusHistoryUpsertBulk) SetUserID(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BonusHistoryUpsertBulk) AddUserID(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateUserID() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BonusHistoryUpsertBulk) SetOwner(v string) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateOwner() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateOwner()
	})
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (u *BonusHistoryUpsertBulk) SetDeltaMinutes(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetDeltaMinutes(v)
	})
}

// AddDeltaMinutes adds v to the "delta_minutes" field.
func (u *BonusHistoryUpsertBulk) AddDeltaMinutes(v int) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.AddDeltaMinutes(v)
	})
}

// UpdateDeltaMinutes sets the "delta_minutes" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateDeltaMinutes() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateDeltaMinutes()
	})
}

// SetReason sets the "reason" field.
func (u *BonusHistoryUpsertBulk) SetReason(v string) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateReason() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateReason()
	})
}

// SetOrderID sets the "order_id" field.
func (u *BonusHistoryUpsertBulk) SetOrderID(v string) *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *BonusHistoryUpsertBulk) UpdateOrderID() *BonusHistoryUpsertBulk {
	return u.Update(func(s *BonusHistoryUpsert) {
		s.UpdateOrderID()
	})
}

// Exec executes the query.
func (u *BonusHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BonusHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BonusHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BonusHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
