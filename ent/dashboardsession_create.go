// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
)

// DashboardSessionCreate is the builder for creating a DashboardSession entity.
type DashboardSessionCreate struct {
	config
	mutation *DashboardSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DashboardSessionCreate) SetUserID(v int) *DashboardSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *DashboardSessionCreate) SetExpiresAt(v time.Time) *DashboardSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *DashboardSessionCreate) SetLastSeenAt(v time.Time) *DashboardSessionCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *DashboardSessionCreate) SetNillableLastSeenAt(v *time.Time) *DashboardSessionCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DashboardSessionCreate) SetCreatedAt(v time.Time) *DashboardSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DashboardSessionCreate) SetNillableCreatedAt(v *time.Time) *DashboardSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DashboardSessionCreate) SetID(v string) *DashboardSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DashboardSessionMutation object of the builder.
func (_c *DashboardSessionCreate) Mutation() *DashboardSessionMutation {
	return _c.mutation
}

// Save creates the DashboardSession in the database.
func (_c *DashboardSessionCreate) Save(ctx context.Context) (*DashboardSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DashboardSessionCreate) SaveX(ctx context.Context) *DashboardSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DashboardSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DashboardSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DashboardSessionCreate) defaults() {
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := dashboardsession.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dashboardsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DashboardSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DashboardSession.user_id"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "DashboardSession.expires_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "DashboardSession.last_seen_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DashboardSession.created_at"`)}
	}
	return nil
}

func (_c *DashboardSessionCreate) sqlSave(ctx context.Context) (*DashboardSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DashboardSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DashboardSessionCreate) createSpec() (*DashboardSession, *sqlgraph.CreateSpec) {
	var (
		_node = &DashboardSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dashboardsession.Table, sqlgraph.NewFieldSpec(dashboardsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dashboardsession.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(dashboardsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(dashboardsession.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dashboardsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DashboardSession.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DashboardSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DashboardSessionCreate) OnConflict(opts ...sql.ConflictOption) *DashboardSessionUpsertOne {
	_c.conflict = opts
	return &DashboardSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DashboardSessionCreate) OnConflictColumns(columns ...string) *DashboardSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DashboardSessionUpsertOne{
		create: _c,
	}
}

type (
	// DashboardSessionUpsertOne is the builder for "upsert"-ing
	//  one DashboardSession node.
	DashboardSessionUpsertOne struct {
		create *DashboardSessionCreate
	}

	// DashboardSessionUpsert is the "OnConflict" setter.
	DashboardSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *DashboardSessionUpsert) SetUserID(v int) *DashboardSessionUpsert {
	u.Set(dashboardsession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DashboardSessionUpsert) UpdateUserID() *DashboardSessionUpsert {
	u.SetExcluded(dashboardsession.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *DashboardSessionUpsert) AddUserID(v int) *DashboardSessionUpsert {
	u.Add(dashboardsession.FieldUserID, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *DashboardSessionUpsert) SetExpiresAt(v time.Time) *DashboardSessionUpsert {
	u.Set(dashboardsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *DashboardSessionUpsert) UpdateExpiresAt() *DashboardSessionUpsert {
	u.SetExcluded(dashboardsession.FieldExpiresAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *DashboardSessionUpsert) SetLastSeenAt(v time.Time) *DashboardSessionUpsert {
	u.Set(dashboardsession.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *DashboardSessionUpsert) UpdateLastSeenAt() *DashboardSessionUpsert {
	u.SetExcluded(dashboardsession.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dashboardsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DashboardSessionUpsertOne) UpdateNewValues() *DashboardSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dashboardsession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dashboardsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DashboardSessionUpsertOne) Ignore() *DashboardSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DashboardSessionUpsertOne) DoNothing() *DashboardSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DashboardSessionCreate.OnConflict
// documentation for more info.
func (u *DashboardSessionUpsertOne) Update(set func(*DashboardSessionUpsert)) *DashboardSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DashboardSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DashboardSessionUpsertOne) SetUserID(v int) *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *DashboardSessionUpsertOne) AddUserID(v int) *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DashboardSessionUpsertOne) UpdateUserID() *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *DashboardSessionUpsertOne) SetExpiresAt(v time.Time) *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *DashboardSessionUpsertOne) UpdateExpiresAt() *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *DashboardSessionUpsertOne) SetLastSeenAt(v time.Time) *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *DashboardSessionUpsertOne) UpdateLastSeenAt() *DashboardSessionUpsertOne {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *DashboardSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DashboardSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DashboardSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DashboardSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DashboardSessionUpsertOne.ID is not supported by MySQL driver. Use DashboardSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DashboardSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DashboardSessionCreateBulk is the builder for creating many DashboardSession entities in bulk.
type DashboardSessionCreateBulk struct {
	config
	err      error
	builders []*DashboardSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the DashboardSession entities in the database.
func (_c *DashboardSessionCreateBulk) Save(ctx context.Context) ([]*DashboardSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DashboardSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DashboardSessionMutation)
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
func (_c *DashboardSessionCreateBulk) SaveX(ctx context.Context) []*DashboardSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DashboardSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DashboardSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DashboardSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DashboardSessionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DashboardSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DashboardSessionUpsertBulk {
	_c.conflict = opts
	return &DashboardSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DashboardSessionCreateBulk) OnConflictColumns(columns ...string) *DashboardSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DashboardSessionUpsertBulk{
		create: _c,
	}
}

// DashboardSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of DashboardSession nodes.
type DashboardSessionUpsertBulk struct {
	create *DashboardSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dashboardsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DashboardSessionUpsertBulk) UpdateNewValues() *DashboardSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dashboardsession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dashboardsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DashboardSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DashboardSessionUpsertBulk) Ignore() *DashboardSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DashboardSessionUpsertBulk) DoNothing() *DashboardSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DashboardSessionCreateBulk.OnConflict
// documentation for more info.
func (u *DashboardSessionUpsertBulk) Update(set func(*DashboardSessionUpsert)) *DashboardSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DashboardSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DashboardSessionUpsertBulk) SetUserID(v int) *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *DashboardSessionUpsertBulk) AddUserID(v int) *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DashboardSessionUpsertBulk) UpdateUserID() *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *DashboardSessionUpsertBulk) SetExpiresAt(v time.Time) *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *DashboardSessionUpsertBulk) UpdateExpiresAt() *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *DashboardSessionUpsertBulk) SetLastSeenAt(v time.Time) *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *DashboardSessionUpsertBulk) UpdateLastSeenAt() *DashboardSessionUpsertBulk {
	return u.Update(func(s *DashboardSessionUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *DashboardSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DashboardSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DashboardSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DashboardSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
