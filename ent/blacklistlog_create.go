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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
)

// BlacklistLogCreate is the builder for creating a BlacklistLog entity.
type BlacklistLogCreate struct {
	config
	mutation *BlacklistLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *BlacklistLogCreate) SetUserID(v int) *BlacklistLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *BlacklistLogCreate) SetNillableUserID(v *int) *BlacklistLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *BlacklistLogCreate) SetOwner(v string) *BlacklistLogCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *BlacklistLogCreate) SetAction(v blacklistlog.Action) *BlacklistLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *BlacklistLogCreate) SetReason(v string) *BlacklistLogCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *BlacklistLogCreate) SetNillableReason(v *string) *BlacklistLogCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *BlacklistLogCreate) SetDetails(v string) *BlacklistLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *BlacklistLogCreate) SetNillableDetails(v *string) *BlacklistLogCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BlacklistLogCreate) SetAmount(v int) *BlacklistLogCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *BlacklistLogCreate) SetNillableAmount(v *int) *BlacklistLogCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlacklistLogCreate) SetCreatedAt(v time.Time) *BlacklistLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlacklistLogCreate) SetNillableCreatedAt(v *time.Time) *BlacklistLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BlacklistLogMutation object of the builder.
func (_c *BlacklistLogCreate) Mutation() *BlacklistLogMutation {
	return _c.mutation
}

// Save creates the BlacklistLog in the database.
func (_c *BlacklistLogCreate) Save(ctx context.Context) (*BlacklistLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlacklistLogCreate) SaveX(ctx context.Context) *BlacklistLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlacklistLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlacklistLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlacklistLogCreate) defaults() {
	if _, ok := _c.mutation.UserID(); !ok {
		v := blacklistlog.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := blacklistlog.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := blacklistlog.DefaultDetails
		_c.mutation.SetDetails(v)
	}
	if _, ok := _c.mutation.Amount(); !ok {
		v := blacklistlog.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blacklistlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlacklistLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BlacklistLog.user_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "BlacklistLog.owner"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BlacklistLog.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := blacklistlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BlacklistLog.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "BlacklistLog.reason"`)}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "BlacklistLog.details"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "BlacklistLog.amount"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlacklistLog.created_at"`)}
	}
	return nil
}

func (_c *BlacklistLogCreate) sqlSave(ctx context.Context) (*BlacklistLog, error) {
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

func (_c *BlacklistLogCreate) createSpec() (*BlacklistLog, *sqlgraph.CreateSpec) {
	var (
		_node = &BlacklistLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blacklistlog.Table, sqlgraph.NewFieldSpec(blacklistlog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(blacklistlog.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(blacklistlog.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(blacklistlog.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(blacklistlog.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(blacklistlog.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(blacklistlog.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blacklistlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlacklistLog.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlacklistLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlacklistLogCreate) OnConflict(opts ...sql.ConflictOption) *BlacklistLogUpsertOne {
	_c.conflict = opts
	return &BlacklistLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlacklistLogCreate) OnConflictColumns(columns ...string) *BlacklistLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlacklistLogUpsertOne{
		create: _c,
	}
}

type (
	// BlacklistLogUpsertOne is the builder for "upsert"-ing
	//  one BlacklistLog node.
	BlacklistLogUpsertOne struct {
		create *BlacklistLogCreate
	}

	// BlacklistLogUpsert is the "OnConflict" setter.
	BlacklistLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *BlacklistLogUpsert) SetUserID(v int) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateUserID() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistLogUpsert) AddUserID(v int) *BlacklistLogUpsert {
	u.Add(blacklistlog.FieldUserID, v)
	return u
}

// SetOwner sets the "owner" field.
func (u *BlacklistLogUpsert) SetOwner(v string) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateOwner() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldOwner)
	return u
}

// SetAction sets the "action" field.
func (u *BlacklistLogUpsert) SetAction(v blacklistlog.Action) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateAction() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldAction)
	return u
}

// SetReason sets the "reason" field.
func (u *BlacklistLogUpsert) SetReason(v string) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateReason() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldReason)
	return u
}

// SetDetails sets the "details" field.
func (u *BlacklistLogUpsert) SetDetails(v string) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateDetails() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldDetails)
	return u
}

// SetAmount sets the "amount" field.
func (u *BlacklistLogUpsert) SetAmount(v int) *BlacklistLogUpsert {
	u.Set(blacklistlog.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BlacklistLogUpsert) UpdateAmount() *BlacklistLogUpsert {
	u.SetExcluded(blacklistlog.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *BlacklistLogUpsert) AddAmount(v int) *BlacklistLogUpsert {
	u.Add(blacklistlog.FieldAmount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlacklistLogUpsertOne) UpdateNewValues() *BlacklistLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(blacklistlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BlacklistLogUpsertOne) Ignore() *BlacklistLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlacklistLogUpsertOne) DoNothing() *BlacklistLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlacklistLogCreate.OnConflict
// documentation for more info.
func (u *BlacklistLogUpsertOne) Update(set func(*BlacklistLogUpsert)) *BlacklistLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlacklistLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *BlacklistLogUpsertOne) SetUserID(v int) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistLogUpsertOne) AddUserID(v int) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateUserID() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BlacklistLogUpsertOne) SetOwner(v string) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateOwner() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateOwner()
	})
}

// SetAction sets the "action" field.
func (u *BlacklistLogUpsertOne) SetAction(v blacklistlog.Action) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateAction() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateAction()
	})
}

// SetReason sets the "reason" field.
func (u *BlacklistLogUpsertOne) SetReason(v string) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateReason() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateReason()
	})
}

// SetDetails sets the "details" field.
func (u *BlacklistLogUpsertOne) SetDetails(v string) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateDetails() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateDetails()
	})
}

// SetAmount sets the "amount" field.
func (u *BlacklistLogUpsertOne) SetAmount(v int) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *BlacklistLogUpsertOne) AddAmount(v int) *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BlacklistLogUpsertOne) UpdateAmount() *BlacklistLogUpsertOne {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateAmount()
	})
}

// Exec executes the query.
func (u *BlacklistLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlacklistLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlacklistLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BlacklistLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BlacklistLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BlacklistLogCreateBulk is the builder for creating many BlacklistLog entities in bulk.
type BlacklistLogCreateBulk struct {
	config
	err      error
	builders []*BlacklistLogCreate
	conflict []sql.ConflictOption
}

// Save creates the BlacklistLog entities in the database.
func (_c *BlacklistLogCreateBulk) Save(ctx context.Context) ([]*BlacklistLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlacklistLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlacklistLogMutation)
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
func (_c *BlacklistLogCreateBulk) SaveX(ctx context.Context) []*BlacklistLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlacklistLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlacklistLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BlacklistLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BlacklistLogUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BlacklistLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *BlacklistLogUpsertBulk {
	_c.conflict = opts
	return &BlacklistLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BlacklistLogCreateBulk) OnConflictColumns(columns ...string) *BlacklistLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BlacklistLogUpsertBulk{
		create: _c,
	}
}

// BlacklistLogUpsertBulk is the builder for "upsert"-ing
// a bulk of BlacklistLog nodes.
type BlacklistLogUpsertBulk struct {
	create *BlacklistLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BlacklistLogUpsertBulk) UpdateNewValues() *BlacklistLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(blacklistlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BlacklistLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BlacklistLogUpsertBulk) Ignore() *BlacklistLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BlacklistLogUpsertBulk) DoNothing() *BlacklistLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BlacklistLogCreateBulk.OnConflict
// documentation for more info.
func (u *BlacklistLogUpsertBulk) Update(set func(*BlacklistLogUpsert)) *BlacklistLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BlacklistLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *BlacklistLogUpsertBulk) SetUserID(v int) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *BlacklistLogUpsertBulk) AddUserID(v int) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateUserID() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateUserID()
	})
}

// SetOwner sets the "owner" field.
func (u *BlacklistLogUpsertBulk) SetOwner(v string) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateOwner() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateOwner()
	})
}

// SetAction sets the "action" field.
func (u *BlacklistLogUpsertBulk) SetAction(v blacklistlog.Action) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateAction() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateAction()
	})
}

// SetReason sets the "reason" field.
func (u *BlacklistLogUpsertBulk) SetReason(v string) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateReason() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateReason()
	})
}

// SetDetails sets the "details" field.
func (u *BlacklistLogUpsertBulk) SetDetails(v string) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateDetails() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateDetails()
	})
}

// SetAmount sets the "amount" field.
func (u *BlacklistLogUpsertBulk) SetAmount(v int) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *BlacklistLogUpsertBulk) AddAmount(v int) *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *BlacklistLogUpsertBulk) UpdateAmount() *BlacklistLogUpsertBulk {
	return u.Update(func(s *BlacklistLogUpsert) {
		s.UpdateAmount()
	})
}

// Exec executes the query.
func (u *BlacklistLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BlacklistLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BlacklistLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BlacklistLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
