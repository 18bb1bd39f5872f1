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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// LotMappingCreate is the builder for creating a LotMapping entity.
type LotMappingCreate struct {
	config
	mutation *LotMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *LotMappingCreate) SetWorkspaceID(v int) *LotMappingCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LotMappingCreate) SetUserID(v int) *LotMappingCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLotNumber sets the "lot_number" field.
func (_c *LotMappingCreate) SetLotNumber(v string) *LotMappingCreate {
	_c.mutation.SetLotNumber(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *LotMappingCreate) SetAccountID(v int) *LotMappingCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetLotURL sets the "lot_url" field.
func (_c *LotMappingCreate) SetLotURL(v string) *LotMappingCreate {
	_c.mutation.SetLotURL(v)
	return _c
}

// SetNillableLotURL sets the "lot_url" field if the given value is not nil.
func (_c *LotMappingCreate) SetNillableLotURL(v *string) *LotMappingCreate {
	if v != nil {
		_c.SetLotURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LotMappingCreate) SetCreatedAt(v time.Time) *LotMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LotMappingCreate) SetNillableCreatedAt(v *time.Time) *LotMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *LotMappingCreate) SetWorkspace(v *Workspace) *LotMappingCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the LotMappingMutation object of the builder.
func (_c *LotMappingCreate) Mutation() *LotMappingMutation {
	return _c.mutation
}

// Save creates the LotMapping in the database.
func (_c *LotMappingCreate) Save(ctx context.Context) (*LotMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LotMappingCreate) SaveX(ctx context.Context) *LotMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LotMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LotMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LotMappingCreate) defaults() {
	if _, ok := _c.mutation.LotURL(); !ok {
		v := lotmapping.DefaultLotURL
		_c.mutation.SetLotURL(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lotmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LotMappingCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "LotMapping.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LotMapping.user_id"`)}
	}
	if _, ok := _c.mutation.LotNumber(); !ok {
		return &ValidationError{Name: "lot_number", err: errors.New(`ent: missing required field "LotMapping.lot_number"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "LotMapping.account_id"`)}
	}
	if _, ok := _c.mutation.LotURL(); !ok {
		return &ValidationError{Name: "lot_url", err: errors.New(`ent: missing required field "LotMapping.lot_url"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LotMapping.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "LotMapping.workspace"`)}
	}
	return nil
}

func (_c *LotMappingCreate) sqlSave(ctx context.Context) (*LotMapping, error) {
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

func (_c *LotMappingCreate) createSpec() (*LotMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &LotMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lotmapping.Table, sqlgraph.NewFieldSpec(lotmapping.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(lotmapping.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LotNumber(); ok {
		_spec.SetField(lotmapping.FieldLotNumber, field.TypeString, value)
		_node.LotNumber = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(lotmapping.FieldAccountID, field.TypeInt, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.LotURL(); ok {
		_spec.SetField(lotmapping.FieldLotURL, field.TypeString, value)
		_node.LotURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lotmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lotmapping.WorkspaceTable,
			Columns: []string{lotmapping.WorkspaceColumn},
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
//	client.LotMapping.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LotMappingUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LotMappingCreate) OnConflict(opts ...sql.ConflictOption) *LotMappingUpsertOne {
	_c.conflict = opts
	return &LotMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LotMappingCreate) OnConflictColumns(columns ...string) *LotMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LotMappingUpsertOne{
		create: _c,
	}
}

type (
	// LotMappingUpsertOne is the builder for "upsert"-ing
	//  one LotMapping node.
	LotMappingUpsertOne struct {
		create *LotMappingCreate
	}

	// LotMappingUpsert is the "OnConflict" setter.
	LotMappingUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *LotMappingUpsert) SetWorkspaceID(v int) *LotMappingUpsert {
	u.Set(lotmapping.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LotMappingUpsert) UpdateWorkspaceID() *LotMappingUpsert {
	u.SetExcluded(lotmapping.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *LotMappingUpsert) SetUserID(v int) *LotMappingUpsert {
	u.Set(lotmapping.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LotMappingUpsert) UpdateUserID() *LotMappingUpsert {
	u.SetExcluded(lotmapping.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *LotMappingUpsert) AddUserID(v int) *LotMappingUpsert {
	u.Add(lotmapping.FieldUserID, v)
	return u
}

// SetLotNumber sets the "lot_number" field.
func (u *LotMappingUpsert) SetLotNumber(v string) *LotMappingUpsert {
	u.Set(lotmapping.FieldLotNumber, v)
	return u
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *LotMappingUpsert) UpdateLotNumber() *LotMappingUpsert {
	u.SetExcluded(lotmapping.FieldLotNumber)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *LotMappingUpsert) SetAccountID(v int) *LotMappingUpsert {
	u.Set(lotmapping.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *LotMappingUpsert) UpdateAccountID() *LotMappingUpsert {
	u.SetExcluded(lotmapping.FieldAccountID)
	return u
}

// AddAccountID adds v to the "account_id" field.
func (u *LotMappingUpsert) AddAccountID(v int) *LotMappingUpsert {
	u.Add(lotmapping.FieldAccountID, v)
	return u
}

// SetLotURL sets the "lot_url" field.
func (u *LotMappingUpsert) SetLotURL(v string) *LotMappingUpsert {
	u.Set(lotmapping.FieldLotURL, v)
	return u
}

// UpdateLotURL sets the "lot_url" field to the value that was provided on create.
func (u *LotMappingUpsert) UpdateLotURL() *LotMappingUpsert {
	u.SetExcluded(lotmapping.FieldLotURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LotMappingUpsertOne) UpdateNewValues() *LotMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lotmapping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LotMappingUpsertOne) Ignore() *LotMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LotMappingUpsertOne) DoNothing() *LotMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LotMappingCreate.OnConflict
// documentation for more info.
func (u *LotMappingUpsertOne) Update(set func(*LotMappingUpsert)) *LotMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LotMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *LotMappingUpsertOne) SetWorkspaceID(v int) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LotMappingUpsertOne) UpdateWorkspaceID() *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LotMappingUpsertOne) SetUserID(v int) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *LotMappingUpsertOne) AddUserID(v int) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LotMappingUpsertOne) UpdateUserID() *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateUserID()
	})
}

// SetLotNumber sets the "lot_number" field.
func (u *LotMappingUpsertOne) SetLotNumber(v string) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetLotNumber(v)
	})
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *LotMappingUpsertOne) UpdateLotNumber() *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateLotNumber()
	})
}

// SetAccountID sets the "account_id" field.
func (u *LotMappingUpsertOne) SetAccountID(v int) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *LotMappingUpsertOne) AddAccountID(v int) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *LotMappingUpsertOne) UpdateAccountID() *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateAccountID()
	})
}

// SetLotURL sets the "lot_url" field.
func (u *LotMappingUpsertOne) SetLotURL(v string) *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetLotURL(v)
	})
}

// UpdateLotURL sets the "lot_url" field to the value that was provided on create.
func (u *LotMappingUpsertOne) UpdateLotURL() *LotMappingUpsertOne {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateLotURL()
	})
}

// Exec executes the query.
func (u *LotMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LotMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LotMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LotMappingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LotMappingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LotMappingCreateBulk is the builder for creating many LotMapping entities in bulk.
type LotMappingCreateBulk struct {
	config
	err      error
	builders []*LotMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the LotMapping entities in the database.
func (_c *LotMappingCreateBulk) Save(ctx context.Context) ([]*LotMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LotMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LotMappingMutation)
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
func (_c *LotMappingCreateBulk) SaveX(ctx context.Context) []*LotMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LotMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LotMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LotMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LotMappingUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LotMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *LotMappingUpsertBulk {
	_c.conflict = opts
	return &LotMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LotMappingCreateBulk) OnConflictColumns(columns ...string) *LotMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LotMappingUpsertBulk{
		create: _c,
	}
}

// LotMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of LotMapping nodes.
type LotMappingUpsertBulk struct {
	create *LotMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LotMappingUpsertBulk) UpdateNewValues() *LotMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lotmapping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LotMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LotMappingUpsertBulk) Ignore() *LotMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LotMappingUpsertBulk) DoNothing() *LotMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LotMappingCreateBulk.OnConflict
// documentation for more info.
func (u *LotMappingUpsertBulk) Update(set func(*LotMappingUpsert)) *LotMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LotMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *LotMappingUpsertBulk) SetWorkspaceID(v int) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *LotMappingUpsertBulk) UpdateWorkspaceID() *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *LotMappingUpsertBulk) SetUserID(v int) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *LotMappingUpsertBulk) AddUserID(v int) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LotMappingUpsertBulk) UpdateUserID() *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateUserID()
	})
}

// SetLotNumber sets the "lot_number" field.
func (u *LotMappingUpsertBulk) SetLotNumber(v string) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetLotNumber(v)
	})
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *LotMappingUpsertBulk) UpdateLotNumber() *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateLotNumber()
	})
}

// SetAccountID sets the "account_id" field.
func (u *LotMappingUpsertBulk) SetAccountID(v int) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *LotMappingUpsertBulk) AddAccountID(v int) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *LotMappingUpsertBulk) UpdateAccountID() *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateAccountID()
	})
}

// SetLotURL sets the "lot_url" field.
func (u *LotMappingUpsertBulk) SetLotURL(v string) *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.SetLotURL(v)
	})
}

// UpdateLotURL sets the "lot_url" field to the value that was provided on create.
func (u *LotMappingUpsertBulk) UpdateLotURL() *LotMappingUpsertBulk {
	return u.Update(func(s *LotMappingUpsert) {
		s.UpdateLotURL()
	})
}

// Exec executes the query.
func (u *LotMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LotMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LotMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LotMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
