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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

// OrderEventCreate is the builder for creating a OrderEvent entity.
type OrderEventCreate struct {
	config
	mutation *OrderEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *OrderEventCreate) SetWorkspaceID(v int) *OrderEventCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OrderEventCreate) SetUserID(v int) *OrderEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *OrderEventCreate) SetOrderID(v string) *OrderEventCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *OrderEventCreate) SetOwner(v string) *OrderEventCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableOwner(v *string) *OrderEventCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *OrderEventCreate) SetAccountID(v int) *OrderEventCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableAccountID(v *int) *OrderEventCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetAccountName sets the "account_name" field.
func (_c *OrderEventCreate) SetAccountName(v string) *OrderEventCreate {
	_c.mutation.SetAccountName(v)
	return _c
}

// SetNillableAccountName sets the "account_name" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableAccountName(v *string) *OrderEventCreate {
	if v != nil {
		_c.SetAccountName(*v)
	}
	return _c
}

// SetSteamID sets the "steam_id" field.
func (_c *OrderEventCreate) SetSteamID(v int64) *OrderEventCreate {
	_c.mutation.SetSteamID(v)
	return _c
}

// SetNillableSteamID sets the "steam_id" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableSteamID(v *int64) *OrderEventCreate {
	if v != nil {
		_c.SetSteamID(*v)
	}
	return _c
}

// SetLotNumber sets the "lot_number" field.
func (_c *OrderEventCreate) SetLotNumber(v string) *OrderEventCreate {
	_c.mutation.SetLotNumber(v)
	return _c
}

// SetNillableLotNumber sets the "lot_number" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableLotNumber(v *string) *OrderEventCreate {
	if v != nil {
		_c.SetLotNumber(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *OrderEventCreate) SetAmount(v int) *OrderEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableAmount(v *int) *OrderEventCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *OrderEventCreate) SetPrice(v float64) *OrderEventCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillablePrice(v *float64) *OrderEventCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetRentalMinutes sets the "rental_minutes" field.
func (_c *OrderEventCreate) SetRentalMinutes(v int) *OrderEventCreate {
	_c.mutation.SetRentalMinutes(v)
	return _c
}

// SetNillableRentalMinutes sets the "rental_minutes" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableRentalMinutes(v *int) *OrderEventCreate {
	if v != nil {
		_c.SetRentalMinutes(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *OrderEventCreate) SetAction(v orderevent.Action) *OrderEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderEventCreate) SetCreatedAt(v time.Time) *OrderEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderEventCreate) SetNillableCreatedAt(v *time.Time) *OrderEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *OrderEventCreate) SetWorkspace(v *Workspace) *OrderEventCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the OrderEventMutation object of the builder.
func (_c *OrderEventCreate) Mutation() *OrderEventMutation {
	return _c.mutation
}

// Save creates the OrderEvent in the database.
func (_c *OrderEventCreate) Save(ctx context.Context) (*OrderEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderEventCreate) SaveX(ctx context.Context) *OrderEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderEventCreate) defaults() {
	if _, ok := _c.mutation.Owner(); !ok {
		v := orderevent.DefaultOwner
		_c.mutation.SetOwner(v)
	}
	if _, ok := _c.mutation.AccountName(); !ok {
		v := orderevent.DefaultAccountName
		_c.mutation.SetAccountName(v)
	}
	if _, ok := _c.mutation.LotNumber(); !ok {
		v := orderevent.DefaultLotNumber
		_c.mutation.SetLotNumber(v)
	}
	if _, ok := _c.mutation.Amount(); !ok {
		v := orderevent.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := orderevent.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.RentalMinutes(); !ok {
		v := orderevent.DefaultRentalMinutes
		_c.mutation.SetRentalMinutes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orderevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderEventCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "OrderEvent.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OrderEvent.user_id"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "OrderEvent.order_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "OrderEvent.owner"`)}
	}
	if _, ok := _c.mutation.AccountName(); !ok {
		return &ValidationError{Name: "account_name", err: errors.New(`ent: missing required field "OrderEvent.account_name"`)}
	}
	if _, ok := _c.mutation.LotNumber(); !ok {
		return &ValidationError{Name: "lot_number", err: errors.New(`ent: missing required field "OrderEvent.lot_number"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "OrderEvent.amount"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "OrderEvent.price"`)}
	}
	if _, ok := _c.mutation.RentalMinutes(); !ok {
		return &ValidationError{Name: "rental_minutes", err: errors.New(`ent: missing required field "OrderEvent.rental_minutes"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "OrderEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := orderevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "OrderEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrderEvent.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "OrderEvent.workspace"`)}
	}
	return nil
}

func (_c *OrderEventCreate) sqlSave(ctx context.Context) (*OrderEvent, error) {
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

func (_c *OrderEventCreate) createSpec() (*OrderEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderevent.Table, sqlgraph.NewFieldSpec(orderevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(orderevent.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(orderevent.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(orderevent.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(orderevent.FieldAccountID, field.TypeInt, value)
		_node.AccountID = &value
	}
	if value, ok := _c.mutation.AccountName(); ok {
		_spec.SetField(orderevent.FieldAccountName, field.TypeString, value)
		_node.AccountName = value
	}
	if value, ok := _c.mutation.SteamID(); ok {
		_spec.SetField(orderevent.FieldSteamID, field.TypeInt64, value)
		_node.SteamID = &value
	}
	if value, ok := _c.mutation.LotNumber(); ok {
		_spec.SetField(orderevent.FieldLotNumber, field.TypeString, value)
		_node.LotNumber = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(orderevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(orderevent.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.RentalMinutes(); ok {
		_spec.SetField(orderevent.FieldRentalMinutes, field.TypeInt, value)
		_node.RentalMinutes = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(orderevent.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orderevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderevent.WorkspaceTable,
			Columns: []string{orderevent.WorkspaceColumn},
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
//	client.OrderEvent.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderEventCreate) OnConflict(opts ...sql.ConflictOption) *OrderEventUpsertOne {
	_c.conflict = opts
	return &OrderEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderEventCreate) OnConflictColumns(columns ...string) *OrderEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderEventUpsertOne{
		create: _c,
	}
}

type (
	// OrderEventUpsertOne is the builder for "upsert"-ing
	//  one OrderEvent node.
	OrderEventUpsertOne struct {
		create *OrderEventCreate
	}

	// OrderEventUpsert is the "OnConflict" setter.
	OrderEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *OrderEventUpsert) SetWorkspaceID(v int) *OrderEventUpsert {
	u.Set(orderevent.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateWorkspaceID() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *OrderEventUpsert) SetUserID(v int) *OrderEventUpsert {
	u.Set(orderevent.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateUserID() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *OrderEventUpsert) AddUserID(v int) *OrderEventUpsert {
	u.Add(orderevent.FieldUserID, v)
	return u
}

// SetOrderID sets the "order_id" field.
func (u *OrderEventUpsert) SetOrderID(v string) *OrderEventUpsert {
	u.Set(orderevent.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateOrderID() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldOrderID)
	return u
}

// SetOwner sets the "owner" field.
func (u *OrderEventUpsert) SetOwner(v string) *OrderEventUpsert {
	u.Set(orderevent.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateOwner() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldOwner)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *OrderEventUpsert) SetAccountID(v int) *OrderEventUpsert {
	u.Set(orderevent.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateAccountID() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldAccountID)
	return u
}

// AddAccountID adds v to the "account_id" field.
func (u *OrderEventUpsert) AddAccountID(v int) *OrderEventUpsert {
	u.Add(orderevent.FieldAccountID, v)
	return u
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OrderEventUpsert) ClearAccountID() *OrderEventUpsert {
	u.SetNull(orderevent.FieldAccountID)
	return u
}

// SetAccountName sets the "account_name" field.
func (u *OrderEventUpsert) SetAccountName(v string) *OrderEventUpsert {
	u.Set(orderevent.FieldAccountName, v)
	return u
}

// UpdateAccountName sets the "account_name" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateAccountName() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldAccountName)
	return u
}

// SetSteamID sets the "steam_id" field.
func (u *OrderEventUpsert) SetSteamID(v int64) *OrderEventUpsert {
	u.Set(orderevent.FieldSteamID, v)
	return u
}

// UpdateSteamID sets the "steam_id" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateSteamID() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldSteamID)
	return u
}

// AddSteamID adds v to the "steam_id" field.
func (u *OrderEventUpsert) AddSteamID(v int64) *OrderEventUpsert {
	u.Add(orderevent.FieldSteamID, v)
	return u
}

// ClearSteamID clears the value of the "steam_id" field.
func (u *OrderEventUpsert) ClearSteamID() *OrderEventUpsert {
	u.SetNull(orderevent.FieldSteamID)
	return u
}

// SetLotNumber sets the "lot_number" field.
func (u *OrderEventUpsert) SetLotNumber(v string) *OrderEventUpsert {
	u.Set(orderevent.FieldLotNumber, v)
	return u
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateLotNumber() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldLotNumber)
	return u
}

// SetAmount sets the "amount" field.
func (u *OrderEventUpsert) SetAmount(v int) *OrderEventUpsert {
	u.Set(orderevent.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateAmount() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *OrderEventUpsert) AddAmount(v int) *OrderEventUpsert {
	u.Add(orderevent.FieldAmount, v)
	return u
}

// SetPrice sets the "price" field.
func (u *OrderEventUpsert) SetPrice(v float64) *OrderEventUpsert {
	u.Set(orderevent.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdatePrice() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *OrderEventUpsert) AddPrice(v float64) *OrderEventUpsert {
	u.Add(orderevent.FieldPrice, v)
	return u
}

// SetRentalMinutes sets the "rental_minutes" field.
func (u *OrderEventUpsert) SetRentalMinutes(v int) *OrderEventUpsert {
	u.Set(orderevent.FieldRentalMinutes, v)
	return u
}

// UpdateRentalMinutes sets the "rental_minutes" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateRentalMinutes() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldRentalMinutes)
	return u
}

// AddRentalMinutes adds v to the "rental_minutes" field.
func (u *OrderEventUpsert) AddRentalMinutes(v int) *OrderEventUpsert {
	u.Add(orderevent.FieldRentalMinutes, v)
	return u
}

// SetAction sets the "action" field.
func (u *OrderEventUpsert) SetAction(v orderevent.Action) *OrderEventUpsert {
	u.Set(orderevent.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *OrderEventUpsert) UpdateAction() *OrderEventUpsert {
	u.SetExcluded(orderevent.FieldAction)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderEventUpsertOne) UpdateNewValues() *OrderEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(orderevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderEventUpsertOne) Ignore() *OrderEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderEventUpsertOne) DoNothing() *OrderEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderEventCreate.OnConflict
// documentation for more info.
func (u *OrderEventUpsertOne) Update(set func(*OrderEventUpsert)) *OrderEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OrderEventUpsertOne) SetWorkspaceID(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateWorkspaceID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *OrderEventUpsertOne) SetUserID(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *OrderEventUpsertOne) AddUserID(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateUserID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateUserID()
	})
}

// SetOrderID sets the "order_id" field.
func (u *OrderEventUpsertOne) SetOrderID(v string) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateOrderID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateOrderID()
	})
}

// SetOwner sets the "owner" field.
func (u *OrderEventUpsertOne) SetOwner(v string) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateOwner() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateOwner()
	})
}

// SetAccountID sets the "account_id" field.
func (u *OrderEventUpsertOne) SetAccountID(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *OrderEventUpsertOne) AddAccountID(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateAccountID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OrderEventUpsertOne) ClearAccountID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.ClearAccountID()
	})
}

// SetAccountName sets the "account_name" field.
func (u *OrderEventUpsertOne) SetAccountName(v string) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAccountName(v)
	})
}

// UpdateAccountName sets the "account_name" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateAccountName() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAccountName()
	})
}

// SetSteamID sets the "steam_id" field.
func (u *OrderEventUpsertOne) SetSteamID(v int64) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetSteamID(v)
	})
}

// AddSteamID adds v to the "steam_id" field.
func (u *OrderEventUpsertOne) AddSteamID(v int64) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddSteamID(v)
	})
}

// UpdateSteamID sets the "steam_id" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateSteamID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateSteamID()
	})
}

// ClearSteamID clears the value of the "steam_id" field.
func (u *OrderEventUpsertOne) ClearSteamID() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.ClearSteamID()
	})
}

// SetLotNumber sets the "lot_number" field.
func (u *OrderEventUpsertOne) SetLotNumber(v string) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetLotNumber(v)
	})
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateLotNumber() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateLotNumber()
	})
}

// SetAmount sets the "amount" field.
func (u *OrderEventUpsertOne) SetAmount(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *OrderEventUpsertOne) AddAmount(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateAmount() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAmount()
	})
}

// SetPrice sets the "price" field.
func (u *OrderEventUpsertOne) SetPrice(v float64) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *OrderEventUpsertOne) AddPrice(v float64) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdatePrice() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdatePrice()
	})
}

// SetRentalMinutes sets the "rental_minutes" field.
func (u *OrderEventUpsertOne) SetRentalMinutes(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetRentalMinutes(v)
	})
}

// AddRentalMinutes adds v to the "rental_minutes" field.
func (u *OrderEventUpsertOne) AddRentalMinutes(v int) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddRentalMinutes(v)
	})
}

// UpdateRentalMinutes sets the "rental_minutes" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateRentalMinutes() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateRentalMinutes()
	})
}

// SetAction sets the "action" field.
func (u *OrderEventUpsertOne) SetAction(v orderevent.Action) *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *OrderEventUpsertOne) UpdateAction() *OrderEventUpsertOne {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAction()
	})
}

// Exec executes the query.
func (u *OrderEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderEventCreateBulk is the builder for creating many OrderEvent entities in bulk.
type OrderEventCreateBulk struct {
	config
	err      error
	builders []*OrderEventCreate
	conflict []sql.ConflictOption
}

// Save creates the OrderEvent entities in the database.
func (_c *OrderEventCreateBulk) Save(ctx context.Context) ([]*OrderEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderEventMutation)
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
func (_c *OrderEventCreateBulk) SaveX(ctx context.Context) []*OrderEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderEventUpsertBulk {
	_c.conflict = opts
	return &OrderEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderEventCreateBulk) OnConflictColumns(columns ...string) *OrderEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderEventUpsertBulk{
		create: _c,
	}
}

// OrderEventUpsertBulk is the builder for "upsert"-ing
// a bulk of OrderEvent nodes.
type OrderEventUpsertBulk struct {
	create *OrderEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OrderEventUpsertBulk) UpdateNewValues() *OrderEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(orderevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderEventUpsertBulk) Ignore() *OrderEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderEventUpsertBulk) DoNothing() *OrderEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderEventCreateBulk.OnConflict
// documentation for more info.
func (u *OrderEventUpsertBulk) Update(set func(*OrderEventUpsert)) *OrderEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OrderEventUpsertBulk) SetWorkspaceID(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateWorkspaceID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *OrderEventUpsertBulk) SetUserID(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *OrderEventUpsertBulk) AddUserID(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateUserID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateUserID()
	})
}

// SetOrderID sets the "order_id" field.
func (u *OrderEventUpsertBulk) SetOrderID(v string) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateOrderID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateOrderID()
	})
}

// SetOwner sets the "owner" field.
func (u *OrderEventUpsertBulk) SetOwner(v string) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateOwner() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateOwner()
	})
}

// SetAccountID sets the "account_id" field.
func (u *OrderEventUpsertBulk) SetAccountID(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *OrderEventUpsertBulk) AddAccountID(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateAccountID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *OrderEventUpsertBulk) ClearAccountID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.ClearAccountID()
	})
}

// SetAccountName sets the "account_name" field.
func (u *OrderEventUpsertBulk) SetAccountName(v string) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAccountName(v)
	})
}

// UpdateAccountName sets the "account_name" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateAccountName() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAccountName()
	})
}

// SetSteamID sets the "steam_id" field.
func (u *OrderEventUpsertBulk) SetSteamID(v int64) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetSteamID(v)
	})
}

// AddSteamID adds v to the "steam_id" field.
func (u *OrderEventUpsertBulk) AddSteamID(v int64) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddSteamID(v)
	})
}

// UpdateSteamID sets the "steam_id" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateSteamID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateSteamID()
	})
}

// ClearSteamID clears the value of the "steam_id" field.
func (u *OrderEventUpsertBulk) ClearSteamID() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.ClearSteamID()
	})
}

// SetLotNumber sets the "lot_number" field.
func (u *OrderEventUpsertBulk) SetLotNumber(v string) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetLotNumber(v)
	})
}

// UpdateLotNumber sets the "lot_number" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateLotNumber() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateLotNumber()
	})
}

// SetAmount sets the "amount" field.
func (u *OrderEventUpsertBulk) SetAmount(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *OrderEventUpsertBulk) AddAmount(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateAmount() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAmount()
	})
}

// SetPrice sets the "price" field.
func (u *OrderEventUpsertBulk) SetPrice(v float64) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *OrderEventUpsertBulk) AddPrice(v float64) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdatePrice() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdatePrice()
	})
}

// SetRentalMinutes sets the "rental_minutes" field.
func (u *OrderEventUpsertBulk) SetRentalMinutes(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetRentalMinutes(v)
	})
}

// AddRentalMinutes adds v to the "rental_minutes" field.
func (u *OrderEventUpsertBulk) AddRentalMinutes(v int) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.AddRentalMinutes(v)
	})
}

// UpdateRentalMinutes sets the "rental_minutes" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateRentalMinutes() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateRentalMinutes()
	})
}

// SetAction sets the "action" field.
func (u *OrderEventUpsertBulk) SetAction(v orderevent.Action) *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *OrderEventUpsertBulk) UpdateAction() *OrderEventUpsertBulk {
	return u.Update(func(s *OrderEventUpsert) {
		s.UpdateAction()
	})
}

// Exec executes the query.
func (u *OrderEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
