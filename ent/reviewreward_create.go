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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
)

// ReviewRewardCreate is the builder for creating a ReviewReward entity.
type ReviewRewardCreate struct {
	config
	mutation *ReviewRewardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrderID sets the "order_id" field.
func (_c *ReviewRewardCreate) SetOrderID(v string) *ReviewRewardCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetOwner sets the "owner" field.
func (_c *ReviewRewardCreate) SetOwner(v string) *ReviewRewardCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReviewRewardCreate) SetUserID(v int) *ReviewRewardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ReviewRewardCreate) SetWorkspaceID(v int) *ReviewRewardCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *ReviewRewardCreate) SetRating(v int) *ReviewRewardCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableRating(v *int) *ReviewRewardCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewText sets the "review_text" field.
func (_c *ReviewRewardCreate) SetReviewText(v string) *ReviewRewardCreate {
	_c.mutation.SetReviewText(v)
	return _c
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableReviewText(v *string) *ReviewRewardCreate {
	if v != nil {
		_c.SetReviewText(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *ReviewRewardCreate) SetAccountID(v int) *ReviewRewardCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableAccountID(v *int) *ReviewRewardCreate {
	if v != nil {
		_c.SetAccountID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ReviewRewardCreate) SetClaimedAt(v time.Time) *ReviewRewardCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableClaimedAt(v *time.Time) *ReviewRewardCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *ReviewRewardCreate) SetRevokedAt(v time.Time) *ReviewRewardCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableRevokedAt(v *time.Time) *ReviewRewardCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ReviewRewardCreate) SetReviewedAt(v time.Time) *ReviewRewardCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ReviewRewardCreate) SetNillableReviewedAt(v *time.Time) *ReviewRewardCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewRewardMutation object of the builder.
func (_c *ReviewRewardCreate) Mutation() *ReviewRewardMutation {
	return _c.mutation
}

// Save creates the ReviewReward in the database.
func (_c *ReviewRewardCreate) Save(ctx context.Context) (*ReviewReward, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewRewardCreate) SaveX(ctx context.Context) *ReviewReward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRewardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRewardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewRewardCreate) defaults() {
	if _, ok := _c.mutation.Rating(); !ok {
		v := reviewreward.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.ReviewText(); !ok {
		v := reviewreward.DefaultReviewText
		_c.mutation.SetReviewText(v)
	}
	if _, ok := _c.mutation.ClaimedAt(); !ok {
		v := reviewreward.DefaultClaimedAt()
		_c.mutation.SetClaimedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewRewardCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "ReviewReward.order_id"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "ReviewReward.owner"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewReward.user_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ReviewReward.workspace_id"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewReward.rating"`)}
	}
	if _, ok := _c.mutation.ReviewText(); !ok {
		return &ValidationError{Name: "review_text", err: errors.New(`ent: missing required field "ReviewReward.review_text"`)}
	}
	if _, ok := _c.mutation.ClaimedAt(); !ok {
		return &ValidationError{Name: "claimed_at", err: errors.New(`ent: missing required field "ReviewReward.claimed_at"`)}
	}
	return nil
}

func (_c *ReviewRewardCreate) sqlSave(ctx context.Context) (*ReviewReward, error) {
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

func (_c *ReviewRewardCreate) createSpec() (*ReviewReward, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewReward{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewreward.Table, sqlgraph.NewFieldSpec(reviewreward.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(reviewreward.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(reviewreward.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewreward.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(reviewreward.FieldWorkspaceID, field.TypeInt, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(reviewreward.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.ReviewText(); ok {
		_spec.SetField(reviewreward.FieldReviewText, field.TypeString, value)
		_node.ReviewText = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(reviewreward.FieldAccountID, field.TypeInt, value)
		_node.AccountID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(reviewreward.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(reviewreward.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewreward.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewReward.Create().
//		SetOrderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewRewardUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewRewardCreate) OnConflict(opts ...sql.ConflictOption) *ReviewRewardUpsertOne {
	_c.conflict = opts
	return &ReviewRewardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewRewardCreate) OnConflictColumns(columns ...string) *ReviewRewardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewRewardUpsertOne{
		create: _c,
	}
}

type (
	// ReviewRewardUpsertOne is the builder for "upsert"-ing
	//  one ReviewReward node.
	ReviewRewardUpsertOne struct {
		create *ReviewRewardCreate
	}

	// ReviewRewardUpsert is the "OnConflict" setter.
	ReviewRewardUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrderID sets the "order_id" field.
func (u *ReviewRewardUpsert) SetOrderID(v string) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateOrderID() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldOrderID)
	return u
}

// SetOwner sets the "owner" field.
func (u *ReviewRewardUpsert) SetOwner(v string) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldOwner, v)
	return u
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateOwner() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldOwner)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReviewRewardUpsert) SetUserID(v int) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateUserID() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewRewardUpsert) AddUserID(v int) *ReviewRewardUpsert {
	u.Add(reviewreward.FieldUserID, v)
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ReviewRewardUpsert) SetWorkspaceID(v int) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateWorkspaceID() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldWorkspaceID)
	return u
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *ReviewRewardUpsert) AddWorkspaceID(v int) *ReviewRewardUpsert {
	u.Add(reviewreward.FieldWorkspaceID, v)
	return u
}

// SetRating sets the "rating" field.
func (u *ReviewRewardUpsert) SetRating(v int) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateRating() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *ReviewRewardUpsert) AddRating(v int) *ReviewRewardUpsert {
	u.Add(reviewreward.FieldRating, v)
	return u
}

// SetReviewText sets the "review_text" field.
func (u *ReviewRewardUpsert) SetReviewText(v string) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldReviewText, v)
	return u
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateReviewText() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldReviewText)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *ReviewRewardUpsert) SetAccountID(v int) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateAccountID() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldAccountID)
	return u
}

// AddAccountID adds v to the "account_id" field.
func (u *ReviewRewardUpsert) AddAccountID(v int) *ReviewRewardUpsert {
	u.Add(reviewreward.FieldAccountID, v)
	return u
}

// ClearAccountID clears the value of the "account_id" field.
func (u *ReviewRewardUpsert) ClearAccountID() *ReviewRewardUpsert {
	u.SetNull(reviewreward.FieldAccountID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ReviewRewardUpsert) SetClaimedAt(v time.Time) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateClaimedAt() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldClaimedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *ReviewRewardUpsert) SetRevokedAt(v time.Time) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateRevokedAt() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *ReviewRewardUpsert) ClearRevokedAt() *ReviewRewardUpsert {
	u.SetNull(reviewreward.FieldRevokedAt)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRewardUpsert) SetReviewedAt(v time.Time) *ReviewRewardUpsert {
	u.Set(reviewreward.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsert) UpdateReviewedAt() *ReviewRewardUpsert {
	u.SetExcluded(reviewreward.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRewardUpsert) ClearReviewedAt() *ReviewRewardUpsert {
	u.SetNull(reviewreward.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewRewardUpsertOne) UpdateNewValues() *ReviewRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewRewardUpsertOne) Ignore() *ReviewRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewRewardUpsertOne) DoNothing() *ReviewRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewRewardCreate.OnConflict
// documentation for more info.
func (u *ReviewRewardUpsertOne) Update(set func(*ReviewRewardUpsert)) *ReviewRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewRewardUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *ReviewRewardUpsertOne) SetOrderID(v string) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateOrderID() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateOrderID()
	})
}

// SetOwner sets the "owner" field.
func (u *ReviewRewardUpsertOne) SetOwner(v string) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateOwner() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateOwner()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReviewRewardUpsertOne) SetUserID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewRewardUpsertOne) AddUserID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateUserID() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateUserID()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ReviewRewardUpsertOne) SetWorkspaceID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetWorkspaceID(v)
	})
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *ReviewRewardUpsertOne) AddWorkspaceID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateWorkspaceID() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRating sets the "rating" field.
func (u *ReviewRewardUpsertOne) SetRating(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *ReviewRewardUpsertOne) AddRating(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateRating() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateRating()
	})
}

// SetReviewText sets the "review_text" field.
func (u *ReviewRewardUpsertOne) SetReviewText(v string) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetReviewText(v)
	})
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateReviewText() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateReviewText()
	})
}

// SetAccountID sets the "account_id" field.
func (u *ReviewRewardUpsertOne) SetAccountID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *ReviewRewardUpsertOne) AddAccountID(v int) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateAccountID() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *ReviewRewardUpsertOne) ClearAccountID() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearAccountID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ReviewRewardUpsertOne) SetClaimedAt(v time.Time) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateClaimedAt() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateClaimedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *ReviewRewardUpsertOne) SetRevokedAt(v time.Time) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateRevokedAt() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *ReviewRewardUpsertOne) ClearRevokedAt() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearRevokedAt()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRewardUpsertOne) SetReviewedAt(v time.Time) *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertOne) UpdateReviewedAt() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRewardUpsertOne) ClearReviewedAt() *ReviewRewardUpsertOne {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ReviewRewardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewRewardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewRewardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewRewardUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewRewardUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewRewardCreateBulk is the builder for creating many ReviewReward entities in bulk.
type ReviewRewardCreateBulk struct {
	config
	err      error
	builders []*ReviewRewardCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewReward entities in the database.
func (_c *ReviewRewardCreateBulk) Save(ctx context.Context) ([]*ReviewReward, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewReward, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRewardMutation)
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
func (_c *ReviewRewardCreateBulk) SaveX(ctx context.Context) []*ReviewReward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRewardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRewardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewReward.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewRewardUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewRewardCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewRewardUpsertBulk {
	_c.conflict = opts
	return &ReviewRewardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewRewardCreateBulk) OnConflictColumns(columns ...string) *ReviewRewardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewRewardUpsertBulk{
		create: _c,
	}
}

// ReviewRewardUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewReward nodes.
type ReviewRewardUpsertBulk struct {
	create *ReviewRewardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReviewRewardUpsertBulk) UpdateNewValues() *ReviewRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewReward.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewRewardUpsertBulk) Ignore() *ReviewRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewRewardUpsertBulk) DoNothing() *ReviewRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewRewardCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewRewardUpsertBulk) Update(set func(*ReviewRewardUpsert)) *ReviewRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewRewardUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *ReviewRewardUpsertBulk) SetOrderID(v string) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateOrderID() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateOrderID()
	})
}

// SetOwner sets the "owner" field.
func (u *ReviewRewardUpsertBulk) SetOwner(v string) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetOwner(v)
	})
}

// UpdateOwner sets the "owner" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateOwner() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateOwner()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReviewRewardUpsertBulk) SetUserID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *ReviewRewardUpsertBulk) AddUserID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateUserID() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateUserID()
	})
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ReviewRewardUpsertBulk) SetWorkspaceID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetWorkspaceID(v)
	})
}

// AddWorkspaceID adds v to the "workspace_id" field.
func (u *ReviewRewardUpsertBulk) AddWorkspaceID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateWorkspaceID() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRating sets the "rating" field.
func (u *ReviewRewardUpsertBulk) SetRating(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *ReviewRewardUpsertBulk) AddRating(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateRating() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateRating()
	})
}

// SetReviewText sets the "review_text" field.
func (u *ReviewRewardUpsertBulk) SetReviewText(v string) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetReviewText(v)
	})
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateReviewText() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateReviewText()
	})
}

// SetAccountID sets the "account_id" field.
func (u *ReviewRewardUpsertBulk) SetAccountID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetAccountID(v)
	})
}

// AddAccountID adds v to the "account_id" field.
func (u *ReviewRewardUpsertBulk) AddAccountID(v int) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.AddAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateAccountID() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateAccountID()
	})
}

// ClearAccountID clears the value of the "account_id" field.
func (u *ReviewRewardUpsertBulk) ClearAccountID() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearAccountID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *ReviewRewardUpsertBulk) SetClaimedAt(v time.Time) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateClaimedAt() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateClaimedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *ReviewRewardUpsertBulk) SetRevokedAt(v time.Time) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateRevokedAt() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *ReviewRewardUpsertBulk) ClearRevokedAt() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearRevokedAt()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRewardUpsertBulk) SetReviewedAt(v time.Time) *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRewardUpsertBulk) UpdateReviewedAt() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRewardUpsertBulk) ClearReviewedAt() *ReviewRewardUpsertBulk {
	return u.Update(func(s *ReviewRewardUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ReviewRewardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewRewardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewRewardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewRewardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
