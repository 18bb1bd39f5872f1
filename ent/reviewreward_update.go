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
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
)

// ReviewRewardUpdate is the builder for updating ReviewReward entities.
type ReviewRewardUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRewardMutation
}

// Where appends a list predicates to the ReviewRewardUpdate builder.
func (_u *ReviewRewardUpdate) Where(ps ...predicate.ReviewReward) *ReviewRewardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *ReviewRewardUpdate) SetOrderID(v string) *ReviewRewardUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableOrderID(v *string) *ReviewRewardUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ReviewRewardUpdate) SetOwner(v string) *ReviewRewardUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableOwner(v *string) *ReviewRewardUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewRewardUpdate) SetUserID(v int) *ReviewRewardUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableUserID(v *int) *ReviewRewardUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReviewRewardUpdate) AddUserID(v int) *ReviewRewardUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ReviewRewardUpdate) SetWorkspaceID(v int) *ReviewRewardUpdate {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableWorkspaceID(v *int) *ReviewRewardUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *ReviewRewardUpdate) AddWorkspaceID(v int) *ReviewRewardUpdate {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewRewardUpdate) SetRating(v int) *ReviewRewardUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableRating(v *int) *ReviewRewardUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewRewardUpdate) AddRating(v int) *ReviewRewardUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *ReviewRewardUpdate) SetReviewText(v string) *ReviewRewardUpdate {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableReviewText(v *string) *ReviewRewardUpdate {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ReviewRewardUpdate) SetAccountID(v int) *ReviewRewardUpdate {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableAccountID(v *int) *ReviewRewardUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *ReviewRewardUpdate) AddAccountID(v int) *ReviewRewardUpdate {
	_u.mutation.AddAccountID(v)
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *ReviewRewardUpdate) ClearAccountID() *ReviewRewardUpdate {
	_u.mutation.ClearAccountID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ReviewRewardUpdate) SetClaimedAt(v time.Time) *ReviewRewardUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableClaimedAt(v *time.Time) *ReviewRewardUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *ReviewRewardUpdate) SetRevokedAt(v time.Time) *ReviewRewardUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableRevokedAt(v *time.Time) *ReviewRewardUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *ReviewRewardUpdate) ClearRevokedAt() *ReviewRewardUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ReviewRewardUpdate) SetReviewedAt(v time.Time) *ReviewRewardUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ReviewRewardUpdate) SetNillableReviewedAt(v *time.Time) *ReviewRewardUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ReviewRewardUpdate) ClearReviewedAt() *ReviewRewardUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the ReviewRewardMutation object of the builder.
func (_u *ReviewRewardUpdate) Mutation() *ReviewRewardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewRewardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRewardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewRewardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRewardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewRewardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewreward.Table, reviewreward.Columns, sqlgraph.NewFieldSpec(reviewreward.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(reviewreward.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(reviewreward.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewreward.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reviewreward.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(reviewreward.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(reviewreward.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewreward.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewreward.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(reviewreward.FieldReviewText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(reviewreward.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(reviewreward.FieldAccountID, field.TypeInt, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(reviewreward.FieldAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(reviewreward.FieldClaimedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(reviewreward.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(reviewreward.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewreward.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(reviewreward.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewreward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewRewardUpdateOne is the builder for updating a single ReviewReward entity.
type ReviewRewardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRewardMutation
}

// SetOrderID sets the "order_id" field.
func (_u *ReviewRewardUpdateOne) SetOrderID(v string) *ReviewRewardUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableOrderID(v *string) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ReviewRewardUpdateOne) SetOwner(v string) *ReviewRewardUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableOwner(v *string) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewRewardUpdateOne) SetUserID(v int) *ReviewRewardUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableUserID(v *int) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReviewRewardUpdateOne) AddUserID(v int) *ReviewRewardUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ReviewRewardUpdateOne) SetWorkspaceID(v int) *ReviewRewardUpdateOne {
	_u.mutation.ResetWorkspaceID()
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableWorkspaceID(v *int) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// AddWorkspaceID adds value to the "workspace_id" field.
func (_u *ReviewRewardUpdateOne) AddWorkspaceID(v int) *ReviewRewardUpdateOne {
	_u.mutation.AddWorkspaceID(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewRewardUpdateOne) SetRating(v int) *ReviewRewardUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableRating(v *int) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewRewardUpdateOne) AddRating(v int) *ReviewRewardUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *ReviewRewardUpdateOne) SetReviewText(v string) *ReviewRewardUpdateOne {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableReviewText(v *string) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ReviewRewardUpdateOne) SetAccountID(v int) *ReviewRewardUpdateOne {
	_u.mutation.ResetAccountID()
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableAccountID(v *int) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// AddAccountID adds value to the "account_id" field.
func (_u *ReviewRewardUpdateOne) AddAccountID(v int) *ReviewRewardUpdateOne {
	_u.mutation.AddAccountID(v)
	return _u
}

// ClearAccountID clears the value of the "account_id" field.
func (_u *ReviewRewardUpdateOne) ClearAccountID() *ReviewRewardUpdateOne {
	_u.mutation.ClearAccountID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ReviewRewardUpdateOne) SetClaimedAt(v time.Time) *ReviewRewardUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableClaimedAt(v *time.Time) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *ReviewRewardUpdateOne) SetRevokedAt(v time.Time) *ReviewRewardUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableRevokedAt(v *time.Time) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *ReviewRewardUpdateOne) ClearRevokedAt() *ReviewRewardUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ReviewRewardUpdateOne) SetReviewedAt(v time.Time) *ReviewRewardUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ReviewRewardUpdateOne) SetNillableReviewedAt(v *time.Time) *ReviewRewardUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ReviewRewardUpdateOne) ClearReviewedAt() *ReviewRewardUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the ReviewRewardMutation object of the builder.
func (_u *ReviewRewardUpdateOne) Mutation() *ReviewRewardMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewRewardUpdate builder.
func (_u *ReviewRewardUpdateOne) Where(ps ...predicate.ReviewReward) *ReviewRewardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewRewardUpdateOne) Select(field string, fields ...string) *ReviewRewardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewReward entity.
func (_u *ReviewRewardUpdateOne) Save(ctx context.Context) (*ReviewReward, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRewardUpdateOne) SaveX(ctx context.Context) *ReviewReward {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewRewardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRewardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewRewardUpdateOne) sqlSave(ctx context.Context) (_node *ReviewReward, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewreward.Table, reviewreward.Columns, sqlgraph.NewFieldSpec(reviewreward.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewReward.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewreward.FieldID)
		for _, f := range fields {
			if !reviewreward.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewreward.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(reviewreward.FieldOrderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(reviewreward.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewreward.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reviewreward.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(reviewreward.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkspaceID(); ok {
		_spec.AddField(reviewreward.FieldWorkspaceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewreward.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewreward.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(reviewreward.FieldReviewText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(reviewreward.FieldAccountID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccountID(); ok {
		_spec.AddField(reviewreward.FieldAccountID, field.TypeInt, value)
	}
	if _u.mutation.AccountIDCleared() {
		_spec.ClearField(reviewreward.FieldAccountID, field.TypeInt)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(reviewreward.FieldClaimedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(reviewreward.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(reviewreward.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewreward.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(reviewreward.FieldReviewedAt, field.TypeTime)
	}
	_node = &ReviewReward{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewreward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
