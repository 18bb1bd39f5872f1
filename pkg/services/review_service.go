package services

import (
	"context"
	"fmt"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
)

// ReviewService tracks review-bonus claims: one reward per order, revocable
// when the buyer deletes or downgrades the review.
type ReviewService struct {
	client *ent.Client
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *ent.Client) *ReviewService {
	return &ReviewService{client: client}
}

// Claim records a review reward for an order. Returns ErrAlreadyExists if
// the order was rewarded before (even if since revoked), which keeps the
// write-delete-rewrite loophole closed.
func (s *ReviewService) Claim(httpCtx context.Context, workspaceID, userID int, orderID, owner string, rating int, text string) (*ent.ReviewReward, error) {
	if orderID == "" {
		return nil, NewValidationError("order_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rr, err := s.client.ReviewReward.Create().
		SetOrderID(orderID).
		SetOwner(OwnerKey(owner)).
		SetUserID(userID).
		SetWorkspaceID(workspaceID).
		SetRating(rating).
		SetReviewText(text).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to claim review reward: %w", err)
	}
	return rr, nil
}

// Get returns the reward of an order, or ErrNotFound.
func (s *ReviewService) Get(httpCtx context.Context, orderID string) (*ent.ReviewReward, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rr, err := s.client.ReviewReward.Query().
		Where(reviewreward.OrderIDEQ(orderID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load review reward: %w", err)
	}
	return rr, nil
}

// Revoke marks a reward as taken back. Returns the reward so the caller
// can reverse the bonus minutes; a second revoke returns ErrNotFound.
func (s *ReviewService) Revoke(httpCtx context.Context, orderID string) (*ent.ReviewReward, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rr, err := s.client.ReviewReward.Query().
		Where(
			reviewreward.OrderIDEQ(orderID),
			reviewreward.RevokedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load review reward: %w", err)
	}

	rr, err = s.client.ReviewReward.UpdateOneID(rr.ID).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke review reward: %w", err)
	}
	return rr, nil
}
