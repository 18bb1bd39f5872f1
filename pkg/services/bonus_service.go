package services

import (
	"context"
	"fmt"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
)

// BonusService manages per-buyer bonus-minute wallets. Every balance change
// writes a history row in the same transaction.
type BonusService struct {
	client *ent.Client
}

// NewBonusService creates a new BonusService
func NewBonusService(client *ent.Client) *BonusService {
	return &BonusService{client: client}
}

// Balance returns the wallet balance in minutes; a missing wallet is zero.
func (s *BonusService) Balance(httpCtx context.Context, workspaceID, userID int, owner string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	w, err := s.client.BonusWallet.Query().
		Where(
			bonuswallet.WorkspaceID(workspaceID),
			bonuswallet.UserID(userID),
			bonuswallet.OwnerEQ(OwnerKey(owner)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load bonus wallet: %w", err)
	}
	return w.BalanceMinutes, nil
}

// Adjust changes the wallet by delta minutes (positive or negative) and
// appends a history row atomically. Negative balances are clamped to zero.
// Returns the new balance.
func (s *BonusService) Adjust(httpCtx context.Context, workspaceID, userID int, owner string, delta int, reason, orderID string) (int, error) {
	key := OwnerKey(owner)
	if key == "" {
		return 0, NewValidationError("owner", "required")
	}
	if delta == 0 {
		return s.Balance(httpCtx, workspaceID, userID, owner)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	w, err := tx.BonusWallet.Query().
		Where(
			bonuswallet.WorkspaceID(workspaceID),
			bonuswallet.UserID(userID),
			bonuswallet.OwnerEQ(key),
		).
		ForUpdate().
		Only(ctx)
	if ent.IsNotFound(err) {
		w, err = tx.BonusWallet.Create().
			SetWorkspaceID(workspaceID).
			SetUserID(userID).
			SetOwner(key).
			SetBalanceMinutes(0).
			Save(ctx)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load bonus wallet: %w", err)
	}

	balance := w.BalanceMinutes + delta
	if balance < 0 {
		balance = 0
	}
	if _, err := tx.BonusWallet.UpdateOneID(w.ID).
		SetBalanceMinutes(balance).
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to update bonus wallet: %w", err)
	}

	if _, err := tx.BonusHistory.Create().
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetOwner(key).
		SetDeltaMinutes(delta).
		SetReason(reason).
		SetOrderID(orderID).
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to record bonus history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return balance, nil
}

// History returns a buyer's bonus movements, newest first.
func (s *BonusService) History(httpCtx context.Context, workspaceID, userID int, owner string, limit int) ([]*ent.BonusHistory, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.BonusHistory.Query().
		Where(
			bonushistory.WorkspaceID(workspaceID),
			bonushistory.UserID(userID),
			bonushistory.OwnerEQ(OwnerKey(owner)),
		).
		Order(ent.Desc(bonushistory.FieldID)).
		Limit(limit).
		All(ctx)
}
