package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
)

// BlacklistService manages the per-workspace buyer blacklist and its audit
// log. Lookups are case-insensitive through the owner_key column.
type BlacklistService struct {
	client *ent.Client
}

// NewBlacklistService creates a new BlacklistService
func NewBlacklistService(client *ent.Client) *BlacklistService {
	return &BlacklistService{client: client}
}

// OwnerKey normalizes a buyer nickname for blacklist matching.
func OwnerKey(owner string) string {
	return strings.ToLower(strings.TrimSpace(owner))
}

// Add puts a buyer on the blacklist. Re-adding an existing entry is a
// no-op that still returns the entry.
func (s *BlacklistService) Add(httpCtx context.Context, workspaceID, userID int, owner, reason string) (*ent.BlacklistEntry, error) {
	key := OwnerKey(owner)
	if key == "" {
		return nil, NewValidationError("owner", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.BlacklistEntry.Query().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
			blacklistentry.OwnerKeyEQ(key),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check blacklist: %w", err)
	}

	entry, err := s.client.BlacklistEntry.Create().
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetOwner(strings.TrimSpace(owner)).
		SetOwnerKey(key).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to add blacklist entry: %w", err)
	}

	s.log(ctx, userID, key, blacklistlog.ActionAdded, reason, "", 0)
	return entry, nil
}

// Remove takes a buyer off the blacklist.
func (s *BlacklistService) Remove(httpCtx context.Context, workspaceID, userID int, owner string) error {
	key := OwnerKey(owner)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.BlacklistEntry.Delete().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
			blacklistentry.OwnerKeyEQ(key),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove blacklist entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log(ctx, userID, key, blacklistlog.ActionRemoved, "", "", 0)
	return nil
}

// AutoRemove lifts a blacklist entry from the auto-unblacklist flow and
// logs it with the compensated minutes.
func (s *BlacklistService) AutoRemove(httpCtx context.Context, workspaceID, userID int, owner, details string, compMinutes int) error {
	key := OwnerKey(owner)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.BlacklistEntry.Delete().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
			blacklistentry.OwnerKeyEQ(key),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to auto-remove blacklist entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log(ctx, userID, key, blacklistlog.ActionAutoUnblacklist, "", details, compMinutes)
	return nil
}

// IsBlacklisted reports whether a buyer is blocked in the workspace.
func (s *BlacklistService) IsBlacklisted(httpCtx context.Context, workspaceID, userID int, owner string) (bool, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.BlacklistEntry.Query().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
			blacklistentry.OwnerKeyEQ(OwnerKey(owner)),
		).
		Exist(ctx)
}

// Get returns one entry, or ErrNotFound.
func (s *BlacklistService) Get(httpCtx context.Context, workspaceID, userID int, owner string) (*ent.BlacklistEntry, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	entry, err := s.client.BlacklistEntry.Query().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
			blacklistentry.OwnerKeyEQ(OwnerKey(owner)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blacklist entry: %w", err)
	}
	return entry, nil
}

// List returns all entries of a workspace, newest first.
func (s *BlacklistService) List(httpCtx context.Context, workspaceID, userID int) ([]*ent.BlacklistEntry, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.BlacklistEntry.Query().
		Where(
			blacklistentry.WorkspaceID(workspaceID),
			blacklistentry.UserID(userID),
		).
		Order(ent.Desc(blacklistentry.FieldID)).
		All(ctx)
}

// LogBlockedOrder records that an order from a blacklisted buyer was turned
// away.
func (s *BlacklistService) LogBlockedOrder(httpCtx context.Context, userID int, owner, orderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log(ctx, userID, OwnerKey(owner), blacklistlog.ActionBlockedOrder, "", orderID, 0)
}

// Logs returns the audit trail for one buyer, newest first.
func (s *BlacklistService) Logs(httpCtx context.Context, userID int, owner string, limit int) ([]*ent.BlacklistLog, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.BlacklistLog.Query().
		Where(blacklistlog.UserID(userID))
	if owner != "" {
		q = q.Where(blacklistlog.OwnerEQ(OwnerKey(owner)))
	}
	return q.Order(ent.Desc(blacklistlog.FieldID)).
		Limit(limit).
		All(ctx)
}

func (s *BlacklistService) log(ctx context.Context, userID int, ownerKey string, action blacklistlog.Action, reason, details string, amount int) {
	// Audit rows are best-effort; a failed log never blocks the operation.
	_, _ = s.client.BlacklistLog.Create().
		SetUserID(userID).
		SetOwner(ownerKey).
		SetAction(action).
		SetReason(reason).
		SetDetails(details).
		SetAmount(amount).
		Save(ctx)
}
