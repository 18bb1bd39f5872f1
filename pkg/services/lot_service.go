package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
)

// LotService maps marketplace lot numbers onto accounts.
type LotService struct {
	client *ent.Client
}

// NewLotService creates a new LotService
func NewLotService(client *ent.Client) *LotService {
	return &LotService{client: client}
}

// Create binds a lot number to an account within a workspace.
func (s *LotService) Create(httpCtx context.Context, req models.CreateLotRequest) (*ent.LotMapping, error) {
	if strings.TrimSpace(req.LotNumber) == "" {
		return nil, NewValidationError("lot_number", "required")
	}
	if req.AccountID <= 0 {
		return nil, NewValidationError("account_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lot, err := s.client.LotMapping.Create().
		SetWorkspaceID(req.WorkspaceID).
		SetUserID(req.UserID).
		SetLotNumber(strings.TrimSpace(req.LotNumber)).
		SetAccountID(req.AccountID).
		SetLotURL(req.LotURL).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create lot mapping: %w", err)
	}
	return lot, nil
}

// Delete removes one mapping.
func (s *LotService) Delete(httpCtx context.Context, userID, lotID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.LotMapping.Delete().
		Where(lotmapping.ID(lotID), lotmapping.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lot mapping: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all mappings in one workspace.
func (s *LotService) List(httpCtx context.Context, userID, workspaceID int) ([]*ent.LotMapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.LotMapping.Query().
		Where(lotmapping.UserID(userID), lotmapping.WorkspaceID(workspaceID)).
		Order(ent.Asc(lotmapping.FieldID)).
		All(ctx)
}

// Resolve finds the account bound to a lot number, or ErrNotFound when the
// lot is unmapped.
func (s *LotService) Resolve(httpCtx context.Context, workspaceID, userID int, lotNumber string) (*ent.LotMapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	lot, err := s.client.LotMapping.Query().
		Where(
			lotmapping.WorkspaceID(workspaceID),
			lotmapping.UserID(userID),
			lotmapping.LotNumberEQ(lotNumber),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve lot %s: %w", lotNumber, err)
	}
	return lot, nil
}

// ForAccount returns mappings pointing at one account; used when a rented
// account must be swapped for a same-lot replacement first.
func (s *LotService) ForAccount(httpCtx context.Context, accountID int) ([]*ent.LotMapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.LotMapping.Query().
		Where(lotmapping.AccountID(accountID)).
		Order(ent.Asc(lotmapping.FieldID)).
		All(ctx)
}
