package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
)

// WorkspaceService manages marketplace workspaces (token + proxy pairs).
// Tokens and proxy passwords go through the column cipher on write and are
// decrypted on the accessors below.
type WorkspaceService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(client *ent.Client, cipher *crypto.Cipher) *WorkspaceService {
	return &WorkspaceService{client: client, cipher: cipher}
}

// Create creates a workspace. The first workspace of a user becomes the
// default automatically; an explicit is_default clears the previous one.
func (s *WorkspaceService) Create(httpCtx context.Context, req models.CreateWorkspaceRequest) (*ent.Workspace, error) {
	if strings.TrimSpace(req.Token) == "" {
		return nil, NewValidationError("token", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.Workspace.Query().
		Where(workspace.UserID(req.UserID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count workspaces: %w", err)
	}
	isDefault := req.IsDefault || count == 0

	if isDefault && count > 0 {
		if _, err := tx.Workspace.Update().
			Where(workspace.UserID(req.UserID), workspace.IsDefault(true)).
			SetIsDefault(false).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear previous default: %w", err)
		}
	}

	token, err := s.cipher.Encrypt(req.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt token: %w", err)
	}
	proxyPass, err := s.cipher.Encrypt(req.ProxyPass)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt proxy password: %w", err)
	}

	ws, err := tx.Workspace.Create().
		SetUserID(req.UserID).
		SetLabel(req.Label).
		SetToken(token).
		SetProxyURI(req.ProxyURI).
		SetProxyUser(req.ProxyUser).
		SetProxyPass(proxyPass).
		SetIsDefault(isDefault).
		SetStatus(workspace.StatusOk).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return ws, nil
}

// Update edits a workspace; nil request fields are left unchanged.
func (s *WorkspaceService) Update(httpCtx context.Context, userID, workspaceID int, req models.UpdateWorkspaceRequest) (*ent.Workspace, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ws, err := tx.Workspace.Query().
		Where(workspace.ID(workspaceID), workspace.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	upd := tx.Workspace.UpdateOneID(ws.ID)
	if req.Label != nil {
		upd.SetLabel(*req.Label)
	}
	if req.Token != nil {
		if strings.TrimSpace(*req.Token) == "" {
			return nil, NewValidationError("token", "required")
		}
		token, err := s.cipher.Encrypt(*req.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt token: %w", err)
		}
		// A fresh token resets the unauthorized flag until proven otherwise.
		upd.SetToken(token).
			SetStatus(workspace.StatusOk).
			ClearStatusMessage()
	}
	if req.ProxyURI != nil {
		upd.SetProxyURI(*req.ProxyURI)
	}
	if req.ProxyUser != nil {
		upd.SetProxyUser(*req.ProxyUser)
	}
	if req.ProxyPass != nil {
		proxyPass, err := s.cipher.Encrypt(*req.ProxyPass)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt proxy password: %w", err)
		}
		upd.SetProxyPass(proxyPass)
	}
	if req.IsDefault != nil && *req.IsDefault {
		if _, err := tx.Workspace.Update().
			Where(workspace.UserID(userID), workspace.IsDefault(true)).
			SetIsDefault(false).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear previous default: %w", err)
		}
		upd.SetIsDefault(true)
	}

	ws, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return ws, nil
}

// Delete removes a workspace and, through cascade, everything under it.
func (s *WorkspaceService) Delete(httpCtx context.Context, userID, workspaceID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Workspace.Delete().
		Where(workspace.ID(workspaceID), workspace.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns one workspace scoped to its owner.
func (s *WorkspaceService) Get(httpCtx context.Context, userID, workspaceID int) (*ent.Workspace, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ws, err := s.client.Workspace.Query().
		Where(workspace.ID(workspaceID), workspace.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

// List returns all workspaces of a user, default first.
func (s *WorkspaceService) List(httpCtx context.Context, userID int) ([]*ent.Workspace, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Workspace.Query().
		Where(workspace.UserID(userID)).
		Order(ent.Desc(workspace.FieldIsDefault), ent.Asc(workspace.FieldID)).
		All(ctx)
}

// ListAll returns every workspace across users; used by the bot manager
// reconcile loop.
func (s *WorkspaceService) ListAll(httpCtx context.Context) ([]*ent.Workspace, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Workspace.Query().
		Order(ent.Asc(workspace.FieldID)).
		All(ctx)
}

// SetStatus records the bot-visible health of a workspace.
func (s *WorkspaceService) SetStatus(httpCtx context.Context, workspaceID int, status workspace.Status, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upd := s.client.Workspace.UpdateOneID(workspaceID).SetStatus(status)
	if message == "" {
		upd.ClearStatusMessage()
	} else {
		upd.SetStatusMessage(message)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set workspace status: %w", err)
	}
	return nil
}

// Token decrypts a workspace's marketplace token.
func (s *WorkspaceService) Token(ws *ent.Workspace) (string, error) {
	return s.cipher.Decrypt(ws.Token)
}

// ProxyPass decrypts a workspace's proxy password.
func (s *WorkspaceService) ProxyPass(ws *ent.Workspace) (string, error) {
	return s.cipher.Decrypt(ws.ProxyPass)
}
