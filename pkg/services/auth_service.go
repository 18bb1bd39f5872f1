package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/user"
)

// SessionLifetime is the dashboard cookie window; it slides on every
// authenticated request.
const SessionLifetime = 7 * 24 * time.Hour

// ErrBadCredentials is returned on login with an unknown user or wrong
// password. Deliberately indistinguishable between the two.
var ErrBadCredentials = errors.New("invalid username or password")

// AuthService manages dashboard users and their cookie sessions.
type AuthService struct {
	client *ent.Client
}

// NewAuthService creates a new AuthService
func NewAuthService(client *ent.Client) *AuthService {
	return &AuthService{client: client}
}

// Register creates a dashboard user.
func (s *AuthService) Register(httpCtx context.Context, username, password string) (*ent.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, NewValidationError("username", "must be at least 3 characters")
	}
	if len(password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := s.client.User.Create().
		SetUsername(username).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(httpCtx context.Context, username, password string) (*ent.DashboardSession, *ent.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := s.client.User.Query().
		Where(user.UsernameEQ(strings.TrimSpace(username))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrBadCredentials
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrBadCredentials
	}

	sess, err := s.client.DashboardSession.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetExpiresAt(time.Now().Add(SessionLifetime)).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, u, nil
}

// Validate resolves a session id to its user, sliding the expiry forward.
// Expired sessions are deleted and rejected.
func (s *AuthService) Validate(httpCtx context.Context, sessionID string) (*ent.User, error) {
	if sessionID == "" {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.client.DashboardSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.client.DashboardSession.DeleteOneID(sess.ID).Exec(ctx)
		return nil, ErrNotFound
	}

	u, err := s.client.User.Get(ctx, sess.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	// Sliding window: refresh asynchronously-safe fields in place.
	_, _ = s.client.DashboardSession.UpdateOneID(sess.ID).
		SetLastSeenAt(time.Now()).
		SetExpiresAt(time.Now().Add(SessionLifetime)).
		Save(ctx)

	return u, nil
}

// Logout deletes one session; unknown ids are ignored.
func (s *AuthService) Logout(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.DashboardSession.Delete().
		Where(dashboardsession.ID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes dead sessions; called periodically from the manager.
func (s *AuthService) PurgeExpired(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.DashboardSession.Delete().
		Where(dashboardsession.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return n, nil
}
