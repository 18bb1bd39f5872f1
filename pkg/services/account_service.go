package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/timeutil"
)

// replacementMMRWindow bounds how far a substitute account's MMR may sit
// from the busy one.
const replacementMMRWindow = 1000

// AccountService manages rentable accounts and the rental state machine:
// assignment, rental start, extension, pause/resume and release.
type AccountService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewAccountService creates a new AccountService
func NewAccountService(client *ent.Client, cipher *crypto.Cipher) *AccountService {
	return &AccountService{client: client, cipher: cipher}
}

// Create registers a rentable credential. Password and authenticator
// payload are encrypted at rest.
func (s *AccountService) Create(httpCtx context.Context, req models.CreateAccountRequest) (*ent.Account, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, NewValidationError("display_name", "required")
	}
	if strings.TrimSpace(req.Login) == "" {
		return nil, NewValidationError("login", "required")
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "required")
	}
	if req.RentalDurationMinutes < 0 {
		return nil, NewValidationError("rental_duration_minutes", "must be non-negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	password, err := s.cipher.Encrypt(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}
	mafile, err := s.cipher.Encrypt(req.MaFileJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt mafile: %w", err)
	}

	builder := s.client.Account.Create().
		SetWorkspaceID(req.WorkspaceID).
		SetUserID(req.UserID).
		SetDisplayName(req.DisplayName).
		SetLogin(req.Login).
		SetPassword(password).
		SetMafileJSON(mafile).
		SetMmr(req.MMR).
		SetLowPriority(req.LowPriority)
	if req.RentalDurationMinutes > 0 {
		builder.SetRentalDurationMinutes(req.RentalDurationMinutes)
	}

	acc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return acc, nil
}

// Update edits an account; nil request fields are left unchanged.
func (s *AccountService) Update(httpCtx context.Context, userID, accountID int, req models.UpdateAccountRequest) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	acc, err := s.client.Account.Query().
		Where(account.ID(accountID), account.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	upd := s.client.Account.UpdateOneID(acc.ID)
	if req.DisplayName != nil {
		upd.SetDisplayName(*req.DisplayName)
	}
	if req.Login != nil {
		upd.SetLogin(*req.Login)
	}
	if req.Password != nil {
		password, err := s.cipher.Encrypt(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt password: %w", err)
		}
		upd.SetPassword(password)
	}
	if req.MaFileJSON != nil {
		mafile, err := s.cipher.Encrypt(*req.MaFileJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt mafile: %w", err)
		}
		upd.SetMafileJSON(mafile)
	}
	if req.MMR != nil {
		upd.SetMmr(*req.MMR)
	}
	if req.RentalDurationMinutes != nil {
		if *req.RentalDurationMinutes <= 0 {
			return nil, NewValidationError("rental_duration_minutes", "must be positive")
		}
		upd.SetRentalDurationMinutes(*req.RentalDurationMinutes)
	}
	if req.LowPriority != nil {
		upd.SetLowPriority(*req.LowPriority)
	}
	if req.AccountFrozen != nil {
		upd.SetAccountFrozen(*req.AccountFrozen)
	}

	acc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return acc, nil
}

// Delete removes an account.
func (s *AccountService) Delete(httpCtx context.Context, userID, accountID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := s.client.Account.Delete().
		Where(account.ID(accountID), account.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns one account scoped to its owner user.
func (s *AccountService) Get(httpCtx context.Context, userID, accountID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	acc, err := s.client.Account.Query().
		Where(account.ID(accountID), account.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// GetByID returns one account without user scoping; bot-internal use.
func (s *AccountService) GetByID(httpCtx context.Context, accountID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	acc, err := s.client.Account.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// List returns all accounts in one workspace.
func (s *AccountService) List(httpCtx context.Context, userID, workspaceID int) ([]*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Account.Query().
		Where(account.UserID(userID), account.WorkspaceID(workspaceID)).
		Order(ent.Asc(account.FieldID)).
		All(ctx)
}

// ActiveRentals returns accounts currently held by a buyer, across all of a
// user's workspaces.
func (s *AccountService) ActiveRentals(httpCtx context.Context, userID int) ([]*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Account.Query().
		Where(account.UserID(userID), account.OwnerNotNil()).
		Order(ent.Asc(account.FieldID)).
		All(ctx)
}

// RentedInWorkspace returns rented accounts of one workspace; used by the
// expiry reaper.
func (s *AccountService) RentedInWorkspace(httpCtx context.Context, workspaceID int) ([]*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Account.Query().
		Where(account.WorkspaceID(workspaceID), account.OwnerNotNil()).
		Order(ent.Asc(account.FieldID)).
		All(ctx)
}

// RentalsByOwner returns every account a buyer currently holds in one
// workspace; the command handler uses it for disambiguation.
func (s *AccountService) RentalsByOwner(httpCtx context.Context, workspaceID int, owner string) ([]*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.Account.Query().
		Where(account.WorkspaceID(workspaceID), account.OwnerEqualFold(owner)).
		Order(ent.Asc(account.FieldID)).
		All(ctx)
}

// FindByOwner returns the account currently rented by the buyer in one
// workspace, or ErrNotFound.
func (s *AccountService) FindByOwner(httpCtx context.Context, workspaceID int, owner string) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	acc, err := s.client.Account.Query().
		Where(account.WorkspaceID(workspaceID), account.OwnerEQ(owner)).
		Order(ent.Asc(account.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rental by owner: %w", err)
	}
	return acc, nil
}

// Credentials returns the decrypted login, password and authenticator
// payload of an account.
func (s *AccountService) Credentials(acc *ent.Account) (login, password, mafileJSON string, err error) {
	password, err = s.cipher.Decrypt(acc.Password)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to decrypt password: %w", err)
	}
	mafileJSON, err = s.cipher.Decrypt(acc.MafileJSON)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to decrypt mafile: %w", err)
	}
	return acc.Login, password, mafileJSON, nil
}

// Assign hands a free account to a buyer. The row is locked for the check
// so two orders landing at once cannot both take it. The rental clock does
// not start here; rental_start stays NULL until the first guard-code
// request.
func (s *AccountService) Assign(httpCtx context.Context, accountID int, owner, orderID string, durationMinutes int) (*ent.Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, NewValidationError("owner", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acc, err := tx.Account.Query().
		Where(account.ID(accountID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	if acc.Owner != nil && *acc.Owner != "" && !strings.EqualFold(*acc.Owner, owner) {
		return nil, ErrNoFreeAccount
	}
	if acc.AccountFrozen {
		return nil, ErrNoFreeAccount
	}

	upd := tx.Account.UpdateOneID(acc.ID).
		SetOwner(owner).
		SetRentalOrderID(orderID).
		ClearRentalStart().
		SetRentalFrozen(false).
		ClearRentalFrozenAt()
	if durationMinutes > 0 {
		upd.SetRentalDurationMinutes(durationMinutes)
	}
	acc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return acc, nil
}

// StartRental starts the rental clock if it is not running yet. Returns
// the account and whether this call actually started it.
func (s *AccountService) StartRental(httpCtx context.Context, accountID int) (*ent.Account, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acc, err := tx.Account.Query().
		Where(account.ID(accountID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to lock account: %w", err)
	}
	if acc.RentalStart != nil {
		return acc, false, tx.Commit()
	}

	acc, err = tx.Account.UpdateOneID(acc.ID).
		SetRentalStart(timeutil.NowMarketplace()).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start rental: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return acc, true, nil
}

// Extend adds minutes to the current rental window.
func (s *AccountService) Extend(httpCtx context.Context, accountID, minutes int) (*ent.Account, error) {
	if minutes <= 0 {
		return nil, NewValidationError("minutes", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	acc, err := s.client.Account.UpdateOneID(accountID).
		AddRentalDurationMinutes(minutes).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to extend rental: %w", err)
	}
	return acc, nil
}

// SetDuration overwrites the rental window; cancellation resets it to the
// default unit.
func (s *AccountService) SetDuration(httpCtx context.Context, accountID, minutes int) error {
	if minutes <= 0 {
		return NewValidationError("minutes", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Account.UpdateOneID(accountID).
		SetRentalDurationMinutes(minutes).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set rental duration: %w", err)
	}
	return nil
}

// Pause freezes a running rental clock.
func (s *AccountService) Pause(httpCtx context.Context, accountID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acc, err := tx.Account.Query().
		Where(account.ID(accountID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	if acc.Owner == nil || acc.RentalStart == nil {
		return nil, NewValidationError("rental", "not running")
	}
	if acc.RentalFrozen {
		return acc, tx.Commit()
	}

	acc, err = tx.Account.UpdateOneID(acc.ID).
		SetRentalFrozen(true).
		SetRentalFrozenAt(timeutil.NowMarketplace()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause rental: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return acc, nil
}

// Resume unfreezes a paused rental and rebases rental_start forward by the
// paused span, so the buyer is not billed for the pause.
func (s *AccountService) Resume(httpCtx context.Context, accountID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	acc, err := tx.Account.Query().
		Where(account.ID(accountID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	if !acc.RentalFrozen {
		return acc, tx.Commit()
	}

	upd := tx.Account.UpdateOneID(acc.ID).
		SetRentalFrozen(false).
		ClearRentalFrozenAt()
	if acc.RentalStart != nil && acc.RentalFrozenAt != nil {
		paused := time.Since(*acc.RentalFrozenAt)
		if paused > 0 {
			upd.SetRentalStart(acc.RentalStart.Add(paused))
		}
	}
	acc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume rental: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return acc, nil
}

// Release returns an account to the free pool, clearing all rental state.
func (s *AccountService) Release(httpCtx context.Context, accountID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	acc, err := s.client.Account.UpdateOneID(accountID).
		ClearOwner().
		ClearRentalStart().
		SetRentalFrozen(false).
		ClearRentalFrozenAt().
		ClearRentalOrderID().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to release account: %w", err)
	}
	return acc, nil
}

// TransferRental moves a live rental onto a substitute account. The new
// row inherits owner, order id, duration and the running clock; the old
// row returns to the pool. Both rows are locked for the swap.
func (s *AccountService) TransferRental(httpCtx context.Context, fromID, toID int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	from, err := tx.Account.Query().
		Where(account.ID(fromID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock source account: %w", err)
	}
	if from.Owner == nil {
		return nil, NewValidationError("rental", "not running")
	}
	to, err := tx.Account.Query().
		Where(account.ID(toID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock target account: %w", err)
	}
	if to.Owner != nil || to.AccountFrozen {
		return nil, ErrNoFreeAccount
	}

	upd := tx.Account.UpdateOneID(to.ID).
		SetOwner(*from.Owner).
		SetRentalDurationMinutes(from.RentalDurationMinutes).
		SetRentalFrozen(false).
		ClearRentalFrozenAt()
	if from.RentalOrderID != nil {
		upd.SetRentalOrderID(*from.RentalOrderID)
	}
	if from.RentalStart != nil {
		upd.SetRentalStart(*from.RentalStart)
	} else {
		upd.ClearRentalStart()
	}
	to, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to take over rental: %w", err)
	}

	_, err = tx.Account.UpdateOneID(from.ID).
		ClearOwner().
		ClearRentalStart().
		SetRentalFrozen(false).
		ClearRentalFrozenAt().
		ClearRentalOrderID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to release source account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return to, nil
}

// FindReplacement picks a free substitute near the busy account's MMR:
// within ±1000, closest first, smaller id on ties. Low-priority accounts
// are considered only when nothing else fits. Rows are claimed with
// SKIP LOCKED so concurrent replacements never race on one account.
func (s *AccountService) FindReplacement(httpCtx context.Context, workspaceID, excludeID, mmr int) (*ent.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidates, err := tx.Account.Query().
		Where(
			account.WorkspaceID(workspaceID),
			account.OwnerIsNil(),
			account.AccountFrozen(false),
			account.IDNEQ(excludeID),
		).
		Order(ent.Asc(account.FieldID)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query replacement candidates: %w", err)
	}

	best := pickReplacement(candidates, mmr)
	if best == nil {
		return nil, ErrNoFreeAccount
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return best, nil
}

func pickReplacement(candidates []*ent.Account, mmr int) *ent.Account {
	eligible := make([]*ent.Account, 0, len(candidates))
	for _, c := range candidates {
		if absInt(c.Mmr-mmr) <= replacementMMRWindow {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		// Regular accounts beat low-priority ones regardless of distance.
		if eligible[i].LowPriority != eligible[j].LowPriority {
			return !eligible[i].LowPriority
		}
		di, dj := absInt(eligible[i].Mmr-mmr), absInt(eligible[j].Mmr-mmr)
		if di != dj {
			return di < dj
		}
		return eligible[i].ID < eligible[j].ID
	})
	return eligible[0]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
