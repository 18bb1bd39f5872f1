// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/account"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistentry"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonushistory"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/bonuswallet"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/dashboardsession"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/lotmapping"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/notification"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/predicate"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/reviewreward"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/setting"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/user"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount          = "Account"
	TypeAdminCall        = "AdminCall"
	TypeBlacklistEntry   = "BlacklistEntry"
	TypeBlacklistLog     = "BlacklistLog"
	TypeBonusHistory     = "BonusHistory"
	TypeBonusWallet      = "BonusWallet"
	TypeChatMessage      = "ChatMessage"
	TypeChatOutbox       = "ChatOutbox"
	TypeChatSnapshot     = "ChatSnapshot"
	TypeDashboardSession = "DashboardSession"
	TypeLotMapping       = "LotMapping"
	TypeNotification     = "Notification"
	TypeOrderEvent       = "OrderEvent"
	TypeReviewReward     = "ReviewReward"
	TypeSetting          = "Setting"
	TypeUser             = "User"
	TypeWorkspace        = "Workspace"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	user_id                    *int
	adduser_id                 *int
	display_name               *string
	login                      *string
	password                   *string
	mafile_json                *string
	mmr                        *int
	addmmr                     *int
	rental_duration_minutes    *int
	addrental_duration_minutes *int
	owner                      *string
	rental_start               *time.Time
	rental_frozen              *bool
	rental_frozen_at           *time.Time
	account_frozen             *bool
	rental_order_id            *string
	low_priority               *bool
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	workspace                  *int
	clearedworkspace           bool
	done                       bool
	oldValue                   func(context.Context) (*Account, error)
	predicates                 []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AccountMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AccountMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AccountMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *AccountMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AccountMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AccountMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AccountMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AccountMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AccountMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AccountMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AccountMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetLogin sets the "login" field.
func (m *AccountMutation) SetLogin(s string) {
	m.login = &s
}

// Login returns the value of the "login" field in the mutation.
func (m *AccountMutation) Login() (r string, exists bool) {
	v := m.login
	if v == nil {
		return
	}
	return *v, true
}

// OldLogin returns the old "login" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLogin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogin: %w", err)
	}
	return oldValue.Login, nil
}

// ResetLogin resets all changes to the "login" field.
func (m *AccountMutation) ResetLogin() {
	m.login = nil
}

// SetPassword sets the "password" field.
func (m *AccountMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *AccountMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ResetPassword resets all changes to the "password" field.
func (m *AccountMutation) ResetPassword() {
	m.password = nil
}

// SetMafileJSON sets the "mafile_json" field.
func (m *AccountMutation) SetMafileJSON(s string) {
	m.mafile_json = &s
}

// MafileJSON returns the value of the "mafile_json" field in the mutation.
func (m *AccountMutation) MafileJSON() (r string, exists bool) {
	v := m.mafile_json
	if v == nil {
		return
	}
	return *v, true
}

// OldMafileJSON returns the old "mafile_json" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldMafileJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMafileJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMafileJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMafileJSON: %w", err)
	}
	return oldValue.MafileJSON, nil
}

// ResetMafileJSON resets all changes to the "mafile_json" field.
func (m *AccountMutation) ResetMafileJSON() {
	m.mafile_json = nil
}

// SetMmr sets the "mmr" field.
func (m *AccountMutation) SetMmr(i int) {
	m.mmr = &i
	m.addmmr = nil
}

// Mmr returns the value of the "mmr" field in the mutation.
func (m *AccountMutation) Mmr() (r int, exists bool) {
	v := m.mmr
	if v == nil {
		return
	}
	return *v, true
}

// OldMmr returns the old "mmr" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldMmr(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMmr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMmr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMmr: %w", err)
	}
	return oldValue.Mmr, nil
}

// AddMmr adds i to the "mmr" field.
func (m *AccountMutation) AddMmr(i int) {
	if m.addmmr != nil {
		*m.addmmr += i
	} else {
		m.addmmr = &i
	}
}

// AddedMmr returns the value that was added to the "mmr" field in this mutation.
func (m *AccountMutation) AddedMmr() (r int, exists bool) {
	v := m.addmmr
	if v == nil {
		return
	}
	return *v, true
}

// ResetMmr resets all changes to the "mmr" field.
func (m *AccountMutation) ResetMmr() {
	m.mmr = nil
	m.addmmr = nil
}

// SetRentalDurationMinutes sets the "rental_duration_minutes" field.
func (m *AccountMutation) SetRentalDurationMinutes(i int) {
	m.rental_duration_minutes = &i
	m.addrental_duration_minutes = nil
}

// RentalDurationMinutes returns the value of the "rental_duration_minutes" field in the mutation.
func (m *AccountMutation) RentalDurationMinutes() (r int, exists bool) {
	v := m.rental_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalDurationMinutes returns the old "rental_duration_minutes" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRentalDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalDurationMinutes: %w", err)
	}
	return oldValue.RentalDurationMinutes, nil
}

// AddRentalDurationMinutes adds i to the "rental_duration_minutes" field.
func (m *AccountMutation) AddRentalDurationMinutes(i int) {
	if m.addrental_duration_minutes != nil {
		*m.addrental_duration_minutes += i
	} else {
		m.addrental_duration_minutes = &i
	}
}

// AddedRentalDurationMinutes returns the value that was added to the "rental_duration_minutes" field in this mutation.
func (m *AccountMutation) AddedRentalDurationMinutes() (r int, exists bool) {
	v := m.addrental_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetRentalDurationMinutes resets all changes to the "rental_duration_minutes" field.
func (m *AccountMutation) ResetRentalDurationMinutes() {
	m.rental_duration_minutes = nil
	m.addrental_duration_minutes = nil
}

// SetOwner sets the "owner" field.
func (m *AccountMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *AccountMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *AccountMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[account.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *AccountMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[account.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *AccountMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, account.FieldOwner)
}

// SetRentalStart sets the "rental_start" field.
func (m *AccountMutation) SetRentalStart(t time.Time) {
	m.rental_start = &t
}

// RentalStart returns the value of the "rental_start" field in the mutation.
func (m *AccountMutation) RentalStart() (r time.Time, exists bool) {
	v := m.rental_start
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalStart returns the old "rental_start" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRentalStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalStart: %w", err)
	}
	return oldValue.RentalStart, nil
}

// ClearRentalStart clears the value of the "rental_start" field.
func (m *AccountMutation) ClearRentalStart() {
	m.rental_start = nil
	m.clearedFields[account.FieldRentalStart] = struct{}{}
}

// RentalStartCleared returns if the "rental_start" field was cleared in this mutation.
func (m *AccountMutation) RentalStartCleared() bool {
	_, ok := m.clearedFields[account.FieldRentalStart]
	return ok
}

// ResetRentalStart resets all changes to the "rental_start" field.
func (m *AccountMutation) ResetRentalStart() {
	m.rental_start = nil
	delete(m.clearedFields, account.FieldRentalStart)
}

// SetRentalFrozen sets the "rental_frozen" field.
func (m *AccountMutation) SetRentalFrozen(b bool) {
	m.rental_frozen = &b
}

// RentalFrozen returns the value of the "rental_frozen" field in the mutation.
func (m *AccountMutation) RentalFrozen() (r bool, exists bool) {
	v := m.rental_frozen
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalFrozen returns the old "rental_frozen" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRentalFrozen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalFrozen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalFrozen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalFrozen: %w", err)
	}
	return oldValue.RentalFrozen, nil
}

// ResetRentalFrozen resets all changes to the "rental_frozen" field.
func (m *AccountMutation) ResetRentalFrozen() {
	m.rental_frozen = nil
}

// SetRentalFrozenAt sets the "rental_frozen_at" field.
func (m *AccountMutation) SetRentalFrozenAt(t time.Time) {
	m.rental_frozen_at = &t
}

// RentalFrozenAt returns the value of the "rental_frozen_at" field in the mutation.
func (m *AccountMutation) RentalFrozenAt() (r time.Time, exists bool) {
	v := m.rental_frozen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalFrozenAt returns the old "rental_frozen_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRentalFrozenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalFrozenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalFrozenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalFrozenAt: %w", err)
	}
	return oldValue.RentalFrozenAt, nil
}

// ClearRentalFrozenAt clears the value of the "rental_frozen_at" field.
func (m *AccountMutation) ClearRentalFrozenAt() {
	m.rental_frozen_at = nil
	m.clearedFields[account.FieldRentalFrozenAt] = struct{}{}
}

// RentalFrozenAtCleared returns if the "rental_frozen_at" field was cleared in this mutation.
func (m *AccountMutation) RentalFrozenAtCleared() bool {
	_, ok := m.clearedFields[account.FieldRentalFrozenAt]
	return ok
}

// ResetRentalFrozenAt resets all changes to the "rental_frozen_at" field.
func (m *AccountMutation) ResetRentalFrozenAt() {
	m.rental_frozen_at = nil
	delete(m.clearedFields, account.FieldRentalFrozenAt)
}

// SetAccountFrozen sets the "account_frozen" field.
func (m *AccountMutation) SetAccountFrozen(b bool) {
	m.account_frozen = &b
}

// AccountFrozen returns the value of the "account_frozen" field in the mutation.
func (m *AccountMutation) AccountFrozen() (r bool, exists bool) {
	v := m.account_frozen
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountFrozen returns the old "account_frozen" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldAccountFrozen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountFrozen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountFrozen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountFrozen: %w", err)
	}
	return oldValue.AccountFrozen, nil
}

// ResetAccountFrozen resets all changes to the "account_frozen" field.
func (m *AccountMutation) ResetAccountFrozen() {
	m.account_frozen = nil
}

// SetRentalOrderID sets the "rental_order_id" field.
func (m *AccountMutation) SetRentalOrderID(s string) {
	m.rental_order_id = &s
}

// RentalOrderID returns the value of the "rental_order_id" field in the mutation.
func (m *AccountMutation) RentalOrderID() (r string, exists bool) {
	v := m.rental_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalOrderID returns the old "rental_order_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldRentalOrderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalOrderID: %w", err)
	}
	return oldValue.RentalOrderID, nil
}

// ClearRentalOrderID clears the value of the "rental_order_id" field.
func (m *AccountMutation) ClearRentalOrderID() {
	m.rental_order_id = nil
	m.clearedFields[account.FieldRentalOrderID] = struct{}{}
}

// RentalOrderIDCleared returns if the "rental_order_id" field was cleared in this mutation.
func (m *AccountMutation) RentalOrderIDCleared() bool {
	_, ok := m.clearedFields[account.FieldRentalOrderID]
	return ok
}

// ResetRentalOrderID resets all changes to the "rental_order_id" field.
func (m *AccountMutation) ResetRentalOrderID() {
	m.rental_order_id = nil
	delete(m.clearedFields, account.FieldRentalOrderID)
}

// SetLowPriority sets the "low_priority" field.
func (m *AccountMutation) SetLowPriority(b bool) {
	m.low_priority = &b
}

// LowPriority returns the value of the "low_priority" field in the mutation.
func (m *AccountMutation) LowPriority() (r bool, exists bool) {
	v := m.low_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldLowPriority returns the old "low_priority" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLowPriority(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowPriority: %w", err)
	}
	return oldValue.LowPriority, nil
}

// ResetLowPriority resets all changes to the "low_priority" field.
func (m *AccountMutation) ResetLowPriority() {
	m.low_priority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AccountMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[account.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AccountMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AccountMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AccountMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.workspace != nil {
		fields = append(fields, account.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, account.FieldUserID)
	}
	if m.display_name != nil {
		fields = append(fields, account.FieldDisplayName)
	}
	if m.login != nil {
		fields = append(fields, account.FieldLogin)
	}
	if m.password != nil {
		fields = append(fields, account.FieldPassword)
	}
	if m.mafile_json != nil {
		fields = append(fields, account.FieldMafileJSON)
	}
	if m.mmr != nil {
		fields = append(fields, account.FieldMmr)
	}
	if m.rental_duration_minutes != nil {
		fields = append(fields, account.FieldRentalDurationMinutes)
	}
	if m.owner != nil {
		fields = append(fields, account.FieldOwner)
	}
	if m.rental_start != nil {
		fields = append(fields, account.FieldRentalStart)
	}
	if m.rental_frozen != nil {
		fields = append(fields, account.FieldRentalFrozen)
	}
	if m.rental_frozen_at != nil {
		fields = append(fields, account.FieldRentalFrozenAt)
	}
	if m.account_frozen != nil {
		fields = append(fields, account.FieldAccountFrozen)
	}
	if m.rental_order_id != nil {
		fields = append(fields, account.FieldRentalOrderID)
	}
	if m.low_priority != nil {
		fields = append(fields, account.FieldLowPriority)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldWorkspaceID:
		return m.WorkspaceID()
	case account.FieldUserID:
		return m.UserID()
	case account.FieldDisplayName:
		return m.DisplayName()
	case account.FieldLogin:
		return m.Login()
	case account.FieldPassword:
		return m.Password()
	case account.FieldMafileJSON:
		return m.MafileJSON()
	case account.FieldMmr:
		return m.Mmr()
	case account.FieldRentalDurationMinutes:
		return m.RentalDurationMinutes()
	case account.FieldOwner:
		return m.Owner()
	case account.FieldRentalStart:
		return m.RentalStart()
	case account.FieldRentalFrozen:
		return m.RentalFrozen()
	case account.FieldRentalFrozenAt:
		return m.RentalFrozenAt()
	case account.FieldAccountFrozen:
		return m.AccountFrozen()
	case account.FieldRentalOrderID:
		return m.RentalOrderID()
	case account.FieldLowPriority:
		return m.LowPriority()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case account.FieldUserID:
		return m.OldUserID(ctx)
	case account.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case account.FieldLogin:
		return m.OldLogin(ctx)
	case account.FieldPassword:
		return m.OldPassword(ctx)
	case account.FieldMafileJSON:
		return m.OldMafileJSON(ctx)
	case account.FieldMmr:
		return m.OldMmr(ctx)
	case account.FieldRentalDurationMinutes:
		return m.OldRentalDurationMinutes(ctx)
	case account.FieldOwner:
		return m.OldOwner(ctx)
	case account.FieldRentalStart:
		return m.OldRentalStart(ctx)
	case account.FieldRentalFrozen:
		return m.OldRentalFrozen(ctx)
	case account.FieldRentalFrozenAt:
		return m.OldRentalFrozenAt(ctx)
	case account.FieldAccountFrozen:
		return m.OldAccountFrozen(ctx)
	case account.FieldRentalOrderID:
		return m.OldRentalOrderID(ctx)
	case account.FieldLowPriority:
		return m.OldLowPriority(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case account.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case account.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case account.FieldLogin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogin(v)
		return nil
	case account.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case account.FieldMafileJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMafileJSON(v)
		return nil
	case account.FieldMmr:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMmr(v)
		return nil
	case account.FieldRentalDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalDurationMinutes(v)
		return nil
	case account.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case account.FieldRentalStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalStart(v)
		return nil
	case account.FieldRentalFrozen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalFrozen(v)
		return nil
	case account.FieldRentalFrozenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalFrozenAt(v)
		return nil
	case account.FieldAccountFrozen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountFrozen(v)
		return nil
	case account.FieldRentalOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalOrderID(v)
		return nil
	case account.FieldLowPriority:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowPriority(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, account.FieldUserID)
	}
	if m.addmmr != nil {
		fields = append(fields, account.FieldMmr)
	}
	if m.addrental_duration_minutes != nil {
		fields = append(fields, account.FieldRentalDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUserID:
		return m.AddedUserID()
	case account.FieldMmr:
		return m.AddedMmr()
	case account.FieldRentalDurationMinutes:
		return m.AddedRentalDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case account.FieldMmr:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMmr(v)
		return nil
	case account.FieldRentalDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRentalDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldOwner) {
		fields = append(fields, account.FieldOwner)
	}
	if m.FieldCleared(account.FieldRentalStart) {
		fields = append(fields, account.FieldRentalStart)
	}
	if m.FieldCleared(account.FieldRentalFrozenAt) {
		fields = append(fields, account.FieldRentalFrozenAt)
	}
	if m.FieldCleared(account.FieldRentalOrderID) {
		fields = append(fields, account.FieldRentalOrderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldOwner:
		m.ClearOwner()
		return nil
	case account.FieldRentalStart:
		m.ClearRentalStart()
		return nil
	case account.FieldRentalFrozenAt:
		m.ClearRentalFrozenAt()
		return nil
	case account.FieldRentalOrderID:
		m.ClearRentalOrderID()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case account.FieldUserID:
		m.ResetUserID()
		return nil
	case account.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case account.FieldLogin:
		m.ResetLogin()
		return nil
	case account.FieldPassword:
		m.ResetPassword()
		return nil
	case account.FieldMafileJSON:
		m.ResetMafileJSON()
		return nil
	case account.FieldMmr:
		m.ResetMmr()
		return nil
	case account.FieldRentalDurationMinutes:
		m.ResetRentalDurationMinutes()
		return nil
	case account.FieldOwner:
		m.ResetOwner()
		return nil
	case account.FieldRentalStart:
		m.ResetRentalStart()
		return nil
	case account.FieldRentalFrozen:
		m.ResetRentalFrozen()
		return nil
	case account.FieldRentalFrozenAt:
		m.ResetRentalFrozenAt()
		return nil
	case account.FieldAccountFrozen:
		m.ResetAccountFrozen()
		return nil
	case account.FieldRentalOrderID:
		m.ResetRentalOrderID()
		return nil
	case account.FieldLowPriority:
		m.ResetLowPriority()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, account.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, account.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	case account.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// AdminCallMutation represents an operation that mutates the AdminCall nodes in the graph.
type AdminCallMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	chat_id          *string
	owner            *string
	count            *int
	addcount         *int
	last_called_at   *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*AdminCall, error)
	predicates       []predicate.AdminCall
}

var _ ent.Mutation = (*AdminCallMutation)(nil)

// admincallOption allows management of the mutation configuration using functional options.
type admincallOption func(*AdminCallMutation)

// newAdminCallMutation creates new mutation for the AdminCall entity.
func newAdminCallMutation(c config, op Op, opts ...admincallOption) *AdminCallMutation {
	m := &AdminCallMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminCallID sets the ID field of the mutation.
func withAdminCallID(id int) admincallOption {
	return func(m *AdminCallMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminCall
		)
		m.oldValue = func(ctx context.Context) (*AdminCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminCall sets the old AdminCall of the mutation.
func withAdminCall(node *AdminCall) admincallOption {
	return func(m *AdminCallMutation) {
		m.oldValue = func(context.Context) (*AdminCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminCallMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminCallMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AdminCallMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AdminCallMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AdminCallMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *AdminCallMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AdminCallMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AdminCallMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AdminCallMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AdminCallMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *AdminCallMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *AdminCallMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *AdminCallMutation) ResetChatID() {
	m.chat_id = nil
}

// SetOwner sets the "owner" field.
func (m *AdminCallMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *AdminCallMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *AdminCallMutation) ResetOwner() {
	m.owner = nil
}

// SetCount sets the "count" field.
func (m *AdminCallMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *AdminCallMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *AdminCallMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *AdminCallMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *AdminCallMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetLastCalledAt sets the "last_called_at" field.
func (m *AdminCallMutation) SetLastCalledAt(t time.Time) {
	m.last_called_at = &t
}

// LastCalledAt returns the value of the "last_called_at" field in the mutation.
func (m *AdminCallMutation) LastCalledAt() (r time.Time, exists bool) {
	v := m.last_called_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCalledAt returns the old "last_called_at" field's value of the AdminCall entity.
// If the AdminCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminCallMutation) OldLastCalledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCalledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCalledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCalledAt: %w", err)
	}
	return oldValue.LastCalledAt, nil
}

// ResetLastCalledAt resets all changes to the "last_called_at" field.
func (m *AdminCallMutation) ResetLastCalledAt() {
	m.last_called_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AdminCallMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[admincall.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AdminCallMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AdminCallMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AdminCallMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the AdminCallMutation builder.
func (m *AdminCallMutation) Where(ps ...predicate.AdminCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminCall).
func (m *AdminCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminCallMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace != nil {
		fields = append(fields, admincall.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, admincall.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, admincall.FieldChatID)
	}
	if m.owner != nil {
		fields = append(fields, admincall.FieldOwner)
	}
	if m.count != nil {
		fields = append(fields, admincall.FieldCount)
	}
	if m.last_called_at != nil {
		fields = append(fields, admincall.FieldLastCalledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admincall.FieldWorkspaceID:
		return m.WorkspaceID()
	case admincall.FieldUserID:
		return m.UserID()
	case admincall.FieldChatID:
		return m.ChatID()
	case admincall.FieldOwner:
		return m.Owner()
	case admincall.FieldCount:
		return m.Count()
	case admincall.FieldLastCalledAt:
		return m.LastCalledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admincall.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case admincall.FieldUserID:
		return m.OldUserID(ctx)
	case admincall.FieldChatID:
		return m.OldChatID(ctx)
	case admincall.FieldOwner:
		return m.OldOwner(ctx)
	case admincall.FieldCount:
		return m.OldCount(ctx)
	case admincall.FieldLastCalledAt:
		return m.OldLastCalledAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admincall.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case admincall.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case admincall.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case admincall.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case admincall.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case admincall.FieldLastCalledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCalledAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminCallMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, admincall.FieldUserID)
	}
	if m.addcount != nil {
		fields = append(fields, admincall.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case admincall.FieldUserID:
		return m.AddedUserID()
	case admincall.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case admincall.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case admincall.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown AdminCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminCallMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminCallMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminCallMutation) ResetField(name string) error {
	switch name {
	case admincall.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case admincall.FieldUserID:
		m.ResetUserID()
		return nil
	case admincall.FieldChatID:
		m.ResetChatID()
		return nil
	case admincall.FieldOwner:
		m.ResetOwner()
		return nil
	case admincall.FieldCount:
		m.ResetCount()
		return nil
	case admincall.FieldLastCalledAt:
		m.ResetLastCalledAt()
		return nil
	}
	return fmt.Errorf("unknown AdminCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, admincall.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case admincall.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, admincall.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminCallMutation) EdgeCleared(name string) bool {
	switch name {
	case admincall.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminCallMutation) ClearEdge(name string) error {
	switch name {
	case admincall.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AdminCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminCallMutation) ResetEdge(name string) error {
	switch name {
	case admincall.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown AdminCall edge %s", name)
}

// BlacklistEntryMutation represents an operation that mutates the BlacklistEntry nodes in the graph.
type BlacklistEntryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	owner            *string
	owner_key        *string
	reason           *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*BlacklistEntry, error)
	predicates       []predicate.BlacklistEntry
}

var _ ent.Mutation = (*BlacklistEntryMutation)(nil)

// blacklistentryOption allows management of the mutation configuration using functional options.
type blacklistentryOption func(*BlacklistEntryMutation)

// newBlacklistEntryMutation creates new mutation for the BlacklistEntry entity.
func newBlacklistEntryMutation(c config, op Op, opts ...blacklistentryOption) *BlacklistEntryMutation {
	m := &BlacklistEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeBlacklistEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlacklistEntryID sets the ID field of the mutation.
func withBlacklistEntryID(id int) blacklistentryOption {
	return func(m *BlacklistEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *BlacklistEntry
		)
		m.oldValue = func(ctx context.Context) (*BlacklistEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlacklistEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlacklistEntry sets the old BlacklistEntry of the mutation.
func withBlacklistEntry(node *BlacklistEntry) blacklistentryOption {
	return func(m *BlacklistEntryMutation) {
		m.oldValue = func(context.Context) (*BlacklistEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlacklistEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlacklistEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlacklistEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlacklistEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlacklistEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *BlacklistEntryMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *BlacklistEntryMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *BlacklistEntryMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *BlacklistEntryMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BlacklistEntryMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *BlacklistEntryMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BlacklistEntryMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BlacklistEntryMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetOwner sets the "owner" field.
func (m *BlacklistEntryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *BlacklistEntryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *BlacklistEntryMutation) ResetOwner() {
	m.owner = nil
}

// SetOwnerKey sets the "owner_key" field.
func (m *BlacklistEntryMutation) SetOwnerKey(s string) {
	m.owner_key = &s
}

// OwnerKey returns the value of the "owner_key" field in the mutation.
func (m *BlacklistEntryMutation) OwnerKey() (r string, exists bool) {
	v := m.owner_key
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerKey returns the old "owner_key" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldOwnerKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerKey: %w", err)
	}
	return oldValue.OwnerKey, nil
}

// ResetOwnerKey resets all changes to the "owner_key" field.
func (m *BlacklistEntryMutation) ResetOwnerKey() {
	m.owner_key = nil
}

// SetReason sets the "reason" field.
func (m *BlacklistEntryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *BlacklistEntryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *BlacklistEntryMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlacklistEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlacklistEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlacklistEntry entity.
// If the BlacklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlacklistEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *BlacklistEntryMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[blacklistentry.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *BlacklistEntryMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *BlacklistEntryMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *BlacklistEntryMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the BlacklistEntryMutation builder.
func (m *BlacklistEntryMutation) Where(ps ...predicate.BlacklistEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlacklistEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlacklistEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlacklistEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlacklistEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlacklistEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlacklistEntry).
func (m *BlacklistEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlacklistEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace != nil {
		fields = append(fields, blacklistentry.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, blacklistentry.FieldUserID)
	}
	if m.owner != nil {
		fields = append(fields, blacklistentry.FieldOwner)
	}
	if m.owner_key != nil {
		fields = append(fields, blacklistentry.FieldOwnerKey)
	}
	if m.reason != nil {
		fields = append(fields, blacklistentry.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, blacklistentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlacklistEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blacklistentry.FieldWorkspaceID:
		return m.WorkspaceID()
	case blacklistentry.FieldUserID:
		return m.UserID()
	case blacklistentry.FieldOwner:
		return m.Owner()
	case blacklistentry.FieldOwnerKey:
		return m.OwnerKey()
	case blacklistentry.FieldReason:
		return m.Reason()
	case blacklistentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlacklistEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blacklistentry.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case blacklistentry.FieldUserID:
		return m.OldUserID(ctx)
	case blacklistentry.FieldOwner:
		return m.OldOwner(ctx)
	case blacklistentry.FieldOwnerKey:
		return m.OldOwnerKey(ctx)
	case blacklistentry.FieldReason:
		return m.OldReason(ctx)
	case blacklistentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlacklistEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlacklistEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blacklistentry.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case blacklistentry.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case blacklistentry.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case blacklistentry.FieldOwnerKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerKey(v)
		return nil
	case blacklistentry.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case blacklistentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlacklistEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlacklistEntryMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, blacklistentry.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlacklistEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blacklistentry.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlacklistEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blacklistentry.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown BlacklistEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlacklistEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlacklistEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlacklistEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlacklistEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlacklistEntryMutation) ResetField(name string) error {
	switch name {
	case blacklistentry.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case blacklistentry.FieldUserID:
		m.ResetUserID()
		return nil
	case blacklistentry.FieldOwner:
		m.ResetOwner()
		return nil
	case blacklistentry.FieldOwnerKey:
		m.ResetOwnerKey()
		return nil
	case blacklistentry.FieldReason:
		m.ResetReason()
		return nil
	case blacklistentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlacklistEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlacklistEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, blacklistentry.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlacklistEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blacklistentry.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlacklistEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlacklistEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlacklistEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, blacklistentry.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlacklistEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case blacklistentry.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlacklistEntryMutation) ClearEdge(name string) error {
	switch name {
	case blacklistentry.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown BlacklistEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlacklistEntryMutation) ResetEdge(name string) error {
	switch name {
	case blacklistentry.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown BlacklistEntry edge %s", name)
}

// BlacklistLogMutation represents an operation that mutates the BlacklistLog nodes in the graph.
type BlacklistLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	owner         *string
	action        *blacklistlog.Action
	reason        *string
	details       *string
	amount        *int
	addamount     *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BlacklistLog, error)
	predicates    []predicate.BlacklistLog
}

var _ ent.Mutation = (*BlacklistLogMutation)(nil)

// blacklistlogOption allows management of the mutation configuration using functional options.
type blacklistlogOption func(*BlacklistLogMutation)

// newBlacklistLogMutation creates new mutation for the BlacklistLog entity.
func newBlacklistLogMutation(c config, op Op, opts ...blacklistlogOption) *BlacklistLogMutation {
	m := &BlacklistLogMutation{
		config:        c,
		op:            op,
		typ:           TypeBlacklistLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlacklistLogID sets the ID field of the mutation.
func withBlacklistLogID(id int) blacklistlogOption {
	return func(m *BlacklistLogMutation) {
		var (
			err   error
			once  sync.Once
			value *BlacklistLog
		)
		m.oldValue = func(ctx context.Context) (*BlacklistLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlacklistLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlacklistLog sets the old BlacklistLog of the mutation.
func withBlacklistLog(node *BlacklistLog) blacklistlogOption {
	return func(m *BlacklistLogMutation) {
		m.oldValue = func(context.Context) (*BlacklistLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlacklistLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlacklistLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlacklistLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlacklistLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlacklistLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BlacklistLogMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BlacklistLogMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *BlacklistLogMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BlacklistLogMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BlacklistLogMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetOwner sets the "owner" field.
func (m *BlacklistLogMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *BlacklistLogMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *BlacklistLogMutation) ResetOwner() {
	m.owner = nil
}

// SetAction sets the "action" field.
func (m *BlacklistLogMutation) SetAction(b blacklistlog.Action) {
	m.action = &b
}

// Action returns the value of the "action" field in the mutation.
func (m *BlacklistLogMutation) Action() (r blacklistlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldAction(ctx context.Context) (v blacklistlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *BlacklistLogMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *BlacklistLogMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *BlacklistLogMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *BlacklistLogMutation) ResetReason() {
	m.reason = nil
}

// SetDetails sets the "details" field.
func (m *BlacklistLogMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *BlacklistLogMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *BlacklistLogMutation) ResetDetails() {
	m.details = nil
}

// SetAmount sets the "amount" field.
func (m *BlacklistLogMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BlacklistLogMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *BlacklistLogMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BlacklistLogMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BlacklistLogMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlacklistLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlacklistLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlacklistLog entity.
// If the BlacklistLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlacklistLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlacklistLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlacklistLogMutation builder.
func (m *BlacklistLogMutation) Where(ps ...predicate.BlacklistLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlacklistLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlacklistLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlacklistLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlacklistLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlacklistLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlacklistLog).
func (m *BlacklistLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlacklistLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, blacklistlog.FieldUserID)
	}
	if m.owner != nil {
		fields = append(fields, blacklistlog.FieldOwner)
	}
	if m.action != nil {
		fields = append(fields, blacklistlog.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, blacklistlog.FieldReason)
	}
	if m.details != nil {
		fields = append(fields, blacklistlog.FieldDetails)
	}
	if m.amount != nil {
		fields = append(fields, blacklistlog.FieldAmount)
	}
	if m.created_at != nil {
		fields = append(fields, blacklistlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlacklistLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blacklistlog.FieldUserID:
		return m.UserID()
	case blacklistlog.FieldOwner:
		return m.Owner()
	case blacklistlog.FieldAction:
		return m.Action()
	case blacklistlog.FieldReason:
		return m.Reason()
	case blacklistlog.FieldDetails:
		return m.Details()
	case blacklistlog.FieldAmount:
		return m.Amount()
	case blacklistlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlacklistLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blacklistlog.FieldUserID:
		return m.OldUserID(ctx)
	case blacklistlog.FieldOwner:
		return m.OldOwner(ctx)
	case blacklistlog.FieldAction:
		return m.OldAction(ctx)
	case blacklistlog.FieldReason:
		return m.OldReason(ctx)
	case blacklistlog.FieldDetails:
		return m.OldDetails(ctx)
	case blacklistlog.FieldAmount:
		return m.OldAmount(ctx)
	case blacklistlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlacklistLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlacklistLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blacklistlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case blacklistlog.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case blacklistlog.FieldAction:
		v, ok := value.(blacklistlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case blacklistlog.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case blacklistlog.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case blacklistlog.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case blacklistlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlacklistLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlacklistLogMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, blacklistlog.FieldUserID)
	}
	if m.addamount != nil {
		fields = append(fields, blacklistlog.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlacklistLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blacklistlog.FieldUserID:
		return m.AddedUserID()
	case blacklistlog.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlacklistLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blacklistlog.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case blacklistlog.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown BlacklistLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlacklistLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlacklistLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlacklistLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlacklistLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlacklistLogMutation) ResetField(name string) error {
	switch name {
	case blacklistlog.FieldUserID:
		m.ResetUserID()
		return nil
	case blacklistlog.FieldOwner:
		m.ResetOwner()
		return nil
	case blacklistlog.FieldAction:
		m.ResetAction()
		return nil
	case blacklistlog.FieldReason:
		m.ResetReason()
		return nil
	case blacklistlog.FieldDetails:
		m.ResetDetails()
		return nil
	case blacklistlog.FieldAmount:
		m.ResetAmount()
		return nil
	case blacklistlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlacklistLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlacklistLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlacklistLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlacklistLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlacklistLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlacklistLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlacklistLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlacklistLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlacklistLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlacklistLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlacklistLog edge %s", name)
}

// BonusHistoryMutation represents an operation that mutates the BonusHistory nodes in the graph.
type BonusHistoryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	workspace_id     *int
	addworkspace_id  *int
	user_id          *int
	adduser_id       *int
	owner            *string
	delta_minutes    *int
	adddelta_minutes *int
	reason           *string
	order_id         *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*BonusHistory, error)
	predicates       []predicate.BonusHistory
}

var _ ent.Mutation = (*BonusHistoryMutation)(nil)

// bonushistoryOption allows management of the mutation configuration using functional options.
type bonushistoryOption func(*BonusHistoryMutation)

// newBonusHistoryMutation creates new mutation for the BonusHistory entity.
func newBonusHistoryMutation(c config, op Op, opts ...bonushistoryOption) *BonusHistoryMutation {
	m := &BonusHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeBonusHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBonusHistoryID sets the ID field of the mutation.
func withBonusHistoryID(id int) bonushistoryOption {
	return func(m *BonusHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *BonusHistory
		)
		m.oldValue = func(ctx context.Context) (*BonusHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BonusHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBonusHistory sets the old BonusHistory of the mutation.
func withBonusHistory(node *BonusHistory) bonushistoryOption {
	return func(m *BonusHistoryMutation) {
		m.oldValue = func(context.Context) (*BonusHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BonusHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BonusHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BonusHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BonusHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BonusHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *BonusHistoryMutation) SetWorkspaceID(i int) {
	m.workspace_id = &i
	m.addworkspace_id = nil
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *BonusHistoryMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// AddWorkspaceID adds i to the "workspace_id" field.
func (m *BonusHistoryMutation) AddWorkspaceID(i int) {
	if m.addworkspace_id != nil {
		*m.addworkspace_id += i
	} else {
		m.addworkspace_id = &i
	}
}

// AddedWorkspaceID returns the value that was added to the "workspace_id" field in this mutation.
func (m *BonusHistoryMutation) AddedWorkspaceID() (r int, exists bool) {
	v := m.addworkspace_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *BonusHistoryMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	m.addworkspace_id = nil
}

// SetUserID sets the "user_id" field.
func (m *BonusHistoryMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BonusHistoryMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *BonusHistoryMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BonusHistoryMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BonusHistoryMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetOwner sets the "owner" field.
func (m *BonusHistoryMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *BonusHistoryMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *BonusHistoryMutation) ResetOwner() {
	m.owner = nil
}

// SetDeltaMinutes sets the "delta_minutes" field.
func (m *BonusHistoryMutation) SetDeltaMinutes(i int) {
	m.delta_minutes = &i
	m.adddelta_minutes = nil
}

// DeltaMinutes returns the value of the "delta_minutes" field in the mutation.
func (m *BonusHistoryMutation) DeltaMinutes() (r int, exists bool) {
	v := m.delta_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaMinutes returns the old "delta_minutes" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldDeltaMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaMinutes: %w", err)
	}
	return oldValue.DeltaMinutes, nil
}

// AddDeltaMinutes adds i to the "delta_minutes" field.
func (m *BonusHistoryMutation) AddDeltaMinutes(i int) {
	if m.adddelta_minutes != nil {
		*m.adddelta_minutes += i
	} else {
		m.adddelta_minutes = &i
	}
}

// AddedDeltaMinutes returns the value that was added to the "delta_minutes" field in this mutation.
func (m *BonusHistoryMutation) AddedDeltaMinutes() (r int, exists bool) {
	v := m.adddelta_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeltaMinutes resets all changes to the "delta_minutes" field.
func (m *BonusHistoryMutation) ResetDeltaMinutes() {
	m.delta_minutes = nil
	m.adddelta_minutes = nil
}

// SetReason sets the "reason" field.
func (m *BonusHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *BonusHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *BonusHistoryMutation) ResetReason() {
	m.reason = nil
}

// SetOrderID sets the "order_id" field.
func (m *BonusHistoryMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *BonusHistoryMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *BonusHistoryMutation) ResetOrderID() {
	m.order_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BonusHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BonusHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BonusHistory entity.
// If the BonusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BonusHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BonusHistoryMutation builder.
func (m *BonusHistoryMutation) Where(ps ...predicate.BonusHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BonusHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BonusHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BonusHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BonusHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BonusHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BonusHistory).
func (m *BonusHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BonusHistoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, bonushistory.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, bonushistory.FieldUserID)
	}
	if m.owner != nil {
		fields = append(fields, bonushistory.FieldOwner)
	}
	if m.delta_minutes != nil {
		fields = append(fields, bonushistory.FieldDeltaMinutes)
	}
	if m.reason != nil {
		fields = append(fields, bonushistory.FieldReason)
	}
	if m.order_id != nil {
		fields = append(fields, bonushistory.FieldOrderID)
	}
	if m.created_at != nil {
		fields = append(fields, bonushistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BonusHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bonushistory.FieldWorkspaceID:
		return m.WorkspaceID()
	case bonushistory.FieldUserID:
		return m.UserID()
	case bonushistory.FieldOwner:
		return m.Owner()
	case bonushistory.FieldDeltaMinutes:
		return m.DeltaMinutes()
	case bonushistory.FieldReason:
		return m.Reason()
	case bonushistory.FieldOrderID:
		return m.OrderID()
	case bonushistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BonusHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bonushistory.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case bonushistory.FieldUserID:
		return m.OldUserID(ctx)
	case bonushistory.FieldOwner:
		return m.OldOwner(ctx)
	case bonushistory.FieldDeltaMinutes:
		return m.OldDeltaMinutes(ctx)
	case bonushistory.FieldReason:
		return m.OldReason(ctx)
	case bonushistory.FieldOrderID:
		return m.OldOrderID(ctx)
	case bonushistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BonusHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BonusHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bonushistory.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case bonushistory.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case bonushistory.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case bonushistory.FieldDeltaMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaMinutes(v)
		return nil
	case bonushistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case bonushistory.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case bonushistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BonusHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BonusHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addworkspace_id != nil {
		fields = append(fields, bonushistory.FieldWorkspaceID)
	}
	if m.adduser_id != nil {
		fields = append(fields, bonushistory.FieldUserID)
	}
	if m.adddelta_minutes != nil {
		fields = append(fields, bonushistory.FieldDeltaMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BonusHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bonushistory.FieldWorkspaceID:
		return m.AddedWorkspaceID()
	case bonushistory.FieldUserID:
		return m.AddedUserID()
	case bonushistory.FieldDeltaMinutes:
		return m.AddedDeltaMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BonusHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bonushistory.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkspaceID(v)
		return nil
	case bonushistory.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case bonushistory.FieldDeltaMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown BonusHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BonusHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BonusHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BonusHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BonusHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BonusHistoryMutation) ResetField(name string) error {
	switch name {
	case bonushistory.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case bonushistory.FieldUserID:
		m.ResetUserID()
		return nil
	case bonushistory.FieldOwner:
		m.ResetOwner()
		return nil
	case bonushistory.FieldDeltaMinutes:
		m.ResetDeltaMinutes()
		return nil
	case bonushistory.FieldReason:
		m.ResetReason()
		return nil
	case bonushistory.FieldOrderID:
		m.ResetOrderID()
		return nil
	case bonushistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BonusHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BonusHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BonusHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BonusHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BonusHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BonusHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BonusHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BonusHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BonusHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BonusHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BonusHistory edge %s", name)
}

// BonusWalletMutation represents an operation that mutates the BonusWallet nodes in the graph.
type BonusWalletMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *int
	adduser_id         *int
	owner              *string
	balance_minutes    *int
	addbalance_minutes *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	workspace          *int
	clearedworkspace   bool
	done               bool
	oldValue           func(context.Context) (*BonusWallet, error)
	predicates         []predicate.BonusWallet
}

var _ ent.Mutation = (*BonusWalletMutation)(nil)

// bonuswalletOption allows management of the mutation configuration using functional options.
type bonuswalletOption func(*BonusWalletMutation)

// newBonusWalletMutation creates new mutation for the BonusWallet entity.
func newBonusWalletMutation(c config, op Op, opts ...bonuswalletOption) *BonusWalletMutation {
	m := &BonusWalletMutation{
		config:        c,
		op:            op,
		typ:           TypeBonusWallet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBonusWalletID sets the ID field of the mutation.
func withBonusWalletID(id int) bonuswalletOption {
	return func(m *BonusWalletMutation) {
		var (
			err   error
			once  sync.Once
			value *BonusWallet
		)
		m.oldValue = func(ctx context.Context) (*BonusWallet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BonusWallet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBonusWallet sets the old BonusWallet of the mutation.
func withBonusWallet(node *BonusWallet) bonuswalletOption {
	return func(m *BonusWalletMutation) {
		m.oldValue = func(context.Context) (*BonusWallet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BonusWalletMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BonusWalletMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BonusWalletMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BonusWalletMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BonusWallet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *BonusWalletMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *BonusWalletMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the BonusWallet entity.
// If the BonusWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusWalletMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *BonusWalletMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *BonusWalletMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BonusWalletMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BonusWallet entity.
// If the BonusWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusWalletMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *BonusWalletMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BonusWalletMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BonusWalletMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetOwner sets the "owner" field.
func (m *BonusWalletMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *BonusWalletMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the BonusWallet entity.
// If the BonusWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusWalletMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *BonusWalletMutation) ResetOwner() {
	m.owner = nil
}

// SetBalanceMinutes sets the "balance_minutes" field.
func (m *BonusWalletMutation) SetBalanceMinutes(i int) {
	m.balance_minutes = &i
	m.addbalance_minutes = nil
}

// BalanceMinutes returns the value of the "balance_minutes" field in the mutation.
func (m *BonusWalletMutation) BalanceMinutes() (r int, exists bool) {
	v := m.balance_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceMinutes returns the old "balance_minutes" field's value of the BonusWallet entity.
// If the BonusWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusWalletMutation) OldBalanceMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceMinutes: %w", err)
	}
	return oldValue.BalanceMinutes, nil
}

// AddBalanceMinutes adds i to the "balance_minutes" field.
func (m *BonusWalletMutation) AddBalanceMinutes(i int) {
	if m.addbalance_minutes != nil {
		*m.addbalance_minutes += i
	} else {
		m.addbalance_minutes = &i
	}
}

// AddedBalanceMinutes returns the value that was added to the "balance_minutes" field in this mutation.
func (m *BonusWalletMutation) AddedBalanceMinutes() (r int, exists bool) {
	v := m.addbalance_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceMinutes resets all changes to the "balance_minutes" field.
func (m *BonusWalletMutation) ResetBalanceMinutes() {
	m.balance_minutes = nil
	m.addbalance_minutes = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BonusWalletMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BonusWalletMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BonusWallet entity.
// If the BonusWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BonusWalletMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BonusWalletMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *BonusWalletMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[bonuswallet.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *BonusWalletMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *BonusWalletMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *BonusWalletMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the BonusWalletMutation builder.
func (m *BonusWalletMutation) Where(ps ...predicate.BonusWallet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BonusWalletMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BonusWalletMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BonusWallet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BonusWalletMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BonusWalletMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BonusWallet).
func (m *BonusWalletMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BonusWalletMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace != nil {
		fields = append(fields, bonuswallet.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, bonuswallet.FieldUserID)
	}
	if m.owner != nil {
		fields = append(fields, bonuswallet.FieldOwner)
	}
	if m.balance_minutes != nil {
		fields = append(fields, bonuswallet.FieldBalanceMinutes)
	}
	if m.updated_at != nil {
		fields = append(fields, bonuswallet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BonusWalletMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bonuswallet.FieldWorkspaceID:
		return m.WorkspaceID()
	case bonuswallet.FieldUserID:
		return m.UserID()
	case bonuswallet.FieldOwner:
		return m.Owner()
	case bonuswallet.FieldBalanceMinutes:
		return m.BalanceMinutes()
	case bonuswallet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BonusWalletMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bonuswallet.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case bonuswallet.FieldUserID:
		return m.OldUserID(ctx)
	case bonuswallet.FieldOwner:
		return m.OldOwner(ctx)
	case bonuswallet.FieldBalanceMinutes:
		return m.OldBalanceMinutes(ctx)
	case bonuswallet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BonusWallet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BonusWalletMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bonuswallet.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case bonuswallet.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case bonuswallet.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case bonuswallet.FieldBalanceMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceMinutes(v)
		return nil
	case bonuswallet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BonusWallet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BonusWalletMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, bonuswallet.FieldUserID)
	}
	if m.addbalance_minutes != nil {
		fields = append(fields, bonuswallet.FieldBalanceMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BonusWalletMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bonuswallet.FieldUserID:
		return m.AddedUserID()
	case bonuswallet.FieldBalanceMinutes:
		return m.AddedBalanceMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BonusWalletMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bonuswallet.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case bonuswallet.FieldBalanceMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown BonusWallet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BonusWalletMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BonusWalletMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BonusWalletMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BonusWallet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BonusWalletMutation) ResetField(name string) error {
	switch name {
	case bonuswallet.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case bonuswallet.FieldUserID:
		m.ResetUserID()
		return nil
	case bonuswallet.FieldOwner:
		m.ResetOwner()
		return nil
	case bonuswallet.FieldBalanceMinutes:
		m.ResetBalanceMinutes()
		return nil
	case bonuswallet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BonusWallet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BonusWalletMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, bonuswallet.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BonusWalletMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bonuswallet.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BonusWalletMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BonusWalletMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BonusWalletMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, bonuswallet.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BonusWalletMutation) EdgeCleared(name string) bool {
	switch name {
	case bonuswallet.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BonusWalletMutation) ClearEdge(name string) error {
	switch name {
	case bonuswallet.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown BonusWallet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BonusWalletMutation) ResetEdge(name string) error {
	switch name {
	case bonuswallet.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown BonusWallet edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	chat_id          *string
	message_id       *string
	author           *string
	text             *string
	sent_time        *time.Time
	by_bot           *bool
	_type            *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*ChatMessage, error)
	predicates       []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id int) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ChatMessageMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ChatMessageMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ChatMessageMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatMessageMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatMessageMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ChatMessageMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ChatMessageMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatMessageMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *ChatMessageMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatMessageMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatMessageMutation) ResetChatID() {
	m.chat_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *ChatMessageMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ChatMessageMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ChatMessageMutation) ResetMessageID() {
	m.message_id = nil
}

// SetAuthor sets the "author" field.
func (m *ChatMessageMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ChatMessageMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *ChatMessageMutation) ResetAuthor() {
	m.author = nil
}

// SetText sets the "text" field.
func (m *ChatMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChatMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChatMessageMutation) ResetText() {
	m.text = nil
}

// SetSentTime sets the "sent_time" field.
func (m *ChatMessageMutation) SetSentTime(t time.Time) {
	m.sent_time = &t
}

// SentTime returns the value of the "sent_time" field in the mutation.
func (m *ChatMessageMutation) SentTime() (r time.Time, exists bool) {
	v := m.sent_time
	if v == nil {
		return
	}
	return *v, true
}

// OldSentTime returns the old "sent_time" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSentTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentTime: %w", err)
	}
	return oldValue.SentTime, nil
}

// ClearSentTime clears the value of the "sent_time" field.
func (m *ChatMessageMutation) ClearSentTime() {
	m.sent_time = nil
	m.clearedFields[chatmessage.FieldSentTime] = struct{}{}
}

// SentTimeCleared returns if the "sent_time" field was cleared in this mutation.
func (m *ChatMessageMutation) SentTimeCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldSentTime]
	return ok
}

// ResetSentTime resets all changes to the "sent_time" field.
func (m *ChatMessageMutation) ResetSentTime() {
	m.sent_time = nil
	delete(m.clearedFields, chatmessage.FieldSentTime)
}

// SetByBot sets the "by_bot" field.
func (m *ChatMessageMutation) SetByBot(b bool) {
	m.by_bot = &b
}

// ByBot returns the value of the "by_bot" field in the mutation.
func (m *ChatMessageMutation) ByBot() (r bool, exists bool) {
	v := m.by_bot
	if v == nil {
		return
	}
	return *v, true
}

// OldByBot returns the old "by_bot" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldByBot(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByBot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByBot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByBot: %w", err)
	}
	return oldValue.ByBot, nil
}

// ResetByBot resets all changes to the "by_bot" field.
func (m *ChatMessageMutation) ResetByBot() {
	m.by_bot = nil
}

// SetType sets the "type" field.
func (m *ChatMessageMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ChatMessageMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ChatMessageMutation) ResetType() {
	m._type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ChatMessageMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[chatmessage.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ChatMessageMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ChatMessageMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace != nil {
		fields = append(fields, chatmessage.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, chatmessage.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, chatmessage.FieldChatID)
	}
	if m.message_id != nil {
		fields = append(fields, chatmessage.FieldMessageID)
	}
	if m.author != nil {
		fields = append(fields, chatmessage.FieldAuthor)
	}
	if m.text != nil {
		fields = append(fields, chatmessage.FieldText)
	}
	if m.sent_time != nil {
		fields = append(fields, chatmessage.FieldSentTime)
	}
	if m.by_bot != nil {
		fields = append(fields, chatmessage.FieldByBot)
	}
	if m._type != nil {
		fields = append(fields, chatmessage.FieldType)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldWorkspaceID:
		return m.WorkspaceID()
	case chatmessage.FieldUserID:
		return m.UserID()
	case chatmessage.FieldChatID:
		return m.ChatID()
	case chatmessage.FieldMessageID:
		return m.MessageID()
	case chatmessage.FieldAuthor:
		return m.Author()
	case chatmessage.FieldText:
		return m.Text()
	case chatmessage.FieldSentTime:
		return m.SentTime()
	case chatmessage.FieldByBot:
		return m.ByBot()
	case chatmessage.FieldType:
		return m.GetType()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case chatmessage.FieldUserID:
		return m.OldUserID(ctx)
	case chatmessage.FieldChatID:
		return m.OldChatID(ctx)
	case chatmessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case chatmessage.FieldAuthor:
		return m.OldAuthor(ctx)
	case chatmessage.FieldText:
		return m.OldText(ctx)
	case chatmessage.FieldSentTime:
		return m.OldSentTime(ctx)
	case chatmessage.FieldByBot:
		return m.OldByBot(ctx)
	case chatmessage.FieldType:
		return m.OldType(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case chatmessage.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatmessage.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatmessage.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case chatmessage.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case chatmessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case chatmessage.FieldSentTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentTime(v)
		return nil
	case chatmessage.FieldByBot:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByBot(v)
		return nil
	case chatmessage.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, chatmessage.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldSentTime) {
		fields = append(fields, chatmessage.FieldSentTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldSentTime:
		m.ClearSentTime()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case chatmessage.FieldUserID:
		m.ResetUserID()
		return nil
	case chatmessage.FieldChatID:
		m.ResetChatID()
		return nil
	case chatmessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case chatmessage.FieldAuthor:
		m.ResetAuthor()
		return nil
	case chatmessage.FieldText:
		m.ResetText()
		return nil
	case chatmessage.FieldSentTime:
		m.ResetSentTime()
		return nil
	case chatmessage.FieldByBot:
		m.ResetByBot()
		return nil
	case chatmessage.FieldType:
		m.ResetType()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, chatmessage.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, chatmessage.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatOutboxMutation represents an operation that mutates the ChatOutbox nodes in the graph.
type ChatOutboxMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	chat_id          *string
	text             *string
	status           *chatoutbox.Status
	attempts         *int
	addattempts      *int
	last_error       *string
	created_at       *time.Time
	sent_at          *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*ChatOutbox, error)
	predicates       []predicate.ChatOutbox
}

var _ ent.Mutation = (*ChatOutboxMutation)(nil)

// chatoutboxOption allows management of the mutation configuration using functional options.
type chatoutboxOption func(*ChatOutboxMutation)

// newChatOutboxMutation creates new mutation for the ChatOutbox entity.
func newChatOutboxMutation(c config, op Op, opts ...chatoutboxOption) *ChatOutboxMutation {
	m := &ChatOutboxMutation{
		config:        c,
		op:            op,
		typ:           TypeChatOutbox,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatOutboxID sets the ID field of the mutation.
func withChatOutboxID(id int) chatoutboxOption {
	return func(m *ChatOutboxMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatOutbox
		)
		m.oldValue = func(ctx context.Context) (*ChatOutbox, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatOutbox.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatOutbox sets the old ChatOutbox of the mutation.
func withChatOutbox(node *ChatOutbox) chatoutboxOption {
	return func(m *ChatOutboxMutation) {
		m.oldValue = func(context.Context) (*ChatOutbox, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatOutboxMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatOutboxMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatOutboxMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatOutboxMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatOutbox.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ChatOutboxMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ChatOutboxMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ChatOutboxMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatOutboxMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatOutboxMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ChatOutboxMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ChatOutboxMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatOutboxMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *ChatOutboxMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatOutboxMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatOutboxMutation) ResetChatID() {
	m.chat_id = nil
}

// SetText sets the "text" field.
func (m *ChatOutboxMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChatOutboxMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChatOutboxMutation) ResetText() {
	m.text = nil
}

// SetStatus sets the "status" field.
func (m *ChatOutboxMutation) SetStatus(c chatoutbox.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatOutboxMutation) Status() (r chatoutbox.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldStatus(ctx context.Context) (v chatoutbox.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatOutboxMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *ChatOutboxMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ChatOutboxMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ChatOutboxMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ChatOutboxMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ChatOutboxMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *ChatOutboxMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ChatOutboxMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ChatOutboxMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[chatoutbox.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ChatOutboxMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[chatoutbox.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ChatOutboxMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, chatoutbox.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatOutboxMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatOutboxMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatOutboxMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSentAt sets the "sent_at" field.
func (m *ChatOutboxMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *ChatOutboxMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the ChatOutbox entity.
// If the ChatOutbox object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatOutboxMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *ChatOutboxMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[chatoutbox.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *ChatOutboxMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[chatoutbox.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *ChatOutboxMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, chatoutbox.FieldSentAt)
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ChatOutboxMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[chatoutbox.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ChatOutboxMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ChatOutboxMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ChatOutboxMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ChatOutboxMutation builder.
func (m *ChatOutboxMutation) Where(ps ...predicate.ChatOutbox) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatOutboxMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatOutboxMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatOutbox, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatOutboxMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatOutboxMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatOutbox).
func (m *ChatOutboxMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatOutboxMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workspace != nil {
		fields = append(fields, chatoutbox.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, chatoutbox.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, chatoutbox.FieldChatID)
	}
	if m.text != nil {
		fields = append(fields, chatoutbox.FieldText)
	}
	if m.status != nil {
		fields = append(fields, chatoutbox.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, chatoutbox.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, chatoutbox.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, chatoutbox.FieldCreatedAt)
	}
	if m.sent_at != nil {
		fields = append(fields, chatoutbox.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatOutboxMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatoutbox.FieldWorkspaceID:
		return m.WorkspaceID()
	case chatoutbox.FieldUserID:
		return m.UserID()
	case chatoutbox.FieldChatID:
		return m.ChatID()
	case chatoutbox.FieldText:
		return m.Text()
	case chatoutbox.FieldStatus:
		return m.Status()
	case chatoutbox.FieldAttempts:
		return m.Attempts()
	case chatoutbox.FieldLastError:
		return m.LastError()
	case chatoutbox.FieldCreatedAt:
		return m.CreatedAt()
	case chatoutbox.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatOutboxMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatoutbox.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case chatoutbox.FieldUserID:
		return m.OldUserID(ctx)
	case chatoutbox.FieldChatID:
		return m.OldChatID(ctx)
	case chatoutbox.FieldText:
		return m.OldText(ctx)
	case chatoutbox.FieldStatus:
		return m.OldStatus(ctx)
	case chatoutbox.FieldAttempts:
		return m.OldAttempts(ctx)
	case chatoutbox.FieldLastError:
		return m.OldLastError(ctx)
	case chatoutbox.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatoutbox.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatOutbox field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatOutboxMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatoutbox.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case chatoutbox.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatoutbox.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatoutbox.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case chatoutbox.FieldStatus:
		v, ok := value.(chatoutbox.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatoutbox.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case chatoutbox.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case chatoutbox.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatoutbox.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatOutboxMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, chatoutbox.FieldUserID)
	}
	if m.addattempts != nil {
		fields = append(fields, chatoutbox.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatOutboxMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatoutbox.FieldUserID:
		return m.AddedUserID()
	case chatoutbox.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatOutboxMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatoutbox.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case chatoutbox.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatOutboxMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatoutbox.FieldLastError) {
		fields = append(fields, chatoutbox.FieldLastError)
	}
	if m.FieldCleared(chatoutbox.FieldSentAt) {
		fields = append(fields, chatoutbox.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatOutboxMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatOutboxMutation) ClearField(name string) error {
	switch name {
	case chatoutbox.FieldLastError:
		m.ClearLastError()
		return nil
	case chatoutbox.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatOutboxMutation) ResetField(name string) error {
	switch name {
	case chatoutbox.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case chatoutbox.FieldUserID:
		m.ResetUserID()
		return nil
	case chatoutbox.FieldChatID:
		m.ResetChatID()
		return nil
	case chatoutbox.FieldText:
		m.ResetText()
		return nil
	case chatoutbox.FieldStatus:
		m.ResetStatus()
		return nil
	case chatoutbox.FieldAttempts:
		m.ResetAttempts()
		return nil
	case chatoutbox.FieldLastError:
		m.ResetLastError()
		return nil
	case chatoutbox.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatoutbox.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatOutboxMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, chatoutbox.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatOutboxMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatoutbox.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatOutboxMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatOutboxMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatOutboxMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, chatoutbox.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatOutboxMutation) EdgeCleared(name string) bool {
	switch name {
	case chatoutbox.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatOutboxMutation) ClearEdge(name string) error {
	switch name {
	case chatoutbox.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatOutboxMutation) ResetEdge(name string) error {
	switch name {
	case chatoutbox.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatOutbox edge %s", name)
}

// ChatSnapshotMutation represents an operation that mutates the ChatSnapshot nodes in the graph.
type ChatSnapshotMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *int
	adduser_id            *int
	chat_id               *string
	peer_name             *string
	last_message_text     *string
	last_message_time     *time.Time
	unread                *bool
	admin_unread_count    *int
	addadmin_unread_count *int
	admin_requested       *bool
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	workspace             *int
	clearedworkspace      bool
	done                  bool
	oldValue              func(context.Context) (*ChatSnapshot, error)
	predicates            []predicate.ChatSnapshot
}

var _ ent.Mutation = (*ChatSnapshotMutation)(nil)

// chatsnapshotOption allows management of the mutation configuration using functional options.
type chatsnapshotOption func(*ChatSnapshotMutation)

// newChatSnapshotMutation creates new mutation for the ChatSnapshot entity.
func newChatSnapshotMutation(c config, op Op, opts ...chatsnapshotOption) *ChatSnapshotMutation {
	m := &ChatSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSnapshotID sets the ID field of the mutation.
func withChatSnapshotID(id int) chatsnapshotOption {
	return func(m *ChatSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ChatSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSnapshot sets the old ChatSnapshot of the mutation.
func withChatSnapshot(node *ChatSnapshot) chatsnapshotOption {
	return func(m *ChatSnapshotMutation) {
		m.oldValue = func(context.Context) (*ChatSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ChatSnapshotMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ChatSnapshotMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ChatSnapshotMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *ChatSnapshotMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ChatSnapshotMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ChatSnapshotMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ChatSnapshotMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ChatSnapshotMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *ChatSnapshotMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatSnapshotMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatSnapshotMutation) ResetChatID() {
	m.chat_id = nil
}

// SetPeerName sets the "peer_name" field.
func (m *ChatSnapshotMutation) SetPeerName(s string) {
	m.peer_name = &s
}

// PeerName returns the value of the "peer_name" field in the mutation.
func (m *ChatSnapshotMutation) PeerName() (r string, exists bool) {
	v := m.peer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPeerName returns the old "peer_name" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldPeerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeerName: %w", err)
	}
	return oldValue.PeerName, nil
}

// ResetPeerName resets all changes to the "peer_name" field.
func (m *ChatSnapshotMutation) ResetPeerName() {
	m.peer_name = nil
}

// SetLastMessageText sets the "last_message_text" field.
func (m *ChatSnapshotMutation) SetLastMessageText(s string) {
	m.last_message_text = &s
}

// LastMessageText returns the value of the "last_message_text" field in the mutation.
func (m *ChatSnapshotMutation) LastMessageText() (r string, exists bool) {
	v := m.last_message_text
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageText returns the old "last_message_text" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldLastMessageText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageText: %w", err)
	}
	return oldValue.LastMessageText, nil
}

// ResetLastMessageText resets all changes to the "last_message_text" field.
func (m *ChatSnapshotMutation) ResetLastMessageText() {
	m.last_message_text = nil
}

// SetLastMessageTime sets the "last_message_time" field.
func (m *ChatSnapshotMutation) SetLastMessageTime(t time.Time) {
	m.last_message_time = &t
}

// LastMessageTime returns the value of the "last_message_time" field in the mutation.
func (m *ChatSnapshotMutation) LastMessageTime() (r time.Time, exists bool) {
	v := m.last_message_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageTime returns the old "last_message_time" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldLastMessageTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageTime: %w", err)
	}
	return oldValue.LastMessageTime, nil
}

// ClearLastMessageTime clears the value of the "last_message_time" field.
func (m *ChatSnapshotMutation) ClearLastMessageTime() {
	m.last_message_time = nil
	m.clearedFields[chatsnapshot.FieldLastMessageTime] = struct{}{}
}

// LastMessageTimeCleared returns if the "last_message_time" field was cleared in this mutation.
func (m *ChatSnapshotMutation) LastMessageTimeCleared() bool {
	_, ok := m.clearedFields[chatsnapshot.FieldLastMessageTime]
	return ok
}

// ResetLastMessageTime resets all changes to the "last_message_time" field.
func (m *ChatSnapshotMutation) ResetLastMessageTime() {
	m.last_message_time = nil
	delete(m.clearedFields, chatsnapshot.FieldLastMessageTime)
}

// SetUnread sets the "unread" field.
func (m *ChatSnapshotMutation) SetUnread(b bool) {
	m.unread = &b
}

// Unread returns the value of the "unread" field in the mutation.
func (m *ChatSnapshotMutation) Unread() (r bool, exists bool) {
	v := m.unread
	if v == nil {
		return
	}
	return *v, true
}

// OldUnread returns the old "unread" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldUnread(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnread is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnread requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnread: %w", err)
	}
	return oldValue.Unread, nil
}

// ResetUnread resets all changes to the "unread" field.
func (m *ChatSnapshotMutation) ResetUnread() {
	m.unread = nil
}

// SetAdminUnreadCount sets the "admin_unread_count" field.
func (m *ChatSnapshotMutation) SetAdminUnreadCount(i int) {
	m.admin_unread_count = &i
	m.addadmin_unread_count = nil
}

// AdminUnreadCount returns the value of the "admin_unread_count" field in the mutation.
func (m *ChatSnapshotMutation) AdminUnreadCount() (r int, exists bool) {
	v := m.admin_unread_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminUnreadCount returns the old "admin_unread_count" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldAdminUnreadCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminUnreadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminUnreadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminUnreadCount: %w", err)
	}
	return oldValue.AdminUnreadCount, nil
}

// AddAdminUnreadCount adds i to the "admin_unread_count" field.
func (m *ChatSnapshotMutation) AddAdminUnreadCount(i int) {
	if m.addadmin_unread_count != nil {
		*m.addadmin_unread_count += i
	} else {
		m.addadmin_unread_count = &i
	}
}

// AddedAdminUnreadCount returns the value that was added to the "admin_unread_count" field in this mutation.
func (m *ChatSnapshotMutation) AddedAdminUnreadCount() (r int, exists bool) {
	v := m.addadmin_unread_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminUnreadCount resets all changes to the "admin_unread_count" field.
func (m *ChatSnapshotMutation) ResetAdminUnreadCount() {
	m.admin_unread_count = nil
	m.addadmin_unread_count = nil
}

// SetAdminRequested sets the "admin_requested" field.
func (m *ChatSnapshotMutation) SetAdminRequested(b bool) {
	m.admin_requested = &b
}

// AdminRequested returns the value of the "admin_requested" field in the mutation.
func (m *ChatSnapshotMutation) AdminRequested() (r bool, exists bool) {
	v := m.admin_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminRequested returns the old "admin_requested" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldAdminRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminRequested: %w", err)
	}
	return oldValue.AdminRequested, nil
}

// ResetAdminRequested resets all changes to the "admin_requested" field.
func (m *ChatSnapshotMutation) ResetAdminRequested() {
	m.admin_requested = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatSnapshotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatSnapshotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatSnapshot entity.
// If the ChatSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSnapshotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatSnapshotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ChatSnapshotMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[chatsnapshot.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ChatSnapshotMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ChatSnapshotMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ChatSnapshotMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ChatSnapshotMutation builder.
func (m *ChatSnapshotMutation) Where(ps ...predicate.ChatSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSnapshot).
func (m *ChatSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace != nil {
		fields = append(fields, chatsnapshot.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, chatsnapshot.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, chatsnapshot.FieldChatID)
	}
	if m.peer_name != nil {
		fields = append(fields, chatsnapshot.FieldPeerName)
	}
	if m.last_message_text != nil {
		fields = append(fields, chatsnapshot.FieldLastMessageText)
	}
	if m.last_message_time != nil {
		fields = append(fields, chatsnapshot.FieldLastMessageTime)
	}
	if m.unread != nil {
		fields = append(fields, chatsnapshot.FieldUnread)
	}
	if m.admin_unread_count != nil {
		fields = append(fields, chatsnapshot.FieldAdminUnreadCount)
	}
	if m.admin_requested != nil {
		fields = append(fields, chatsnapshot.FieldAdminRequested)
	}
	if m.updated_at != nil {
		fields = append(fields, chatsnapshot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsnapshot.FieldWorkspaceID:
		return m.WorkspaceID()
	case chatsnapshot.FieldUserID:
		return m.UserID()
	case chatsnapshot.FieldChatID:
		return m.ChatID()
	case chatsnapshot.FieldPeerName:
		return m.PeerName()
	case chatsnapshot.FieldLastMessageText:
		return m.LastMessageText()
	case chatsnapshot.FieldLastMessageTime:
		return m.LastMessageTime()
	case chatsnapshot.FieldUnread:
		return m.Unread()
	case chatsnapshot.FieldAdminUnreadCount:
		return m.AdminUnreadCount()
	case chatsnapshot.FieldAdminRequested:
		return m.AdminRequested()
	case chatsnapshot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsnapshot.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case chatsnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case chatsnapshot.FieldChatID:
		return m.OldChatID(ctx)
	case chatsnapshot.FieldPeerName:
		return m.OldPeerName(ctx)
	case chatsnapshot.FieldLastMessageText:
		return m.OldLastMessageText(ctx)
	case chatsnapshot.FieldLastMessageTime:
		return m.OldLastMessageTime(ctx)
	case chatsnapshot.FieldUnread:
		return m.OldUnread(ctx)
	case chatsnapshot.FieldAdminUnreadCount:
		return m.OldAdminUnreadCount(ctx)
	case chatsnapshot.FieldAdminRequested:
		return m.OldAdminRequested(ctx)
	case chatsnapshot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsnapshot.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case chatsnapshot.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case chatsnapshot.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatsnapshot.FieldPeerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeerName(v)
		return nil
	case chatsnapshot.FieldLastMessageText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageText(v)
		return nil
	case chatsnapshot.FieldLastMessageTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageTime(v)
		return nil
	case chatsnapshot.FieldUnread:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnread(v)
		return nil
	case chatsnapshot.FieldAdminUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminUnreadCount(v)
		return nil
	case chatsnapshot.FieldAdminRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminRequested(v)
		return nil
	case chatsnapshot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, chatsnapshot.FieldUserID)
	}
	if m.addadmin_unread_count != nil {
		fields = append(fields, chatsnapshot.FieldAdminUnreadCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsnapshot.FieldUserID:
		return m.AddedUserID()
	case chatsnapshot.FieldAdminUnreadCount:
		return m.AddedAdminUnreadCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsnapshot.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case chatsnapshot.FieldAdminUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminUnreadCount(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatsnapshot.FieldLastMessageTime) {
		fields = append(fields, chatsnapshot.FieldLastMessageTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSnapshotMutation) ClearField(name string) error {
	switch name {
	case chatsnapshot.FieldLastMessageTime:
		m.ClearLastMessageTime()
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSnapshotMutation) ResetField(name string) error {
	switch name {
	case chatsnapshot.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case chatsnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case chatsnapshot.FieldChatID:
		m.ResetChatID()
		return nil
	case chatsnapshot.FieldPeerName:
		m.ResetPeerName()
		return nil
	case chatsnapshot.FieldLastMessageText:
		m.ResetLastMessageText()
		return nil
	case chatsnapshot.FieldLastMessageTime:
		m.ResetLastMessageTime()
		return nil
	case chatsnapshot.FieldUnread:
		m.ResetUnread()
		return nil
	case chatsnapshot.FieldAdminUnreadCount:
		m.ResetAdminUnreadCount()
		return nil
	case chatsnapshot.FieldAdminRequested:
		m.ResetAdminRequested()
		return nil
	case chatsnapshot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, chatsnapshot.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsnapshot.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, chatsnapshot.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsnapshot.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case chatsnapshot.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case chatsnapshot.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ChatSnapshot edge %s", name)
}

// DashboardSessionMutation represents an operation that mutates the DashboardSession nodes in the graph.
type DashboardSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *int
	adduser_id    *int
	expires_at    *time.Time
	last_seen_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DashboardSession, error)
	predicates    []predicate.DashboardSession
}

var _ ent.Mutation = (*DashboardSessionMutation)(nil)

// dashboardsessionOption allows management of the mutation configuration using functional options.
type dashboardsessionOption func(*DashboardSessionMutation)

// newDashboardSessionMutation creates new mutation for the DashboardSession entity.
func newDashboardSessionMutation(c config, op Op, opts ...dashboardsessionOption) *DashboardSessionMutation {
	m := &DashboardSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeDashboardSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDashboardSessionID sets the ID field of the mutation.
func withDashboardSessionID(id string) dashboardsessionOption {
	return func(m *DashboardSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *DashboardSession
		)
		m.oldValue = func(ctx context.Context) (*DashboardSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DashboardSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDashboardSession sets the old DashboardSession of the mutation.
func withDashboardSession(node *DashboardSession) dashboardsessionOption {
	return func(m *DashboardSessionMutation) {
		m.oldValue = func(context.Context) (*DashboardSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DashboardSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DashboardSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DashboardSession entities.
func (m *DashboardSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DashboardSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DashboardSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DashboardSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DashboardSessionMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DashboardSessionMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DashboardSession entity.
// If the DashboardSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSessionMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *DashboardSessionMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *DashboardSessionMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DashboardSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *DashboardSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *DashboardSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the DashboardSession entity.
// If the DashboardSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *DashboardSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *DashboardSessionMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *DashboardSessionMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the DashboardSession entity.
// If the DashboardSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSessionMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *DashboardSessionMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DashboardSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DashboardSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DashboardSession entity.
// If the DashboardSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DashboardSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DashboardSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DashboardSessionMutation builder.
func (m *DashboardSessionMutation) Where(ps ...predicate.DashboardSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DashboardSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DashboardSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DashboardSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DashboardSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DashboardSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DashboardSession).
func (m *DashboardSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DashboardSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, dashboardsession.FieldUserID)
	}
	if m.expires_at != nil {
		fields = append(fields, dashboardsession.FieldExpiresAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, dashboardsession.FieldLastSeenAt)
	}
	if m.created_at != nil {
		fields = append(fields, dashboardsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DashboardSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dashboardsession.FieldUserID:
		return m.UserID()
	case dashboardsession.FieldExpiresAt:
		return m.ExpiresAt()
	case dashboardsession.FieldLastSeenAt:
		return m.LastSeenAt()
	case dashboardsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DashboardSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dashboardsession.FieldUserID:
		return m.OldUserID(ctx)
	case dashboardsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case dashboardsession.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case dashboardsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DashboardSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DashboardSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dashboardsession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case dashboardsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case dashboardsession.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case dashboardsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DashboardSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DashboardSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, dashboardsession.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DashboardSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dashboardsession.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DashboardSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dashboardsession.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown DashboardSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DashboardSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DashboardSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DashboardSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DashboardSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DashboardSessionMutation) ResetField(name string) error {
	switch name {
	case dashboardsession.FieldUserID:
		m.ResetUserID()
		return nil
	case dashboardsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case dashboardsession.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case dashboardsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DashboardSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DashboardSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DashboardSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DashboardSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DashboardSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DashboardSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DashboardSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DashboardSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DashboardSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DashboardSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DashboardSession edge %s", name)
}

// LotMappingMutation represents an operation that mutates the LotMapping nodes in the graph.
type LotMappingMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *int
	adduser_id       *int
	lot_number       *string
	account_id       *int
	addaccount_id    *int
	lot_url          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *int
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*LotMapping, error)
	predicates       []predicate.LotMapping
}

var _ ent.Mutation = (*LotMappingMutation)(nil)

// lotmappingOption allows management of the mutation configuration using functional options.
type lotmappingOption func(*LotMappingMutation)

// newLotMappingMutation creates new mutation for the LotMapping entity.
func newLotMappingMutation(c config, op Op, opts ...lotmappingOption) *LotMappingMutation {
	m := &LotMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeLotMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLotMappingID sets the ID field of the mutation.
func withLotMappingID(id int) lotmappingOption {
	return func(m *LotMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *LotMapping
		)
		m.oldValue = func(ctx context.Context) (*LotMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LotMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLotMapping sets the old LotMapping of the mutation.
func withLotMapping(node *LotMapping) lotmappingOption {
	return func(m *LotMappingMutation) {
		m.oldValue = func(context.Context) (*LotMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LotMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LotMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LotMappingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LotMappingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LotMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *LotMappingMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *LotMappingMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *LotMappingMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *LotMappingMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LotMappingMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *LotMappingMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *LotMappingMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LotMappingMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetLotNumber sets the "lot_number" field.
func (m *LotMappingMutation) SetLotNumber(s string) {
	m.lot_number = &s
}

// LotNumber returns the value of the "lot_number" field in the mutation.
func (m *LotMappingMutation) LotNumber() (r string, exists bool) {
	v := m.lot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLotNumber returns the old "lot_number" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldLotNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotNumber: %w", err)
	}
	return oldValue.LotNumber, nil
}

// ResetLotNumber resets all changes to the "lot_number" field.
func (m *LotMappingMutation) ResetLotNumber() {
	m.lot_number = nil
}

// SetAccountID sets the "account_id" field.
func (m *LotMappingMutation) SetAccountID(i int) {
	m.account_id = &i
	m.addaccount_id = nil
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *LotMappingMutation) AccountID() (r int, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// AddAccountID adds i to the "account_id" field.
func (m *LotMappingMutation) AddAccountID(i int) {
	if m.addaccount_id != nil {
		*m.addaccount_id += i
	} else {
		m.addaccount_id = &i
	}
}

// AddedAccountID returns the value that was added to the "account_id" field in this mutation.
func (m *LotMappingMutation) AddedAccountID() (r int, exists bool) {
	v := m.addaccount_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *LotMappingMutation) ResetAccountID() {
	m.account_id = nil
	m.addaccount_id = nil
}

// SetLotURL sets the "lot_url" field.
func (m *LotMappingMutation) SetLotURL(s string) {
	m.lot_url = &s
}

// LotURL returns the value of the "lot_url" field in the mutation.
func (m *LotMappingMutation) LotURL() (r string, exists bool) {
	v := m.lot_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLotURL returns the old "lot_url" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldLotURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotURL: %w", err)
	}
	return oldValue.LotURL, nil
}

// ResetLotURL resets all changes to the "lot_url" field.
func (m *LotMappingMutation) ResetLotURL() {
	m.lot_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LotMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LotMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LotMapping entity.
// If the LotMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LotMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LotMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *LotMappingMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[lotmapping.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *LotMappingMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *LotMappingMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *LotMappingMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the LotMappingMutation builder.
func (m *LotMappingMutation) Where(ps ...predicate.LotMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LotMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LotMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LotMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LotMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LotMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LotMapping).
func (m *LotMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LotMappingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace != nil {
		fields = append(fields, lotmapping.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, lotmapping.FieldUserID)
	}
	if m.lot_number != nil {
		fields = append(fields, lotmapping.FieldLotNumber)
	}
	if m.account_id != nil {
		fields = append(fields, lotmapping.FieldAccountID)
	}
	if m.lot_url != nil {
		fields = append(fields, lotmapping.FieldLotURL)
	}
	if m.created_at != nil {
		fields = append(fields, lotmapping.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LotMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lotmapping.FieldWorkspaceID:
		return m.WorkspaceID()
	case lotmapping.FieldUserID:
		return m.UserID()
	case lotmapping.FieldLotNumber:
		return m.LotNumber()
	case lotmapping.FieldAccountID:
		return m.AccountID()
	case lotmapping.FieldLotURL:
		return m.LotURL()
	case lotmapping.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LotMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lotmapping.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case lotmapping.FieldUserID:
		return m.OldUserID(ctx)
	case lotmapping.FieldLotNumber:
		return m.OldLotNumber(ctx)
	case lotmapping.FieldAccountID:
		return m.OldAccountID(ctx)
	case lotmapping.FieldLotURL:
		return m.OldLotURL(ctx)
	case lotmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LotMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LotMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lotmapping.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case lotmapping.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case lotmapping.FieldLotNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotNumber(v)
		return nil
	case lotmapping.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case lotmapping.FieldLotURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotURL(v)
		return nil
	case lotmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LotMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LotMappingMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, lotmapping.FieldUserID)
	}
	if m.addaccount_id != nil {
		fields = append(fields, lotmapping.FieldAccountID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LotMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lotmapping.FieldUserID:
		return m.AddedUserID()
	case lotmapping.FieldAccountID:
		return m.AddedAccountID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LotMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lotmapping.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case lotmapping.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccountID(v)
		return nil
	}
	return fmt.Errorf("unknown LotMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LotMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LotMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LotMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LotMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LotMappingMutation) ResetField(name string) error {
	switch name {
	case lotmapping.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case lotmapping.FieldUserID:
		m.ResetUserID()
		return nil
	case lotmapping.FieldLotNumber:
		m.ResetLotNumber()
		return nil
	case lotmapping.FieldAccountID:
		m.ResetAccountID()
		return nil
	case lotmapping.FieldLotURL:
		m.ResetLotURL()
		return nil
	case lotmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LotMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LotMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, lotmapping.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LotMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lotmapping.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LotMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LotMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LotMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, lotmapping.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LotMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case lotmapping.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LotMappingMutation) ClearEdge(name string) error {
	switch name {
	case lotmapping.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown LotMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LotMappingMutation) ResetEdge(name string) error {
	switch name {
	case lotmapping.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown LotMapping edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *int
	adduser_id      *int
	workspace_id    *int
	addworkspace_id *int
	kind            *string
	message         *string
	read            *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Notification, error)
	predicates      []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id int) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *NotificationMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *NotificationMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *NotificationMutation) SetWorkspaceID(i int) {
	m.workspace_id = &i
	m.addworkspace_id = nil
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *NotificationMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// AddWorkspaceID adds i to the "workspace_id" field.
func (m *NotificationMutation) AddWorkspaceID(i int) {
	if m.addworkspace_id != nil {
		*m.addworkspace_id += i
	} else {
		m.addworkspace_id = &i
	}
}

// AddedWorkspaceID returns the value that was added to the "workspace_id" field in this mutation.
func (m *NotificationMutation) AddedWorkspaceID() (r int, exists bool) {
	v := m.addworkspace_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *NotificationMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	m.addworkspace_id = nil
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, notification.FieldWorkspaceID)
	}
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldWorkspaceID:
		return m.WorkspaceID()
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case notification.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.addworkspace_id != nil {
		fields = append(fields, notification.FieldWorkspaceID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldUserID:
		return m.AddedUserID()
	case notification.FieldWorkspaceID:
		return m.AddedWorkspaceID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notification.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case notification.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkspaceID(v)
		return nil
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// OrderEventMutation represents an operation that mutates the OrderEvent nodes in the graph.
type OrderEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *int
	adduser_id        *int
	order_id          *string
	owner             *string
	account_id        *int
	addaccount_id     *int
	account_name      *string
	steam_id          *int64
	addsteam_id       *int64
	lot_number        *string
	amount            *int
	addamount         *int
	price             *float64
	addprice          *float64
	rental_minutes    *int
	addrental_minutes *int
	action            *orderevent.Action
	created_at        *time.Time
	clearedFields     map[string]struct{}
	workspace         *int
	clearedworkspace  bool
	done              bool
	oldValue          func(context.Context) (*OrderEvent, error)
	predicates        []predicate.OrderEvent
}

var _ ent.Mutation = (*OrderEventMutation)(nil)

// ordereventOption allows management of the mutation configuration using functional options.
type ordereventOption func(*OrderEventMutation)

// newOrderEventMutation creates new mutation for the OrderEvent entity.
func newOrderEventMutation(c config, op Op, opts ...ordereventOption) *OrderEventMutation {
	m := &OrderEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderEventID sets the ID field of the mutation.
func withOrderEventID(id int) ordereventOption {
	return func(m *OrderEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderEvent
		)
		m.oldValue = func(ctx context.Context) (*OrderEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderEvent sets the old OrderEvent of the mutation.
func withOrderEvent(node *OrderEvent) ordereventOption {
	return func(m *OrderEventMutation) {
		m.oldValue = func(context.Context) (*OrderEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *OrderEventMutation) SetWorkspaceID(i int) {
	m.workspace = &i
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *OrderEventMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *OrderEventMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *OrderEventMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OrderEventMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *OrderEventMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *OrderEventMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OrderEventMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetOrderID sets the "order_id" field.
func (m *OrderEventMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderEventMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderEventMutation) ResetOrderID() {
	m.order_id = nil
}

// SetOwner sets the "owner" field.
func (m *OrderEventMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *OrderEventMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *OrderEventMutation) ResetOwner() {
	m.owner = nil
}

// SetAccountID sets the "account_id" field.
func (m *OrderEventMutation) SetAccountID(i int) {
	m.account_id = &i
	m.addaccount_id = nil
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *OrderEventMutation) AccountID() (r int, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldAccountID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// AddAccountID adds i to the "account_id" field.
func (m *OrderEventMutation) AddAccountID(i int) {
	if m.addaccount_id != nil {
		*m.addaccount_id += i
	} else {
		m.addaccount_id = &i
	}
}

// AddedAccountID returns the value that was added to the "account_id" field in this mutation.
func (m *OrderEventMutation) AddedAccountID() (r int, exists bool) {
	v := m.addaccount_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAccountID clears the value of the "account_id" field.
func (m *OrderEventMutation) ClearAccountID() {
	m.account_id = nil
	m.addaccount_id = nil
	m.clearedFields[orderevent.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *OrderEventMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[orderevent.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *OrderEventMutation) ResetAccountID() {
	m.account_id = nil
	m.addaccount_id = nil
	delete(m.clearedFields, orderevent.FieldAccountID)
}

// SetAccountName sets the "account_name" field.
func (m *OrderEventMutation) SetAccountName(s string) {
	m.account_name = &s
}

// AccountName returns the value of the "account_name" field in the mutation.
func (m *OrderEventMutation) AccountName() (r string, exists bool) {
	v := m.account_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountName returns the old "account_name" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldAccountName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountName: %w", err)
	}
	return oldValue.AccountName, nil
}

// ResetAccountName resets all changes to the "account_name" field.
func (m *OrderEventMutation) ResetAccountName() {
	m.account_name = nil
}

// SetSteamID sets the "steam_id" field.
func (m *OrderEventMutation) SetSteamID(i int64) {
	m.steam_id = &i
	m.addsteam_id = nil
}

// SteamID returns the value of the "steam_id" field in the mutation.
func (m *OrderEventMutation) SteamID() (r int64, exists bool) {
	v := m.steam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSteamID returns the old "steam_id" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldSteamID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteamID: %w", err)
	}
	return oldValue.SteamID, nil
}

// AddSteamID adds i to the "steam_id" field.
func (m *OrderEventMutation) AddSteamID(i int64) {
	if m.addsteam_id != nil {
		*m.addsteam_id += i
	} else {
		m.addsteam_id = &i
	}
}

// AddedSteamID returns the value that was added to the "steam_id" field in this mutation.
func (m *OrderEventMutation) AddedSteamID() (r int64, exists bool) {
	v := m.addsteam_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSteamID clears the value of the "steam_id" field.
func (m *OrderEventMutation) ClearSteamID() {
	m.steam_id = nil
	m.addsteam_id = nil
	m.clearedFields[orderevent.FieldSteamID] = struct{}{}
}

// SteamIDCleared returns if the "steam_id" field was cleared in this mutation.
func (m *OrderEventMutation) SteamIDCleared() bool {
	_, ok := m.clearedFields[orderevent.FieldSteamID]
	return ok
}

// ResetSteamID resets all changes to the "steam_id" field.
func (m *OrderEventMutation) ResetSteamID() {
	m.steam_id = nil
	m.addsteam_id = nil
	delete(m.clearedFields, orderevent.FieldSteamID)
}

// SetLotNumber sets the "lot_number" field.
func (m *OrderEventMutation) SetLotNumber(s string) {
	m.lot_number = &s
}

// LotNumber returns the value of the "lot_number" field in the mutation.
func (m *OrderEventMutation) LotNumber() (r string, exists bool) {
	v := m.lot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLotNumber returns the old "lot_number" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldLotNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotNumber: %w", err)
	}
	return oldValue.LotNumber, nil
}

// ResetLotNumber resets all changes to the "lot_number" field.
func (m *OrderEventMutation) ResetLotNumber() {
	m.lot_number = nil
}

// SetAmount sets the "amount" field.
func (m *OrderEventMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *OrderEventMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *OrderEventMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *OrderEventMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *OrderEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetPrice sets the "price" field.
func (m *OrderEventMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *OrderEventMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *OrderEventMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *OrderEventMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *OrderEventMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetRentalMinutes sets the "rental_minutes" field.
func (m *OrderEventMutation) SetRentalMinutes(i int) {
	m.rental_minutes = &i
	m.addrental_minutes = nil
}

// RentalMinutes returns the value of the "rental_minutes" field in the mutation.
func (m *OrderEventMutation) RentalMinutes() (r int, exists bool) {
	v := m.rental_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldRentalMinutes returns the old "rental_minutes" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldRentalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentalMinutes: %w", err)
	}
	return oldValue.RentalMinutes, nil
}

// AddRentalMinutes adds i to the "rental_minutes" field.
func (m *OrderEventMutation) AddRentalMinutes(i int) {
	if m.addrental_minutes != nil {
		*m.addrental_minutes += i
	} else {
		m.addrental_minutes = &i
	}
}

// AddedRentalMinutes returns the value that was added to the "rental_minutes" field in this mutation.
func (m *OrderEventMutation) AddedRentalMinutes() (r int, exists bool) {
	v := m.addrental_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetRentalMinutes resets all changes to the "rental_minutes" field.
func (m *OrderEventMutation) ResetRentalMinutes() {
	m.rental_minutes = nil
	m.addrental_minutes = nil
}

// SetAction sets the "action" field.
func (m *OrderEventMutation) SetAction(o orderevent.Action) {
	m.action = &o
}

// Action returns the value of the "action" field in the mutation.
func (m *OrderEventMutation) Action() (r orderevent.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldAction(ctx context.Context) (v orderevent.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *OrderEventMutation) ResetAction() {
	m.action = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderEvent entity.
// If the OrderEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *OrderEventMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[orderevent.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *OrderEventMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *OrderEventMutation) WorkspaceIDs() (ids []int) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *OrderEventMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the OrderEventMutation builder.
func (m *OrderEventMutation) Where(ps ...predicate.OrderEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderEvent).
func (m *OrderEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workspace != nil {
		fields = append(fields, orderevent.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, orderevent.FieldUserID)
	}
	if m.order_id != nil {
		fields = append(fields, orderevent.FieldOrderID)
	}
	if m.owner != nil {
		fields = append(fields, orderevent.FieldOwner)
	}
	if m.account_id != nil {
		fields = append(fields, orderevent.FieldAccountID)
	}
	if m.account_name != nil {
		fields = append(fields, orderevent.FieldAccountName)
	}
	if m.steam_id != nil {
		fields = append(fields, orderevent.FieldSteamID)
	}
	if m.lot_number != nil {
		fields = append(fields, orderevent.FieldLotNumber)
	}
	if m.amount != nil {
		fields = append(fields, orderevent.FieldAmount)
	}
	if m.price != nil {
		fields = append(fields, orderevent.FieldPrice)
	}
	if m.rental_minutes != nil {
		fields = append(fields, orderevent.FieldRentalMinutes)
	}
	if m.action != nil {
		fields = append(fields, orderevent.FieldAction)
	}
	if m.created_at != nil {
		fields = append(fields, orderevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderevent.FieldWorkspaceID:
		return m.WorkspaceID()
	case orderevent.FieldUserID:
		return m.UserID()
	case orderevent.FieldOrderID:
		return m.OrderID()
	case orderevent.FieldOwner:
		return m.Owner()
	case orderevent.FieldAccountID:
		return m.AccountID()
	case orderevent.FieldAccountName:
		return m.AccountName()
	case orderevent.FieldSteamID:
		return m.SteamID()
	case orderevent.FieldLotNumber:
		return m.LotNumber()
	case orderevent.FieldAmount:
		return m.Amount()
	case orderevent.FieldPrice:
		return m.Price()
	case orderevent.FieldRentalMinutes:
		return m.RentalMinutes()
	case orderevent.FieldAction:
		return m.Action()
	case orderevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderevent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case orderevent.FieldUserID:
		return m.OldUserID(ctx)
	case orderevent.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderevent.FieldOwner:
		return m.OldOwner(ctx)
	case orderevent.FieldAccountID:
		return m.OldAccountID(ctx)
	case orderevent.FieldAccountName:
		return m.OldAccountName(ctx)
	case orderevent.FieldSteamID:
		return m.OldSteamID(ctx)
	case orderevent.FieldLotNumber:
		return m.OldLotNumber(ctx)
	case orderevent.FieldAmount:
		return m.OldAmount(ctx)
	case orderevent.FieldPrice:
		return m.OldPrice(ctx)
	case orderevent.FieldRentalMinutes:
		return m.OldRentalMinutes(ctx)
	case orderevent.FieldAction:
		return m.OldAction(ctx)
	case orderevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderevent.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case orderevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case orderevent.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderevent.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case orderevent.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case orderevent.FieldAccountName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountName(v)
		return nil
	case orderevent.FieldSteamID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteamID(v)
		return nil
	case orderevent.FieldLotNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotNumber(v)
		return nil
	case orderevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case orderevent.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case orderevent.FieldRentalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentalMinutes(v)
		return nil
	case orderevent.FieldAction:
		v, ok := value.(orderevent.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case orderevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderEventMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, orderevent.FieldUserID)
	}
	if m.addaccount_id != nil {
		fields = append(fields, orderevent.FieldAccountID)
	}
	if m.addsteam_id != nil {
		fields = append(fields, orderevent.FieldSteamID)
	}
	if m.addamount != nil {
		fields = append(fields, orderevent.FieldAmount)
	}
	if m.addprice != nil {
		fields = append(fields, orderevent.FieldPrice)
	}
	if m.addrental_minutes != nil {
		fields = append(fields, orderevent.FieldRentalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderevent.FieldUserID:
		return m.AddedUserID()
	case orderevent.FieldAccountID:
		return m.AddedAccountID()
	case orderevent.FieldSteamID:
		return m.AddedSteamID()
	case orderevent.FieldAmount:
		return m.AddedAmount()
	case orderevent.FieldPrice:
		return m.AddedPrice()
	case orderevent.FieldRentalMinutes:
		return m.AddedRentalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderevent.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case orderevent.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccountID(v)
		return nil
	case orderevent.FieldSteamID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSteamID(v)
		return nil
	case orderevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case orderevent.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case orderevent.FieldRentalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRentalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown OrderEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderevent.FieldAccountID) {
		fields = append(fields, orderevent.FieldAccountID)
	}
	if m.FieldCleared(orderevent.FieldSteamID) {
		fields = append(fields, orderevent.FieldSteamID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderEventMutation) ClearField(name string) error {
	switch name {
	case orderevent.FieldAccountID:
		m.ClearAccountID()
		return nil
	case orderevent.FieldSteamID:
		m.ClearSteamID()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderEventMutation) ResetField(name string) error {
	switch name {
	case orderevent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case orderevent.FieldUserID:
		m.ResetUserID()
		return nil
	case orderevent.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderevent.FieldOwner:
		m.ResetOwner()
		return nil
	case orderevent.FieldAccountID:
		m.ResetAccountID()
		return nil
	case orderevent.FieldAccountName:
		m.ResetAccountName()
		return nil
	case orderevent.FieldSteamID:
		m.ResetSteamID()
		return nil
	case orderevent.FieldLotNumber:
		m.ResetLotNumber()
		return nil
	case orderevent.FieldAmount:
		m.ResetAmount()
		return nil
	case orderevent.FieldPrice:
		m.ResetPrice()
		return nil
	case orderevent.FieldRentalMinutes:
		m.ResetRentalMinutes()
		return nil
	case orderevent.FieldAction:
		m.ResetAction()
		return nil
	case orderevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, orderevent.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderevent.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, orderevent.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderEventMutation) EdgeCleared(name string) bool {
	switch name {
	case orderevent.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderEventMutation) ClearEdge(name string) error {
	switch name {
	case orderevent.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderEventMutation) ResetEdge(name string) error {
	switch name {
	case orderevent.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown OrderEvent edge %s", name)
}

// ReviewRewardMutation represents an operation that mutates the ReviewReward nodes in the graph.
type ReviewRewardMutation struct {
	config
	op              Op
	typ             string
	id              *int
	order_id        *string
	owner           *string
	user_id         *int
	adduser_id      *int
	workspace_id    *int
	addworkspace_id *int
	rating          *int
	addrating       *int
	review_text     *string
	account_id      *int
	addaccount_id   *int
	claimed_at      *time.Time
	revoked_at      *time.Time
	reviewed_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ReviewReward, error)
	predicates      []predicate.ReviewReward
}

var _ ent.Mutation = (*ReviewRewardMutation)(nil)

// reviewrewardOption allows management of the mutation configuration using functional options.
type reviewrewardOption func(*ReviewRewardMutation)

// newReviewRewardMutation creates new mutation for the ReviewReward entity.
func newReviewRewardMutation(c config, op Op, opts ...reviewrewardOption) *ReviewRewardMutation {
	m := &ReviewRewardMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewReward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewRewardID sets the ID field of the mutation.
func withReviewRewardID(id int) reviewrewardOption {
	return func(m *ReviewRewardMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewReward
		)
		m.oldValue = func(ctx context.Context) (*ReviewReward, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewReward.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewReward sets the old ReviewReward of the mutation.
func withReviewReward(node *ReviewReward) reviewrewardOption {
	return func(m *ReviewRewardMutation) {
		m.oldValue = func(context.Context) (*ReviewReward, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewRewardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewRewardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewRewardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewRewardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewReward.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *ReviewRewardMutation) SetOrderID(s string) {
	m.order_id = &s
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *ReviewRewardMutation) OrderID() (r string, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldOrderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *ReviewRewardMutation) ResetOrderID() {
	m.order_id = nil
}

// SetOwner sets the "owner" field.
func (m *ReviewRewardMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *ReviewRewardMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *ReviewRewardMutation) ResetOwner() {
	m.owner = nil
}

// SetUserID sets the "user_id" field.
func (m *ReviewRewardMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewRewardMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ReviewRewardMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ReviewRewardMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewRewardMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ReviewRewardMutation) SetWorkspaceID(i int) {
	m.workspace_id = &i
	m.addworkspace_id = nil
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ReviewRewardMutation) WorkspaceID() (r int, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldWorkspaceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// AddWorkspaceID adds i to the "workspace_id" field.
func (m *ReviewRewardMutation) AddWorkspaceID(i int) {
	if m.addworkspace_id != nil {
		*m.addworkspace_id += i
	} else {
		m.addworkspace_id = &i
	}
}

// AddedWorkspaceID returns the value that was added to the "workspace_id" field in this mutation.
func (m *ReviewRewardMutation) AddedWorkspaceID() (r int, exists bool) {
	v := m.addworkspace_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ReviewRewardMutation) ResetWorkspaceID() {
	m.workspace_id = nil
	m.addworkspace_id = nil
}

// SetRating sets the "rating" field.
func (m *ReviewRewardMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewRewardMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewRewardMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewRewardMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewRewardMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetReviewText sets the "review_text" field.
func (m *ReviewRewardMutation) SetReviewText(s string) {
	m.review_text = &s
}

// ReviewText returns the value of the "review_text" field in the mutation.
func (m *ReviewRewardMutation) ReviewText() (r string, exists bool) {
	v := m.review_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewText returns the old "review_text" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldReviewText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewText: %w", err)
	}
	return oldValue.ReviewText, nil
}

// ResetReviewText resets all changes to the "review_text" field.
func (m *ReviewRewardMutation) ResetReviewText() {
	m.review_text = nil
}

// SetAccountID sets the "account_id" field.
func (m *ReviewRewardMutation) SetAccountID(i int) {
	m.account_id = &i
	m.addaccount_id = nil
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ReviewRewardMutation) AccountID() (r int, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldAccountID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// AddAccountID adds i to the "account_id" field.
func (m *ReviewRewardMutation) AddAccountID(i int) {
	if m.addaccount_id != nil {
		*m.addaccount_id += i
	} else {
		m.addaccount_id = &i
	}
}

// AddedAccountID returns the value that was added to the "account_id" field in this mutation.
func (m *ReviewRewardMutation) AddedAccountID() (r int, exists bool) {
	v := m.addaccount_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearAccountID clears the value of the "account_id" field.
func (m *ReviewRewardMutation) ClearAccountID() {
	m.account_id = nil
	m.addaccount_id = nil
	m.clearedFields[reviewreward.FieldAccountID] = struct{}{}
}

// AccountIDCleared returns if the "account_id" field was cleared in this mutation.
func (m *ReviewRewardMutation) AccountIDCleared() bool {
	_, ok := m.clearedFields[reviewreward.FieldAccountID]
	return ok
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ReviewRewardMutation) ResetAccountID() {
	m.account_id = nil
	m.addaccount_id = nil
	delete(m.clearedFields, reviewreward.FieldAccountID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ReviewRewardMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ReviewRewardMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldClaimedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ReviewRewardMutation) ResetClaimedAt() {
	m.claimed_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *ReviewRewardMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *ReviewRewardMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *ReviewRewardMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[reviewreward.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *ReviewRewardMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[reviewreward.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *ReviewRewardMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, reviewreward.FieldRevokedAt)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ReviewRewardMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ReviewRewardMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the ReviewReward entity.
// If the ReviewReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRewardMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ReviewRewardMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[reviewreward.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ReviewRewardMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[reviewreward.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ReviewRewardMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, reviewreward.FieldReviewedAt)
}

// Where appends a list predicates to the ReviewRewardMutation builder.
func (m *ReviewRewardMutation) Where(ps ...predicate.ReviewReward) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewRewardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewRewardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewReward, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewRewardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewRewardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewReward).
func (m *ReviewRewardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewRewardMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.order_id != nil {
		fields = append(fields, reviewreward.FieldOrderID)
	}
	if m.owner != nil {
		fields = append(fields, reviewreward.FieldOwner)
	}
	if m.user_id != nil {
		fields = append(fields, reviewreward.FieldUserID)
	}
	if m.workspace_id != nil {
		fields = append(fields, reviewreward.FieldWorkspaceID)
	}
	if m.rating != nil {
		fields = append(fields, reviewreward.FieldRating)
	}
	if m.review_text != nil {
		fields = append(fields, reviewreward.FieldReviewText)
	}
	if m.account_id != nil {
		fields = append(fields, reviewreward.FieldAccountID)
	}
	if m.claimed_at != nil {
		fields = append(fields, reviewreward.FieldClaimedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, reviewreward.FieldRevokedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, reviewreward.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewRewardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewreward.FieldOrderID:
		return m.OrderID()
	case reviewreward.FieldOwner:
		return m.Owner()
	case reviewreward.FieldUserID:
		return m.UserID()
	case reviewreward.FieldWorkspaceID:
		return m.WorkspaceID()
	case reviewreward.FieldRating:
		return m.Rating()
	case reviewreward.FieldReviewText:
		return m.ReviewText()
	case reviewreward.FieldAccountID:
		return m.AccountID()
	case reviewreward.FieldClaimedAt:
		return m.ClaimedAt()
	case reviewreward.FieldRevokedAt:
		return m.RevokedAt()
	case reviewreward.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewRewardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewreward.FieldOrderID:
		return m.OldOrderID(ctx)
	case reviewreward.FieldOwner:
		return m.OldOwner(ctx)
	case reviewreward.FieldUserID:
		return m.OldUserID(ctx)
	case reviewreward.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case reviewreward.FieldRating:
		return m.OldRating(ctx)
	case reviewreward.FieldReviewText:
		return m.OldReviewText(ctx)
	case reviewreward.FieldAccountID:
		return m.OldAccountID(ctx)
	case reviewreward.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case reviewreward.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case reviewreward.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewReward field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRewardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewreward.FieldOrderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case reviewreward.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case reviewreward.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewreward.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case reviewreward.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewreward.FieldReviewText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewText(v)
		return nil
	case reviewreward.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case reviewreward.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case reviewreward.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case reviewreward.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewReward field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewRewardMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, reviewreward.FieldUserID)
	}
	if m.addworkspace_id != nil {
		fields = append(fields, reviewreward.FieldWorkspaceID)
	}
	if m.addrating != nil {
		fields = append(fields, reviewreward.FieldRating)
	}
	if m.addaccount_id != nil {
		fields = append(fields, reviewreward.FieldAccountID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewRewardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewreward.FieldUserID:
		return m.AddedUserID()
	case reviewreward.FieldWorkspaceID:
		return m.AddedWorkspaceID()
	case reviewreward.FieldRating:
		return m.AddedRating()
	case reviewreward.FieldAccountID:
		return m.AddedAccountID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRewardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewreward.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case reviewreward.FieldWorkspaceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkspaceID(v)
		return nil
	case reviewreward.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case reviewreward.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccountID(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewReward numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewRewardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewreward.FieldAccountID) {
		fields = append(fields, reviewreward.FieldAccountID)
	}
	if m.FieldCleared(reviewreward.FieldRevokedAt) {
		fields = append(fields, reviewreward.FieldRevokedAt)
	}
	if m.FieldCleared(reviewreward.FieldReviewedAt) {
		fields = append(fields, reviewreward.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewRewardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewRewardMutation) ClearField(name string) error {
	switch name {
	case reviewreward.FieldAccountID:
		m.ClearAccountID()
		return nil
	case reviewreward.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	case reviewreward.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewReward nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewRewardMutation) ResetField(name string) error {
	switch name {
	case reviewreward.FieldOrderID:
		m.ResetOrderID()
		return nil
	case reviewreward.FieldOwner:
		m.ResetOwner()
		return nil
	case reviewreward.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewreward.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case reviewreward.FieldRating:
		m.ResetRating()
		return nil
	case reviewreward.FieldReviewText:
		m.ResetReviewText()
		return nil
	case reviewreward.FieldAccountID:
		m.ResetAccountID()
		return nil
	case reviewreward.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case reviewreward.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case reviewreward.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewReward field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewRewardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewRewardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewRewardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewRewardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewRewardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewRewardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewRewardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewReward unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewRewardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewReward edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *int
	adduser_id    *int
	key           *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id int) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SettingMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SettingMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *SettingMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *SettingMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SettingMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetKey sets the "key" field.
func (m *SettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *SettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *SettingMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, setting.FieldUserID)
	}
	if m.key != nil {
		fields = append(fields, setting.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldUserID:
		return m.UserID()
	case setting.FieldKey:
		return m.Key()
	case setting.FieldValue:
		return m.Value()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldUserID:
		return m.OldUserID(ctx)
	case setting.FieldKey:
		return m.OldKey(ctx)
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case setting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, setting.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case setting.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldUserID:
		m.ResetUserID()
		return nil
	case setting.FieldKey:
		m.ResetKey()
		return nil
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	username      *string
	password_hash *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *int
	adduser_id               *int
	label                    *string
	token                    *string
	proxy_uri                *string
	proxy_user               *string
	proxy_pass               *string
	is_default               *bool
	status                   *workspace.Status
	status_message           *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	accounts                 map[int]struct{}
	removedaccounts          map[int]struct{}
	clearedaccounts          bool
	lot_mappings             map[int]struct{}
	removedlot_mappings      map[int]struct{}
	clearedlot_mappings      bool
	order_events             map[int]struct{}
	removedorder_events      map[int]struct{}
	clearedorder_events      bool
	blacklist_entries        map[int]struct{}
	removedblacklist_entries map[int]struct{}
	clearedblacklist_entries bool
	bonus_wallets            map[int]struct{}
	removedbonus_wallets     map[int]struct{}
	clearedbonus_wallets     bool
	chat_snapshots           map[int]struct{}
	removedchat_snapshots    map[int]struct{}
	clearedchat_snapshots    bool
	chat_messages            map[int]struct{}
	removedchat_messages     map[int]struct{}
	clearedchat_messages     bool
	chat_outbox              map[int]struct{}
	removedchat_outbox       map[int]struct{}
	clearedchat_outbox       bool
	admin_calls              map[int]struct{}
	removedadmin_calls       map[int]struct{}
	clearedadmin_calls       bool
	done                     bool
	oldValue                 func(context.Context) (*Workspace, error)
	predicates               []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id int) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WorkspaceMutation) SetUserID(i int) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkspaceMutation) UserID() (r int, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *WorkspaceMutation) AddUserID(i int) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *WorkspaceMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkspaceMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetLabel sets the "label" field.
func (m *WorkspaceMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *WorkspaceMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *WorkspaceMutation) ResetLabel() {
	m.label = nil
}

// SetToken sets the "token" field.
func (m *WorkspaceMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *WorkspaceMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *WorkspaceMutation) ResetToken() {
	m.token = nil
}

// SetProxyURI sets the "proxy_uri" field.
func (m *WorkspaceMutation) SetProxyURI(s string) {
	m.proxy_uri = &s
}

// ProxyURI returns the value of the "proxy_uri" field in the mutation.
func (m *WorkspaceMutation) ProxyURI() (r string, exists bool) {
	v := m.proxy_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldProxyURI returns the old "proxy_uri" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldProxyURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProxyURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProxyURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProxyURI: %w", err)
	}
	return oldValue.ProxyURI, nil
}

// ResetProxyURI resets all changes to the "proxy_uri" field.
func (m *WorkspaceMutation) ResetProxyURI() {
	m.proxy_uri = nil
}

// SetProxyUser sets the "proxy_user" field.
func (m *WorkspaceMutation) SetProxyUser(s string) {
	m.proxy_user = &s
}

// ProxyUser returns the value of the "proxy_user" field in the mutation.
func (m *WorkspaceMutation) ProxyUser() (r string, exists bool) {
	v := m.proxy_user
	if v == nil {
		return
	}
	return *v, true
}

// OldProxyUser returns the old "proxy_user" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldProxyUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProxyUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProxyUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProxyUser: %w", err)
	}
	return oldValue.ProxyUser, nil
}

// ResetProxyUser resets all changes to the "proxy_user" field.
func (m *WorkspaceMutation) ResetProxyUser() {
	m.proxy_user = nil
}

// SetProxyPass sets the "proxy_pass" field.
func (m *WorkspaceMutation) SetProxyPass(s string) {
	m.proxy_pass = &s
}

// ProxyPass returns the value of the "proxy_pass" field in the mutation.
func (m *WorkspaceMutation) ProxyPass() (r string, exists bool) {
	v := m.proxy_pass
	if v == nil {
		return
	}
	return *v, true
}

// OldProxyPass returns the old "proxy_pass" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldProxyPass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProxyPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProxyPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProxyPass: %w", err)
	}
	return oldValue.ProxyPass, nil
}

// ResetProxyPass resets all changes to the "proxy_pass" field.
func (m *WorkspaceMutation) ResetProxyPass() {
	m.proxy_pass = nil
}

// SetIsDefault sets the "is_default" field.
func (m *WorkspaceMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *WorkspaceMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *WorkspaceMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetStatus sets the "status" field.
func (m *WorkspaceMutation) SetStatus(w workspace.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkspaceMutation) Status() (r workspace.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldStatus(ctx context.Context) (v workspace.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkspaceMutation) ResetStatus() {
	m.status = nil
}

// SetStatusMessage sets the "status_message" field.
func (m *WorkspaceMutation) SetStatusMessage(s string) {
	m.status_message = &s
}

// StatusMessage returns the value of the "status_message" field in the mutation.
func (m *WorkspaceMutation) StatusMessage() (r string, exists bool) {
	v := m.status_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusMessage returns the old "status_message" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldStatusMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusMessage: %w", err)
	}
	return oldValue.StatusMessage, nil
}

// ClearStatusMessage clears the value of the "status_message" field.
func (m *WorkspaceMutation) ClearStatusMessage() {
	m.status_message = nil
	m.clearedFields[workspace.FieldStatusMessage] = struct{}{}
}

// StatusMessageCleared returns if the "status_message" field was cleared in this mutation.
func (m *WorkspaceMutation) StatusMessageCleared() bool {
	_, ok := m.clearedFields[workspace.FieldStatusMessage]
	return ok
}

// ResetStatusMessage resets all changes to the "status_message" field.
func (m *WorkspaceMutation) ResetStatusMessage() {
	m.status_message = nil
	delete(m.clearedFields, workspace.FieldStatusMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAccountIDs adds the "accounts" edge to the Account entity by ids.
func (m *WorkspaceMutation) AddAccountIDs(ids ...int) {
	if m.accounts == nil {
		m.accounts = make(map[int]struct{})
	}
	for i := range ids {
		m.accounts[ids[i]] = struct{}{}
	}
}

// ClearAccounts clears the "accounts" edge to the Account entity.
func (m *WorkspaceMutation) ClearAccounts() {
	m.clearedaccounts = true
}

// AccountsCleared reports if the "accounts" edge to the Account entity was cleared.
func (m *WorkspaceMutation) AccountsCleared() bool {
	return m.clearedaccounts
}

// RemoveAccountIDs removes the "accounts" edge to the Account entity by IDs.
func (m *WorkspaceMutation) RemoveAccountIDs(ids ...int) {
	if m.removedaccounts == nil {
		m.removedaccounts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.accounts, ids[i])
		m.removedaccounts[ids[i]] = struct{}{}
	}
}

// RemovedAccounts returns the removed IDs of the "accounts" edge to the Account entity.
func (m *WorkspaceMutation) RemovedAccountsIDs() (ids []int) {
	for id := range m.removedaccounts {
		ids = append(ids, id)
	}
	return
}

// AccountsIDs returns the "accounts" edge IDs in the mutation.
func (m *WorkspaceMutation) AccountsIDs() (ids []int) {
	for id := range m.accounts {
		ids = append(ids, id)
	}
	return
}

// ResetAccounts resets all changes to the "accounts" edge.
func (m *WorkspaceMutation) ResetAccounts() {
	m.accounts = nil
	m.clearedaccounts = false
	m.removedaccounts = nil
}

// AddLotMappingIDs adds the "lot_mappings" edge to the LotMapping entity by ids.
func (m *WorkspaceMutation) AddLotMappingIDs(ids ...int) {
	if m.lot_mappings == nil {
		m.lot_mappings = make(map[int]struct{})
	}
	for i := range ids {
		m.lot_mappings[ids[i]] = struct{}{}
	}
}

// ClearLotMappings clears the "lot_mappings" edge to the LotMapping entity.
func (m *WorkspaceMutation) ClearLotMappings() {
	m.clearedlot_mappings = true
}

// LotMappingsCleared reports if the "lot_mappings" edge to the LotMapping entity was cleared.
func (m *WorkspaceMutation) LotMappingsCleared() bool {
	return m.clearedlot_mappings
}

// RemoveLotMappingIDs removes the "lot_mappings" edge to the LotMapping entity by IDs.
func (m *WorkspaceMutation) RemoveLotMappingIDs(ids ...int) {
	if m.removedlot_mappings == nil {
		m.removedlot_mappings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.lot_mappings, ids[i])
		m.removedlot_mappings[ids[i]] = struct{}{}
	}
}

// RemovedLotMappings returns the removed IDs of the "lot_mappings" edge to the LotMapping entity.
func (m *WorkspaceMutation) RemovedLotMappingsIDs() (ids []int) {
	for id := range m.removedlot_mappings {
		ids = append(ids, id)
	}
	return
}

// LotMappingsIDs returns the "lot_mappings" edge IDs in the mutation.
func (m *WorkspaceMutation) LotMappingsIDs() (ids []int) {
	for id := range m.lot_mappings {
		ids = append(ids, id)
	}
	return
}

// ResetLotMappings resets all changes to the "lot_mappings" edge.
func (m *WorkspaceMutation) ResetLotMappings() {
	m.lot_mappings = nil
	m.clearedlot_mappings = false
	m.removedlot_mappings = nil
}

// AddOrderEventIDs adds the "order_events" edge to the OrderEvent entity by ids.
func (m *WorkspaceMutation) AddOrderEventIDs(ids ...int) {
	if m.order_events == nil {
		m.order_events = make(map[int]struct{})
	}
	for i := range ids {
		m.order_events[ids[i]] = struct{}{}
	}
}

// ClearOrderEvents clears the "order_events" edge to the OrderEvent entity.
func (m *WorkspaceMutation) ClearOrderEvents() {
	m.clearedorder_events = true
}

// OrderEventsCleared reports if the "order_events" edge to the OrderEvent entity was cleared.
func (m *WorkspaceMutation) OrderEventsCleared() bool {
	return m.clearedorder_events
}

// RemoveOrderEventIDs removes the "order_events" edge to the OrderEvent entity by IDs.
func (m *WorkspaceMutation) RemoveOrderEventIDs(ids ...int) {
	if m.removedorder_events == nil {
		m.removedorder_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.order_events, ids[i])
		m.removedorder_events[ids[i]] = struct{}{}
	}
}

// RemovedOrderEvents returns the removed IDs of the "order_events" edge to the OrderEvent entity.
func (m *WorkspaceMutation) RemovedOrderEventsIDs() (ids []int) {
	for id := range m.removedorder_events {
		ids = append(ids, id)
	}
	return
}

// OrderEventsIDs returns the "order_events" edge IDs in the mutation.
func (m *WorkspaceMutation) OrderEventsIDs() (ids []int) {
	for id := range m.order_events {
		ids = append(ids, id)
	}
	return
}

// ResetOrderEvents resets all changes to the "order_events" edge.
func (m *WorkspaceMutation) ResetOrderEvents() {
	m.order_events = nil
	m.clearedorder_events = false
	m.removedorder_events = nil
}

// AddBlacklistEntryIDs adds the "blacklist_entries" edge to the BlacklistEntry entity by ids.
func (m *WorkspaceMutation) AddBlacklistEntryIDs(ids ...int) {
	if m.blacklist_entries == nil {
		m.blacklist_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.blacklist_entries[ids[i]] = struct{}{}
	}
}

// ClearBlacklistEntries clears the "blacklist_entries" edge to the BlacklistEntry entity.
func (m *WorkspaceMutation) ClearBlacklistEntries() {
	m.clearedblacklist_entries = true
}

// BlacklistEntriesCleared reports if the "blacklist_entries" edge to the BlacklistEntry entity was cleared.
func (m *WorkspaceMutation) BlacklistEntriesCleared() bool {
	return m.clearedblacklist_entries
}

// RemoveBlacklistEntryIDs removes the "blacklist_entries" edge to the BlacklistEntry entity by IDs.
func (m *WorkspaceMutation) RemoveBlacklistEntryIDs(ids ...int) {
	if m.removedblacklist_entries == nil {
		m.removedblacklist_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.blacklist_entries, ids[i])
		m.removedblacklist_entries[ids[i]] = struct{}{}
	}
}

// RemovedBlacklistEntries returns the removed IDs of the "blacklist_entries" edge to the BlacklistEntry entity.
func (m *WorkspaceMutation) RemovedBlacklistEntriesIDs() (ids []int) {
	for id := range m.removedblacklist_entries {
		ids = append(ids, id)
	}
	return
}

// BlacklistEntriesIDs returns the "blacklist_entries" edge IDs in the mutation.
func (m *WorkspaceMutation) BlacklistEntriesIDs() (ids []int) {
	for id := range m.blacklist_entries {
		ids = append(ids, id)
	}
	return
}

// ResetBlacklistEntries resets all changes to the "blacklist_entries" edge.
func (m *WorkspaceMutation) ResetBlacklistEntries() {
	m.blacklist_entries = nil
	m.clearedblacklist_entries = false
	m.removedblacklist_entries = nil
}

// AddBonusWalletIDs adds the "bonus_wallets" edge to the BonusWallet entity by ids.
func (m *WorkspaceMutation) AddBonusWalletIDs(ids ...int) {
	if m.bonus_wallets == nil {
		m.bonus_wallets = make(map[int]struct{})
	}
	for i := range ids {
		m.bonus_wallets[ids[i]] = struct{}{}
	}
}

// ClearBonusWallets clears the "bonus_wallets" edge to the BonusWallet entity.
func (m *WorkspaceMutation) ClearBonusWallets() {
	m.clearedbonus_wallets = true
}

// BonusWalletsCleared reports if the "bonus_wallets" edge to the BonusWallet entity was cleared.
func (m *WorkspaceMutation) BonusWalletsCleared() bool {
	return m.clearedbonus_wallets
}

// RemoveBonusWalletIDs removes the "bonus_wallets" edge to the BonusWallet entity by IDs.
func (m *WorkspaceMutation) RemoveBonusWalletIDs(ids ...int) {
	if m.removedbonus_wallets == nil {
		m.removedbonus_wallets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.bonus_wallets, ids[i])
		m.removedbonus_wallets[ids[i]] = struct{}{}
	}
}

// RemovedBonusWallets returns the removed IDs of the "bonus_wallets" edge to the BonusWallet entity.
func (m *WorkspaceMutation) RemovedBonusWalletsIDs() (ids []int) {
	for id := range m.removedbonus_wallets {
		ids = append(ids, id)
	}
	return
}

// BonusWalletsIDs returns the "bonus_wallets" edge IDs in the mutation.
func (m *WorkspaceMutation) BonusWalletsIDs() (ids []int) {
	for id := range m.bonus_wallets {
		ids = append(ids, id)
	}
	return
}

// ResetBonusWallets resets all changes to the "bonus_wallets" edge.
func (m *WorkspaceMutation) ResetBonusWallets() {
	m.bonus_wallets = nil
	m.clearedbonus_wallets = false
	m.removedbonus_wallets = nil
}

// AddChatSnapshotIDs adds the "chat_snapshots" edge to the ChatSnapshot entity by ids.
func (m *WorkspaceMutation) AddChatSnapshotIDs(ids ...int) {
	if m.chat_snapshots == nil {
		m.chat_snapshots = make(map[int]struct{})
	}
	for i := range ids {
		m.chat_snapshots[ids[i]] = struct{}{}
	}
}

// ClearChatSnapshots clears the "chat_snapshots" edge to the ChatSnapshot entity.
func (m *WorkspaceMutation) ClearChatSnapshots() {
	m.clearedchat_snapshots = true
}

// ChatSnapshotsCleared reports if the "chat_snapshots" edge to the ChatSnapshot entity was cleared.
func (m *WorkspaceMutation) ChatSnapshotsCleared() bool {
	return m.clearedchat_snapshots
}

// RemoveChatSnapshotIDs removes the "chat_snapshots" edge to the ChatSnapshot entity by IDs.
func (m *WorkspaceMutation) RemoveChatSnapshotIDs(ids ...int) {
	if m.removedchat_snapshots == nil {
		m.removedchat_snapshots = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chat_snapshots, ids[i])
		m.removedchat_snapshots[ids[i]] = struct{}{}
	}
}

// RemovedChatSnapshots returns the removed IDs of the "chat_snapshots" edge to the ChatSnapshot entity.
func (m *WorkspaceMutation) RemovedChatSnapshotsIDs() (ids []int) {
	for id := range m.removedchat_snapshots {
		ids = append(ids, id)
	}
	return
}

// ChatSnapshotsIDs returns the "chat_snapshots" edge IDs in the mutation.
func (m *WorkspaceMutation) ChatSnapshotsIDs() (ids []int) {
	for id := range m.chat_snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetChatSnapshots resets all changes to the "chat_snapshots" edge.
func (m *WorkspaceMutation) ResetChatSnapshots() {
	m.chat_snapshots = nil
	m.clearedchat_snapshots = false
	m.removedchat_snapshots = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *WorkspaceMutation) AddChatMessageIDs(ids ...int) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[int]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *WorkspaceMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *WorkspaceMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *WorkspaceMutation) RemoveChatMessageIDs(ids ...int) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *WorkspaceMutation) RemovedChatMessagesIDs() (ids []int) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *WorkspaceMutation) ChatMessagesIDs() (ids []int) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *WorkspaceMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// AddChatOutboxIDs adds the "chat_outbox" edge to the ChatOutbox entity by ids.
func (m *WorkspaceMutation) AddChatOutboxIDs(ids ...int) {
	if m.chat_outbox == nil {
		m.chat_outbox = make(map[int]struct{})
	}
	for i := range ids {
		m.chat_outbox[ids[i]] = struct{}{}
	}
}

// ClearChatOutbox clears the "chat_outbox" edge to the ChatOutbox entity.
func (m *WorkspaceMutation) ClearChatOutbox() {
	m.clearedchat_outbox = true
}

// ChatOutboxCleared reports if the "chat_outbox" edge to the ChatOutbox entity was cleared.
func (m *WorkspaceMutation) ChatOutboxCleared() bool {
	return m.clearedchat_outbox
}

// RemoveChatOutboxIDs removes the "chat_outbox" edge to the ChatOutbox entity by IDs.
func (m *WorkspaceMutation) RemoveChatOutboxIDs(ids ...int) {
	if m.removedchat_outbox == nil {
		m.removedchat_outbox = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chat_outbox, ids[i])
		m.removedchat_outbox[ids[i]] = struct{}{}
	}
}

// RemovedChatOutbox returns the removed IDs of the "chat_outbox" edge to the ChatOutbox entity.
func (m *WorkspaceMutation) RemovedChatOutboxIDs() (ids []int) {
	for id := range m.removedchat_outbox {
		ids = append(ids, id)
	}
	return
}

// ChatOutboxIDs returns the "chat_outbox" edge IDs in the mutation.
func (m *WorkspaceMutation) ChatOutboxIDs() (ids []int) {
	for id := range m.chat_outbox {
		ids = append(ids, id)
	}
	return
}

// ResetChatOutbox resets all changes to the "chat_outbox" edge.
func (m *WorkspaceMutation) ResetChatOutbox() {
	m.chat_outbox = nil
	m.clearedchat_outbox = false
	m.removedchat_outbox = nil
}

// AddAdminCallIDs adds the "admin_calls" edge to the AdminCall entity by ids.
func (m *WorkspaceMutation) AddAdminCallIDs(ids ...int) {
	if m.admin_calls == nil {
		m.admin_calls = make(map[int]struct{})
	}
	for i := range ids {
		m.admin_calls[ids[i]] = struct{}{}
	}
}

// ClearAdminCalls clears the "admin_calls" edge to the AdminCall entity.
func (m *WorkspaceMutation) ClearAdminCalls() {
	m.clearedadmin_calls = true
}

// AdminCallsCleared reports if the "admin_calls" edge to the AdminCall entity was cleared.
func (m *WorkspaceMutation) AdminCallsCleared() bool {
	return m.clearedadmin_calls
}

// RemoveAdminCallIDs removes the "admin_calls" edge to the AdminCall entity by IDs.
func (m *WorkspaceMutation) RemoveAdminCallIDs(ids ...int) {
	if m.removedadmin_calls == nil {
		m.removedadmin_calls = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.admin_calls, ids[i])
		m.removedadmin_calls[ids[i]] = struct{}{}
	}
}

// RemovedAdminCalls returns the removed IDs of the "admin_calls" edge to the AdminCall entity.
func (m *WorkspaceMutation) RemovedAdminCallsIDs() (ids []int) {
	for id := range m.removedadmin_calls {
		ids = append(ids, id)
	}
	return
}

// AdminCallsIDs returns the "admin_calls" edge IDs in the mutation.
func (m *WorkspaceMutation) AdminCallsIDs() (ids []int) {
	for id := range m.admin_calls {
		ids = append(ids, id)
	}
	return
}

// ResetAdminCalls resets all changes to the "admin_calls" edge.
func (m *WorkspaceMutation) ResetAdminCalls() {
	m.admin_calls = nil
	m.clearedadmin_calls = false
	m.removedadmin_calls = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, workspace.FieldUserID)
	}
	if m.label != nil {
		fields = append(fields, workspace.FieldLabel)
	}
	if m.token != nil {
		fields = append(fields, workspace.FieldToken)
	}
	if m.proxy_uri != nil {
		fields = append(fields, workspace.FieldProxyURI)
	}
	if m.proxy_user != nil {
		fields = append(fields, workspace.FieldProxyUser)
	}
	if m.proxy_pass != nil {
		fields = append(fields, workspace.FieldProxyPass)
	}
	if m.is_default != nil {
		fields = append(fields, workspace.FieldIsDefault)
	}
	if m.status != nil {
		fields = append(fields, workspace.FieldStatus)
	}
	if m.status_message != nil {
		fields = append(fields, workspace.FieldStatusMessage)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldUserID:
		return m.UserID()
	case workspace.FieldLabel:
		return m.Label()
	case workspace.FieldToken:
		return m.Token()
	case workspace.FieldProxyURI:
		return m.ProxyURI()
	case workspace.FieldProxyUser:
		return m.ProxyUser()
	case workspace.FieldProxyPass:
		return m.ProxyPass()
	case workspace.FieldIsDefault:
		return m.IsDefault()
	case workspace.FieldStatus:
		return m.Status()
	case workspace.FieldStatusMessage:
		return m.StatusMessage()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	case workspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldUserID:
		return m.OldUserID(ctx)
	case workspace.FieldLabel:
		return m.OldLabel(ctx)
	case workspace.FieldToken:
		return m.OldToken(ctx)
	case workspace.FieldProxyURI:
		return m.OldProxyURI(ctx)
	case workspace.FieldProxyUser:
		return m.OldProxyUser(ctx)
	case workspace.FieldProxyPass:
		return m.OldProxyPass(ctx)
	case workspace.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case workspace.FieldStatus:
		return m.OldStatus(ctx)
	case workspace.FieldStatusMessage:
		return m.OldStatusMessage(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workspace.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case workspace.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case workspace.FieldProxyURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProxyURI(v)
		return nil
	case workspace.FieldProxyUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProxyUser(v)
		return nil
	case workspace.FieldProxyPass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProxyPass(v)
		return nil
	case workspace.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case workspace.FieldStatus:
		v, ok := value.(workspace.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workspace.FieldStatusMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusMessage(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, workspace.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspace.FieldStatusMessage) {
		fields = append(fields, workspace.FieldStatusMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	switch name {
	case workspace.FieldStatusMessage:
		m.ClearStatusMessage()
		return nil
	}
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldUserID:
		m.ResetUserID()
		return nil
	case workspace.FieldLabel:
		m.ResetLabel()
		return nil
	case workspace.FieldToken:
		m.ResetToken()
		return nil
	case workspace.FieldProxyURI:
		m.ResetProxyURI()
		return nil
	case workspace.FieldProxyUser:
		m.ResetProxyUser()
		return nil
	case workspace.FieldProxyPass:
		m.ResetProxyPass()
		return nil
	case workspace.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case workspace.FieldStatus:
		m.ResetStatus()
		return nil
	case workspace.FieldStatusMessage:
		m.ResetStatusMessage()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.accounts != nil {
		edges = append(edges, workspace.EdgeAccounts)
	}
	if m.lot_mappings != nil {
		edges = append(edges, workspace.EdgeLotMappings)
	}
	if m.order_events != nil {
		edges = append(edges, workspace.EdgeOrderEvents)
	}
	if m.blacklist_entries != nil {
		edges = append(edges, workspace.EdgeBlacklistEntries)
	}
	if m.bonus_wallets != nil {
		edges = append(edges, workspace.EdgeBonusWallets)
	}
	if m.chat_snapshots != nil {
		edges = append(edges, workspace.EdgeChatSnapshots)
	}
	if m.chat_messages != nil {
		edges = append(edges, workspace.EdgeChatMessages)
	}
	if m.chat_outbox != nil {
		edges = append(edges, workspace.EdgeChatOutbox)
	}
	if m.admin_calls != nil {
		edges = append(edges, workspace.EdgeAdminCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.accounts))
		for id := range m.accounts {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeLotMappings:
		ids := make([]ent.Value, 0, len(m.lot_mappings))
		for id := range m.lot_mappings {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeOrderEvents:
		ids := make([]ent.Value, 0, len(m.order_events))
		for id := range m.order_events {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeBlacklistEntries:
		ids := make([]ent.Value, 0, len(m.blacklist_entries))
		for id := range m.blacklist_entries {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeBonusWallets:
		ids := make([]ent.Value, 0, len(m.bonus_wallets))
		for id := range m.bonus_wallets {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatSnapshots:
		ids := make([]ent.Value, 0, len(m.chat_snapshots))
		for id := range m.chat_snapshots {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatOutbox:
		ids := make([]ent.Value, 0, len(m.chat_outbox))
		for id := range m.chat_outbox {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAdminCalls:
		ids := make([]ent.Value, 0, len(m.admin_calls))
		for id := range m.admin_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedaccounts != nil {
		edges = append(edges, workspace.EdgeAccounts)
	}
	if m.removedlot_mappings != nil {
		edges = append(edges, workspace.EdgeLotMappings)
	}
	if m.removedorder_events != nil {
		edges = append(edges, workspace.EdgeOrderEvents)
	}
	if m.removedblacklist_entries != nil {
		edges = append(edges, workspace.EdgeBlacklistEntries)
	}
	if m.removedbonus_wallets != nil {
		edges = append(edges, workspace.EdgeBonusWallets)
	}
	if m.removedchat_snapshots != nil {
		edges = append(edges, workspace.EdgeChatSnapshots)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, workspace.EdgeChatMessages)
	}
	if m.removedchat_outbox != nil {
		edges = append(edges, workspace.EdgeChatOutbox)
	}
	if m.removedadmin_calls != nil {
		edges = append(edges, workspace.EdgeAdminCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeAccounts:
		ids := make([]ent.Value, 0, len(m.removedaccounts))
		for id := range m.removedaccounts {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeLotMappings:
		ids := make([]ent.Value, 0, len(m.removedlot_mappings))
		for id := range m.removedlot_mappings {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeOrderEvents:
		ids := make([]ent.Value, 0, len(m.removedorder_events))
		for id := range m.removedorder_events {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeBlacklistEntries:
		ids := make([]ent.Value, 0, len(m.removedblacklist_entries))
		for id := range m.removedblacklist_entries {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeBonusWallets:
		ids := make([]ent.Value, 0, len(m.removedbonus_wallets))
		for id := range m.removedbonus_wallets {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatSnapshots:
		ids := make([]ent.Value, 0, len(m.removedchat_snapshots))
		for id := range m.removedchat_snapshots {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeChatOutbox:
		ids := make([]ent.Value, 0, len(m.removedchat_outbox))
		for id := range m.removedchat_outbox {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAdminCalls:
		ids := make([]ent.Value, 0, len(m.removedadmin_calls))
		for id := range m.removedadmin_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedaccounts {
		edges = append(edges, workspace.EdgeAccounts)
	}
	if m.clearedlot_mappings {
		edges = append(edges, workspace.EdgeLotMappings)
	}
	if m.clearedorder_events {
		edges = append(edges, workspace.EdgeOrderEvents)
	}
	if m.clearedblacklist_entries {
		edges = append(edges, workspace.EdgeBlacklistEntries)
	}
	if m.clearedbonus_wallets {
		edges = append(edges, workspace.EdgeBonusWallets)
	}
	if m.clearedchat_snapshots {
		edges = append(edges, workspace.EdgeChatSnapshots)
	}
	if m.clearedchat_messages {
		edges = append(edges, workspace.EdgeChatMessages)
	}
	if m.clearedchat_outbox {
		edges = append(edges, workspace.EdgeChatOutbox)
	}
	if m.clearedadmin_calls {
		edges = append(edges, workspace.EdgeAdminCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeAccounts:
		return m.clearedaccounts
	case workspace.EdgeLotMappings:
		return m.clearedlot_mappings
	case workspace.EdgeOrderEvents:
		return m.clearedorder_events
	case workspace.EdgeBlacklistEntries:
		return m.clearedblacklist_entries
	case workspace.EdgeBonusWallets:
		return m.clearedbonus_wallets
	case workspace.EdgeChatSnapshots:
		return m.clearedchat_snapshots
	case workspace.EdgeChatMessages:
		return m.clearedchat_messages
	case workspace.EdgeChatOutbox:
		return m.clearedchat_outbox
	case workspace.EdgeAdminCalls:
		return m.clearedadmin_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeAccounts:
		m.ResetAccounts()
		return nil
	case workspace.EdgeLotMappings:
		m.ResetLotMappings()
		return nil
	case workspace.EdgeOrderEvents:
		m.ResetOrderEvents()
		return nil
	case workspace.EdgeBlacklistEntries:
		m.ResetBlacklistEntries()
		return nil
	case workspace.EdgeBonusWallets:
		m.ResetBonusWallets()
		return nil
	case workspace.EdgeChatSnapshots:
		m.ResetChatSnapshots()
		return nil
	case workspace.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	case workspace.EdgeChatOutbox:
		m.ResetChatOutbox()
		return nil
	case workspace.EdgeAdminCalls:
		m.ResetAdminCalls()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
