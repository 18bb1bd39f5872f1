package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	testdb "github.com/megafartCc/FunpayAutomationV2-sub000/test/database"
)

func newAccountFixture(t *testing.T) (*services.AccountService, *ent.Workspace) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("test-passphrase")
	require.NoError(t, err)

	wsSvc := services.NewWorkspaceService(client.Client, cipher)
	ws, err := wsSvc.Create(context.Background(), models.CreateWorkspaceRequest{
		UserID: 1,
		Label:  "main",
		Token:  "golden-key",
	})
	require.NoError(t, err)

	return services.NewAccountService(client.Client, cipher), ws
}

func createAccount(t *testing.T, svc *services.AccountService, ws *ent.Workspace, name string, mmr int) *ent.Account {
	t.Helper()
	acc, err := svc.Create(context.Background(), models.CreateAccountRequest{
		UserID:      ws.UserID,
		WorkspaceID: ws.ID,
		DisplayName: name,
		Login:       name + "_login",
		Password:    "p@ss",
		MMR:         mmr,
	})
	require.NoError(t, err)
	return acc
}

func TestAccountCreateEncryptsSecrets(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)

	// Stored value must not be plaintext.
	assert.NotEqual(t, "p@ss", acc.Password)

	login, password, _, err := svc.Credentials(acc)
	require.NoError(t, err)
	assert.Equal(t, "smurf1_login", login)
	assert.Equal(t, "p@ss", password)
}

func TestAssignAndRelease(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)
	ctx := context.Background()

	acc, err := svc.Assign(ctx, acc.ID, "buyer1", "ORDER123", 120)
	require.NoError(t, err)
	require.NotNil(t, acc.Owner)
	assert.Equal(t, "buyer1", *acc.Owner)
	assert.Equal(t, 120, acc.RentalDurationMinutes)
	assert.Nil(t, acc.RentalStart, "clock must not start on assignment")

	// A second buyer cannot take the same account.
	_, err = svc.Assign(ctx, acc.ID, "buyer2", "ORDER456", 60)
	assert.ErrorIs(t, err, services.ErrNoFreeAccount)

	// Re-assign to the same buyer (extension flow) is allowed.
	_, err = svc.Assign(ctx, acc.ID, "buyer1", "ORDER789", 0)
	require.NoError(t, err)

	acc, err = svc.Release(ctx, acc.ID)
	require.NoError(t, err)
	assert.Nil(t, acc.Owner)
	assert.Nil(t, acc.RentalStart)
	assert.Nil(t, acc.RentalOrderID)
}

func TestStartRentalIsIdempotent(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)
	ctx := context.Background()

	_, err := svc.Assign(ctx, acc.ID, "buyer1", "ORDER123", 60)
	require.NoError(t, err)

	acc, started, err := svc.StartRental(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, started)
	require.NotNil(t, acc.RentalStart)
	first := *acc.RentalStart

	acc, started, err = svc.StartRental(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, started)
	assert.WithinDuration(t, first, *acc.RentalStart, time.Second)
}

func TestPauseResumeRebasesClock(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)
	ctx := context.Background()

	_, err := svc.Assign(ctx, acc.ID, "buyer1", "ORDER123", 60)
	require.NoError(t, err)
	acc, _, err = svc.StartRental(ctx, acc.ID)
	require.NoError(t, err)
	startBefore := *acc.RentalStart

	acc, err = svc.Pause(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, acc.RentalFrozen)
	require.NotNil(t, acc.RentalFrozenAt)

	time.Sleep(1100 * time.Millisecond)

	acc, err = svc.Resume(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, acc.RentalFrozen)
	assert.Nil(t, acc.RentalFrozenAt)
	assert.True(t, acc.RentalStart.After(startBefore),
		"rental_start must move forward by the paused span")

	// Resuming an unfrozen rental is a no-op.
	again, err := svc.Resume(ctx, acc.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, *acc.RentalStart, *again.RentalStart, time.Second)
}

func TestPauseRequiresRunningRental(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)

	_, err := svc.Pause(context.Background(), acc.ID)
	assert.True(t, services.IsValidationError(err))
}

func TestExtend(t *testing.T) {
	svc, ws := newAccountFixture(t)
	acc := createAccount(t, svc, ws, "smurf1", 3200)
	ctx := context.Background()

	acc, err := svc.Extend(ctx, acc.ID, 90)
	require.NoError(t, err)
	assert.Equal(t, 150, acc.RentalDurationMinutes)

	_, err = svc.Extend(ctx, acc.ID, 0)
	assert.True(t, services.IsValidationError(err))
}

func TestFindReplacement(t *testing.T) {
	svc, ws := newAccountFixture(t)
	ctx := context.Background()

	busy := createAccount(t, svc, ws, "busy", 3000)
	far := createAccount(t, svc, ws, "far", 5000)
	_ = far
	near := createAccount(t, svc, ws, "near", 3300)
	closest := createAccount(t, svc, ws, "closest", 3100)

	got, err := svc.FindReplacement(ctx, ws.ID, busy.ID, 3000)
	require.NoError(t, err)
	assert.Equal(t, closest.ID, got.ID, "closest MMR inside the window wins")

	// Take the closest; the next call falls back to the remaining candidate.
	_, err = svc.Assign(ctx, closest.ID, "buyer1", "ORDER1", 0)
	require.NoError(t, err)
	got, err = svc.FindReplacement(ctx, ws.ID, busy.ID, 3000)
	require.NoError(t, err)
	assert.Equal(t, near.ID, got.ID)

	// Nothing inside ±1000 left.
	_, err = svc.Assign(ctx, near.ID, "buyer2", "ORDER2", 0)
	require.NoError(t, err)
	_, err = svc.FindReplacement(ctx, ws.ID, busy.ID, 3000)
	assert.ErrorIs(t, err, services.ErrNoFreeAccount)
}

func TestFindReplacementPrefersRegularOverLowPriority(t *testing.T) {
	svc, ws := newAccountFixture(t)
	ctx := context.Background()

	lowPri, err := svc.Create(ctx, models.CreateAccountRequest{
		UserID:      ws.UserID,
		WorkspaceID: ws.ID,
		DisplayName: "backup",
		Login:       "backup_login",
		Password:    "p@ss",
		MMR:         3000,
		LowPriority: true,
	})
	require.NoError(t, err)
	regular := createAccount(t, svc, ws, "regular", 3900)

	got, err := svc.FindReplacement(ctx, ws.ID, 0, 3000)
	require.NoError(t, err)
	assert.Equal(t, regular.ID, got.ID, "low-priority loses even at exact MMR")

	_, err = svc.Assign(ctx, regular.ID, "buyer1", "ORDER1", 0)
	require.NoError(t, err)
	got, err = svc.FindReplacement(ctx, ws.ID, 0, 3000)
	require.NoError(t, err)
	assert.Equal(t, lowPri.ID, got.ID)
}
