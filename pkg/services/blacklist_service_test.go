package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/blacklistlog"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	testdb "github.com/megafartCc/FunpayAutomationV2-sub000/test/database"
)

func newWorkspace(t *testing.T, client *ent.Client) *ent.Workspace {
	t.Helper()
	cipher, err := crypto.New("")
	require.NoError(t, err)
	ws, err := services.NewWorkspaceService(client, cipher).Create(context.Background(),
		models.CreateWorkspaceRequest{UserID: 1, Token: "tok"})
	require.NoError(t, err)
	return ws
}

func TestBlacklistLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ws := newWorkspace(t, client.Client)
	svc := services.NewBlacklistService(client.Client)
	ctx := context.Background()

	_, err := svc.Add(ctx, ws.ID, ws.UserID, "BadBuyer", "chargeback")
	require.NoError(t, err)

	// Matching is case-insensitive.
	blocked, err := svc.IsBlacklisted(ctx, ws.ID, ws.UserID, "badbuyer")
	require.NoError(t, err)
	assert.True(t, blocked)
	blocked, err = svc.IsBlacklisted(ctx, ws.ID, ws.UserID, "  BADBUYER ")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Re-adding is a no-op, not an error.
	_, err = svc.Add(ctx, ws.ID, ws.UserID, "BADBUYER", "again")
	require.NoError(t, err)
	entries, err := svc.List(ctx, ws.ID, ws.UserID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Remove(ctx, ws.ID, ws.UserID, "badbuyer"))
	blocked, err = svc.IsBlacklisted(ctx, ws.ID, ws.UserID, "badbuyer")
	require.NoError(t, err)
	assert.False(t, blocked)

	assert.ErrorIs(t, svc.Remove(ctx, ws.ID, ws.UserID, "badbuyer"), services.ErrNotFound)

	logs, err := svc.Logs(ctx, ws.UserID, "badbuyer", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, blacklistlog.ActionRemoved, logs[0].Action)
	assert.Equal(t, blacklistlog.ActionAdded, logs[1].Action)
}

func TestSumBlacklistCompWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ws := newWorkspace(t, client.Client)
	orders := services.NewOrderService(client.Client)
	ctx := context.Background()

	for i, minutes := range []int{60, 45} {
		_, err := orders.Record(ctx, services.OrderEventInput{
			WorkspaceID:   ws.ID,
			UserID:        ws.UserID,
			OrderID:       "ORD" + string(rune('A'+i)),
			Owner:         "Buyer1",
			RentalMinutes: minutes,
			Action:        orderevent.ActionBlacklistComp,
		})
		require.NoError(t, err)
	}

	total, err := orders.SumBlacklistComp(ctx, ws.ID, ws.UserID, "buyer1", 5*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 105, total)

	// Other buyers don't count.
	total, err = orders.SumBlacklistComp(ctx, ws.ID, ws.UserID, "someone", 5*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestBonusWallet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ws := newWorkspace(t, client.Client)
	svc := services.NewBonusService(client.Client)
	ctx := context.Background()

	balance, err := svc.Balance(ctx, ws.ID, ws.UserID, "buyer1")
	require.NoError(t, err)
	assert.Zero(t, balance)

	balance, err = svc.Adjust(ctx, ws.ID, ws.UserID, "Buyer1", 30, "review bonus", "ORD1")
	require.NoError(t, err)
	assert.Equal(t, 30, balance)

	// Debit below zero clamps.
	balance, err = svc.Adjust(ctx, ws.ID, ws.UserID, "buyer1", -45, "revert", "ORD1")
	require.NoError(t, err)
	assert.Zero(t, balance)

	history, err := svc.History(ctx, ws.ID, ws.UserID, "buyer1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, -45, history[0].DeltaMinutes)
	assert.Equal(t, 30, history[1].DeltaMinutes)
}

func TestOrderIdempotency(t *testing.T) {
	client := testdb.NewTestClient(t)
	ws := newWorkspace(t, client.Client)
	svc := services.NewOrderService(client.Client)
	ctx := context.Background()

	processed, err := svc.WasProcessed(ctx, ws.ID, "ORD1",
		orderevent.ActionIssued, orderevent.ActionExtended)
	require.NoError(t, err)
	assert.False(t, processed)

	_, err = svc.Record(ctx, services.OrderEventInput{
		WorkspaceID: ws.ID,
		UserID:      ws.UserID,
		OrderID:     "ORD1",
		Owner:       "buyer1",
		Action:      orderevent.ActionIssued,
	})
	require.NoError(t, err)

	processed, err = svc.WasProcessed(ctx, ws.ID, "ORD1",
		orderevent.ActionIssued, orderevent.ActionExtended)
	require.NoError(t, err)
	assert.True(t, processed)

	// Different action filter misses.
	processed, err = svc.WasProcessed(ctx, ws.ID, "ORD1", orderevent.ActionRefunded)
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestReviewRewardClaimOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	ws := newWorkspace(t, client.Client)
	svc := services.NewReviewService(client.Client)
	ctx := context.Background()

	_, err := svc.Claim(ctx, ws.ID, ws.UserID, "ORD1", "buyer1", 5, "отличный аккаунт")
	require.NoError(t, err)

	_, err = svc.Claim(ctx, ws.ID, ws.UserID, "ORD1", "buyer1", 5, "rewrite")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	rr, err := svc.Revoke(ctx, "ORD1")
	require.NoError(t, err)
	assert.NotNil(t, rr.RevokedAt)

	// Second revoke finds nothing to take back.
	_, err = svc.Revoke(ctx, "ORD1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Even after revocation the order stays claimed.
	_, err = svc.Claim(ctx, ws.ID, ws.UserID, "ORD1", "buyer1", 5, "again")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}
