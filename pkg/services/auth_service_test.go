package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	testdb "github.com/megafartCc/FunpayAutomationV2-sub000/test/database"
)

func TestRegisterAndLogin(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewAuthService(client.Client)
	ctx := context.Background()

	u, err := svc.Register(ctx, "seller", "longpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "longpassword", u.PasswordHash)

	_, err = svc.Register(ctx, "seller", "longpassword")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	sess, logged, err := svc.Login(ctx, "seller", "longpassword")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotEmpty(t, sess.ID)

	_, _, err = svc.Login(ctx, "seller", "wrong")
	assert.ErrorIs(t, err, services.ErrBadCredentials)
	_, _, err = svc.Login(ctx, "nobody", "longpassword")
	assert.ErrorIs(t, err, services.ErrBadCredentials)
}

func TestRegisterValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewAuthService(client.Client)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ab", "longpassword")
	assert.True(t, services.IsValidationError(err))

	_, err = svc.Register(ctx, "seller", "short")
	assert.True(t, services.IsValidationError(err))
}

func TestSessionValidateAndLogout(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewAuthService(client.Client)
	ctx := context.Background()

	u, err := svc.Register(ctx, "seller", "longpassword")
	require.NoError(t, err)
	sess, _, err := svc.Login(ctx, "seller", "longpassword")
	require.NoError(t, err)

	got, err := svc.Validate(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	_, err = svc.Validate(ctx, sess.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Validate(ctx, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSettings(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSettingsService(client.Client)
	ctx := context.Background()

	assert.Equal(t, "fallback", svc.Get(ctx, 1, "missing", "fallback"))
	assert.True(t, svc.GetBool(ctx, 1, services.SettingAutoRaise, true))

	require.NoError(t, svc.Set(ctx, 1, services.SettingAutoRaise, "false"))
	assert.False(t, svc.GetBool(ctx, 1, services.SettingAutoRaise, true))

	// Upsert overwrites.
	require.NoError(t, svc.Set(ctx, 1, services.SettingReviewBonusMin, "15"))
	require.NoError(t, svc.Set(ctx, 1, services.SettingReviewBonusMin, "30"))
	assert.Equal(t, 30, svc.GetInt(ctx, 1, services.SettingReviewBonusMin, 0))

	all, err := svc.All(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
