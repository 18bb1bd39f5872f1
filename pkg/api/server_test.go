package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/api"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/config"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	testdb "github.com/megafartCc/FunpayAutomationV2-sub000/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router http.Handler
	deps   *api.Deps
	cookie *http.Cookie
	user   string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("test-passphrase")
	require.NoError(t, err)

	deps := &api.Deps{
		Cfg:           config.Load(),
		DB:            client,
		Auth:          services.NewAuthService(client.Client),
		Workspaces:    services.NewWorkspaceService(client.Client, cipher),
		Accounts:      services.NewAccountService(client.Client, cipher),
		Lots:          services.NewLotService(client.Client),
		Orders:        services.NewOrderService(client.Client),
		Blacklist:     services.NewBlacklistService(client.Client),
		Bonus:         services.NewBonusService(client.Client),
		Chats:         services.NewChatService(client.Client),
		Settings:      services.NewSettingsService(client.Client),
		Notifications: services.NewNotificationService(client.Client),
		Cache:         cache.NewMemory(),
	}

	f := &apiFixture{
		router: api.NewServer(deps).Router(),
		deps:   deps,
		user:   "dashuser",
	}

	resp := f.do(t, http.MethodPost, "/api/auth/register",
		gin.H{"username": f.user, "password": "hunter2hunter2"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = f.do(t, http.MethodPost, "/api/auth/login",
		gin.H{"username": f.user, "password": "hunter2hunter2"})
	require.Equal(t, http.StatusOK, resp.Code)
	for _, ck := range resp.Result().Cookies() {
		if ck.Name == api.SessionCookie {
			f.cookie = ck
		}
	}
	require.NotNil(t, f.cookie, "login must set the session cookie")
	return f
}

// do performs one request; the session cookie is attached when present.
func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) createWorkspace(t *testing.T) int {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/workspaces",
		gin.H{"label": "main", "token": "golden-key"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var out struct {
		Workspace struct {
			ID int `json:"id"`
		} `json:"workspace"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotZero(t, out.Workspace.ID)
	return out.Workspace.ID
}

func TestAuthRequired(t *testing.T) {
	f := newAPIFixture(t)
	f.cookie = nil
	resp := f.do(t, http.MethodGet, "/api/accounts", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthMe(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), f.user)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodPost, "/api/auth/login",
		gin.H{"username": f.user, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestWorkspaceAndAccountFlow(t *testing.T) {
	f := newAPIFixture(t)
	wsID := f.createWorkspace(t)

	resp := f.do(t, http.MethodPost, "/api/accounts", gin.H{
		"workspace_id": wsID,
		"display_name": "smurf1",
		"login":        "smurf1_login",
		"password":     "p@ss",
		"mmr":          3200,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created struct {
		Account struct {
			ID int `json:"id"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = f.do(t, http.MethodGet, "/api/accounts", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "smurf1")
	// Sensitive columns never serialize.
	assert.NotContains(t, resp.Body.String(), "p@ss")

	resp = f.do(t, http.MethodPost, "/api/accounts/"+itoa(created.Account.ID)+"/freeze",
		gin.H{"frozen": true})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"account_frozen":true`)
}

func TestAccountAssignAndRelease(t *testing.T) {
	f := newAPIFixture(t)
	wsID := f.createWorkspace(t)

	ctx := context.Background()
	acc, err := f.deps.Accounts.Create(ctx, models.CreateAccountRequest{
		UserID:      1,
		WorkspaceID: wsID,
		DisplayName: "smurf1",
		Login:       "smurf1_login",
		Password:    "p@ss",
	})
	require.NoError(t, err)

	resp := f.do(t, http.MethodPost, "/api/accounts/"+itoa(acc.ID)+"/assign",
		gin.H{"owner": "buyer1", "order_id": "ABCD1234", "duration_minutes": 120})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "buyer1")

	resp = f.do(t, http.MethodGet, "/api/rentals/active", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"remaining_minutes":120`)

	resp = f.do(t, http.MethodPost, "/api/accounts/"+itoa(acc.ID)+"/release", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = f.do(t, http.MethodGet, "/api/rentals/active", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "buyer1")
}

func TestChatSendQueuesOutbox(t *testing.T) {
	f := newAPIFixture(t)
	wsID := f.createWorkspace(t)

	resp := f.do(t, http.MethodPost, "/api/chats/chat-1/send",
		gin.H{"workspace_id": wsID, "text": "hello there"})
	require.Equal(t, http.StatusAccepted, resp.Code)

	rows, err := f.deps.Chats.ClaimPending(context.Background(), wsID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "hello there", rows[0].Text)
}

func TestChatListETag(t *testing.T) {
	f := newAPIFixture(t)
	wsID := f.createWorkspace(t)
	require.NoError(t, f.deps.Chats.UpsertSnapshot(context.Background(), wsID, 1, funpay.Chat{
		ID:              "chat-1",
		PeerName:        "buyer1",
		LastMessageText: "hi",
	}))

	resp := f.do(t, http.MethodGet, "/api/chats?workspace_id="+itoa(wsID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	etag := resp.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/chats?workspace_id="+itoa(wsID), nil)
	req.AddCookie(f.cookie)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestSettingsToggle(t *testing.T) {
	f := newAPIFixture(t)

	// Auto-ticket is on until the user stores a "false".
	resp := f.do(t, http.MethodGet, "/api/settings/auto-ticket", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"enabled":true`)

	resp = f.do(t, http.MethodPut, "/api/settings/auto-ticket", gin.H{"enabled": false})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = f.do(t, http.MethodGet, "/api/settings/auto-ticket", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"enabled":false`)
}

func TestBlacklistRoundTrip(t *testing.T) {
	f := newAPIFixture(t)
	wsID := f.createWorkspace(t)

	resp := f.do(t, http.MethodPost, "/api/blacklist",
		gin.H{"workspace_id": wsID, "owner": "Scammer", "reason": "chargeback"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = f.do(t, http.MethodGet, "/api/blacklist?workspace_id="+itoa(wsID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "scammer")

	resp = f.do(t, http.MethodPost, "/api/blacklist/clear?workspace_id="+itoa(wsID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"removed":1`)
}

func TestHealthIsPublic(t *testing.T) {
	f := newAPIFixture(t)
	f.cookie = nil
	resp := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "healthy")
}

func itoa(v int) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}
