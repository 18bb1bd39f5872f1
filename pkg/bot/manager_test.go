package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
)

func (f *botFixture) createWorkspace(t *testing.T, userID int, label, token, proxy string) *ent.Workspace {
	t.Helper()
	ws, err := f.deps.Workspaces.Create(context.Background(), models.CreateWorkspaceRequest{
		UserID:   userID,
		Label:    label,
		Token:    token,
		ProxyURI: proxy,
	})
	require.NoError(t, err)
	return ws
}

func TestManagerRequiresCredentials(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	withProxy := f.createWorkspace(t, 1, "proxied", "second-key", "socks5://127.0.0.1:1080")

	mgr := NewManager(f.deps)
	t.Cleanup(mgr.Stop)
	mgr.StartAll(ctx)

	assert.True(t, mgr.Running(withProxy.ID))
	// The fixture workspace carries a token but no proxy.
	assert.False(t, mgr.Running(f.ws.ID), "workspace without a proxy must stay down")
}

func TestManagerAliasesSameUserSharedToken(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	first := f.createWorkspace(t, 1, "first", "shared-key", "socks5://127.0.0.1:1080")
	second := f.createWorkspace(t, 1, "second", "shared-key", "socks5://127.0.0.1:1081")

	mgr := NewManager(f.deps)
	t.Cleanup(mgr.Stop)
	mgr.StartAll(ctx)

	assert.True(t, mgr.Running(first.ID))
	assert.False(t, mgr.Running(second.ID), "one token backs one session")
}

func TestManagerSkipsSharedTokenAcrossUsers(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()

	holder := f.createWorkspace(t, 1, "mine", "shared-key", "socks5://127.0.0.1:1080")
	intruder := f.createWorkspace(t, 2, "theirs", "shared-key", "socks5://127.0.0.1:1081")

	mgr := NewManager(f.deps)
	t.Cleanup(mgr.Stop)
	mgr.StartAll(ctx)

	assert.True(t, mgr.Running(holder.ID))
	assert.False(t, mgr.Running(intruder.ID), "a token claimed by another user must not start")
}
