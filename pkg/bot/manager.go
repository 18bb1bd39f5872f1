package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
)

// Manager reconciles running bots against the workspace table: one bot
// per workspace, started, stopped and re-keyed as rows change.
type Manager struct {
	deps *Deps
	log  *slog.Logger

	mu          sync.Mutex
	bots        map[int]*managed
	failedUntil map[int]time.Time
}

// managed remembers the credential snapshot a bot was started with, for
// change detection during reconciliation.
type managed struct {
	bot       *Bot
	token     string
	proxyURI  string
	proxyUser string
	proxyPass string
}

// NewManager creates the bot supervisor.
func NewManager(deps *Deps) *Manager {
	return &Manager{
		deps:        deps,
		log:         slog.With("component", "bot-manager"),
		bots:        make(map[int]*managed),
		failedUntil: make(map[int]time.Time),
	}
}

// StartAll runs one immediate reconciliation; Run keeps it going.
func (m *Manager) StartAll(ctx context.Context) {
	m.reconcile(ctx)
}

// Run reconciles on the configured interval until the context ends.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.deps.Cfg.Bot.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reconcile(ctx)
			m.purgeSessions(ctx)
		}
	}
}

// Stop shuts every bot down and waits for their loops.
func (m *Manager) Stop() {
	m.mu.Lock()
	bots := make([]*Bot, 0, len(m.bots))
	for id, mg := range m.bots {
		bots = append(bots, mg.bot)
		delete(m.bots, id)
	}
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, b := range bots {
		wg.Add(1)
		go func(b *Bot) {
			defer wg.Done()
			b.Stop()
		}(b)
	}
	wg.Wait()
}

// ErrBotNotRunning is returned for operations that need a live
// marketplace session in a workspace without one.
var ErrBotNotRunning = errors.New("no running bot for workspace")

// SubmitTicket files a support ticket through the workspace's live
// marketplace session.
func (m *Manager) SubmitTicket(ctx context.Context, workspaceID int, topic, orderID, body string) error {
	m.mu.Lock()
	mg, ok := m.bots[workspaceID]
	m.mu.Unlock()
	if !ok {
		return ErrBotNotRunning
	}
	return mg.bot.SubmitTicket(ctx, topic, orderID, body)
}

// Running reports whether a workspace currently has a live bot.
func (m *Manager) Running(workspaceID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.bots[workspaceID]
	return ok
}

func (m *Manager) reconcile(ctx context.Context) {
	workspaces, err := m.deps.Workspaces.ListAll(ctx)
	if err != nil {
		m.log.Error("Workspace reconciliation failed", "error", err)
		return
	}

	// live holds the workspaces that get a bot this round. Rows without
	// both a token and a proxy never go live, and a marketplace token may
	// back at most one session: a second workspace of the same user with
	// the same token is an alias of the first, while the same token under
	// a different user is a conflict and stays down.
	live := make(map[int]struct{}, len(workspaces))
	holders := make(map[string]*ent.Workspace, len(workspaces))
	for _, ws := range workspaces {
		if ws.Token == "" || ws.ProxyURI == "" {
			continue
		}
		token, err := m.deps.Workspaces.Token(ws)
		if err != nil {
			m.log.Error("Failed to decrypt token", "workspace_id", ws.ID, "error", err)
			continue
		}
		if holder, ok := holders[token]; ok {
			if holder.UserID == ws.UserID {
				m.log.Info("Workspace shares the holder's token, not starting a second session",
					"workspace_id", ws.ID, "alias_of", holder.ID)
			} else {
				m.log.Warn("Workspace token already in use by another user, skipping",
					"workspace_id", ws.ID, "holder_workspace_id", holder.ID)
			}
			continue
		}
		holders[token] = ws
		live[ws.ID] = struct{}{}
		m.reconcileOne(ctx, ws)
	}

	// Stop bots whose workspace disappeared, lost its credentials or lost
	// its token to an earlier claimant.
	m.mu.Lock()
	var stale []*Bot
	for id, mg := range m.bots {
		if _, ok := live[id]; !ok {
			stale = append(stale, mg.bot)
			delete(m.bots, id)
			delete(m.failedUntil, id)
		}
	}
	m.mu.Unlock()
	for _, b := range stale {
		b.Stop()
	}
}

func (m *Manager) reconcileOne(ctx context.Context, ws *ent.Workspace) {
	m.mu.Lock()
	mg, running := m.bots[ws.ID]
	until, backingOff := m.failedUntil[ws.ID]
	m.mu.Unlock()

	if running {
		m.applyCredentialChanges(mg, ws)
		return
	}
	if backingOff && time.Now().Before(until) {
		return
	}

	b, err := New(m.deps, ws)
	if err != nil {
		m.log.Error("Failed to build bot", "workspace_id", ws.ID, "error", err)
		m.markFailed(ws.ID)
		return
	}
	if err := b.Start(ctx); err != nil {
		m.log.Warn("Bot start failed", "workspace_id", ws.ID, "error", err)
		m.markFailed(ws.ID)
		return
	}

	proxyPass, _ := m.deps.Workspaces.ProxyPass(ws)
	m.mu.Lock()
	m.bots[ws.ID] = &managed{
		bot:       b,
		token:     ws.Token,
		proxyURI:  ws.ProxyURI,
		proxyUser: ws.ProxyUser,
		proxyPass: proxyPass,
	}
	delete(m.failedUntil, ws.ID)
	m.mu.Unlock()
}

// applyCredentialChanges hot-swaps token or proxy on a running bot when
// the workspace row changed since start. The managed snapshot is owned by
// the reconcile goroutine; mutating it here needs no lock.
func (m *Manager) applyCredentialChanges(mg *managed, ws *ent.Workspace) {
	if ws.Token != mg.token {
		token, err := m.deps.Workspaces.Token(ws)
		if err != nil {
			m.log.Error("Failed to decrypt rotated token", "workspace_id", ws.ID, "error", err)
		} else {
			mg.bot.RequestTokenUpdate(token)
			mg.token = ws.Token
		}
	}

	proxyPass, err := m.deps.Workspaces.ProxyPass(ws)
	if err != nil {
		m.log.Error("Failed to decrypt proxy password", "workspace_id", ws.ID, "error", err)
		return
	}
	if ws.ProxyURI != mg.proxyURI || ws.ProxyUser != mg.proxyUser || proxyPass != mg.proxyPass {
		token, err := m.deps.Workspaces.Token(ws)
		if err != nil {
			m.log.Error("Failed to decrypt token for proxy swap", "workspace_id", ws.ID, "error", err)
			return
		}
		mg.bot.UpdateProxy(funpay.Options{
			Token:     token,
			ProxyURI:  ws.ProxyURI,
			ProxyUser: ws.ProxyUser,
			ProxyPass: proxyPass,
		})
		mg.proxyURI = ws.ProxyURI
		mg.proxyUser = ws.ProxyUser
		mg.proxyPass = proxyPass
	}
}

func (m *Manager) markFailed(workspaceID int) {
	m.mu.Lock()
	m.failedUntil[workspaceID] = time.Now().Add(m.deps.Cfg.Bot.StartBackoff)
	m.mu.Unlock()
}

// purgeSessions expires stale dashboard sessions on the reconcile cadence.
func (m *Manager) purgeSessions(ctx context.Context) {
	if m.deps.Auth == nil {
		return
	}
	if n, err := m.deps.Auth.PurgeExpired(ctx); err == nil && n > 0 {
		m.log.Info("Purged expired dashboard sessions", "count", n)
	}
}
