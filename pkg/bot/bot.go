// Package bot runs one long-lived worker per workspace: an event loop
// polling the marketplace, a rental reaper and a chat bridge. The Manager
// reconciles running bots against the workspace table.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/ai"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/config"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/presence"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
)

// Deps bundles everything a bot needs. NewClient is a factory so tests can
// substitute the fake marketplace client.
type Deps struct {
	Cfg *config.Config

	Auth          *services.AuthService
	Workspaces    *services.WorkspaceService
	Accounts      *services.AccountService
	Lots          *services.LotService
	Orders        *services.OrderService
	Blacklist     *services.BlacklistService
	Bonus         *services.BonusService
	Chats         *services.ChatService
	Settings      *services.SettingsService
	Notifications *services.NotificationService
	Reviews       *services.ReviewService

	Cache    cache.Cache
	Guard    *steam.GuardGenerator
	Deauth   *steam.DeauthClient
	Presence *presence.Client
	AI       *ai.Client

	NewClient func(opts funpay.Options) (funpay.Client, error)
}

// pending TTLs fixed by the command contracts.
const (
	pendingCommandTTL = 300 * time.Second
	extendHintTTL     = 6 * time.Hour
	replaceWindow     = 10 * time.Minute
	replaceRateLimit  = time.Hour
)

// Bot is one workspace worker.
type Bot struct {
	workspaceID int
	userID      int
	label       string

	deps *Deps
	log  *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu sync.Mutex
	// client is swapped at runtime on proxy changes while three loops
	// and the ticket timers read it; access only through mc().
	client     funpay.Client
	session    *funpay.Session
	lastOK     time.Time
	tokenSwap  string
	proxySwap  *funpay.Options
	greetKnown map[string]struct{}

	dedup *dedup
	// pendingCommands: chat+sender → command awaiting an id argument.
	pendingCommands *expiringSet
	// extendHints: owner → lot number quoted by !продлить.
	extendHints *expiringSet
	// reminders: one-shot near-expiry keys (account_id:deadline).
	reminders *expiringSet
	// replaceTimes: owner → last replacement, for the hourly rate limit.
	replaceTimes map[string]time.Time
	// frozenCache: last observed freeze flag per account, for transition
	// notices.
	frozenCache map[int]bool
	// expireDelaySince: account → when match-grace deferral began.
	expireDelaySince map[int]time.Time
	matchNotified    map[int]struct{}

	tickets   *ticketScheduler
	raiseNext time.Time
}

// New creates a bot for one workspace. The marketplace client is built
// from the workspace's decrypted token and proxy.
func New(deps *Deps, ws *ent.Workspace) (*Bot, error) {
	token, err := deps.Workspaces.Token(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	proxyPass, err := deps.Workspaces.ProxyPass(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt proxy password: %w", err)
	}

	client, err := deps.NewClient(funpay.Options{
		Token:     token,
		ProxyURI:  ws.ProxyURI,
		ProxyUser: ws.ProxyUser,
		ProxyPass: proxyPass,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build marketplace client: %w", err)
	}

	return &Bot{
		workspaceID:      ws.ID,
		userID:           ws.UserID,
		label:            ws.Label,
		deps:             deps,
		client:           client,
		log:              slog.With("workspace_id", ws.ID, "label", ws.Label),
		stopCh:           make(chan struct{}),
		greetKnown:       make(map[string]struct{}),
		dedup:            newDedup(),
		pendingCommands:  newExpiringSet(pendingCommandTTL),
		extendHints:      newExpiringSet(extendHintTTL),
		reminders:        newExpiringSet(48 * time.Hour),
		replaceTimes:     make(map[string]time.Time),
		frozenCache:      make(map[int]bool),
		expireDelaySince: make(map[int]time.Time),
		matchNotified:    make(map[int]struct{}),
		tickets:          newTicketScheduler(),
	}, nil
}

// Start verifies the proxy, bootstraps the session and launches the three
// loops. Blocks only for the startup phase; loops run until Stop.
func (b *Bot) Start(ctx context.Context) error {
	// A misconfigured proxy exposing the real exit IP must keep the bot
	// down, not run unproxied.
	if v, ok := b.mc().(interface{ VerifyProxy(context.Context) error }); ok {
		if err := v.VerifyProxy(ctx); err != nil {
			b.setStatus(workspace.StatusError, "proxy check failed: "+err.Error())
			return fmt.Errorf("proxy verification failed: %w", err)
		}
	}

	if err := b.bootstrap(ctx); err != nil {
		return err
	}
	b.setStatus(workspace.StatusOk, "")

	b.wg.Add(3)
	go b.eventLoop()
	go b.reaperLoop()
	go b.bridgeLoop()
	b.log.Info("Bot started")
	return nil
}

// Stop signals the loops and waits for them to finish their iteration.
func (b *Bot) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
	b.wg.Wait()
	b.tickets.CancelAll()
	b.log.Info("Bot stopped")
}

// mc returns the current marketplace client.
func (b *Bot) mc() funpay.Client {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.client
}

// RequestTokenUpdate swaps the marketplace token at the next loop
// iteration.
func (b *Bot) RequestTokenUpdate(token string) {
	b.mu.Lock()
	b.tokenSwap = token
	b.mu.Unlock()
}

// UpdateProxy rebuilds the marketplace client with new proxy settings at
// the next loop iteration.
func (b *Bot) UpdateProxy(opts funpay.Options) {
	b.mu.Lock()
	b.proxySwap = &opts
	b.mu.Unlock()
}

func (b *Bot) bootstrap(ctx context.Context) error {
	session, err := b.mc().Bootstrap(ctx)
	if err != nil {
		if errors.Is(err, funpay.ErrUnauthorized) {
			b.setStatus(workspace.StatusUnauthorized, "marketplace token rejected")
			b.notify(services.NotifyUnauthorized,
				fmt.Sprintf("Workspace %q: marketplace token rejected, update it on the dashboard.", b.label))
		}
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	b.mu.Lock()
	b.session = session
	b.lastOK = time.Now()
	b.mu.Unlock()
	b.log.Info("Session established", "marketplace_user", session.Username)
	return nil
}

// refreshSessionIfNeeded re-bootstraps when a token swap is pending or no
// marketplace call has succeeded within the refresh window.
func (b *Bot) refreshSessionIfNeeded(ctx context.Context) {
	b.mu.Lock()
	token := b.tokenSwap
	b.tokenSwap = ""
	proxy := b.proxySwap
	b.proxySwap = nil
	stale := time.Since(b.lastOK) > b.deps.Cfg.Bot.SessionRefreshAfter
	b.mu.Unlock()

	if proxy != nil {
		client, err := b.deps.NewClient(*proxy)
		if err != nil {
			b.log.Error("Failed to rebuild client for new proxy", "error", err)
		} else {
			b.mu.Lock()
			b.client = client
			b.mu.Unlock()
			stale = true
		}
	}
	if token != "" {
		b.mc().UpdateToken(token)
		stale = true
	}
	if !stale {
		return
	}
	if err := b.bootstrap(ctx); err != nil {
		b.log.Warn("Session refresh failed", "error", err)
		b.sleep(b.deps.Cfg.Bot.StartBackoff)
		return
	}
	b.setStatus(workspace.StatusOk, "")
}

func (b *Bot) markCallOK() {
	b.mu.Lock()
	b.lastOK = time.Now()
	b.mu.Unlock()
}

// send replies in chat, recording the bot-authored message.
func (b *Bot) send(ctx context.Context, chatID, text string) {
	msg, err := b.mc().SendMessage(ctx, chatID, text)
	if err != nil {
		b.log.Warn("Failed to send chat message", "chat_id", chatID, "error", err)
		return
	}
	b.markCallOK()
	if err := b.deps.Chats.SaveMessage(ctx, b.workspaceID, b.userID, *msg, true); err != nil {
		b.log.Warn("Failed to persist bot message", "chat_id", chatID, "error", err)
	}
	b.invalidateChatCache(chatID)
}

func (b *Bot) invalidateChatCache(chatID string) {
	b.deps.Cache.DeletePrefix(cache.ChatListPrefix(b.userID, b.workspaceID))
	if chatID != "" {
		b.deps.Cache.DeletePrefix(cache.ChatHistoryPrefix(b.userID, b.workspaceID, chatID))
	}
}

func (b *Bot) setStatus(status workspace.Status, message string) {
	if err := b.deps.Workspaces.SetStatus(context.Background(), b.workspaceID, status, message); err != nil {
		b.log.Warn("Failed to update workspace status", "error", err)
	}
}

func (b *Bot) notify(kind, message string) {
	if err := b.deps.Notifications.Push(context.Background(), b.userID, b.workspaceID, kind, message); err != nil {
		b.log.Warn("Failed to push notification", "kind", kind, "error", err)
	}
}

// sleep waits for d or until the bot is stopped.
func (b *Bot) sleep(d time.Duration) bool {
	select {
	case <-b.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}

func (b *Bot) stopped() bool {
	select {
	case <-b.stopCh:
		return true
	default:
		return false
	}
}
