// rentd runs the rental automation daemon: one bot per marketplace
// workspace plus the dashboard HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/ai"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/api"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/bot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/config"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/crypto"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/database"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/presence"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if err := run(cfg); err != nil {
		slog.Error("Daemon failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("Database close failed", "error", err)
		}
	}()

	cipher, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		return err
	}

	var store cache.Cache
	if cfg.RedisURL != "" {
		redis, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redis.Close()
		store = redis
		slog.Info("Using redis cache")
	} else {
		store = cache.NewMemory()
	}

	auth := services.NewAuthService(db.Client)
	workspaces := services.NewWorkspaceService(db.Client, cipher)
	accounts := services.NewAccountService(db.Client, cipher)
	lots := services.NewLotService(db.Client)
	orders := services.NewOrderService(db.Client)
	blacklist := services.NewBlacklistService(db.Client)
	bonus := services.NewBonusService(db.Client)
	chats := services.NewChatService(db.Client)
	settings := services.NewSettingsService(db.Client)
	notifications := services.NewNotificationService(db.Client)
	reviews := services.NewReviewService(db.Client)

	deps := &bot.Deps{
		Cfg:           cfg,
		Auth:          auth,
		Workspaces:    workspaces,
		Accounts:      accounts,
		Lots:          lots,
		Orders:        orders,
		Blacklist:     blacklist,
		Bonus:         bonus,
		Chats:         chats,
		Settings:      settings,
		Notifications: notifications,
		Reviews:       reviews,
		Cache:         store,
		Guard:         steam.NewGuardGenerator(),
		Deauth:        steam.NewDeauthClient(cfg.SteamWorkerURL),
		Presence:      presence.New(cfg.SteamBridgeURL),
		AI:            ai.New(cfg.GroqAPIKey, cfg.GroqModel),
		NewClient: func(opts funpay.Options) (funpay.Client, error) {
			return funpay.NewHTTPClient(opts)
		},
	}

	manager := bot.NewManager(deps)
	manager.StartAll(ctx)
	go manager.Run(ctx)

	server := api.NewServer(&api.Deps{
		Cfg:           cfg,
		DB:            db,
		Auth:          auth,
		Workspaces:    workspaces,
		Accounts:      accounts,
		Lots:          lots,
		Orders:        orders,
		Blacklist:     blacklist,
		Bonus:         bonus,
		Chats:         chats,
		Settings:      settings,
		Notifications: notifications,
		Cache:         store,
		Presence:      deps.Presence,
		AI:            deps.AI,
		Manager:       manager,
	})
	httpSrv := server.Run(":" + cfg.HTTPPort)

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown failed", "error", err)
	}
	manager.Stop()
	return nil
}
