// Package api serves the dashboard REST and WebSocket endpoints on top
// of the service layer. All data routes require a session cookie.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/ai"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/bot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/config"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/database"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/presence"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Cfg *config.Config
	DB  *database.Client

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

	Cache    cache.Cache
	Presence *presence.Client
	AI       *ai.Client

	// Manager is optional; without it workspace status reads "unknown"
	// and manual support tickets are rejected.
	Manager *bot.Manager
}

// Server is the HTTP API.
type Server struct {
	deps *Deps
	log  *slog.Logger
	hub  *Hub

	registerLimit *ipLimiter
	loginLimit    *ipLimiter
}

// NewServer wires the routes and the WebSocket hub.
func NewServer(deps *Deps) *Server {
	s := &Server{
		deps: deps,
		log:  slog.With("component", "api"),
		// 5 registrations per 5 minutes, 10 logins per minute, per IP.
		registerLimit: newIPLimiter(rate.Every(time.Minute), 5),
		loginLimit:    newIPLimiter(rate.Every(6*time.Second), 10),
	}
	s.hub = newHub(s)
	return s
}

func (s *Server) auth() *services.AuthService { return s.deps.Auth }

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.handleHealth)

	r.POST("/api/auth/register", rateLimit(s.registerLimit), s.handleRegister)
	r.POST("/api/auth/login", rateLimit(s.loginLimit), s.handleLogin)

	authed := r.Group("/api", s.requireSession())
	{
		authed.POST("/auth/logout", s.handleLogout)
		authed.GET("/auth/me", s.handleMe)

		authed.GET("/workspaces", s.handleWorkspaceList)
		authed.POST("/workspaces", s.handleWorkspaceCreate)
		authed.GET("/workspaces/:id", s.handleWorkspaceGet)
		authed.PATCH("/workspaces/:id", s.handleWorkspaceUpdate)
		authed.DELETE("/workspaces/:id", s.handleWorkspaceDelete)

		authed.GET("/accounts", s.handleAccountList)
		authed.POST("/accounts", s.handleAccountCreate)
		authed.GET("/accounts/:id", s.handleAccountGet)
		authed.PATCH("/accounts/:id", s.handleAccountUpdate)
		authed.DELETE("/accounts/:id", s.handleAccountDelete)
		authed.POST("/accounts/:id/assign", s.handleAccountAssign)
		authed.POST("/accounts/:id/release", s.handleAccountRelease)
		authed.POST("/accounts/:id/extend", s.handleAccountExtend)
		authed.POST("/accounts/:id/freeze", s.handleAccountFreeze)

		authed.GET("/lots", s.handleLotList)
		authed.POST("/lots", s.handleLotCreate)
		authed.DELETE("/lots/:id", s.handleLotDelete)

		authed.GET("/rentals/active", s.handleActiveRentals)
		authed.GET("/orders/history", s.handleOrderHistory)
		authed.GET("/funpay/stats", s.handleStats)

		authed.GET("/blacklist", s.handleBlacklistList)
		authed.POST("/blacklist", s.handleBlacklistAdd)
		authed.DELETE("/blacklist/:owner", s.handleBlacklistRemove)
		authed.POST("/blacklist/clear", s.handleBlacklistClear)
		authed.GET("/blacklist/:owner/logs", s.handleBlacklistLogs)

		authed.GET("/notifications", s.handleNotificationList)
		authed.POST("/notifications/read", s.handleNotificationsRead)

		authed.GET("/settings", s.handleSettingsAll)
		authed.GET("/settings/auto-ticket", s.handleAutoTicketGet)
		authed.PUT("/settings/auto-ticket", s.handleAutoTicketSet)
		authed.GET("/settings/auto-raise", s.handleAutoRaiseGet)
		authed.PUT("/settings/auto-raise", s.handleAutoRaiseSet)
		authed.PUT("/settings/auto-raise/config", s.handleAutoRaiseConfig)

		authed.GET("/support/tickets", s.handleTicketList)
		authed.POST("/support/tickets", s.handleTicketSubmit)
		authed.POST("/support/tickets/compose", s.handleTicketCompose)

		authed.GET("/chats", s.handleChatList)
		authed.GET("/chats/:id/history", s.handleChatHistory)
		authed.POST("/chats/:id/send", s.handleChatSend)
		authed.GET("/admin-calls", s.handleAdminCallList)
		authed.POST("/admin-calls/resolve", s.handleAdminCallResolve)

		authed.GET("/ws", s.handleWebSocket)
	}

	return r
}

// Run serves the API until the server is shut down.
func (s *Server) Run(addr string) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server stopped", "error", err)
		}
	}()
	s.log.Info("API listening", "addr", addr)
	return srv
}

func (s *Server) handleHealth(c *gin.Context) {
	health, err := database.Health(c.Request.Context(), s.deps.DB.DB())
	code := http.StatusOK
	if err != nil {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"database": health})
}
