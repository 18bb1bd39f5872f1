package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/timeutil"
)

// --- workspaces ---

func (s *Server) handleWorkspaceList(c *gin.Context) {
	user := currentUser(c)
	workspaces, err := s.deps.Workspaces.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, s.workspaceView(ws))
	}
	respondCached(c, gin.H{"workspaces": out})
}

// workspaceView augments the row with the live bot state. Sensitive
// columns never serialize.
func (s *Server) workspaceView(ws *ent.Workspace) gin.H {
	running := false
	if s.deps.Manager != nil {
		running = s.deps.Manager.Running(ws.ID)
	}
	return gin.H{"workspace": ws, "bot_running": running}
}

func (s *Server) handleWorkspaceCreate(c *gin.Context) {
	user := currentUser(c)
	var req models.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.UserID = user.ID
	ws, err := s.deps.Workspaces.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.workspaceView(ws))
}

func (s *Server) handleWorkspaceGet(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	ws, err := s.deps.Workspaces.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.workspaceView(ws))
}

func (s *Server) handleWorkspaceUpdate(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ws, err := s.deps.Workspaces.Update(c.Request.Context(), user.ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.workspaceView(ws))
}

func (s *Server) handleWorkspaceDelete(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.deps.Workspaces.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- accounts ---

func (s *Server) handleAccountList(c *gin.Context) {
	user := currentUser(c)
	accounts, err := s.deps.Accounts.List(c.Request.Context(), user.ID, queryInt(c, "workspace_id", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"accounts": accounts})
}

func (s *Server) handleAccountCreate(c *gin.Context) {
	user := currentUser(c)
	var req models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.UserID = user.ID
	acc, err := s.deps.Accounts.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account": acc})
}

func (s *Server) handleAccountGet(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	acc, err := s.deps.Accounts.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

func (s *Server) handleAccountUpdate(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	acc, err := s.deps.Accounts.Update(c.Request.Context(), user.ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

func (s *Server) handleAccountDelete(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.deps.Accounts.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleAccountAssign(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Owner           string `json:"owner" binding:"required"`
		OrderID         string `json:"order_id"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner is required"})
		return
	}
	if _, err := s.deps.Accounts.Get(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	acc, err := s.deps.Accounts.Assign(c.Request.Context(), id, req.Owner, req.OrderID, req.DurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

func (s *Server) handleAccountRelease(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := s.deps.Accounts.Get(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	acc, err := s.deps.Accounts.Release(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

func (s *Server) handleAccountExtend(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Minutes int `json:"minutes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes is required"})
		return
	}
	if _, err := s.deps.Accounts.Get(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	acc, err := s.deps.Accounts.Extend(c.Request.Context(), id, req.Minutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

func (s *Server) handleAccountFreeze(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Frozen *bool `json:"frozen" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "frozen is required"})
		return
	}
	acc, err := s.deps.Accounts.Update(c.Request.Context(), user.ID, id,
		models.UpdateAccountRequest{AccountFrozen: req.Frozen})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acc})
}

// --- lots ---

func (s *Server) handleLotList(c *gin.Context) {
	user := currentUser(c)
	lots, err := s.deps.Lots.List(c.Request.Context(), user.ID, queryInt(c, "workspace_id", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"lots": lots})
}

func (s *Server) handleLotCreate(c *gin.Context) {
	user := currentUser(c)
	var req models.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.UserID = user.ID
	lot, err := s.deps.Lots.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lot": lot})
}

func (s *Server) handleLotDelete(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.deps.Lots.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- rentals / orders / stats ---

// handleActiveRentals lists running rentals. ?expand=presence,chat joins
// the Steam presence snapshot and the buyer's chat id per rental.
func (s *Server) handleActiveRentals(c *gin.Context) {
	user := currentUser(c)
	accounts, err := s.deps.Accounts.ActiveRentals(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	expand := map[string]bool{}
	for _, part := range strings.Split(c.Query("expand"), ",") {
		expand[strings.TrimSpace(part)] = true
	}

	now := timeutil.NowMarketplace()
	out := make([]gin.H, len(accounts))
	for i, acc := range accounts {
		item := gin.H{"account": acc}
		if acc.RentalStart != nil {
			item["remaining_minutes"] = int(timeutil.Remaining(*acc.RentalStart, acc.RentalDurationMinutes, now).Minutes())
		} else {
			item["remaining_minutes"] = acc.RentalDurationMinutes
		}
		if expand["chat"] && acc.Owner != nil {
			if chatID, err := s.deps.Chats.FindChatByPeer(c.Request.Context(), acc.WorkspaceID, *acc.Owner); err == nil {
				item["chat_id"] = chatID
			}
		}
		out[i] = item
	}

	// Presence lookups hit the Steam bridge; fan them out.
	if expand["presence"] && s.deps.Presence != nil {
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.SetLimit(8)
		for i, acc := range accounts {
			g.Go(func() error {
				if snap, ok := s.presenceFor(ctx, acc); ok {
					out[i]["presence"] = snap
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	c.JSON(http.StatusOK, gin.H{"rentals": out})
}

func (s *Server) presenceFor(ctx context.Context, acc *ent.Account) (models.PresenceSnapshot, bool) {
	if s.deps.Presence == nil {
		return models.PresenceSnapshot{}, false
	}
	_, _, mafileJSON, err := s.deps.Accounts.Credentials(acc)
	if err != nil || mafileJSON == "" {
		return models.PresenceSnapshot{}, false
	}
	mf, err := steam.ParseMaFile(mafileJSON)
	if err != nil {
		return models.PresenceSnapshot{}, false
	}
	steamID, err := mf.SteamID64()
	if err != nil {
		return models.PresenceSnapshot{}, false
	}
	return s.deps.Presence.Lookup(ctx, steamID), true
}

func (s *Server) handleOrderHistory(c *gin.Context) {
	user := currentUser(c)
	filter := services.HistoryFilter{
		WorkspaceID: queryInt(c, "workspace_id", 0),
		OrderID:     c.Query("order_id"),
		Owner:       c.Query("owner"),
		Action:      c.Query("action"),
		Limit:       queryInt(c, "limit", 50),
		Offset:      queryInt(c, "offset", 0),
	}
	events, err := s.deps.Orders.History(c.Request.Context(), user.ID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"events": events})
}

func (s *Server) handleStats(c *gin.Context) {
	user := currentUser(c)
	days := queryInt(c, "days", 30)
	buckets, err := s.deps.Orders.Stats(c.Request.Context(), user.ID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"days": days, "buckets": buckets})
}

// --- blacklist ---

func (s *Server) handleBlacklistList(c *gin.Context) {
	user := currentUser(c)
	entries, err := s.deps.Blacklist.List(c.Request.Context(), queryInt(c, "workspace_id", 0), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"entries": entries})
}

func (s *Server) handleBlacklistAdd(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		WorkspaceID int    `json:"workspace_id" binding:"required"`
		Owner       string `json:"owner" binding:"required"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id and owner are required"})
		return
	}
	entry, err := s.deps.Blacklist.Add(c.Request.Context(), req.WorkspaceID, user.ID, req.Owner, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (s *Server) handleBlacklistRemove(c *gin.Context) {
	user := currentUser(c)
	owner := c.Param("owner")
	workspaceID := queryInt(c, "workspace_id", 0)
	if err := s.deps.Blacklist.Remove(c.Request.Context(), workspaceID, user.ID, owner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (s *Server) handleBlacklistClear(c *gin.Context) {
	user := currentUser(c)
	workspaceID := queryInt(c, "workspace_id", 0)
	entries, err := s.deps.Blacklist.List(c.Request.Context(), workspaceID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	removed := 0
	for _, e := range entries {
		if err := s.deps.Blacklist.Remove(c.Request.Context(), e.WorkspaceID, user.ID, e.Owner); err != nil {
			s.log.Warn("Blacklist clear: remove failed", "owner", e.Owner, "error", err)
			continue
		}
		removed++
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (s *Server) handleBlacklistLogs(c *gin.Context) {
	user := currentUser(c)
	logs, err := s.deps.Blacklist.Logs(c.Request.Context(), user.ID, c.Param("owner"), queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// --- notifications ---

func (s *Server) handleNotificationList(c *gin.Context) {
	user := currentUser(c)
	unreadOnly := c.Query("unread") == "1" || c.Query("unread") == "true"
	items, err := s.deps.Notifications.List(c.Request.Context(), user.ID, unreadOnly, queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCached(c, gin.H{"notifications": items})
}

func (s *Server) handleNotificationsRead(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		IDs []int `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}
	if err := s.deps.Notifications.MarkRead(c.Request.Context(), user.ID, req.IDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- settings ---

func (s *Server) handleSettingsAll(c *gin.Context) {
	user := currentUser(c)
	all, err := s.deps.Settings.All(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": all})
}

func (s *Server) handleAutoTicketGet(c *gin.Context) {
	user := currentUser(c)
	enabled := s.deps.Settings.GetBool(c.Request.Context(), user.ID, services.SettingAutoTicket, true)
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (s *Server) handleAutoTicketSet(c *gin.Context) {
	s.setBoolSetting(c, services.SettingAutoTicket)
}

func (s *Server) handleAutoRaiseGet(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"enabled":    s.deps.Settings.GetBool(c.Request.Context(), user.ID, services.SettingAutoRaise, true),
		"categories": s.deps.Settings.Get(c.Request.Context(), user.ID, services.SettingAutoRaiseCats, ""),
	})
}

func (s *Server) handleAutoRaiseSet(c *gin.Context) {
	s.setBoolSetting(c, services.SettingAutoRaise)
}

// handleAutoRaiseConfig stores the category whitelist as a CSV of ids;
// empty means every category.
func (s *Server) handleAutoRaiseConfig(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		Categories []int `json:"categories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	parts := make([]string, 0, len(req.Categories))
	for _, id := range req.Categories {
		parts = append(parts, strconv.Itoa(id))
	}
	if err := s.deps.Settings.Set(c.Request.Context(), user.ID, services.SettingAutoRaiseCats, strings.Join(parts, ",")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": req.Categories})
}

func (s *Server) setBoolSetting(c *gin.Context, key string) {
	user := currentUser(c)
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}
	if err := s.deps.Settings.Set(c.Request.Context(), user.ID, key, strconv.FormatBool(*req.Enabled)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}

// --- support tickets ---

func (s *Server) handleTicketList(c *gin.Context) {
	user := currentUser(c)
	filter := services.HistoryFilter{
		WorkspaceID: queryInt(c, "workspace_id", 0),
		Action:      "ticket_auto",
		Limit:       queryInt(c, "limit", 50),
		Offset:      queryInt(c, "offset", 0),
	}
	events, err := s.deps.Orders.History(c.Request.Context(), user.ID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": events})
}

func (s *Server) handleTicketSubmit(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		WorkspaceID int    `json:"workspace_id" binding:"required"`
		OrderID     string `json:"order_id" binding:"required"`
		Topic       string `json:"topic"`
		Body        string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id, order_id and body are required"})
		return
	}
	if s.deps.Manager == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "bot manager unavailable"})
		return
	}
	if _, err := s.deps.Workspaces.Get(c.Request.Context(), user.ID, req.WorkspaceID); err != nil {
		respondError(c, err)
		return
	}
	topic := req.Topic
	if topic == "" {
		topic = "order issue"
	}
	if err := s.deps.Manager.SubmitTicket(c.Request.Context(), req.WorkspaceID, topic, req.OrderID, req.Body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "submitted"})
}

// handleTicketCompose drafts a support ticket body with the AI adapter.
func (s *Server) handleTicketCompose(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
		Problem string `json:"problem"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
		return
	}
	if s.deps.AI == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "AI adapter disabled"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()
	body, err := s.deps.AI.Generate(ctx,
		"Ты пишешь короткое обращение в поддержку торговой площадки от имени продавца. Вежливо, по делу, на русском.",
		"Заказ #"+req.OrderID+". Проблема: "+req.Problem)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"body": body})
}

// --- admin calls ---

func (s *Server) handleAdminCallList(c *gin.Context) {
	user := currentUser(c)
	calls, err := s.deps.Chats.ListAdminCalls(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin_calls": calls})
}

func (s *Server) handleAdminCallResolve(c *gin.Context) {
	user := currentUser(c)
	var req struct {
		WorkspaceID int    `json:"workspace_id" binding:"required"`
		ChatID      string `json:"chat_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id and chat_id are required"})
		return
	}
	if err := s.deps.Chats.ResolveAdminCall(c.Request.Context(), user.ID, req.WorkspaceID, req.ChatID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}
