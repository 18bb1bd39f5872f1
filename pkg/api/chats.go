package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/cache"
)

// Chat reads serve from the cache when warm; the bots invalidate the
// keys whenever they touch a chat.
const (
	chatListTTL    = 15 * time.Second
	chatHistoryTTL = 30 * time.Second
)

func (s *Server) handleChatList(c *gin.Context) {
	user := currentUser(c)
	workspaceID := queryInt(c, "workspace_id", 0)
	if workspaceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id is required"})
		return
	}

	key := cache.ChatListKey(user.ID, workspaceID)
	if body, ok := s.deps.Cache.Get(key); ok {
		etagJSON(c, http.StatusOK, body)
		return
	}

	snapshots, err := s.deps.Chats.ListSnapshots(c.Request.Context(), user.ID, workspaceID, queryInt(c, "limit", 100))
	if err != nil {
		respondError(c, err)
		return
	}
	body, err := json.Marshal(gin.H{"chats": snapshots})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	s.deps.Cache.Set(key, body, chatListTTL)
	etagJSON(c, http.StatusOK, body)
}

func (s *Server) handleChatHistory(c *gin.Context) {
	user := currentUser(c)
	chatID := c.Param("id")
	workspaceID := queryInt(c, "workspace_id", 0)
	if workspaceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id is required"})
		return
	}

	key := cache.ChatHistoryKey(user.ID, workspaceID, chatID)
	if body, ok := s.deps.Cache.Get(key); ok {
		etagJSON(c, http.StatusOK, body)
		return
	}

	messages, err := s.deps.Chats.History(c.Request.Context(), user.ID, workspaceID, chatID, queryInt(c, "limit", 100))
	if err != nil {
		respondError(c, err)
		return
	}
	body, err := json.Marshal(gin.H{"chat_id": chatID, "messages": messages})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	s.deps.Cache.Set(key, body, chatHistoryTTL)
	etagJSON(c, http.StatusOK, body)
}

// handleChatSend queues a message in the outbox; the workspace bot owns
// the marketplace session and drains it.
func (s *Server) handleChatSend(c *gin.Context) {
	user := currentUser(c)
	chatID := c.Param("id")
	var req struct {
		WorkspaceID int    `json:"workspace_id" binding:"required"`
		Text        string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id and text are required"})
		return
	}
	if _, err := s.deps.Workspaces.Get(c.Request.Context(), user.ID, req.WorkspaceID); err != nil {
		respondError(c, err)
		return
	}
	row, err := s.deps.Chats.Enqueue(c.Request.Context(), req.WorkspaceID, user.ID, chatID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": row})
}
