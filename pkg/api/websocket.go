package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks live dashboard sockets and their chat subscriptions.
type Hub struct {
	server   *Server
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]*wsConn
	// subs: workspace/chat key -> connection id -> connection.
	subs map[string]map[string]*wsConn
}

type wsConn struct {
	id          string
	userID      int
	workspaceID int
	sock        *websocket.Conn

	writeMu sync.Mutex
	chats   map[string]struct{}
}

// wsInbound is the client-to-server envelope.
type wsInbound struct {
	Type   string `json:"type"`
	ChatID string `json:"chat_id,omitempty"`
	Text   string `json:"text,omitempty"`
}

func newHub(s *Server) *Hub {
	return &Hub{
		server: s,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Session cookie auth already ran; the dashboard may be
			// served from another origin in development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[string]*wsConn),
		subs:  make(map[string]map[string]*wsConn),
	}
}

func subKey(workspaceID int, chatID string) string {
	return fmt.Sprintf("%d/%s", workspaceID, chatID)
}

// handleWebSocket upgrades the connection and serves it until close.
// Requires ?workspace_id= naming the workspace the socket watches.
func (s *Server) handleWebSocket(c *gin.Context) {
	user := currentUser(c)
	workspaceID := queryInt(c, "workspace_id", 0)
	if workspaceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace_id is required"})
		return
	}
	if _, err := s.deps.Workspaces.Get(c.Request.Context(), user.ID, workspaceID); err != nil {
		respondError(c, err)
		return
	}

	sock, err := s.hub.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	s.hub.serve(&wsConn{
		id:          uuid.New().String(),
		userID:      user.ID,
		workspaceID: workspaceID,
		sock:        sock,
		chats:       make(map[string]struct{}),
	})
}

// serve registers the connection and blocks on the read loop.
func (h *Hub) serve(conn *wsConn) {
	h.mu.Lock()
	h.conns[conn.id] = conn
	h.mu.Unlock()

	defer h.drop(conn)

	conn.write("hello", gin.H{"user_id": conn.userID, "workspace_id": conn.workspaceID})
	h.sendChatList(conn)

	for {
		var msg wsInbound
		if err := conn.sock.ReadJSON(&msg); err != nil {
			return
		}
		h.dispatch(conn, msg)
	}
}

func (h *Hub) dispatch(conn *wsConn, msg wsInbound) {
	switch msg.Type {
	case "subscribe":
		h.subscribe(conn, msg.ChatID)
		h.sendChatHistory(conn, msg.ChatID)
	case "unsubscribe":
		h.unsubscribe(conn, msg.ChatID)
	case "send":
		h.sendToChat(conn, msg.ChatID, msg.Text)
	case "ping":
		conn.write("pong", nil)
	default:
		conn.write("error", gin.H{"error": "unknown message type " + msg.Type})
	}
}

func (h *Hub) subscribe(conn *wsConn, chatID string) {
	if chatID == "" {
		return
	}
	key := subKey(conn.workspaceID, chatID)
	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[string]*wsConn)
	}
	h.subs[key][conn.id] = conn
	conn.chats[chatID] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unsubscribe(conn *wsConn, chatID string) {
	key := subKey(conn.workspaceID, chatID)
	h.mu.Lock()
	if set, ok := h.subs[key]; ok {
		delete(set, conn.id)
		if len(set) == 0 {
			delete(h.subs, key)
		}
	}
	delete(conn.chats, chatID)
	h.mu.Unlock()
}

func (h *Hub) drop(conn *wsConn) {
	h.mu.Lock()
	delete(h.conns, conn.id)
	for chatID := range conn.chats {
		key := subKey(conn.workspaceID, chatID)
		if set, ok := h.subs[key]; ok {
			delete(set, conn.id)
			if len(set) == 0 {
				delete(h.subs, key)
			}
		}
	}
	h.mu.Unlock()
	_ = conn.sock.Close()
}

func (h *Hub) sendChatList(conn *wsConn) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	snapshots, err := h.server.deps.Chats.ListSnapshots(ctx, conn.userID, conn.workspaceID, 100)
	if err != nil {
		conn.write("error", gin.H{"error": "failed to load chats"})
		return
	}
	conn.write("chats:list", gin.H{"chats": snapshots})
}

func (h *Hub) sendChatHistory(conn *wsConn, chatID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	messages, err := h.server.deps.Chats.History(ctx, conn.userID, conn.workspaceID, chatID, 100)
	if err != nil {
		conn.write("error", gin.H{"error": "failed to load history"})
		return
	}
	conn.write("chat:history", gin.H{"chat_id": chatID, "messages": messages})
}

// sendToChat queues an outbox row and echoes the pending message to
// every subscriber of the chat.
func (h *Hub) sendToChat(conn *wsConn, chatID, text string) {
	if chatID == "" || text == "" {
		conn.write("send:error", gin.H{"chat_id": chatID, "error": "chat_id and text are required"})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	row, err := h.server.deps.Chats.Enqueue(ctx, conn.workspaceID, conn.userID, chatID, text)
	if err != nil {
		conn.write("send:error", gin.H{"chat_id": chatID, "error": "failed to queue message"})
		return
	}
	conn.write("send:ok", gin.H{"chat_id": chatID, "outbox_id": row.ID})

	h.broadcast(conn.workspaceID, chatID, "chat:message", gin.H{
		"chat_id": chatID,
		"text":    text,
		"pending": true,
		"sent_at": time.Now(),
	})
}

func (h *Hub) broadcast(workspaceID int, chatID, msgType string, payload gin.H) {
	h.mu.RLock()
	conns := make([]*wsConn, 0)
	for _, c := range h.subs[subKey(workspaceID, chatID)] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	for _, c := range conns {
		c.write(msgType, payload)
	}
}

// write serializes one outbound frame; a failed write closes the socket
// and lets the read loop clean up.
func (c *wsConn) write(msgType string, payload gin.H) {
	frame := gin.H{"type": msgType}
	for k, v := range payload {
		frame[k] = v
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.sock.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := c.sock.WriteJSON(frame); err != nil {
		_ = c.sock.Close()
	}
}
