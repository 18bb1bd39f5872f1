// Package cache provides the soft read cache for dashboard fan-out. All
// contents are reconstructible from the database; a miss is never an error.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Cache is a byte-value cache with TTLs and prefix invalidation.
type Cache interface {
	// Get returns the cached value, or false when absent or expired.
	Get(key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(key string, value []byte, ttl time.Duration)
	// Delete removes a single key.
	Delete(key string)
	// DeletePrefix removes every key starting with prefix. Used to
	// invalidate chat list/history fan-out on write.
	DeletePrefix(prefix string)
}

// Key helpers. The layout is part of the invalidation contract:
// writers invalidate by these prefixes.

// ChatListKey caches the dashboard chat list per (user, workspace).
func ChatListKey(userID, workspaceID int) string {
	return fmt.Sprintf("chat:list:%d:%d:v1", userID, workspaceID)
}

// ChatListPrefix invalidates all chat list variants of a workspace.
func ChatListPrefix(userID, workspaceID int) string {
	return fmt.Sprintf("chat:list:%d:%d:", userID, workspaceID)
}

// ChatHistoryKey caches one chat's message history.
func ChatHistoryKey(userID, workspaceID int, chatID string) string {
	return fmt.Sprintf("chat:history:%d:%d:%s:v1", userID, workspaceID, chatID)
}

// ChatHistoryPrefix invalidates one chat's history variants.
func ChatHistoryPrefix(userID, workspaceID int, chatID string) string {
	return fmt.Sprintf("chat:history:%d:%d:%s:", userID, workspaceID, chatID)
}

// PresenceKey caches presence snapshots by steam id.
func PresenceKey(steamID uint64) string {
	return fmt.Sprintf("presence:%d", steamID)
}

type memEntry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process Cache used when REDIS_URL is unset and in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

// NewMemory creates an in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memEntry)}
}

// Get implements Cache.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Set implements Cache.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = memEntry{value: value, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
}

// Delete implements Cache.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// DeletePrefix implements Cache.
func (m *Memory) DeletePrefix(prefix string) {
	m.mu.Lock()
	for k := range m.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.entries, k)
		}
	}
	m.mu.Unlock()
}
