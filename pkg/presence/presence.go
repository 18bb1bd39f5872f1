// Package presence queries the Steam bridge for live in-game status of
// rented accounts. Results are cached briefly so that dashboard polling
// and the rental reaper share lookups.
package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
)

const (
	requestTimeout = 10 * time.Second
	cacheTTL       = 30 * time.Second
)

// Client looks up presence snapshots through the Steam bridge. A nil
// client (no STEAM_BRIDGE_URL) reports every account as offline.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[uint64]cached
}

type cached struct {
	snap models.PresenceSnapshot
	at   time.Time
}

// New returns a presence client, or nil when the bridge URL is empty.
func New(baseURL string) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   make(map[uint64]cached),
	}
}

// Lookup returns the presence snapshot for one SteamID64. Bridge errors
// degrade to an offline snapshot so that callers never block a rental
// decision on presence availability.
func (c *Client) Lookup(ctx context.Context, steamID uint64) models.PresenceSnapshot {
	if c == nil || steamID == 0 {
		return models.PresenceSnapshot{SteamID: steamID}
	}

	c.mu.Lock()
	if hit, ok := c.cache[steamID]; ok && time.Since(hit.at) < cacheTTL {
		c.mu.Unlock()
		return hit.snap
	}
	c.mu.Unlock()

	snap, err := c.fetch(ctx, steamID)
	if err != nil {
		return models.PresenceSnapshot{SteamID: steamID}
	}

	c.mu.Lock()
	c.cache[steamID] = cached{snap: snap, at: time.Now()}
	c.mu.Unlock()
	return snap
}

func (c *Client) fetch(ctx context.Context, steamID uint64) (models.PresenceSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/presence/%d", c.baseURL, steamID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.PresenceSnapshot{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.PresenceSnapshot{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.PresenceSnapshot{}, fmt.Errorf("presence: bridge returned %d", resp.StatusCode)
	}

	var payload struct {
		InGame       bool `json:"in_game"`
		InMatch      bool `json:"in_match"`
		MatchSeconds int  `json:"match_seconds"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.PresenceSnapshot{}, err
	}
	return models.PresenceSnapshot{
		SteamID:      steamID,
		InGame:       payload.InGame,
		InMatch:      payload.InMatch,
		MatchSeconds: payload.MatchSeconds,
	}, nil
}
