package steam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// deauthTimeout bounds a full deauthorization round-trip. Deauth is
// best-effort and must never hold the release path for longer than this.
const deauthTimeout = 90 * time.Second

// DeauthClient talks to the Steam worker bridge that kills remote sessions.
// A nil client (no STEAM_WORKER_URL) disables deauthorization.
type DeauthClient struct {
	baseURL string
	http    *http.Client
}

// NewDeauthClient returns a client for the worker bridge, or nil when the
// URL is empty.
func NewDeauthClient(baseURL string) *DeauthClient {
	if baseURL == "" {
		return nil
	}
	return &DeauthClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: deauthTimeout},
	}
}

// DeauthorizeAll logs out all remote sessions of the account. Returns
// false (without error) when the worker reports a soft failure.
func (c *DeauthClient) DeauthorizeAll(ctx context.Context, login, password string, mf *MaFile) (bool, error) {
	if c == nil {
		return false, nil
	}
	payload, err := json.Marshal(map[string]any{
		"login":    login,
		"password": password,
		"mafile":   mf,
	})
	if err != nil {
		return false, fmt.Errorf("steam: marshal deauth request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, deauthTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/deauthorize", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("steam: deauth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("steam: deauth worker returned %d", resp.StatusCode)
	}

	var result struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("steam: decode deauth response: %w", err)
	}
	if !result.OK {
		slog.Warn("Steam deauth worker reported failure", "login", login)
	}
	return result.OK, nil
}
