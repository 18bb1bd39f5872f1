// Package config holds runtime tunables. Everything is sourced from the
// environment (a .env file is loaded by main before this runs), with
// defaults that match production behaviour.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration.
type Config struct {
	HTTPPort string

	Bot       BotConfig
	Blacklist BlacklistConfig
	Reaper    ReaperConfig

	// DataEncryptionKey enables AES-GCM column encryption when non-empty.
	DataEncryptionKey string

	// RedisURL enables the redis cache when non-empty.
	RedisURL string

	// SteamBridgeURL is the presence bridge endpoint (optional).
	SteamBridgeURL string
	// SteamWorkerURL is the deauthorization worker endpoint (optional).
	SteamWorkerURL string

	// GroqAPIKey/GroqModel enable the AI adapter when the key is set.
	GroqAPIKey string
	GroqModel  string
}

// BotConfig controls the per-workspace bot loops.
type BotConfig struct {
	// PollInterval is the gap between marketplace update batches.
	PollInterval time.Duration
	// ReconcileInterval is how often the manager re-reads workspaces.
	ReconcileInterval time.Duration
	// SessionRefreshAfter forces a session re-bootstrap when no marketplace
	// call has succeeded for this long.
	SessionRefreshAfter time.Duration
	// StartBackoff is the retry delay after a failed bot start.
	StartBackoff time.Duration
	// ChatSyncInterval is the chat-list sync period of the chat bridge.
	ChatSyncInterval time.Duration
	// OutboxBatch is the max pending outbox rows drained per tick.
	OutboxBatch int
	// OutboxMaxAttempts marks a row failed after this many send errors.
	OutboxMaxAttempts int
}

// BlacklistConfig controls compensation accounting for blacklisted buyers.
type BlacklistConfig struct {
	// CompHours * CompUnitMinutes is the paid-minutes threshold at which a
	// blacklisted buyer is automatically restored.
	CompHours       int
	CompUnitMinutes int
}

// Threshold returns the compensation threshold in minutes.
func (b BlacklistConfig) Threshold() int {
	return b.CompHours * b.CompUnitMinutes
}

// ReaperConfig controls rental lifetime enforcement.
type ReaperConfig struct {
	CheckInterval time.Duration
	// RemindBefore sends a one-shot reminder when remaining time drops to
	// this window.
	RemindBefore time.Duration
	// PauseMax is how long a buyer-requested pause may last before the
	// reaper unpauses automatically.
	PauseMax time.Duration
	// MatchDelayExpire defers expiry while the account is in a match.
	MatchDelayExpire bool
	// MatchGrace caps the total expiry deferral.
	MatchGrace time.Duration
	// MatchRecheck is the shortened scan interval while deferring.
	MatchRecheck time.Duration
	// DeauthorizeOnExpire kills remote Steam sessions when a rental ends.
	DeauthorizeOnExpire bool
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Bot: BotConfig{
			PollInterval:        secondsEnv("FUNPAY_POLL_SECONDS", 1500*time.Millisecond),
			ReconcileInterval:   secondsEnv("FUNPAY_USER_SYNC_SECONDS", 60*time.Second),
			SessionRefreshAfter: 22 * time.Minute,
			StartBackoff:        30 * time.Second,
			ChatSyncInterval:    secondsEnv("CHAT_SYNC_SECONDS", 30*time.Second),
			OutboxBatch:         20,
			OutboxMaxAttempts:   3,
		},
		Blacklist: BlacklistConfig{
			CompHours:       intEnv("BLACKLIST_COMP_HOURS", 5),
			CompUnitMinutes: intEnv("BLACKLIST_COMP_UNIT_MINUTES", 60),
		},
		Reaper: ReaperConfig{
			CheckInterval:       secondsEnv("FUNPAY_RENTAL_CHECK_SECONDS", 30*time.Second),
			RemindBefore:        time.Duration(intEnv("RENTAL_EXPIRE_REMIND_MINUTES", 10)) * time.Minute,
			PauseMax:            time.Hour,
			MatchDelayExpire:    boolEnv("DOTA_MATCH_DELAY_EXPIRE", false),
			MatchGrace:          time.Duration(intEnv("DOTA_MATCH_GRACE_MINUTES", 90)) * time.Minute,
			MatchRecheck:        time.Minute,
			DeauthorizeOnExpire: boolEnv("AUTO_STEAM_DEAUTHORIZE_ON_EXPIRE", false),
		},
		DataEncryptionKey: os.Getenv("DATA_ENCRYPTION_KEY"),
		RedisURL:          os.Getenv("REDIS_URL"),
		SteamBridgeURL:    os.Getenv("STEAM_BRIDGE_URL"),
		SteamWorkerURL:    os.Getenv("STEAM_WORKER_URL"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		GroqModel:         getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

// secondsEnv parses a float number of seconds, so FUNPAY_POLL_SECONDS=1.5
// works as documented.
func secondsEnv(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return time.Duration(f * float64(time.Second))
}

func boolEnv(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
