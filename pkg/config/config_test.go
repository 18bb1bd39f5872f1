package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 1500*time.Millisecond, cfg.Bot.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Bot.ReconcileInterval)
	assert.Equal(t, 30*time.Second, cfg.Reaper.CheckInterval)
	assert.Equal(t, 10*time.Minute, cfg.Reaper.RemindBefore)
	assert.Equal(t, time.Hour, cfg.Reaper.PauseMax)
	assert.Equal(t, 90*time.Minute, cfg.Reaper.MatchGrace)
	assert.Equal(t, 300, cfg.Blacklist.Threshold())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FUNPAY_POLL_SECONDS", "2.5")
	t.Setenv("BLACKLIST_COMP_HOURS", "2")
	t.Setenv("BLACKLIST_COMP_UNIT_MINUTES", "30")
	t.Setenv("DOTA_MATCH_DELAY_EXPIRE", "true")

	cfg := Load()

	assert.Equal(t, 2500*time.Millisecond, cfg.Bot.PollInterval)
	assert.Equal(t, 60, cfg.Blacklist.Threshold())
	assert.True(t, cfg.Reaper.MatchDelayExpire)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("FUNPAY_POLL_SECONDS", "not-a-number")
	t.Setenv("RENTAL_EXPIRE_REMIND_MINUTES", "xx")

	cfg := Load()

	assert.Equal(t, 1500*time.Millisecond, cfg.Bot.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Reaper.RemindBefore)
}
