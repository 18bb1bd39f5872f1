package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/setting"
)

// Well-known setting keys.
const (
	SettingAutoRaise        = "auto_raise_enabled"
	SettingAutoRaiseCats    = "auto_raise_categories"
	SettingAutoTicket       = "auto_ticket_enabled"
	SettingAutoConfirm      = "auto_confirm"
	SettingGreetingTemplate = "greeting_template"
	SettingReviewBonusMin   = "review_bonus_minutes"
)

// SettingsService stores per-user key/value preferences read by the bot
// loops and the dashboard.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Set upserts one key.
func (s *SettingsService) Set(httpCtx context.Context, userID int, key, value string) error {
	if key == "" {
		return NewValidationError("key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Setting.Create().
		SetUserID(userID).
		SetKey(key).
		SetValue(value).
		OnConflict(
			sql.ConflictColumns(setting.FieldUserID, setting.FieldKey),
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// Get returns one value, or the fallback when the key is unset.
func (s *SettingsService) Get(httpCtx context.Context, userID int, key, fallback string) string {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.Setting.Query().
		Where(setting.UserID(userID), setting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		return fallback
	}
	return row.Value
}

// GetBool interprets a stored value as a boolean flag.
func (s *SettingsService) GetBool(httpCtx context.Context, userID int, key string, fallback bool) bool {
	raw := s.Get(httpCtx, userID, key, strconv.FormatBool(fallback))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

// GetInt interprets a stored value as an integer.
func (s *SettingsService) GetInt(httpCtx context.Context, userID int, key string, fallback int) int {
	raw := s.Get(httpCtx, userID, key, strconv.Itoa(fallback))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// All returns every setting of a user as a map.
func (s *SettingsService) All(httpCtx context.Context, userID int) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Setting.Query().
		Where(setting.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}
