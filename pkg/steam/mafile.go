// Package steam adapts the Steam side of a rental: guard-code generation
// from the mobile-authenticator payload and remote session deauthorization
// through the worker bridge.
package steam

import (
	"encoding/json"
	"errors"
	"fmt"
)

// minSteamID64 is the lowest valid 64-bit SteamID; anything below it is a
// parse artifact, not an account id.
const minSteamID64 = uint64(70e15)

// MaFile is the Steam mobile authenticator payload attached to an account.
type MaFile struct {
	SharedSecret   string `json:"shared_secret"`
	IdentitySecret string `json:"identity_secret"`
	AccountName    string `json:"account_name"`
	DeviceID       string `json:"device_id"`
	SteamID        uint64 `json:"SteamID"`
	Session        struct {
		SteamID uint64 `json:"SteamID"`
	} `json:"Session"`
}

// ErrNoSteamID is returned when the payload carries no usable SteamID64.
var ErrNoSteamID = errors.New("steam: mafile has no valid SteamID64")

// ParseMaFile decodes an authenticator payload.
func ParseMaFile(raw string) (*MaFile, error) {
	var mf MaFile
	if err := json.Unmarshal([]byte(raw), &mf); err != nil {
		return nil, fmt.Errorf("steam: parse mafile: %w", err)
	}
	if mf.SharedSecret == "" {
		return nil, errors.New("steam: mafile missing shared_secret")
	}
	return &mf, nil
}

// SteamID64 returns the account's SteamID64, preferring the session value.
func (m *MaFile) SteamID64() (uint64, error) {
	if m.Session.SteamID >= minSteamID64 {
		return m.Session.SteamID, nil
	}
	if m.SteamID >= minSteamID64 {
		return m.SteamID, nil
	}
	return 0, ErrNoSteamID
}
