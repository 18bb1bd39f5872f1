package models

// PresenceSnapshot is a point-in-time view of what a Steam account is doing.
type PresenceSnapshot struct {
	SteamID      uint64 `json:"steam_id"`
	InGame       bool   `json:"in_game"`
	InMatch      bool   `json:"in_match"`
	MatchSeconds int    `json:"match_seconds,omitempty"`
}

// Idle reports whether the account is neither in game nor in a match.
func (p PresenceSnapshot) Idle() bool {
	return !p.InGame && !p.InMatch
}
