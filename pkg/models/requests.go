// Package models contains cross-package value types and request structs
// exchanged between the API layer and the services.
package models

// CreateWorkspaceRequest creates a marketplace workspace (token + proxy).
type CreateWorkspaceRequest struct {
	UserID    int    `json:"-"`
	Label     string `json:"label"`
	Token     string `json:"token"`
	ProxyURI  string `json:"proxy_uri"`
	ProxyUser string `json:"proxy_user"`
	ProxyPass string `json:"proxy_pass"`
	IsDefault bool   `json:"is_default"`
}

// UpdateWorkspaceRequest edits a workspace. Nil fields are left unchanged.
type UpdateWorkspaceRequest struct {
	Label     *string `json:"label"`
	Token     *string `json:"token"`
	ProxyURI  *string `json:"proxy_uri"`
	ProxyUser *string `json:"proxy_user"`
	ProxyPass *string `json:"proxy_pass"`
	IsDefault *bool   `json:"is_default"`
}

// CreateAccountRequest registers a rentable credential.
type CreateAccountRequest struct {
	UserID                int    `json:"-"`
	WorkspaceID           int    `json:"workspace_id"`
	DisplayName           string `json:"display_name"`
	Login                 string `json:"login"`
	Password              string `json:"password"`
	MaFileJSON            string `json:"mafile_json"`
	MMR                   int    `json:"mmr"`
	RentalDurationMinutes int    `json:"rental_duration_minutes"`
	LowPriority           bool   `json:"low_priority"`
}

// UpdateAccountRequest edits an account. Nil fields are left unchanged.
type UpdateAccountRequest struct {
	DisplayName           *string `json:"display_name"`
	Login                 *string `json:"login"`
	Password              *string `json:"password"`
	MaFileJSON            *string `json:"mafile_json"`
	MMR                   *int    `json:"mmr"`
	RentalDurationMinutes *int    `json:"rental_duration_minutes"`
	LowPriority           *bool   `json:"low_priority"`
	AccountFrozen         *bool   `json:"account_frozen"`
}

// CreateLotRequest maps a marketplace lot number to an account.
type CreateLotRequest struct {
	UserID      int    `json:"-"`
	WorkspaceID int    `json:"workspace_id"`
	LotNumber   string `json:"lot_number"`
	AccountID   int    `json:"account_id"`
	LotURL      string `json:"lot_url"`
}

// RegisterRequest creates a dashboard user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates a dashboard user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
