package funpay

import "context"

// Client is the per-workspace marketplace session. The session is owned
// exclusively by its bot; no other goroutine may call these methods on the
// same instance.
type Client interface {
	// Bootstrap establishes (or refreshes) the session and returns the
	// session identity. Returns ErrUnauthorized when the token is dead.
	Bootstrap(ctx context.Context) (*Session, error)
	// Poll fetches the next batch of updates.
	Poll(ctx context.Context) ([]Event, error)
	// GetChats returns the chat list.
	GetChats(ctx context.Context) ([]Chat, error)
	// GetChatHistory returns the messages of one chat, oldest first.
	GetChatHistory(ctx context.Context, chatID string) ([]Message, error)
	// SendMessage posts text into a chat and returns the created message.
	SendMessage(ctx context.Context, chatID, text string) (*Message, error)
	// GetOrder fetches one order by id.
	GetOrder(ctx context.Context, orderID string) (*OrderInfo, error)
	// Confirm marks an order delivered. Best-effort.
	Confirm(ctx context.Context, orderID string) error
	// RaiseLots bumps all lots of a category. May return RateLimitedError.
	RaiseLots(ctx context.Context, categoryID int) error
	// GetBalance returns the configured price of a lot.
	GetBalance(ctx context.Context, lotID string) (float64, error)
	// GetSortedCategories lists the seller's categories by name.
	GetSortedCategories(ctx context.Context) ([]Category, error)
	// GetSortedSubcategories lists the seller's lot sections by name.
	GetSortedSubcategories(ctx context.Context) ([]Subcategory, error)
	// SubmitSupportTicket files a support ticket through the support form.
	SubmitSupportTicket(ctx context.Context, topic, role, orderID, body, key string) error
	// UpdateToken swaps the session token. Takes effect on the next
	// Bootstrap.
	UpdateToken(token string)
}
