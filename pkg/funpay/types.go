// Package funpay is the marketplace client: a token-authenticated scraping
// session behind a per-workspace proxy. The Client interface is what the
// rest of the system programs against; HTTPClient is the real
// implementation and Fake the test double.
package funpay

import "time"

// EventType tags a long-poll update.
type EventType string

// Event types delivered by the runner long-poll.
const (
	EventNewMessage            EventType = "NEW_MESSAGE"
	EventOrderPurchased        EventType = "ORDER_PURCHASED"
	EventOrderConfirmed        EventType = "ORDER_CONFIRMED"
	EventOrderConfirmedByAdmin EventType = "ORDER_CONFIRMED_BY_ADMIN"
	EventRefund                EventType = "REFUND"
	EventPartialRefund         EventType = "PARTIAL_REFUND"
	EventRefundByAdmin         EventType = "REFUND_BY_ADMIN"
	EventNewFeedback           EventType = "NEW_FEEDBACK"
	EventFeedbackChanged       EventType = "FEEDBACK_CHANGED"
	EventFeedbackDeleted       EventType = "FEEDBACK_DELETED"
)

// Event is one update from the marketplace.
type Event struct {
	Type     EventType
	Message  *Message
	Order    *OrderInfo
	Feedback *Feedback
}

// Message is a chat message, either from the buyer or a system notice.
type Message struct {
	ChatID    string
	MessageID string
	Author    string
	Text      string
	Time      time.Time
	System    bool
}

// OrderInfo carries the order fields present in system messages and
// order pages.
type OrderInfo struct {
	OrderID     string
	Buyer       string
	Description string
	Amount      int
	Price       float64
	Status      string
}

// Feedback is a buyer review attached to an order.
type Feedback struct {
	OrderID string
	Buyer   string
	Rating  int
	Text    string
}

// Chat is one row of the marketplace chat list.
type Chat struct {
	ID              string
	PeerName        string
	LastMessageText string
	LastMessageTime time.Time
	Unread          bool
}

// Session is the bootstrapped marketplace session identity.
type Session struct {
	UserID    int64
	Username  string
	CSRFToken string
}

// Category is a marketplace game category used for lot raising.
type Category struct {
	ID   int
	Name string
}

// Subcategory is a lot section inside a category.
type Subcategory struct {
	ID         int
	CategoryID int
	Name       string
	URL        string
}
