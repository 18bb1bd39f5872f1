package funpay

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Fake is an in-memory Client for tests. Events are queued with
// QueueEvent; everything sent through it is recorded.
type Fake struct {
	mu sync.Mutex

	Session      Session
	BootstrapErr error

	events    [][]Event
	chats     []Chat
	histories map[string][]Message
	orders    map[string]*OrderInfo

	Sent      []Message
	SendErr   error
	Confirmed []string
	Raised    []int
	RaiseErr  error
	Tickets   []string

	nextMsgID int64
	token     string
}

var _ Client = (*Fake)(nil)

// NewFake returns a fake client with a default session.
func NewFake() *Fake {
	return &Fake{
		Session:   Session{UserID: 1, Username: "seller", CSRFToken: "csrf"},
		histories: make(map[string][]Message),
		orders:    make(map[string]*OrderInfo),
	}
}

// QueueEvent schedules one batch of events for the next Poll.
func (f *Fake) QueueEvent(events ...Event) {
	f.mu.Lock()
	f.events = append(f.events, events)
	f.mu.Unlock()
}

// SetOrder registers an order returned by GetOrder.
func (f *Fake) SetOrder(o *OrderInfo) {
	f.mu.Lock()
	f.orders[o.OrderID] = o
	f.mu.Unlock()
}

// SetChats sets the chat list.
func (f *Fake) SetChats(chats []Chat) {
	f.mu.Lock()
	f.chats = chats
	f.mu.Unlock()
}

// SetHistory sets one chat's history.
func (f *Fake) SetHistory(chatID string, msgs []Message) {
	f.mu.Lock()
	f.histories[chatID] = msgs
	f.mu.Unlock()
}

// SentTexts returns all message texts sent so far.
func (f *Fake) SentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Sent))
	for i, m := range f.Sent {
		out[i] = m.Text
	}
	return out
}

// Bootstrap implements Client.
func (f *Fake) Bootstrap(context.Context) (*Session, error) {
	if f.BootstrapErr != nil {
		return nil, f.BootstrapErr
	}
	s := f.Session
	return &s, nil
}

// Poll implements Client.
func (f *Fake) Poll(context.Context) ([]Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return nil, nil
	}
	batch := f.events[0]
	f.events = f.events[1:]
	return batch, nil
}

// GetChats implements Client.
func (f *Fake) GetChats(context.Context) ([]Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Chat(nil), f.chats...), nil
}

// GetChatHistory implements Client.
func (f *Fake) GetChatHistory(_ context.Context, chatID string) ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.histories[chatID]...), nil
}

// SendMessage implements Client.
func (f *Fake) SendMessage(_ context.Context, chatID, text string) (*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return nil, f.SendErr
	}
	f.nextMsgID++
	msg := Message{
		ChatID:    chatID,
		MessageID: "fake-" + strconv.FormatInt(f.nextMsgID, 10),
		Author:    f.Session.Username,
		Text:      text,
		Time:      time.Now(),
	}
	f.Sent = append(f.Sent, msg)
	f.histories[chatID] = append(f.histories[chatID], msg)
	return &msg, nil
}

// GetOrder implements Client.
func (f *Fake) GetOrder(_ context.Context, orderID string) (*OrderInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("funpay: order %s not found", orderID)
	}
	cp := *o
	return &cp, nil
}

// Confirm implements Client.
func (f *Fake) Confirm(_ context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Confirmed = append(f.Confirmed, orderID)
	return nil
}

// RaiseLots implements Client.
func (f *Fake) RaiseLots(_ context.Context, categoryID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RaiseErr != nil {
		return f.RaiseErr
	}
	f.Raised = append(f.Raised, categoryID)
	return nil
}

// GetBalance implements Client.
func (f *Fake) GetBalance(context.Context, string) (float64, error) {
	return 0, nil
}

// GetSortedCategories implements Client.
func (f *Fake) GetSortedCategories(context.Context) ([]Category, error) {
	return []Category{{ID: 41, Name: "Dota 2"}}, nil
}

// GetSortedSubcategories implements Client.
func (f *Fake) GetSortedSubcategories(context.Context) ([]Subcategory, error) {
	return nil, nil
}

// SubmitSupportTicket implements Client.
func (f *Fake) SubmitSupportTicket(_ context.Context, topic, _, orderID, body, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Tickets = append(f.Tickets, fmt.Sprintf("%s:%s:%s", topic, orderID, body))
	return nil
}

// UpdateToken implements Client.
func (f *Fake) UpdateToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

// Token returns the last token passed to UpdateToken.
func (f *Fake) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}
