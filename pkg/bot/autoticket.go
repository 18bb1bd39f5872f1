package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// ticketDelay is how long after the rental window ends an unconfirmed
// order waits before the bot files a support ticket.
const ticketDelay = 24 * time.Hour

// ticketScheduler tracks one delayed watcher per order id.
type ticketScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newTicketScheduler() *ticketScheduler {
	return &ticketScheduler{timers: make(map[string]*time.Timer)}
}

// Schedule arms (or re-arms) the watcher for an order.
func (s *ticketScheduler) Schedule(orderID string, d time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[orderID]; ok {
		t.Stop()
	}
	s.timers[orderID] = time.AfterFunc(d, func() {
		s.Cancel(orderID)
		fire()
	})
}

// Cancel disarms the watcher; closed and refunded orders call this.
func (s *ticketScheduler) Cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[orderID]; ok {
		t.Stop()
		delete(s.timers, orderID)
	}
}

// CancelAll disarms everything on bot shutdown.
func (s *ticketScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// scheduleAutoTicket arms the watcher after an issue/extension. The
// setting defaults to on; a stored "false" disables it.
func (b *Bot) scheduleAutoTicket(orderID string, rental time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	enabled := b.deps.Settings.GetBool(ctx, b.userID, services.SettingAutoTicket, true)
	cancel()
	if !enabled {
		return
	}
	b.tickets.Schedule(orderID, rental+ticketDelay, func() {
		b.fireAutoTicket(orderID)
	})
}

// fireAutoTicket submits a support ticket if the order is still open.
func (b *Bot) fireAutoTicket(orderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	closed, err := b.deps.Orders.WasProcessed(ctx, b.workspaceID, orderID,
		orderevent.ActionClosed, orderevent.ActionRefunded)
	if err != nil {
		b.log.Error("Auto-ticket state check failed", "order_id", orderID, "error", err)
		return
	}
	if closed {
		return
	}

	body := b.ticketBody(ctx, orderID)
	if err := b.mc().SubmitSupportTicket(ctx, "order not confirmed", "seller", orderID, body, ""); err != nil {
		b.log.Warn("Auto-ticket submit failed", "order_id", orderID, "error", err)
		return
	}
	b.markCallOK()

	in := services.OrderEventInput{
		WorkspaceID: b.workspaceID,
		UserID:      b.userID,
		OrderID:     orderID,
		Action:      orderevent.ActionTicketAuto,
	}
	if _, err := b.deps.Orders.Record(ctx, in); err != nil {
		b.log.Warn("Failed to log auto-ticket", "order_id", orderID, "error", err)
	}
	b.notify(services.NotifyTicketFiled,
		fmt.Sprintf("Order %s: support ticket filed automatically (not confirmed 24h after rental end).", orderID))
}

// SubmitTicket files a manually composed support ticket through this
// bot's marketplace session and logs it in the order ledger.
func (b *Bot) SubmitTicket(ctx context.Context, topic, orderID, body string) error {
	if err := b.mc().SubmitSupportTicket(ctx, topic, "seller", orderID, body, ""); err != nil {
		return err
	}
	b.markCallOK()

	in := services.OrderEventInput{
		WorkspaceID: b.workspaceID,
		UserID:      b.userID,
		OrderID:     orderID,
		Action:      orderevent.ActionTicketAuto,
	}
	if _, err := b.deps.Orders.Record(ctx, in); err != nil {
		b.log.Warn("Failed to log support ticket", "order_id", orderID, "error", err)
	}
	return nil
}

// ticketBody asks the AI adapter for the ticket text, with a static
// fallback when the adapter is disabled or errors out.
func (b *Bot) ticketBody(ctx context.Context, orderID string) string {
	fallback := fmt.Sprintf(
		"Заказ #%s выполнен: аккаунт выдан и срок аренды истёк более 24 часов назад, но покупатель не подтвердил заказ. Прошу подтвердить заказ со стороны площадки.",
		orderID)
	if b.deps.AI == nil {
		return fallback
	}
	body, err := b.deps.AI.Generate(ctx,
		"Ты пишешь короткое обращение в поддержку торговой площадки от имени продавца. Вежливо, по делу, на русском.",
		fmt.Sprintf("Заказ #%s: аренда выдана и завершена, покупатель не подтверждает заказ более 24 часов. Попроси площадку подтвердить заказ.", orderID))
	if err != nil || body == "" {
		return fallback
	}
	return body
}
