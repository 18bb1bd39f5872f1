package bot

import (
	"context"
	"errors"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/workspace"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// eventLoop is the main marketplace poll loop.
func (b *Bot) eventLoop() {
	defer b.wg.Done()

	for !b.stopped() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		b.refreshSessionIfNeeded(ctx)

		events, err := b.mc().Poll(ctx)
		cancel()
		if err != nil {
			b.handlePollError(err)
			continue
		}
		b.markCallOK()

		for _, ev := range events {
			if b.stopped() {
				return
			}
			b.dispatch(ev)
		}

		if !b.sleep(b.deps.Cfg.Bot.PollInterval) {
			return
		}
	}
}

func (b *Bot) handlePollError(err error) {
	switch {
	case errors.Is(err, funpay.ErrUnauthorized):
		b.log.Warn("Marketplace session unauthorized")
		b.setStatus(workspace.StatusUnauthorized, "marketplace token rejected")
		b.notify(services.NotifyUnauthorized, "Marketplace token rejected; update it on the dashboard.")
		// Back off, then try to re-bootstrap with whatever token is stored
		// (it may have been rotated from the dashboard meanwhile).
		if b.sleep(b.deps.Cfg.Bot.StartBackoff) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := b.bootstrap(ctx); err == nil {
				b.setStatus(workspace.StatusOk, "")
			}
			cancel()
		}
	case funpay.IsTransient(err):
		b.log.Warn("Transient poll error", "error", err)
		b.sleep(b.deps.Cfg.Bot.PollInterval)
	default:
		if rl, ok := funpay.AsRateLimited(err); ok {
			b.log.Warn("Rate limited", "wait", rl.Wait)
			b.sleep(rl.Wait)
			return
		}
		b.log.Error("Poll failed", "error", err)
		b.sleep(b.deps.Cfg.Bot.PollInterval)
	}
}

// dispatch routes one marketplace event.
func (b *Bot) dispatch(ev funpay.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch ev.Type {
	case funpay.EventNewMessage:
		if ev.Message != nil {
			b.handleMessage(ctx, *ev.Message)
		}
	case funpay.EventOrderPurchased:
		if ev.Order != nil {
			b.handleOrderPaid(ctx, *ev.Order, messageChat(ev))
		}
	case funpay.EventOrderConfirmed, funpay.EventOrderConfirmedByAdmin:
		if ev.Order != nil {
			b.handleOrderClosed(ctx, *ev.Order)
		}
	case funpay.EventRefund, funpay.EventPartialRefund, funpay.EventRefundByAdmin:
		if ev.Order != nil {
			b.handleRefund(ctx, *ev.Order, messageChat(ev))
		}
	case funpay.EventNewFeedback, funpay.EventFeedbackChanged:
		if ev.Feedback != nil {
			b.handleFeedback(ctx, *ev.Feedback, messageChat(ev))
		}
	case funpay.EventFeedbackDeleted:
		if ev.Feedback != nil {
			b.handleFeedbackDeleted(ctx, *ev.Feedback, messageChat(ev))
		}
	}
}

// messageChat returns the chat the event arrived in, when known.
func messageChat(ev funpay.Event) string {
	if ev.Message != nil {
		return ev.Message.ChatID
	}
	return ""
}

func (b *Bot) handleOrderClosed(ctx context.Context, order funpay.OrderInfo) {
	_, err := b.deps.Orders.Record(ctx, orderEventBase(b, order, orderevent.ActionClosed))
	if err != nil {
		b.log.Warn("Failed to log order close", "order_id", order.OrderID, "error", err)
	}
	b.tickets.Cancel(order.OrderID)
}

func (b *Bot) handleRefund(ctx context.Context, order funpay.OrderInfo, chatID string) {
	_, err := b.deps.Orders.Record(ctx, orderEventBase(b, order, orderevent.ActionRefunded))
	if err != nil {
		b.log.Warn("Failed to log refund", "order_id", order.OrderID, "error", err)
	}
	b.tickets.Cancel(order.OrderID)
}
