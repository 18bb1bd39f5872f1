package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// processedActions are the terminal outcomes that mark an order handled;
// a replayed ORDER_PURCHASED with any of these on record is dropped.
var processedActions = []orderevent.Action{
	orderevent.ActionIssued,
	orderevent.ActionExtended,
	orderevent.ActionReplaceAssign,
	orderevent.ActionBusy,
	orderevent.ActionUnmapped,
	orderevent.ActionBlacklisted,
	orderevent.ActionAutoUnblacklist,
}

func orderEventBase(b *Bot, order funpay.OrderInfo, action orderevent.Action) services.OrderEventInput {
	return services.OrderEventInput{
		WorkspaceID: b.workspaceID,
		UserID:      b.userID,
		OrderID:     order.OrderID,
		Owner:       order.Buyer,
		Amount:      order.Amount,
		Price:       order.Price,
		Action:      action,
	}
}

// handleOrderPaid is the order intake decision tree.
func (b *Bot) handleOrderPaid(ctx context.Context, order funpay.OrderInfo, chatID string) {
	log := b.log.With("order_id", order.OrderID, "buyer", order.Buyer)

	processed, err := b.deps.Orders.WasProcessed(ctx, b.workspaceID, order.OrderID, processedActions...)
	if err != nil {
		log.Error("Failed idempotency check", "error", err)
		return
	}
	if processed {
		log.Info("Order already processed, skipping")
		return
	}

	amount := order.Amount
	if amount <= 0 {
		amount = 1
	}
	lotNumber := funpay.ParseLotNumber(order.Description)

	record := func(action orderevent.Action, in services.OrderEventInput) {
		in.Action = action
		if in.LotNumber == "" {
			in.LotNumber = lotNumber
		}
		if _, err := b.deps.Orders.Record(ctx, in); err != nil {
			log.Error("Failed to record order event", "action", action, "error", err)
		}
	}

	base := orderEventBase(b, order, orderevent.ActionPaid)
	record(orderevent.ActionPaid, base)

	// 1. No lot number in the description.
	if lotNumber == "" {
		record(orderevent.ActionUnmapped, base)
		b.send(ctx, chatID, replyContactAdmin)
		b.notify(services.NotifyUnmappedLot,
			fmt.Sprintf("Order %s: no lot number in description %q.", order.OrderID, order.Description))
		return
	}

	// 2. Blacklist: paid minutes accumulate toward automatic restoration.
	blocked, err := b.deps.Blacklist.IsBlacklisted(ctx, b.workspaceID, b.userID, order.Buyer)
	if err != nil {
		log.Error("Blacklist check failed", "error", err)
		return
	}
	if blocked {
		b.handleBlacklistedOrder(ctx, order, chatID, lotNumber, amount, record)
		return
	}

	// 3–4. Lot mapping.
	lot, err := b.deps.Lots.Resolve(ctx, b.workspaceID, b.userID, lotNumber)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			record(orderevent.ActionUnmapped, base)
			b.send(ctx, chatID, replyUnmappedLot)
			b.notify(services.NotifyUnmappedLot,
				fmt.Sprintf("Order %s: lot %s is not mapped to an account.", order.OrderID, lotNumber))
			return
		}
		log.Error("Lot resolve failed", "error", err)
		return
	}

	acc, err := b.deps.Accounts.GetByID(ctx, lot.AccountID)
	if err != nil {
		log.Error("Mapped account missing", "account_id", lot.AccountID, "error", err)
		record(orderevent.ActionUnmapped, base)
		b.send(ctx, chatID, replyUnmappedLot)
		return
	}

	minutes := acc.RentalDurationMinutes * amount
	sameBuyer := acc.Owner != nil && services.OwnerKey(*acc.Owner) == services.OwnerKey(order.Buyer)

	// 5. A payment following !продлить extends the rental the hint points
	// at, even when the paid lot maps to a different account.
	if !sameBuyer {
		if held := b.hintedRental(ctx, order.Buyer); held != nil {
			b.extendRental(ctx, order, chatID, held, minutes, record)
			return
		}
	}

	// Unusable or taken: replacement search.
	if !sameBuyer && (acc.Owner != nil || acc.AccountFrozen || acc.RentalFrozen || acc.LowPriority) {
		b.handleReplacement(ctx, order, chatID, lotNumber, acc, minutes, record)
		return
	}

	// 6a. Same buyer paid again: extension.
	if sameBuyer && acc.Owner != nil {
		b.extendHints.Delete(services.OwnerKey(order.Buyer))
		b.extendRental(ctx, order, chatID, acc, minutes, record)
		return
	}

	// 6b. Fresh assignment; the timer stays parked until the first !код.
	assigned, err := b.deps.Accounts.Assign(ctx, acc.ID, order.Buyer, order.OrderID, minutes)
	if err != nil {
		if errors.Is(err, services.ErrNoFreeAccount) {
			// Lost the race: someone grabbed it between the read and the lock.
			b.handleReplacement(ctx, order, chatID, lotNumber, acc, minutes, record)
			return
		}
		log.Error("Assignment failed", "error", err)
		return
	}
	login, password, _, err := b.deps.Accounts.Credentials(assigned)
	if err != nil {
		log.Error("Failed to decrypt credentials", "error", err)
		return
	}
	in := base
	in.AccountID = assigned.ID
	in.AccountName = assigned.DisplayName
	in.RentalMinutes = minutes
	record(orderevent.ActionIssued, in)
	b.send(ctx, chatID, replyIssued(assigned, login, password, minutes))
	b.confirmAndWatch(ctx, order, minutes)
}

// extendRental adds the paid minutes to a live rental and confirms the
// order.
func (b *Bot) extendRental(ctx context.Context, order funpay.OrderInfo, chatID string, acc *ent.Account, minutes int, record func(orderevent.Action, services.OrderEventInput)) {
	extended, err := b.deps.Accounts.Extend(ctx, acc.ID, minutes)
	if err != nil {
		b.log.Error("Extension failed", "order_id", order.OrderID, "error", err)
		return
	}
	in := orderEventBase(b, order, orderevent.ActionExtended)
	in.AccountID = acc.ID
	in.AccountName = acc.DisplayName
	in.RentalMinutes = minutes
	record(orderevent.ActionExtended, in)
	b.send(ctx, chatID, replyExtended(minutes, remainingFor(extended)))
	b.confirmAndWatch(ctx, order, minutes)
}

// hintedRental resolves a pending !продлить hint to the buyer's live
// rental; the hint is consumed either way. Prefers the rental mapped to
// the hinted lot, falling back to the buyer's only rental.
func (b *Bot) hintedRental(ctx context.Context, buyer string) *ent.Account {
	hintedLot, ok := b.extendHints.Take(services.OwnerKey(buyer))
	if !ok {
		return nil
	}
	rentals, err := b.deps.Accounts.RentalsByOwner(ctx, b.workspaceID, buyer)
	if err != nil || len(rentals) == 0 {
		return nil
	}
	for _, acc := range rentals {
		lots, err := b.deps.Lots.ForAccount(ctx, acc.ID)
		if err != nil {
			continue
		}
		for _, lot := range lots {
			if lot.LotNumber == hintedLot {
				return acc
			}
		}
	}
	return rentals[0]
}

func (b *Bot) handleBlacklistedOrder(ctx context.Context, order funpay.OrderInfo, chatID, lotNumber string, amount int, record func(orderevent.Action, services.OrderEventInput)) {
	unit := b.deps.Cfg.Blacklist.CompUnitMinutes
	paidNow := unit * amount

	in := orderEventBase(b, order, orderevent.ActionBlacklistComp)
	in.LotNumber = lotNumber
	in.RentalMinutes = paidNow
	record(orderevent.ActionBlacklistComp, in)

	total, err := b.deps.Orders.SumBlacklistComp(ctx, b.workspaceID, b.userID, order.Buyer, 365*24*time.Hour)
	if err != nil {
		b.log.Error("Failed to sum blacklist compensation", "error", err)
		return
	}

	threshold := b.deps.Cfg.Blacklist.Threshold()
	if total >= threshold {
		if err := b.deps.Blacklist.AutoRemove(ctx, b.workspaceID, b.userID, order.Buyer, order.OrderID, total); err != nil {
			b.log.Error("Auto-unblacklist failed", "error", err)
			return
		}
		unblk := orderEventBase(b, order, orderevent.ActionAutoUnblacklist)
		unblk.RentalMinutes = total
		record(orderevent.ActionAutoUnblacklist, unblk)
		b.send(ctx, chatID, replyUnblacklisted)
		return
	}

	record(orderevent.ActionBlacklisted, orderEventBase(b, order, orderevent.ActionBlacklisted))
	b.deps.Blacklist.LogBlockedOrder(ctx, b.userID, order.Buyer, order.OrderID)
	b.send(ctx, chatID, replyBlacklistBlocked(total, threshold))
}

// handleReplacement looks for a substitute: same-lot free accounts first,
// then the MMR band around the busy account.
func (b *Bot) handleReplacement(ctx context.Context, order funpay.OrderInfo, chatID, lotNumber string, busy *ent.Account, minutes int, record func(orderevent.Action, services.OrderEventInput)) {
	replacement := b.findSameLotFree(ctx, lotNumber, busy.ID)
	if replacement == nil {
		found, err := b.deps.Accounts.FindReplacement(ctx, b.workspaceID, busy.ID, busy.Mmr)
		if err != nil && !errors.Is(err, services.ErrNoFreeAccount) {
			b.log.Error("Replacement search failed", "error", err)
			return
		}
		replacement = found
	}

	if replacement == nil {
		record(orderevent.ActionBusy, orderEventBase(b, order, orderevent.ActionBusy))
		b.send(ctx, chatID, replyNoFree)
		b.notify(services.NotifyNoFreeAccount,
			fmt.Sprintf("Order %s: lot %s busy and no replacement available.", order.OrderID, lotNumber))
		return
	}

	assigned, err := b.deps.Accounts.Assign(ctx, replacement.ID, order.Buyer, order.OrderID, minutes)
	if err != nil {
		b.log.Error("Replacement assignment failed", "error", err)
		return
	}
	login, password, _, err := b.deps.Accounts.Credentials(assigned)
	if err != nil {
		b.log.Error("Failed to decrypt replacement credentials", "error", err)
		return
	}
	in := orderEventBase(b, order, orderevent.ActionReplaceAssign)
	in.AccountID = assigned.ID
	in.AccountName = assigned.DisplayName
	in.LotNumber = lotNumber
	in.RentalMinutes = minutes
	record(orderevent.ActionReplaceAssign, in)
	b.send(ctx, chatID, replyReplacement(assigned, login, password, minutes))
	b.confirmAndWatch(ctx, order, minutes)
}

// findSameLotFree returns a usable free account mapped to the same lot.
func (b *Bot) findSameLotFree(ctx context.Context, lotNumber string, excludeID int) *ent.Account {
	if lotNumber == "" {
		return nil
	}
	lot, err := b.deps.Lots.Resolve(ctx, b.workspaceID, b.userID, lotNumber)
	if err != nil {
		return nil
	}
	if lot.AccountID == excludeID {
		return nil
	}
	acc, err := b.deps.Accounts.GetByID(ctx, lot.AccountID)
	if err != nil {
		return nil
	}
	if acc.Owner != nil || acc.AccountFrozen || acc.RentalFrozen || acc.LowPriority {
		return nil
	}
	return acc
}

// confirmAndWatch finalizes a fulfilled order: best-effort marketplace
// confirmation plus the auto-ticket watcher.
func (b *Bot) confirmAndWatch(ctx context.Context, order funpay.OrderInfo, minutes int) {
	if err := b.mc().Confirm(ctx, order.OrderID); err != nil {
		b.log.Warn("Order confirm failed", "order_id", order.OrderID, "error", err)
	} else {
		b.markCallOK()
	}
	b.scheduleAutoTicket(order.OrderID, time.Duration(minutes)*time.Minute)
}

// handleFeedback grants the review bonus once per order. Only a five-star
// review qualifies.
func (b *Bot) handleFeedback(ctx context.Context, fb funpay.Feedback, chatID string) {
	if fb.OrderID == "" || fb.Rating != 5 {
		return
	}
	bonusMinutes := b.deps.Settings.GetInt(ctx, b.userID, services.SettingReviewBonusMin, 60)
	if bonusMinutes <= 0 {
		return
	}

	buyer := fb.Buyer
	if buyer == "" {
		if last, err := b.deps.Orders.LastForOrder(ctx, b.workspaceID, fb.OrderID); err == nil {
			buyer = last.Owner
		}
	}
	if buyer == "" {
		return
	}

	_, err := b.deps.Reviews.Claim(ctx, b.workspaceID, b.userID, fb.OrderID, buyer, fb.Rating, fb.Text)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return
		}
		b.log.Error("Review claim failed", "order_id", fb.OrderID, "error", err)
		return
	}

	balance, err := b.deps.Bonus.Adjust(ctx, b.workspaceID, b.userID, buyer, bonusMinutes, "review bonus", fb.OrderID)
	if err != nil {
		b.log.Error("Review bonus credit failed", "order_id", fb.OrderID, "error", err)
		return
	}
	in := services.OrderEventInput{
		WorkspaceID:   b.workspaceID,
		UserID:        b.userID,
		OrderID:       fb.OrderID,
		Owner:         buyer,
		RentalMinutes: bonusMinutes,
		Action:        orderevent.ActionReviewBonus,
	}
	if _, err := b.deps.Orders.Record(ctx, in); err != nil {
		b.log.Warn("Failed to log review bonus", "error", err)
	}
	if chatID != "" {
		b.send(ctx, chatID, replyReviewBonus(bonusMinutes, balance))
	}
}

// handleFeedbackDeleted takes the bonus back when the review disappears.
func (b *Bot) handleFeedbackDeleted(ctx context.Context, fb funpay.Feedback, chatID string) {
	if fb.OrderID == "" {
		return
	}
	rr, err := b.deps.Reviews.Revoke(ctx, fb.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return
		}
		b.log.Error("Review revoke failed", "order_id", fb.OrderID, "error", err)
		return
	}

	granted := b.grantedBonusFor(ctx, fb.OrderID)
	if granted <= 0 {
		return
	}
	balance, err := b.deps.Bonus.Adjust(ctx, b.workspaceID, b.userID, rr.Owner, -granted, "review deleted", fb.OrderID)
	if err != nil {
		b.log.Error("Review bonus revert failed", "order_id", fb.OrderID, "error", err)
		return
	}
	in := services.OrderEventInput{
		WorkspaceID:   b.workspaceID,
		UserID:        b.userID,
		OrderID:       fb.OrderID,
		Owner:         rr.Owner,
		RentalMinutes: granted,
		Action:        orderevent.ActionReviewBonusRevert,
	}
	if _, err := b.deps.Orders.Record(ctx, in); err != nil {
		b.log.Warn("Failed to log review bonus revert", "error", err)
	}
	if chatID != "" {
		b.send(ctx, chatID, replyBonusReverted(granted, balance))
	}
}

// grantedBonusFor reads the originally granted bonus from the ledger so a
// later settings change cannot skew the revert.
func (b *Bot) grantedBonusFor(ctx context.Context, orderID string) int {
	events, err := b.deps.Orders.History(ctx, b.userID, services.HistoryFilter{
		WorkspaceID: b.workspaceID,
		OrderID:     orderID,
		Action:      string(orderevent.ActionReviewBonus),
		Limit:       1,
	})
	if err != nil || len(events) == 0 {
		return 0
	}
	return events[0].RentalMinutes
}

func parseAccountID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
