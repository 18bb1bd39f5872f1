package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
)

// reaperLoop watches rented accounts: pause auto-expiry, freeze notices,
// near-expiry reminders and the expiry itself.
func (b *Bot) reaperLoop() {
	defer b.wg.Done()

	for !b.stopped() {
		deferring := b.reapOnce()

		interval := b.deps.Cfg.Reaper.CheckInterval
		if deferring {
			// Shorter rescan while an expiry is parked behind a running match.
			interval = b.deps.Cfg.Reaper.MatchRecheck
		}
		if !b.sleep(interval) {
			return
		}
	}
}

// reapOnce runs one scan; reports whether any expiry is being deferred.
func (b *Bot) reapOnce() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	accounts, err := b.deps.Accounts.RentedInWorkspace(ctx, b.workspaceID)
	if err != nil {
		b.log.Error("Reaper scan failed", "error", err)
		return false
	}

	deferring := false
	for _, acc := range accounts {
		if b.stopped() {
			return deferring
		}
		if b.reapAccount(ctx, acc) {
			deferring = true
		}
	}
	return deferring
}

func (b *Bot) reapAccount(ctx context.Context, acc *ent.Account) (deferring bool) {
	owner := ""
	if acc.Owner != nil {
		owner = *acc.Owner
	}
	chatID := b.buyerChat(ctx, owner)

	// Pause auto-expiry: the clock resumes and the paused span is not billed.
	if acc.RentalFrozen && acc.RentalFrozenAt != nil &&
		time.Since(*acc.RentalFrozenAt) >= b.deps.Cfg.Reaper.PauseMax {
		resumed, err := b.deps.Accounts.Resume(ctx, acc.ID)
		if err != nil {
			b.log.Error("Pause auto-expiry failed", "account_id", acc.ID, "error", err)
		} else {
			acc = resumed
			b.send(ctx, chatID, replyPauseExpired())
		}
	}

	// Admin freeze transitions are announced once per flip.
	prev, seen := b.frozenCache[acc.ID]
	b.frozenCache[acc.ID] = acc.AccountFrozen
	if seen && prev != acc.AccountFrozen {
		if acc.AccountFrozen {
			b.send(ctx, chatID, replyFrozenNotice)
		} else {
			b.send(ctx, chatID, replyUnfrozenNotice)
		}
	}

	if acc.RentalStart == nil || acc.RentalFrozen {
		b.clearExpiryState(acc.ID)
		return false
	}

	remaining := remainingFor(acc)
	deadline := acc.RentalStart.Add(time.Duration(acc.RentalDurationMinutes) * time.Minute)

	if remaining > 0 {
		if remaining <= b.deps.Cfg.Reaper.RemindBefore {
			key := fmt.Sprintf("%d:%d", acc.ID, deadline.Unix())
			if _, dup := b.reminders.Get(key); !dup {
				b.reminders.Put(key, "1")
				b.send(ctx, chatID, replyExpireSoon(remaining))
			}
		}
		b.clearExpiryState(acc.ID)
		return false
	}

	// Expired. Optionally wait out a running match before pulling the
	// account from under the buyer.
	if b.deps.Cfg.Reaper.MatchDelayExpire && b.inMatch(ctx, acc) {
		since, ok := b.expireDelaySince[acc.ID]
		if !ok {
			since = time.Now()
			b.expireDelaySince[acc.ID] = since
		}
		if time.Since(since) < b.deps.Cfg.Reaper.MatchGrace {
			if _, told := b.matchNotified[acc.ID]; !told {
				b.matchNotified[acc.ID] = struct{}{}
				b.send(ctx, chatID, replyMatchDeferred)
			}
			return true
		}
	}

	b.expireRental(ctx, acc, chatID)
	return false
}

// inMatch asks the presence bridge whether the account sits in a game.
func (b *Bot) inMatch(ctx context.Context, acc *ent.Account) bool {
	if b.deps.Presence == nil {
		return false
	}
	_, _, mafileJSON, err := b.deps.Accounts.Credentials(acc)
	if err != nil {
		return false
	}
	mf, err := steam.ParseMaFile(mafileJSON)
	if err != nil {
		return false
	}
	steamID, err := mf.SteamID64()
	if err != nil {
		return false
	}
	return b.deps.Presence.Lookup(ctx, steamID).InMatch
}

// expireRental ends the rental: best-effort deauthorize, release, buyer
// notice with the order-confirm deep link.
func (b *Bot) expireRental(ctx context.Context, acc *ent.Account, chatID string) {
	orderID := ""
	if acc.RentalOrderID != nil {
		orderID = *acc.RentalOrderID
	}

	if b.deps.Cfg.Reaper.DeauthorizeOnExpire && b.deps.Deauth != nil {
		login, password, mafileJSON, err := b.deps.Accounts.Credentials(acc)
		if err == nil {
			if mf, perr := steam.ParseMaFile(mafileJSON); perr == nil {
				if _, derr := b.deps.Deauth.DeauthorizeAll(ctx, login, password, mf); derr != nil {
					b.log.Warn("Deauthorize on expiry failed", "account_id", acc.ID, "error", derr)
				}
			}
		}
	}

	if _, err := b.deps.Accounts.Release(ctx, acc.ID); err != nil {
		b.log.Error("Release on expiry failed", "account_id", acc.ID, "error", err)
		return
	}
	b.clearExpiryState(acc.ID)
	delete(b.frozenCache, acc.ID)

	b.notify(services.NotifyRentalExpired,
		fmt.Sprintf("Rental of %q expired, account released.", acc.DisplayName))
	b.send(ctx, chatID, replyExpired(orderID))
	b.log.Info("Rental expired", "account_id", acc.ID, "order_id", orderID)
}

func (b *Bot) clearExpiryState(accountID int) {
	delete(b.expireDelaySince, accountID)
	delete(b.matchNotified, accountID)
}

// buyerChat resolves the buyer's chat from the mirrored chat list; the
// marketplace addresses chats by peer name, so the owner itself is the
// fallback.
func (b *Bot) buyerChat(ctx context.Context, owner string) string {
	if owner == "" {
		return ""
	}
	chatID, err := b.deps.Chats.FindChatByPeer(ctx, b.workspaceID, owner)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			b.log.Warn("Chat lookup failed", "owner", owner, "error", err)
		}
		return owner
	}
	return chatID
}
