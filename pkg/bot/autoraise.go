package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// raiseInterval spaces successful raise rounds; the marketplace allows a
// raise roughly every four hours per category.
const raiseInterval = 4 * time.Hour

// maybeRaiseLots bumps the seller's lots when auto-raise is on and the
// cooldown has passed. A rate-limit response moves the next attempt to the
// server-suggested time.
func (b *Bot) maybeRaiseLots() {
	if time.Now().Before(b.raiseNext) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if !b.deps.Settings.GetBool(ctx, b.userID, services.SettingAutoRaise, true) {
		// Re-check the switch on the normal cadence, not every tick.
		b.raiseNext = time.Now().Add(time.Minute)
		return
	}

	categories, err := b.mc().GetSortedCategories(ctx)
	if err != nil {
		b.log.Warn("Category list fetch failed", "error", err)
		b.raiseNext = time.Now().Add(5 * time.Minute)
		return
	}
	b.markCallOK()

	wanted := b.raiseFilter(ctx)
	b.raiseNext = time.Now().Add(raiseInterval)

	for _, cat := range categories {
		if b.stopped() {
			return
		}
		if wanted != nil {
			if _, ok := wanted[cat.ID]; !ok {
				continue
			}
		}
		if err := b.mc().RaiseLots(ctx, cat.ID); err != nil {
			if rl, ok := funpay.AsRateLimited(err); ok {
				b.raiseNext = time.Now().Add(rl.Wait)
				b.log.Info("Raise rate limited", "category_id", cat.ID, "wait", rl.Wait)
				return
			}
			b.log.Warn("Raise failed", "category_id", cat.ID, "error", err)
			continue
		}
		b.markCallOK()
		b.log.Info("Lots raised", "category_id", cat.ID, "category", cat.Name)
	}
}

// raiseFilter returns the configured category whitelist, nil meaning all.
func (b *Bot) raiseFilter(ctx context.Context) map[int]struct{} {
	raw := b.deps.Settings.Get(ctx, b.userID, services.SettingAutoRaiseCats, "")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	wanted := make(map[int]struct{})
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && id > 0 {
			wanted[id] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return nil
	}
	return wanted
}
