package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/ai"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/steam"
)

// stockBatchLines caps how many lot lines go into one chat message.
const stockBatchLines = 8

// bonusSpendMinutes is the fixed wallet debit of one !бонус redemption.
const bonusSpendMinutes = 60

// defaultRentalMinutes is restored on !отмена.
const defaultRentalMinutes = 60

// handleMessage is the chat entry point: dedup, persistence, greeting and
// command dispatch.
func (b *Bot) handleMessage(ctx context.Context, msg funpay.Message) {
	if b.isOwnMessage(msg) {
		return
	}
	if b.dedup.Seen(msg.ChatID, msg.Author, msg.Text, msg.MessageID) {
		return
	}
	if err := b.deps.Chats.SaveMessage(ctx, b.workspaceID, b.userID, msg, false); err != nil {
		b.log.Warn("Failed to persist incoming message", "chat_id", msg.ChatID, "error", err)
	}
	b.invalidateChatCache(msg.ChatID)

	if msg.System {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	// A bare reply may complete a pending command from the same sender.
	if !strings.HasPrefix(text, "!") {
		if cmd, ok := b.pendingCommands.Take(pendingKey(msg.ChatID, msg.Author)); ok {
			b.runCommand(ctx, msg, cmd, strings.Fields(text))
			return
		}
		b.handleFreeText(ctx, msg, text)
		return
	}

	fields := strings.Fields(text)
	cmd := canonicalCommand(strings.ToLower(fields[0]))
	if cmd == "" {
		b.send(ctx, msg.ChatID, replyHelp)
		return
	}
	b.runCommand(ctx, msg, cmd, fields[1:])
}

// isOwnMessage filters the bot's and the seller's own messages echoed back
// by the long poll.
func (b *Bot) isOwnMessage(msg funpay.Message) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session != nil && strings.EqualFold(msg.Author, b.session.Username)
}

// canonicalCommand maps Cyrillic and Latin aliases to one internal name.
func canonicalCommand(raw string) string {
	switch raw {
	case "!сток", "!stock":
		return "stock"
	case "!акк", "!acc":
		return "account"
	case "!код", "!code":
		return "code"
	case "!продлить", "!extend":
		return "extend"
	case "!пауза", "!pause":
		return "pause"
	case "!продолжить", "!resume":
		return "resume"
	case "!админ", "!admin":
		return "admin"
	case "!лпзамена", "!replace", "!lpexchange":
		return "replace"
	case "!отмена", "!cancel":
		return "cancel"
	case "!бонус", "!bonus":
		return "bonus"
	case "!помощь", "!help":
		return "help"
	}
	return ""
}

func pendingKey(chatID, author string) string {
	return chatID + "\x00" + services.OwnerKey(author)
}

func (b *Bot) runCommand(ctx context.Context, msg funpay.Message, cmd string, args []string) {
	switch cmd {
	case "stock":
		b.cmdStock(ctx, msg)
	case "account":
		b.cmdAccount(ctx, msg, args)
	case "code":
		b.cmdCode(ctx, msg)
	case "extend":
		b.cmdExtend(ctx, msg, args)
	case "pause":
		b.cmdPause(ctx, msg, args)
	case "resume":
		b.cmdResume(ctx, msg, args)
	case "admin":
		b.cmdAdmin(ctx, msg)
	case "replace":
		b.cmdReplace(ctx, msg, args)
	case "cancel":
		b.cmdCancel(ctx, msg, args)
	case "bonus":
		b.cmdBonus(ctx, msg, args)
	case "help":
		b.send(ctx, msg.ChatID, replyHelp)
	}
}

// handleFreeText routes non-command messages through the intent
// classifier when the sender holds a rental; otherwise the message is
// just a regular chat line for the dashboard.
func (b *Bot) handleFreeText(ctx context.Context, msg funpay.Message, text string) {
	b.maybeGreet(ctx, msg)

	if b.deps.AI == nil {
		return
	}
	rentals := b.rentalsOf(ctx, msg.Author)
	if len(rentals) == 0 {
		return
	}
	switch b.deps.AI.Classify(ctx, text) {
	case ai.IntentGuardCode:
		b.cmdCode(ctx, msg)
	case ai.IntentTimeLeft:
		for _, acc := range rentals {
			b.send(ctx, msg.ChatID, replyRemaining(acc, remainingFor(acc)))
		}
	case ai.IntentExtend:
		b.cmdExtend(ctx, msg, nil)
	case ai.IntentHelp:
		b.send(ctx, msg.ChatID, replyHelp)
	}
}

// maybeGreet sends the configured greeting once per chat per bot run.
func (b *Bot) maybeGreet(ctx context.Context, msg funpay.Message) {
	b.mu.Lock()
	_, known := b.greetKnown[msg.ChatID]
	b.greetKnown[msg.ChatID] = struct{}{}
	b.mu.Unlock()
	if known {
		return
	}
	greeting := b.deps.Settings.Get(ctx, b.userID, services.SettingGreetingTemplate, "")
	if greeting == "" {
		return
	}
	b.send(ctx, msg.ChatID, greeting)
}

func (b *Bot) rentalsOf(ctx context.Context, author string) []*ent.Account {
	rentals, err := b.deps.Accounts.RentalsByOwner(ctx, b.workspaceID, author)
	if err != nil {
		b.log.Error("Failed to load rentals", "owner", author, "error", err)
		return nil
	}
	return rentals
}

// pickRental resolves the single rental a command targets. With several
// rentals and no id argument it stores a pending command and prompts for
// the id.
func (b *Bot) pickRental(ctx context.Context, msg funpay.Message, cmd, visible string, args []string) *ent.Account {
	rentals := b.rentalsOf(ctx, msg.Author)
	if len(rentals) == 0 {
		b.send(ctx, msg.ChatID, replyNoRental)
		return nil
	}
	if len(args) > 0 {
		if id := parseAccountID(args[0]); id > 0 {
			for _, acc := range rentals {
				if acc.ID == id {
					return acc
				}
			}
			b.send(ctx, msg.ChatID, replyNoRental)
			return nil
		}
	}
	if len(rentals) == 1 {
		return rentals[0]
	}
	b.pendingCommands.Put(pendingKey(msg.ChatID, msg.Author), cmd)
	b.send(ctx, msg.ChatID, replyChooseRental(rentals, visible))
	return nil
}

// cmdStock lists lots whose mapped account is free, not frozen and not
// low-priority, in batches.
func (b *Bot) cmdStock(ctx context.Context, msg funpay.Message) {
	lots, err := b.deps.Lots.List(ctx, b.userID, b.workspaceID)
	if err != nil {
		b.log.Error("Failed to list lots", "error", err)
		return
	}

	var lines []string
	for _, lot := range lots {
		acc, err := b.deps.Accounts.GetByID(ctx, lot.AccountID)
		if err != nil {
			continue
		}
		if acc.Owner != nil || acc.AccountFrozen || acc.LowPriority {
			continue
		}
		if lot.LotURL != "" {
			lines = append(lines, fmt.Sprintf("%s — %s", acc.DisplayName, lot.LotURL))
		} else {
			lines = append(lines, acc.DisplayName)
		}
	}
	if len(lines) == 0 {
		b.send(ctx, msg.ChatID, replyNoStock)
		return
	}
	for start := 0; start < len(lines); start += stockBatchLines {
		end := start + stockBatchLines
		if end > len(lines) {
			end = len(lines)
		}
		b.send(ctx, msg.ChatID, strings.Join(lines[start:end], "\n"))
	}
}

// cmdAccount re-sends credentials and the remaining time.
func (b *Bot) cmdAccount(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "account", "!акк", args)
	if acc == nil {
		return
	}
	login, password, _, err := b.deps.Accounts.Credentials(acc)
	if err != nil {
		b.log.Error("Failed to decrypt credentials", "account_id", acc.ID, "error", err)
		b.send(ctx, msg.ChatID, replyContactAdmin)
		return
	}
	b.send(ctx, msg.ChatID,
		replyCredentials(acc, login, password)+"\n"+replyRemaining(acc, remainingFor(acc)))
}

// cmdCode starts the rental clock on first use and replies with a guard
// code per active rental.
func (b *Bot) cmdCode(ctx context.Context, msg funpay.Message) {
	rentals := b.rentalsOf(ctx, msg.Author)
	if len(rentals) == 0 {
		b.send(ctx, msg.ChatID, replyNoRental)
		return
	}

	for _, acc := range rentals {
		if acc.AccountFrozen {
			b.send(ctx, msg.ChatID, replyFrozenAdmin)
			continue
		}
		if acc.RentalFrozen {
			b.send(ctx, msg.ChatID, replyPaused)
			continue
		}

		acc, started, err := b.deps.Accounts.StartRental(ctx, acc.ID)
		if err != nil {
			b.log.Error("Failed to start rental clock", "account_id", acc.ID, "error", err)
			continue
		}
		if started {
			b.send(ctx, msg.ChatID, replyTimerStarted(acc.RentalDurationMinutes))
		}

		_, _, mafileJSON, err := b.deps.Accounts.Credentials(acc)
		if err != nil {
			b.log.Error("Failed to decrypt mafile", "account_id", acc.ID, "error", err)
			b.send(ctx, msg.ChatID, replyContactAdmin)
			continue
		}
		mf, err := steam.ParseMaFile(mafileJSON)
		if err != nil {
			b.log.Error("Bad mafile payload", "account_id", acc.ID, "error", err)
			b.send(ctx, msg.ChatID, replyContactAdmin)
			continue
		}
		code, err := b.deps.Guard.ComputeCode(ctx, mf)
		if err != nil {
			b.log.Error("Guard code generation failed", "account_id", acc.ID, "error", err)
			b.send(ctx, msg.ChatID, replyContactAdmin)
			continue
		}
		b.send(ctx, msg.ChatID, replyGuardCode(acc, code))
	}
}

// cmdExtend quotes the lot URL the buyer must pay; the actual extension
// rides in through the normal order flow.
func (b *Bot) cmdExtend(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "extend", "!продлить", args)
	if acc == nil {
		return
	}
	lotURL := ""
	if lots, err := b.deps.Lots.ForAccount(ctx, acc.ID); err == nil && len(lots) > 0 {
		lotURL = lots[0].LotURL
		b.extendHints.Put(services.OwnerKey(msg.Author), lots[0].LotNumber)
	}
	b.send(ctx, msg.ChatID, replyExtendHint(lotURL))
}

func (b *Bot) cmdPause(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "pause", "!пауза", args)
	if acc == nil {
		return
	}
	if _, err := b.deps.Accounts.Pause(ctx, acc.ID); err != nil {
		if services.IsValidationError(err) {
			b.send(ctx, msg.ChatID, replyPauseNeeded)
			return
		}
		b.log.Error("Pause failed", "account_id", acc.ID, "error", err)
		return
	}
	b.send(ctx, msg.ChatID, replyPauseOK)
}

func (b *Bot) cmdResume(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "resume", "!продолжить", args)
	if acc == nil {
		return
	}
	if !acc.RentalFrozen {
		b.send(ctx, msg.ChatID, replyNotPaused)
		return
	}
	if _, err := b.deps.Accounts.Resume(ctx, acc.ID); err != nil {
		b.log.Error("Resume failed", "account_id", acc.ID, "error", err)
		return
	}
	b.send(ctx, msg.ChatID, replyResumeOK)
}

// cmdAdmin flags the chat for the dashboard.
func (b *Bot) cmdAdmin(ctx context.Context, msg funpay.Message) {
	if err := b.deps.Chats.RecordAdminCall(ctx, b.workspaceID, b.userID, msg.ChatID, msg.Author); err != nil {
		b.log.Error("Failed to record admin call", "chat_id", msg.ChatID, "error", err)
	}
	if err := b.deps.Chats.MarkAdminRequested(ctx, b.workspaceID, msg.ChatID, true); err != nil {
		b.log.Warn("Failed to flag chat", "chat_id", msg.ChatID, "error", err)
	}
	b.notify(services.NotifyAdminCall,
		fmt.Sprintf("Buyer %s calls the admin in chat %s.", msg.Author, msg.ChatID))
	b.send(ctx, msg.ChatID, replyAdminCalled)
}

// cmdReplace swaps a low-priority account for a substitute within the
// first 10 minutes of the rental. The replacement inherits the running
// clock and duration.
func (b *Bot) cmdReplace(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "replace", "!лпзамена", args)
	if acc == nil {
		return
	}
	if acc.RentalStart == nil || time.Since(*acc.RentalStart) > replaceWindow {
		b.send(ctx, msg.ChatID, replyReplaceLate)
		return
	}

	ownerKey := services.OwnerKey(msg.Author)
	b.mu.Lock()
	last, limited := b.replaceTimes[ownerKey]
	b.mu.Unlock()
	if limited && time.Since(last) < replaceRateLimit {
		b.send(ctx, msg.ChatID, replyReplaceLimit)
		return
	}

	replacement, err := b.deps.Accounts.FindReplacement(ctx, b.workspaceID, acc.ID, acc.Mmr)
	if err != nil {
		if errors.Is(err, services.ErrNoFreeAccount) {
			b.send(ctx, msg.ChatID, replyNoFree)
			return
		}
		b.log.Error("Replacement search failed", "error", err)
		return
	}

	swapped, err := b.deps.Accounts.TransferRental(ctx, acc.ID, replacement.ID)
	if err != nil {
		b.log.Error("Rental transfer failed", "from", acc.ID, "to", replacement.ID, "error", err)
		b.send(ctx, msg.ChatID, replyNoFree)
		return
	}
	b.mu.Lock()
	b.replaceTimes[ownerKey] = time.Now()
	b.mu.Unlock()

	login, password, _, err := b.deps.Accounts.Credentials(swapped)
	if err != nil {
		b.log.Error("Failed to decrypt replacement credentials", "error", err)
		b.send(ctx, msg.ChatID, replyContactAdmin)
		return
	}
	b.send(ctx, msg.ChatID, replyReplacement(swapped, login, password, swapped.RentalDurationMinutes))
}

// cmdCancel ends the rental early: best-effort deauthorize, release,
// duration reset to the default unit.
func (b *Bot) cmdCancel(ctx context.Context, msg funpay.Message, args []string) {
	acc := b.pickRental(ctx, msg, "cancel", "!отмена", args)
	if acc == nil {
		return
	}

	if b.deps.Deauth != nil {
		login, password, mafileJSON, err := b.deps.Accounts.Credentials(acc)
		if err == nil {
			if mf, perr := steam.ParseMaFile(mafileJSON); perr == nil {
				if _, derr := b.deps.Deauth.DeauthorizeAll(ctx, login, password, mf); derr != nil {
					b.log.Warn("Deauthorize failed", "account_id", acc.ID, "error", derr)
				}
			}
		}
	}

	if _, err := b.deps.Accounts.Release(ctx, acc.ID); err != nil {
		b.log.Error("Release failed", "account_id", acc.ID, "error", err)
		return
	}
	if err := b.deps.Accounts.SetDuration(ctx, acc.ID, defaultRentalMinutes); err != nil {
		b.log.Warn("Failed to reset rental duration", "account_id", acc.ID, "error", err)
	}
	b.send(ctx, msg.ChatID, replyCancelOK)
}

// cmdBonus shows the wallet, or debits 60 minutes onto a chosen rental.
func (b *Bot) cmdBonus(ctx context.Context, msg funpay.Message, args []string) {
	if len(args) == 0 {
		balance, err := b.deps.Bonus.Balance(ctx, b.workspaceID, b.userID, msg.Author)
		if err != nil {
			b.log.Error("Failed to read bonus balance", "error", err)
			return
		}
		b.send(ctx, msg.ChatID, replyBonusBalance(balance))
		return
	}

	acc := b.pickRental(ctx, msg, "bonus", "!бонус", args)
	if acc == nil {
		return
	}
	balance, err := b.deps.Bonus.Balance(ctx, b.workspaceID, b.userID, msg.Author)
	if err != nil {
		b.log.Error("Failed to read bonus balance", "error", err)
		return
	}
	if balance < bonusSpendMinutes {
		b.send(ctx, msg.ChatID, replyBonusEmpty)
		return
	}

	orderID := ""
	if acc.RentalOrderID != nil {
		orderID = *acc.RentalOrderID
	}
	newBalance, err := b.deps.Bonus.Adjust(ctx, b.workspaceID, b.userID, msg.Author,
		-bonusSpendMinutes, "bonus spend", orderID)
	if err != nil {
		b.log.Error("Bonus debit failed", "error", err)
		return
	}
	if _, err := b.deps.Accounts.Extend(ctx, acc.ID, bonusSpendMinutes); err != nil {
		b.log.Error("Bonus extension failed", "account_id", acc.ID, "error", err)
		// Give the minutes back rather than losing them.
		if _, rerr := b.deps.Bonus.Adjust(ctx, b.workspaceID, b.userID, msg.Author,
			bonusSpendMinutes, "bonus refund", orderID); rerr != nil {
			b.log.Error("Bonus refund failed", "error", rerr)
		}
		return
	}
	b.send(ctx, msg.ChatID, replyBonusApplied(bonusSpendMinutes, newBalance))
}
