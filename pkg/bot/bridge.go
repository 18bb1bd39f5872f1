package bot

import (
	"context"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/services"
)

// History prefetch limits: the marketplace dislikes bursts.
const (
	prefetchBatch    = 4
	prefetchPerTick  = 8
	prefetchPauseDur = 500 * time.Millisecond
)

// bridgeLoop drains the dashboard outbox every tick and mirrors the chat
// list on the slower sync interval. Lot auto-raise rides on the same loop.
func (b *Bot) bridgeLoop() {
	defer b.wg.Done()

	var lastSync time.Time
	for !b.stopped() {
		b.drainOutbox()

		if time.Since(lastSync) >= b.deps.Cfg.Bot.ChatSyncInterval {
			b.syncChats()
			lastSync = time.Now()
		}

		b.maybeRaiseLots()

		if !b.sleep(b.deps.Cfg.Bot.PollInterval) {
			return
		}
	}
}

// drainOutbox sends pending dashboard replies oldest-first.
func (b *Bot) drainOutbox() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rows, err := b.deps.Chats.ClaimPending(ctx, b.workspaceID, b.deps.Cfg.Bot.OutboxBatch)
	if err != nil {
		b.log.Error("Outbox claim failed", "error", err)
		return
	}

	for _, row := range rows {
		if b.stopped() {
			return
		}
		msg, err := b.mc().SendMessage(ctx, row.ChatID, row.Text)
		if err != nil {
			b.log.Warn("Outbox send failed", "outbox_id", row.ID, "chat_id", row.ChatID, "error", err)
			if merr := b.deps.Chats.MarkFailed(ctx, row.ID, b.deps.Cfg.Bot.OutboxMaxAttempts, err); merr != nil {
				b.log.Error("Failed to mark outbox row", "outbox_id", row.ID, "error", merr)
			}
			continue
		}
		b.markCallOK()
		if err := b.deps.Chats.MarkSent(ctx, row.ID); err != nil {
			b.log.Error("Failed to mark outbox row sent", "outbox_id", row.ID, "error", err)
		}
		if err := b.deps.Chats.SaveMessage(ctx, b.workspaceID, b.userID, *msg, true); err != nil {
			b.log.Warn("Failed to persist outbox message", "chat_id", row.ChatID, "error", err)
		}
		if err := b.deps.Chats.TouchSnapshot(ctx, b.workspaceID, row.ChatID, row.Text, msg.Time); err != nil {
			b.log.Warn("Failed to touch chat snapshot", "chat_id", row.ChatID, "error", err)
		}
		b.invalidateChatCache(row.ChatID)
	}
}

// syncChats mirrors the marketplace chat list and prefetches history for
// chats the mirror has never seen.
func (b *Bot) syncChats() {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	chats, err := b.mc().GetChats(ctx)
	if err != nil {
		b.log.Warn("Chat list fetch failed", "error", err)
		return
	}
	b.markCallOK()

	var toPrefetch []funpay.Chat
	for _, chat := range chats {
		if err := b.deps.Chats.UpsertSnapshot(ctx, b.workspaceID, b.userID, chat); err != nil {
			b.log.Warn("Chat snapshot upsert failed", "chat_id", chat.ID, "error", err)
			continue
		}
		if chat.Unread && isAdminCall(chat.LastMessageText) {
			b.flagAdminCall(ctx, chat)
		}
		if len(toPrefetch) < prefetchPerTick && b.needsHistory(ctx, chat.ID) {
			toPrefetch = append(toPrefetch, chat)
		}
	}
	b.invalidateChatCache("")

	for i, chat := range toPrefetch {
		if b.stopped() {
			return
		}
		if i > 0 && i%prefetchBatch == 0 {
			time.Sleep(prefetchPauseDur)
		}
		b.prefetchHistory(ctx, chat)
	}
}

func (b *Bot) needsHistory(ctx context.Context, chatID string) bool {
	history, err := b.deps.Chats.History(ctx, b.userID, b.workspaceID, chatID, 1)
	return err == nil && len(history) == 0
}

func (b *Bot) prefetchHistory(ctx context.Context, chat funpay.Chat) {
	messages, err := b.mc().GetChatHistory(ctx, chat.ID)
	if err != nil {
		b.log.Warn("History prefetch failed", "chat_id", chat.ID, "error", err)
		return
	}
	b.markCallOK()

	for _, msg := range messages {
		byBot := b.isOwnMessage(msg)
		if err := b.deps.Chats.SaveMessage(ctx, b.workspaceID, b.userID, msg, byBot); err != nil {
			b.log.Warn("Failed to persist history message", "chat_id", chat.ID, "error", err)
			return
		}
	}
	b.invalidateChatCache(chat.ID)
}

// flagAdminCall marks a chat whose last unread message calls the admin.
func (b *Bot) flagAdminCall(ctx context.Context, chat funpay.Chat) {
	if err := b.deps.Chats.RecordAdminCall(ctx, b.workspaceID, b.userID, chat.ID, chat.PeerName); err != nil {
		b.log.Warn("Failed to record admin call", "chat_id", chat.ID, "error", err)
		return
	}
	if err := b.deps.Chats.MarkAdminRequested(ctx, b.workspaceID, chat.ID, true); err != nil {
		b.log.Warn("Failed to flag chat", "chat_id", chat.ID, "error", err)
	}
	b.notify(services.NotifyAdminCall, "Buyer "+chat.PeerName+" calls the admin in chat "+chat.ID+".")
}

func isAdminCall(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(t, "!админ") || strings.HasPrefix(t, "!admin")
}
