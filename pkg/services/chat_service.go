package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/admincall"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatmessage"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatoutbox"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/chatsnapshot"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/funpay"
)

// ChatService persists the chat mirror: per-chat snapshots for the list
// view, individual messages for history, the outbox queue for replies
// composed on the dashboard, and admin-call markers.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// UpsertSnapshot refreshes one chat's list entry.
func (s *ChatService) UpsertSnapshot(httpCtx context.Context, workspaceID, userID int, chat funpay.Chat) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.ChatSnapshot.Create().
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetChatID(chat.ID).
		SetPeerName(chat.PeerName).
		SetLastMessageText(chat.LastMessageText).
		SetLastMessageTime(chat.LastMessageTime).
		SetUnread(chat.Unread).
		OnConflict(
			sql.ConflictColumns(chatsnapshot.FieldWorkspaceID, chatsnapshot.FieldChatID),
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert chat snapshot: %w", err)
	}
	return nil
}

// TouchSnapshot refreshes only the last-message columns after an outbound
// send, leaving peer name and admin flags alone.
func (s *ChatService) TouchSnapshot(httpCtx context.Context, workspaceID int, chatID, text string, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ChatSnapshot.Update().
		Where(chatsnapshot.WorkspaceID(workspaceID), chatsnapshot.ChatID(chatID)).
		SetLastMessageText(text).
		SetLastMessageTime(at).
		SetUnread(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch chat snapshot: %w", err)
	}
	return nil
}

// FindChatByPeer resolves the chat a buyer talks in, for proactive
// notices from the reaper.
func (s *ChatService) FindChatByPeer(httpCtx context.Context, workspaceID int, peerName string) (string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	snap, err := s.client.ChatSnapshot.Query().
		Where(chatsnapshot.WorkspaceID(workspaceID), chatsnapshot.PeerNameEqualFold(peerName)).
		Order(ent.Desc(chatsnapshot.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find chat by peer: %w", err)
	}
	return snap.ChatID, nil
}

// MarkAdminRequested flags a chat in the list view and bumps its unread
// counter for the dashboard badge.
func (s *ChatService) MarkAdminRequested(httpCtx context.Context, workspaceID int, chatID string, requested bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upd := s.client.ChatSnapshot.Update().
		Where(
			chatsnapshot.WorkspaceID(workspaceID),
			chatsnapshot.ChatIDEQ(chatID),
		).
		SetAdminRequested(requested)
	if requested {
		upd.AddAdminUnreadCount(1)
	} else {
		upd.SetAdminUnreadCount(0)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to mark chat admin-requested: %w", err)
	}
	return nil
}

// ListSnapshots returns a user's chats ordered by recency.
func (s *ChatService) ListSnapshots(httpCtx context.Context, userID, workspaceID, limit int) ([]*ent.ChatSnapshot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.ChatSnapshot.Query().
		Where(chatsnapshot.UserID(userID))
	if workspaceID > 0 {
		q = q.Where(chatsnapshot.WorkspaceID(workspaceID))
	}
	return q.Order(ent.Desc(chatsnapshot.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
}

// SaveMessage stores one chat message. Duplicate (workspace, chat, message)
// rows are ignored, which makes history prefetch idempotent.
func (s *ChatService) SaveMessage(httpCtx context.Context, workspaceID, userID int, msg funpay.Message, byBot bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.ChatMessage.Create().
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetChatID(msg.ChatID).
		SetMessageID(msg.MessageID).
		SetAuthor(msg.Author).
		SetText(msg.Text).
		SetSentTime(msg.Time).
		SetByBot(byBot).
		OnConflict(
			sql.ConflictColumns(
				chatmessage.FieldWorkspaceID,
				chatmessage.FieldChatID,
				chatmessage.FieldMessageID,
			),
		).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// History returns the stored messages of one chat, oldest first.
func (s *ChatService) History(httpCtx context.Context, userID, workspaceID int, chatID string, limit int) ([]*ent.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 500 {
		limit = 100
	}
	msgs, err := s.client.ChatMessage.Query().
		Where(
			chatmessage.UserID(userID),
			chatmessage.WorkspaceID(workspaceID),
			chatmessage.ChatIDEQ(chatID),
		).
		Order(ent.Desc(chatmessage.FieldSentTime), ent.Desc(chatmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	// Reverse to oldest-first for the UI.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// Enqueue queues an outgoing message composed on the dashboard. The bot's
// outbox drain delivers it through the workspace session.
func (s *ChatService) Enqueue(httpCtx context.Context, workspaceID, userID int, chatID, text string) (*ent.ChatOutbox, error) {
	if text == "" {
		return nil, NewValidationError("text", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.ChatOutbox.Create().
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetChatID(chatID).
		SetText(text).
		SetStatus(chatoutbox.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue outbox message: %w", err)
	}
	return row, nil
}

// ClaimPending locks and returns up to limit pending outbox rows for one
// workspace. SKIP LOCKED keeps concurrent drains from double-sending.
func (s *ChatService) ClaimPending(httpCtx context.Context, workspaceID, limit int) ([]*ent.ChatOutbox, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.ChatOutbox.Query().
		Where(
			chatoutbox.WorkspaceID(workspaceID),
			chatoutbox.StatusEQ(chatoutbox.StatusPending),
		).
		Order(ent.Asc(chatoutbox.FieldID)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox rows: %w", err)
	}

	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	if len(ids) > 0 {
		if _, err := tx.ChatOutbox.Update().
			Where(chatoutbox.IDIn(ids...)).
			AddAttempts(1).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to bump outbox attempts: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rows, nil
}

// MarkSent finalizes one delivered outbox row.
func (s *ChatService) MarkSent(httpCtx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ChatOutbox.UpdateOneID(id).
		SetStatus(chatoutbox.StatusSent).
		SetSentAt(time.Now()).
		ClearLastError().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark outbox row sent: %w", err)
	}
	return nil
}

// MarkFailed records a delivery failure; rows past maxAttempts go to the
// failed status, the rest return to pending for the next drain.
func (s *ChatService) MarkFailed(httpCtx context.Context, id, maxAttempts int, sendErr error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.ChatOutbox.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load outbox row: %w", err)
	}
	status := chatoutbox.StatusPending
	if row.Attempts >= maxAttempts {
		status = chatoutbox.StatusFailed
	}
	msg := sendErr.Error()
	if len(msg) > 500 {
		msg = msg[:500]
	}
	_, err = s.client.ChatOutbox.UpdateOneID(id).
		SetStatus(status).
		SetLastError(msg).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark outbox row failed: %w", err)
	}
	return nil
}

// RecordAdminCall upserts the admin-call marker for a chat and bumps its
// counter.
func (s *ChatService) RecordAdminCall(httpCtx context.Context, workspaceID, userID int, chatID, owner string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.AdminCall.Query().
		Where(
			admincall.WorkspaceID(workspaceID),
			admincall.ChatIDEQ(chatID),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		_, err = s.client.AdminCall.Create().
			SetWorkspaceID(workspaceID).
			SetUserID(userID).
			SetChatID(chatID).
			SetOwner(owner).
			SetCount(1).
			SetLastCalledAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create admin call: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load admin call: %w", err)
	}
	_, err = s.client.AdminCall.UpdateOneID(existing.ID).
		AddCount(1).
		SetOwner(owner).
		SetLastCalledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update admin call: %w", err)
	}
	return nil
}

// ListAdminCalls returns a user's admin-call markers, most recent first.
func (s *ChatService) ListAdminCalls(httpCtx context.Context, userID int) ([]*ent.AdminCall, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	return s.client.AdminCall.Query().
		Where(admincall.UserID(userID)).
		Order(ent.Desc(admincall.FieldLastCalledAt)).
		All(ctx)
}

// ResolveAdminCall clears the marker once the dashboard user replied.
func (s *ChatService) ResolveAdminCall(httpCtx context.Context, userID int, workspaceID int, chatID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.AdminCall.Delete().
		Where(
			admincall.UserID(userID),
			admincall.WorkspaceID(workspaceID),
			admincall.ChatIDEQ(chatID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve admin call: %w", err)
	}
	return s.MarkAdminRequested(httpCtx, workspaceID, chatID, false)
}
