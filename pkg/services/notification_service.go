package services

import (
	"context"
	"fmt"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/notification"
)

// Notification kinds surfaced on the dashboard.
const (
	NotifyAdminCall     = "admin_call"
	NotifyUnauthorized  = "workspace_unauthorized"
	NotifyNoFreeAccount = "no_free_account"
	NotifyUnmappedLot   = "unmapped_lot"
	NotifyRentalExpired = "rental_expired"
	NotifyTicketFiled   = "ticket_filed"
)

// NotificationService stores dashboard notifications.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Push records one notification. Failures are returned but callers in bot
// loops typically just log them.
func (s *NotificationService) Push(httpCtx context.Context, userID, workspaceID int, kind, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Notification.Create().
		SetUserID(userID).
		SetWorkspaceID(workspaceID).
		SetKind(kind).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	return nil
}

// List returns notifications, unread first, newest first.
func (s *NotificationService) List(httpCtx context.Context, userID int, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.Notification.Query().
		Where(notification.UserID(userID))
	if unreadOnly {
		q = q.Where(notification.Read(false))
	}
	return q.Order(ent.Asc(notification.FieldRead), ent.Desc(notification.FieldID)).
		Limit(limit).
		All(ctx)
}

// MarkRead flags the given notifications as read; an empty slice marks all.
func (s *NotificationService) MarkRead(httpCtx context.Context, userID int, ids []int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	upd := s.client.Notification.Update().
		Where(notification.UserID(userID))
	if len(ids) > 0 {
		upd = upd.Where(notification.IDIn(ids...))
	}
	if _, err := upd.SetRead(true).Save(ctx); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
