package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megafartCc/FunpayAutomationV2-sub000/ent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/ent/orderevent"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/models"
	"github.com/megafartCc/FunpayAutomationV2-sub000/pkg/timeutil"
)

// OrderService is the append-only order history ledger. Every decision the
// bot takes on an order lands here; idempotency checks and the dashboard
// history/stats views read it back.
type OrderService struct {
	client *ent.Client
}

// NewOrderService creates a new OrderService
func NewOrderService(client *ent.Client) *OrderService {
	return &OrderService{client: client}
}

// OrderEventInput captures one ledger row. Zero-valued optional fields are
// simply not set.
type OrderEventInput struct {
	WorkspaceID   int
	UserID        int
	OrderID       string
	Owner         string
	AccountID     int
	AccountName   string
	SteamID       int64
	LotNumber     string
	Amount        int
	Price         float64
	RentalMinutes int
	Action        orderevent.Action
}

// Record appends one event to the ledger.
func (s *OrderService) Record(httpCtx context.Context, in OrderEventInput) (*ent.OrderEvent, error) {
	if in.OrderID == "" && in.Action != orderevent.ActionAssign {
		return nil, NewValidationError("order_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.OrderEvent.Create().
		SetWorkspaceID(in.WorkspaceID).
		SetUserID(in.UserID).
		SetOrderID(in.OrderID).
		SetOwner(strings.ToLower(in.Owner)).
		SetAccountName(in.AccountName).
		SetLotNumber(in.LotNumber).
		SetAmount(in.Amount).
		SetPrice(in.Price).
		SetRentalMinutes(in.RentalMinutes).
		SetAction(in.Action)
	if in.AccountID > 0 {
		builder.SetAccountID(in.AccountID)
	}
	if in.SteamID > 0 {
		builder.SetSteamID(in.SteamID)
	}

	ev, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record order event: %w", err)
	}
	return ev, nil
}

// WasProcessed reports whether the order already has any of the given
// actions recorded. The paid handler uses it to drop duplicate events.
func (s *OrderService) WasProcessed(httpCtx context.Context, workspaceID int, orderID string, actions ...orderevent.Action) (bool, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.OrderEvent.Query().
		Where(orderevent.WorkspaceID(workspaceID), orderevent.OrderIDEQ(orderID))
	if len(actions) > 0 {
		q = q.Where(orderevent.ActionIn(actions...))
	}
	return q.Exist(ctx)
}

// LastForOrder returns the newest event of an order, or ErrNotFound.
func (s *OrderService) LastForOrder(httpCtx context.Context, workspaceID int, orderID string) (*ent.OrderEvent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ev, err := s.client.OrderEvent.Query().
		Where(orderevent.WorkspaceID(workspaceID), orderevent.OrderIDEQ(orderID)).
		Order(ent.Desc(orderevent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order event: %w", err)
	}
	return ev, nil
}

// SumBlacklistComp totals compensation minutes already granted to an owner
// inside the rolling window, so repeated blacklisting cannot farm minutes.
func (s *OrderService) SumBlacklistComp(httpCtx context.Context, workspaceID, userID int, owner string, window time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	events, err := s.client.OrderEvent.Query().
		Where(
			orderevent.WorkspaceID(workspaceID),
			orderevent.UserID(userID),
			orderevent.OwnerEQ(strings.ToLower(owner)),
			orderevent.ActionEQ(orderevent.ActionBlacklistComp),
			orderevent.CreatedAtGTE(time.Now().Add(-window)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum blacklist compensation: %w", err)
	}
	total := 0
	for _, ev := range events {
		total += ev.RentalMinutes
	}
	return total, nil
}

// HistoryFilter narrows the dashboard history listing.
type HistoryFilter struct {
	WorkspaceID int
	OrderID     string
	Owner       string
	Action      string
	Limit       int
	Offset      int
}

// History returns ledger rows for the dashboard, newest first.
func (s *OrderService) History(httpCtx context.Context, userID int, f HistoryFilter) ([]*ent.OrderEvent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.OrderEvent.Query().
		Where(orderevent.UserID(userID))
	if f.WorkspaceID > 0 {
		q = q.Where(orderevent.WorkspaceID(f.WorkspaceID))
	}
	if f.OrderID != "" {
		q = q.Where(orderevent.OrderIDContainsFold(f.OrderID))
	}
	if f.Owner != "" {
		q = q.Where(orderevent.OwnerContainsFold(f.Owner))
	}
	if f.Action != "" {
		q = q.Where(orderevent.ActionEQ(orderevent.Action(f.Action)))
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.Order(ent.Desc(orderevent.FieldID)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
}

// Stats aggregates the last `days` days of the ledger into daily buckets in
// marketplace time, oldest first.
func (s *OrderService) Stats(httpCtx context.Context, userID, days int) ([]models.StatsBucket, error) {
	if days <= 0 {
		days = 7
	}
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	since := timeutil.NowMarketplace().AddDate(0, 0, -days+1)
	dayStart := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, timeutil.MarketplaceZone)

	events, err := s.client.OrderEvent.Query().
		Where(
			orderevent.UserID(userID),
			orderevent.CreatedAtGTE(dayStart.UTC()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for stats: %w", err)
	}

	buckets := make([]models.StatsBucket, days)
	byPeriod := make(map[string]*models.StatsBucket, days)
	for i := 0; i < days; i++ {
		period := dayStart.AddDate(0, 0, i).Format("2006-01-02")
		buckets[i] = models.StatsBucket{Period: period}
		byPeriod[period] = &buckets[i]
	}

	for _, ev := range events {
		period := timeutil.ToMarketplace(ev.CreatedAt).Format("2006-01-02")
		b, ok := byPeriod[period]
		if !ok {
			continue
		}
		switch ev.Action {
		case orderevent.ActionPaid:
			b.Orders++
			b.Revenue += ev.Price
		case orderevent.ActionIssued:
			b.Issued++
			b.RentalMinutes += ev.RentalMinutes
		case orderevent.ActionExtended:
			b.Extended++
			b.RentalMinutes += ev.RentalMinutes
		case orderevent.ActionRefunded:
			b.Refunded++
		}
	}
	return buckets, nil
}
