package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/rentique/rental-service/internal/entities"

	"github.com/google/uuid"
)

type NotificationRepo interface {
	// CreateNotification returns false when the (recipient, dedupe key)
	// pair already exists.
	CreateNotification(ctx context.Context, n entities.Notification) (bool, error)
	ListNotifications(ctx context.Context, recipientID string, limit int) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, id, recipientID string) error
}

// CustomerEvent is the customer-facing side channel: chat and review
// notifications share the dedupe-and-resolve contract of order events.
type CustomerEvent struct {
	RecipientID string
	Type        entities.NotificationType
	Code        string
	SubjectID   string
	Title       string
	Message     string
	OrderUID    string
	ShopID      string
	ThreadID    string
}

type notifier struct {
	logger        *slog.Logger
	repo          NotificationRepo
	shops         ShopRepo
	backofficeURL string
}

func NewNotifier(logger *slog.Logger, repo NotificationRepo, shops ShopRepo, backofficeURL string) *notifier {
	return &notifier{
		logger:        logger.With(slog.String("service", "notifier")),
		repo:          repo,
		shops:         shops,
		backofficeURL: backofficeURL,
	}
}

// OrderEvent resolves the shop owner behind an order and persists a
// SHOP-audience notification. An unresolvable shop or owner skips the
// dispatch silently: there is nothing to notify, and a missing
// notification must never fail the transition that triggered it.
func (n *notifier) OrderEvent(ctx context.Context, order entities.Order, ev Event) (bool, error) {
	if order.ShopID == "" {
		n.logger.DebugContext(ctx, "dispatch skipped, order has no shop", slog.String("order_uid", order.OrderUID))
		return false, nil
	}

	shop, err := n.shops.GetShopByID(ctx, order.ShopID)
	if errors.Is(err, entities.ErrShopNotFound) {
		n.logger.DebugContext(ctx, "dispatch skipped, shop not found", slog.String("shop_id", order.ShopID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve shop: %w", err)
	}
	if shop.OwnerID == "" {
		n.logger.DebugContext(ctx, "dispatch skipped, shop has no owner", slog.String("shop_id", shop.ShopID))
		return false, nil
	}

	return n.create(ctx, entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: shop.OwnerID,
		Audience:    entities.AudienceShop,
		Type:        entities.NotificationOrder,
		EventCode:   ev.Code,
		OrderUID:    order.OrderUID,
		ShopID:      shop.ShopID,
		Title:       ev.Title,
		Message:     ev.Message,
		Link:        n.orderLink(order.OrderUID),
		DedupeKey:   ev.DedupeKey,
		CreatedAt:   time.Now(),
	})
}

// ShopEvent notifies the owner of a shop about something that happened to
// the shop itself, such as an approval decision or a new review.
func (n *notifier) ShopEvent(ctx context.Context, shopID string, typ entities.NotificationType, code, subjectID, title, message string) (bool, error) {
	shop, err := n.shops.GetShopByID(ctx, shopID)
	if errors.Is(err, entities.ErrShopNotFound) {
		n.logger.DebugContext(ctx, "dispatch skipped, shop not found", slog.String("shop_id", shopID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve shop: %w", err)
	}
	if shop.OwnerID == "" {
		n.logger.DebugContext(ctx, "dispatch skipped, shop has no owner", slog.String("shop_id", shopID))
		return false, nil
	}

	return n.create(ctx, entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: shop.OwnerID,
		Audience:    entities.AudienceShop,
		Type:        typ,
		EventCode:   code,
		ShopID:      shop.ShopID,
		Title:       title,
		Message:     message,
		DedupeKey:   fmt.Sprintf("%s:%s", code, subjectID),
		CreatedAt:   time.Now(),
	})
}

// CustomerEvent persists a CUSTOMER-audience notification, deduplicated by
// (recipient, eventCode, subjectID).
func (n *notifier) CustomerEvent(ctx context.Context, ev CustomerEvent) (bool, error) {
	if ev.RecipientID == "" {
		n.logger.DebugContext(ctx, "dispatch skipped, no recipient", slog.String("event", ev.Code))
		return false, nil
	}

	return n.create(ctx, entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: ev.RecipientID,
		Audience:    entities.AudienceCustomer,
		Type:        ev.Type,
		EventCode:   ev.Code,
		OrderUID:    ev.OrderUID,
		ShopID:      ev.ShopID,
		ThreadID:    ev.ThreadID,
		Title:       ev.Title,
		Message:     ev.Message,
		DedupeKey:   fmt.Sprintf("%s:%s", ev.Code, ev.SubjectID),
		CreatedAt:   time.Now(),
	})
}

func (n *notifier) List(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, error) {
	return n.repo.ListNotifications(ctx, actor.UserID, limit)
}

func (n *notifier) MarkRead(ctx context.Context, actor entities.Actor, id string) error {
	return n.repo.MarkNotificationRead(ctx, id, actor.UserID)
}

func (n *notifier) create(ctx context.Context, record entities.Notification) (bool, error) {
	created, err := n.repo.CreateNotification(ctx, record)
	if err != nil {
		return false, err
	}

	if !created {
		notificationsDeduped.Inc()
		n.logger.DebugContext(ctx, "notification suppressed as duplicate",
			slog.String("recipient", record.RecipientID),
			slog.String("dedupe_key", record.DedupeKey),
		)
		return false, nil
	}

	notificationsCreated.WithLabelValues(string(record.Audience)).Inc()
	n.logger.DebugContext(ctx, "notification created",
		slog.String("recipient", record.RecipientID),
		slog.String("event", record.EventCode),
	)
	return true, nil
}

// orderLink degrades to an empty link rather than blocking dispatch.
func (n *notifier) orderLink(orderUID string) string {
	if n.backofficeURL == "" {
		return ""
	}
	link, err := url.JoinPath(n.backofficeURL, "orders", orderUID)
	if err != nil {
		return ""
	}
	return link
}
