package repo

import (
	"context"
	"fmt"

	"github.com/rentique/rental-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var notificationColumns = []string{
	"id", "recipient_id", "audience", "type", "event_code",
	"order_uid", "shop_id", "thread_id",
	"title", "message", "link", "read", "dedupe_key", "created_at",
}

// CreateNotification returns false when the (recipient, dedupe key) pair
// already exists. The unique index is the concurrency-safety mechanism;
// no application-level locking is involved.
func (r *postgresRepo) CreateNotification(ctx context.Context, n entities.Notification) (bool, error) {
	query, args := r.qb.Insert("notifications").
		Columns(notificationColumns...).
		Values(
			n.ID, n.RecipientID, string(n.Audience), string(n.Type), n.EventCode,
			nullString(n.OrderUID), nullString(n.ShopID), nullString(n.ThreadID),
			n.Title, nullString(n.Message), nullString(n.Link), n.Read,
			nullString(n.DedupeKey), n.CreatedAt,
		).
		Suffix("ON CONFLICT (recipient_id, dedupe_key) WHERE dedupe_key IS NOT NULL DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save notification: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check notification insert: %w", err)
	}
	return rows > 0, nil
}

func (r *postgresRepo) ListNotifications(ctx context.Context, recipientID string, limit int) ([]entities.Notification, error) {
	query, args := r.qb.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []Notification
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select notifications: %w", err)
	}

	result := make([]entities.Notification, 0, len(rows))
	for _, n := range rows {
		result = append(result, NotificationToEntity(n))
	}
	return result, nil
}

func (r *postgresRepo) MarkNotificationRead(ctx context.Context, id, recipientID string) error {
	query, args := r.qb.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id, "recipient_id": recipientID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}
