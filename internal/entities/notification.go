package entities

import (
	"errors"
	"time"
)

type Audience string

const (
	AudienceCustomer Audience = "CUSTOMER"
	AudienceShop     Audience = "SHOP"
)

type NotificationType string

const (
	NotificationOrder  NotificationType = "order"
	NotificationChat   NotificationType = "chat"
	NotificationReview NotificationType = "review"
	NotificationShop   NotificationType = "shop"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification belongs to exactly one recipient. When DedupeKey is set,
// (RecipientID, DedupeKey) is unique and a duplicate insert is a no-op.
// Only the Read flag is mutated after creation.
type Notification struct {
	ID          string
	RecipientID string
	Audience    Audience
	Type        NotificationType
	EventCode   string
	OrderUID    string
	ShopID      string
	ThreadID    string
	Title       string
	Message     string
	Link        string
	Read        bool
	DedupeKey   string
	CreatedAt   time.Time
}
