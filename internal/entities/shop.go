package entities

import (
	"errors"
	"time"
)

type ShopStatus string

const (
	ShopPending  ShopStatus = "PENDING"
	ShopApproved ShopStatus = "APPROVED"
	ShopRejected ShopStatus = "REJECTED"
)

var ErrShopNotFound = errors.New("shop not found")

// Shop is a vendor account listing garments for rent. Approval fields are
// mutated only by admin actions: approval sets ApprovedBy and ApprovedAt
// together and clears RejectReason; rejection sets RejectReason and leaves
// ApprovedBy/ApprovedAt from a prior approval cycle untouched.
type Shop struct {
	ShopID       string
	OwnerID      string
	Name         string
	Status       ShopStatus
	ApprovedBy   string
	ApprovedAt   *time.Time
	RejectReason string
	CreatedAt    time.Time
}
