package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusPaid      OrderStatus = "PAID"
	StatusPreparing OrderStatus = "PREPARING"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusReturned  OrderStatus = "RETURNED"
	StatusDamaged   OrderStatus = "DAMAGED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrOrderClosed     = errors.New("order is closed")
	ErrShopNotApproved = errors.New("shop is not approved")
)

// ParseOrderStatus is case-insensitive.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(strings.ToUpper(s)); st {
	case StatusNew, StatusPaid, StatusPreparing, StatusShipping,
		StatusReturned, StatusDamaged, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Terminal reports whether the order has reached a closed state. Leaving
// a terminal state takes an admin, except the DAMAGED to CANCELLED
// resolution path.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusReturned, StatusDamaged, StatusCancelled:
		return true
	}
	return false
}

type RentalItem struct {
	GarmentID   string
	Name        string
	Size        string
	PricePerDay int
	Days        int
	Total       int
}

// Order is a rental transaction between a customer and a shop.
// Monetary fields are computed once at creation and never edited afterwards.
// Amounts are integer minor units, CommissionRate is in basis points.
type Order struct {
	OrderUID       string
	CustomerID     string
	ShopID         string
	Status         OrderStatus
	Items          []RentalItem
	GrandTotal     int
	Commission     int
	VAT            int
	NetIncome      int
	CommissionRate int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(RentalItem{})
}
