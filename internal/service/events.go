package service

import (
	"fmt"

	"github.com/rentique/rental-service/internal/entities"
)

const (
	EventOrderNew    = "ORDER_NEW"
	EventOrderCancel = "ORDER_CANCEL"
	EventPaymentOK   = "PAYMENT_OK"
	EventOrderStatus = "ORDER_STATUS"
	EventOrderIssue  = "ORDER_ISSUE"

	EventShopApproved = "SHOP_APPROVED"
	EventShopRejected = "SHOP_REJECTED"
	EventChatMessage  = "CHAT_MESSAGE"
	EventReviewNew    = "REVIEW_NEW"
)

// Event describes a single notification to be dispatched. The classifier
// below is pure; persistence and recipient resolution live in the notifier.
type Event struct {
	Code      string
	Title     string
	Message   string
	DedupeKey string
}

// ClassifyCreation maps the first-ever persistence of an order to its
// events. An order created already PAID (single-step checkout plus payment)
// produces both ORDER_NEW and PAYMENT_OK.
func ClassifyCreation(order entities.Order) []Event {
	events := []Event{{
		Code:      EventOrderNew,
		Title:     "New order",
		Message:   fmt.Sprintf("Order %s has been placed", order.OrderUID),
		DedupeKey: fmt.Sprintf("%s:%s", EventOrderNew, order.OrderUID),
	}}

	if order.Status == entities.StatusPaid {
		events = append(events, paymentEvent(order))
	}
	return events
}

// ClassifyTransition maps a status transition to zero or more events.
//
// Cancellation is a distinct terminal signal and never produces the generic
// status event. A transition into PAID produces PAYMENT_OK in addition to
// the generic event, unless the order was already PAID. Once an order is
// DAMAGED only cancellation produces further events.
func ClassifyTransition(order entities.Order, oldStatus, newStatus entities.OrderStatus) []Event {
	if oldStatus == newStatus {
		return nil
	}

	// Cancellation is signalled from any prior state, including DAMAGED.
	if newStatus == entities.StatusCancelled {
		return []Event{{
			Code:      EventOrderCancel,
			Title:     "Order cancelled",
			Message:   fmt.Sprintf("Order %s has been cancelled", order.OrderUID),
			DedupeKey: fmt.Sprintf("%s:%s", EventOrderCancel, order.OrderUID),
		}}
	}

	if oldStatus == entities.StatusDamaged {
		return nil
	}

	if newStatus == entities.StatusDamaged {
		return []Event{{
			Code:      EventOrderIssue,
			Title:     "Order disputed",
			Message:   fmt.Sprintf("Order %s has been marked as damaged", order.OrderUID),
			DedupeKey: fmt.Sprintf("%s:%s", EventOrderIssue, order.OrderUID),
		}}
	}

	var events []Event
	if newStatus == entities.StatusPaid {
		events = append(events, paymentEvent(order))
	}

	events = append(events, Event{
		Code:      EventOrderStatus,
		Title:     "Order status changed",
		Message:   fmt.Sprintf("Order %s moved from %s to %s", order.OrderUID, oldStatus, newStatus),
		DedupeKey: fmt.Sprintf("STATUS:%s:%s->%s", order.OrderUID, oldStatus, newStatus),
	})
	return events
}

func paymentEvent(order entities.Order) Event {
	return Event{
		Code:      EventPaymentOK,
		Title:     "Payment received",
		Message:   fmt.Sprintf("Payment for order %s has been confirmed", order.OrderUID),
		DedupeKey: fmt.Sprintf("%s:%s", EventPaymentOK, order.OrderUID),
	}
}
