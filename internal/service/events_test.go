package service_test

import (
	"testing"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCreation(t *testing.T) {
	order := entities.Order{OrderUID: "42", Status: entities.StatusNew}

	events := service.ClassifyCreation(order)
	require.Len(t, events, 1)
	assert.Equal(t, service.EventOrderNew, events[0].Code)
	assert.Equal(t, "ORDER_NEW:42", events[0].DedupeKey)

	order.Status = entities.StatusPaid
	events = service.ClassifyCreation(order)
	require.Len(t, events, 2)
	assert.Equal(t, service.EventOrderNew, events[0].Code)
	assert.Equal(t, service.EventPaymentOK, events[1].Code)
	assert.Equal(t, "PAYMENT_OK:42", events[1].DedupeKey)
}

func TestClassifyTransition(t *testing.T) {
	order := entities.Order{OrderUID: "42"}

	codes := func(events []service.Event) []string {
		var out []string
		for _, ev := range events {
			out = append(out, ev.Code)
		}
		return out
	}

	testCases := []struct {
		name      string
		from      entities.OrderStatus
		to        entities.OrderStatus
		wantCodes []string
	}{
		{
			name:      "same status is silent",
			from:      entities.StatusPaid,
			to:        entities.StatusPaid,
			wantCodes: nil,
		},
		{
			name:      "damaged orders are silent",
			from:      entities.StatusDamaged,
			to:        entities.StatusReturned,
			wantCodes: nil,
		},
		{
			name:      "cancellation suppresses the generic event",
			from:      entities.StatusNew,
			to:        entities.StatusCancelled,
			wantCodes: []string{service.EventOrderCancel},
		},
		{
			name:      "cancelling a damaged order still signals",
			from:      entities.StatusDamaged,
			to:        entities.StatusCancelled,
			wantCodes: []string{service.EventOrderCancel},
		},
		{
			name:      "damage suppresses the generic event",
			from:      entities.StatusShipping,
			to:        entities.StatusDamaged,
			wantCodes: []string{service.EventOrderIssue},
		},
		{
			name:      "payment produces both events",
			from:      entities.StatusNew,
			to:        entities.StatusPaid,
			wantCodes: []string{service.EventPaymentOK, service.EventOrderStatus},
		},
		{
			name:      "ordinary transition",
			from:      entities.StatusPreparing,
			to:        entities.StatusShipping,
			wantCodes: []string{service.EventOrderStatus},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := service.ClassifyTransition(order, tc.from, tc.to)
			assert.Equal(t, tc.wantCodes, codes(events))
		})
	}
}

func TestClassifyTransition_DedupeKeys(t *testing.T) {
	order := entities.Order{OrderUID: "42"}

	events := service.ClassifyTransition(order, entities.StatusNew, entities.StatusPaid)
	require.Len(t, events, 2)
	assert.Equal(t, "PAYMENT_OK:42", events[0].DedupeKey)
	assert.Equal(t, "STATUS:42:NEW->PAID", events[1].DedupeKey)

	events = service.ClassifyTransition(order, entities.StatusNew, entities.StatusCancelled)
	require.Len(t, events, 1)
	assert.Equal(t, "ORDER_CANCEL:42", events[0].DedupeKey)
}
