package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	mocks "github.com/rentique/rental-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifier_OrderEvent(t *testing.T) {
	type MockBehavior func(repo *mocks.MockNotificationRepo, shops *mocks.MockShopRepo)

	order := entities.Order{OrderUID: "123", CustomerID: "cust-1", ShopID: "shop-1"}
	event := service.Event{
		Code:      service.EventPaymentOK,
		Title:     "Payment received",
		Message:   "Payment for order 123 has been confirmed",
		DedupeKey: "PAYMENT_OK:123",
	}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantCreated  bool
		wantErr      error
	}{
		{
			name:  "OK",
			order: order,
			mockBehavior: func(repo *mocks.MockNotificationRepo, shops *mocks.MockShopRepo) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1"}, nil).Once()
				repo.EXPECT().
					CreateNotification(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
						return n.RecipientID == "owner-1" &&
							n.Audience == entities.AudienceShop &&
							n.EventCode == service.EventPaymentOK &&
							n.DedupeKey == "PAYMENT_OK:123"
					})).
					Return(true, nil).Once()
			},
			wantCreated: true,
		},
		{
			name:  "duplicate is suppressed",
			order: order,
			mockBehavior: func(repo *mocks.MockNotificationRepo, shops *mocks.MockShopRepo) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1"}, nil).Once()
				repo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantCreated: false,
		},
		{
			name:         "order without shop is skipped",
			order:        entities.Order{OrderUID: "123"},
			mockBehavior: func(_ *mocks.MockNotificationRepo, _ *mocks.MockShopRepo) {},
			wantCreated:  false,
		},
		{
			name:  "missing shop is skipped",
			order: order,
			mockBehavior: func(_ *mocks.MockNotificationRepo, shops *mocks.MockShopRepo) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{}, entities.ErrShopNotFound).Once()
			},
			wantCreated: false,
		},
		{
			name:  "shop without owner is skipped",
			order: order,
			mockBehavior: func(_ *mocks.MockNotificationRepo, shops *mocks.MockShopRepo) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1"}, nil).Once()
			},
			wantCreated: false,
		},
		{
			name:  "shop lookup failure is returned",
			order: order,
			mockBehavior: func(_ *mocks.MockNotificationRepo, shops *mocks.MockShopRepo) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{}, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockNotificationRepo(t)
			shops := mocks.NewMockShopRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, shops)

			n := service.NewNotifier(logger, repo, shops, "https://backoffice.rentique.io")

			created, err := n.OrderEvent(context.Background(), tc.order, event)

			if tc.wantErr != nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
		})
	}
}

func TestNotifier_ShopEvent(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	shops := mocks.NewMockShopRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shops.EXPECT().GetShopByID(mock.Anything, "shop-1").
		Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1"}, nil).Once()
	repo.EXPECT().
		CreateNotification(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.RecipientID == "owner-1" &&
				n.Type == entities.NotificationShop &&
				n.DedupeKey == "SHOP_APPROVED:shop-1"
		})).
		Return(true, nil).Once()

	n := service.NewNotifier(logger, repo, shops, "")

	created, err := n.ShopEvent(context.Background(), "shop-1", entities.NotificationShop,
		service.EventShopApproved, "shop-1", "Shop approved", "Your shop has been approved")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestNotifier_CustomerEvent(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	shops := mocks.NewMockShopRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().
		CreateNotification(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
			return n.RecipientID == "cust-1" &&
				n.Audience == entities.AudienceCustomer &&
				n.DedupeKey == "CHAT_MESSAGE:msg-7"
		})).
		Return(true, nil).Once()

	n := service.NewNotifier(logger, repo, shops, "")

	created, err := n.CustomerEvent(context.Background(), service.CustomerEvent{
		RecipientID: "cust-1",
		Type:        entities.NotificationChat,
		Code:        service.EventChatMessage,
		SubjectID:   "msg-7",
		Title:       "New message",
		Message:     "Hi there",
		ThreadID:    "thread-1",
	})
	require.NoError(t, err)
	assert.True(t, created)

	// No recipient, nothing to store.
	created, err = n.CustomerEvent(context.Background(), service.CustomerEvent{Code: service.EventChatMessage})
	require.NoError(t, err)
	assert.False(t, created)
}
