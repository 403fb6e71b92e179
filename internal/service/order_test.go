package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rentique/rental-service/internal/config"
	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	mocks "github.com/rentique/rental-service/internal/service/mocks"
	txMocks "github.com/rentique/rental-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testBilling = config.Billing{CommissionBps: 1500, VATBps: 700}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier)

	dbError := errors.New("db error")
	approvedShop := entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}

	input := service.CreateOrderInput{
		CustomerID: "cust-1",
		ShopID:     "shop-1",
		Items: []service.RentalItemInput{
			{GarmentID: "g-1", Name: "Evening gown", PricePerDay: 5000, Days: 3},
			{GarmentID: "g-2", Name: "Clutch", PricePerDay: 1000, Days: 3},
		},
	}

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior MockBehavior
		wantErr      error
		check        func(t *testing.T, order entities.Order)
	}{
		{
			name:  "OK",
			input: input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(approvedShop, nil)
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusNew, order.Status)
				assert.Equal(t, 18000, order.GrandTotal)
				assert.Equal(t, 2700, order.Commission)
				assert.Equal(t, 1260, order.VAT)
				assert.Equal(t, 14040, order.NetIncome)
				assert.Equal(t, 1500, order.CommissionRate)
				assert.NotEmpty(t, order.OrderUID)
			},
		},
		{
			name: "paid order dispatches both events",
			input: service.CreateOrderInput{
				CustomerID: "cust-1",
				ShopID:     "shop-1",
				Paid:       true,
				Items:      input.Items,
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(approvedShop, nil)
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Times(2)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusPaid, order.Status)
			},
		},
		{
			name:  "shop not approved",
			input: input,
			mockBehavior: func(_ *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, _ *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", Status: entities.ShopPending}, nil)
			},
			wantErr: entities.ErrShopNotApproved,
		},
		{
			name:  "shop not found",
			input: input,
			mockBehavior: func(_ *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, _ *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{}, entities.ErrShopNotFound)
			},
			wantErr: entities.ErrShopNotFound,
		},
		{
			name:  "insert fails",
			input: input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, _ *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(approvedShop, nil)
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "notifier failure does not fail creation",
			input: input,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier) {
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(approvedShop, nil)
				orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).
					Return(false, errors.New("notifications down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			shopRepo := mocks.NewMockShopRepo(t)
			notifier := mocks.NewMockNotifier(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(orderRepo, shopRepo, notifier)

			svc := service.NewOrderService(logger, tx, orderRepo, shopRepo, notifier, cache, testBilling)

			order, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestOrderService_Transition(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache)

	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	storedOrder := entities.Order{
		OrderUID:   "123",
		CustomerID: "cust-1",
		ShopID:     "shop-1",
		Status:     entities.StatusNew,
	}

	testCases := []struct {
		name         string
		orderUID     string
		newStatus    string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:      "payment dispatches both events",
			orderUID:  "123",
			newStatus: "PAID",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusPaid).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Times(2)
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name:      "lowercase status is accepted",
			orderUID:  "123",
			newStatus: "preparing",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				paid := storedOrder
				paid.Status = entities.StatusPaid
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(paid, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusPreparing).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusPreparing,
		},
		{
			name:      "same status is a no-op",
			orderUID:  "123",
			newStatus: "NEW",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
			},
			wantStatus: entities.StatusNew,
		},
		{
			name:         "unknown status",
			orderUID:     "123",
			newStatus:    "TELEPORTED",
			actor:        admin,
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:      "order not found",
			orderUID:  "missing",
			newStatus: "PAID",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "shop owner may transition own order",
			orderUID:  "123",
			newStatus: "PREPARING",
			actor:     entities.Actor{UserID: "owner-1", Role: entities.RoleShop},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				paid := storedOrder
				paid.Status = entities.StatusPaid
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(paid, nil).Once()
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusPreparing).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusPreparing,
		},
		{
			name:      "foreign shop is rejected",
			orderUID:  "123",
			newStatus: "PREPARING",
			actor:     entities.Actor{UserID: "intruder", Role: entities.RoleShop},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "customer may cancel own order",
			orderUID:  "123",
			newStatus: "CANCELLED",
			actor:     entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusCancelled).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:      "customer may not do anything else",
			orderUID:  "123",
			newStatus: "SHIPPING",
			actor:     entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "cancelled order cannot be reopened by the gateway",
			orderUID:  "123",
			newStatus: "PAID",
			actor:     entities.Actor{UserID: "payment-gateway", Role: entities.RoleSystem},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				cancelled := storedOrder
				cancelled.Status = entities.StatusCancelled
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(cancelled, nil).Once()
			},
			wantErr: entities.ErrOrderClosed,
		},
		{
			name:      "returned order cannot be shipped again by the shop",
			orderUID:  "123",
			newStatus: "SHIPPING",
			actor:     entities.Actor{UserID: "owner-1", Role: entities.RoleShop},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, _ *mocks.MockNotifier, _ *mocks.MockCache) {
				returned := storedOrder
				returned.Status = entities.StatusReturned
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(returned, nil).Once()
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}, nil).Once()
			},
			wantErr: entities.ErrOrderClosed,
		},
		{
			name:      "shop may dispute a returned order",
			orderUID:  "123",
			newStatus: "DAMAGED",
			actor:     entities.Actor{UserID: "owner-1", Role: entities.RoleShop},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, shopRepo *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				returned := storedOrder
				returned.Status = entities.StatusReturned
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(returned, nil).Once()
				shopRepo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusDamaged).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusDamaged,
		},
		{
			name:      "customer may cancel a damaged order",
			orderUID:  "123",
			newStatus: "CANCELLED",
			actor:     entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				damaged := storedOrder
				damaged.Status = entities.StatusDamaged
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(damaged, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusCancelled).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:      "admin may reopen a returned order",
			orderUID:  "123",
			newStatus: "SHIPPING",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				returned := storedOrder
				returned.Status = entities.StatusReturned
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(returned, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusShipping).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantStatus: entities.StatusShipping,
		},
		{
			name:      "dispatch failure does not fail the transition",
			orderUID:  "123",
			newStatus: "CANCELLED",
			actor:     admin,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockShopRepo, notifier *mocks.MockNotifier, cache *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusCancelled).Return(nil).Once()
				cache.EXPECT().Del("123").Return().Once()
				notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).
					Return(false, errors.New("notifications down")).Once()
			},
			wantStatus: entities.StatusCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			shopRepo := mocks.NewMockShopRepo(t)
			notifier := mocks.NewMockNotifier(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(orderRepo, shopRepo, notifier, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, shopRepo, notifier, cache, testBilling)

			order, err := svc.Transition(context.Background(), tc.orderUID, tc.newStatus, tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}

func TestOrderService_ConfirmPayment(t *testing.T) {
	storedOrder := entities.Order{
		OrderUID:   "123",
		CustomerID: "cust-1",
		ShopID:     "shop-1",
		Status:     entities.StatusNew,
	}

	type confirmer interface {
		ConfirmPayment(ctx context.Context, orderUID string) error
	}

	newService := func(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockNotifier, confirmer) {
		orderRepo := mocks.NewMockOrderRepo(t)
		shopRepo := mocks.NewMockShopRepo(t)
		notifier := mocks.NewMockNotifier(t)
		cache := mocks.NewMockCache(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		tx.EXPECT().
			Do(mock.Anything, mock.Anything).
			RunAndReturn(
				func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()
		cache.EXPECT().Del(mock.Anything).Return().Maybe()

		return orderRepo, notifier, service.NewOrderService(logger, tx, orderRepo, shopRepo, notifier, cache, testBilling)
	}

	t.Run("confirmation marks the order paid", func(t *testing.T) {
		orderRepo, notifier, svc := newService(t)

		orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(storedOrder, nil).Once()
		orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.StatusPaid).Return(nil).Once()
		notifier.EXPECT().OrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Times(2)

		require.NoError(t, svc.ConfirmPayment(context.Background(), "123"))
	})

	t.Run("replayed confirmation cannot reopen a cancelled order", func(t *testing.T) {
		orderRepo, _, svc := newService(t)

		cancelled := storedOrder
		cancelled.Status = entities.StatusCancelled
		orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "123").Return(cancelled, nil).Once()

		err := svc.ConfirmPayment(context.Background(), "123")
		assert.ErrorIs(t, err, entities.ErrOrderClosed)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	shopRepo := mocks.NewMockShopRepo(t)
	notifier := mocks.NewMockNotifier(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	recent := []entities.Order{
		{OrderUID: "1", Status: entities.StatusPaid},
		{OrderUID: "2", Status: entities.StatusShipping},
	}
	orderRepo.EXPECT().ListRecentOrders(mock.Anything, 10).Return(recent, nil).Once()
	cache.EXPECT().Set("1", mock.Anything).Return().Once()
	cache.EXPECT().Set("2", mock.Anything).Return().Once()

	svc := service.NewOrderService(logger, tx, orderRepo, shopRepo, notifier, cache, testBilling)

	require.NoError(t, svc.WarmUpCache(context.Background(), 10))
}

func TestOrderService_GetOrderByUID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{OrderUID: "123", Status: entities.StatusPaid}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderUID     string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:     "success from cache",
			orderUID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:     "poisoned cache entry falls back to repo",
			orderUID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return([]byte("broken"), true).Once()
				cache.EXPECT().Del("123").Return().Once()
				orderRepo.EXPECT().
					GetOrderByUID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:     "success from repo and set to cache",
			orderUID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByUID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:     "not found is not retried",
			orderUID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("not-exist").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByUID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:     "second attempt from repo",
			orderUID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByUID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByUID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			shopRepo := mocks.NewMockShopRepo(t)
			notifier := mocks.NewMockNotifier(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, shopRepo, notifier, cache, testBilling)

			got, err := svc.GetOrderByUID(context.Background(), tc.orderUID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
