package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	mocks "github.com/rentique/rental-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShopService_Register(t *testing.T) {
	repo := mocks.NewMockShopRepo(t)
	notifier := mocks.NewMockApprovalNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().CreateShop(mock.Anything, mock.MatchedBy(func(s entities.Shop) bool {
		return s.Status == entities.ShopPending && s.OwnerID == "owner-1" && s.Name == "Velvet Loft"
	})).Return(nil).Once()

	svc := service.NewShopService(logger, repo, notifier)

	shop, err := svc.Register(context.Background(), service.RegisterShopInput{OwnerID: "owner-1", Name: "Velvet Loft"})
	require.NoError(t, err)
	assert.Equal(t, entities.ShopPending, shop.Status)
	assert.NotEmpty(t, shop.ShopID)
}

func TestShopService_Approve(t *testing.T) {
	type MockBehavior func(repo *mocks.MockShopRepo, notifier *mocks.MockApprovalNotifier)

	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	rejectedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	pending := entities.Shop{
		ShopID:       "shop-1",
		OwnerID:      "owner-1",
		Name:         "Velvet Loft",
		Status:       entities.ShopRejected,
		RejectReason: "missing documents",
		CreatedAt:    rejectedAt,
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: admin,
			mockBehavior: func(repo *mocks.MockShopRepo, notifier *mocks.MockApprovalNotifier) {
				repo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(pending, nil).Once()
				repo.EXPECT().UpdateShopApproval(mock.Anything, mock.MatchedBy(func(s entities.Shop) bool {
					return s.Status == entities.ShopApproved &&
						s.ApprovedBy == "admin-1" &&
						s.ApprovedAt != nil &&
						s.RejectReason == ""
				})).Return(nil).Once()
				notifier.EXPECT().
					ShopEvent(mock.Anything, "shop-1", entities.NotificationShop, service.EventShopApproved,
						"shop-1", mock.Anything, mock.Anything).
					Return(true, nil).Once()
			},
		},
		{
			name:         "non-admin is rejected",
			actor:        entities.Actor{UserID: "owner-1", Role: entities.RoleShop},
			mockBehavior: func(_ *mocks.MockShopRepo, _ *mocks.MockApprovalNotifier) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:  "shop not found",
			actor: admin,
			mockBehavior: func(repo *mocks.MockShopRepo, _ *mocks.MockApprovalNotifier) {
				repo.EXPECT().GetShopByID(mock.Anything, "shop-1").
					Return(entities.Shop{}, entities.ErrShopNotFound).Once()
			},
			wantErr: entities.ErrShopNotFound,
		},
		{
			name:  "notifier failure does not fail approval",
			actor: admin,
			mockBehavior: func(repo *mocks.MockShopRepo, notifier *mocks.MockApprovalNotifier) {
				repo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(pending, nil).Once()
				repo.EXPECT().UpdateShopApproval(mock.Anything, mock.Anything).Return(nil).Once()
				notifier.EXPECT().
					ShopEvent(mock.Anything, mock.Anything, mock.Anything, mock.Anything,
						mock.Anything, mock.Anything, mock.Anything).
					Return(false, assert.AnError).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockShopRepo(t)
			notifier := mocks.NewMockApprovalNotifier(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, notifier)

			svc := service.NewShopService(logger, repo, notifier)

			shop, err := svc.Approve(context.Background(), "shop-1", tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.ShopApproved, shop.Status)
			assert.Equal(t, "admin-1", shop.ApprovedBy)
			require.NotNil(t, shop.ApprovedAt)
			assert.Empty(t, shop.RejectReason)
		})
	}
}

func TestShopService_Reject(t *testing.T) {
	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	approvedAt := time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC)
	approved := entities.Shop{
		ShopID:     "shop-1",
		OwnerID:    "owner-1",
		Status:     entities.ShopApproved,
		ApprovedBy: "admin-0",
		ApprovedAt: &approvedAt,
	}

	repo := mocks.NewMockShopRepo(t)
	notifier := mocks.NewMockApprovalNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(approved, nil).Once()
	repo.EXPECT().UpdateShopApproval(mock.Anything, mock.MatchedBy(func(s entities.Shop) bool {
		// A rejection records the reason but keeps the prior approval trail.
		return s.Status == entities.ShopRejected &&
			s.RejectReason == "too many disputes" &&
			s.ApprovedBy == "admin-0" &&
			s.ApprovedAt != nil
	})).Return(nil).Once()
	notifier.EXPECT().
		ShopEvent(mock.Anything, "shop-1", entities.NotificationShop, service.EventShopRejected,
			"shop-1", mock.Anything, mock.Anything).
		Return(true, nil).Once()

	svc := service.NewShopService(logger, repo, notifier)

	shop, err := svc.Reject(context.Background(), "shop-1", "too many disputes", admin)
	require.NoError(t, err)
	assert.Equal(t, entities.ShopRejected, shop.Status)
	assert.Equal(t, "too many disputes", shop.RejectReason)

	_, err = svc.Reject(context.Background(), "shop-1", "nope", entities.Actor{UserID: "u", Role: entities.RoleCustomer})
	assert.ErrorIs(t, err, entities.ErrForbidden)
}
