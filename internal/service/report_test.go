package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	mocks "github.com/rentique/rental-service/internal/service/mocks"
	txMocks "github.com/rentique/rental-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_FileReport(t *testing.T) {
	type MockBehavior func(repo *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle)

	owner := entities.Actor{UserID: "owner-1", Role: entities.RoleShop}
	shop := entities.Shop{ShopID: "shop-1", OwnerID: "owner-1", Status: entities.ShopApproved}
	order := entities.Order{OrderUID: "123", CustomerID: "cust-1", ShopID: "shop-1", Status: entities.StatusReturned}

	input := service.FileReportInput{
		ShopID:      "shop-1",
		OrderUID:    "123",
		Category:    "STAIN",
		Description: "Red wine stain on the hem",
	}

	testCases := []struct {
		name         string
		input        service.FileReportInput
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			input: input,
			actor: owner,
			mockBehavior: func(repo *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
				orders.EXPECT().GetOrderByUID(mock.Anything, "123").Return(order, nil).Once()
				repo.EXPECT().HasOpenReport(mock.Anything, "shop-1", "123").Return(false, nil).Once()
				repo.EXPECT().CreateReport(mock.Anything, mock.MatchedBy(func(rep entities.DamageReport) bool {
					return rep.Status == entities.ReportPending &&
						rep.CustomerID == "cust-1" &&
						rep.OrderUID == "123"
				})).Return(nil).Once()
				orders.EXPECT().Transition(mock.Anything, "123", string(entities.StatusDamaged), owner).
					Return(entities.Order{OrderUID: "123", Status: entities.StatusDamaged}, nil).Once()
			},
		},
		{
			name:  "duplicate report leaves the order alone",
			input: input,
			actor: owner,
			mockBehavior: func(repo *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
				orders.EXPECT().GetOrderByUID(mock.Anything, "123").Return(order, nil).Once()
				repo.EXPECT().HasOpenReport(mock.Anything, "shop-1", "123").Return(true, nil).Once()
			},
			wantErr: entities.ErrDuplicateReport,
		},
		{
			name:  "concurrent insert hits the unique index",
			input: input,
			actor: owner,
			mockBehavior: func(repo *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
				orders.EXPECT().GetOrderByUID(mock.Anything, "123").Return(order, nil).Once()
				repo.EXPECT().HasOpenReport(mock.Anything, "shop-1", "123").Return(false, nil).Once()
				repo.EXPECT().CreateReport(mock.Anything, mock.Anything).Return(entities.ErrDuplicateReport).Once()
			},
			wantErr: entities.ErrDuplicateReport,
		},
		{
			name:  "reporter does not own the shop",
			input: input,
			actor: entities.Actor{UserID: "intruder", Role: entities.RoleShop},
			mockBehavior: func(_ *mocks.MockReportRepo, shops *mocks.MockShopRepo, _ *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:         "customer may not file reports",
			input:        input,
			actor:        entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer},
			mockBehavior: func(_ *mocks.MockReportRepo, _ *mocks.MockShopRepo, _ *mocks.MockOrderLifecycle) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name: "order belongs to another shop",
			input: service.FileReportInput{
				ShopID:   "shop-1",
				OrderUID: "999",
				Category: "STAIN",
			},
			actor: owner,
			mockBehavior: func(_ *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
				orders.EXPECT().GetOrderByUID(mock.Anything, "999").
					Return(entities.Order{OrderUID: "999", ShopID: "shop-2"}, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "order not found",
			input: input,
			actor: owner,
			mockBehavior: func(_ *mocks.MockReportRepo, shops *mocks.MockShopRepo, orders *mocks.MockOrderLifecycle) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil).Once()
				orders.EXPECT().GetOrderByUID(mock.Anything, "123").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReportRepo(t)
			shops := mocks.NewMockShopRepo(t)
			orders := mocks.NewMockOrderLifecycle(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo, shops, orders)

			svc := service.NewReportService(logger, tx, repo, shops, orders)

			report, err := svc.FileReport(context.Background(), tc.input, tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.ReportPending, report.Status)
			assert.NotEmpty(t, report.ReportID)
		})
	}
}

func TestReportService_Decide(t *testing.T) {
	type MockBehavior func(repo *mocks.MockReportRepo)

	admin := entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	pending := entities.DamageReport{
		ReportID: "rep-1",
		ShopID:   "shop-1",
		OrderUID: "123",
		Status:   entities.ReportPending,
	}

	testCases := []struct {
		name         string
		decision     string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.ReportStatus
	}{
		{
			name:     "approve",
			decision: "APPROVE",
			actor:    admin,
			mockBehavior: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().GetReportByID(mock.Anything, "rep-1").Return(pending, nil).Once()
				repo.EXPECT().UpdateReportDecision(mock.Anything, mock.MatchedBy(func(rep entities.DamageReport) bool {
					return rep.Status == entities.ReportApproved &&
						rep.DecidedBy == "admin-1" &&
						rep.DecidedAt != nil
				})).Return(nil).Once()
			},
			wantStatus: entities.ReportApproved,
		},
		{
			name:     "reject is case-insensitive",
			decision: "reject",
			actor:    admin,
			mockBehavior: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().GetReportByID(mock.Anything, "rep-1").Return(pending, nil).Once()
				repo.EXPECT().UpdateReportDecision(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.ReportRejected,
		},
		{
			name:         "unknown decision",
			decision:     "MAYBE",
			actor:        admin,
			mockBehavior: func(_ *mocks.MockReportRepo) {},
			wantErr:      entities.ErrInvalidDecision,
		},
		{
			name:         "non-admin is rejected",
			decision:     "APPROVE",
			actor:        entities.Actor{UserID: "owner-1", Role: entities.RoleShop},
			mockBehavior: func(_ *mocks.MockReportRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:     "already decided",
			decision: "APPROVE",
			actor:    admin,
			mockBehavior: func(repo *mocks.MockReportRepo) {
				decided := pending
				decided.Status = entities.ReportRejected
				repo.EXPECT().GetReportByID(mock.Anything, "rep-1").Return(decided, nil).Once()
			},
			wantErr: entities.ErrReportDecided,
		},
		{
			name:     "report not found",
			decision: "APPROVE",
			actor:    admin,
			mockBehavior: func(repo *mocks.MockReportRepo) {
				repo.EXPECT().GetReportByID(mock.Anything, "rep-1").
					Return(entities.DamageReport{}, entities.ErrReportNotFound).Once()
			},
			wantErr: entities.ErrReportNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReportRepo(t)
			shops := mocks.NewMockShopRepo(t)
			orders := mocks.NewMockOrderLifecycle(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewReportService(logger, tx, repo, shops, orders)

			report, err := svc.Decide(context.Background(), "rep-1", tc.decision, "inspected on return", tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, report.Status)
			assert.Equal(t, "admin-1", report.DecidedBy)
		})
	}
}
