package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentique/rental-service/internal/entities"

	"github.com/google/uuid"
)

type ApprovalNotifier interface {
	ShopEvent(ctx context.Context, shopID string, typ entities.NotificationType, code, subjectID, title, message string) (bool, error)
}

type RegisterShopInput struct {
	OwnerID string
	Name    string
}

type shopService struct {
	logger   *slog.Logger
	repo     ShopRepo
	notifier ApprovalNotifier
}

func NewShopService(logger *slog.Logger, repo ShopRepo, notifier ApprovalNotifier) *shopService {
	return &shopService{
		logger:   logger.With(slog.String("service", "shop")),
		repo:     repo,
		notifier: notifier,
	}
}

func (s *shopService) Register(ctx context.Context, input RegisterShopInput) (entities.Shop, error) {
	shop := entities.Shop{
		ShopID:    uuid.NewString(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Status:    entities.ShopPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateShop(ctx, shop); err != nil {
		return entities.Shop{}, fmt.Errorf("failed to register shop: %w", err)
	}

	s.logger.InfoContext(ctx, "shop registered", slog.String("shop_id", shop.ShopID))
	return shop, nil
}

// Approve sets ApprovedBy and ApprovedAt together and clears any previous
// rejection reason.
func (s *shopService) Approve(ctx context.Context, shopID string, admin entities.Actor) (entities.Shop, error) {
	if !admin.IsAdmin() {
		return entities.Shop{}, entities.ErrForbidden
	}

	shop, err := s.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return entities.Shop{}, err
	}

	now := time.Now()
	shop.Status = entities.ShopApproved
	shop.ApprovedBy = admin.UserID
	shop.ApprovedAt = &now
	shop.RejectReason = ""

	if err := s.repo.UpdateShopApproval(ctx, shop); err != nil {
		return entities.Shop{}, err
	}

	s.logger.InfoContext(ctx, "shop approved",
		slog.String("shop_id", shopID),
		slog.String("admin", admin.UserID),
	)
	s.notify(ctx, shop, EventShopApproved, "Shop approved", "Your shop has been approved and is now visible to customers")
	return shop, nil
}

// Reject records the reason but does not reset ApprovedBy/ApprovedAt left
// over from a prior approval cycle.
func (s *shopService) Reject(ctx context.Context, shopID, reason string, admin entities.Actor) (entities.Shop, error) {
	if !admin.IsAdmin() {
		return entities.Shop{}, entities.ErrForbidden
	}

	shop, err := s.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return entities.Shop{}, err
	}

	shop.Status = entities.ShopRejected
	shop.RejectReason = reason

	if err := s.repo.UpdateShopApproval(ctx, shop); err != nil {
		return entities.Shop{}, err
	}

	s.logger.InfoContext(ctx, "shop rejected",
		slog.String("shop_id", shopID),
		slog.String("admin", admin.UserID),
	)
	s.notify(ctx, shop, EventShopRejected, "Shop rejected", "Your shop application has been rejected: "+reason)
	return shop, nil
}

func (s *shopService) GetShopByID(ctx context.Context, shopID string) (entities.Shop, error) {
	return s.repo.GetShopByID(ctx, shopID)
}

func (s *shopService) notify(ctx context.Context, shop entities.Shop, code, title, message string) {
	if _, err := s.notifier.ShopEvent(ctx, shop.ShopID, entities.NotificationShop, code, shop.ShopID, title, message); err != nil {
		s.logger.ErrorContext(ctx, "failed to dispatch shop notification",
			slog.String("shop_id", shop.ShopID),
			slog.String("event", code),
			slog.Any("error", err),
		)
	}
}
