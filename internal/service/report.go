package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/pkg/trm"

	"github.com/google/uuid"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, rep entities.DamageReport) error
	HasOpenReport(ctx context.Context, shopID, orderUID string) (bool, error)
	GetReportByID(ctx context.Context, reportID string) (entities.DamageReport, error)
	UpdateReportDecision(ctx context.Context, rep entities.DamageReport) error
}

// OrderLifecycle is the slice of the order service the report flow needs:
// reports never touch order rows directly.
type OrderLifecycle interface {
	GetOrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	Transition(ctx context.Context, orderUID, newStatus string, actor entities.Actor) (entities.Order, error)
}

type FileReportInput struct {
	ShopID      string
	OrderUID    string
	Category    string
	Description string
	EvidenceURL string
}

type reportService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ReportRepo
	shops     ShopRepo
	orders    OrderLifecycle
}

func NewReportService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo ReportRepo,
	shops ShopRepo,
	orders OrderLifecycle,
) *reportService {
	return &reportService{
		logger:    logger.With(slog.String("service", "report")),
		txManager: txManager,
		repo:      repo,
		shops:     shops,
		orders:    orders,
	}
}

// FileReport persists a PENDING damage report and forces the disputed
// order to DAMAGED through the lifecycle controller. A second open report
// for the same (shop, order) pair is rejected and leaves both the report
// table and the order untouched.
func (s *reportService) FileReport(ctx context.Context, input FileReportInput, actor entities.Actor) (entities.DamageReport, error) {
	if err := s.authorizeReporter(ctx, input.ShopID, actor); err != nil {
		return entities.DamageReport{}, err
	}

	order, err := s.orders.GetOrderByUID(ctx, input.OrderUID)
	if err != nil {
		return entities.DamageReport{}, err
	}
	if order.ShopID != input.ShopID {
		return entities.DamageReport{}, entities.ErrForbidden
	}

	report := entities.DamageReport{
		ReportID:    uuid.NewString(),
		ShopID:      input.ShopID,
		OrderUID:    input.OrderUID,
		CustomerID:  order.CustomerID,
		Category:    input.Category,
		Description: input.Description,
		EvidenceURL: input.EvidenceURL,
		Status:      entities.ReportPending,
		CreatedAt:   time.Now(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		open, err := s.repo.HasOpenReport(ctx, input.ShopID, input.OrderUID)
		if err != nil {
			return err
		}
		if open {
			return entities.ErrDuplicateReport
		}
		return s.repo.CreateReport(ctx, report)
	})
	if err != nil {
		return entities.DamageReport{}, err
	}

	s.logger.InfoContext(ctx, "damage report filed",
		slog.String("report_id", report.ReportID),
		slog.String("order_uid", report.OrderUID),
	)

	if _, err := s.orders.Transition(ctx, input.OrderUID, string(entities.StatusDamaged), actor); err != nil {
		return entities.DamageReport{}, fmt.Errorf("failed to mark order damaged: %w", err)
	}

	return report, nil
}

// Decide records the admin verdict. The DAMAGED transition already
// happened at filing time, so the order is left alone here.
func (s *reportService) Decide(ctx context.Context, reportID, decision, note string, admin entities.Actor) (entities.DamageReport, error) {
	if !admin.IsAdmin() {
		return entities.DamageReport{}, entities.ErrForbidden
	}

	var status entities.ReportStatus
	switch strings.ToUpper(decision) {
	case "APPROVE":
		status = entities.ReportApproved
	case "REJECT":
		status = entities.ReportRejected
	default:
		return entities.DamageReport{}, fmt.Errorf("%w: %q", entities.ErrInvalidDecision, decision)
	}

	report, err := s.repo.GetReportByID(ctx, reportID)
	if err != nil {
		return entities.DamageReport{}, err
	}
	if report.Status != entities.ReportPending {
		return entities.DamageReport{}, entities.ErrReportDecided
	}

	now := time.Now()
	report.Status = status
	report.AdminNote = note
	report.DecidedBy = admin.UserID
	report.DecidedAt = &now

	if err := s.repo.UpdateReportDecision(ctx, report); err != nil {
		return entities.DamageReport{}, err
	}

	s.logger.InfoContext(ctx, "damage report decided",
		slog.String("report_id", report.ReportID),
		slog.String("status", string(status)),
		slog.String("admin", admin.UserID),
	)
	return report, nil
}

func (s *reportService) GetReportByID(ctx context.Context, reportID string) (entities.DamageReport, error) {
	return s.repo.GetReportByID(ctx, reportID)
}

func (s *reportService) authorizeReporter(ctx context.Context, shopID string, actor entities.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != entities.RoleShop {
		return entities.ErrForbidden
	}
	shop, err := s.shops.GetShopByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop.OwnerID != actor.UserID {
		return entities.ErrForbidden
	}
	return nil
}
