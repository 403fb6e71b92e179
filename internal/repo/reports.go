package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentique/rental-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var reportColumns = []string{
	"report_id", "shop_id", "order_uid", "customer_id",
	"category", "description", "evidence_url",
	"status", "admin_note", "decided_by", "decided_at", "created_at",
}

// CreateReport relies on the partial unique index over (shop_id, order_uid)
// for PENDING rows: a racing duplicate surfaces as ErrDuplicateReport.
func (r *postgresRepo) CreateReport(ctx context.Context, rep entities.DamageReport) error {
	query, args := r.qb.Insert("damage_reports").
		Columns(reportColumns...).
		Values(
			rep.ReportID, rep.ShopID, rep.OrderUID, rep.CustomerID,
			rep.Category, rep.Description, nullString(rep.EvidenceURL),
			string(rep.Status), nullString(rep.AdminNote),
			nullString(rep.DecidedBy), nullTime(rep.DecidedAt), rep.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.ErrDuplicateReport
	}
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (r *postgresRepo) HasOpenReport(ctx context.Context, shopID, orderUID string) (bool, error) {
	query, args := r.qb.Select("1").
		From("damage_reports").
		Where(sq.Eq{
			"shop_id":   shopID,
			"order_uid": orderUID,
			"status":    string(entities.ReportPending),
		}).
		MustSql()

	var exists int
	err := r.getContext(ctx, &exists, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check open report: %w", err)
	}
	return true, nil
}

func (r *postgresRepo) GetReportByID(ctx context.Context, reportID string) (entities.DamageReport, error) {
	query, args := r.qb.Select(reportColumns...).
		From("damage_reports").
		Where(sq.Eq{"report_id": reportID}).
		MustSql()

	var report DamageReport
	err := r.getContext(ctx, &report, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DamageReport{}, entities.ErrReportNotFound
	}
	if err != nil {
		return entities.DamageReport{}, fmt.Errorf("failed to get report: %w", err)
	}
	return ReportToEntity(report), nil
}

func (r *postgresRepo) UpdateReportDecision(ctx context.Context, rep entities.DamageReport) error {
	query, args := r.qb.Update("damage_reports").
		Set("status", string(rep.Status)).
		Set("admin_note", nullString(rep.AdminNote)).
		Set("decided_by", nullString(rep.DecidedBy)).
		Set("decided_at", nullTime(rep.DecidedAt)).
		Where(sq.Eq{"report_id": rep.ReportID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update report decision: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrReportNotFound
	}
	return nil
}
