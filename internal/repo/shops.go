package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentique/rental-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var shopColumns = []string{
	"shop_id", "owner_id", "name", "status",
	"approved_by", "approved_at", "reject_reason", "created_at",
}

func (r *postgresRepo) CreateShop(ctx context.Context, s entities.Shop) error {
	query, args := r.qb.Insert("shops").
		Columns(shopColumns...).
		Values(
			s.ShopID, s.OwnerID, s.Name, string(s.Status),
			nullString(s.ApprovedBy), nullTime(s.ApprovedAt), nullString(s.RejectReason),
			s.CreatedAt,
		).
		Suffix("ON CONFLICT (shop_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shop: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetShopByID(ctx context.Context, shopID string) (entities.Shop, error) {
	query, args := r.qb.Select(shopColumns...).
		From("shops").
		Where(sq.Eq{"shop_id": shopID}).
		MustSql()

	var shop Shop
	err := r.getContext(ctx, &shop, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shop{}, entities.ErrShopNotFound
	}
	if err != nil {
		return entities.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	return ShopToEntity(shop), nil
}

// UpdateShopApproval writes the full approval state as decided by the
// service layer; it deliberately does not reset fields on its own.
func (r *postgresRepo) UpdateShopApproval(ctx context.Context, s entities.Shop) error {
	query, args := r.qb.Update("shops").
		Set("status", string(s.Status)).
		Set("approved_by", nullString(s.ApprovedBy)).
		Set("approved_at", nullTime(s.ApprovedAt)).
		Set("reject_reason", nullString(s.RejectReason)).
		Where(sq.Eq{"shop_id": s.ShopID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shop approval: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrShopNotFound
	}
	return nil
}
