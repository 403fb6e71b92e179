package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentique/rental-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"order_uid", "customer_id", "shop_id", "status",
	"grand_total", "commission", "vat", "net_income", "commission_rate",
	"created_at", "updated_at",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderUID, o.CustomerID, o.ShopID, string(o.Status),
			o.GrandTotal, o.Commission, o.VAT, o.NetIncome, o.CommissionRate,
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_uid) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return r.saveItems(ctx, o.OrderUID, o.Items)
}

func (r *postgresRepo) saveItems(ctx context.Context, orderUID string, items []entities.RentalItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_uid", "garment_id", "name", "size", "price_per_day", "days", "total").
		Suffix("ON CONFLICT (order_uid, garment_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(orderUID, it.GarmentID, it.Name, nullString(it.Size), it.PricePerDay, it.Days, it.Total)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByUID(ctx context.Context, orderUID string) (entities.Order, error) {
	order, err := r.getOrder(ctx, orderUID, false)
	if err != nil {
		return entities.Order{}, err
	}

	query, args := r.qb.Select("order_uid", "garment_id", "name", "size", "price_per_day", "days", "total").
		From("order_items").
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	var items []RentalItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// GetOrderForUpdate locks the order row for the duration of the enclosing
// transaction so concurrent transitions serialize on it. Items are not
// loaded here.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderUID string) (entities.Order, error) {
	order, err := r.getOrder(ctx, orderUID, true)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, nil), nil
}

func (r *postgresRepo) getOrder(ctx context.Context, orderUID string, forUpdate bool) (Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_uid": orderUID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListRecentOrders returns the most recently touched orders with their
// items, newest first.
func (r *postgresRepo) ListRecentOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("updated_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	uids := make([]string, len(orders))
	for i, order := range orders {
		uids[i] = order.OrderUID
	}

	query, args = r.qb.Select("order_uid", "garment_id", "name", "size", "price_per_day", "days", "total").
		From("order_items").
		Where(sq.Eq{"order_uid": uids}).
		MustSql()

	var items []RentalItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsByOrder := make(map[string][]RentalItem, len(orders))
	for _, it := range items {
		itemsByOrder[it.OrderUID] = append(itemsByOrder[it.OrderUID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsByOrder[order.OrderUID]))
	}
	return result, nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderUID string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_uid": orderUID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
