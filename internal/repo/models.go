package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type Order struct {
	OrderUID       string    `db:"order_uid"`
	CustomerID     string    `db:"customer_id"`
	ShopID         string    `db:"shop_id"`
	Status         string    `db:"status"`
	GrandTotal     int       `db:"grand_total"`
	Commission     int       `db:"commission"`
	VAT            int       `db:"vat"`
	NetIncome      int       `db:"net_income"`
	CommissionRate int       `db:"commission_rate"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type RentalItem struct {
	OrderUID    string         `db:"order_uid"`
	GarmentID   string         `db:"garment_id"`
	Name        string         `db:"name"`
	Size        sql.NullString `db:"size"`
	PricePerDay int            `db:"price_per_day"`
	Days        int            `db:"days"`
	Total       int            `db:"total"`
}

type Shop struct {
	ShopID       string         `db:"shop_id"`
	OwnerID      string         `db:"owner_id"`
	Name         string         `db:"name"`
	Status       string         `db:"status"`
	ApprovedBy   sql.NullString `db:"approved_by"`
	ApprovedAt   sql.NullTime   `db:"approved_at"`
	RejectReason sql.NullString `db:"reject_reason"`
	CreatedAt    time.Time      `db:"created_at"`
}

type Notification struct {
	ID          string         `db:"id"`
	RecipientID string         `db:"recipient_id"`
	Audience    string         `db:"audience"`
	Type        string         `db:"type"`
	EventCode   string         `db:"event_code"`
	OrderUID    sql.NullString `db:"order_uid"`
	ShopID      sql.NullString `db:"shop_id"`
	ThreadID    sql.NullString `db:"thread_id"`
	Title       string         `db:"title"`
	Message     sql.NullString `db:"message"`
	Link        sql.NullString `db:"link"`
	Read        bool           `db:"read"`
	DedupeKey   sql.NullString `db:"dedupe_key"`
	CreatedAt   time.Time      `db:"created_at"`
}

type DamageReport struct {
	ReportID    string         `db:"report_id"`
	ShopID      string         `db:"shop_id"`
	OrderUID    string         `db:"order_uid"`
	CustomerID  string         `db:"customer_id"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	EvidenceURL sql.NullString `db:"evidence_url"`
	Status      string         `db:"status"`
	AdminNote   sql.NullString `db:"admin_note"`
	DecidedBy   sql.NullString `db:"decided_by"`
	DecidedAt   sql.NullTime   `db:"decided_at"`
	CreatedAt   time.Time      `db:"created_at"`
}

func OrderToEntity(o Order, items []RentalItem) entities.Order {
	order := entities.Order{
		OrderUID:       o.OrderUID,
		CustomerID:     o.CustomerID,
		ShopID:         o.ShopID,
		Status:         entities.OrderStatus(o.Status),
		GrandTotal:     o.GrandTotal,
		Commission:     o.Commission,
		VAT:            o.VAT,
		NetIncome:      o.NetIncome,
		CommissionRate: o.CommissionRate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.RentalItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, entities.RentalItem{
				GarmentID:   it.GarmentID,
				Name:        it.Name,
				Size:        nullStringToString(it.Size),
				PricePerDay: it.PricePerDay,
				Days:        it.Days,
				Total:       it.Total,
			})
		}
	}

	return order
}

func ShopToEntity(s Shop) entities.Shop {
	shop := entities.Shop{
		ShopID:       s.ShopID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Status:       entities.ShopStatus(s.Status),
		ApprovedBy:   nullStringToString(s.ApprovedBy),
		RejectReason: nullStringToString(s.RejectReason),
		CreatedAt:    s.CreatedAt,
	}
	if s.ApprovedAt.Valid {
		t := s.ApprovedAt.Time
		shop.ApprovedAt = &t
	}
	return shop
}

func NotificationToEntity(n Notification) entities.Notification {
	return entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Audience:    entities.Audience(n.Audience),
		Type:        entities.NotificationType(n.Type),
		EventCode:   n.EventCode,
		OrderUID:    nullStringToString(n.OrderUID),
		ShopID:      nullStringToString(n.ShopID),
		ThreadID:    nullStringToString(n.ThreadID),
		Title:       n.Title,
		Message:     nullStringToString(n.Message),
		Link:        nullStringToString(n.Link),
		Read:        n.Read,
		DedupeKey:   nullStringToString(n.DedupeKey),
		CreatedAt:   n.CreatedAt,
	}
}

func ReportToEntity(r DamageReport) entities.DamageReport {
	report := entities.DamageReport{
		ReportID:    r.ReportID,
		ShopID:      r.ShopID,
		OrderUID:    r.OrderUID,
		CustomerID:  r.CustomerID,
		Category:    r.Category,
		Description: r.Description,
		EvidenceURL: nullStringToString(r.EvidenceURL),
		Status:      entities.ReportStatus(r.Status),
		AdminNote:   nullStringToString(r.AdminNote),
		DecidedBy:   nullStringToString(r.DecidedBy),
		CreatedAt:   r.CreatedAt,
	}
	if r.DecidedAt.Valid {
		t := r.DecidedAt.Time
		report.DecidedAt = &t
	}
	return report
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
