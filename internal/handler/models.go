package handler

import (
	"time"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
)

// Order is the API representation of an order
type Order struct {
	OrderUID       string       `json:"order_uid"`
	CustomerID     string       `json:"customer_id"`
	ShopID         string       `json:"shop_id"`
	Status         string       `json:"status"`
	Items          []RentalItem `json:"items,omitempty"`
	GrandTotal     int          `json:"grand_total"`
	Commission     int          `json:"commission"`
	VAT            int          `json:"vat"`
	NetIncome      int          `json:"net_income"`
	CommissionRate int          `json:"commission_rate"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type RentalItem struct {
	GarmentID   string `json:"garment_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Size        string `json:"size,omitempty"`
	PricePerDay int    `json:"price_per_day" validate:"gte=0"`
	Days        int    `json:"days" validate:"gt=0"`
	Total       int    `json:"total,omitempty"`
}

type CreateOrderRequest struct {
	CustomerID string       `json:"customer_id" validate:"required"`
	ShopID     string       `json:"shop_id" validate:"required"`
	Paid       bool         `json:"paid"`
	Items      []RentalItem `json:"items" validate:"required,min=1,dive"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type Shop struct {
	ShopID       string     `json:"shop_id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	RejectReason string     `json:"reject_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type RegisterShopRequest struct {
	Name string `json:"name" validate:"required"`
}

type RejectShopRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type FileReportRequest struct {
	ShopID      string `json:"shop_id" validate:"required"`
	OrderUID    string `json:"order_uid" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	EvidenceURL string `json:"evidence_url" validate:"omitempty,url"`
}

type DecideReportRequest struct {
	Decision string `json:"decision" validate:"required"`
	Note     string `json:"note"`
}

type DamageReport struct {
	ReportID    string     `json:"report_id"`
	ShopID      string     `json:"shop_id"`
	OrderUID    string     `json:"order_uid"`
	CustomerID  string     `json:"customer_id"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	EvidenceURL string     `json:"evidence_url,omitempty"`
	Status      string     `json:"status"`
	AdminNote   string     `json:"admin_note,omitempty"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	Audience  string    `json:"audience"`
	Type      string    `json:"type"`
	EventCode string    `json:"event_code"`
	OrderUID  string    `json:"order_uid,omitempty"`
	ShopID    string    `json:"shop_id,omitempty"`
	ThreadID  string    `json:"thread_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type ChatEventRequest struct {
	MessageID   string `json:"message_id" validate:"required"`
	RecipientID string `json:"recipient_id" validate:"required"`
	Preview     string `json:"preview"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]RentalItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, RentalItem{
			GarmentID:   it.GarmentID,
			Name:        it.Name,
			Size:        it.Size,
			PricePerDay: it.PricePerDay,
			Days:        it.Days,
			Total:       it.Total,
		})
	}

	return Order{
		OrderUID:       o.OrderUID,
		CustomerID:     o.CustomerID,
		ShopID:         o.ShopID,
		Status:         string(o.Status),
		Items:          items,
		GrandTotal:     o.GrandTotal,
		Commission:     o.Commission,
		VAT:            o.VAT,
		NetIncome:      o.NetIncome,
		CommissionRate: o.CommissionRate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func CreateOrderJSONToInput(req CreateOrderRequest) service.CreateOrderInput {
	items := make([]service.RentalItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.RentalItemInput{
			GarmentID:   it.GarmentID,
			Name:        it.Name,
			Size:        it.Size,
			PricePerDay: it.PricePerDay,
			Days:        it.Days,
		})
	}

	return service.CreateOrderInput{
		CustomerID: req.CustomerID,
		ShopID:     req.ShopID,
		Paid:       req.Paid,
		Items:      items,
	}
}

func ShopEntityToJSON(s entities.Shop) Shop {
	return Shop{
		ShopID:       s.ShopID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Status:       string(s.Status),
		ApprovedBy:   s.ApprovedBy,
		ApprovedAt:   s.ApprovedAt,
		RejectReason: s.RejectReason,
		CreatedAt:    s.CreatedAt,
	}
}

func ReportEntityToJSON(r entities.DamageReport) DamageReport {
	return DamageReport{
		ReportID:    r.ReportID,
		ShopID:      r.ShopID,
		OrderUID:    r.OrderUID,
		CustomerID:  r.CustomerID,
		Category:    r.Category,
		Description: r.Description,
		EvidenceURL: r.EvidenceURL,
		Status:      string(r.Status),
		AdminNote:   r.AdminNote,
		DecidedBy:   r.DecidedBy,
		DecidedAt:   r.DecidedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func NotificationEntityToJSON(n entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Audience:  string(n.Audience),
		Type:      string(n.Type),
		EventCode: n.EventCode,
		OrderUID:  n.OrderUID,
		ShopID:    n.ShopID,
		ThreadID:  n.ThreadID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
