package entities

import (
	"errors"
	"time"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrDuplicateReport = errors.New("open report already exists for this order")
	ErrReportDecided   = errors.New("report already decided")
	ErrInvalidDecision = errors.New("invalid report decision")
)

// DamageReport is a shop-filed claim against an order. At most one PENDING
// report may exist per (shop, order) pair.
type DamageReport struct {
	ReportID    string
	ShopID      string
	OrderUID    string
	CustomerID  string
	Category    string
	Description string
	EvidenceURL string
	Status      ReportStatus
	AdminNote   string
	DecidedBy   string
	DecidedAt   *time.Time
	CreatedAt   time.Time
}
