package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MethodTotal is one per-payment-method subtotal line in the full report.
type MethodTotal struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

// ReportRow is one printed line: a history entry reduced to its report
// columns, oldest first.
type ReportRow struct {
	PaidAt        time.Time       `json:"paidAt"`
	ClientName    string          `json:"clientName"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}

// SalesReport is the read-only projection the PDF renderer consumes. It
// carries no invariants of its own.
type SalesReport struct {
	Title       string          `json:"title"`
	PeriodLabel string          `json:"periodLabel"`
	GeneratedAt time.Time       `json:"generatedAt"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	ByMethod    []MethodTotal   `json:"byMethod,omitempty"`
	Rows        []ReportRow     `json:"rows"`
}

type DailyTotalResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
