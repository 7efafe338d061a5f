package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is a completed, paid sale. Immutable except through explicit
// edit operations, which stamp EditedAt. DisplayAmount, when set, overrides
// the sum of the entry's orders for display and report totals — used when a
// tab's bill is split across payment methods.
type HistoryEntry struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	ClientName    string    `gorm:"not null"`
	PaidAt        time.Time `gorm:"index;not null"`
	PaymentMethod *string
	EditedAt      *time.Time
	DisplayAmount *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (HistoryEntry) TableName() string { return "history_entries" }

// HistoryOrder is a line item copied into history when a tab closes. It
// never points back at a table; the copy owns its own identity.
type HistoryOrder struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	HistoryID   string          `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date        string          `gorm:"not null"`
	Quantity    int             `gorm:"not null;default:1"`
}

func (HistoryOrder) TableName() string { return "history_orders" }
