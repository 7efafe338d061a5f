package model

import (
	"github.com/shopspring/decimal"
)

// Table is a currently-open, unpaid tab identified by a customer-chosen
// name. The row ceases to exist when the tab is closed or deleted; its
// orders survive only as copies under a HistoryEntry.
type Table struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"not null"`
}

func (Table) TableName() string { return "active_tables" }

// TableOrder is one line item on an open tab. Amount is the total for
// Quantity units, not a unit price. Date is an opaque day stamp
// ("2006-01-02") carried for display and copied verbatim into history.
type TableOrder struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	TableID     string          `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date        string          `gorm:"index;not null"`
	Quantity    int             `gorm:"not null;default:1"`
}

func (TableOrder) TableName() string { return "table_orders" }
