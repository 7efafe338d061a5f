package model

import (
	"github.com/shopspring/decimal"
)

// MenuItem is a product on the menu. Exactly one pricing mode holds: a
// single Price, or the PriceDrink/PriceTakeaway pair. Absence of a field
// (nil), not zero, means "not applicable for this mode".
type MenuItem struct {
	ID            string           `gorm:"type:uuid;primaryKey"`
	CategoryID    string           `gorm:"type:uuid;index;not null"`
	Name          string           `gorm:"not null"`
	Price         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PriceDrink    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PriceTakeaway *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (MenuItem) TableName() string { return "menu_items" }

// PricingMode is the tagged form of the either/or pricing shape. Business
// logic branches on this instead of checking individual fields at call sites.
type PricingMode int

const (
	PricingNone PricingMode = iota
	PricingSingle
	PricingDual
)

func (m *MenuItem) Pricing() PricingMode {
	switch {
	case m.PriceDrink != nil && m.PriceTakeaway != nil:
		return PricingDual
	case m.Price != nil:
		return PricingSingle
	default:
		return PricingNone
	}
}
