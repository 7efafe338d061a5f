package dto

import (
	"github.com/shopspring/decimal"
)

// OrderResponse is a line item as returned to callers, both on open tabs
// and inside history entries. Amount is the total for Quantity units.
type OrderResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Quantity    int             `json:"quantity"`
}

type TableResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Orders []OrderResponse `json:"orders"`
}

// Total is the tab's running total: the sum of its orders' amounts. It is
// never stored, always recomputed.
func (t TableResponse) Total() decimal.Decimal {
	total := decimal.Zero
	for _, o := range t.Orders {
		total = total.Add(o.Amount)
	}
	return total
}

// OpenTableRequest names a new tab. Names are customer-chosen, trimmed and
// capped at 15 characters before reaching the ledger.
type OpenTableRequest struct {
	Name string `json:"name" validate:"required,max=15"`
}

type RenameTableRequest struct {
	Name string `json:"name" validate:"required,max=15"`
}

type AddOrderRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Date        string          `json:"date,omitempty"`
	Quantity    int             `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type UpdateOrderRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int             `json:"quantity,omitempty" validate:"omitempty,min=1"`
}
