package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type HistoryEntryResponse struct {
	ID            string           `json:"id"`
	ClientName    string           `json:"clientName"`
	Orders        []OrderResponse  `json:"orders"`
	PaidAt        time.Time        `json:"paidAt"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	EditedAt      *time.Time       `json:"editedAt,omitempty"`
	DisplayAmount *decimal.Decimal `json:"displayAmount,omitempty"`
}

// Total is the entry's reported value: DisplayAmount when set (split
// payments), otherwise the sum of the embedded orders.
func (e HistoryEntryResponse) Total() decimal.Decimal {
	if e.DisplayAmount != nil {
		return *e.DisplayAmount
	}
	total := decimal.Zero
	for _, o := range e.Orders {
		total = total.Add(o.Amount)
	}
	return total
}

// OrderPayload is a line item supplied by the caller. ID is optional; a
// fresh one is generated when absent. Quantity defaults to 1.
type OrderPayload struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Date        string          `json:"date,omitempty"`
	Quantity    int             `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

type AppendHistoryRequest struct {
	ClientName    string           `json:"clientName" validate:"required"`
	PaidAt        time.Time        `json:"paidAt" validate:"required"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Orders        []OrderPayload   `json:"orders" validate:"required,min=1,dive"`
	DisplayAmount *decimal.Decimal `json:"displayAmount,omitempty"`
}

// EditHistoryRequest is a partial update. Supplying Orders replaces the
// entry's whole order set and stamps EditedAt; omitting it leaves the set
// untouched.
type EditHistoryRequest struct {
	ClientName    *string         `json:"clientName,omitempty"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	DisplayAmount OptionalDecimal `json:"displayAmount"`
	Orders        []OrderPayload  `json:"orders,omitempty" validate:"omitempty,dive"`
}

type CloseTableRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type SplitPayment struct {
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

type CloseSplitRequest struct {
	Splits []SplitPayment `json:"splits" validate:"required,min=1,dive"`
}

type QuickSaleRequest struct {
	Total         decimal.Decimal `json:"total" validate:"required,gt=0"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
}
