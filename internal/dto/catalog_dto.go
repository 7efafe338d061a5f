package dto

import (
	"github.com/shopspring/decimal"
)

// MenuItemView is the display projection of a menu item: absent price
// fields are omitted instead of serialized as zero.
type MenuItemView struct {
	Name          string           `json:"name"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	PriceDrink    *decimal.Decimal `json:"priceDrink,omitempty"`
	PriceTakeaway *decimal.Decimal `json:"priceTakeaway,omitempty"`
}

// MenuCategoryView is one catalog section as shown on the sale screen.
type MenuCategoryView struct {
	Category string         `json:"category"`
	Items    []MenuItemView `json:"items"`
}

// CategoryResponse carries the raw category row for the catalog editor.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type MenuItemResponse struct {
	ID            string           `json:"id"`
	CategoryID    string           `json:"categoryId"`
	Name          string           `json:"name"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	PriceDrink    *decimal.Decimal `json:"priceDrink,omitempty"`
	PriceTakeaway *decimal.Decimal `json:"priceTakeaway,omitempty"`
}

// CategoryWithItems is the editor shape: raw ids and sort order included.
type CategoryWithItems struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	SortOrder int                `json:"sortOrder"`
	Items     []MenuItemResponse `json:"items"`
}

type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,max=40"`
}

type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required,max=40"`
}

type AddMenuItemRequest struct {
	CategoryID    string           `json:"categoryId" validate:"required,uuid"`
	Name          string           `json:"name" validate:"required,max=60"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	PriceDrink    *decimal.Decimal `json:"priceDrink,omitempty"`
	PriceTakeaway *decimal.Decimal `json:"priceTakeaway,omitempty"`
}

// ValidPricing reports whether exactly one pricing mode was supplied:
// a single price, or both of the drink/takeaway pair.
func (r AddMenuItemRequest) ValidPricing() bool {
	single := r.Price != nil
	dual := r.PriceDrink != nil && r.PriceTakeaway != nil
	half := (r.PriceDrink != nil) != (r.PriceTakeaway != nil)
	return (single || dual) && !half && !(single && dual)
}

// UpdateMenuItemRequest is a partial update. The price fields are
// tri-state: absent leaves the field unchanged, explicit null removes it
// (switching the item's pricing mode), a value replaces it.
type UpdateMenuItemRequest struct {
	Name          *string         `json:"name,omitempty" validate:"omitempty,max=60"`
	Price         OptionalDecimal `json:"price"`
	PriceDrink    OptionalDecimal `json:"priceDrink"`
	PriceTakeaway OptionalDecimal `json:"priceTakeaway"`
}

type CategoryItemCountResponse struct {
	CategoryID string `json:"categoryId"`
	Count      int64  `json:"count"`
}
