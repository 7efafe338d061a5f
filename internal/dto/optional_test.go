package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDecimalTriState(t *testing.T) {
	type payload struct {
		Price OptionalDecimal `json:"price"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Price.Set, "absent field leaves Set=false")

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &null))
	assert.True(t, null.Price.Set)
	assert.Nil(t, null.Price.Value, "explicit null means remove")

	var value payload
	require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &value))
	assert.True(t, value.Price.Set)
	require.NotNil(t, value.Price.Value)
	assert.True(t, value.Price.Value.Equal(decimal.NewFromFloat(12.5)))
}

func TestValidPricing(t *testing.T) {
	p := decimal.NewFromInt(10)
	q := decimal.NewFromInt(9)

	assert.True(t, AddMenuItemRequest{Price: &p}.ValidPricing())
	assert.True(t, AddMenuItemRequest{PriceDrink: &p, PriceTakeaway: &q}.ValidPricing())
	assert.False(t, AddMenuItemRequest{}.ValidPricing(), "no price at all")
	assert.False(t, AddMenuItemRequest{PriceDrink: &p}.ValidPricing(), "half a pair")
	assert.False(t, AddMenuItemRequest{Price: &p, PriceDrink: &p, PriceTakeaway: &q}.ValidPricing(), "both modes at once")
}

func TestHistoryEntryTotal(t *testing.T) {
	ten := decimal.NewFromInt(10)
	entry := HistoryEntryResponse{Orders: []OrderResponse{
		{Amount: decimal.NewFromInt(12)},
		{Amount: decimal.NewFromInt(8)},
	}}
	assert.True(t, entry.Total().Equal(decimal.NewFromInt(20)))

	entry.DisplayAmount = &ten
	assert.True(t, entry.Total().Equal(ten), "display amount overrides the sum")
}
