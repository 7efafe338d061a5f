package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OptionalDecimal distinguishes three JSON states in partial updates:
// field absent (Set=false, leave unchanged), explicit null (Set=true,
// Value=nil, remove the field) and a value (Set=true, Value!=nil).
type OptionalDecimal struct {
	Set   bool
	Value *decimal.Decimal
}

func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

func (o OptionalDecimal) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
