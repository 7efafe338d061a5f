package model

// CatchAllCategory is the name of the fallback category. It is always
// surfaced first in the sale menu regardless of its SortOrder.
const CatchAllCategory = "Outros"

// Category groups menu items in the catalog. Name uniqueness is maintained
// by the dedup pass, not by a write-time constraint, so duplicate rows left
// by a partial seed can be merged instead of rejected.
type Category struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null"`
	SortOrder int    `gorm:"index;not null"`
}

func (Category) TableName() string { return "categories" }
