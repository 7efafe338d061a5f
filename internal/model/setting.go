package model

// Setting is a single process-wide key/value pair persisted outside the
// entity tables. Currently only the seeding marker lives here; it is an
// optimization to skip the startup existence check, never a source of truth.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (Setting) TableName() string { return "settings" }
