package infra

import (
	"fmt"

	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite store and migrates the schema.
// Everything the application persists lives in this one local file, so it
// keeps working with no network at all; WAL mode keeps readers unblocked
// while a write transaction (tab close) is in flight.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; funneling all access through one
	// connection avoids SQLITE_BUSY on concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Category{},
		&model.MenuItem{},
		&model.Table{},
		&model.TableOrder{},
		&model.HistoryEntry{},
		&model.HistoryOrder{},
		&model.Setting{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
