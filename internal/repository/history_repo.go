package repository

import (
	"context"

	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"gorm.io/gorm"
)

// HistoryRepository is the data access contract for the append-only sales
// record. Writes go through Tx methods: an entry and its order rows are
// always created (or replaced) inside one transaction.
type HistoryRepository interface {
	// ListEntries returns all entries ordered by paid_at descending.
	ListEntries(ctx context.Context) ([]model.HistoryEntry, error)
	FindEntryByID(ctx context.Context, id string) (*model.HistoryEntry, error)
	ListOrdersByEntry(ctx context.Context, historyID string) ([]model.HistoryOrder, error)

	CreateEntryTx(tx *gorm.DB, e *model.HistoryEntry) error
	SaveEntryTx(tx *gorm.DB, e *model.HistoryEntry) error
	CreateOrderTx(tx *gorm.DB, o *model.HistoryOrder) error
	DeleteOrdersByEntryTx(tx *gorm.DB, historyID string) error

	DB() *gorm.DB
}

type historyRepo struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) HistoryRepository { return &historyRepo{db: db} }

func (r *historyRepo) ListEntries(ctx context.Context) ([]model.HistoryEntry, error) {
	var list []model.HistoryEntry
	err := r.db.WithContext(ctx).Order("paid_at DESC").Find(&list).Error
	return list, err
}

func (r *historyRepo) FindEntryByID(ctx context.Context, id string) (*model.HistoryEntry, error) {
	var e model.HistoryEntry
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *historyRepo) ListOrdersByEntry(ctx context.Context, historyID string) ([]model.HistoryOrder, error) {
	var list []model.HistoryOrder
	err := r.db.WithContext(ctx).Where("history_id = ?", historyID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *historyRepo) CreateEntryTx(tx *gorm.DB, e *model.HistoryEntry) error {
	return tx.Create(e).Error
}

func (r *historyRepo) SaveEntryTx(tx *gorm.DB, e *model.HistoryEntry) error {
	return tx.Save(e).Error
}

func (r *historyRepo) CreateOrderTx(tx *gorm.DB, o *model.HistoryOrder) error {
	return tx.Create(o).Error
}

func (r *historyRepo) DeleteOrdersByEntryTx(tx *gorm.DB, historyID string) error {
	return tx.Delete(&model.HistoryOrder{}, "history_id = ?", historyID).Error
}

func (r *historyRepo) DB() *gorm.DB { return r.db }
