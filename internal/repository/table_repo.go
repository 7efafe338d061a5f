package repository

import (
	"context"

	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"gorm.io/gorm"
)

// TableRepository is the data access contract for open tabs and their line
// items. Methods with a Tx suffix run inside a caller-owned transaction —
// the tab-close path must delete a table's orders and its row atomically.
type TableRepository interface {
	CreateTable(ctx context.Context, t *model.Table) error
	ListTables(ctx context.Context) ([]model.Table, error)
	FindTableByID(ctx context.Context, id string) (*model.Table, error)
	SaveTable(ctx context.Context, t *model.Table) error

	CreateOrder(ctx context.Context, o *model.TableOrder) error
	FindOrderByID(ctx context.Context, id string) (*model.TableOrder, error)
	ListOrdersByTable(ctx context.Context, tableID string) ([]model.TableOrder, error)
	SaveOrder(ctx context.Context, o *model.TableOrder) error
	DeleteOrder(ctx context.Context, id string) error

	DeleteOrdersByTableTx(tx *gorm.DB, tableID string) error
	DeleteTableTx(tx *gorm.DB, id string) error

	DB() *gorm.DB
}

type tableRepo struct{ db *gorm.DB }

func NewTableRepository(db *gorm.DB) TableRepository { return &tableRepo{db: db} }

func (r *tableRepo) CreateTable(ctx context.Context, t *model.Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tableRepo) ListTables(ctx context.Context) ([]model.Table, error) {
	var list []model.Table
	err := r.db.WithContext(ctx).Find(&list).Error
	return list, err
}

func (r *tableRepo) FindTableByID(ctx context.Context, id string) (*model.Table, error) {
	var t model.Table
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) SaveTable(ctx context.Context, t *model.Table) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tableRepo) CreateOrder(ctx context.Context, o *model.TableOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *tableRepo) FindOrderByID(ctx context.Context, id string) (*model.TableOrder, error) {
	var o model.TableOrder
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *tableRepo) ListOrdersByTable(ctx context.Context, tableID string) ([]model.TableOrder, error) {
	var list []model.TableOrder
	err := r.db.WithContext(ctx).Where("table_id = ?", tableID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *tableRepo) SaveOrder(ctx context.Context, o *model.TableOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *tableRepo) DeleteOrder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.TableOrder{}, "id = ?", id).Error
}

func (r *tableRepo) DeleteOrdersByTableTx(tx *gorm.DB, tableID string) error {
	return tx.Delete(&model.TableOrder{}, "table_id = ?", tableID).Error
}

func (r *tableRepo) DeleteTableTx(tx *gorm.DB, id string) error {
	return tx.Delete(&model.Table{}, "id = ?", id).Error
}

func (r *tableRepo) DB() *gorm.DB { return r.db }
