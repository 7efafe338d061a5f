package repository

import (
	"context"

	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository is the data access contract for the catalog aggregate
// (categories plus menu items). Services depend on this interface, not on
// the concrete GORM implementation, enabling unit testing via stubs.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *model.Category) error
	// ListCategories returns all categories ordered by sort_order, id.
	ListCategories(ctx context.Context) ([]model.Category, error)
	FindCategoryByID(ctx context.Context, id string) (*model.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*model.Category, error)
	SaveCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CountCategories(ctx context.Context) (int64, error)

	CreateItem(ctx context.Context, it *model.MenuItem) error
	FindItemByID(ctx context.Context, id string) (*model.MenuItem, error)
	// ListItems returns all items ordered by id, the store's stable
	// iteration order the dedup pass relies on.
	ListItems(ctx context.Context) ([]model.MenuItem, error)
	ListItemsByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error)
	SaveItem(ctx context.Context, it *model.MenuItem) error
	DeleteItem(ctx context.Context, id string) error
	// ReassignItems moves every item of one category to another; used when
	// the dedup pass merges duplicate categories.
	ReassignItems(ctx context.Context, fromCategoryID, toCategoryID string) error
	CountItems(ctx context.Context) (int64, error)
	CountItemsByCategory(ctx context.Context, categoryID string) (int64, error)

	// ClearCatalog wipes items then categories; only the seeder calls it,
	// to drop partial state before a first-run insert.
	ClearCatalog(ctx context.Context) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *catalogRepo) FindCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) FindCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("sort_order ASC, id ASC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) SaveCategory(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *catalogRepo) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}

func (r *catalogRepo) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&n).Error
	return n, err
}

func (r *catalogRepo) CreateItem(ctx context.Context, it *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *catalogRepo) FindItemByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var it model.MenuItem
	err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *catalogRepo) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	var list []model.MenuItem
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *catalogRepo) ListItemsByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	var list []model.MenuItem
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *catalogRepo) SaveItem(ctx context.Context, it *model.MenuItem) error {
	// Save writes every column, so price fields nulled by the service are
	// cleared in the row as well.
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *catalogRepo) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.MenuItem{}, "id = ?", id).Error
}

func (r *catalogRepo) ReassignItems(ctx context.Context, fromCategoryID, toCategoryID string) error {
	return r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("category_id = ?", fromCategoryID).
		Update("category_id", toCategoryID).Error
}

func (r *catalogRepo) CountItems(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&n).Error
	return n, err
}

func (r *catalogRepo) CountItemsByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *catalogRepo) ClearCatalog(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.MenuItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Category{}).Error
}

func (r *catalogRepo) DB() *gorm.DB { return r.db }
