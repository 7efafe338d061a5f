package service

// In-memory repository stubs. DB() returns nil, which makes runTx call its
// body directly — service transaction boundaries are covered by the fact
// that the same code path runs, not by a real SQLite file.

import (
	"context"
	"sort"
	"sync"

	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"gorm.io/gorm"
)

// ── catalog ──────────────────────────────────────────────────────────────────

type memCatalogRepo struct {
	mu         sync.Mutex
	categories map[string]model.Category
	items      map[string]model.MenuItem
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{
		categories: make(map[string]model.Category),
		items:      make(map[string]model.MenuItem),
	}
}

func (r *memCatalogRepo) CreateCategory(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *memCatalogRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *memCatalogRepo) FindCategoryByID(_ context.Context, id string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *memCatalogRepo) FindCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	list, _ := r.ListCategories(ctx)
	for _, c := range list {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCatalogRepo) SaveCategory(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *memCatalogRepo) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *memCatalogRepo) CountCategories(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.categories)), nil
}

func (r *memCatalogRepo) CreateItem(_ context.Context, it *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = *it
	return nil
}

func (r *memCatalogRepo) FindItemByID(_ context.Context, id string) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &it, nil
}

func (r *memCatalogRepo) ListItems(_ context.Context) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		list = append(list, it)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memCatalogRepo) ListItemsByCategory(ctx context.Context, categoryID string) ([]model.MenuItem, error) {
	all, _ := r.ListItems(ctx)
	list := make([]model.MenuItem, 0)
	for _, it := range all {
		if it.CategoryID == categoryID {
			list = append(list, it)
		}
	}
	return list, nil
}

func (r *memCatalogRepo) SaveItem(_ context.Context, it *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = *it
	return nil
}

func (r *memCatalogRepo) DeleteItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memCatalogRepo) ReassignItems(_ context.Context, fromCategoryID, toCategoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.CategoryID == fromCategoryID {
			it.CategoryID = toCategoryID
			r.items[id] = it
		}
	}
	return nil
}

func (r *memCatalogRepo) CountItems(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memCatalogRepo) CountItemsByCategory(ctx context.Context, categoryID string) (int64, error) {
	list, _ := r.ListItemsByCategory(ctx, categoryID)
	return int64(len(list)), nil
}

func (r *memCatalogRepo) ClearCatalog(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[string]model.Category)
	r.items = make(map[string]model.MenuItem)
	return nil
}

func (r *memCatalogRepo) DB() *gorm.DB { return nil }

// ── settings ─────────────────────────────────────────────────────────────────

type memSettingRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{values: make(map[string]string)}
}

func (r *memSettingRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *memSettingRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// ── tables ───────────────────────────────────────────────────────────────────

type memTableRepo struct {
	mu     sync.Mutex
	tables map[string]model.Table
	orders map[string]model.TableOrder
}

func newMemTableRepo() *memTableRepo {
	return &memTableRepo{
		tables: make(map[string]model.Table),
		orders: make(map[string]model.TableOrder),
	}
}

func (r *memTableRepo) CreateTable(_ context.Context, t *model.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.ID] = *t
	return nil
}

func (r *memTableRepo) ListTables(_ context.Context) ([]model.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.Table, 0, len(r.tables))
	for _, t := range r.tables {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memTableRepo) FindTableByID(_ context.Context, id string) (*model.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *memTableRepo) SaveTable(_ context.Context, t *model.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.ID] = *t
	return nil
}

func (r *memTableRepo) CreateOrder(_ context.Context, o *model.TableOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memTableRepo) FindOrderByID(_ context.Context, id string) (*model.TableOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (r *memTableRepo) ListOrdersByTable(_ context.Context, tableID string) ([]model.TableOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.TableOrder, 0)
	for _, o := range r.orders {
		if o.TableID == tableID {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memTableRepo) SaveOrder(_ context.Context, o *model.TableOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memTableRepo) DeleteOrder(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *memTableRepo) DeleteOrdersByTableTx(_ *gorm.DB, tableID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.orders {
		if o.TableID == tableID {
			delete(r.orders, id)
		}
	}
	return nil
}

func (r *memTableRepo) DeleteTableTx(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, id)
	return nil
}

func (r *memTableRepo) DB() *gorm.DB { return nil }

// ── history ──────────────────────────────────────────────────────────────────

type memHistoryRepo struct {
	mu      sync.Mutex
	entries map[string]model.HistoryEntry
	orders  map[string]model.HistoryOrder
}

func newMemHistoryRepo() *memHistoryRepo {
	return &memHistoryRepo{
		entries: make(map[string]model.HistoryEntry),
		orders:  make(map[string]model.HistoryOrder),
	}
}

func (r *memHistoryRepo) ListEntries(_ context.Context) ([]model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.HistoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PaidAt.After(list[j].PaidAt) })
	return list, nil
}

func (r *memHistoryRepo) FindEntryByID(_ context.Context, id string) (*model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *memHistoryRepo) ListOrdersByEntry(_ context.Context, historyID string) ([]model.HistoryOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.HistoryOrder, 0)
	for _, o := range r.orders {
		if o.HistoryID == historyID {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memHistoryRepo) CreateEntryTx(_ *gorm.DB, e *model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = *e
	return nil
}

func (r *memHistoryRepo) SaveEntryTx(_ *gorm.DB, e *model.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = *e
	return nil
}

func (r *memHistoryRepo) CreateOrderTx(_ *gorm.DB, o *model.HistoryOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memHistoryRepo) DeleteOrdersByEntryTx(_ *gorm.DB, historyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.orders {
		if o.HistoryID == historyID {
			delete(r.orders, id)
		}
	}
	return nil
}

func (r *memHistoryRepo) DB() *gorm.DB { return nil }
