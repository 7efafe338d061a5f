package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/model"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"
	"github.com/devItaloAraujo/i-bar-vendas/internal/seed"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// seededKey marks seeding as complete. Bumped (v3) whenever the default
// catalog changes shape enough to need a fresh seed on existing installs.
const seededKey = "menu_seeded_v3"

// CatalogService owns the menu catalog: default seeding, dedup and CRUD.
// Mutations on missing ids are silent no-ops — the UI may race a deletion
// with an in-flight edit and cannot recover from anything louder.
type CatalogService interface {
	SeedDefaultsOnce(ctx context.Context) error
	DeduplicateCatalog(ctx context.Context) error
	ListCatalog(ctx context.Context) ([]dto.MenuCategoryView, error)
	ListCatalogWithIds(ctx context.Context) ([]dto.CategoryWithItems, error)
	AddCategory(ctx context.Context, name string) (dto.CategoryResponse, error)
	RenameCategory(ctx context.Context, id, name string) error
	AddMenuItem(ctx context.Context, req dto.AddMenuItemRequest) (dto.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, id string, req dto.UpdateMenuItemRequest) error
	DeleteMenuItem(ctx context.Context, id string) error
	GetCategoryItemCount(ctx context.Context, categoryID string) (int64, error)
	DeleteCategory(ctx context.Context, id string) error
}

type catalogService struct {
	repo     repository.CatalogRepository
	settings repository.SettingRepository
	defaults []seed.Category
	seeding  singleflight.Group
}

func NewCatalogService(repo repository.CatalogRepository, settings repository.SettingRepository, defaults []seed.Category) CatalogService {
	return &catalogService{repo: repo, settings: settings, defaults: defaults}
}

// SeedDefaultsOnce populates the catalog on first run. Concurrent callers
// collapse into a single in-flight seeding via singleflight; the persisted
// flag only skips the existence check on later starts.
func (s *catalogService) SeedDefaultsOnce(ctx context.Context) error {
	_, err, _ := s.seeding.Do(seededKey, func() (interface{}, error) {
		return nil, s.seedIfNeeded(ctx)
	})
	return err
}

func (s *catalogService) seedIfNeeded(ctx context.Context) error {
	flag, err := s.settings.Get(ctx, seededKey)
	if err != nil {
		return err
	}
	if flag == "1" {
		catCount, err := s.repo.CountCategories(ctx)
		if err != nil {
			return err
		}
		itemCount, err := s.repo.CountItems(ctx)
		if err != nil {
			return err
		}
		if catCount > 0 && itemCount > 0 {
			return nil
		}
		// Flag set but tables (partially) empty. A deliberately emptied
		// catalog is indistinguishable from a corrupted one, so no reseed
		// happens here; only dedup runs.
		log.Warn().Int64("categories", catCount).Int64("items", itemCount).
			Msg("catalog marked as seeded but empty; skipping reseed")
		return s.DeduplicateCatalog(ctx)
	}

	// First run: drop any partial state before inserting.
	if err := s.repo.ClearCatalog(ctx); err != nil {
		return err
	}
	sortOrder := 0
	for _, cat := range s.defaults {
		c := &model.Category{ID: uuid.NewString(), Name: cat.Name, SortOrder: sortOrder}
		sortOrder++
		if err := s.repo.CreateCategory(ctx, c); err != nil {
			return err
		}
		for _, it := range cat.Items {
			row := &model.MenuItem{
				ID:            uuid.NewString(),
				CategoryID:    c.ID,
				Name:          it.Name,
				Price:         it.Price,
				PriceDrink:    it.PriceDrink,
				PriceTakeaway: it.PriceTakeaway,
			}
			if err := s.repo.CreateItem(ctx, row); err != nil {
				return err
			}
		}
	}
	if err := s.DeduplicateCatalog(ctx); err != nil {
		return err
	}
	if err := s.settings.Set(ctx, seededKey, "1"); err != nil {
		return err
	}
	log.Info().Int("categories", len(s.defaults)).Msg("default catalog seeded")
	return nil
}

// DeduplicateCatalog merges categories sharing a name (keeper: lowest
// sort order, then lowest id) and drops menu items repeating a
// (category, name) pair, keeping the first in id order. Safe to call
// repeatedly: the state after the first run is a fixed point.
func (s *catalogService) DeduplicateCatalog(ctx context.Context) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string][]model.Category)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, seen := byName[c.Name]; !seen {
			names = append(names, c.Name)
		}
		byName[c.Name] = append(byName[c.Name], c)
	}
	for _, name := range names {
		group := byName[name]
		if len(group) <= 1 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].SortOrder != group[j].SortOrder {
				return group[i].SortOrder < group[j].SortOrder
			}
			return group[i].ID < group[j].ID
		})
		keep := group[0]
		for _, dup := range group[1:] {
			if err := s.repo.ReassignItems(ctx, dup.ID, keep.ID); err != nil {
				return err
			}
			if err := s.repo.DeleteCategory(ctx, dup.ID); err != nil {
				return err
			}
		}
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		key := it.CategoryID + "\x00" + it.Name
		if seen[key] {
			if err := s.repo.DeleteItem(ctx, it.ID); err != nil {
				return err
			}
			continue
		}
		seen[key] = true
	}
	return nil
}

// ListCatalog returns the sale-screen projection: categories by sort
// order with the catch-all surfaced first, items reduced to name+prices.
func (s *catalogService) ListCatalog(ctx context.Context) ([]dto.MenuCategoryView, error) {
	if err := s.SeedDefaultsOnce(ctx); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Name == model.CatchAllCategory {
			return categories[j].Name != model.CatchAllCategory
		}
		return false
	})
	menu := make([]dto.MenuCategoryView, 0, len(categories))
	for _, cat := range categories {
		items, err := s.repo.ListItemsByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		views := make([]dto.MenuItemView, 0, len(items))
		for _, it := range items {
			views = append(views, dto.MenuItemView{
				Name:          it.Name,
				Price:         it.Price,
				PriceDrink:    it.PriceDrink,
				PriceTakeaway: it.PriceTakeaway,
			})
		}
		menu = append(menu, dto.MenuCategoryView{Category: cat.Name, Items: views})
	}
	return menu, nil
}

func (s *catalogService) ListCatalogWithIds(ctx context.Context) ([]dto.CategoryWithItems, error) {
	if err := s.SeedDefaultsOnce(ctx); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryWithItems, 0, len(categories))
	for _, cat := range categories {
		items, err := s.repo.ListItemsByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		rows := make([]dto.MenuItemResponse, 0, len(items))
		for _, it := range items {
			rows = append(rows, mapMenuItem(it))
		}
		result = append(result, dto.CategoryWithItems{
			ID:        cat.ID,
			Name:      cat.Name,
			SortOrder: cat.SortOrder,
			Items:     rows,
		})
	}
	return result, nil
}

// AddCategory is an idempotent create: an existing category with the same
// trimmed name is returned unchanged. New categories append at the end.
func (s *catalogService) AddCategory(ctx context.Context, name string) (dto.CategoryResponse, error) {
	trimmed := strings.TrimSpace(name)
	existing, err := s.repo.FindCategoryByName(ctx, trimmed)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}
	if existing != nil {
		return mapCategory(*existing), nil
	}
	count, err := s.repo.CountCategories(ctx)
	if err != nil {
		return dto.CategoryResponse{}, err
	}
	c := &model.Category{ID: uuid.NewString(), Name: trimmed, SortOrder: int(count)}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *catalogService) RenameCategory(ctx context.Context, id, name string) error {
	c, err := s.repo.FindCategoryByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	return s.repo.SaveCategory(ctx, c)
}

func (s *catalogService) AddMenuItem(ctx context.Context, req dto.AddMenuItemRequest) (dto.MenuItemResponse, error) {
	row := &model.MenuItem{
		ID:            uuid.NewString(),
		CategoryID:    req.CategoryID,
		Name:          strings.TrimSpace(req.Name),
		Price:         req.Price,
		PriceDrink:    req.PriceDrink,
		PriceTakeaway: req.PriceTakeaway,
	}
	if err := s.repo.CreateItem(ctx, row); err != nil {
		return dto.MenuItemResponse{}, err
	}
	return mapMenuItem(*row), nil
}

func (s *catalogService) UpdateMenuItem(ctx context.Context, id string, req dto.UpdateMenuItemRequest) error {
	row, err := s.repo.FindItemByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if req.Name != nil {
		row.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price.Set {
		row.Price = req.Price.Value
	}
	if req.PriceDrink.Set {
		row.PriceDrink = req.PriceDrink.Value
	}
	if req.PriceTakeaway.Set {
		row.PriceTakeaway = req.PriceTakeaway.Value
	}
	return s.repo.SaveItem(ctx, row)
}

func (s *catalogService) DeleteMenuItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *catalogService) GetCategoryItemCount(ctx context.Context, categoryID string) (int64, error) {
	return s.repo.CountItemsByCategory(ctx, categoryID)
}

// DeleteCategory removes the category row only. The "delete the category
// once its last item is gone" policy belongs to the caller, composed from
// DeleteMenuItem + GetCategoryItemCount + DeleteCategory.
func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder}
}

func mapMenuItem(it model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:            it.ID,
		CategoryID:    it.CategoryID,
		Name:          it.Name,
		Price:         it.Price,
		PriceDrink:    it.PriceDrink,
		PriceTakeaway: it.PriceTakeaway,
	}
}
