package service

import (
	"context"
	"errors"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/model"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableService owns open tabs and their line items. Input is validated by
// the caller (trim, name length, positive amounts); mutations on missing
// or mismatched ids are silent no-ops.
type TableService interface {
	ListOpenTables(ctx context.Context) ([]dto.TableResponse, error)
	GetTable(ctx context.Context, id string) (*dto.TableResponse, error)
	OpenTable(ctx context.Context, name string) (dto.TableResponse, error)
	RenameTable(ctx context.Context, id, name string) error
	DeleteTable(ctx context.Context, id string) error
	AddOrder(ctx context.Context, tableID string, req dto.AddOrderRequest) (dto.OrderResponse, error)
	UpdateOrder(ctx context.Context, tableID, orderID string, req dto.UpdateOrderRequest) error
	RemoveOrder(ctx context.Context, tableID, orderID string) error
}

type tableService struct {
	repo repository.TableRepository
}

func NewTableService(repo repository.TableRepository) TableService {
	return &tableService{repo: repo}
}

func (s *tableService) ListOpenTables(ctx context.Context) ([]dto.TableResponse, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		composed, err := s.composeTable(ctx, t)
		if err != nil {
			return nil, err
		}
		result = append(result, composed)
	}
	return result, nil
}

// GetTable returns one tab with its orders, or nil when it no longer
// exists (closed or deleted since the caller last looked).
func (s *tableService) GetTable(ctx context.Context, id string) (*dto.TableResponse, error) {
	t, err := s.repo.FindTableByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	composed, err := s.composeTable(ctx, *t)
	if err != nil {
		return nil, err
	}
	return &composed, nil
}

func (s *tableService) OpenTable(ctx context.Context, name string) (dto.TableResponse, error) {
	t := &model.Table{ID: uuid.NewString(), Name: name}
	if err := s.repo.CreateTable(ctx, t); err != nil {
		return dto.TableResponse{}, err
	}
	return dto.TableResponse{ID: t.ID, Name: t.Name, Orders: []dto.OrderResponse{}}, nil
}

func (s *tableService) RenameTable(ctx context.Context, id, name string) error {
	t, err := s.repo.FindTableByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	t.Name = name
	return s.repo.SaveTable(ctx, t)
}

// DeleteTable removes a tab and its orders in one transaction, so no
// reader ever observes orders pointing at a missing table.
func (s *tableService) DeleteTable(ctx context.Context, id string) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteOrdersByTableTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTableTx(tx, id)
	})
}

// AddOrder always appends a fresh row — adding the same product twice
// yields two line items. Quantity bumps go through UpdateOrder instead.
func (s *tableService) AddOrder(ctx context.Context, tableID string, req dto.AddOrderRequest) (dto.OrderResponse, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	o := &model.TableOrder{
		ID:          uuid.NewString(),
		TableID:     tableID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Quantity:    quantity,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return dto.OrderResponse{}, err
	}
	return mapOrder(*o), nil
}

func (s *tableService) UpdateOrder(ctx context.Context, tableID, orderID string, req dto.UpdateOrderRequest) error {
	o, err := s.repo.FindOrderByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	// Ownership guard: stale UI state may reference an order that has since
	// moved or vanished.
	if o.TableID != tableID {
		return nil
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.Amount != nil {
		o.Amount = *req.Amount
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	return s.repo.SaveOrder(ctx, o)
}

func (s *tableService) RemoveOrder(ctx context.Context, tableID, orderID string) error {
	o, err := s.repo.FindOrderByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.TableID != tableID {
		return nil
	}
	return s.repo.DeleteOrder(ctx, o.ID)
}

func (s *tableService) composeTable(ctx context.Context, t model.Table) (dto.TableResponse, error) {
	orders, err := s.repo.ListOrdersByTable(ctx, t.ID)
	if err != nil {
		return dto.TableResponse{}, err
	}
	rows := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, mapOrder(o))
	}
	return dto.TableResponse{ID: t.ID, Name: t.Name, Orders: rows}, nil
}

func mapOrder(o model.TableOrder) dto.OrderResponse {
	// Legacy rows encode quantity as a " x N" description suffix; parsing
	// it here keeps those rows displaying correctly.
	description, quantity := ParseOrderDescription(o.Description, o.Quantity)
	return dto.OrderResponse{
		ID:          o.ID,
		Description: description,
		Amount:      o.Amount,
		Date:        o.Date,
		Quantity:    quantity,
	}
}
