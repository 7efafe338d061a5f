package service

import (
	"context"
	"errors"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/model"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryService owns the append-only record of completed sales. Entries
// are immutable except through EditEntry, which stamps EditedAt whenever
// the order set is replaced.
type HistoryService interface {
	ListHistory(ctx context.Context) ([]dto.HistoryEntryResponse, error)
	AppendEntry(ctx context.Context, req dto.AppendHistoryRequest) (dto.HistoryEntryResponse, error)
	// AppendEntryTx is AppendEntry inside a caller-owned transaction; the
	// tab closer uses it to write history and drop the table atomically.
	AppendEntryTx(tx *gorm.DB, req dto.AppendHistoryRequest) (dto.HistoryEntryResponse, error)
	EditEntry(ctx context.Context, id string, req dto.EditHistoryRequest) error
}

type historyService struct {
	repo repository.HistoryRepository
	now  func() time.Time
}

func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo, now: time.Now}
}

func (s *historyService) ListHistory(ctx context.Context) ([]dto.HistoryEntryResponse, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		orders, err := s.repo.ListOrdersByEntry(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, composeEntry(e, orders))
	}
	return result, nil
}

func (s *historyService) AppendEntry(ctx context.Context, req dto.AppendHistoryRequest) (dto.HistoryEntryResponse, error) {
	var entry dto.HistoryEntryResponse
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.AppendEntryTx(tx, req)
		return txErr
	})
	return entry, err
}

func (s *historyService) AppendEntryTx(tx *gorm.DB, req dto.AppendHistoryRequest) (dto.HistoryEntryResponse, error) {
	e := &model.HistoryEntry{
		ID:            uuid.NewString(),
		ClientName:    req.ClientName,
		PaidAt:        req.PaidAt,
		PaymentMethod: req.PaymentMethod,
		DisplayAmount: req.DisplayAmount,
	}
	if err := s.repo.CreateEntryTx(tx, e); err != nil {
		return dto.HistoryEntryResponse{}, err
	}
	orders := make([]model.HistoryOrder, 0, len(req.Orders))
	for _, o := range req.Orders {
		row := historyOrderFromPayload(e.ID, o)
		if err := s.repo.CreateOrderTx(tx, &row); err != nil {
			return dto.HistoryEntryResponse{}, err
		}
		orders = append(orders, row)
	}
	return composeEntry(*e, orders), nil
}

// EditEntry applies a partial update. A supplied order list replaces the
// entry's whole set (delete-all-then-reinsert) and stamps EditedAt; an
// absent one leaves the set and the stamp untouched.
func (s *historyService) EditEntry(ctx context.Context, id string, req dto.EditHistoryRequest) error {
	e, err := s.repo.FindEntryByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if req.ClientName != nil {
		e.ClientName = *req.ClientName
	}
	if req.PaidAt != nil {
		e.PaidAt = *req.PaidAt
	}
	if req.PaymentMethod != nil {
		e.PaymentMethod = req.PaymentMethod
	}
	if req.DisplayAmount.Set {
		e.DisplayAmount = req.DisplayAmount.Value
	}
	if req.Orders != nil {
		editedAt := s.now()
		e.EditedAt = &editedAt
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SaveEntryTx(tx, e); err != nil {
			return err
		}
		if req.Orders == nil {
			return nil
		}
		if err := s.repo.DeleteOrdersByEntryTx(tx, e.ID); err != nil {
			return err
		}
		for _, o := range req.Orders {
			row := historyOrderFromPayload(e.ID, o)
			if err := s.repo.CreateOrderTx(tx, &row); err != nil {
				return err
			}
		}
		return nil
	})
}

func historyOrderFromPayload(historyID string, o dto.OrderPayload) model.HistoryOrder {
	id := o.ID
	if id == "" {
		id = uuid.NewString()
	}
	quantity := o.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return model.HistoryOrder{
		ID:          id,
		HistoryID:   historyID,
		Description: o.Description,
		Amount:      o.Amount,
		Date:        o.Date,
		Quantity:    quantity,
	}
}

func composeEntry(e model.HistoryEntry, orders []model.HistoryOrder) dto.HistoryEntryResponse {
	rows := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		description, quantity := ParseOrderDescription(o.Description, o.Quantity)
		rows = append(rows, dto.OrderResponse{
			ID:          o.ID,
			Description: description,
			Amount:      o.Amount,
			Date:        o.Date,
			Quantity:    quantity,
		})
	}
	return dto.HistoryEntryResponse{
		ID:            e.ID,
		ClientName:    e.ClientName,
		Orders:        rows,
		PaidAt:        e.PaidAt,
		PaymentMethod: e.PaymentMethod,
		EditedAt:      e.EditedAt,
		DisplayAmount: e.DisplayAmount,
	}
}
