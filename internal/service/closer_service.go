package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuickSaleClient names history entries produced by the quick-sale flow,
// which records a payment without ever opening a tab.
const QuickSaleClient = "venda rapida"

// CloserService performs the one multi-entity transition in the system:
// paying a tab. The tab's orders survive as copies under one or more
// history entries and the table row ceases to exist, atomically. Callers
// pass the table snapshot they are closing and must reject empty tabs
// upstream; closing a tab with no orders is meaningless here.
type CloserService interface {
	CloseTable(ctx context.Context, tableID string, table dto.TableResponse, paymentMethod string) (dto.HistoryEntryResponse, error)
	CloseTableSplit(ctx context.Context, tableID string, table dto.TableResponse, splits []dto.SplitPayment) ([]dto.HistoryEntryResponse, error)
	QuickSale(ctx context.Context, total decimal.Decimal, paymentMethod string) (dto.HistoryEntryResponse, error)
}

type closerService struct {
	tables  repository.TableRepository
	history HistoryService
	now     func() time.Time
}

func NewCloserService(tables repository.TableRepository, history HistoryService) CloserService {
	return &closerService{tables: tables, history: history, now: time.Now}
}

// CloseTable writes one history entry reusing the table's order rows
// verbatim (same ids) and deletes the table, in a single transaction.
func (s *closerService) CloseTable(ctx context.Context, tableID string, table dto.TableResponse, paymentMethod string) (dto.HistoryEntryResponse, error) {
	var entry dto.HistoryEntryResponse
	err := runTx(ctx, s.tables.DB(), func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.history.AppendEntryTx(tx, dto.AppendHistoryRequest{
			ClientName:    table.Name,
			PaidAt:        s.now(),
			PaymentMethod: &paymentMethod,
			Orders:        ordersToPayload(table.Orders, false),
		})
		if txErr != nil {
			return txErr
		}
		return s.deleteTableTx(tx, tableID)
	})
	if err != nil {
		return dto.HistoryEntryResponse{}, err
	}
	log.Info().Str("table", table.Name).Str("method", paymentMethod).
		Str("total", entry.Total().String()).Msg("tab closed")
	return entry, nil
}

// CloseTableSplit writes one history entry per split. Every entry embeds
// the table's full order list — copied with freshly generated ids, so no
// two entries share order-row identities — with the split amount as its
// display total and the client name disambiguated as "Name. (i/n)" when
// there is more than one split. The table is deleted once, after all
// entries are written.
//
// With a single split this matches CloseTable except that the supplied
// amount becomes the display total, which may deliberately diverge from
// the order sum (a manually adjusted bill).
func (s *closerService) CloseTableSplit(ctx context.Context, tableID string, table dto.TableResponse, splits []dto.SplitPayment) ([]dto.HistoryEntryResponse, error) {
	paidAt := s.now()
	n := len(splits)
	entries := make([]dto.HistoryEntryResponse, 0, n)
	err := runTx(ctx, s.tables.DB(), func(tx *gorm.DB) error {
		for i, split := range splits {
			clientName := table.Name
			if n > 1 {
				clientName = fmt.Sprintf("%s. (%d/%d)", table.Name, i+1, n)
			}
			amount := split.Amount
			method := split.PaymentMethod
			entry, err := s.history.AppendEntryTx(tx, dto.AppendHistoryRequest{
				ClientName:    clientName,
				PaidAt:        paidAt,
				PaymentMethod: &method,
				Orders:        ordersToPayload(table.Orders, true),
				DisplayAmount: &amount,
			})
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return s.deleteTableTx(tx, tableID)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("table", table.Name).Int("splits", n).Msg("tab closed with split payment")
	return entries, nil
}

// QuickSale records a sale that never had a tab: one synthetic line item
// straight into history.
func (s *closerService) QuickSale(ctx context.Context, total decimal.Decimal, paymentMethod string) (dto.HistoryEntryResponse, error) {
	now := s.now()
	return s.history.AppendEntry(ctx, dto.AppendHistoryRequest{
		ClientName:    QuickSaleClient,
		PaidAt:        now,
		PaymentMethod: &paymentMethod,
		Orders: []dto.OrderPayload{{
			ID:          uuid.NewString(),
			Description: "Venda rápida",
			Amount:      total,
			Date:        now.Format("2006-01-02"),
			Quantity:    1,
		}},
	})
}

func (s *closerService) deleteTableTx(tx *gorm.DB, tableID string) error {
	if err := s.tables.DeleteOrdersByTableTx(tx, tableID); err != nil {
		return err
	}
	return s.tables.DeleteTableTx(tx, tableID)
}

// ordersToPayload copies a tab's line items into history payloads. Fresh
// ids are generated for split entries, which must own independent order
// rows; a plain close keeps the original ids.
func ordersToPayload(orders []dto.OrderResponse, freshIDs bool) []dto.OrderPayload {
	payload := make([]dto.OrderPayload, 0, len(orders))
	for _, o := range orders {
		id := o.ID
		if freshIDs {
			id = uuid.NewString()
		}
		payload = append(payload, dto.OrderPayload{
			ID:          id,
			Description: o.Description,
			Amount:      o.Amount,
			Date:        o.Date,
			Quantity:    o.Quantity,
		})
	}
	return payload
}
