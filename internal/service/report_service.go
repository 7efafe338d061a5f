package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"

	"github.com/shopspring/decimal"
)

// PaymentMethods lists every method the close and quick-sale flows offer,
// in report order.
var PaymentMethods = []string{"Crédito", "Débito", "Pix", "Dinheiro", "Voucher", "Anotado na conta"}

type ReportType string

const (
	ReportComplete ReportType = "completo"
	ReportCredit   ReportType = "credito"
	ReportOnAcct   ReportType = "anotado"
)

type ReportPeriod string

const (
	PeriodDay       ReportPeriod = "24h"
	PeriodTwoDays   ReportPeriod = "48h"
	PeriodWeek      ReportPeriod = "semana"
	PeriodThisMonth ReportPeriod = "mes_atual"
	PeriodLastMonth ReportPeriod = "mes_anterior"
)

var periodLabels = map[ReportPeriod]string{
	PeriodDay:       "Últimas 24 horas",
	PeriodTwoDays:   "Últimas 48 horas",
	PeriodWeek:      "Última semana",
	PeriodThisMonth: "Mês corrente",
	PeriodLastMonth: "Último mês",
}

var reportTitles = map[ReportType]string{
	ReportComplete: "Relatório completo de vendas",
	ReportCredit:   "Relatório — vendas no crédito",
	ReportOnAcct:   "Relatório — vendas anotadas na conta",
}

// ReportService builds printable projections of the sales history. It
// reads through HistoryService only and holds no invariants of its own.
type ReportService interface {
	BuildSalesReport(ctx context.Context, typ ReportType, period ReportPeriod) (*dto.SalesReport, error)
	DailyTotal(ctx context.Context) (dto.DailyTotalResponse, error)
}

type reportService struct {
	history HistoryService
	now     func() time.Time
}

func NewReportService(history HistoryService) ReportService {
	return &reportService{history: history, now: time.Now}
}

func (s *reportService) BuildSalesReport(ctx context.Context, typ ReportType, period ReportPeriod) (*dto.SalesReport, error) {
	title, ok := reportTitles[typ]
	if !ok {
		return nil, fmt.Errorf("tipo de relatório inválido: %q", typ)
	}
	label, ok := periodLabels[period]
	if !ok {
		return nil, fmt.Errorf("período de relatório inválido: %q", period)
	}

	history, err := s.history.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]dto.HistoryEntryResponse, 0, len(history))
	for _, e := range history {
		if !matchesType(e, typ) || !s.inPeriod(e.PaidAt, period) {
			continue
		}
		filtered = append(filtered, e)
	}

	report := &dto.SalesReport{
		Title:       title,
		PeriodLabel: label,
		GeneratedAt: s.now(),
		GrandTotal:  decimal.Zero,
	}
	for _, e := range filtered {
		report.GrandTotal = report.GrandTotal.Add(e.Total())
	}
	if typ == ReportComplete {
		for _, method := range PaymentMethods {
			total := decimal.Zero
			for _, e := range filtered {
				if e.PaymentMethod != nil && *e.PaymentMethod == method {
					total = total.Add(e.Total())
				}
			}
			if total.IsPositive() {
				report.ByMethod = append(report.ByMethod, dto.MethodTotal{Method: method, Total: total})
			}
		}
	}

	// History arrives newest first; the printed table reads oldest first.
	report.Rows = make([]dto.ReportRow, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		e := filtered[i]
		method := ""
		if e.PaymentMethod != nil {
			method = *e.PaymentMethod
		}
		report.Rows = append(report.Rows, dto.ReportRow{
			PaidAt:        e.PaidAt,
			ClientName:    e.ClientName,
			Total:         e.Total(),
			PaymentMethod: method,
		})
	}
	return report, nil
}

// DailyTotal sums the reported value of every entry paid today.
func (s *reportService) DailyTotal(ctx context.Context) (dto.DailyTotalResponse, error) {
	history, err := s.history.ListHistory(ctx)
	if err != nil {
		return dto.DailyTotalResponse{}, err
	}
	today := s.now().Format("2006-01-02")
	total := decimal.Zero
	for _, e := range history {
		if e.PaidAt.Format("2006-01-02") == today {
			total = total.Add(e.Total())
		}
	}
	return dto.DailyTotalResponse{Date: today, Total: total}, nil
}

func matchesType(e dto.HistoryEntryResponse, typ ReportType) bool {
	method := ""
	if e.PaymentMethod != nil {
		method = *e.PaymentMethod
	}
	switch typ {
	case ReportCredit:
		return method == "Crédito"
	case ReportOnAcct:
		return method == "Anotado na conta"
	default:
		return true
	}
}

func (s *reportService) inPeriod(paidAt time.Time, period ReportPeriod) bool {
	now := s.now()
	switch period {
	case PeriodDay:
		return !paidAt.Before(now.Add(-24 * time.Hour))
	case PeriodTwoDays:
		return !paidAt.Before(now.Add(-48 * time.Hour))
	case PeriodWeek:
		return !paidAt.Before(now.AddDate(0, 0, -7))
	case PeriodThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return !paidAt.Before(first) && paidAt.Before(first.AddDate(0, 1, 0))
	case PeriodLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return !paidAt.Before(first) && paidAt.Before(first.AddDate(0, 1, 0))
	default:
		return true
	}
}
