package service

import (
	"context"
	"testing"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportFixture seeds a history with entries across methods and dates and
// pins both clocks to a known instant.
func reportFixture(t *testing.T) (ReportService, HistoryService, time.Time) {
	t.Helper()
	ctx := context.Background()
	history := NewHistoryService(newMemHistoryRepo())
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, time.Local)

	add := func(client, method string, amount int64, paidAt time.Time) {
		m := method
		_, err := history.AppendEntry(ctx, dto.AppendHistoryRequest{
			ClientName: client, PaidAt: paidAt, PaymentMethod: &m,
			Orders: []dto.OrderPayload{{Description: client, Amount: decimal.NewFromInt(amount), Date: paidAt.Format("2006-01-02")}},
		})
		require.NoError(t, err)
	}
	add("Mesa 1", "Pix", 10, now.Add(-2*time.Hour))
	add("Mesa 2", "Crédito", 20, now.Add(-20*time.Hour))
	add("Mesa 3", "Anotado na conta", 30, now.Add(-40*time.Hour))
	add("Mesa 4", "Dinheiro", 40, now.AddDate(0, 0, -10))
	add("Mesa 5", "Pix", 50, now.AddDate(0, -1, 0))

	svc := NewReportService(history).(*reportService)
	svc.now = fixedClock(now)
	return svc, history, now
}

func TestBuildSalesReportComplete24h(t *testing.T) {
	ctx := context.Background()
	svc, _, now := reportFixture(t)

	report, err := svc.BuildSalesReport(ctx, ReportComplete, PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, "Relatório completo de vendas", report.Title)
	assert.Equal(t, "Últimas 24 horas", report.PeriodLabel)
	assert.True(t, report.GeneratedAt.Equal(now))

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Mesa 2", report.Rows[0].ClientName, "oldest first")
	assert.Equal(t, "Mesa 1", report.Rows[1].ClientName)
	assert.True(t, report.GrandTotal.Equal(decimal.NewFromInt(30)))

	// Per-method subtotals in canonical order, zero methods omitted.
	require.Len(t, report.ByMethod, 2)
	assert.Equal(t, "Crédito", report.ByMethod[0].Method)
	assert.Equal(t, "Pix", report.ByMethod[1].Method)
}

func TestBuildSalesReportFiltersByType(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := reportFixture(t)

	credit, err := svc.BuildSalesReport(ctx, ReportCredit, PeriodWeek)
	require.NoError(t, err)
	require.Len(t, credit.Rows, 1)
	assert.Equal(t, "Mesa 2", credit.Rows[0].ClientName)
	assert.Empty(t, credit.ByMethod, "method breakdown only on the complete report")

	onAcct, err := svc.BuildSalesReport(ctx, ReportOnAcct, PeriodWeek)
	require.NoError(t, err)
	require.Len(t, onAcct.Rows, 1)
	assert.Equal(t, "Mesa 3", onAcct.Rows[0].ClientName)
}

func TestBuildSalesReportMonthPeriods(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := reportFixture(t)

	thisMonth, err := svc.BuildSalesReport(ctx, ReportComplete, PeriodThisMonth)
	require.NoError(t, err)
	require.Len(t, thisMonth.Rows, 1, "only the September entry")
	assert.Equal(t, "Mesa 1", thisMonth.Rows[0].ClientName)

	lastMonth, err := svc.BuildSalesReport(ctx, ReportComplete, PeriodLastMonth)
	require.NoError(t, err)
	assert.Len(t, lastMonth.Rows, 4, "every August entry")
}

func TestBuildSalesReportRejectsBadEnums(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := reportFixture(t)

	_, err := svc.BuildSalesReport(ctx, ReportType("debito"), PeriodDay)
	assert.Error(t, err)
	_, err = svc.BuildSalesReport(ctx, ReportComplete, ReportPeriod("ano"))
	assert.Error(t, err)
}

func TestBuildSalesReportUsesDisplayAmount(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryService(newMemHistoryRepo())
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, time.Local)
	pix := "Pix"
	display := decimal.NewFromInt(10)
	_, err := history.AppendEntry(ctx, dto.AppendHistoryRequest{
		ClientName: "Mesa 2. (1/2)", PaidAt: now.Add(-time.Hour), PaymentMethod: &pix,
		DisplayAmount: &display,
		Orders:        []dto.OrderPayload{{Description: "Pedido", Amount: decimal.NewFromInt(30)}},
	})
	require.NoError(t, err)

	svc := NewReportService(history).(*reportService)
	svc.now = fixedClock(now)

	report, err := svc.BuildSalesReport(ctx, ReportComplete, PeriodDay)
	require.NoError(t, err)
	assert.True(t, report.GrandTotal.Equal(display), "split entries count their display amount, not the embedded order sum")
}

func TestDailyTotal(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := reportFixture(t)

	total, err := svc.DailyTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", total.Date)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(10)), "only the entry paid today counts")
}
