package infra

// pdf.go — printable sales report rendering using go-pdf/fpdf.
// A4 portrait: title, period, grand total, per-payment-method subtotals
// (full report only) and one table row per history entry, oldest first.
// The output is returned as bytes; the caller streams it to the client,
// whose browser handles the actual printing.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

func formatMoney(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// RenderSalesReportPDF turns a built report projection into PDF bytes.
func RenderSalesReportPDF(report *dto.SalesReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator keeps accented Portuguese
	// text (Crédito, Relatório) intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, tr(report.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Período: "+report.PeriodLabel), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, tr("Gerado em "+report.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(report.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, tr("Vendas totais: "+formatMoney(report.GrandTotal)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, mt := range report.ByMethod {
			pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%s: %s", mt.Method, formatMoney(mt.Total))), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	col1 := contentW * 0.24 // date/time
	col2 := contentW * 0.34 // client
	col3 := contentW * 0.18 // value
	col4 := contentW * 0.24 // payment method

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, tr("Data/Horário"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cliente", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Valor", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, tr("Método de pagamento"), "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range report.Rows {
		method := row.PaymentMethod
		if method == "" {
			method = "—"
		}
		name := row.ClientName
		if len([]rune(name)) > 28 {
			name = string([]rune(name)[:27]) + "…"
		}
		pdf.CellFormat(col1, 6, row.PaidAt.Format("02/01/2006 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, formatMoney(row.Total), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, tr(method), "", 1, "L", false, 0, "")
	}

	if len(report.Rows) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 6, tr("Nenhuma venda no período selecionado."), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

// ReportFileName names the downloaded file, e.g.
// relatorio-vendas-completo-2026-09-01.pdf.
func ReportFileName(typ string, at time.Time) string {
	return fmt.Sprintf("relatorio-vendas-%s-%s.pdf", typ, at.Format("2006-01-02"))
}
