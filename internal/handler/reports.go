package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/apierror"
	"github.com/devItaloAraujo/i-bar-vendas/internal/infra"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// SalesReport GET /v1/relatorios/vendas?tipo=completo&periodo=24h — renders
// the filtered history as a downloadable PDF.
func (h *ReportsHandler) SalesReport(c *gin.Context) {
	typ := service.ReportType(c.DefaultQuery("tipo", string(service.ReportComplete)))
	period := service.ReportPeriod(c.DefaultQuery("periodo", string(service.PeriodDay)))

	report, err := h.svc.BuildSalesReport(c.Request.Context(), typ, period)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	pdf, err := infra.RenderSalesReportPDF(report)
	if err != nil {
		c.Error(err)
		return
	}

	filename := infra.ReportFileName(string(typ), time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DailyTotal GET /v1/relatorios/total-dia — today's revenue for the header
// widget.
func (h *ReportsHandler) DailyTotal(c *gin.Context) {
	total, err := h.svc.DailyTotal(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, total)
}
