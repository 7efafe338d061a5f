package handler

import (
	"net/http"

	"github.com/devItaloAraujo/i-bar-vendas/internal/apierror"
	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SalesHandler drives the close and quick-sale flows. It loads the tab
// snapshot itself so the closer sees exactly what the server has, not what
// a possibly stale client sent.
type SalesHandler struct {
	tables service.TableService
	closer service.CloserService
}

func NewSalesHandler(tables service.TableService, closer service.CloserService) *SalesHandler {
	return &SalesHandler{tables: tables, closer: closer}
}

// Close POST /v1/contas/:id/fechar — single payment method.
func (h *SalesHandler) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CloseTableRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, apierror.New("Método de pagamento inválido"))
		return
	}
	table, ok := h.loadClosableTable(c, id)
	if !ok {
		return
	}
	entry, err := h.closer.CloseTable(c.Request.Context(), id, *table, req.PaymentMethod)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CloseSplit POST /v1/contas/:id/fechar-dividido — one history entry per split.
func (h *SalesHandler) CloseSplit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CloseSplitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	for _, split := range req.Splits {
		if !validPaymentMethod(split.PaymentMethod) {
			c.JSON(http.StatusBadRequest, apierror.New("Método de pagamento inválido"))
			return
		}
	}
	table, ok := h.loadClosableTable(c, id)
	if !ok {
		return
	}
	entries, err := h.closer.CloseTableSplit(c.Request.Context(), id, *table, req.Splits)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// QuickSale POST /v1/vendas/rapida — payment with no tab at all.
func (h *SalesHandler) QuickSale(c *gin.Context) {
	var req dto.QuickSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !validPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, apierror.New("Método de pagamento inválido"))
		return
	}
	entry, err := h.closer.QuickSale(c.Request.Context(), req.Total, req.PaymentMethod)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// loadClosableTable fetches the tab and enforces the one close-time rule:
// an empty tab cannot be paid.
func (h *SalesHandler) loadClosableTable(c *gin.Context, id string) (*dto.TableResponse, bool) {
	table, err := h.tables.GetTable(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return nil, false
	}
	if table == nil {
		c.JSON(http.StatusNotFound, apierror.New("Conta não encontrada"))
		return nil, false
	}
	if len(table.Orders) == 0 {
		c.JSON(http.StatusConflict, apierror.New("Conta sem pedidos não pode ser fechada"))
		return nil, false
	}
	if !table.Total().GreaterThan(decimal.Zero) {
		c.JSON(http.StatusConflict, apierror.New("Conta com total zerado não pode ser fechada"))
		return nil, false
	}
	return table, true
}

func validPaymentMethod(method string) bool {
	for _, m := range service.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
