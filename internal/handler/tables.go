package handler

import (
	"net/http"
	"strings"

	"github.com/devItaloAraujo/i-bar-vendas/internal/apierror"
	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TablesHandler struct{ svc service.TableService }

func NewTablesHandler(svc service.TableService) *TablesHandler {
	return &TablesHandler{svc: svc}
}

// List GET /v1/contas — every open tab with its orders.
func (h *TablesHandler) List(c *gin.Context) {
	tables, err := h.svc.ListOpenTables(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// Get GET /v1/contas/:id
func (h *TablesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	table, err := h.svc.GetTable(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if table == nil {
		c.JSON(http.StatusNotFound, apierror.New("Conta não encontrada"))
		return
	}
	c.JSON(http.StatusOK, table)
}

// Open POST /v1/contas
func (h *TablesHandler) Open(c *gin.Context) {
	var req dto.OpenTableRequest
	if !bindAndValidate(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Nome da conta não pode ser vazio"))
		return
	}
	table, err := h.svc.OpenTable(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

// Rename PUT /v1/contas/:id
func (h *TablesHandler) Rename(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RenameTableRequest
	if !bindAndValidate(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Nome da conta não pode ser vazio"))
		return
	}
	if err := h.svc.RenameTable(c.Request.Context(), id, name); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Delete DELETE /v1/contas/:id — abandons the tab; nothing reaches history.
func (h *TablesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTable(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// AddOrder POST /v1/contas/:id/pedidos
func (h *TablesHandler) AddOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AddOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.AddOrder(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder PATCH /v1/contas/:id/pedidos/:orderId
func (h *TablesHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateOrder(c.Request.Context(), id, orderID.String(), req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// RemoveOrder DELETE /v1/contas/:id/pedidos/:orderId
func (h *TablesHandler) RemoveOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.RemoveOrder(c.Request.Context(), id, orderID.String()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
