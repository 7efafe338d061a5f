package handler

import (
	"net/http"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct{ svc service.HistoryService }

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List GET /v1/historico — all completed sales, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	history, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// Append POST /v1/historico — direct append, used for corrections like
// re-registering an accidentally deleted sale.
func (h *HistoryHandler) Append(c *gin.Context) {
	var req dto.AppendHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	entry, err := h.svc.AppendEntry(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Edit PATCH /v1/historico/:id — partial; replacing the order set stamps
// the entry as edited.
func (h *HistoryHandler) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EditHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EditEntry(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
