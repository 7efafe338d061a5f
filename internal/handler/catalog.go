package handler

import (
	"net/http"

	"github.com/devItaloAraujo/i-bar-vendas/internal/apierror"
	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListMenu GET /v1/cardapio — sale-screen projection, seeds on first call.
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	menu, err := h.svc.ListCatalog(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// ListMenuWithIds GET /v1/cardapio/editor — editor projection with raw ids.
func (h *CatalogHandler) ListMenuWithIds(c *gin.Context) {
	menu, err := h.svc.ListCatalogWithIds(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// AddCategory POST /v1/categorias — idempotent on name.
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var req dto.AddCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RenameCategory PUT /v1/categorias/:id
func (h *CatalogHandler) RenameCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RenameCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RenameCategory(c.Request.Context(), id, req.Name); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// DeleteCategory DELETE /v1/categorias/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// CategoryItemCount GET /v1/categorias/:id/itens/count — the UI uses it to
// decide whether deleting an item should also drop its emptied category.
func (h *CatalogHandler) CategoryItemCount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	count, err := h.svc.GetCategoryItemCount(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryItemCountResponse{CategoryID: id, Count: count})
}

// AddMenuItem POST /v1/itens
func (h *CatalogHandler) AddMenuItem(c *gin.Context) {
	var req dto.AddMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !req.ValidPricing() {
		c.JSON(http.StatusBadRequest, apierror.New("Informe um preço único ou o par copo/garrafa"))
		return
	}
	resp, err := h.svc.AddMenuItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateMenuItem PATCH /v1/itens/:id — partial; explicit null clears a price.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateMenuItem(c.Request.Context(), id, req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// DeleteMenuItem DELETE /v1/itens/:id
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteMenuItem(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Deduplicate POST /v1/cardapio/dedup — manual trigger for the merge pass
// that also runs after seeding.
func (h *CatalogHandler) Deduplicate(c *gin.Context) {
	if err := h.svc.DeduplicateCatalog(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func parseID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return "", false
	}
	return id.String(), true
}
