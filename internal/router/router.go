package router

import (
	"github.com/devItaloAraujo/i-bar-vendas/internal/config"
	"github.com/devItaloAraujo/i-bar-vendas/internal/handler"
	"github.com/devItaloAraujo/i-bar-vendas/internal/middleware"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"
	"github.com/devItaloAraujo/i-bar-vendas/internal/seed"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	catalogRepo := repository.NewCatalogRepository(db)
	tableRepo := repository.NewTableRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(catalogRepo, settingRepo, seed.DefaultMenu)
	tableSvc := service.NewTableService(tableRepo)
	historySvc := service.NewHistoryService(historyRepo)
	closerSvc := service.NewCloserService(tableRepo, historySvc)
	reportSvc := service.NewReportService(historySvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc)
	tablesH := handler.NewTablesHandler(tableSvc)
	salesH := handler.NewSalesHandler(tableSvc, closerSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		// Catalog
		v1.GET("/cardapio", catalogH.ListMenu)
		v1.GET("/cardapio/editor", catalogH.ListMenuWithIds)
		v1.POST("/cardapio/dedup", catalogH.Deduplicate)
		v1.POST("/categorias", catalogH.AddCategory)
		v1.PUT("/categorias/:id", catalogH.RenameCategory)
		v1.DELETE("/categorias/:id", catalogH.DeleteCategory)
		v1.GET("/categorias/:id/itens/count", catalogH.CategoryItemCount)
		v1.POST("/itens", catalogH.AddMenuItem)
		v1.PATCH("/itens/:id", catalogH.UpdateMenuItem)
		v1.DELETE("/itens/:id", catalogH.DeleteMenuItem)

		// Open tabs
		v1.GET("/contas", tablesH.List)
		v1.POST("/contas", tablesH.Open)
		v1.GET("/contas/:id", tablesH.Get)
		v1.PUT("/contas/:id", tablesH.Rename)
		v1.DELETE("/contas/:id", tablesH.Delete)
		v1.POST("/contas/:id/pedidos", tablesH.AddOrder)
		v1.PATCH("/contas/:id/pedidos/:orderId", tablesH.UpdateOrder)
		v1.DELETE("/contas/:id/pedidos/:orderId", tablesH.RemoveOrder)

		// Closing and quick sales
		v1.POST("/contas/:id/fechar", salesH.Close)
		v1.POST("/contas/:id/fechar-dividido", salesH.CloseSplit)
		v1.POST("/vendas/rapida", salesH.QuickSale)

		// History
		v1.GET("/historico", historyH.List)
		v1.POST("/historico", historyH.Append)
		v1.PATCH("/historico/:id", historyH.Edit)

		// Reports
		v1.GET("/relatorios/vendas", reportsH.SalesReport)
		v1.GET("/relatorios/total-dia", reportsH.DailyTotal)
	}

	return r
}
