// Command seedmenu populates the default catalog (and runs the dedup pass)
// without starting the HTTP server. Useful for preparing a fresh database
// file before first open.
package main

import (
	"context"
	"os"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/config"
	"github.com/devItaloAraujo/i-bar-vendas/internal/infra"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"
	"github.com/devItaloAraujo/i-bar-vendas/internal/seed"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}

	catalogRepo := repository.NewCatalogRepository(db)
	svc := service.NewCatalogService(catalogRepo, repository.NewSettingRepository(db), seed.DefaultMenu)

	ctx := context.Background()
	if err := svc.SeedDefaultsOnce(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	if err := svc.DeduplicateCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("dedup failed")
	}

	categories, err := catalogRepo.CountCategories(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count failed")
	}
	items, err := catalogRepo.CountItems(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("count failed")
	}
	log.Info().Int64("categories", categories).Int64("items", items).
		Str("path", cfg.DatabasePath).Msg("catalog ready")
}
