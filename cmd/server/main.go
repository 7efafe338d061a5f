package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devItaloAraujo/i-bar-vendas/internal/config"
	"github.com/devItaloAraujo/i-bar-vendas/internal/infra"
	"github.com/devItaloAraujo/i-bar-vendas/internal/repository"
	"github.com/devItaloAraujo/i-bar-vendas/internal/router"
	"github.com/devItaloAraujo/i-bar-vendas/internal/seed"
	"github.com/devItaloAraujo/i-bar-vendas/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}

	if cfg.SeedOnStart {
		catalogSvc := service.NewCatalogService(
			repository.NewCatalogRepository(db),
			repository.NewSettingRepository(db),
			seed.DefaultMenu,
		)
		if err := catalogSvc.SeedDefaultsOnce(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed default catalog")
		}
	}

	r := router.New(cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("i-bar-vendas backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
