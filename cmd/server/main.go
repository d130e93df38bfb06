package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/geraLv/sistema-gestion/internal/config"
	"github.com/geraLv/sistema-gestion/internal/infra"
	"github.com/geraLv/sistema-gestion/internal/repository"
	"github.com/geraLv/sistema-gestion/internal/router"
	"github.com/geraLv/sistema-gestion/internal/service"
	"github.com/geraLv/sistema-gestion/internal/worker"
)

func main() {
	// Structured logger: dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	storage, err := infra.NewObjectStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init object storage")
	}

	// Background goroutines: audit worker pool draining the Redis queue,
	// plus the daily retention cron.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditRepo := repository.NewAuditRepository(db)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, auditRepo)
	worker.StartPruneCron(ctx, service.NewAuditService(auditRepo), cfg.AuditRetentionDays)

	r := router.New(cfg, db, rdb, storage)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("sistema-gestion backend listening on :%d", cfg.Port)
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
