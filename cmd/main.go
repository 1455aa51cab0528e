package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "adkit/internal/adapter/http"

	"adkit/internal/adapter/generator"
	"adkit/internal/adapter/memory"
	"adkit/internal/adapter/postgres"
	"adkit/internal/adapter/redis"
	"adkit/internal/adapter/usecase"
	"adkit/internal/config"
	"adkit/internal/config/configs"
	"adkit/internal/core/port"
	"adkit/internal/db"
	"adkit/internal/telemetry"
)

// main is the entry point of the adkit service. It loads configuration,
// wires the optional Postgres archive, Redis rate limiter and trace
// exporter, then serves the wizard API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	var archive port.KitArchive = memory.NewKitArchive()
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.SeedKits > 0 {
			if err = db.Seed(ctx, pool, cfg.Psql.SeedKits); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo kits seeded", slog.Int("count", cfg.Psql.SeedKits))
			}
		}
		archive = postgres.NewKitArchive(pool)
	}

	var limiter httpadapter.Limiter
	if cfg.Redis.Enabled() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis.URL, logger)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		limiter = redis.NewFixedWindowLimiter(rdb, cfg.Redis.Limit, cfg.Redis.Window)
	}

	var gen port.ContentGenerator
	switch cfg.Generator.NormalizedMode() {
	case configs.GeneratorModeHTTP:
		gen = generator.NewHTTP(cfg.Generator.URL, logger)
	default:
		gen = generator.NewMock(cfg.Generator.MockDelay)
	}
	logger.Info("content generator ready", slog.String("mode", cfg.Generator.NormalizedMode()))

	sessions := memory.NewSessionRepository(cfg.Session.IdleTTL)
	svc := usecase.NewWizardUseCase(sessions, gen, archive, logger)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Limiter:        limiter,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serverErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
