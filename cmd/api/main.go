// Copyright (c) 2026 Starting Out OK. All rights reserved.

// Command api is the entry point for the Starting Out OK HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) or fall back to JSON content files.
//  4. Connect to Redis when a listing cache is configured.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers and the deadline archiver.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mickey-farmer/startingOutOK/internal/admin"
	"github.com/mickey-farmer/startingOutOK/internal/api"
	"github.com/mickey-farmer/startingOutOK/internal/archiver"
	"github.com/mickey-farmer/startingOutOK/internal/casting"
	"github.com/mickey-farmer/startingOutOK/internal/directory"
	"github.com/mickey-farmer/startingOutOK/internal/platform/config"
	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
	"github.com/mickey-farmer/startingOutOK/internal/platform/middleware"
	"github.com/mickey-farmer/startingOutOK/internal/platform/migration"
	pgstore "github.com/mickey-farmer/startingOutOK/internal/platform/postgres"
	redisstore "github.com/mickey-farmer/startingOutOK/internal/platform/redis"
	"github.com/mickey-farmer/startingOutOK/internal/platform/sec"
	"github.com/mickey-farmer/startingOutOK/internal/resources"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "startingoutok"))
	slog.SetDefault(log)

	log.Info("[StartingOutOK] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "startingoutok"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database", cfg.UsesDatabase()),
		slog.Bool("cache", cfg.UsesCache()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Content Stores ─────────────────────────────────────────────────
	// PostgreSQL when DATABASE_URL is set, JSON content files otherwise.
	var (
		pool          *pgxpool.Pool
		castingRepo   casting.Repository
		directoryRepo directory.Repository
		resourcesRepo resources.Repository
		checkDatabase func() error
	)

	if cfg.UsesDatabase() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		castingRepo = casting.NewPostgresRepository(pool)
		directoryRepo = directory.NewPostgresRepository(pool)
		resourcesRepo = resources.NewPostgresRepository(pool)
		checkDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	} else {
		log.Info("no database configured, serving JSON content", slog.String("dir", cfg.ContentDir))

		castingRepo, err = casting.NewJSONRepository(filepath.Join(cfg.ContentDir, "casting-calls"), log)
		must(log, err, "open casting content")
		directoryRepo, err = directory.NewJSONRepository(cfg.ContentDir)
		must(log, err, "open directory content")
		resourcesRepo, err = resources.NewJSONRepository(cfg.ContentDir)
		must(log, err, "open resources content")
	}

	// ── 4. Redis (optional listing cache) ─────────────────────────────────
	var (
		rdb        *goredis.Client
		checkCache func() error
	)
	if cfg.UsesCache() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		castingRepo = casting.NewCacheRepository(castingRepo, rdb, log)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Admin Session Service ──────────────────────────────────────────
	tokenService, err := sec.NewAdminTokenService(cfg.SessionSecret, constants.AdminIssuer, constants.AdminAudience)
	must(log, err, "initialize session token service")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: checkDatabase,
		CheckCache:    checkCache,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	castingService := casting.NewService(castingRepo, log)
	castingHandler := casting.NewHandler(castingService, middleware.RequireAdmin)
	feedHandler := casting.NewFeedHandler(castingService, cfg.PublicBaseURL)

	directoryService := directory.NewService(directoryRepo, log)
	directoryHandler := directory.NewHandler(directoryService, middleware.RequireAdmin)

	resourcesService := resources.NewService(resourcesRepo, log)
	resourcesHandler := resources.NewHandler(resourcesService, middleware.RequireAdmin)

	adminService := admin.NewService(tokenService, cfg.AdminPasswordHash, log)
	adminHandler := admin.NewHandler(adminService, cfg.IsProduction())

	// ── 8. Deadline Archiver ──────────────────────────────────────────────
	deadlineArchiver := archiver.New(castingService, cfg.ArchiveCronSpec, log)
	must(log, deadlineArchiver.Start(), "start deadline archiver")
	defer deadlineArchiver.Stop()

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Admin:     adminHandler,
		Casting:   castingHandler,
		Feed:      feedHandler,
		Directory: directoryHandler,
		Resources: resourcesHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
