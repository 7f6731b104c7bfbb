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
	"time"

	"github.com/joho/godotenv"

	"fitarena/internal/cache"
	"fitarena/internal/game"
	"fitarena/internal/score"
	"fitarena/internal/server"
	"fitarena/internal/server/handler"
	"fitarena/internal/store"
	"fitarena/internal/store/postgres"
	"fitarena/internal/store/sqlite"
	"fitarena/internal/xslog"
)

const keyPort = "port"

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := server.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.ErrorContext(ctx, "failed to close store", xslog.Error(err))
		}
	}()

	scores, err := initCache(ctx, cfg, logger)
	if err != nil {
		return err
	}

	engine := score.New(st, game.Default())
	api := handler.NewAPI(st, engine, scores)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(logger, api),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func openStore(ctx context.Context, cfg server.Config, logger *slog.Logger) (*store.Store, func() error, error) {
	logger.InfoContext(ctx, "initializing record store", xslog.Driver(cfg.Store.Driver))

	switch cfg.Store.Driver {
	case "sqlite":
		st, db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, db.Close, nil
	case "postgres":
		if cfg.Store.PostgresURL == "" {
			return nil, nil, errors.New("STORE_POSTGRES_URL is required for the postgres driver")
		}
		st, pool, err := postgres.Open(ctx, cfg.Store.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		return st, func() error { pool.Close(); return nil }, nil
	case "memory":
		return store.NewMemory(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func initCache(ctx context.Context, cfg server.Config, logger *slog.Logger) (cache.Scores, error) {
	if cfg.Cache.RedisURL == "" {
		return cache.NewNoop(), nil
	}

	client, err := cache.NewClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis client: %w", err)
	}
	logger.InfoContext(ctx, "score cache enabled", slog.Duration("ttl", cfg.Cache.TTL))
	return cache.NewRedis(client, cfg.Cache.TTL, logger), nil
}
