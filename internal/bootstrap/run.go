package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/academic-suite/config"
	"github.com/target/academic-suite/internal/observability/metrics"
)

const shutdownWaitTimeout = 10 * time.Second

// Run wires the session store, auth service and HTTP server, then blocks until
// SIGINT/SIGTERM or a server failure.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (err error) {
	if cfg == nil {
		return errors.New("app config is required")
	}

	authMetrics := metrics.NewAuth()

	stores, err := BuildSessionStore(ctx, SessionStoreConfig{
		Storage:  cfg.Storage,
		Postgres: cfg.Postgres,
		Redis:    cfg.Redis,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("build session store: %w", err)
	}
	defer func() {
		if cerr := stores.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close session store", "error", cerr)
		}
	}()

	authSvc, err := BuildAuthService(AuthConfig{
		Auth:     cfg.Auth,
		Sessions: stores.Store,
		Metrics:  authMetrics,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("build auth service: %w", err)
	}

	errCh := make(chan error, 1)
	server, err := StartHTTPServer(&HTTPServerConfig{
		Config:  cfg,
		Auth:    authSvc,
		Metrics: authMetrics,
		Logger:  logger,
	}, errCh)
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, shutdownConfig{
		errCh:  errCh,
		stop:   func(c context.Context) error { return ShutdownHTTPServer(c, server, logger) },
		logger: logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	errCh  <-chan error
	stop   func(context.Context) error
	logger *slog.Logger
}

// waitForShutdown waits for a shutdown signal, ctx cancellation or a server error.
func waitForShutdown(ctx context.Context, cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		return cfg.stop(context.WithoutCancel(ctx))
	case <-ctx.Done():
		cfg.logger.Info("context canceled, shutting down services...")
		return cfg.stop(context.WithoutCancel(ctx))
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		if stopErr := cfg.stop(context.WithoutCancel(ctx)); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}
