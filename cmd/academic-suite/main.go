package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/academic-suite/config"
	"github.com/target/academic-suite/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger := bootstrap.InitLogger(cfg.Observability, cfg.IsDev)
	logStartupInfo(ctx, logger, &cfg)

	return bootstrap.Run(ctx, &cfg, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting academic suite",
		"addr", cfg.HTTP.Addr,
		"session_backend", string(cfg.Storage.Backend),
		"login_delay", cfg.Auth.LoginDelay,
		"metrics_enabled", cfg.Observability.MetricsEnabled,
		"dev", cfg.IsDev)
}
