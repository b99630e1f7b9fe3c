package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/target/academic-suite/config"
	"github.com/target/academic-suite/internal/adapters/directory"
	"github.com/target/academic-suite/internal/observability/metrics"
	"github.com/target/academic-suite/internal/ports"
	"github.com/target/academic-suite/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth     config.AuthConfig
	Sessions ports.SessionStore
	Metrics  *metrics.Auth
	Logger   *slog.Logger
}

// BuildAuthService loads the identity directory and constructs the auth service.
// Without a directory file the built-in demo identities are used.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dir := directory.Default()
	if cfg.Auth.DirectoryFile != "" {
		loaded, err := directory.LoadFile(cfg.Auth.DirectoryFile)
		if err != nil {
			return nil, fmt.Errorf("load identity directory: %w", err)
		}
		dir = loaded
	}
	logger.Info("identity directory loaded",
		"source", directorySource(cfg.Auth.DirectoryFile),
		"identities", len(dir.Identities()),
	)

	return service.NewAuthService(service.AuthServiceOptions{
		Directory:          dir,
		Sessions:           cfg.Sessions,
		SlotNamespace:      cfg.Auth.SlotKey,
		LoginDelay:         cfg.Auth.LoginDelay,
		MaxResidentClients: cfg.Auth.MaxResidentClients,
		Logger:             logger.With("component", "auth_service"),
		Metrics:            cfg.Metrics,
	})
}

func directorySource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
