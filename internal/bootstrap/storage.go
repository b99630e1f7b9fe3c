package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/target/academic-suite/config"
	"github.com/target/academic-suite/internal/adapters/memory"
	redisadapter "github.com/target/academic-suite/internal/adapters/redis"
	"github.com/target/academic-suite/internal/adapters/sessionstore"
	"github.com/target/academic-suite/internal/adapters/sqlstore"
	"github.com/target/academic-suite/internal/migrate"
	"github.com/target/academic-suite/internal/ports"
)

// SessionStoreConfig contains what BuildSessionStore needs to pick a backend.
type SessionStoreConfig struct {
	Storage  config.StorageConfig
	Postgres config.DBConfig
	Redis    config.RedisConfig
	Logger   *slog.Logger
}

// SessionStoreResult is the assembled store plus the connections it owns.
type SessionStoreResult struct {
	Store   *sessionstore.Store
	closers []namedCloser
}

type namedCloser struct {
	name string
	c    io.Closer
}

// Close releases every connection opened for the store.
func (r *SessionStoreResult) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", r.closers[i].name, err))
		}
	}
	return errors.Join(errs...)
}

// BuildSessionStore connects the configured slot backend and wraps it in the
// self-healing session store.
func BuildSessionStore(ctx context.Context, cfg SessionStoreConfig) (*SessionStoreResult, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, closers, err := buildSlotBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	res := &SessionStoreResult{closers: closers}

	store, err := sessionstore.New(sessionstore.Options{Backend: backend, Logger: logger})
	if err != nil {
		return nil, errors.Join(err, res.Close())
	}
	res.Store = store

	logger.InfoContext(ctx, "session store ready", "backend", string(cfg.Storage.Backend))
	return res, nil
}

//nolint:ireturn // the backend is chosen at runtime.
func buildSlotBackend(ctx context.Context, cfg SessionStoreConfig, logger *slog.Logger) (ports.SlotBackend, []namedCloser, error) {
	dbCfg := DatabaseConfig{DBConfig: cfg.Postgres, RedisConfig: cfg.Redis, Logger: logger}

	switch cfg.Storage.Backend {
	case config.SessionBackendMemory, "":
		return memory.NewSlotBackend(), nil, nil

	case config.SessionBackendRedis:
		client, err := ConnectRedis(ctx, dbCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return redisadapter.NewSlotBackend(client), []namedCloser{{"redis", client}}, nil

	case config.SessionBackendSQLite:
		db, err := sqlstore.OpenSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlBackend(ctx, db, migrate.SQLite, true, logger)

	case config.SessionBackendPostgres:
		db, err := ConnectDB(ctx, dbCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect db: %w", err)
		}
		return sqlBackend(ctx, db, migrate.Postgres, cfg.Postgres.RunMigrationsOnStart, logger)

	default:
		return nil, nil, fmt.Errorf("unsupported session backend %q", cfg.Storage.Backend)
	}
}

//nolint:ireturn // matches buildSlotBackend.
func sqlBackend(
	ctx context.Context,
	db *sql.DB,
	dialect migrate.Dialect,
	runMigrations bool,
	logger *slog.Logger,
) (ports.SlotBackend, []namedCloser, error) {
	closers := []namedCloser{{string(dialect), db}}
	fail := func(err error) (ports.SlotBackend, []namedCloser, error) {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", dialect, cerr))
		}
		return nil, nil, err
	}

	if runMigrations {
		if err := RunMigrations(ctx, db, dialect, logger); err != nil {
			return fail(err)
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	backend, err := sqlstore.NewSlotBackend(db, dialect)
	if err != nil {
		return fail(err)
	}
	return backend, closers, nil
}
