package config

import (
	"fmt"
	"strings"
)

// SessionBackend selects where per-client session slots are persisted.
type SessionBackend string

const (
	// SessionBackendMemory keeps slots in process memory.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendRedis stores slots as Redis keys.
	SessionBackendRedis SessionBackend = "redis"
	// SessionBackendSQLite stores slots in a local SQLite file.
	SessionBackendSQLite SessionBackend = "sqlite"
	// SessionBackendPostgres stores slots in Postgres.
	SessionBackendPostgres SessionBackend = "postgres"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := SessionBackend(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case SessionBackendMemory, SessionBackendRedis, SessionBackendSQLite, SessionBackendPostgres:
		*b = v
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: memory, redis, sqlite, postgres)", v)
	}
}

// StorageConfig controls the session store backend.
type StorageConfig struct {
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"memory"`

	// SQLitePath is the database file used when Backend=sqlite.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"academic-suite.db"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendMemory
	}
	if s.SQLitePath = strings.TrimSpace(s.SQLitePath); s.SQLitePath == "" {
		s.SQLitePath = "academic-suite.db"
	}
}
