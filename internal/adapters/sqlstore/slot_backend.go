package sqlstore

// Package sqlstore persists session slots in a SQL table through database/sql.
// It serves both the Postgres (pgx stdlib) and SQLite (modernc) drivers.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/target/academic-suite/internal/errors"
	"github.com/target/academic-suite/internal/migrate"
	"github.com/target/academic-suite/internal/ports"
)

// SlotBackend stores slot values in the session_slots table.
type SlotBackend struct {
	db      *sql.DB
	dialect migrate.Dialect

	getQuery    string
	upsertQuery string
	deleteQuery string
}

// NewSlotBackend prepares queries for the dialect. The schema is created by migrate.Run.
func NewSlotBackend(db *sql.DB, dialect migrate.Dialect) (*SlotBackend, error) {
	if db == nil {
		return nil, errors.New("sqlstore: db is required")
	}
	if dialect != migrate.Postgres && dialect != migrate.SQLite {
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", dialect)
	}
	p := dialect.Placeholder
	return &SlotBackend{
		db:       db,
		dialect:  dialect,
		getQuery: `SELECT value FROM session_slots WHERE slot_key = ` + p(1),
		upsertQuery: `INSERT INTO session_slots (slot_key, value, updated_at) VALUES (` + p(1) + `, ` + p(2) + `, ` + dialect.Now() + `)
			ON CONFLICT (slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		deleteQuery: `DELETE FROM session_slots WHERE slot_key = ` + p(1),
	}, nil
}

func (s *SlotBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrSlotEmpty
		}
		return nil, fmt.Errorf("%s get: %w", s.dialect, apperrors.MapDBError(err))
	}
	return []byte(value), nil
}

func (s *SlotBackend) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("slot key cannot be empty")
	}
	if _, err := s.db.ExecContext(ctx, s.upsertQuery, key, string(value)); err != nil {
		return fmt.Errorf("%s upsert: %w", s.dialect, apperrors.MapDBError(err))
	}
	return nil
}

func (s *SlotBackend) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.deleteQuery, key); err != nil {
		return fmt.Errorf("%s delete: %w", s.dialect, apperrors.MapDBError(err))
	}
	return nil
}
