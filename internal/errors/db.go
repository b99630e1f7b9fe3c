package errors

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapDBError maps storage errors to AppError instances:
//   - sql.ErrNoRows → NotFound
//   - context timeouts/cancellations → Timeout/Canceled
//   - missing tables (Postgres undefined_table, SQLite "no such table") → Unavailable
//   - Postgres connection exceptions → Unavailable
//
// Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "Request was canceled.", Cause: err}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "Resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	if strings.Contains(err.Error(), "no such table") {
		return missingSchema(err)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch {
	case pgErr.Code == pgerrcode.UndefinedTable:
		return missingSchema(pgErr)
	case pgerrcode.IsConnectionException(pgErr.Code):
		return &AppError{Code: ErrCodeUnavailable, Message: "Session storage is unavailable.", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeInternal, Message: "A database error occurred. Please try again.", Cause: pgErr}
	}
}

func missingSchema(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: "Session storage schema is missing; run migrations.",
		Cause:   err,
	}
}
