package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrapf(cause, ErrCodeInternal, "save slot %s", "c1")

	assert.Equal(t, "save slot c1: root cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsInternal(err))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("outer: %w", err)))
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "nothing"))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "email is required")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "email", GetField(err))
	assert.Equal(t, "email is required", err.Error())
	assert.Empty(t, GetField(errors.New("plain")))
	assert.Empty(t, GetCode(errors.New("plain")))
}

func TestMapDBError(t *testing.T) {
	plain := errors.New("disk on fire")

	tests := []struct {
		name string
		in   error
		code ErrorCode
	}{
		{"no rows", sql.ErrNoRows, ErrCodeNotFound},
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), ErrCodeCanceled},
		{"pg undefined table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, ErrCodeUnavailable},
		{"pg connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, ErrCodeUnavailable},
		{"pg other", &pgconn.PgError{Code: pgerrcode.DivisionByZero}, ErrCodeInternal},
		{"sqlite missing table", errors.New("SQL logic error: no such table: session_slots (1)"), ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDBError(tt.in)
			assert.Equal(t, tt.code, GetCode(mapped))
			assert.ErrorIs(t, mapped, tt.in)
		})
	}

	assert.Equal(t, plain, MapDBError(plain))
	assert.NoError(t, MapDBError(nil))
}
