package pgsql

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	driverErr := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound, "resource not found: customer c1"},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrNotFound, "resource not found: customer c1"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate, "resource already exists: customer c1"},
		{"fk violation", &pgconn.PgError{Code: "23503"}, apperrors.ErrNotFound, "resource not found: customer c1 references a missing record"},
		{"other", driverErr, driverErr, "customer c1: connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "customer c1")
			assert.ErrorIs(t, got, tt.wantIs)
			assert.EqualError(t, got, tt.wantMsg)
		})
	}

	assert.NoError(t, translateError(nil, "customer c1"))
}

func TestIsTxDone(t *testing.T) {
	assert.True(t, isTxDone(pgx.ErrTxClosed))
	assert.True(t, isTxDone(sql.ErrTxDone))
	assert.False(t, isTxDone(errors.New("boom")))
}
