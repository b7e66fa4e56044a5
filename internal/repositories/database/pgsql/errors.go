package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateError maps driver errors onto the apperrors sentinels. what names
// the affected record and ends up in the message.
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	switch pgErrorCode(err) {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, what)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s references a missing record", apperrors.ErrNotFound, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
