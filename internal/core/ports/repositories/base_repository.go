package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management.
// Every *InTx method of the repositories accepts the pgx.Tx returned by Begin,
// so one transaction can span writes to several repositories.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
