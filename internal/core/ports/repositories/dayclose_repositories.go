package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DayCloseReader defines read operations for day-close data
type DayCloseReader interface {
	// SummarizeDay aggregates invoices created in [start, end). closeDate is used
	// to look up an existing close log.
	SummarizeDay(ctx context.Context, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error)

	// FindDayCloseLog retrieves the close snapshot of a date.
	FindDayCloseLog(ctx context.Context, closeDate time.Time) (*domain.DayCloseLog, error)
}

// DayCloseTransactionSupport defines day-close writes that run inside a caller's transaction
type DayCloseTransactionSupport interface {
	// LockDayInTx serializes close attempts for the same date until tx ends.
	LockDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time) error

	// SummarizeDayInTx is SummarizeDay seen from inside tx.
	SummarizeDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error)

	// CloseInvoicesInTx flags every open invoice created in [start, end) as closed
	// and returns the totals of exactly the invoices it flagged.
	CloseInvoicesInTx(ctx context.Context, tx pgx.Tx, start, end time.Time, closedAt time.Time) (*domain.DaySummary, error)

	// SaveDayCloseLogInTx inserts the snapshot. A second row for the same date yields ErrDuplicate.
	SaveDayCloseLogInTx(ctx context.Context, tx pgx.Tx, log domain.DayCloseLog) error
}

// DayCloseRepositoryFacade combines all day-close repository interfaces
type DayCloseRepositoryFacade interface {
	DayCloseReader
	DayCloseTransactionSupport
}

// DayCloseRepositoryWithTx extends DayCloseRepositoryFacade with transaction capabilities
type DayCloseRepositoryWithTx interface {
	DayCloseRepositoryFacade
	TransactionManager
}
