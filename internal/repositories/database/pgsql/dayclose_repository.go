package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_billing_app/internal/models"
	"github.com/SscSPs/pos_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// daySums aggregates a set of invoice rows into the columns scanned by scanDaySums.
const daySums = `
		COALESCE(SUM(total) FILTER (WHERE payment_mode = 'cash'), 0),
		COALESCE(SUM(total) FILTER (WHERE payment_mode = 'upi'), 0),
		COALESCE(SUM(total) FILTER (WHERE payment_mode = 'card'), 0),
		COALESCE(SUM(total) FILTER (WHERE payment_mode = 'credit'), 0),
		COALESCE(SUM(total), 0),
		COUNT(*),
		COALESCE(SUM(cgst_amount), 0),
		COALESCE(SUM(sgst_amount), 0)`

// Sums are taken over invoices created in [$2, $3). The day counts as closed
// when any of its invoices is flagged or a close log exists for $1.
const daySummaryQuery = `
	SELECT` + daySums + `,
		COALESCE(bool_or(day_closed), false)
			OR EXISTS (SELECT 1 FROM day_close_log WHERE close_date = $1::date)
	FROM invoices
	WHERE created_at >= $2 AND created_at < $3;`

// closeDayQuery flags the open invoices of [$1, $2) and sums exactly the rows
// it flagged, so an invoice committed mid-close is either counted or left open.
const closeDayQuery = `
	WITH closed AS (
		UPDATE invoices
		SET day_closed = true, day_closed_at = $3
		WHERE created_at >= $1 AND created_at < $2 AND NOT day_closed
		RETURNING payment_mode, total, cgst_amount, sgst_amount
	)
	SELECT` + daySums + `
	FROM closed;`

type PgxDayCloseRepository struct {
	BaseRepository
}

func newPgxDayCloseRepository(pool *pgxpool.Pool) portsrepo.DayCloseRepositoryWithTx {
	return &PgxDayCloseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DayCloseRepositoryWithTx = (*PgxDayCloseRepository)(nil)

func daySumTargets(s *domain.DaySummary) []any {
	return []any{
		&s.CashTotal,
		&s.UPITotal,
		&s.CardTotal,
		&s.CreditTotal,
		&s.GrandTotal,
		&s.InvoiceCount,
		&s.CGSTTotal,
		&s.SGSTTotal,
	}
}

func summarizeDay(ctx context.Context, q rowQuerier, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error) {
	var s domain.DaySummary
	err := q.QueryRow(ctx, daySummaryQuery, closeDate.Format(domain.DateLayout), start, end).
		Scan(append(daySumTargets(&s), &s.AlreadyClosed)...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize invoices of %s: %w", closeDate.Format(domain.DateLayout), err)
	}
	return &s, nil
}

// SummarizeDay aggregates invoices created in [start, end).
func (r *PgxDayCloseRepository) SummarizeDay(ctx context.Context, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error) {
	return summarizeDay(ctx, r.Pool, closeDate, start, end)
}

// SummarizeDayInTx is SummarizeDay seen from inside tx.
func (r *PgxDayCloseRepository) SummarizeDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error) {
	return summarizeDay(ctx, tx, closeDate, start, end)
}

// FindDayCloseLog retrieves the close snapshot of a date.
func (r *PgxDayCloseRepository) FindDayCloseLog(ctx context.Context, closeDate time.Time) (*domain.DayCloseLog, error) {
	day := closeDate.Format(domain.DateLayout)
	query := `
		SELECT day_close_id, close_date, cash_total, upi_total, card_total, credit_total, grand_total, invoice_count, user_id, created_at
		FROM day_close_log
		WHERE close_date = $1::date;`

	var m models.DayCloseLog
	err := r.Pool.QueryRow(ctx, query, day).Scan(
		&m.DayCloseID,
		&m.CloseDate,
		&m.CashTotal,
		&m.UPITotal,
		&m.CardTotal,
		&m.CreditTotal,
		&m.GrandTotal,
		&m.InvoiceCount,
		&m.UserID,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "day close of "+day)
	}
	log := mapping.ToDomainDayCloseLog(m)
	return &log, nil
}

// LockDayInTx takes a transaction-scoped advisory lock keyed on the date.
func (r *PgxDayCloseRepository) LockDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time) error {
	day := closeDate.Format(domain.DateLayout)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('day_close:' || $1::text));`, day); err != nil {
		return fmt.Errorf("failed to lock day %s: %w", day, err)
	}
	return nil
}

// CloseInvoicesInTx flags every open invoice created in [start, end) as closed
// and returns the totals of exactly the flagged rows.
func (r *PgxDayCloseRepository) CloseInvoicesInTx(ctx context.Context, tx pgx.Tx, start, end time.Time, closedAt time.Time) (*domain.DaySummary, error) {
	var s domain.DaySummary
	if err := tx.QueryRow(ctx, closeDayQuery, start, end, closedAt).Scan(daySumTargets(&s)...); err != nil {
		return nil, fmt.Errorf("failed to flag invoices as closed: %w", err)
	}
	return &s, nil
}

// SaveDayCloseLogInTx inserts the snapshot. The unique index on close_date turns a second close into ErrDuplicate.
func (r *PgxDayCloseRepository) SaveDayCloseLogInTx(ctx context.Context, tx pgx.Tx, log domain.DayCloseLog) error {
	m := mapping.ToModelDayCloseLog(log)
	day := m.CloseDate.Format(domain.DateLayout)

	query := `
		INSERT INTO day_close_log (day_close_id, close_date, cash_total, upi_total, card_total, credit_total, grand_total, invoice_count, user_id, created_at)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := tx.Exec(ctx, query,
		m.DayCloseID,
		day,
		m.CashTotal,
		m.UPITotal,
		m.CardTotal,
		m.CreditTotal,
		m.GrandTotal,
		m.InvoiceCount,
		m.UserID,
		m.CreatedAt,
	)
	if err != nil {
		return translateError(err, "day close of "+day)
	}
	return nil
}
