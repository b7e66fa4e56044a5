package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_billing_app/internal/models"
	"github.com/SscSPs/pos_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

// NextInvoiceSequenceInTx draws the next value of invoice_number_seq. Values
// drawn by rolled back transactions are not reused.
func (r *PgxInvoiceRepository) NextInvoiceSequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('invoice_number_seq');`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to draw invoice sequence: %w", err)
	}
	return seq, nil
}

// SaveInvoiceInTx inserts the invoice header. A duplicate number yields ErrDuplicate.
func (r *PgxInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, invoice_number, customer_id, user_id, subtotal, discount_pct, discount_amount,
			cgst_amount, sgst_amount, total, amount_received, payment_mode, payment_status, notes, day_closed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	_, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.CustomerID,
		m.UserID,
		m.Subtotal,
		m.DiscountPct,
		m.DiscountAmount,
		m.CGSTAmount,
		m.SGSTAmount,
		m.Total,
		m.AmountReceived,
		m.PaymentMode,
		m.PaymentStatus,
		m.Notes,
		m.DayClosed,
		m.CreatedAt,
	)
	if err != nil {
		return translateError(err, "invoice "+m.InvoiceNumber)
	}
	return nil
}

// SaveInvoiceItemsInTx inserts the invoice lines in one batch.
func (r *PgxInvoiceRepository) SaveInvoiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO invoice_items (invoice_item_id, invoice_id, product_id, product_name, qty, unit_price, discount_pct,
			discount_amount, tax_rate, cgst_amount, sgst_amount, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelInvoiceItem(item)
		batch.Queue(query,
			m.InvoiceItemID,
			m.InvoiceID,
			m.ProductID,
			m.ProductName,
			m.Qty,
			m.UnitPrice,
			m.DiscountPct,
			m.DiscountAmount,
			m.TaxRate,
			m.CGSTAmount,
			m.SGSTAmount,
			m.TaxAmount,
			m.LineTotal,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "invoice items of "+items[0].InvoiceID)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice together with its items in line order.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, invoice_number, customer_id, user_id, subtotal, discount_pct, discount_amount,
			cgst_amount, sgst_amount, total, amount_received, payment_mode, payment_status, notes,
			day_closed, day_closed_at, created_at
		FROM invoices
		WHERE invoice_id = $1;`

	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.UserID,
		&m.Subtotal,
		&m.DiscountPct,
		&m.DiscountAmount,
		&m.CGSTAmount,
		&m.SGSTAmount,
		&m.Total,
		&m.AmountReceived,
		&m.PaymentMode,
		&m.PaymentStatus,
		&m.Notes,
		&m.DayClosed,
		&m.DayClosedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err, "invoice "+invoiceID)
	}

	invoice := mapping.ToDomainInvoice(m)
	items, err := r.findInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return &invoice, nil
}

func (r *PgxInvoiceRepository) findInvoiceItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT invoice_item_id, invoice_id, product_id, product_name, qty, unit_price, discount_pct,
			discount_amount, tax_rate, cgst_amount, sgst_amount, tax_amount, line_total
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY line_no;`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items of invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	items := []domain.InvoiceItem{}
	for rows.Next() {
		var m models.InvoiceItem
		err := rows.Scan(
			&m.InvoiceItemID,
			&m.InvoiceID,
			&m.ProductID,
			&m.ProductName,
			&m.Qty,
			&m.UnitPrice,
			&m.DiscountPct,
			&m.DiscountAmount,
			&m.TaxRate,
			&m.CGSTAmount,
			&m.SGSTAmount,
			&m.TaxAmount,
			&m.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, mapping.ToDomainInvoiceItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}
	return items, nil
}

// ListInvoicesByCustomer retrieves a customer's most recent invoices, newest first.
func (r *PgxInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error) {
	query := `
		SELECT invoice_id, invoice_number, total, payment_mode, created_at
		FROM invoices
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices of customer %s: %w", customerID, err)
	}
	defer rows.Close()

	summaries := []domain.InvoiceSummary{}
	for rows.Next() {
		var s domain.InvoiceSummary
		var mode string
		if err := rows.Scan(&s.InvoiceID, &s.InvoiceNumber, &s.Total, &mode, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice summary row: %w", err)
		}
		s.PaymentMode = domain.PaymentMode(mode)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice summary rows: %w", err)
	}
	return summaries, nil
}
