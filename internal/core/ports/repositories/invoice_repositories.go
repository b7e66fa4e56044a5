package repositories

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice together with its items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByCustomer retrieves a customer's most recent invoices, newest first.
	ListInvoicesByCustomer(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error)
}

// InvoiceTransactionSupport defines invoice writes that run inside a caller's transaction
type InvoiceTransactionSupport interface {
	// NextInvoiceSequenceInTx draws the next value for invoice numbering.
	NextInvoiceSequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error)

	// SaveInvoiceInTx inserts the invoice header. A duplicate number yields ErrDuplicate.
	SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// SaveInvoiceItemsInTx inserts the invoice lines.
	SaveInvoiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceTransactionSupport
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
