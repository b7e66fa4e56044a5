package services

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommitInvoiceInput is everything needed to turn priced cart totals into an invoice.
type CommitInvoiceInput struct {
	Totals         domain.CartTotals
	CustomerID     *string // nil for a walk-in sale
	UserID         string
	PaymentMode    domain.PaymentMode
	AmountReceived decimal.Decimal // zero or less means "exact amount"
	Notes          string
}

// InvoiceCommitterSvc defines the invoice commit protocol
type InvoiceCommitterSvc interface {
	// CommitInvoice persists the invoice, its items, the stock decrements with
	// their inventory logs and, for credit sales, the customer's dues increase,
	// all in one transaction. It is never retried internally.
	CommitInvoice(ctx context.Context, input CommitInvoiceInput) (*domain.Invoice, error)
}

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice with its items.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListCustomerInvoices retrieves a customer's most recent invoices.
	ListCustomerInvoices(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error)
}

// BillingSvcFacade combines all invoice-related service interfaces
type BillingSvcFacade interface {
	InvoiceCommitterSvc
	InvoiceReaderSvc
}
