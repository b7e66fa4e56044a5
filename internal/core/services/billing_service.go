package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
)

const defaultInvoiceListLimit = 20

// billingService commits carts as invoices and serves invoice reads.
type billingService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryWithTx
	productRepo  portsrepo.ProductRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	loc          *time.Location
}

// BillingServiceOption is a functional option for configuring the billing service
type BillingServiceOption func(*billingService)

// WithBillingClock overrides the clock used for invoice timestamps and numbers.
func WithBillingClock(now func() time.Time) BillingServiceOption {
	return func(s *billingService) {
		s.Now = now
	}
}

// NewBillingService creates a new BillingService. Invoice numbers carry the
// calendar date in loc. All three repositories must share one connection pool,
// since the transaction begun on invoiceRepo is handed to the others.
func NewBillingService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	productRepo portsrepo.ProductRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	loc *time.Location,
	options ...BillingServiceOption,
) portssvc.BillingSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	svc := &billingService{
		BaseService:  newBaseService(),
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		loc:          loc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

func validateCommitInput(input portssvc.CommitInvoiceInput) error {
	if len(input.Totals.Lines) == 0 {
		return fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}
	if !input.PaymentMode.IsValid() {
		return fmt.Errorf("%w: unknown payment mode %q", apperrors.ErrValidation, input.PaymentMode)
	}
	if input.UserID == "" {
		return fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}
	if input.PaymentMode == domain.PaymentCredit && input.CustomerID == nil {
		return fmt.Errorf("%w: credit sales need a customer", apperrors.ErrValidation)
	}
	if !domain.ValidDiscountPct(input.Totals.BillDiscountPct) {
		return fmt.Errorf("%w: bill discount %s is out of range", apperrors.ErrValidation, input.Totals.BillDiscountPct)
	}
	for _, line := range input.Totals.Lines {
		if !domain.ValidQty(line.Qty) {
			return fmt.Errorf("%w: quantity %s of %s must be positive with at most %d decimal places",
				apperrors.ErrValidation, line.Qty, line.ProductID, domain.QtyPlaces)
		}
		if !domain.FitsPlaces(line.EffectiveDiscountPct, domain.PercentPlaces) {
			return fmt.Errorf("%w: discount %s of %s has too many decimal places",
				apperrors.ErrValidation, line.EffectiveDiscountPct, line.ProductID)
		}
	}
	if input.PaymentMode != domain.PaymentCredit &&
		input.AmountReceived.IsPositive() &&
		input.AmountReceived.LessThan(input.Totals.GrandTotal) {
		return fmt.Errorf("%w: amount received %s is less than the bill total %s",
			apperrors.ErrValidation, input.AmountReceived, input.Totals.GrandTotal)
	}
	return nil
}

// amountReceived is what the invoice records as tendered. Credit sales take nothing at the counter.
func amountReceived(input portssvc.CommitInvoiceInput) decimal.Decimal {
	if input.PaymentMode == domain.PaymentCredit {
		return decimal.Zero
	}
	if !input.AmountReceived.IsPositive() {
		return input.Totals.GrandTotal
	}
	return domain.RoundMoney(input.AmountReceived)
}

// CommitInvoice implements portssvc.InvoiceCommitterSvc
func (s *billingService) CommitInvoice(ctx context.Context, input portssvc.CommitInvoiceInput) (*domain.Invoice, error) {
	if input.CustomerID != nil && strings.TrimSpace(*input.CustomerID) == "" {
		input.CustomerID = nil
	}
	if err := validateCommitInput(input); err != nil {
		s.LogDebug(ctx, "Invoice rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	// Walk-in sales with a named customer only need the reference to exist;
	// credit sales lock the row inside the transaction below.
	if input.CustomerID != nil && input.PaymentMode != domain.PaymentCredit {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *input.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, *input.CustomerID)
			}
			s.LogError(ctx, err, "Failed to look up invoice customer", slog.String("customer_id", *input.CustomerID))
			return nil, fmt.Errorf("failed to look up customer: %w", err)
		}
	}

	now := s.Now()
	totals := input.Totals
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		CustomerID:     input.CustomerID,
		UserID:         input.UserID,
		Subtotal:       totals.Subtotal,
		DiscountPct:    totals.BillDiscountPct,
		DiscountAmount: totals.DiscountAmount,
		CGSTAmount:     totals.CGSTTotal,
		SGSTAmount:     totals.SGSTTotal,
		Total:          totals.GrandTotal,
		AmountReceived: amountReceived(input),
		PaymentMode:    input.PaymentMode,
		PaymentStatus:  domain.StatusFor(input.PaymentMode),
		Notes:          strings.TrimSpace(input.Notes),
		CreatedAt:      now,
	}

	items := make([]domain.InvoiceItem, 0, len(totals.Lines))
	deltas := make([]portsrepo.StockDelta, 0, len(totals.Lines))
	logs := make([]domain.InventoryLog, 0, len(totals.Lines))
	for _, line := range totals.Lines {
		items = append(items, domain.NewInvoiceItem(uuid.NewString(), invoice.InvoiceID, line))
		deltas = append(deltas, portsrepo.StockDelta{ProductID: line.ProductID, Delta: line.Qty.Neg()})
		logs = append(logs, domain.InventoryLog{
			LogID:     uuid.NewString(),
			ProductID: line.ProductID,
			ChangeQty: line.Qty.Neg(),
			Reason:    domain.ReasonSale,
			InvoiceID: &invoice.InvoiceID,
			UserID:    &invoice.UserID,
			CreatedAt: now,
		})
	}

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin invoice transaction")
		return nil, txFailure("failed to commit invoice", err)
	}
	defer func() {
		if rbErr := s.invoiceRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back invoice transaction", slog.String("invoice_id", invoice.InvoiceID))
		}
	}()

	seq, err := s.invoiceRepo.NextInvoiceSequenceInTx(ctx, tx)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate invoice number")
		return nil, txFailure("failed to allocate invoice number", err)
	}
	invoice.InvoiceNumber = domain.FormatInvoiceNumber(now.In(s.loc), seq)

	if input.PaymentMode == domain.PaymentCredit {
		if _, err := s.customerRepo.FindCustomerByIDForUpdate(ctx, tx, *input.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, *input.CustomerID)
			}
			s.LogError(ctx, err, "Failed to lock credit customer", slog.String("customer_id", *input.CustomerID))
			return nil, txFailure("failed to commit invoice", err)
		}
	}

	if err := s.invoiceRepo.SaveInvoiceInTx(ctx, tx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, txFailure("failed to save invoice", err)
	}
	if err := s.invoiceRepo.SaveInvoiceItemsInTx(ctx, tx, items); err != nil {
		s.LogError(ctx, err, "Failed to save invoice items", slog.String("invoice_id", invoice.InvoiceID))
		return nil, txFailure("failed to save invoice items", err)
	}
	if err := s.productRepo.AdjustStocksInTx(ctx, tx, deltas); err != nil {
		s.LogError(ctx, err, "Failed to decrement stock", slog.String("invoice_id", invoice.InvoiceID))
		return nil, txFailure("failed to decrement stock", err)
	}
	if err := s.productRepo.AppendInventoryLogsInTx(ctx, tx, logs); err != nil {
		s.LogError(ctx, err, "Failed to write sale inventory logs", slog.String("invoice_id", invoice.InvoiceID))
		return nil, txFailure("failed to write inventory logs", err)
	}
	if input.PaymentMode == domain.PaymentCredit {
		if err := s.customerRepo.AddOutstandingInTx(ctx, tx, *input.CustomerID, invoice.Total); err != nil {
			s.LogError(ctx, err, "Failed to add credit sale to dues", slog.String("customer_id", *input.CustomerID))
			return nil, txFailure("failed to update customer dues", err)
		}
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit invoice transaction", slog.String("invoice_id", invoice.InvoiceID))
		return nil, txFailure("failed to commit invoice", err)
	}

	invoice.Items = items
	s.LogInfo(ctx, "Invoice committed",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("payment_mode", string(invoice.PaymentMode)),
		slog.String("total", invoice.Total.String()),
		slog.Int("line_count", len(items)))
	return &invoice, nil
}

// GetInvoice implements portssvc.InvoiceReaderSvc
func (s *billingService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListCustomerInvoices implements portssvc.InvoiceReaderSvc
func (s *billingService) ListCustomerInvoices(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error) {
	if limit <= 0 {
		limit = defaultInvoiceListLimit
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	invoices, err := s.invoiceRepo.ListInvoicesByCustomer(ctx, customerID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customer invoices", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
