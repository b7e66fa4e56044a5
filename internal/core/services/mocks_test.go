package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live pgx transaction; mocks only pass it around.
type fakeTx struct {
	pgx.Tx
}

// --- Mock TransactionManager ---
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mockTxManager
}

var _ portsrepo.ProductRepositoryWithTx = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, search string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

func (m *MockProductRepository) ListInventoryLogs(ctx context.Context, productID string, limit int) ([]domain.InventoryLog, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLog), args.Error(1)
}

func (m *MockProductRepository) SaveProductInTx(ctx context.Context, tx pgx.Tx, product domain.Product) error {
	args := m.Called(ctx, tx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStocksInTx(ctx context.Context, tx pgx.Tx, deltas []portsrepo.StockDelta) error {
	args := m.Called(ctx, tx, deltas)
	return args.Error(0)
}

func (m *MockProductRepository) AppendInventoryLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.InventoryLog) error {
	args := m.Called(ctx, tx, logs)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mockTxManager
}

var _ portsrepo.CustomerRepositoryWithTx = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, search string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuesPayment), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, tx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) AddOutstandingInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error {
	args := m.Called(ctx, tx, customerID, delta)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveDuesPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DuesPayment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mockTxManager
}

var _ portsrepo.InvoiceRepositoryWithTx = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceRepository) NextInvoiceSequenceInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveInvoiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

// --- Mock DayCloseRepository ---
type MockDayCloseRepository struct {
	mockTxManager
}

var _ portsrepo.DayCloseRepositoryWithTx = (*MockDayCloseRepository)(nil)

func (m *MockDayCloseRepository) SummarizeDay(ctx context.Context, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error) {
	args := m.Called(ctx, closeDate, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySummary), args.Error(1)
}

func (m *MockDayCloseRepository) FindDayCloseLog(ctx context.Context, closeDate time.Time) (*domain.DayCloseLog, error) {
	args := m.Called(ctx, closeDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayCloseLog), args.Error(1)
}

func (m *MockDayCloseRepository) LockDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time) error {
	args := m.Called(ctx, tx, closeDate)
	return args.Error(0)
}

func (m *MockDayCloseRepository) SummarizeDayInTx(ctx context.Context, tx pgx.Tx, closeDate time.Time, start, end time.Time) (*domain.DaySummary, error) {
	args := m.Called(ctx, tx, closeDate, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySummary), args.Error(1)
}

func (m *MockDayCloseRepository) CloseInvoicesInTx(ctx context.Context, tx pgx.Tx, start, end time.Time, closedAt time.Time) (*domain.DaySummary, error) {
	args := m.Called(ctx, tx, start, end, closedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySummary), args.Error(1)
}

func (m *MockDayCloseRepository) SaveDayCloseLogInTx(ctx context.Context, tx pgx.Tx, log domain.DayCloseLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetProductSalesData(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductSalesRow), args.Error(1)
}

func (m *MockReportingRepository) GetGSTSummaryData(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTSummaryRow), args.Error(1)
}

func (m *MockReportingRepository) GetShopTotals(ctx context.Context, from, to time.Time) (*domain.ShopTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopTotals), args.Error(1)
}

func (m *MockReportingRepository) ListRecentInvoices(ctx context.Context, limit int) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}
