package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

var registerValidatorsOnce sync.Once

// newTestRouter returns a gin engine in test mode with the custom validators installed.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		require.True(t, ok)
		require.NoError(t, dto.RegisterValidators(v))
	})
	return gin.New()
}

func generateTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// --- Mock CartSessionSvc ---
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) totals(args mock.Arguments) (*domain.CartTotals, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartTotals), args.Error(1)
}

func (m *MockCartService) OpenCart(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockCartService) AddProduct(ctx context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID, productID, qty))
}
func (m *MockCartService) AddByBarcode(ctx context.Context, cartID, barcode string, qty decimal.Decimal) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID, barcode, qty))
}
func (m *MockCartService) RemoveItem(ctx context.Context, cartID, productID string) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID, productID))
}
func (m *MockCartService) UpdateQty(ctx context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID, productID, qty))
}
func (m *MockCartService) SetBillDiscount(ctx context.Context, cartID string, pct decimal.Decimal) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID, pct))
}
func (m *MockCartService) Totals(ctx context.Context, cartID string) (*domain.CartTotals, error) {
	return m.totals(m.Called(ctx, cartID))
}
func (m *MockCartService) ClearCart(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}
func (m *MockCartService) DiscardCart(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}
func (m *MockCartService) Checkout(ctx context.Context, cartID string, input portssvc.CheckoutInput) (*domain.Invoice, error) {
	args := m.Called(ctx, cartID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.CartSessionSvc = (*MockCartService)(nil)

// --- Mock DayCloseSvc ---
type MockDayCloseService struct {
	mock.Mock
}

func (m *MockDayCloseService) SummarizeDay(ctx context.Context, date time.Time) (*domain.DaySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DaySummary), args.Error(1)
}
func (m *MockDayCloseService) CloseDay(ctx context.Context, date time.Time, userID string) (*domain.DayCloseLog, error) {
	args := m.Called(ctx, date, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayCloseLog), args.Error(1)
}

var _ portssvc.DayCloseSvc = (*MockDayCloseService)(nil)

// --- Mock CustomerSvcFacade ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerDues(ctx context.Context, customerID string) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockCustomerService) ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DuesPayment), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SettleDues(ctx context.Context, customerID string, amount decimal.Decimal, userID string) (*domain.DuesPayment, error) {
	args := m.Called(ctx, customerID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuesPayment), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock InvoiceReaderSvc ---
type MockInvoiceReader struct {
	mock.Mock
}

func (m *MockInvoiceReader) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceReader) ListCustomerInvoices(ctx context.Context, customerID string, limit int) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}

var _ portssvc.InvoiceReaderSvc = (*MockInvoiceReader)(nil)


// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ProductSales(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductSalesRow), args.Error(1)
}

func (m *MockReportingService) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTSummaryRow), args.Error(1)
}

func (m *MockReportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
