package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/SscSPs/pos_billing_app/internal/handlers"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	mockInvoiceReader   *MockInvoiceReader
	token               string
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	suite.router = newTestRouter(suite.T())
	suite.mockCustomerService = new(MockCustomerService)
	suite.mockInvoiceReader = new(MockInvoiceReader)
	suite.token = generateTestToken(suite.T(), "cashier-1")

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterCustomerRoutes(v1, suite.mockCustomerService, suite.mockInvoiceReader)
}

func (suite *CustomerHandlerTestSuite) TearDownTest() {
	suite.mockCustomerService.AssertExpectations(suite.T())
	suite.mockInvoiceReader.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestSettleDues_Success() {
	payment := &domain.DuesPayment{
		PaymentID:  "pay-1",
		CustomerID: "c1",
		Amount:     decimal.RequireFromString("150"),
		UserID:     "cashier-1",
		Notes:      "Settled 150.00 dues",
	}
	suite.mockCustomerService.On("SettleDues", mock.Anything, "c1", decEq("150"), "cashier-1").Return(payment, nil).Once()

	rec := doRequest(suite.router, http.MethodPost, "/api/v1/customers/c1/dues/settle", `{"amount":"150"}`, suite.token)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), "Settled 150.00 dues")
}

func (suite *CustomerHandlerTestSuite) TestSettleDues_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"above balance", fmt.Errorf("%w: amount exceeds outstanding", apperrors.ErrValidation), http.StatusBadRequest},
		{"unknown customer", fmt.Errorf("%w: customer c1", apperrors.ErrNotFound), http.StatusNotFound},
		{"nothing owed", fmt.Errorf("%w: no dues outstanding", apperrors.ErrAlreadySatisfied), http.StatusConflict},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockCustomerService.On("SettleDues", mock.Anything, "c1", decEq("10"), "cashier-1").Return(nil, tt.err).Once()

			rec := doRequest(suite.router, http.MethodPost, "/api/v1/customers/c1/dues/settle", `{"amount":10}`, suite.token)

			suite.Equal(tt.status, rec.Code)
		})
	}
}

func (suite *CustomerHandlerTestSuite) TestSettleDues_RejectsNegativeAmount() {
	rec := doRequest(suite.router, http.MethodPost, "/api/v1/customers/c1/dues/settle", `{"amount":"-5"}`, suite.token)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_DuplicatePhone() {
	phone := "9876543210"
	req := dto.CreateCustomerRequest{Name: "Asha", Phone: &phone}
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, req, "cashier-1").
		Return(nil, fmt.Errorf("%w: phone 9876543210", apperrors.ErrDuplicate)).Once()

	rec := doRequest(suite.router, http.MethodPost, "/api/v1/customers", `{"name":"Asha","phone":"9876543210"}`, suite.token)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *CustomerHandlerTestSuite) TestListInvoices_DefaultLimit() {
	suite.mockInvoiceReader.On("ListCustomerInvoices", mock.Anything, "c1", 20).
		Return([]domain.InvoiceSummary{{InvoiceID: "inv-1", InvoiceNumber: "INV-20240305-000001"}}, nil).Once()

	rec := doRequest(suite.router, http.MethodGet, "/api/v1/customers/c1/invoices", "", suite.token)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "INV-20240305-000001")
}

func (suite *CustomerHandlerTestSuite) TestGetDues() {
	suite.mockCustomerService.On("GetCustomerDues", mock.Anything, "c1").Return(decimal.RequireFromString("249.33"), nil).Once()

	rec := doRequest(suite.router, http.MethodGet, "/api/v1/customers/c1/dues", "", suite.token)

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"customerID":"c1","outstanding":"249.33"}`, rec.Body.String())
}

func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
