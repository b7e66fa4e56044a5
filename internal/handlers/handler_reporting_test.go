package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/handlers"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	loc                  *time.Location
	token                string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	suite.router = newTestRouter(suite.T())
	suite.mockReportingService = new(MockReportingService)
	suite.loc = time.FixedZone("IST", 19800)
	suite.token = generateTestToken(suite.T(), "owner")

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService, suite.loc)
}

func (suite *ReportingHandlerTestSuite) TearDownTest() {
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestProductSales_InclusiveDates() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, suite.loc)
	to := time.Date(2024, 3, 5, 0, 0, 0, 0, suite.loc)
	suite.mockReportingService.On("ProductSales", mock.Anything, from, to).Return([]domain.ProductSalesRow{
		{ProductID: "p1", Name: "Basmati Rice 1kg", QtySold: decimal.RequireFromString("12"), Revenue: decimal.RequireFromString("1260")},
	}, nil).Once()

	rec := doRequest(suite.router, http.MethodGet, "/api/v1/reports/product-sales?from=2024-03-01&to=2024-03-05", "", suite.token)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ReportingHandlerTestSuite) TestProductSales_MissingRange() {
	rec := doRequest(suite.router, http.MethodGet, "/api/v1/reports/product-sales", "", suite.token)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "ProductSales", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestDashboard_Success() {
	dash := &domain.Dashboard{
		Date: time.Date(2024, 3, 5, 0, 0, 0, 0, suite.loc),
		ShopTotals: domain.ShopTotals{
			TodaySales:       decimal.RequireFromString("4210.5"),
			TodayBills:       7,
			LowStockCount:    3,
			TotalOutstanding: decimal.RequireFromString("1250"),
		},
		TopProducts:    []domain.ProductSalesRow{},
		RecentInvoices: []domain.InvoiceSummary{},
	}
	suite.mockReportingService.On("Dashboard", mock.Anything).Return(dash, nil).Once()

	rec := doRequest(suite.router, http.MethodGet, "/api/v1/reports/dashboard", "", suite.token)

	suite.Equal(http.StatusOK, rec.Code)
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("4210.5", body["todaySales"])
	suite.Equal(float64(7), body["todayBills"])
	suite.Equal(float64(3), body["lowStockCount"])
	suite.Equal("1250", body["totalOutstanding"])
}

func (suite *ReportingHandlerTestSuite) TestDashboard_StorageFailure() {
	suite.mockReportingService.On("Dashboard", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	rec := doRequest(suite.router, http.MethodGet, "/api/v1/reports/dashboard", "", suite.token)

	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
