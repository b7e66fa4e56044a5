package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportingService_ProductSalesInclusiveRange(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo, ist)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, ist)
	to := time.Date(2024, 3, 5, 0, 0, 0, 0, ist)
	end := time.Date(2024, 3, 6, 0, 0, 0, 0, ist)

	repo.On("GetProductSalesData", mock.Anything, from, end).Return([]domain.ProductSalesRow{
		{ProductID: "p1", Name: "Basmati Rice 1kg", QtySold: d("12"), Revenue: d("1260")},
	}, nil).Once()

	rows, err := svc.ProductSales(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, rows, 1)
	repo.AssertExpectations(t)
}

func TestReportingService_GSTSummarySingleDay(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo, ist)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, ist)

	repo.On("GetGSTSummaryData", mock.Anything, day, day.AddDate(0, 0, 1)).Return([]domain.GSTSummaryRow{}, nil).Once()

	_, err := svc.GSTSummary(context.Background(), day, day)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReportingService_FromAfterTo(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo, ist)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, ist)

	_, err := svc.ProductSales(context.Background(), to.AddDate(0, 0, 2), to)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "GetProductSalesData", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingService_DashboardUsesShopDay(t *testing.T) {
	repo := new(MockReportingRepository)
	// 20:00 UTC on the 4th is already the 5th in the shop's zone.
	now := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)
	svc := services.NewReportingService(repo, ist, services.WithReportingClock(func() time.Time { return now }))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, ist)

	repo.On("GetShopTotals", mock.Anything, day, day.AddDate(0, 0, 1)).Return(&domain.ShopTotals{
		TodaySales:       d("4210.50"),
		TodayBills:       7,
		LowStockCount:    3,
		TotalOutstanding: d("1250"),
	}, nil).Once()
	sales := []domain.ProductSalesRow{}
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"} {
		sales = append(sales, domain.ProductSalesRow{ProductID: id, QtySold: d("1"), Revenue: d("10")})
	}
	repo.On("GetProductSalesData", mock.Anything, day, day.AddDate(0, 0, 1)).Return(sales, nil).Once()
	repo.On("ListRecentInvoices", mock.Anything, 5).Return([]domain.InvoiceSummary{
		{InvoiceID: "inv-2", InvoiceNumber: "INV-20240305-000002", Total: d("210"), PaymentMode: domain.PaymentCash},
		{InvoiceID: "inv-1", InvoiceNumber: "INV-20240305-000001", Total: d("99.50"), PaymentMode: domain.PaymentCredit},
	}, nil).Once()

	dash, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.True(t, day.Equal(dash.Date))
	assert.True(t, d("4210.50").Equal(dash.TodaySales))
	assert.Equal(t, 7, dash.TodayBills)
	assert.Equal(t, 3, dash.LowStockCount)
	assert.True(t, d("1250").Equal(dash.TotalOutstanding))
	require.Len(t, dash.TopProducts, 5)
	assert.Equal(t, "p1", dash.TopProducts[0].ProductID)
	assert.Equal(t, "p5", dash.TopProducts[4].ProductID)
	assert.Len(t, dash.RecentInvoices, 2)
	repo.AssertExpectations(t)
}

func TestReportingService_DashboardTotalsFailure(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo, ist)

	repo.On("GetShopTotals", mock.Anything, mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	_, err := svc.Dashboard(context.Background())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	repo.AssertNotCalled(t, "ListRecentInvoices", mock.Anything, mock.Anything)
}
