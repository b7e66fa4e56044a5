package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	loc           *time.Location
}

const (
	dashboardTopProducts    = 5
	dashboardRecentInvoices = 5
)

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock that decides which day the dashboard shows.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Now = now
	}
}

// NewReportingService creates a new reporting service. Report dates are calendar dates in loc.
func NewReportingService(repo portsrepo.ReportingRepository, loc *time.Location, options ...ReportingServiceOption) portssvc.ReportingService {
	if loc == nil {
		loc = time.UTC
	}
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
		loc:           loc,
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// period converts inclusive calendar dates into a half-open instant range.
func (s *reportingService) period(from, to time.Time) (time.Time, time.Time, error) {
	start, _ := domain.DayBounds(from, s.loc)
	_, end := domain.DayBounds(to, s.loc)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: 'from' date must not be after 'to' date", apperrors.ErrValidation)
	}
	return start, end, nil
}

// ProductSales reports quantity sold and revenue per product
func (s *reportingService) ProductSales(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error) {
	start, end, err := s.period(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetProductSalesData(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve product sales data",
			slog.String("from", start.Format(time.RFC3339)),
			slog.String("to", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve product sales data: %w", err)
	}

	s.LogInfo(ctx, "Product sales report generated successfully", slog.Int("row_count", len(rows)))
	return rows, nil
}

// GSTSummary reports tax collected per GST rate
func (s *reportingService) GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	start, end, err := s.period(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetGSTSummaryData(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve GST summary data",
			slog.String("from", start.Format(time.RFC3339)),
			slog.String("to", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve GST summary data: %w", err)
	}

	s.LogInfo(ctx, "GST summary report generated successfully", slog.Int("row_count", len(rows)))
	return rows, nil
}

// Dashboard gathers the figures shown on the shop's home screen for the current business day.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	start, end := domain.DayBounds(s.Now(), s.loc)

	totals, err := s.reportingRepo.GetShopTotals(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve shop totals", slog.String("date", start.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve shop totals: %w", err)
	}

	sales, err := s.reportingRepo.GetProductSalesData(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve today's product sales", slog.String("date", start.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve product sales data: %w", err)
	}
	if len(sales) > dashboardTopProducts {
		sales = sales[:dashboardTopProducts]
	}

	recent, err := s.reportingRepo.ListRecentInvoices(ctx, dashboardRecentInvoices)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve recent invoices")
		return nil, fmt.Errorf("failed to retrieve recent invoices: %w", err)
	}

	return &domain.Dashboard{
		Date:           start,
		ShopTotals:     *totals,
		TopProducts:    sales,
		RecentInvoices: recent,
	}, nil
}
