package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
)

// ReportingService defines operations for generating sales reports
type ReportingService interface {
	// ProductSales reports quantity sold and revenue per product for the dates from..to inclusive.
	ProductSales(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error)

	// GSTSummary reports taxable value and tax collected per GST rate for the dates from..to inclusive.
	GSTSummary(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error)

	// Dashboard reports today's sales, best sellers and latest bills with the shop-wide low stock and dues figures.
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
