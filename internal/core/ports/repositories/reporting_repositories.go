package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving sales report data
type ReportingRepository interface {
	// GetProductSalesData retrieves per-product quantity and revenue for invoices created in [from, to).
	GetProductSalesData(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error)

	// GetGSTSummaryData retrieves tax collected per GST rate for invoices created in [from, to).
	GetGSTSummaryData(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error)
	// GetShopTotals retrieves sales and bill count for [from, to) together with
	// the low stock count and total outstanding dues right now.
	GetShopTotals(ctx context.Context, from, to time.Time) (*domain.ShopTotals, error)
	// ListRecentInvoices retrieves the latest invoices of the shop, newest first.
	ListRecentInvoices(ctx context.Context, limit int) ([]domain.InvoiceSummary, error)
}
