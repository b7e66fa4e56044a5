package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetProductSalesData retrieves quantity sold and revenue per product, best sellers first.
func (r *reportingRepository) GetProductSalesData(ctx context.Context, from, to time.Time) ([]domain.ProductSalesRow, error) {
	query := `
		SELECT
			ii.product_id,
			MAX(ii.product_name) AS name,
			SUM(ii.qty) AS qty_sold,
			SUM(ii.line_total) AS revenue
		FROM invoice_items ii
		JOIN invoices i ON i.invoice_id = ii.invoice_id
		WHERE i.created_at >= $1 AND i.created_at < $2
		GROUP BY ii.product_id
		ORDER BY qty_sold DESC, name
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying product sales data: %w", err)
	}
	defer rows.Close()

	result := []domain.ProductSalesRow{}
	for rows.Next() {
		var row domain.ProductSalesRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.QtySold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning product sales row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product sales rows: %w", err)
	}
	return result, nil
}

// GetGSTSummaryData retrieves taxable value and tax collected per GST rate.
func (r *reportingRepository) GetGSTSummaryData(ctx context.Context, from, to time.Time) ([]domain.GSTSummaryRow, error) {
	query := `
		SELECT
			ii.tax_rate,
			SUM(ii.line_total - ii.tax_amount) AS taxable_value,
			SUM(ii.cgst_amount) AS cgst,
			SUM(ii.sgst_amount) AS sgst,
			SUM(ii.tax_amount) AS total_tax
		FROM invoice_items ii
		JOIN invoices i ON i.invoice_id = ii.invoice_id
		WHERE i.created_at >= $1 AND i.created_at < $2
		GROUP BY ii.tax_rate
		ORDER BY ii.tax_rate
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying GST summary data: %w", err)
	}
	defer rows.Close()

	result := []domain.GSTSummaryRow{}
	for rows.Next() {
		var row domain.GSTSummaryRow
		if err := rows.Scan(&row.TaxRate, &row.TaxableValue, &row.CGST, &row.SGST, &row.TotalTax); err != nil {
			return nil, fmt.Errorf("error scanning GST summary row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating GST summary rows: %w", err)
	}
	return result, nil
}

// GetShopTotals retrieves sales for [from, to) and the shop-wide low stock and dues counters in one round trip.
func (r *reportingRepository) GetShopTotals(ctx context.Context, from, to time.Time) (*domain.ShopTotals, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total), 0) FROM invoices WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM invoices WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM products WHERE is_active AND stock <= low_stock_qty),
			(SELECT COALESCE(SUM(outstanding), 0) FROM customers)
	`

	var t domain.ShopTotals
	err := r.Pool.QueryRow(ctx, query, from, to).
		Scan(&t.TodaySales, &t.TodayBills, &t.LowStockCount, &t.TotalOutstanding)
	if err != nil {
		return nil, fmt.Errorf("error querying shop totals: %w", err)
	}
	return &t, nil
}

// ListRecentInvoices retrieves the shop's latest invoices, newest first.
func (r *reportingRepository) ListRecentInvoices(ctx context.Context, limit int) ([]domain.InvoiceSummary, error) {
	query := `
		SELECT invoice_id, invoice_number, total, payment_mode, created_at
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.InvoiceSummary{}
	for rows.Next() {
		var s domain.InvoiceSummary
		var mode string
		if err := rows.Scan(&s.InvoiceID, &s.InvoiceNumber, &s.Total, &mode, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning recent invoice row: %w", err)
		}
		s.PaymentMode = domain.PaymentMode(mode)
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent invoice rows: %w", err)
	}
	return result, nil
}
