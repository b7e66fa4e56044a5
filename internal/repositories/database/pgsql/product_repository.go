package pgsql

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_billing_app/internal/models"
	"github.com/SscSPs/pos_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
	p.product_id, p.name, p.sku, p.barcode, p.category, p.tax_rate_id, COALESCE(t.rate, 0),
	p.unit, p.cost_price, p.sell_price, p.stock, p.low_stock_qty, p.expiry_date, p.is_active,
	p.created_at, p.created_by`

const productFrom = `
	FROM products p
	LEFT JOIN tax_rates t ON t.tax_rate_id = p.tax_rate_id`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for products and stock movements.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

func scanProduct(row rowScanner) (domain.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.SKU,
		&m.Barcode,
		&m.Category,
		&m.TaxRateID,
		&m.TaxRate,
		&m.Unit,
		&m.CostPrice,
		&m.SellPrice,
		&m.Stock,
		&m.LowStockQty,
		&m.ExpiryDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return domain.Product{}, err
	}
	return mapping.ToDomainProduct(m), nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// FindProductByID retrieves a product by its ID, active or not.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.product_id = $1;`

	p, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		return nil, translateError(err, "product "+productID)
	}
	return &p, nil
}

// FindProductByBarcode retrieves an active product by its barcode.
func (r *PgxProductRepository) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.barcode = $1 AND p.is_active;`

	p, err := scanProduct(r.Pool.QueryRow(ctx, query, barcode))
	if err != nil {
		return nil, translateError(err, "product with barcode "+barcode)
	}
	return &p, nil
}

// FindProductsByIDs retrieves multiple products keyed by ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + productFrom + ` WHERE p.product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return byID, nil
}

// ListProducts retrieves active products whose name, SKU or category matches search.
func (r *PgxProductRepository) ListProducts(ctx context.Context, search string, limit int, offset int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.is_active
			AND ($1 = '' OR p.name ILIKE '%' || $1 || '%' OR p.sku ILIKE '%' || $1 || '%' OR p.category ILIKE '%' || $1 || '%')
		ORDER BY p.name
		LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return collectProducts(rows)
}

// ListLowStockProducts retrieves active products whose stock is at or below their threshold.
func (r *PgxProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.is_active AND p.stock <= p.low_stock_qty
		ORDER BY p.stock, p.name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return collectProducts(rows)
}

// ListTaxRates retrieves the configured GST slabs ordered by rate.
func (r *PgxProductRepository) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	rows, err := r.Pool.Query(ctx, `SELECT tax_rate_id, label, rate FROM tax_rates ORDER BY rate;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		var m models.TaxRate
		if err := rows.Scan(&m.TaxRateID, &m.Label, &m.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan tax rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainTaxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax rate rows: %w", err)
	}
	return rates, nil
}

// ListInventoryLogs retrieves the latest stock movements of a product.
func (r *PgxProductRepository) ListInventoryLogs(ctx context.Context, productID string, limit int) ([]domain.InventoryLog, error) {
	query := `
		SELECT log_id, product_id, change_qty, reason, invoice_id, user_id, created_at
		FROM inventory_logs
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs for product %s: %w", productID, err)
	}
	defer rows.Close()

	logs := []domain.InventoryLog{}
	for rows.Next() {
		var m models.InventoryLog
		if err := rows.Scan(&m.LogID, &m.ProductID, &m.ChangeQty, &m.Reason, &m.InvoiceID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory log row: %w", err)
		}
		logs = append(logs, mapping.ToDomainInventoryLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory log rows: %w", err)
	}
	return logs, nil
}

// SaveProductInTx persists a new product. A taken SKU or barcode yields ErrDuplicate.
func (r *PgxProductRepository) SaveProductInTx(ctx context.Context, tx pgx.Tx, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (product_id, name, sku, barcode, category, tax_rate_id, unit, cost_price, sell_price, stock, low_stock_qty, expiry_date, is_active, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	_, err := tx.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.SKU,
		m.Barcode,
		m.Category,
		m.TaxRateID,
		m.Unit,
		m.CostPrice,
		m.SellPrice,
		m.Stock,
		m.LowStockQty,
		m.ExpiryDate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return translateError(err, "product "+m.Name)
	}
	return nil
}

// lockOrder returns deltas sorted by product ID. Every writer updates product
// rows in this order, so two checkouts sharing products never wait on each other in a cycle.
func lockOrder(deltas []portsrepo.StockDelta) []portsrepo.StockDelta {
	ordered := slices.Clone(deltas)
	slices.SortStableFunc(ordered, func(a, b portsrepo.StockDelta) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return ordered
}

// AdjustStocksInTx adds each signed delta to the product's stock. Stock may go
// negative. A missing product yields ErrNotFound.
func (r *PgxProductRepository) AdjustStocksInTx(ctx context.Context, tx pgx.Tx, deltas []portsrepo.StockDelta) error {
	if len(deltas) == 0 {
		return nil
	}
	deltas = lockOrder(deltas)

	query := `UPDATE products SET stock = stock + $2 WHERE product_id = $1;`

	batch := &pgx.Batch{}
	for _, d := range deltas {
		batch.Queue(query, d.ProductID, d.Delta)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, d := range deltas {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update stock for product %s: %w", d.ProductID, err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: product %s", apperrors.ErrNotFound, d.ProductID)
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close stock update batch: %w", err)
	}
	return batchErr
}

// AppendInventoryLogsInTx appends audit rows for stock changes.
func (r *PgxProductRepository) AppendInventoryLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.InventoryLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := `
		INSERT INTO inventory_logs (log_id, product_id, change_qty, reason, invoice_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	batch := &pgx.Batch{}
	for _, l := range logs {
		m := mapping.ToModelInventoryLog(l)
		batch.Queue(query, m.LogID, m.ProductID, m.ChangeQty, m.Reason, m.InvoiceID, m.UserID, m.CreatedAt)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "inventory log")
	}
	return nil
}
