package repositories

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its ID, active or not.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByBarcode retrieves an active product by its barcode.
	FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by ID.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of active products ordered by name.
	ListProducts(ctx context.Context, search string, limit int, offset int) ([]domain.Product, error)

	// ListLowStockProducts retrieves active products whose stock is at or below their threshold.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)

	// ListTaxRates retrieves the configured GST slabs.
	ListTaxRates(ctx context.Context) ([]domain.TaxRate, error)

	// ListInventoryLogs retrieves the latest stock movements of a product.
	ListInventoryLogs(ctx context.Context, productID string, limit int) ([]domain.InventoryLog, error)
}

// InventoryTransactionSupport defines stock operations that run inside a caller's transaction
type InventoryTransactionSupport interface {
	// SaveProductInTx persists a new product.
	SaveProductInTx(ctx context.Context, tx pgx.Tx, product domain.Product) error

	// AdjustStocksInTx adds each signed delta to the product's stock. A missing product yields ErrNotFound.
	AdjustStocksInTx(ctx context.Context, tx pgx.Tx, deltas []StockDelta) error

	// AppendInventoryLogsInTx appends audit rows for stock changes.
	AppendInventoryLogsInTx(ctx context.Context, tx pgx.Tx, logs []domain.InventoryLog) error
}

// StockDelta is a signed stock change for one product.
type StockDelta struct {
	ProductID string
	Delta     decimal.Decimal
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	InventoryTransactionSupport
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
