package services

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/dto"
)

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	ListTaxRates(ctx context.Context) ([]domain.TaxRate, error)
	ListInventoryLogs(ctx context.Context, productID string, limit int) ([]domain.InventoryLog, error)
}

// InventoryWriterSvc defines stock-changing operations
type InventoryWriterSvc interface {
	// CreateProduct registers a product. Opening stock is logged as a purchase.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)

	// AdjustStock applies a manual signed stock change with its inventory log.
	AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, userID string) (*domain.InventoryLog, error)
}

// InventorySvcFacade combines all product and stock service interfaces
type InventorySvcFacade interface {
	ProductReaderSvc
	InventoryWriterSvc
}
