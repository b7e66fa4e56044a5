package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
)

const (
	defaultUnit              = "pcs"
	defaultInventoryLogLimit = 50
)

// inventoryService manages the product catalogue and manual stock movements.
type inventoryService struct {
	BaseService
	productRepo     portsrepo.ProductRepositoryWithTx
	lowStockDefault decimal.Decimal
}

// NewInventoryService creates a new InventorySvcFacade. Products created
// without a threshold get lowStockDefault.
func NewInventoryService(productRepo portsrepo.ProductRepositoryWithTx, lowStockDefault decimal.Decimal) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService:     newBaseService(),
		productRepo:     productRepo,
		lowStockDefault: lowStockDefault,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *inventoryService) resolveTaxRate(ctx context.Context, taxRateID *string) (decimal.Decimal, error) {
	if taxRateID == nil {
		return decimal.Zero, nil
	}
	rates, err := s.productRepo.ListTaxRates(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load tax rates: %w", err)
	}
	for _, rate := range rates {
		if rate.TaxRateID == *taxRateID {
			return rate.Rate, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: unknown tax rate %s", apperrors.ErrValidation, *taxRateID)
}

// CreateProduct implements portssvc.InventoryWriterSvc
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if !req.SellPrice.IsPositive() {
		return nil, fmt.Errorf("%w: sell price must be positive", apperrors.ErrValidation)
	}
	if req.CostPrice.IsNegative() || req.OpeningStock.IsNegative() {
		return nil, fmt.Errorf("%w: cost price and opening stock cannot be negative", apperrors.ErrValidation)
	}
	if !domain.ValidStockChange(req.OpeningStock) {
		return nil, fmt.Errorf("%w: opening stock %s must have at most %d decimal places", apperrors.ErrValidation, req.OpeningStock, domain.QtyPlaces)
	}
	barcode := optionalString(req.Barcode)
	if barcode != nil && !domain.IsBarcode(*barcode) {
		return nil, fmt.Errorf("%w: barcode must be 8 to 13 digits", apperrors.ErrValidation)
	}

	taxRateID := optionalString(req.TaxRateID)
	taxRate, err := s.resolveTaxRate(ctx, taxRateID)
	if err != nil {
		return nil, err
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = defaultUnit
	}
	lowStock := s.lowStockDefault
	if req.LowStockQty != nil {
		if req.LowStockQty.IsNegative() || !domain.ValidStockChange(*req.LowStockQty) {
			return nil, fmt.Errorf("%w: low stock threshold %s is out of range", apperrors.ErrValidation, *req.LowStockQty)
		}
		lowStock = *req.LowStockQty
	}

	now := s.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        name,
		SKU:         optionalString(req.SKU),
		Barcode:     barcode,
		Category:    strings.TrimSpace(req.Category),
		TaxRateID:   taxRateID,
		TaxRate:     taxRate,
		Unit:        unit,
		CostPrice:   domain.RoundMoney(req.CostPrice),
		SellPrice:   domain.RoundMoney(req.SellPrice),
		Stock:       req.OpeningStock,
		LowStockQty: lowStock,
		ExpiryDate:  req.ExpiryDate,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID},
	}

	tx, err := s.productRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin product transaction")
		return nil, txFailure("failed to create product", err)
	}
	defer func() {
		if rbErr := s.productRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back product transaction", slog.String("product_id", product.ProductID))
		}
	}()

	if err := s.productRepo.SaveProductInTx(ctx, tx, product); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save product")
		}
		return nil, txFailure("failed to create product", err)
	}
	if product.Stock.IsPositive() {
		opening := domain.InventoryLog{
			LogID:     uuid.NewString(),
			ProductID: product.ProductID,
			ChangeQty: product.Stock,
			Reason:    domain.ReasonPurchase,
			UserID:    &userID,
			CreatedAt: now,
		}
		if err := s.productRepo.AppendInventoryLogsInTx(ctx, tx, []domain.InventoryLog{opening}); err != nil {
			s.LogError(ctx, err, "Failed to log opening stock", slog.String("product_id", product.ProductID))
			return nil, txFailure("failed to create product", err)
		}
	}
	if err := s.productRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit product transaction", slog.String("product_id", product.ProductID))
		return nil, txFailure("failed to create product", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID), slog.String("name", product.Name))
	return &product, nil
}

// AdjustStock implements portssvc.InventoryWriterSvc
func (s *inventoryService) AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, userID string) (*domain.InventoryLog, error) {
	if !req.Reason.IsManual() {
		return nil, fmt.Errorf("%w: reason %q cannot be used for a manual adjustment", apperrors.ErrValidation, req.Reason)
	}
	if req.Delta == nil || req.Delta.IsZero() {
		return nil, fmt.Errorf("%w: stock change cannot be zero", apperrors.ErrValidation)
	}
	delta := *req.Delta
	if !domain.ValidStockChange(delta) {
		return nil, fmt.Errorf("%w: stock change %s must have at most %d decimal places", apperrors.ErrValidation, delta, domain.QtyPlaces)
	}

	entry := domain.InventoryLog{
		LogID:     uuid.NewString(),
		ProductID: productID,
		ChangeQty: delta,
		Reason:    req.Reason,
		UserID:    &userID,
		CreatedAt: s.Now(),
	}

	tx, err := s.productRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin stock transaction")
		return nil, txFailure("failed to adjust stock", err)
	}
	defer func() {
		if rbErr := s.productRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back stock transaction", slog.String("product_id", productID))
		}
	}()

	if err := s.productRepo.AdjustStocksInTx(ctx, tx, []portsrepo.StockDelta{{ProductID: productID, Delta: delta}}); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to adjust stock", slog.String("product_id", productID))
		}
		return nil, txFailure("failed to adjust stock", err)
	}
	if err := s.productRepo.AppendInventoryLogsInTx(ctx, tx, []domain.InventoryLog{entry}); err != nil {
		s.LogError(ctx, err, "Failed to log stock adjustment", slog.String("product_id", productID))
		return nil, txFailure("failed to adjust stock", err)
	}
	if err := s.productRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit stock transaction", slog.String("product_id", productID))
		return nil, txFailure("failed to adjust stock", err)
	}

	s.LogInfo(ctx, "Stock adjusted",
		slog.String("product_id", productID),
		slog.String("delta", delta.String()),
		slog.String("reason", string(req.Reason)))
	return &entry, nil
}

// GetProduct implements portssvc.ProductReaderSvc
func (s *inventoryService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

// FindByBarcode implements portssvc.ProductReaderSvc
func (s *inventoryService) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if !domain.IsBarcode(barcode) {
		return nil, fmt.Errorf("%w: %q is not a barcode", apperrors.ErrValidation, barcode)
	}
	product, err := s.productRepo.FindProductByBarcode(ctx, barcode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by barcode", slog.String("barcode", barcode))
		}
		return nil, fmt.Errorf("failed to find product with barcode %s: %w", barcode, err)
	}
	return product, nil
}

// ListProducts implements portssvc.ProductReaderSvc. A search term that looks
// like a barcode is resolved as one against active products.
func (s *inventoryService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	search := strings.TrimSpace(params.Search)
	if domain.IsBarcode(search) {
		product, err := s.productRepo.FindProductByBarcode(ctx, search)
		switch {
		case err == nil:
			return []domain.Product{*product}, nil
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to find product by barcode", slog.String("barcode", search))
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
	}

	products, err := s.productRepo.ListProducts(ctx, search, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListLowStock implements portssvc.ProductReaderSvc
func (s *inventoryService) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListLowStockProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list low stock products")
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

// ListTaxRates implements portssvc.ProductReaderSvc
func (s *inventoryService) ListTaxRates(ctx context.Context) ([]domain.TaxRate, error) {
	rates, err := s.productRepo.ListTaxRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax rates")
		return nil, fmt.Errorf("failed to list tax rates: %w", err)
	}
	return rates, nil
}

// ListInventoryLogs implements portssvc.ProductReaderSvc
func (s *inventoryService) ListInventoryLogs(ctx context.Context, productID string, limit int) ([]domain.InventoryLog, error) {
	if limit <= 0 {
		limit = defaultInventoryLogLimit
	}
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	logs, err := s.productRepo.ListInventoryLogs(ctx, productID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory logs", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	return logs, nil
}
