package dto

import (
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to register a product.
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required,max=200"`
	SKU          *string          `json:"sku"`
	Barcode      *string          `json:"barcode" binding:"omitempty,numeric,min=8,max=13"`
	Category     string           `json:"category"`
	TaxRateID    *string          `json:"taxRateID"`
	Unit         string           `json:"unit" binding:"omitempty,oneof=pcs kg box ltr ml"`
	CostPrice    decimal.Decimal  `json:"costPrice" binding:"dgte0"`
	SellPrice    decimal.Decimal  `json:"sellPrice" binding:"dgt0"`
	OpeningStock decimal.Decimal  `json:"openingStock" binding:"dgte0"`
	LowStockQty  *decimal.Decimal `json:"lowStockQty"` // shop default when omitted
	ExpiryDate   *time.Time       `json:"expiryDate"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// AdjustStockRequest applies a manual stock movement.
type AdjustStockRequest struct {
	Delta  *decimal.Decimal       `json:"delta" binding:"required"` // signed, non-zero
	Reason domain.InventoryReason `json:"reason" binding:"required,oneof=purchase adjustment damage"`
}

// ProductResponse is a product with its derived low-stock flag.
type ProductResponse struct {
	domain.Product
	LowStock bool `json:"lowStock"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{Product: *p, LowStock: p.IsLowStock()}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ListInventoryLogsParams defines query parameters for listing stock movements.
type ListInventoryLogsParams struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=200"`
}
