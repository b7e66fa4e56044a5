package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is a selectable GST slab, e.g. "18%" -> 18.
type TaxRate struct {
	TaxRateID string          `json:"taxRateID"`
	Label     string          `json:"label"`
	Rate      decimal.Decimal `json:"rate"`
}

// Product is a sellable item. Stock is fractional for loose goods sold by weight or volume.
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	SKU         *string         `json:"sku,omitempty"`
	Barcode     *string         `json:"barcode,omitempty"`
	Category    string          `json:"category"`
	TaxRateID   *string         `json:"taxRateID,omitempty"`
	TaxRate     decimal.Decimal `json:"taxRate"` // resolved from TaxRateID, zero when unset
	Unit        string          `json:"unit"`    // pcs|kg|box|ltr|ml
	CostPrice   decimal.Decimal `json:"costPrice"`
	SellPrice   decimal.Decimal `json:"sellPrice"`
	Stock       decimal.Decimal `json:"stock"`
	LowStockQty decimal.Decimal `json:"lowStockQty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// IsLowStock reports whether stock is at or below the threshold.
func (p Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.LowStockQty)
}

// LineDefaults returns the values a cart line is seeded with.
func (p Product) LineDefaults() LineDefaults {
	return LineDefaults{
		Name:      p.Name,
		UnitPrice: p.SellPrice,
		TaxRate:   p.TaxRate,
	}
}

// InventoryReason records why stock moved.
type InventoryReason string

const (
	ReasonSale       InventoryReason = "sale"
	ReasonPurchase   InventoryReason = "purchase"
	ReasonAdjustment InventoryReason = "adjustment"
	ReasonDamage     InventoryReason = "damage"
)

// IsManual reports whether the reason may be used for a manual stock adjustment.
// Sales are only recorded by invoice commits.
func (r InventoryReason) IsManual() bool {
	switch r {
	case ReasonPurchase, ReasonAdjustment, ReasonDamage:
		return true
	}
	return false
}

// InventoryLog is an append-only record of one stock change.
type InventoryLog struct {
	LogID     string          `json:"logID"`
	ProductID string          `json:"productID"`
	ChangeQty decimal.Decimal `json:"changeQty"` // positive=in, negative=out
	Reason    InventoryReason `json:"reason"`
	InvoiceID *string         `json:"invoiceID,omitempty"`
	UserID    *string         `json:"userID,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

var barcodePattern = regexp.MustCompile(`^\d{8,13}$`)

// IsBarcode reports whether text looks like an EAN-8/UPC-A/EAN-13 style code.
func IsBarcode(text string) bool {
	return barcodePattern.MatchString(text)
}
