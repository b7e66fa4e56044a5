package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is a row of tax_rates.
type TaxRate struct {
	TaxRateID string          `db:"tax_rate_id"`
	Label     string          `db:"label"`
	Rate      decimal.Decimal `db:"rate"`
}

// Product is a row of products joined with its tax rate.
type Product struct {
	ProductID   string          `db:"product_id"`
	Name        string          `db:"name"`
	SKU         *string         `db:"sku"`     // Nullable, unique
	Barcode     *string         `db:"barcode"` // Nullable, unique
	Category    string          `db:"category"`
	TaxRateID   *string         `db:"tax_rate_id"` // Nullable FK -> tax_rates
	TaxRate     decimal.Decimal `db:"rate"`        // From the join, 0 when tax_rate_id is NULL
	Unit        string          `db:"unit"`
	CostPrice   decimal.Decimal `db:"cost_price"`
	SellPrice   decimal.Decimal `db:"sell_price"`
	Stock       decimal.Decimal `db:"stock"`
	LowStockQty decimal.Decimal `db:"low_stock_qty"`
	ExpiryDate  *time.Time      `db:"expiry_date"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// InventoryLog is a row of inventory_logs.
type InventoryLog struct {
	LogID     string          `db:"log_id"`
	ProductID string          `db:"product_id"`
	ChangeQty decimal.Decimal `db:"change_qty"`
	Reason    string          `db:"reason"`
	InvoiceID *string         `db:"invoice_id"`
	UserID    *string         `db:"user_id"`
	CreatedAt time.Time       `db:"created_at"`
}
