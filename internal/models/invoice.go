package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of invoices.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	CustomerID     *string         `db:"customer_id"`
	UserID         string          `db:"user_id"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	DiscountPct    decimal.Decimal `db:"discount_pct"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	CGSTAmount     decimal.Decimal `db:"cgst_amount"`
	SGSTAmount     decimal.Decimal `db:"sgst_amount"`
	Total          decimal.Decimal `db:"total"`
	AmountReceived decimal.Decimal `db:"amount_received"`
	PaymentMode    string          `db:"payment_mode"`
	PaymentStatus  string          `db:"payment_status"`
	Notes          string          `db:"notes"`
	DayClosed      bool            `db:"day_closed"`
	DayClosedAt    *time.Time      `db:"day_closed_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

// InvoiceItem is a row of invoice_items.
type InvoiceItem struct {
	InvoiceItemID  string          `db:"invoice_item_id"`
	InvoiceID      string          `db:"invoice_id"`
	ProductID      string          `db:"product_id"`
	ProductName    string          `db:"product_name"`
	Qty            decimal.Decimal `db:"qty"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	DiscountPct    decimal.Decimal `db:"discount_pct"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	TaxRate        decimal.Decimal `db:"tax_rate"`
	CGSTAmount     decimal.Decimal `db:"cgst_amount"`
	SGSTAmount     decimal.Decimal `db:"sgst_amount"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	LineTotal      decimal.Decimal `db:"line_total"`
}
