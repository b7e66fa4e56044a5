package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSalesRow is one product's sales over a period.
type ProductSalesRow struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	QtySold   decimal.Decimal `json:"qtySold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// GSTSummaryRow is the tax collected at one GST rate over a period.
type GSTSummaryRow struct {
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	TotalTax     decimal.Decimal `json:"totalTax"`
}

// ShopTotals are the shop-wide counters behind the dashboard.
type ShopTotals struct {
	TodaySales       decimal.Decimal `json:"todaySales"`
	TodayBills       int             `json:"todayBills"`
	LowStockCount    int             `json:"lowStockCount"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}

// Dashboard is the at-a-glance view of the shop for one business day.
type Dashboard struct {
	Date time.Time `json:"date"`
	ShopTotals
	TopProducts    []ProductSalesRow `json:"topProducts"`
	RecentInvoices []InvoiceSummary  `json:"recentInvoices"`
}
