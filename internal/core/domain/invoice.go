package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a bill was paid.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "cash"
	PaymentUPI    PaymentMode = "upi"
	PaymentCard   PaymentMode = "card"
	PaymentCredit PaymentMode = "credit" // added to the customer's dues
)

// PaymentModes lists every accepted mode in reporting order.
var PaymentModes = []PaymentMode{PaymentCash, PaymentUPI, PaymentCard, PaymentCredit}

// IsValid reports whether m is one of the known payment modes.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentCredit:
		return true
	}
	return false
}

// PaymentStatus indicates whether an invoice has been paid.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
)

// StatusFor returns the payment status an invoice is created with.
func StatusFor(mode PaymentMode) PaymentStatus {
	if mode == PaymentCredit {
		return StatusPending
	}
	return StatusPaid
}

// Invoice is a committed sale. Only the day-close fields change after creation.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerID     *string         `json:"customerID,omitempty"` // nil for walk-in sales
	UserID         string          `json:"userID"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountPct    decimal.Decimal `json:"discountPct"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	Total          decimal.Decimal `json:"total"`
	AmountReceived decimal.Decimal `json:"amountReceived"`
	PaymentMode    PaymentMode     `json:"paymentMode"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	Notes          string          `json:"notes"`
	DayClosed      bool            `json:"dayClosed"`
	DayClosedAt    *time.Time      `json:"dayClosedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	Items          []InvoiceItem   `json:"items,omitempty"`
}

// ChangeDue is what the cashier hands back; never negative.
func (i Invoice) ChangeDue() decimal.Decimal {
	change := RoundMoney(i.AmountReceived.Sub(i.Total))
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// InvoiceItem is a line of an invoice. Name and price are copies taken when
// the line was priced, so later product edits never change old invoices.
type InvoiceItem struct {
	InvoiceItemID  string          `json:"invoiceItemID"`
	InvoiceID      string          `json:"invoiceID"`
	ProductID      string          `json:"productID"`
	ProductName    string          `json:"productName"`
	Qty            decimal.Decimal `json:"qty"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	DiscountPct    decimal.Decimal `json:"discountPct"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

// NewInvoiceItem snapshots a priced cart line onto an invoice.
func NewInvoiceItem(itemID, invoiceID string, line CartLine) InvoiceItem {
	return InvoiceItem{
		InvoiceItemID:  itemID,
		InvoiceID:      invoiceID,
		ProductID:      line.ProductID,
		ProductName:    line.Name,
		Qty:            line.Qty,
		UnitPrice:      line.UnitPrice,
		DiscountPct:    line.EffectiveDiscountPct,
		DiscountAmount: line.DiscountAmount,
		TaxRate:        line.TaxRate,
		CGSTAmount:     line.CGSTAmount,
		SGSTAmount:     line.SGSTAmount,
		TaxAmount:      line.TaxAmount,
		LineTotal:      line.LineTotal,
	}
}

// FormatInvoiceNumber renders a sequence value as INV-YYYYMMDD-NNNNNN.
func FormatInvoiceNumber(issuedAt time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%06d", issuedAt.Format("20060102"), seq)
}
