package dto

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceResponse is an invoice with its items and the change to hand back.
// It carries everything a receipt printer needs.
type InvoiceResponse struct {
	domain.Invoice
	TaxAmount decimal.Decimal `json:"taxAmount"`
	ChangeDue decimal.Decimal `json:"changeDue"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Invoice:   *inv,
		TaxAmount: domain.RoundMoney(inv.CGSTAmount.Add(inv.SGSTAmount)),
		ChangeDue: inv.ChangeDue(),
	}
}

// ListInvoicesParams defines query parameters for listing a customer's invoices.
type ListInvoicesParams struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}
