package mapping

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Items are mapped separately.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		InvoiceNumber:  d.InvoiceNumber,
		CustomerID:     d.CustomerID,
		UserID:         d.UserID,
		Subtotal:       d.Subtotal,
		DiscountPct:    d.DiscountPct,
		DiscountAmount: d.DiscountAmount,
		CGSTAmount:     d.CGSTAmount,
		SGSTAmount:     d.SGSTAmount,
		Total:          d.Total,
		AmountReceived: d.AmountReceived,
		PaymentMode:    string(d.PaymentMode),
		PaymentStatus:  string(d.PaymentStatus),
		Notes:          d.Notes,
		DayClosed:      d.DayClosed,
		DayClosedAt:    d.DayClosedAt,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice without items.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		InvoiceNumber:  m.InvoiceNumber,
		CustomerID:     m.CustomerID,
		UserID:         m.UserID,
		Subtotal:       m.Subtotal,
		DiscountPct:    m.DiscountPct,
		DiscountAmount: m.DiscountAmount,
		CGSTAmount:     m.CGSTAmount,
		SGSTAmount:     m.SGSTAmount,
		Total:          m.Total,
		AmountReceived: m.AmountReceived,
		PaymentMode:    domain.PaymentMode(m.PaymentMode),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		Notes:          m.Notes,
		DayClosed:      m.DayClosed,
		DayClosedAt:    m.DayClosedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID:  d.InvoiceItemID,
		InvoiceID:      d.InvoiceID,
		ProductID:      d.ProductID,
		ProductName:    d.ProductName,
		Qty:            d.Qty,
		UnitPrice:      d.UnitPrice,
		DiscountPct:    d.DiscountPct,
		DiscountAmount: d.DiscountAmount,
		TaxRate:        d.TaxRate,
		CGSTAmount:     d.CGSTAmount,
		SGSTAmount:     d.SGSTAmount,
		TaxAmount:      d.TaxAmount,
		LineTotal:      d.LineTotal,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		InvoiceItemID:  m.InvoiceItemID,
		InvoiceID:      m.InvoiceID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Qty:            m.Qty,
		UnitPrice:      m.UnitPrice,
		DiscountPct:    m.DiscountPct,
		DiscountAmount: m.DiscountAmount,
		TaxRate:        m.TaxRate,
		CGSTAmount:     m.CGSTAmount,
		SGSTAmount:     m.SGSTAmount,
		TaxAmount:      m.TaxAmount,
		LineTotal:      m.LineTotal,
	}
}
