package mapping

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		SKU:         d.SKU,
		Barcode:     d.Barcode,
		Category:    d.Category,
		TaxRateID:   d.TaxRateID,
		TaxRate:     d.TaxRate,
		Unit:        d.Unit,
		CostPrice:   d.CostPrice,
		SellPrice:   d.SellPrice,
		Stock:       d.Stock,
		LowStockQty: d.LowStockQty,
		ExpiryDate:  d.ExpiryDate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		SKU:         m.SKU,
		Barcode:     m.Barcode,
		Category:    m.Category,
		TaxRateID:   m.TaxRateID,
		TaxRate:     m.TaxRate,
		Unit:        m.Unit,
		CostPrice:   m.CostPrice,
		SellPrice:   m.SellPrice,
		Stock:       m.Stock,
		LowStockQty: m.LowStockQty,
		ExpiryDate:  m.ExpiryDate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to a slice of domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToDomainTaxRate converts a model TaxRate to a domain TaxRate
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{TaxRateID: m.TaxRateID, Label: m.Label, Rate: m.Rate}
}

// ToModelInventoryLog converts a domain InventoryLog to a model InventoryLog
func ToModelInventoryLog(d domain.InventoryLog) models.InventoryLog {
	return models.InventoryLog{
		LogID:     d.LogID,
		ProductID: d.ProductID,
		ChangeQty: d.ChangeQty,
		Reason:    string(d.Reason),
		InvoiceID: d.InvoiceID,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainInventoryLog converts a model InventoryLog to a domain InventoryLog
func ToDomainInventoryLog(m models.InventoryLog) domain.InventoryLog {
	return domain.InventoryLog{
		LogID:     m.LogID,
		ProductID: m.ProductID,
		ChangeQty: m.ChangeQty,
		Reason:    domain.InventoryReason(m.Reason),
		InvoiceID: m.InvoiceID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
