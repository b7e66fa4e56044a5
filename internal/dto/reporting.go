package dto

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
)

// DateRangeParams bounds a report by inclusive calendar dates (YYYY-MM-DD).
type DateRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// ProductSalesResponse represents the product sales report response
type ProductSalesResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Rows     []domain.ProductSalesRow `json:"rows"`
}

// GSTSummaryResponse represents the GST summary report response
type GSTSummaryResponse struct {
	FromDate string                 `json:"fromDate"`
	ToDate   string                 `json:"toDate"`
	Rows     []domain.GSTSummaryRow `json:"rows"`
}
