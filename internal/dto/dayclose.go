package dto

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DaySummaryResponse is the end-of-day summary shown before closing.
type DaySummaryResponse struct {
	Date string `json:"date"`
	domain.DaySummary
	TaxTotal decimal.Decimal `json:"taxTotal"`
}

// ToDaySummaryResponse converts a domain.DaySummary to DaySummaryResponse DTO
func ToDaySummaryResponse(s *domain.DaySummary) DaySummaryResponse {
	return DaySummaryResponse{
		Date:       s.Date.Format(domain.DateLayout),
		DaySummary: *s,
		TaxTotal:   s.TaxTotal(),
	}
}
