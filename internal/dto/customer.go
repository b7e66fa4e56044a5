package dto

import (
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,numeric,min=10,max=15"` // unique when present
	Email   string  `json:"email" binding:"omitempty,email"`
	Address string  `json:"address"`
}

// ListCustomersParams defines query parameters for searching customers.
type ListCustomersParams struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// SettleDuesRequest records a payment against a customer's dues.
type SettleDuesRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dgt0"`
}

// DuesResponse reports a customer's outstanding balance.
type DuesResponse struct {
	CustomerID  string          `json:"customerID"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// ListDuesPaymentsParams defines query parameters for listing dues payments.
type ListDuesPaymentsParams struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}
