package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a known buyer. Outstanding never goes below zero.
type Customer struct {
	CustomerID  string          `json:"customerID"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone,omitempty"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	Outstanding decimal.Decimal `json:"outstanding"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// HasDues reports whether the customer owes anything.
func (c Customer) HasDues() bool {
	return c.Outstanding.IsPositive()
}

// DuesPayment records money received against a customer's outstanding balance.
type DuesPayment struct {
	PaymentID  string          `json:"paymentID"`
	CustomerID string          `json:"customerID"`
	Amount     decimal.Decimal `json:"amount"`
	UserID     string          `json:"userID"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// InvoiceSummary is the short form of an invoice shown in a customer's history.
type InvoiceSummary struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Total         decimal.Decimal `json:"total"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	CreatedAt     time.Time       `json:"createdAt"`
}
