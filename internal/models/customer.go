package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a row of customers.
type Customer struct {
	CustomerID  string          `db:"customer_id"`
	Name        string          `db:"name"`
	Phone       *string         `db:"phone"` // Nullable, unique
	Email       string          `db:"email"`
	Address     string          `db:"address"`
	Outstanding decimal.Decimal `db:"outstanding"`
	CreatedAt   time.Time       `db:"created_at"`
}

// DuesPayment is a row of dues_payments.
type DuesPayment struct {
	PaymentID  string          `db:"payment_id"`
	CustomerID string          `db:"customer_id"`
	Amount     decimal.Decimal `db:"amount"`
	UserID     string          `db:"user_id"`
	Notes      string          `db:"notes"`
	CreatedAt  time.Time       `db:"created_at"`
}
