package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayCloseLog is a row of day_close_log.
type DayCloseLog struct {
	DayCloseID   string          `db:"day_close_id"`
	CloseDate    time.Time       `db:"close_date"` // DATE
	CashTotal    decimal.Decimal `db:"cash_total"`
	UPITotal     decimal.Decimal `db:"upi_total"`
	CardTotal    decimal.Decimal `db:"card_total"`
	CreditTotal  decimal.Decimal `db:"credit_total"`
	GrandTotal   decimal.Decimal `db:"grand_total"`
	InvoiceCount int             `db:"invoice_count"`
	UserID       string          `db:"user_id"`
	CreatedAt    time.Time       `db:"created_at"`
}
