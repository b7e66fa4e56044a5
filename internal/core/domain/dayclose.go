package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for business days.
const DateLayout = "2006-01-02"

// DaySummary aggregates one business day's invoices.
type DaySummary struct {
	Date          time.Time       `json:"date"`
	CashTotal     decimal.Decimal `json:"cashTotal"`
	UPITotal      decimal.Decimal `json:"upiTotal"`
	CardTotal     decimal.Decimal `json:"cardTotal"`
	CreditTotal   decimal.Decimal `json:"creditTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	InvoiceCount  int             `json:"invoiceCount"`
	AvgBill       decimal.Decimal `json:"avgBill"`
	CGSTTotal     decimal.Decimal `json:"cgstTotal"`
	SGSTTotal     decimal.Decimal `json:"sgstTotal"`
	AlreadyClosed bool            `json:"alreadyClosed"`
}

// SetAverage fills AvgBill from GrandTotal and InvoiceCount.
func (s *DaySummary) SetAverage() {
	if s.InvoiceCount == 0 {
		s.AvgBill = decimal.Zero
		return
	}
	s.AvgBill = RoundMoney(s.GrandTotal.Div(decimal.NewFromInt(int64(s.InvoiceCount))))
}

// TotalFor returns the day's total for one payment mode.
func (s DaySummary) TotalFor(mode PaymentMode) decimal.Decimal {
	switch mode {
	case PaymentCash:
		return s.CashTotal
	case PaymentUPI:
		return s.UPITotal
	case PaymentCard:
		return s.CardTotal
	case PaymentCredit:
		return s.CreditTotal
	}
	return decimal.Zero
}

// TaxTotal is the day's CGST plus SGST.
func (s DaySummary) TaxTotal() decimal.Decimal {
	return s.CGSTTotal.Add(s.SGSTTotal)
}

// DayCloseLog is the snapshot written when a day is closed. One per date.
type DayCloseLog struct {
	DayCloseID   string          `json:"dayCloseID"`
	CloseDate    time.Time       `json:"closeDate"`
	CashTotal    decimal.Decimal `json:"cashTotal"`
	UPITotal     decimal.Decimal `json:"upiTotal"`
	CardTotal    decimal.Decimal `json:"cardTotal"`
	CreditTotal  decimal.Decimal `json:"creditTotal"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	InvoiceCount int             `json:"invoiceCount"`
	UserID       string          `json:"userID"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewDayCloseLog snapshots summary for closing by userID.
func NewDayCloseLog(id string, summary DaySummary, userID string, now time.Time) DayCloseLog {
	return DayCloseLog{
		DayCloseID:   id,
		CloseDate:    summary.Date,
		CashTotal:    summary.CashTotal,
		UPITotal:     summary.UPITotal,
		CardTotal:    summary.CardTotal,
		CreditTotal:  summary.CreditTotal,
		GrandTotal:   summary.GrandTotal,
		InvoiceCount: summary.InvoiceCount,
		UserID:       userID,
		CreatedAt:    now,
	}
}

// DayBounds returns [start, end) of the calendar day containing t in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
