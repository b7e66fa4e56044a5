package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDaySummary_SetAverage(t *testing.T) {
	s := domain.DaySummary{GrandTotal: d("1000"), InvoiceCount: 3}
	s.SetAverage()
	assert.True(t, d("333.33").Equal(s.AvgBill))

	empty := domain.DaySummary{}
	empty.SetAverage()
	assert.True(t, empty.AvgBill.IsZero())
}

func TestDaySummary_TotalFor(t *testing.T) {
	s := domain.DaySummary{CashTotal: d("10"), UPITotal: d("20"), CardTotal: d("30"), CreditTotal: d("40")}

	assert.True(t, d("10").Equal(s.TotalFor(domain.PaymentCash)))
	assert.True(t, d("20").Equal(s.TotalFor(domain.PaymentUPI)))
	assert.True(t, d("30").Equal(s.TotalFor(domain.PaymentCard)))
	assert.True(t, d("40").Equal(s.TotalFor(domain.PaymentCredit)))
	assert.True(t, s.TotalFor("cheque").IsZero())
}

func TestNewDayCloseLog(t *testing.T) {
	date := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	now := date.Add(22 * time.Hour)
	s := domain.DaySummary{Date: date, CashTotal: d("100"), CreditTotal: d("50"), GrandTotal: d("150"), InvoiceCount: 2}

	log := domain.NewDayCloseLog("dc1", s, "u1", now)

	assert.Equal(t, "dc1", log.DayCloseID)
	assert.Equal(t, date, log.CloseDate)
	assert.True(t, d("150").Equal(log.GrandTotal))
	assert.Equal(t, 2, log.InvoiceCount)
	assert.Equal(t, "u1", log.UserID)
	assert.Equal(t, now, log.CreatedAt)
}

func TestDayBounds(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 17th is already the 18th in India
	start, end := domain.DayBounds(time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC), ist)

	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, ist), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
