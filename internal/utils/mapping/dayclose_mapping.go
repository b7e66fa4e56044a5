package mapping

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/models"
)

// ToModelDayCloseLog converts a domain DayCloseLog to a model DayCloseLog
func ToModelDayCloseLog(d domain.DayCloseLog) models.DayCloseLog {
	return models.DayCloseLog{
		DayCloseID:   d.DayCloseID,
		CloseDate:    d.CloseDate,
		CashTotal:    d.CashTotal,
		UPITotal:     d.UPITotal,
		CardTotal:    d.CardTotal,
		CreditTotal:  d.CreditTotal,
		GrandTotal:   d.GrandTotal,
		InvoiceCount: d.InvoiceCount,
		UserID:       d.UserID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainDayCloseLog converts a model DayCloseLog to a domain DayCloseLog
func ToDomainDayCloseLog(m models.DayCloseLog) domain.DayCloseLog {
	return domain.DayCloseLog{
		DayCloseID:   m.DayCloseID,
		CloseDate:    m.CloseDate,
		CashTotal:    m.CashTotal,
		UPITotal:     m.UPITotal,
		CardTotal:    m.CardTotal,
		CreditTotal:  m.CreditTotal,
		GrandTotal:   m.GrandTotal,
		InvoiceCount: m.InvoiceCount,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}
