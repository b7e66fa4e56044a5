package mapping

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		Outstanding: d.Outstanding,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		Outstanding: m.Outstanding,
		CreatedAt:   m.CreatedAt,
	}
}

// ToModelDuesPayment converts a domain DuesPayment to a model DuesPayment
func ToModelDuesPayment(d domain.DuesPayment) models.DuesPayment {
	return models.DuesPayment{
		PaymentID:  d.PaymentID,
		CustomerID: d.CustomerID,
		Amount:     d.Amount,
		UserID:     d.UserID,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainDuesPayment converts a model DuesPayment to a domain DuesPayment
func ToDomainDuesPayment(m models.DuesPayment) domain.DuesPayment {
	return domain.DuesPayment{
		PaymentID:  m.PaymentID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		UserID:     m.UserID,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}
