package services

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers searches customers by name or phone.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error)

	// GetCustomerDues returns the customer's outstanding balance.
	GetCustomerDues(ctx context.Context, customerID string) (decimal.Decimal, error)

	// ListDuesPayments retrieves the latest dues payments of a customer.
	ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer registers a customer. Phone numbers are unique.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
}

// DuesSettlementSvc defines the dues settlement procedure
type DuesSettlementSvc interface {
	// SettleDues reduces the customer's outstanding balance by amount and logs
	// the payment atomically. amount must be positive and not exceed the balance.
	SettleDues(ctx context.Context, customerID string, amount decimal.Decimal, userID string) (*domain.DuesPayment, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	DuesSettlementSvc
}
