package repositories

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByPhone retrieves a customer by phone number.
	FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)

	// ListCustomers retrieves customers whose name or phone contains search, ordered by name.
	ListCustomers(ctx context.Context, search string, limit int, offset int) ([]domain.Customer, error)

	// ListDuesPayments retrieves the latest dues payments of a customer.
	ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer. A duplicate phone yields ErrDuplicate.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerTransactionSupport defines dues operations that run inside a caller's transaction
type CustomerTransactionSupport interface {
	// FindCustomerByIDForUpdate selects a customer and locks the row.
	FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error)

	// AddOutstandingInTx adds a signed amount to the customer's outstanding dues.
	AddOutstandingInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error

	// SaveDuesPaymentInTx appends a dues payment record.
	SaveDuesPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DuesPayment) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerTransactionSupport
}

// CustomerRepositoryWithTx extends CustomerRepositoryFacade with transaction capabilities
type CustomerRepositoryWithTx interface {
	CustomerRepositoryFacade
	TransactionManager
}
