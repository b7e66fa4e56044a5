package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_billing_app/internal/models"
	"github.com/SscSPs/pos_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const customerColumns = `customer_id, name, phone, email, address, outstanding, created_at`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryWithTx {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryWithTx = (*PgxCustomerRepository)(nil)

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var m models.Customer
	if err := row.Scan(&m.CustomerID, &m.Name, &m.Phone, &m.Email, &m.Address, &m.Outstanding, &m.CreatedAt); err != nil {
		return domain.Customer{}, err
	}
	return mapping.ToDomainCustomer(m), nil
}

// SaveCustomer persists a new customer. A duplicate phone yields ErrDuplicate.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, name, phone, email, address, outstanding, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.Pool.Exec(ctx, query, m.CustomerID, m.Name, m.Phone, m.Email, m.Address, m.Outstanding, m.CreatedAt)
	if err != nil {
		return translateError(err, "customer "+m.Name)
	}
	return nil
}

// FindCustomerByID retrieves a customer by ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		return nil, translateError(err, "customer "+customerID)
	}
	return &c, nil
}

// FindCustomerByPhone retrieves a customer by phone number.
func (r *PgxCustomerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1;`

	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, phone))
	if err != nil {
		return nil, translateError(err, "customer with phone "+phone)
	}
	return &c, nil
}

// ListCustomers retrieves customers whose name or phone contains search, ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, search string, limit int, offset int) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// ListDuesPayments retrieves the latest dues payments of a customer.
func (r *PgxCustomerRepository) ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error) {
	query := `
		SELECT payment_id, customer_id, amount, user_id, notes, created_at
		FROM dues_payments
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dues payments for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	payments := []domain.DuesPayment{}
	for rows.Next() {
		var m models.DuesPayment
		if err := rows.Scan(&m.PaymentID, &m.CustomerID, &m.Amount, &m.UserID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dues payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainDuesPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dues payment rows: %w", err)
	}
	return payments, nil
}

// FindCustomerByIDForUpdate selects a customer and locks the row until tx ends.
func (r *PgxCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE;`

	c, err := scanCustomer(tx.QueryRow(ctx, query, customerID))
	if err != nil {
		return nil, translateError(err, "customer "+customerID)
	}
	return &c, nil
}

// AddOutstandingInTx adds a signed amount to the customer's outstanding dues.
func (r *PgxCustomerRepository) AddOutstandingInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error {
	ct, err := tx.Exec(ctx, `UPDATE customers SET outstanding = outstanding + $2 WHERE customer_id = $1;`, customerID, delta)
	if err != nil {
		return fmt.Errorf("failed to update outstanding for customer %s: %w", customerID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return nil
}

// SaveDuesPaymentInTx appends a dues payment record.
func (r *PgxCustomerRepository) SaveDuesPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.DuesPayment) error {
	m := mapping.ToModelDuesPayment(payment)

	query := `
		INSERT INTO dues_payments (payment_id, customer_id, amount, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	if _, err := tx.Exec(ctx, query, m.PaymentID, m.CustomerID, m.Amount, m.UserID, m.Notes, m.CreatedAt); err != nil {
		return translateError(err, "dues payment "+m.PaymentID)
	}
	return nil
}
