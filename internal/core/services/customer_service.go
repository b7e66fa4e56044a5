package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
)

const defaultDuesPaymentLimit = 20

// customerService manages customers and settles their dues.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryWithTx
}

// NewCustomerService creates a new CustomerSvcFacade.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryWithTx) portssvc.CustomerSvcFacade {
	return &customerService{
		BaseService:  newBaseService(),
		customerRepo: customerRepo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer implements portssvc.CustomerWriterSvc
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	var phone *string
	if req.Phone != nil {
		if trimmed := strings.TrimSpace(*req.Phone); trimmed != "" {
			phone = &trimmed
		}
	}

	if phone != nil {
		existing, err := s.customerRepo.FindCustomerByPhone(ctx, *phone)
		switch {
		case err == nil:
			return nil, fmt.Errorf("%w: phone %s already belongs to %s", apperrors.ErrDuplicate, *phone, existing.Name)
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to check customer phone")
			return nil, fmt.Errorf("failed to check customer phone: %w", err)
		}
	}

	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        name,
		Phone:       phone,
		Email:       strings.TrimSpace(req.Email),
		Address:     strings.TrimSpace(req.Address),
		Outstanding: decimal.Zero,
		CreatedAt:   s.Now(),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save customer")
		}
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID), slog.String("user_id", userID))
	return &customer, nil
}

// GetCustomer implements portssvc.CustomerReaderSvc
func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}

// ListCustomers implements portssvc.CustomerReaderSvc
func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, strings.TrimSpace(params.Search), params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomerDues implements portssvc.CustomerReaderSvc
func (s *customerService) GetCustomerDues(ctx context.Context, customerID string) (decimal.Decimal, error) {
	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return customer.Outstanding, nil
}

// ListDuesPayments implements portssvc.CustomerReaderSvc
func (s *customerService) ListDuesPayments(ctx context.Context, customerID string, limit int) ([]domain.DuesPayment, error) {
	if limit <= 0 {
		limit = defaultDuesPaymentLimit
	}
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	payments, err := s.customerRepo.ListDuesPayments(ctx, customerID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list dues payments", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list dues payments: %w", err)
	}
	return payments, nil
}

// SettleDues implements portssvc.DuesSettlementSvc
func (s *customerService) SettleDues(ctx context.Context, customerID string, amount decimal.Decimal, userID string) (*domain.DuesPayment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}
	if !domain.RoundMoney(amount).Equal(amount) {
		return nil, fmt.Errorf("%w: settlement amount has more than %d decimal places", apperrors.ErrValidation, domain.MoneyPlaces)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", apperrors.ErrValidation)
	}

	tx, err := s.customerRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin dues transaction")
		return nil, txFailure("failed to settle dues", err)
	}
	defer func() {
		if rbErr := s.customerRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back dues transaction", slog.String("customer_id", customerID))
		}
	}()

	customer, err := s.customerRepo.FindCustomerByIDForUpdate(ctx, tx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		s.LogError(ctx, err, "Failed to lock customer for settlement", slog.String("customer_id", customerID))
		return nil, txFailure("failed to settle dues", err)
	}
	if !customer.HasDues() {
		return nil, fmt.Errorf("%w: customer %s has no outstanding dues", apperrors.ErrAlreadySatisfied, customerID)
	}
	if amount.GreaterThan(customer.Outstanding) {
		return nil, fmt.Errorf("%w: amount %s exceeds outstanding dues %s",
			apperrors.ErrValidation, amount, customer.Outstanding)
	}

	if err := s.customerRepo.AddOutstandingInTx(ctx, tx, customerID, amount.Neg()); err != nil {
		s.LogError(ctx, err, "Failed to reduce outstanding dues", slog.String("customer_id", customerID))
		return nil, txFailure("failed to settle dues", err)
	}

	payment := domain.DuesPayment{
		PaymentID:  uuid.NewString(),
		CustomerID: customerID,
		Amount:     amount,
		UserID:     userID,
		Notes:      fmt.Sprintf("Settled %s dues", amount.StringFixed(domain.MoneyPlaces)),
		CreatedAt:  s.Now(),
	}
	if err := s.customerRepo.SaveDuesPaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save dues payment", slog.String("customer_id", customerID))
		return nil, txFailure("failed to settle dues", err)
	}

	if err := s.customerRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit dues transaction", slog.String("customer_id", customerID))
		return nil, txFailure("failed to settle dues", err)
	}

	s.LogInfo(ctx, "Dues settled",
		slog.String("customer_id", customerID),
		slog.String("amount", amount.String()),
		slog.String("remaining", customer.Outstanding.Sub(amount).String()))
	return &payment, nil
}
