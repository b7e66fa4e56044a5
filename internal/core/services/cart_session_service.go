package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
)

// cartSession is one terminal's working cart. mu serializes the edits of that
// terminal's requests; carts of different sessions never share state.
type cartSession struct {
	mu   sync.Mutex
	cart *domain.Cart
}

// cartSessionService keeps the open carts in memory. Carts are scratch state
// until checkout, so a restart discards them.
type cartSessionService struct {
	BaseService
	productRepo portsrepo.ProductReader
	committer   portssvc.InvoiceCommitterSvc

	mu       sync.RWMutex
	sessions map[string]*cartSession
}

// NewCartSessionService creates a new CartSessionSvc.
func NewCartSessionService(productRepo portsrepo.ProductReader, committer portssvc.InvoiceCommitterSvc) portssvc.CartSessionSvc {
	return &cartSessionService{
		BaseService: newBaseService(),
		productRepo: productRepo,
		committer:   committer,
		sessions:    make(map[string]*cartSession),
	}
}

var _ portssvc.CartSessionSvc = (*cartSessionService)(nil)

func (s *cartSessionService) session(cartID string) (*cartSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[cartID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}
	return session, nil
}

// withSession runs fn with the session's cart locked.
func (s *cartSessionService) withSession(cartID string, fn func(cart *domain.Cart) error) error {
	session, err := s.session(cartID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return fn(session.cart)
}

// priced runs fn on the cart and returns the resulting totals.
func (s *cartSessionService) priced(cartID string, fn func(cart *domain.Cart) error) (*domain.CartTotals, error) {
	var totals domain.CartTotals
	err := s.withSession(cartID, func(cart *domain.Cart) error {
		if err := fn(cart); err != nil {
			return err
		}
		totals = cart.CalculateTotals()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// OpenCart implements portssvc.CartSessionSvc
func (s *cartSessionService) OpenCart(ctx context.Context) (string, error) {
	cartID := uuid.NewString()

	s.mu.Lock()
	s.sessions[cartID] = &cartSession{cart: domain.NewCart()}
	open := len(s.sessions)
	s.mu.Unlock()

	s.LogDebug(ctx, "Cart opened", slog.String("cart_id", cartID), slog.Int("open_carts", open))
	return cartID, nil
}

func (s *cartSessionService) addProduct(cartID string, product *domain.Product, qty decimal.Decimal) (*domain.CartTotals, error) {
	if !product.IsActive {
		return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, product.ProductID)
	}
	return s.priced(cartID, func(cart *domain.Cart) error {
		cart.AddItem(product.ProductID, product.LineDefaults(), qty)
		return nil
	})
}

// AddProduct implements portssvc.CartSessionSvc
func (s *cartSessionService) AddProduct(ctx context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error) {
	if !domain.ValidQty(qty) {
		return nil, fmt.Errorf("%w: quantity %s must be positive with at most %d decimal places", apperrors.ErrValidation, qty, domain.QtyPlaces)
	}
	if _, err := s.session(cartID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load product for cart", slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return s.addProduct(cartID, product, qty)
}

// AddByBarcode implements portssvc.CartSessionSvc
func (s *cartSessionService) AddByBarcode(ctx context.Context, cartID, barcode string, qty decimal.Decimal) (*domain.CartTotals, error) {
	barcode = strings.TrimSpace(barcode)
	if !domain.IsBarcode(barcode) {
		return nil, fmt.Errorf("%w: %q is not a barcode", apperrors.ErrValidation, barcode)
	}
	if !domain.ValidQty(qty) {
		return nil, fmt.Errorf("%w: quantity %s must be positive with at most %d decimal places", apperrors.ErrValidation, qty, domain.QtyPlaces)
	}
	if _, err := s.session(cartID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByBarcode(ctx, barcode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up barcode", slog.String("barcode", barcode))
		}
		return nil, fmt.Errorf("failed to find product with barcode %s: %w", barcode, err)
	}
	return s.addProduct(cartID, product, qty)
}

// RemoveItem implements portssvc.CartSessionSvc. Removing a product that is
// not in the cart leaves the totals unchanged.
func (s *cartSessionService) RemoveItem(_ context.Context, cartID, productID string) (*domain.CartTotals, error) {
	return s.priced(cartID, func(cart *domain.Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
}

// UpdateQty implements portssvc.CartSessionSvc. A quantity of zero or less
// removes the line; updating an absent product changes nothing.
func (s *cartSessionService) UpdateQty(_ context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error) {
	if qty.IsPositive() && !domain.ValidQty(qty) {
		return nil, fmt.Errorf("%w: quantity %s must have at most %d decimal places", apperrors.ErrValidation, qty, domain.QtyPlaces)
	}
	return s.priced(cartID, func(cart *domain.Cart) error {
		cart.UpdateQty(productID, qty)
		return nil
	})
}

// SetBillDiscount implements portssvc.CartSessionSvc
func (s *cartSessionService) SetBillDiscount(_ context.Context, cartID string, pct decimal.Decimal) (*domain.CartTotals, error) {
	if !domain.ValidDiscountPct(pct) {
		return nil, fmt.Errorf("%w: discount %s must be between 0 and 100 with at most %d decimal places",
			apperrors.ErrValidation, pct, domain.PercentPlaces)
	}
	return s.priced(cartID, func(cart *domain.Cart) error {
		cart.SetBillDiscount(pct)
		return nil
	})
}

// Totals implements portssvc.CartSessionSvc
func (s *cartSessionService) Totals(_ context.Context, cartID string) (*domain.CartTotals, error) {
	return s.priced(cartID, func(*domain.Cart) error { return nil })
}

// ClearCart implements portssvc.CartSessionSvc
func (s *cartSessionService) ClearCart(_ context.Context, cartID string) error {
	return s.withSession(cartID, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
}

// DiscardCart implements portssvc.CartSessionSvc
func (s *cartSessionService) DiscardCart(ctx context.Context, cartID string) error {
	s.mu.Lock()
	_, ok := s.sessions[cartID]
	delete(s.sessions, cartID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}
	s.LogDebug(ctx, "Cart discarded", slog.String("cart_id", cartID))
	return nil
}

// Checkout implements portssvc.CartSessionSvc
func (s *cartSessionService) Checkout(ctx context.Context, cartID string, input portssvc.CheckoutInput) (*domain.Invoice, error) {
	var invoice *domain.Invoice
	err := s.withSession(cartID, func(cart *domain.Cart) error {
		if cart.IsEmpty() {
			return fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
		}

		committed, err := s.committer.CommitInvoice(ctx, portssvc.CommitInvoiceInput{
			Totals:         cart.CalculateTotals(),
			CustomerID:     input.CustomerID,
			UserID:         input.UserID,
			PaymentMode:    input.PaymentMode,
			AmountReceived: input.AmountReceived,
			Notes:          input.Notes,
		})
		if err != nil {
			return err
		}

		cart.Clear()
		invoice = committed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cart checked out", slog.String("cart_id", cartID), slog.String("invoice_id", invoice.InvoiceID))
	return invoice, nil
}
