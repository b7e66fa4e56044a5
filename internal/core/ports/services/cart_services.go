package services

import (
	"context"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckoutInput carries the payment details supplied when a cart is checked out.
type CheckoutInput struct {
	CustomerID     *string
	UserID         string
	PaymentMode    domain.PaymentMode
	AmountReceived decimal.Decimal
	Notes          string
}

// CartSessionSvc manages the working carts of open sale sessions. A cart is
// owned by one session and must not be edited by two callers at once.
type CartSessionSvc interface {
	// OpenCart starts a new empty sale session and returns its ID.
	OpenCart(ctx context.Context) (string, error)

	// AddProduct adds qty of a product, snapshotting its name, price and tax rate on first add.
	AddProduct(ctx context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error)

	// AddByBarcode resolves an active product by barcode and adds it.
	AddByBarcode(ctx context.Context, cartID, barcode string, qty decimal.Decimal) (*domain.CartTotals, error)

	// RemoveItem drops a product from the cart.
	RemoveItem(ctx context.Context, cartID, productID string) (*domain.CartTotals, error)

	// UpdateQty sets a line's quantity; zero or less removes the line.
	UpdateQty(ctx context.Context, cartID, productID string, qty decimal.Decimal) (*domain.CartTotals, error)

	// SetBillDiscount sets the bill-level discount percentage.
	SetBillDiscount(ctx context.Context, cartID string, pct decimal.Decimal) (*domain.CartTotals, error)

	// Totals prices the cart as it stands.
	Totals(ctx context.Context, cartID string) (*domain.CartTotals, error)

	// ClearCart empties the cart and resets its bill discount.
	ClearCart(ctx context.Context, cartID string) error

	// DiscardCart ends the session without a sale.
	DiscardCart(ctx context.Context, cartID string) error

	// Checkout commits the cart as an invoice and clears it. On failure the cart is left untouched.
	Checkout(ctx context.Context, cartID string, input CheckoutInput) (*domain.Invoice, error)
}
