package dto

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds a product by ID or by scanned barcode.
type AddCartItemRequest struct {
	ProductID string          `json:"productID" binding:"required_without=Barcode"`
	Barcode   string          `json:"barcode" binding:"required_without=ProductID"`
	Qty       decimal.Decimal `json:"qty" binding:"dgt0"`
}

// UpdateCartQtyRequest overwrites a line's quantity. Zero or less removes the line.
type UpdateCartQtyRequest struct {
	Qty *decimal.Decimal `json:"qty" binding:"required"`
}

// SetBillDiscountRequest sets the bill-level discount percentage.
type SetBillDiscountRequest struct {
	DiscountPct *decimal.Decimal `json:"discountPct" binding:"required,dgte0"`
}

// CheckoutRequest commits the cart as an invoice.
type CheckoutRequest struct {
	CustomerID     *string            `json:"customerID"` // required for credit sales
	PaymentMode    domain.PaymentMode `json:"paymentMode" binding:"required,paymentmode"`
	AmountReceived decimal.Decimal    `json:"amountReceived"` // omitted or zero means exact amount
	Notes          string             `json:"notes" binding:"max=500"`
}

// CartResponse is a cart's ID together with its current pricing.
type CartResponse struct {
	CartID string `json:"cartID"`
	domain.CartTotals
}

// ToCartResponse converts priced totals to a CartResponse
func ToCartResponse(cartID string, totals *domain.CartTotals) CartResponse {
	return CartResponse{CartID: cartID, CartTotals: *totals}
}
