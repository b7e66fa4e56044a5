package dto_test

import (
	"testing"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidators(v))
	return v
}

func TestSettleDuesRequest_AmountMustBePositive(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.SettleDuesRequest{Amount: decimal.RequireFromString("0.01")}))
	assert.Error(t, v.Struct(dto.SettleDuesRequest{Amount: decimal.Zero}))
	assert.Error(t, v.Struct(dto.SettleDuesRequest{Amount: decimal.RequireFromString("-5")}))
}

func TestCheckoutRequest_PaymentMode(t *testing.T) {
	v := newValidator(t)

	for _, mode := range []string{"cash", "upi", "card", "credit"} {
		assert.NoError(t, v.Struct(dto.CheckoutRequest{PaymentMode: domain.PaymentMode(mode)}), mode)
	}
	assert.Error(t, v.Struct(dto.CheckoutRequest{PaymentMode: domain.PaymentMode("cheque")}))
	assert.Error(t, v.Struct(dto.CheckoutRequest{}))
}

func TestAddCartItemRequest_NeedsProductOrBarcode(t *testing.T) {
	v := newValidator(t)
	one := decimal.NewFromInt(1)

	assert.NoError(t, v.Struct(dto.AddCartItemRequest{ProductID: "p1", Qty: one}))
	assert.NoError(t, v.Struct(dto.AddCartItemRequest{Barcode: "8901234567890", Qty: one}))
	assert.Error(t, v.Struct(dto.AddCartItemRequest{Qty: one}))
	assert.Error(t, v.Struct(dto.AddCartItemRequest{ProductID: "p1", Qty: decimal.Zero}))
}

func decPtr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestSetBillDiscountRequest_AllowsZero(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.SetBillDiscountRequest{DiscountPct: decPtr("0")}))
	assert.NoError(t, v.Struct(dto.SetBillDiscountRequest{DiscountPct: decPtr("12.5")}))
	assert.Error(t, v.Struct(dto.SetBillDiscountRequest{DiscountPct: decPtr("-1")}))
	assert.Error(t, v.Struct(dto.SetBillDiscountRequest{}), "omitted discount")
}

func TestOmittedQuantitiesAreRejected(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.UpdateCartQtyRequest{Qty: decPtr("0")}), "explicit zero removes the line")
	assert.Error(t, v.Struct(dto.UpdateCartQtyRequest{}))

	assert.NoError(t, v.Struct(dto.AdjustStockRequest{Delta: decPtr("-2"), Reason: domain.ReasonDamage}))
	assert.Error(t, v.Struct(dto.AdjustStockRequest{Reason: domain.ReasonDamage}))

	assert.Error(t, v.Struct(dto.AddCartItemRequest{ProductID: "p1"}))
}

func TestCreateProductRequest(t *testing.T) {
	v := newValidator(t)
	barcode := "12345"

	valid := dto.CreateProductRequest{Name: "Rice 1kg", Unit: "kg", SellPrice: decimal.RequireFromString("62.50")}
	assert.NoError(t, v.Struct(valid))

	short := valid
	short.Barcode = &barcode
	assert.Error(t, v.Struct(short))

	badUnit := valid
	badUnit.Unit = "dozen"
	assert.Error(t, v.Struct(badUnit))

	noPrice := valid
	noPrice.SellPrice = decimal.Zero
	assert.Error(t, v.Struct(noPrice))
}
