package dto

import (
	"reflect"

	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches v about decimal.Decimal and the POS specific tags:
//
//	dgt0        decimal strictly greater than zero
//	dgte0       decimal greater than or equal to zero
//	paymentmode one of cash, upi, card, credit
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("dgt0", func(fl validator.FieldLevel) bool {
		d, ok := parseDecimalField(fl)
		return ok && d.IsPositive()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("dgte0", func(fl validator.FieldLevel) bool {
		d, ok := parseDecimalField(fl)
		return ok && !d.IsNegative()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		return domain.PaymentMode(fl.Field().String()).IsValid()
	})
}

// decimalValue lets the validator see a decimal as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
