package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits every monetary value is rounded to.
const MoneyPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to MoneyPlaces, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// percentOf returns amount*pct/100 without rounding.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

const (
	// QtyPlaces is the number of fractional digits a quantity or stock change may carry.
	QtyPlaces int32 = 3
	// PercentPlaces is the number of fractional digits a discount percentage may carry.
	PercentPlaces int32 = 2
)

// maxQty is the first quantity the stock and invoice item columns cannot hold.
var maxQty = decimal.New(1, 9)

// FitsPlaces reports whether d carries no more than places fractional digits.
func FitsPlaces(d decimal.Decimal, places int32) bool {
	return d.Round(places).Equal(d)
}

// ValidQty reports whether qty can be sold: positive, at most QtyPlaces
// fractional digits and below the storable maximum.
func ValidQty(qty decimal.Decimal) bool {
	return qty.IsPositive() && FitsPlaces(qty, QtyPlaces) && qty.LessThan(maxQty)
}

// ValidStockChange reports whether a signed stock movement fits the stock columns.
func ValidStockChange(delta decimal.Decimal) bool {
	return FitsPlaces(delta, QtyPlaces) && delta.Abs().LessThan(maxQty)
}

// ValidDiscountPct reports whether pct lies in [0, 100] with at most PercentPlaces fractional digits.
func ValidDiscountPct(pct decimal.Decimal) bool {
	return !pct.IsNegative() && !pct.GreaterThan(hundred) && FitsPlaces(pct, PercentPlaces)
}
