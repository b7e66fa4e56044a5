package domain

import "github.com/shopspring/decimal"

// LineCalculation is the monetary breakdown of a single bill line.
// Each field is rounded to two places before it feeds the next one, so the
// result can differ by a cent from rounding only at the end.
type LineCalculation struct {
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxableAmount  decimal.Decimal `json:"taxableAmount"`
	CGSTRate       decimal.Decimal `json:"cgstRate"`
	SGSTRate       decimal.Decimal `json:"sgstRate"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

// ComputeLine applies the discount to price*qty and then splits the tax rate
// evenly into CGST and SGST. Non-positive inputs are the caller's concern.
func ComputeLine(sellPrice, qty, discountPct, taxRate decimal.Decimal) LineCalculation {
	base := RoundMoney(sellPrice.Mul(qty))
	discountAmt := RoundMoney(percentOf(base, discountPct))
	taxable := RoundMoney(base.Sub(discountAmt))

	halfRate := RoundMoney(taxRate.Div(decimal.NewFromInt(2)))
	cgstAmt := RoundMoney(percentOf(taxable, halfRate))
	sgstAmt := RoundMoney(percentOf(taxable, halfRate))
	taxAmt := RoundMoney(cgstAmt.Add(sgstAmt))

	return LineCalculation{
		BaseAmount:     base,
		DiscountAmount: discountAmt,
		TaxableAmount:  taxable,
		CGSTRate:       halfRate,
		SGSTRate:       halfRate,
		CGSTAmount:     cgstAmt,
		SGSTAmount:     sgstAmt,
		TaxAmount:      taxAmt,
		LineTotal:      RoundMoney(taxable.Add(taxAmt)),
	}
}
