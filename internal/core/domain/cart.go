package domain

import "github.com/shopspring/decimal"

const unknownItemName = "Unknown"

// LineDefaults are the product values captured when a product is first added to a cart.
type LineDefaults struct {
	Name        string
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // per-item discount, zero when not set
	TaxRate     decimal.Decimal // combined GST rate, zero for exempt goods
}

// LineEntry is one product in an in-progress sale.
type LineEntry struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Qty         decimal.Decimal `json:"qty"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// CartLine is a LineEntry together with its computed amounts.
type CartLine struct {
	LineEntry
	EffectiveDiscountPct decimal.Decimal `json:"effectiveDiscountPct"`
	LineCalculation
}

// CartTotals is the bill as it would be invoiced right now.
type CartTotals struct {
	Lines           []CartLine      `json:"lines"`
	BillDiscountPct decimal.Decimal `json:"billDiscountPct"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	CGSTTotal       decimal.Decimal `json:"cgstTotal"`
	SGSTTotal       decimal.Decimal `json:"sgstTotal"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
}

// TaxTotal is CGST plus SGST.
func (t CartTotals) TaxTotal() decimal.Decimal {
	return RoundMoney(t.CGSTTotal.Add(t.SGSTTotal))
}

// Cart holds the lines of one sale session. It is not safe for concurrent use;
// a cart belongs to exactly one session.
type Cart struct {
	entries         map[string]*LineEntry
	order           []string
	billDiscountPct decimal.Decimal
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{entries: make(map[string]*LineEntry)}
}

// AddItem increments the quantity of productID, or inserts a new line built
// from defaults when the product is not in the cart yet.
func (c *Cart) AddItem(productID string, defaults LineDefaults, qty decimal.Decimal) {
	if entry, ok := c.entries[productID]; ok {
		entry.Qty = entry.Qty.Add(qty)
		return
	}

	name := defaults.Name
	if name == "" {
		name = unknownItemName
	}
	c.entries[productID] = &LineEntry{
		ProductID:   productID,
		Name:        name,
		UnitPrice:   defaults.UnitPrice,
		Qty:         qty,
		DiscountPct: defaults.DiscountPct,
		TaxRate:     defaults.TaxRate,
	}
	c.order = append(c.order, productID)
}

// RemoveItem deletes the line for productID. Absent products are ignored.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.entries[productID]; !ok {
		return
	}
	delete(c.entries, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// UpdateQty overwrites the quantity of an existing line. A quantity of zero
// or less removes the line.
func (c *Cart) UpdateQty(productID string, qty decimal.Decimal) {
	if !qty.IsPositive() {
		c.RemoveItem(productID)
		return
	}
	if entry, ok := c.entries[productID]; ok {
		entry.Qty = qty
	}
}

// SetBillDiscount sets the percentage added to every line's own discount.
func (c *Cart) SetBillDiscount(pct decimal.Decimal) {
	c.billDiscountPct = pct
}

// BillDiscount returns the current bill-level discount percentage.
func (c *Cart) BillDiscount() decimal.Decimal {
	return c.billDiscountPct
}

// Item returns a copy of the line for productID.
func (c *Cart) Item(productID string) (LineEntry, bool) {
	entry, ok := c.entries[productID]
	if !ok {
		return LineEntry{}, false
	}
	return *entry, true
}

// Items returns copies of all lines in insertion order.
func (c *Cart) Items() []LineEntry {
	items := make([]LineEntry, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

// CalculateTotals computes every line with ComputeLine and sums the results.
// The effective discount of a line is its own discount plus the bill discount
// (added, not compounded). Sums are rounded once after accumulation.
func (c *Cart) CalculateTotals() CartTotals {
	totals := CartTotals{
		Lines:           make([]CartLine, 0, len(c.order)),
		BillDiscountPct: c.billDiscountPct,
	}

	subtotal := decimal.Zero
	discount := decimal.Zero
	cgst := decimal.Zero
	sgst := decimal.Zero
	grand := decimal.Zero

	for _, id := range c.order {
		entry := c.entries[id]
		effDiscount := entry.DiscountPct.Add(c.billDiscountPct)
		calc := ComputeLine(entry.UnitPrice, entry.Qty, effDiscount, entry.TaxRate)

		totals.Lines = append(totals.Lines, CartLine{
			LineEntry:            *entry,
			EffectiveDiscountPct: effDiscount,
			LineCalculation:      calc,
		})

		subtotal = subtotal.Add(calc.BaseAmount)
		discount = discount.Add(calc.DiscountAmount)
		cgst = cgst.Add(calc.CGSTAmount)
		sgst = sgst.Add(calc.SGSTAmount)
		grand = grand.Add(calc.LineTotal)
	}

	totals.Subtotal = RoundMoney(subtotal)
	totals.DiscountAmount = RoundMoney(discount)
	totals.CGSTTotal = RoundMoney(cgst)
	totals.SGSTTotal = RoundMoney(sgst)
	totals.GrandTotal = RoundMoney(grand)
	return totals
}

// Clear empties the cart and resets the bill discount.
func (c *Cart) Clear() {
	c.entries = make(map[string]*LineEntry)
	c.order = nil
	c.billDiscountPct = decimal.Zero
}
