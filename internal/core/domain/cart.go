package domain

// Cart maps product ID to quantity. Absence means zero; stored quantities
// are always positive. Entries hold weak references into the catalog: a
// deleted product leaves a dangling ID that resolution silently drops.
type Cart map[string]int

// Adjust applies a signed delta to a line, flooring the result at zero. A
// result of zero removes the entry. Returns the resulting quantity.
func (c Cart) Adjust(productID string, delta int) int {
	next := c[productID] + delta
	if next <= 0 {
		delete(c, productID)
		return 0
	}
	c[productID] = next
	return next
}

// Remove drops a line regardless of quantity.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// Quantity reports the current quantity for a product, zero when absent.
func (c Cart) Quantity(productID string) int {
	return c[productID]
}

// CartItem is a cart line resolved against the catalog.
type CartItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int
	LineTotal int
}

// Resolve materializes cart lines in catalog order. Lines whose product no
// longer exists are skipped.
func (c Cart) Resolve(products []Product) []CartItem {
	items := make([]CartItem, 0, len(c))
	for _, p := range products {
		qty, ok := c[p.ID]
		if !ok {
			continue
		}
		items = append(items, CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: p.Price * qty,
		})
	}
	return items
}

// Totals is the derived money view of a set of cart lines under a discount.
type Totals struct {
	Subtotal       int
	DiscountAmount int
	Total          int
	TotalQuantity  int
}

// ComputeTotals sums resolved lines and applies the discount rate once to
// the aggregate subtotal, rounding half away from zero at the nearest yen.
// The rate is never applied per line. The floor at zero guards against a
// rounded discount exceeding the subtotal.
func ComputeTotals(items []CartItem, discount Discount) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.LineTotal
		t.TotalQuantity += item.Quantity
	}
	t.DiscountAmount = (t.Subtotal*discount.Rate + 50) / 100
	t.Total = t.Subtotal - t.DiscountAmount
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}
