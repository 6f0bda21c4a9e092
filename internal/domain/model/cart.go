package model

// CartLine is a single cart position. Quantity is always positive: zero
// quantity lines are filtered out when the snapshot is taken.
type CartLine struct {
	ItemID    string  `json:"itemId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Subtotal returns the line price.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is a read-only snapshot of the shopper's cart. Line order follows
// catalog iteration order and is preserved through order submission.
type Cart struct {
	Lines []CartLine
}

// SnapshotCart builds a cart from raw lines, dropping non-positive quantities
// while keeping the original line order.
func SnapshotCart(lines []CartLine) Cart {
	filtered := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity > 0 {
			filtered = append(filtered, l)
		}
	}
	return Cart{Lines: filtered}
}

// Total returns the sum of all line subtotals, without delivery fee.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no payable content.
func (c Cart) IsEmpty() bool {
	return c.Total() == 0
}
