// Package cart implements the session cart ledger: an ordered collection of
// product lines, keyed by product identity, with derived count and subtotal.
package cart

import (
	"github.com/shahhardik4599/creatively-yours/internal/model"
)

// Ledger holds the cart lines for one session in insertion order.
// A Ledger has a single owner and is not safe for concurrent use; the
// owning session serializes access.
type Ledger struct {
	lines []model.CartLine
}

// Add puts a product into the cart. Adding a product that is already
// present increments its quantity instead of creating a duplicate line.
func (l *Ledger) Add(p model.Product) {
	for i := range l.lines {
		if l.lines[i].Product.ID == p.ID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, model.CartLine{Product: p, Quantity: 1})
}

// Remove deletes the line for the given product ID. Removing an absent
// product is a no-op.
func (l *Ledger) Remove(productID string) {
	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity applies a delta to a line's quantity, clamping at 1.
// A quantity can never drop below 1 through adjustment; taking a line out
// of the cart requires Remove. Absent product IDs are ignored.
func (l *Ledger) AdjustQuantity(productID string, delta int) {
	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			q := l.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			l.lines[i].Quantity = q
			return
		}
	}
}

// Count returns the sum of quantities across all lines
func (l *Ledger) Count() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the sum of line totals in whole rupees
func (l *Ledger) Subtotal() int {
	total := 0
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

// Lines returns a copy of the cart lines in insertion order
func (l *Ledger) Lines() []model.CartLine {
	out := make([]model.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Empty reports whether the cart has no lines
func (l *Ledger) Empty() bool {
	return len(l.lines) == 0
}
