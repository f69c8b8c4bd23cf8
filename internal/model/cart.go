package model

// CartLine is one ledger entry: a snapshot of the product at the time it
// was added, plus a quantity. Identity is the product ID. Quantity is
// always at least 1; removal is an explicit operation, never a side
// effect of a quantity update.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns the price of this line in whole rupees
func (l CartLine) LineTotal() int {
	return l.Product.Price * l.Quantity
}
