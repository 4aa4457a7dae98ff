package domain

import "time"

// CartLine is one (shopper, product) row of a pending cart. Adding the
// same product again increments Quantity instead of duplicating the line.
type CartLine struct {
	ShopperID int64     `json:"shopperId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckoutLine is a cart line joined with live catalog data, as read
// inside the checkout unit of work and when displaying the cart.
type CheckoutLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the exact line total, unit price times quantity.
func (l CheckoutLine) Subtotal() Money {
	return l.UnitPrice.MultiplyQty(l.Quantity)
}
