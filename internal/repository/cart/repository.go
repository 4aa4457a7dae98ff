package cart

import (
	"context"

	"checkout-engine/internal/domain"
)

// TxRepository is the transaction-scoped view of the cart store consumed
// by the checkout engine. Every call runs on the caller's transaction and
// commits or rolls back with it.
type TxRepository interface {
	// LockShopper takes a row lock on the shopper, serializing
	// concurrent checkouts for the same shopper. Returns
	// domain.ErrNotFound for an unknown shopper.
	LockShopper(ctx context.Context, shopperID int64) error
	// LinesForCheckout reads the shopper's cart lines joined with live
	// product name and price, locking the cart rows until commit.
	LinesForCheckout(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error)
	// Clear deletes all of the shopper's cart lines.
	Clear(ctx context.Context, shopperID int64) error
}

// Repository is the pool-backed cart store used by the add-to-cart
// collaborator outside any checkout transaction.
type Repository interface {
	AddLine(ctx context.Context, shopperID, productID int64, quantity int) error
	Lines(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error)
}
