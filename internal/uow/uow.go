// Package uow provides the unit of work the checkout engine runs inside:
// an explicit transaction handle bundling the repositories that
// participate in it, with begin, commit and rollback spelled out rather
// than hidden behind a callback.
package uow

import (
	"context"

	"checkout-engine/internal/repository/cart"
	"checkout-engine/internal/repository/purchase"
)

// Starter begins a new unit of work against the persistence layer.
type Starter interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// UnitOfWork groups the repositories taking part in one atomic
// transaction. Either Commit applies every write or Rollback discards
// them all; there is no partial outcome.
type UnitOfWork interface {
	Carts() cart.TxRepository
	Purchases() purchase.TxRepository
	Commit(ctx context.Context) error
	// Rollback discards the unit of work. Calling it after a successful
	// Commit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error
}
