package purchase

import (
	"context"

	"checkout-engine/internal/domain"
)

// TxRepository is the write side of the ledger. Append participates in
// the caller's transaction and is the only way a purchase ever enters
// the store; no update or delete exists, so records are immutable by
// contract.
type TxRepository interface {
	Append(ctx context.Context, p domain.Purchase) error
}

// Repository is the read side of the ledger.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	// ListByShopper returns the shopper's purchases ordered by creation
	// time ascending, lines attached.
	ListByShopper(ctx context.Context, shopperID int64) ([]domain.Purchase, error)
}
