package product

import (
	"context"

	"checkout-engine/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// Upsert inserts a product or updates the price of an existing one,
	// keyed by name. Used by the seeder and the CSV importer.
	Upsert(ctx context.Context, name string, price domain.Money) (*domain.Product, error)
}
