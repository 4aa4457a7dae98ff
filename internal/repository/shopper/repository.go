package shopper

import (
	"context"

	"checkout-engine/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Shopper, error)
	GetByID(ctx context.Context, id int64) (*domain.Shopper, error)
}
