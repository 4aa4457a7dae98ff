// Package purchase exposes read access to the purchase ledger.
package purchase

import (
	"context"

	"checkout-engine/internal/domain"
	purchaserepo "checkout-engine/internal/repository/purchase"
)

type Service struct {
	repo purchaserepo.Repository
}

func New(repo purchaserepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByShopper(ctx context.Context, shopperID int64) ([]domain.Purchase, error) {
	return s.repo.ListByShopper(ctx, shopperID)
}
