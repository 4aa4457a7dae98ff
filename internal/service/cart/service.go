// Package cart is the add-to-cart collaborator: it mutates pending cart
// lines outside any checkout transaction.
package cart

import (
	"context"
	"errors"

	"checkout-engine/internal/domain"
)

type Service struct {
	repo     cartRepo
	products productRepo
	shoppers shopperRepo
}

type cartRepo interface {
	AddLine(ctx context.Context, shopperID, productID int64, quantity int) error
	Lines(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type shopperRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Shopper, error)
}

func New(repo cartRepo, products productRepo, shoppers shopperRepo) *Service {
	return &Service{repo: repo, products: products, shoppers: shoppers}
}

// AddItem puts quantity units of a product into the shopper's cart,
// incrementing the existing line when the product is already there.
func (s *Service) AddItem(ctx context.Context, shopperID, productID int64, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be positive")
	}
	if _, err := s.shoppers.GetByID(ctx, shopperID); err != nil {
		return err
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.AddLine(ctx, shopperID, productID, quantity)
}

// Get returns the shopper's cart lines joined with current product
// name and price for display.
func (s *Service) Get(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error) {
	if _, err := s.shoppers.GetByID(ctx, shopperID); err != nil {
		return nil, err
	}
	return s.repo.Lines(ctx, shopperID)
}
