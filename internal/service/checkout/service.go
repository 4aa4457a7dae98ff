// Package checkout turns a shopper's mutable cart into an immutable
// purchase record. The cart read, the total computation, the ledger
// append and the cart clear all happen inside one unit of work and
// commit or roll back together.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"checkout-engine/internal/domain"
	"checkout-engine/internal/uow"
	"github.com/google/uuid"
)

type Service struct {
	starter uow.Starter
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

func New(starter uow.Starter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		starter: starter,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Finalize snapshots the shopper's cart into a new purchase and clears
// the cart, atomically. It fails with domain.ErrNotFound for an unknown
// shopper and domain.ErrEmptyCart when there is nothing to buy; in every
// failure case nothing is persisted.
func (s *Service) Finalize(ctx context.Context, shopperID int64) (*domain.Purchase, error) {
	unit, err := s.starter.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer unit.Rollback(ctx)

	carts := unit.Carts()
	if err := carts.LockShopper(ctx, shopperID); err != nil {
		return nil, err
	}

	lines, err := carts.LinesForCheckout(ctx, shopperID)
	if err != nil {
		if errors.Is(err, domain.ErrProductVanished) {
			// Catalog lost a product between add-to-cart and checkout.
			// Abort rather than guess a price.
			s.logger.Printf("checkout: shopper=%d aborted: %v", shopperID, err)
		}
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var total domain.Money
	snapshots := make([]domain.PurchaseLine, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.Subtotal())
		snapshots = append(snapshots, domain.PurchaseLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	p := domain.Purchase{
		ID:        s.newID(),
		ShopperID: shopperID,
		CreatedAt: s.now().UTC(),
		Total:     total,
		Lines:     snapshots,
	}

	if err := unit.Purchases().Append(ctx, p); err != nil {
		return nil, fmt.Errorf("append purchase: %w", err)
	}
	if err := carts.Clear(ctx, shopperID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := unit.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	s.logger.Printf("checkout: shopper=%d purchase=%s total=%s lines=%d", shopperID, p.ID, p.Total, len(p.Lines))
	return &p, nil
}
