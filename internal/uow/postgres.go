package uow

import (
	"context"
	"errors"

	"checkout-engine/internal/repository/cart"
	"checkout-engine/internal/repository/purchase"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStarter struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Starter {
	return &postgresStarter{pool: pool}
}

func (s *postgresStarter) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &postgresUnit{tx: tx}, nil
}

type postgresUnit struct {
	tx pgx.Tx
}

func (u *postgresUnit) Carts() cart.TxRepository {
	return cart.NewTx(u.tx)
}

func (u *postgresUnit) Purchases() purchase.TxRepository {
	return purchase.NewTx(u.tx)
}

func (u *postgresUnit) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

func (u *postgresUnit) Rollback(ctx context.Context) error {
	err := u.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
