package shopper

import (
	"context"
	"errors"

	"checkout-engine/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Shopper, error) {
	const q = `
SELECT id, name, created_at
FROM shoppers
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Shopper
	for rows.Next() {
		var s domain.Shopper
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Shopper, error) {
	const q = `
SELECT id, name, created_at
FROM shoppers
WHERE id = $1
`
	var s domain.Shopper
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
