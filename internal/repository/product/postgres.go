package product

import (
	"context"
	"errors"
	"io"
	"log"

	"checkout-engine/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price::text, created_at
FROM products
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, name, price::text, created_at
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, name string, price domain.Money) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, price)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price
RETURNING id, name, price::text, created_at
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, name, price.String()))
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", name, err)
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &price, &p.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseMoney(price)
	if err != nil {
		return nil, err
	}
	p.Price = parsed
	return &p, nil
}
