package purchase

import (
	"context"
	"errors"
	"io"
	"log"

	"checkout-engine/internal/domain"
	"github.com/google/uuid"
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

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	// A string that is not a uuid can never be a purchase id; reject it
	// before Postgres turns it into a type error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	const q = `
SELECT id::text, shopper_id, total::text, created_at
FROM purchases
WHERE id = $1
`
	p, err := scanPurchase(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("purchase repo: get id=%s error=%v", id, err)
		return nil, err
	}
	if p.Lines, err = r.fetchLines(ctx, p.ID); err != nil {
		r.logger.Printf("purchase repo: get lines id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListByShopper(ctx context.Context, shopperID int64) ([]domain.Purchase, error) {
	const q = `
SELECT id::text, shopper_id, total::text, created_at
FROM purchases
WHERE shopper_id = $1
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, shopperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if result[i].Lines, err = r.fetchLines(ctx, result[i].ID); err != nil {
			r.logger.Printf("purchase repo: list lines shopper=%d error=%v", shopperID, err)
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, purchaseID string) ([]domain.PurchaseLine, error) {
	const q = `
SELECT product_id, name, unit_price::text, quantity
FROM purchase_lines
WHERE purchase_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.PurchaseLine
	for rows.Next() {
		var (
			line  domain.PurchaseLine
			price string
		)
		if err := rows.Scan(&line.ProductID, &line.Name, &price, &line.Quantity); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = domain.ParseMoney(price); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var (
		p     domain.Purchase
		total string
	)
	if err := row.Scan(&p.ID, &p.ShopperID, &total, &p.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseMoney(total)
	if err != nil {
		return nil, err
	}
	p.Total = parsed
	return &p, nil
}

type txRepo struct {
	tx pgx.Tx
}

// NewTx binds the ledger's write side to an open transaction.
func NewTx(tx pgx.Tx) TxRepository {
	return &txRepo{tx: tx}
}

func (r *txRepo) Append(ctx context.Context, p domain.Purchase) error {
	const insertPurchase = `
INSERT INTO purchases (id, shopper_id, total, created_at)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.tx.Exec(ctx, insertPurchase, p.ID, p.ShopperID, p.Total.String(), p.CreatedAt); err != nil {
		return err
	}

	const insertLine = `
INSERT INTO purchase_lines (purchase_id, position, product_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for i, line := range p.Lines {
		if _, err := r.tx.Exec(ctx, insertLine, p.ID, i, line.ProductID, line.Name, line.UnitPrice.String(), line.Quantity); err != nil {
			return err
		}
	}
	return nil
}
