package cart

import (
	"context"
	"errors"
	"fmt"

	"checkout-engine/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkoutLinesQuery = `
SELECT cl.product_id, p.name, p.price::text, cl.quantity
FROM cart_lines cl
LEFT JOIN products p ON p.id = cl.product_id
WHERE cl.shopper_id = $1
ORDER BY cl.created_at, cl.product_id
`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddLine(ctx context.Context, shopperID, productID int64, quantity int) error {
	const q = `
INSERT INTO cart_lines (shopper_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (shopper_id, product_id)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, shopperID, productID, quantity)
	return err
}

func (r *postgresRepo) Lines(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error) {
	rows, err := r.pool.Query(ctx, checkoutLinesQuery, shopperID)
	if err != nil {
		return nil, err
	}
	return scanCheckoutLines(rows)
}

type txRepo struct {
	tx pgx.Tx
}

// NewTx binds a cart repository to an open transaction.
func NewTx(tx pgx.Tx) TxRepository {
	return &txRepo{tx: tx}
}

func (r *txRepo) LockShopper(ctx context.Context, shopperID int64) error {
	var id int64
	err := r.tx.QueryRow(ctx, `SELECT id FROM shoppers WHERE id = $1 FOR UPDATE`, shopperID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *txRepo) LinesForCheckout(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error) {
	// FOR UPDATE OF cl locks only the cart rows, so checkouts for
	// different shoppers never contend.
	rows, err := r.tx.Query(ctx, checkoutLinesQuery+"FOR UPDATE OF cl", shopperID)
	if err != nil {
		return nil, err
	}
	return scanCheckoutLines(rows)
}

func (r *txRepo) Clear(ctx context.Context, shopperID int64) error {
	_, err := r.tx.Exec(ctx, `DELETE FROM cart_lines WHERE shopper_id = $1`, shopperID)
	return err
}

func scanCheckoutLines(rows pgx.Rows) ([]domain.CheckoutLine, error) {
	defer rows.Close()

	var lines []domain.CheckoutLine
	for rows.Next() {
		var (
			line  domain.CheckoutLine
			name  *string
			price *string
		)
		if err := rows.Scan(&line.ProductID, &name, &price, &line.Quantity); err != nil {
			return nil, err
		}
		if name == nil || price == nil {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, domain.ErrProductVanished)
		}
		line.Name = *name
		unitPrice, err := domain.ParseMoney(*price)
		if err != nil {
			return nil, err
		}
		line.UnitPrice = unitPrice
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
