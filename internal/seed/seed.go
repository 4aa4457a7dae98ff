package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name  string
	Price string
}

type shopperSeed struct {
	Name string
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	shoppers := []shopperSeed{
		{Name: "Ada Lovelace"},
		{Name: "Grace Hopper"},
	}
	shopperIDs := make(map[string]int64, len(shoppers))
	for _, s := range shoppers {
		id, err := upsertShopper(ctx, pool, s)
		if err != nil {
			return fmt.Errorf("upsert shopper %s: %w", s.Name, err)
		}
		shopperIDs[s.Name] = id
	}

	products := []productSeed{
		{Name: "Notebook", Price: "799.90"},
		{Name: "Headset", Price: "499.90"},
		{Name: "Mouse", Price: "49.90"},
	}
	productIDs := make(map[string]int64, len(products))
	for _, p := range products {
		id, err := upsertProduct(ctx, pool, p)
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
		productIDs[p.Name] = id
	}

	// Pre-fill one cart so a checkout can be exercised right away.
	lines := []struct {
		shopper string
		product string
		qty     int
	}{
		{"Ada Lovelace", "Notebook", 1},
		{"Ada Lovelace", "Headset", 2},
	}
	for _, l := range lines {
		if err := ensureCartLine(ctx, pool, shopperIDs[l.shopper], productIDs[l.product], l.qty); err != nil {
			return fmt.Errorf("seed cart line %s/%s: %w", l.shopper, l.product, err)
		}
	}

	return nil
}

func upsertShopper(ctx context.Context, pool *pgxpool.Pool, s shopperSeed) (int64, error) {
	const q = `
INSERT INTO shoppers (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	var id int64
	err := pool.QueryRow(ctx, q, s.Name).Scan(&id)
	return id, err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) (int64, error) {
	const q = `
INSERT INTO products (name, price)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price
RETURNING id
`
	var id int64
	err := pool.QueryRow(ctx, q, p.Name, p.Price).Scan(&id)
	return id, err
}

func ensureCartLine(ctx context.Context, pool *pgxpool.Pool, shopperID, productID int64, qty int) error {
	const q = `
INSERT INTO cart_lines (shopper_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (shopper_id, product_id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, shopperID, productID, qty)
	return err
}
