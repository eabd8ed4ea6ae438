package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	description string
	price       decimal.Decimal
	sku         string
	stock       int64
}

var seedProducts = []seedProduct{
	{"Laptop", "High-performance laptop for professional use", decimal.NewFromFloat(1299.99), "LAPTOP-001", 10},
	{"Smartphone", "Latest model smartphone with advanced features", decimal.NewFromFloat(799.99), "PHONE-001", 10},
	{"Headphones", "Wireless noise-canceling headphones", decimal.NewFromFloat(199.99), "AUDIO-001", 10},
	{"Monitor", "27-inch 4K LED Monitor", decimal.NewFromFloat(349.99), "DISPLAY-001", 10},
	{"Keyboard", "Mechanical gaming keyboard with RGB lighting", decimal.NewFromFloat(129.99), "INPUT-001", 10},
}

// Seed inserts the sample catalog on an empty database. A non-empty
// products table makes it a no-op.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}

	if count > 0 {
		slog.Info("database already has products, skipping seed")
		return nil
	}

	for _, p := range seedProducts {
		err := withTransaction(ctx, db, func(tx *sql.Tx) error {
			var id int64

			err := tx.QueryRowContext(ctx,
				`INSERT INTO products (name, description, price, sku) VALUES ($1, $2, $3, $4) RETURNING id`,
				p.name, p.description, p.price, p.sku).Scan(&id)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO inventory (product_id, current_stock) VALUES ($1, $2)`, id, p.stock)

			return err
		})
		if err != nil {
			return fmt.Errorf("seeding product %q: %w", p.name, err)
		}
	}

	slog.Info("database seeded with initial products", slog.Int("count", len(seedProducts)))

	return nil
}
