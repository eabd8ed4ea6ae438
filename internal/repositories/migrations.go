package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist. Inventory and stock
// history rows are removed together with their product via ON DELETE CASCADE.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			description VARCHAR(2000) NOT NULL,
			price NUMERIC(12, 2) NOT NULL CHECK (price > 0),
			sku VARCHAR(50) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku ON products (sku)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL UNIQUE REFERENCES products (id) ON DELETE CASCADE,
			current_stock BIGINT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS stock_history (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
			quantity BIGINT NOT NULL,
			operation_type VARCHAR(10) NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}

	return nil
}
