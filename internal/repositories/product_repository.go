package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inventoryapp/inventory-api/internal/models"
	"github.com/inventoryapp/inventory-api/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product, expectedUpdatedAt time.Time) error
	DeleteProduct(ctx context.Context, id int64, expectedUpdatedAt time.Time) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// CreateProduct inserts the product and its inventory row in one
// transaction; StockQuantity seeds the inventory's current stock.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	err := withTransaction(dbCtx, r.DB, func(tx *sql.Tx) error {
		query := `INSERT INTO products (name, description, price, sku)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.SKU).
			Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(dbCtx,
			`INSERT INTO inventory (product_id, current_stock) VALUES ($1, $2)`,
			product.ID, product.StockQuantity)

		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU
		}

		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT p.id, p.name, p.description, p.price, p.sku,
		       COALESCE(i.current_stock, 0), p.created_at, p.updated_at
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		WHERE p.id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.Description,
		&product.Price, &product.SKU, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.description, p.price, p.sku,
		       COALESCE(i.current_stock, 0), p.created_at, p.updated_at
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		ORDER BY p.id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price,
			&product.SKU, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

// UpdateProduct is a compare-and-swap on the updated_at token: the write
// only lands if the stored token still matches what the caller last read.
// A stale token yields ErrConcurrentModification, a missing row
// ErrProductNotFound.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product, expectedUpdatedAt time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, sku = $4, updated_at = NOW()
		WHERE id = $5 AND updated_at = $6
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price,
		product.SKU, product.ID, expectedUpdatedAt).Scan(&product.UpdatedAt)
	if err == nil {
		return nil
	}

	if isUniqueViolation(err) {
		return ErrDuplicateSKU
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("updating product: %w", err)
	}

	exists, err := r.productExists(dbCtx, product.ID)
	if err != nil {
		return err
	}

	if exists {
		return ErrConcurrentModification
	}

	return ErrProductNotFound
}

// DeleteProduct is conditioned on the same token as UpdateProduct; the
// inventory and history rows go with the product via cascade.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64, expectedUpdatedAt time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM products WHERE id = $1 AND updated_at = $2`, id, expectedUpdatedAt)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if affected > 0 {
		return nil
	}

	exists, err := r.productExists(dbCtx, id)
	if err != nil {
		return err
	}

	if exists {
		return ErrConcurrentModification
	}

	return ErrProductNotFound
}

func (r *productRepository) productExists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking product existence: %w", err)
	}

	return exists, nil
}
