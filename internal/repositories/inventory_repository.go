package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inventoryapp/inventory-api/internal/models"
	"github.com/inventoryapp/inventory-api/internal/utils"
)

type InventoryRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*models.InventoryResponse, error)
	AddStock(ctx context.Context, productID, quantity int64) (*models.InventoryResponse, error)
	RemoveStock(ctx context.Context, productID, quantity int64) (*models.InventoryResponse, error)
	GetStockHistory(ctx context.Context, productID int64) ([]*models.StockHistory, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) GetByProductID(ctx context.Context, productID int64) (*models.InventoryResponse, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	inv := &models.InventoryResponse{}

	query := `
		SELECT i.product_id, p.name, p.sku, i.current_stock
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.product_id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, productID).
		Scan(&inv.ProductID, &inv.ProductName, &inv.SKU, &inv.CurrentStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}

		return nil, fmt.Errorf("querying inventory: %w", err)
	}

	return inv, nil
}

// AddStock bumps current_stock and the last_updated token in a single
// statement, then records the movement in stock_history within the same
// transaction.
func (r *inventoryRepository) AddStock(ctx context.Context, productID, quantity int64) (*models.InventoryResponse, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var stock int64

	err := withTransaction(dbCtx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(dbCtx, `
			UPDATE inventory
			SET current_stock = current_stock + $1, last_updated = NOW()
			WHERE product_id = $2
			RETURNING current_stock`, quantity, productID).Scan(&stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInventoryNotFound
			}

			return fmt.Errorf("adding stock: %w", err)
		}

		return recordStockHistory(dbCtx, tx, productID, quantity, models.StockOperationAdd)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByProductID(ctx, productID)
}

// RemoveStock guards the never-negative invariant inside the UPDATE itself:
// the write only lands when current_stock covers the quantity, so two racing
// removals cannot interleave into a negative balance.
func (r *inventoryRepository) RemoveStock(ctx context.Context, productID, quantity int64) (*models.InventoryResponse, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var stock int64

	err := withTransaction(dbCtx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(dbCtx, `
			UPDATE inventory
			SET current_stock = current_stock - $1, last_updated = NOW()
			WHERE product_id = $2 AND current_stock >= $1
			RETURNING current_stock`, quantity, productID).Scan(&stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.classifyRemoveFailure(dbCtx, tx, productID)
			}

			return fmt.Errorf("removing stock: %w", err)
		}

		return recordStockHistory(dbCtx, tx, productID, quantity, models.StockOperationRemove)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByProductID(ctx, productID)
}

// A zero-row conditional update means either the inventory row is missing or
// the guard failed; only an existence probe can tell the two apart.
func (r *inventoryRepository) classifyRemoveFailure(ctx context.Context, tx *sql.Tx, productID int64) error {
	var exists bool

	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory WHERE product_id = $1)`, productID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking inventory existence: %w", err)
	}

	if exists {
		return ErrInsufficientStock
	}

	return ErrInventoryNotFound
}

func (r *inventoryRepository) GetStockHistory(ctx context.Context, productID int64) ([]*models.StockHistory, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `
		SELECT id, product_id, quantity, operation_type, timestamp
		FROM stock_history
		WHERE product_id = $1
		ORDER BY timestamp DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("querying stock history: %w", err)
	}

	defer rows.Close()

	history := []*models.StockHistory{}

	for rows.Next() {
		entry := &models.StockHistory{}

		err := rows.Scan(&entry.ID, &entry.ProductID, &entry.Quantity, &entry.OperationType, &entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scanning stock history: %w", err)
		}

		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock history: %w", err)
	}

	return history, nil
}

func recordStockHistory(ctx context.Context, tx *sql.Tx, productID, quantity int64, operation string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO stock_history (product_id, quantity, operation_type) VALUES ($1, $2, $3)`,
		productID, quantity, operation)
	if err != nil {
		return fmt.Errorf("recording stock history: %w", err)
	}

	return nil
}
