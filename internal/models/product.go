package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are serialized as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	SKU           string          `json:"sku"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"max=200"`
	Description   string          `json:"description" validate:"max=2000"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	SKU           string          `json:"sku" validate:"max=50"`
}

// Stock is deliberately absent here: it is adjusted only through the
// inventory endpoints, never through the general update path.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"max=50"`
}
