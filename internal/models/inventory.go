package models

import "time"

// InventoryResponse is the wire shape for stock lookups, joined with the
// owning product's name and SKU. The inventory row itself never leaves the
// repository layer unjoined.
type InventoryResponse struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku"`
	CurrentStock int64  `json:"current_stock"`
}

type UpdateStockRequest struct {
	Quantity int64 `json:"quantity"`
}

const (
	StockOperationAdd    = "add"
	StockOperationRemove = "remove"
)

type StockHistory struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	OperationType string    `json:"operation_type"`
	Timestamp     time.Time `json:"timestamp"`
}
