package service

import (
	"strings"

	"github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/models"
)

// Business validation runs before any store access and reports the first
// violation in a fixed priority order: name, description, sku, price, stock.
// The messages are part of the API contract and mirrored by clients.

func validateCreateProduct(req *models.CreateProductRequest) *errors.AppError {
	if err := validateProductFields(req.Name, req.Description, req.SKU, req.Price.Sign()); err != nil {
		return err
	}

	if req.StockQuantity < 0 {
		return errors.ValidationError("Product stock quantity cannot be negative")
	}

	return nil
}

func validateUpdateProduct(req *models.UpdateProductRequest) *errors.AppError {
	return validateProductFields(req.Name, req.Description, req.SKU, req.Price.Sign())
}

func validateProductFields(name, description, sku string, priceSign int) *errors.AppError {
	if strings.TrimSpace(name) == "" {
		return errors.ValidationError("Product name is required")
	}

	if strings.TrimSpace(description) == "" {
		return errors.ValidationError("Product description is required")
	}

	if strings.TrimSpace(sku) == "" {
		return errors.ValidationError("Product SKU is required")
	}

	if priceSign <= 0 {
		return errors.ValidationError("Product price must be greater than zero")
	}

	return nil
}
