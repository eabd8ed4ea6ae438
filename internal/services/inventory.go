package service

import (
	"context"
	"errors"

	apperrors "github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/models"
	repository "github.com/inventoryapp/inventory-api/internal/repositories"
)

type InventoryService interface {
	GetProductStock(ctx context.Context, productID int64) (*models.InventoryResponse, error)
	AddStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) (*models.InventoryResponse, error)
	RemoveStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) (*models.InventoryResponse, error)
	GetStockHistory(ctx context.Context, productID int64) ([]*models.StockHistory, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) GetProductStock(ctx context.Context, productID int64) (*models.InventoryResponse, error) {
	inv, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, apperrors.NotFoundError("Inventory not found for this product").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch inventory").WithError(err)
	}

	return inv, nil
}

func (s *inventoryService) AddStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) (*models.InventoryResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.ValidationError("Quantity must be positive when adding stock")
	}

	inv, err := s.repo.AddStock(ctx, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, apperrors.NotFoundError("Inventory not found for this product").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to add stock").WithError(err)
	}

	return inv, nil
}

func (s *inventoryService) RemoveStock(ctx context.Context, productID int64, req *models.UpdateStockRequest) (*models.InventoryResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.ValidationError("Quantity must be positive when removing stock")
	}

	inv, err := s.repo.RemoveStock(ctx, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInventoryNotFound):
			return nil, apperrors.NotFoundError("Inventory not found for this product").WithError(err)
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, apperrors.InsufficientStockError("Insufficient stock available").
				WithDetail("Requested quantity exceeds the current stock").
				WithError(err)
		default:
			return nil, apperrors.DatabaseError("Failed to remove stock").WithError(err)
		}
	}

	return inv, nil
}

func (s *inventoryService) GetStockHistory(ctx context.Context, productID int64) ([]*models.StockHistory, error) {
	// An unknown product has no inventory row; surface that the same way
	// the stock lookup does.
	if _, err := s.repo.GetByProductID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, apperrors.NotFoundError("Inventory not found for this product").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch inventory").WithError(err)
	}

	history, err := s.repo.GetStockHistory(ctx, productID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch stock history").WithError(err)
	}

	return history, nil
}
