package service

import (
	"context"
	"errors"

	apperrors "github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/models"
	repository "github.com/inventoryapp/inventory-api/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo      repository.ProductRepository
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo, sanitizer: bluemonday.StrictPolicy()}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := validateCreateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          s.sanitizer.Sanitize(req.Name),
		Description:   s.sanitizer.Sanitize(req.Description),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		SKU:           s.sanitizer.Sanitize(req.SKU),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, apperrors.DuplicateEntryError("A product with this SKU already exists").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

// UpdateProduct reads the current record to capture its updated_at token,
// then writes conditioned on that token. A concurrent writer between the
// read and the write surfaces as a conflict, never a silent overwrite.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := validateUpdateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	observedVersion := product.UpdatedAt

	product.Name = s.sanitizer.Sanitize(req.Name)
	product.Description = s.sanitizer.Sanitize(req.Description)
	product.Price = req.Price
	product.SKU = s.sanitizer.Sanitize(req.SKU)

	if err := s.repo.UpdateProduct(ctx, product, observedVersion); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, apperrors.NotFoundError("Product not found").WithError(err)
		case errors.Is(err, repository.ErrConcurrentModification):
			return nil, apperrors.ConflictError("The product was modified by another user").WithError(err)
		case errors.Is(err, repository.ErrDuplicateSKU):
			return nil, apperrors.DuplicateEntryError("A product with this SKU already exists").WithError(err)
		default:
			return nil, apperrors.DatabaseError("Failed to update product").WithError(err)
		}
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return apperrors.NotFoundError("Product not found").WithError(err)
		}

		return apperrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.repo.DeleteProduct(ctx, id, product.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return apperrors.NotFoundError("Product not found").WithError(err)
		case errors.Is(err, repository.ErrConcurrentModification):
			return apperrors.ConflictError("The product was modified by another user").WithError(err)
		default:
			return apperrors.DatabaseError("Failed to delete product").WithError(err)
		}
	}

	return nil
}
