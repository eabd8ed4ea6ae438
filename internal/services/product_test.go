package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/models"
	repository "github.com/inventoryapp/inventory-api/internal/repositories"
	"github.com/inventoryapp/inventory-api/internal/repositories/mocks"
	service "github.com/inventoryapp/inventory-api/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *models.CreateProductRequest {
	return &models.CreateProductRequest{
		Name:          "Widget",
		Description:   "A very useful widget",
		Price:         decimal.NewFromFloat(9.99),
		StockQuantity: 10,
		SKU:           "W-1",
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Create Product", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)
		req := validCreateRequest()

		mockRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == req.Name && p.SKU == req.SKU && p.StockQuantity == req.StockQuantity
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, req.Name, product.Name)
		assert.Equal(t, req.Description, product.Description)
		assert.True(t, req.Price.Equal(product.Price))
		assert.Equal(t, req.StockQuantity, product.StockQuantity)
		assert.Equal(t, req.SKU, product.SKU)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(repository.ErrDuplicateSKU).Once()

		// Act
		product, err := productService.CreateProduct(ctx, validCreateRequest())

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(errors.New("connection refused")).Once()

		// Act
		product, err := productService.CreateProduct(ctx, validCreateRequest())

		// Assert
		assert.Error(t, err)
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

// The validation order and the exact messages are part of the API contract:
// the first violated rule wins regardless of what else is wrong.
func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.CreateProductRequest)
		message string
	}{
		{"empty name", func(r *models.CreateProductRequest) { r.Name = "" }, "Product name is required"},
		{"whitespace name", func(r *models.CreateProductRequest) { r.Name = "   " }, "Product name is required"},
		{"empty description", func(r *models.CreateProductRequest) { r.Description = "" }, "Product description is required"},
		{"empty sku", func(r *models.CreateProductRequest) { r.SKU = " " }, "Product SKU is required"},
		{"zero price", func(r *models.CreateProductRequest) { r.Price = decimal.Zero }, "Product price must be greater than zero"},
		{"negative price", func(r *models.CreateProductRequest) { r.Price = decimal.NewFromFloat(-1.50) }, "Product price must be greater than zero"},
		{"negative stock", func(r *models.CreateProductRequest) { r.StockQuantity = -1 }, "Product stock quantity cannot be negative"},
		{
			"name wins over everything else",
			func(r *models.CreateProductRequest) {
				r.Name = ""
				r.Description = ""
				r.SKU = ""
				r.Price = decimal.Zero
				r.StockQuantity = -5
			},
			"Product name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := new(mocks.ProductRepository)
			productService := service.NewProductService(mockRepo)
			req := validCreateRequest()
			tt.mutate(req)

			// Act
			product, err := productService.CreateProduct(ctx, req)

			// Assert
			assert.Nil(t, product)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		})
	}

	t.Run("smallest positive price passes validation", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)
		req := validCreateRequest()
		req.Price = decimal.NewFromFloat(0.01)

		mockRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, product)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()
	testID := int64(42)

	t.Run("Success - Get Product", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)
		expectedProduct := &models.Product{ID: testID, Name: "Found Product"}

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(expectedProduct, nil).Once()

		// Act
		product, err := productService.GetProductByID(ctx, testID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expectedProduct, product)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(nil, repository.ErrProductNotFound).Once()

		// Act
		product, err := productService.GetProductByID(ctx, testID)

		// Assert
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	testID := int64(7)
	observedVersion := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)

	updateReq := &models.UpdateProductRequest{
		Name:        "Renamed Widget",
		Description: "Still a very useful widget",
		Price:       decimal.NewFromFloat(12.50),
		SKU:         "W-1",
	}

	existing := func() *models.Product {
		return &models.Product{
			ID:          testID,
			Name:        "Widget",
			Description: "A very useful widget",
			Price:       decimal.NewFromFloat(9.99),
			SKU:         "W-1",
			UpdatedAt:   observedVersion,
		}
	}

	t.Run("Success - writes conditioned on the observed version", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(existing(), nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.ID == testID && p.Name == updateReq.Name
		}), observedVersion).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, testID, updateReq)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, updateReq.Name, product.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - concurrent modification maps to conflict", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(existing(), nil).Once()
		mockRepo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("*models.Product"), observedVersion).
			Return(repository.ErrConcurrentModification).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, testID, updateReq)

		// Assert
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - validation runs before any store access", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)
		badReq := &models.UpdateProductRequest{Name: "", Description: "d", Price: decimal.NewFromInt(1), SKU: "S"}

		// Act
		product, err := productService.UpdateProduct(ctx, testID, badReq)

		// Assert
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Product name is required", appErr.Message)
		mockRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - unknown product", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(nil, repository.ErrProductNotFound).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, testID, updateReq)

		// Assert
		assert.Nil(t, product)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	testID := int64(3)
	observedVersion := time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).
			Return(&models.Product{ID: testID, UpdatedAt: observedVersion}, nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, testID, observedVersion).Return(nil).Once()

		// Act
		err := productService.DeleteProduct(ctx, testID)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - deletion racing an update maps to conflict", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).
			Return(&models.Product{ID: testID, UpdatedAt: observedVersion}, nil).Once()
		mockRepo.On("DeleteProduct", mock.Anything, testID, observedVersion).
			Return(repository.ErrConcurrentModification).Once()

		// Act
		err := productService.DeleteProduct(ctx, testID)

		// Assert
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - unknown product", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("GetProductByID", mock.Anything, testID).Return(nil, repository.ErrProductNotFound).Once()

		// Act
		err := productService.DeleteProduct(ctx, testID)

		// Assert
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)
		expected := []*models.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

		mockRepo.On("ListProducts", mock.Anything).Return(expected, nil).Once()

		// Act
		products, err := productService.ListProducts(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ProductRepository)
		productService := service.NewProductService(mockRepo)

		mockRepo.On("ListProducts", mock.Anything).Return(nil, errors.New("timeout")).Once()

		// Act
		products, err := productService.ListProducts(ctx)

		// Assert
		assert.Nil(t, products)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
