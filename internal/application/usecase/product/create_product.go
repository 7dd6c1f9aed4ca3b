// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name       string
	Count      int64
	CategoryID int64
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	ID int64
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo  adapter.ProductRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository, categoryRepo adapter.CategoryRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	exists, err := uc.categoryRepo.ExistsActive(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
	}

	product := entity.NewProduct(input.Name, input.Count, input.CategoryID)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		ID: product.ID,
	}, nil
}
