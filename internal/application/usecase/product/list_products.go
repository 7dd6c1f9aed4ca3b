package product

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	Page entity.PageRequest
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Page *entity.Page[*entity.Product]
}

// ListProductsUseCase handles product listing logic.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lists a page of active products.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	page, err := uc.productRepo.ListActive(ctx, input.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Page: page,
	}, nil
}
