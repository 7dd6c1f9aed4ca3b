package product

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// GetProductInput represents the input for retrieving a product.
type GetProductInput struct {
	ProductID int64
}

// GetProductOutput represents the output of retrieving a product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase handles product retrieval logic.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute retrieves an active product.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindActiveByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, domainerror.NewProductNotFoundError(input.ProductID)
	}

	return &GetProductOutput{
		Product: product,
	}, nil
}
