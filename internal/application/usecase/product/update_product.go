package product

import (
	"context"
	"fmt"
	"time"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update.
// The category of a product cannot be changed.
type UpdateProductInput struct {
	ProductID int64
	Name      *string // Optional
	Count     *int64  // Optional
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := uc.productRepo.FindActiveByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, domainerror.NewProductNotFoundError(input.ProductID)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Count != nil {
		product.Count = *input.Count
	}

	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
