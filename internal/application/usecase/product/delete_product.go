package product

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID int64
}

// DeleteProductUseCase handles product soft deletion.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute soft-deletes the product.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	deleted, err := uc.productRepo.SoftDelete(ctx, input.ProductID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if deleted == nil {
		return domainerror.NewProductNotFoundError(input.ProductID)
	}
	return nil
}
