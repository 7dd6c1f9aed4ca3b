package transactionitem

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// ListTransactionProductsInput represents the input for listing the products of a transaction.
type ListTransactionProductsInput struct {
	TransactionID int64
}

// ListTransactionProductsOutput represents the output of listing the products of a transaction.
type ListTransactionProductsOutput struct {
	Products []*entity.PurchasedProduct
}

// ListTransactionProductsUseCase returns the product lines of one transaction.
type ListTransactionProductsUseCase struct {
	transactionRepo adapter.TransactionRepository
	itemRepo        adapter.TransactionItemRepository
}

// NewListTransactionProductsUseCase creates a new ListTransactionProductsUseCase instance.
func NewListTransactionProductsUseCase(transactionRepo adapter.TransactionRepository, itemRepo adapter.TransactionItemRepository) *ListTransactionProductsUseCase {
	return &ListTransactionProductsUseCase{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
	}
}

// Execute lists the product lines of an active transaction.
func (uc *ListTransactionProductsUseCase) Execute(ctx context.Context, input ListTransactionProductsInput) (*ListTransactionProductsOutput, error) {
	exists, err := uc.transactionRepo.ExistsActive(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTransactionNotFoundError(input.TransactionID)
	}

	products, err := uc.itemRepo.FindProductsByTransactionID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction products: %w", err)
	}

	return &ListTransactionProductsOutput{
		Products: products,
	}, nil
}
