package transactionitem

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
)

// ListTransactionItemsInput represents the input for listing transaction items.
type ListTransactionItemsInput struct {
	Page entity.PageRequest
}

// ListTransactionItemsOutput represents the output of listing transaction items.
type ListTransactionItemsOutput struct {
	Page *entity.Page[*entity.TransactionItem]
}

// ListTransactionItemsUseCase handles transaction item listing logic.
type ListTransactionItemsUseCase struct {
	itemRepo adapter.TransactionItemRepository
}

// NewListTransactionItemsUseCase creates a new ListTransactionItemsUseCase instance.
func NewListTransactionItemsUseCase(itemRepo adapter.TransactionItemRepository) *ListTransactionItemsUseCase {
	return &ListTransactionItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute lists a page of active transaction items.
func (uc *ListTransactionItemsUseCase) Execute(ctx context.Context, input ListTransactionItemsInput) (*ListTransactionItemsOutput, error) {
	page, err := uc.itemRepo.ListActive(ctx, input.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction items: %w", err)
	}

	return &ListTransactionItemsOutput{
		Page: page,
	}, nil
}
