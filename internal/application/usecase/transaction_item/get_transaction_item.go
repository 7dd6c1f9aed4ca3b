package transactionitem

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// GetTransactionItemInput represents the input for retrieving a transaction item.
type GetTransactionItemInput struct {
	ItemID int64
}

// GetTransactionItemOutput represents the output of retrieving a transaction item.
type GetTransactionItemOutput struct {
	Item *entity.TransactionItem
}

// GetTransactionItemUseCase handles transaction item retrieval logic.
type GetTransactionItemUseCase struct {
	itemRepo adapter.TransactionItemRepository
}

// NewGetTransactionItemUseCase creates a new GetTransactionItemUseCase instance.
func NewGetTransactionItemUseCase(itemRepo adapter.TransactionItemRepository) *GetTransactionItemUseCase {
	return &GetTransactionItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retrieves an active transaction item.
func (uc *GetTransactionItemUseCase) Execute(ctx context.Context, input GetTransactionItemInput) (*GetTransactionItemOutput, error) {
	item, err := uc.itemRepo.FindActiveByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction item: %w", err)
	}
	if item == nil {
		return nil, domainerror.NewTransactionItemNotFoundError(input.ItemID)
	}

	return &GetTransactionItemOutput{
		Item: item,
	}, nil
}
