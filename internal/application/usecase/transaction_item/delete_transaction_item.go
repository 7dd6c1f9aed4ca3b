package transactionitem

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeleteTransactionItemInput represents the input for transaction item deletion.
type DeleteTransactionItemInput struct {
	ItemID int64
}

// DeleteTransactionItemUseCase handles transaction item soft deletion.
type DeleteTransactionItemUseCase struct {
	itemRepo adapter.TransactionItemRepository
}

// NewDeleteTransactionItemUseCase creates a new DeleteTransactionItemUseCase instance.
func NewDeleteTransactionItemUseCase(itemRepo adapter.TransactionItemRepository) *DeleteTransactionItemUseCase {
	return &DeleteTransactionItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute soft-deletes the transaction item.
func (uc *DeleteTransactionItemUseCase) Execute(ctx context.Context, input DeleteTransactionItemInput) error {
	deleted, err := uc.itemRepo.SoftDelete(ctx, input.ItemID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction item: %w", err)
	}
	if deleted == nil {
		return domainerror.NewTransactionItemNotFoundError(input.ItemID)
	}
	return nil
}
