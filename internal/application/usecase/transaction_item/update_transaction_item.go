package transactionitem

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// UpdateTransactionItemInput represents the input for transaction item update.
type UpdateTransactionItemInput struct {
	ItemID      int64
	Count       *int64           // Optional
	Price       *decimal.Decimal // Optional
	TotalAmount *decimal.Decimal // Optional
}

// UpdateTransactionItemOutput represents the output of transaction item update.
type UpdateTransactionItemOutput struct {
	Item *entity.TransactionItem
}

// UpdateTransactionItemUseCase handles transaction item update logic.
type UpdateTransactionItemUseCase struct {
	itemRepo adapter.TransactionItemRepository
}

// NewUpdateTransactionItemUseCase creates a new UpdateTransactionItemUseCase instance.
func NewUpdateTransactionItemUseCase(itemRepo adapter.TransactionItemRepository) *UpdateTransactionItemUseCase {
	return &UpdateTransactionItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the transaction item update.
func (uc *UpdateTransactionItemUseCase) Execute(ctx context.Context, input UpdateTransactionItemInput) (*UpdateTransactionItemOutput, error) {
	item, err := uc.itemRepo.FindActiveByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction item: %w", err)
	}
	if item == nil {
		return nil, domainerror.NewTransactionItemNotFoundError(input.ItemID)
	}

	if input.Count != nil {
		item.Count = *input.Count
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.TotalAmount != nil {
		item.TotalAmount = *input.TotalAmount
	}

	item.UpdatedAt = time.Now().UTC()

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update transaction item: %w", err)
	}

	return &UpdateTransactionItemOutput{
		Item: item,
	}, nil
}
