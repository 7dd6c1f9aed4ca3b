// Package transactionitem contains transaction item use cases.
package transactionitem

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// CreateTransactionItemInput represents the input for transaction item creation.
type CreateTransactionItemInput struct {
	TransactionID int64
	ProductID     int64
	Count         int64
	Price         decimal.Decimal
	TotalAmount   decimal.Decimal
}

// CreateTransactionItemOutput represents the output of transaction item creation.
type CreateTransactionItemOutput struct {
	ID int64
}

// CreateTransactionItemUseCase handles transaction item creation logic.
type CreateTransactionItemUseCase struct {
	itemRepo        adapter.TransactionItemRepository
	transactionRepo adapter.TransactionRepository
	productRepo     adapter.ProductRepository
}

// NewCreateTransactionItemUseCase creates a new CreateTransactionItemUseCase instance.
func NewCreateTransactionItemUseCase(
	itemRepo adapter.TransactionItemRepository,
	transactionRepo adapter.TransactionRepository,
	productRepo adapter.ProductRepository,
) *CreateTransactionItemUseCase {
	return &CreateTransactionItemUseCase{
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
	}
}

// Execute performs the transaction item creation.
// The total amount is stored as given and not derived from count and price.
func (uc *CreateTransactionItemUseCase) Execute(ctx context.Context, input CreateTransactionItemInput) (*CreateTransactionItemOutput, error) {
	exists, err := uc.transactionRepo.ExistsActive(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTransactionNotFoundError(input.TransactionID)
	}

	exists, err = uc.productRepo.ExistsActive(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewProductNotFoundError(input.ProductID)
	}

	item := entity.NewTransactionItem(input.TransactionID, input.ProductID, input.Count, input.Price, input.TotalAmount)
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create transaction item: %w", err)
	}

	return &CreateTransactionItemOutput{
		ID: item.ID,
	}, nil
}
