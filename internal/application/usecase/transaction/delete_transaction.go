package transaction

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID int64
}

// DeleteTransactionUseCase handles transaction soft deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute soft-deletes the transaction. Its items stay in purchase reports.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	deleted, err := uc.transactionRepo.SoftDelete(ctx, input.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if deleted == nil {
		return domainerror.NewTransactionNotFoundError(input.TransactionID)
	}
	return nil
}
