package payment

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	PaymentID int64
}

// DeletePaymentUseCase handles payment soft deletion.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute soft-deletes the payment. The balance is not changed and the
// payment stays in the user's history.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	deleted, err := uc.paymentRepo.SoftDelete(ctx, input.PaymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if deleted == nil {
		return domainerror.NewUserPaymentTransactionNotFoundError(input.PaymentID)
	}
	return nil
}
