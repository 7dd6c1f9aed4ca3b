package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// UpdatePaymentInput represents the input for payment update.
type UpdatePaymentInput struct {
	PaymentID int64
	Amount    *decimal.Decimal // Optional
}

// UpdatePaymentOutput represents the output of payment update.
type UpdatePaymentOutput struct {
	Payment *entity.UserPaymentTransaction
}

// UpdatePaymentUseCase handles payment amount changes.
type UpdatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(paymentRepo adapter.PaymentRepository) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute changes the payment amount. The owning user's balance moves by the
// difference so it keeps matching the payment history.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*UpdatePaymentOutput, error) {
	payment, err := uc.paymentRepo.FindActiveByID(ctx, input.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment == nil {
		return nil, domainerror.NewUserPaymentTransactionNotFoundError(input.PaymentID)
	}

	// Empty patch
	if input.Amount == nil {
		return &UpdatePaymentOutput{
			Payment: payment,
		}, nil
	}

	if err := validateAmount(*input.Amount); err != nil {
		return nil, err
	}

	updated, err := uc.paymentRepo.UpdateAmount(ctx, input.PaymentID, *input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrUserPaymentTransactionNotFound):
			return nil, domainerror.NewUserPaymentTransactionNotFoundError(input.PaymentID)
		case errors.Is(err, domainerror.ErrUserNotFound):
			return nil, domainerror.NewUserNotFoundError(payment.UserID)
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return &UpdatePaymentOutput{
		Payment: updated,
	}, nil
}
