package payment

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// GetPaymentInput represents the input for retrieving a payment.
type GetPaymentInput struct {
	PaymentID int64
}

// GetPaymentOutput represents the output of retrieving a payment.
type GetPaymentOutput struct {
	Payment *entity.UserPaymentTransaction
}

// GetPaymentUseCase handles payment retrieval logic.
type GetPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(paymentRepo adapter.PaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves an active payment.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, input GetPaymentInput) (*GetPaymentOutput, error) {
	payment, err := uc.paymentRepo.FindActiveByID(ctx, input.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment == nil {
		return nil, domainerror.NewUserPaymentTransactionNotFoundError(input.PaymentID)
	}

	return &GetPaymentOutput{
		Payment: payment,
	}, nil
}
