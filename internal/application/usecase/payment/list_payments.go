package payment

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
)

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	Page entity.PageRequest
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Page *entity.Page[*entity.UserPaymentTransaction]
}

// ListPaymentsUseCase handles payment listing logic.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists a page of active payments.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	page, err := uc.paymentRepo.ListActive(ctx, input.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{
		Page: page,
	}, nil
}
