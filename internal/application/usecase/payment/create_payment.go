// Package payment contains user payment transaction use cases.
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

// CreatePaymentInput represents the input for a balance top-up.
type CreatePaymentInput struct {
	UserID int64
	Amount decimal.Decimal
}

// CreatePaymentOutput represents the output of a balance top-up.
type CreatePaymentOutput struct {
	ID int64
}

// CreatePaymentUseCase records a payment and credits the user's balance.
type CreatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(paymentRepo adapter.PaymentRepository) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute credits the amount to the user's balance and records the payment atomically.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	payment := entity.NewUserPaymentTransaction(input.UserID, input.Amount)
	if err := uc.paymentRepo.CreateWithBalanceIncrement(ctx, payment); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserNotFoundError(input.UserID)
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &CreatePaymentOutput{
		ID: payment.ID,
	}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewInvalidRequestError("amount must be greater than zero")
	}
	return nil
}
