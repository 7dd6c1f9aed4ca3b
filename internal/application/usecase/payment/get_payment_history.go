package payment

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// GetPaymentHistoryInput represents the input for retrieving a user's payment history.
type GetPaymentHistoryInput struct {
	UserID int64
}

// GetPaymentHistoryOutput represents a user's payment history.
type GetPaymentHistoryOutput struct {
	User     *entity.User
	Payments []*entity.UserPaymentTransaction
}

// GetPaymentHistoryUseCase returns the full payment ledger of a user.
type GetPaymentHistoryUseCase struct {
	userRepo    adapter.UserRepository
	paymentRepo adapter.PaymentRepository
}

// NewGetPaymentHistoryUseCase creates a new GetPaymentHistoryUseCase instance.
func NewGetPaymentHistoryUseCase(userRepo adapter.UserRepository, paymentRepo adapter.PaymentRepository) *GetPaymentHistoryUseCase {
	return &GetPaymentHistoryUseCase{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute lists every payment of an active user in creation order, deleted payments included.
func (uc *GetPaymentHistoryUseCase) Execute(ctx context.Context, input GetPaymentHistoryInput) (*GetPaymentHistoryOutput, error) {
	user, err := uc.userRepo.FindActiveByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewUserNotFoundError(input.UserID)
	}

	payments, err := uc.paymentRepo.FindAllByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment history: %w", err)
	}

	return &GetPaymentHistoryOutput{
		User:     user,
		Payments: payments,
	}, nil
}
