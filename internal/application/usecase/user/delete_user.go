package user

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	UserID int64
}

// DeleteUserUseCase handles user soft deletion.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute soft-deletes the user. The user's transactions and payments are kept.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	deleted, err := uc.userRepo.SoftDelete(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == nil {
		return domainerror.NewUserNotFoundError(input.UserID)
	}
	return nil
}
