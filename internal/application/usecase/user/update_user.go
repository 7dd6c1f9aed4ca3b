package user

import (
	"context"
	"fmt"
	"time"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user update.
type UpdateUserInput struct {
	UserID   int64
	Username *string // Optional
	FullName *string // Optional
}

// UpdateUserOutput represents the output of user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user update logic.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the user update. Only the profile columns are written,
// so top-ups committed meanwhile keep their balance change.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindActiveByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewUserNotFoundError(input.UserID)
	}

	if input.Username != nil && *input.Username != user.Username {
		exists, err := uc.userRepo.ExistsByUsername(ctx, *input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewUsernameExistsError(*input.Username)
		}
		user.Username = *input.Username
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := uc.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if updated == nil {
		return nil, domainerror.NewUserNotFoundError(input.UserID)
	}

	return &UpdateUserOutput{
		User: updated,
	}, nil
}
