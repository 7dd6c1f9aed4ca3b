// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Username string
	FullName string
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	ID int64
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the user creation. New users start with a zero balance.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	// Usernames stay reserved after a user is deleted
	exists, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewUsernameExistsError(input.Username)
	}

	user := entity.NewUser(input.Username, input.FullName)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{
		ID: user.ID,
	}, nil
}
