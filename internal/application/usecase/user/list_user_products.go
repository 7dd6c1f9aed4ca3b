package user

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// ListUserProductsInput represents the input for listing a user's purchased products.
type ListUserProductsInput struct {
	UserID int64
}

// ListUserProductsOutput represents the output of listing a user's purchased products.
type ListUserProductsOutput struct {
	Products []*entity.PurchasedProduct
}

// ListUserProductsUseCase returns every product line a user has bought.
type ListUserProductsUseCase struct {
	userRepo adapter.UserRepository
	itemRepo adapter.TransactionItemRepository
}

// NewListUserProductsUseCase creates a new ListUserProductsUseCase instance.
func NewListUserProductsUseCase(userRepo adapter.UserRepository, itemRepo adapter.TransactionItemRepository) *ListUserProductsUseCase {
	return &ListUserProductsUseCase{
		userRepo: userRepo,
		itemRepo: itemRepo,
	}
}

// Execute lists the purchased products of an active user.
func (uc *ListUserProductsUseCase) Execute(ctx context.Context, input ListUserProductsInput) (*ListUserProductsOutput, error) {
	exists, err := uc.userRepo.ExistsActive(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewUserNotFoundError(input.UserID)
	}

	products, err := uc.itemRepo.FindProductsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user products: %w", err)
	}

	return &ListUserProductsOutput{
		Products: products,
	}, nil
}
