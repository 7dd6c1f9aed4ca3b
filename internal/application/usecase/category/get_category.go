package category

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// GetCategoryInput represents the input for retrieving a category.
type GetCategoryInput struct {
	CategoryID int64
}

// GetCategoryOutput represents the output of retrieving a category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles category retrieval logic.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves an active category.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := uc.categoryRepo.FindActiveByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, domainerror.NewCategoryNotFoundError(input.CategoryID)
	}

	return &GetCategoryOutput{
		Category: category,
	}, nil
}
