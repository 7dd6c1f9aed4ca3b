package category

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Page entity.PageRequest
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Page *entity.Page[*entity.Category]
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists a page of active categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	page, err := uc.categoryRepo.ListActive(ctx, input.Page)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Page: page,
	}, nil
}
