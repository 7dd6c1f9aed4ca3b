package category

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID int64
}

// DeleteCategoryUseCase handles category soft deletion.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute soft-deletes the category. Products keep their category reference.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	deleted, err := uc.categoryRepo.SoftDelete(ctx, input.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if deleted == nil {
		return domainerror.NewCategoryNotFoundError(input.CategoryID)
	}
	return nil
}
