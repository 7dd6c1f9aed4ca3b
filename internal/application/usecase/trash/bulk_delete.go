// Package trash contains the bulk soft-delete use case shared by every resource.
package trash

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// BulkDeleteInput represents the input for bulk deletion.
type BulkDeleteInput struct {
	IDs []int64
}

// BulkDeleteOutput reports which IDs were soft-deleted and which were unknown.
type BulkDeleteOutput struct {
	Deleted []int64
	Missing []int64
}

// BulkDeleteUseCase soft-deletes many rows of one entity type.
// Each ID is deleted on its own, there is no all-or-nothing guarantee.
type BulkDeleteUseCase[E any] struct {
	repo adapter.SoftDeleteRepository[E]
}

// NewBulkDeleteUseCase creates a new BulkDeleteUseCase instance.
func NewBulkDeleteUseCase[E any](repo adapter.SoftDeleteRepository[E]) *BulkDeleteUseCase[E] {
	return &BulkDeleteUseCase[E]{
		repo: repo,
	}
}

// Execute performs the bulk deletion. Duplicate IDs are processed once.
func (uc *BulkDeleteUseCase[E]) Execute(ctx context.Context, input BulkDeleteInput) (*BulkDeleteOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewInvalidRequestError("ids must not be empty")
	}

	ids := make([]int64, 0, len(input.IDs))
	seen := make(map[int64]struct{}, len(input.IDs))
	for _, id := range input.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	deleted, err := uc.repo.SoftDeleteMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete: %w", err)
	}

	output := &BulkDeleteOutput{
		Deleted: make([]int64, 0, len(ids)),
		Missing: make([]int64, 0),
	}
	for i, id := range ids {
		if deleted[i] == nil {
			output.Missing = append(output.Missing, id)
			continue
		}
		output.Deleted = append(output.Deleted, id)
	}
	return output, nil
}
