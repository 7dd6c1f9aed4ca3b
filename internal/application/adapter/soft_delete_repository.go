// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/apptask/backend/internal/domain/entity"
)

// SoftDeleteRepository defines the persistence operations shared by every entity.
// Rows are never removed: deletion sets the deleted flag and every read skips flagged rows.
type SoftDeleteRepository[E any] interface {
	// Create inserts a new row and writes the generated ID and timestamps back into the entity.
	Create(ctx context.Context, e *E) error

	// Save persists every column of an existing row.
	Save(ctx context.Context, e *E) error

	// FindActiveByID retrieves a non-deleted row by its ID.
	// Returns nil, nil when the row is absent or deleted.
	FindActiveByID(ctx context.Context, id int64) (*E, error)

	// ExistsActive checks whether a non-deleted row with the given ID exists.
	ExistsActive(ctx context.Context, id int64) (bool, error)

	// ListActive retrieves a page of non-deleted rows.
	ListActive(ctx context.Context, req entity.PageRequest) (*entity.Page[*E], error)

	// SoftDelete flags a row as deleted and returns it. Returns nil, nil for unknown IDs.
	SoftDelete(ctx context.Context, id int64) (*E, error)

	// SoftDeleteMany soft-deletes each ID independently.
	// The result is aligned with ids and holds nil for unknown IDs.
	SoftDeleteMany(ctx context.Context, ids []int64) ([]*E, error)
}
