package adapter

import "github.com/apptask/backend/internal/domain/entity"

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	SoftDeleteRepository[entity.Category]
}
