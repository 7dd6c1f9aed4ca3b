package adapter

import "github.com/apptask/backend/internal/domain/entity"

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	SoftDeleteRepository[entity.Product]
}
