package persistence

import (
	"gorm.io/gorm"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	*softDeleteStore[entity.Product, model.ProductModel]
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.ProductModel).ToEntity,
			model.ProductFromEntity,
			baseSortable(map[string]string{
				"name":       "name",
				"count":      "count",
				"categoryId": "category_id",
			}),
		),
	}
}
