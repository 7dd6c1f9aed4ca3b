package persistence

import (
	"gorm.io/gorm"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	*softDeleteStore[entity.Category, model.CategoryModel]
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.CategoryModel).ToEntity,
			model.CategoryFromEntity,
			baseSortable(map[string]string{
				"name":        "name",
				"orderNumber": "order_number",
			}),
		),
	}
}
