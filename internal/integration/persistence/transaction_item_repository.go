package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// transactionItemRepository implements the adapter.TransactionItemRepository interface.
type transactionItemRepository struct {
	*softDeleteStore[entity.TransactionItem, model.TransactionItemModel]
}

// NewTransactionItemRepository creates a new transaction item repository instance.
func NewTransactionItemRepository(db *gorm.DB) adapter.TransactionItemRepository {
	return &transactionItemRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.TransactionItemModel).ToEntity,
			model.TransactionItemFromEntity,
			baseSortable(map[string]string{
				"transactionId": "transaction_id",
				"productId":     "product_id",
				"count":         "count",
				"price":         "price",
				"totalAmount":   "total_amount",
			}),
		),
	}
}

// FindProductsByUserID retrieves every product line bought by a user.
func (r *transactionItemRepository) FindProductsByUserID(ctx context.Context, userID int64) ([]*entity.PurchasedProduct, error) {
	return r.findProducts(ctx, "t.user_id = ?", userID)
}

// FindProductsByTransactionID retrieves the product lines of one transaction.
func (r *transactionItemRepository) FindProductsByTransactionID(ctx context.Context, transactionID int64) ([]*entity.PurchasedProduct, error) {
	return r.findProducts(ctx, "t.id = ?", transactionID)
}

// findProducts runs the purchase report join. The deleted flag is not checked on
// any joined table so reports keep history intact.
func (r *transactionItemRepository) findProducts(ctx context.Context, condition string, arg int64) ([]*entity.PurchasedProduct, error) {
	var rows []model.PurchasedProductRow
	result := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("p.id AS id, p.name AS name, ti.count AS count, ti.price AS price, ti.total_amount AS total_amount, t.id AS transaction_id").
		Joins("JOIN transaction_items AS ti ON ti.transaction_id = t.id").
		Joins("JOIN products AS p ON p.id = ti.product_id").
		Where(condition, arg).
		Order("ti.id ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.PurchasedProduct, len(rows))
	for i := range rows {
		products[i] = rows[i].ToEntity()
	}
	return products, nil
}
