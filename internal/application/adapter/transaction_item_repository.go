package adapter

import (
	"context"

	"github.com/apptask/backend/internal/domain/entity"
)

// TransactionItemRepository defines the interface for transaction item persistence operations.
type TransactionItemRepository interface {
	SoftDeleteRepository[entity.TransactionItem]

	// FindProductsByUserID retrieves every product line bought by a user, ordered by item ID.
	// Deleted transactions, items and products still appear.
	FindProductsByUserID(ctx context.Context, userID int64) ([]*entity.PurchasedProduct, error)

	// FindProductsByTransactionID retrieves the product lines of one transaction, ordered by item ID.
	FindProductsByTransactionID(ctx context.Context, transactionID int64) ([]*entity.PurchasedProduct, error)
}
