package persistence

import (
	"gorm.io/gorm"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	*softDeleteStore[entity.Transaction, model.TransactionModel]
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.TransactionModel).ToEntity,
			model.TransactionFromEntity,
			baseSortable(map[string]string{
				"userId":      "user_id",
				"totalAmount": "total_amount",
				"date":        "date",
			}),
		),
	}
}
