package adapter

import "github.com/apptask/backend/internal/domain/entity"

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	SoftDeleteRepository[entity.Transaction]
}
