package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for user payment transaction persistence operations.
type PaymentRepository interface {
	SoftDeleteRepository[entity.UserPaymentTransaction]

	// CreateWithBalanceIncrement adds the payment amount to the user's balance and inserts
	// the payment in one database transaction.
	// Returns domainerror.ErrUserNotFound when the user is absent or deleted.
	CreateWithBalanceIncrement(ctx context.Context, payment *entity.UserPaymentTransaction) error

	// UpdateAmount changes the amount of an active payment and moves the owning user's
	// balance by the difference, in one database transaction.
	// Returns domainerror.ErrUserPaymentTransactionNotFound when the payment is absent or deleted.
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*entity.UserPaymentTransaction, error)

	// FindAllByUserID retrieves every payment of a user in creation order, deleted ones included.
	FindAllByUserID(ctx context.Context, userID int64) ([]*entity.UserPaymentTransaction, error)
}
