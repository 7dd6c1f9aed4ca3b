package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	*softDeleteStore[entity.UserPaymentTransaction, model.UserPaymentTransactionModel]
}

// NewPaymentRepository creates a new user payment transaction repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.UserPaymentTransactionModel).ToEntity,
			model.UserPaymentTransactionFromEntity,
			baseSortable(map[string]string{
				"userId": "user_id",
				"amount": "amount",
				"date":   "date",
			}),
		),
	}
}

// CreateWithBalanceIncrement adds the amount to the user's balance and inserts the payment.
// The balance is changed with a single UPDATE expression so concurrent top-ups do not race.
func (r *paymentRepository) CreateWithBalanceIncrement(ctx context.Context, payment *entity.UserPaymentTransaction) error {
	paymentModel := model.UserPaymentTransactionFromEntity(payment)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := incrementBalance(tx, payment.UserID, payment.AmountOrZero()); err != nil {
			return err
		}
		return tx.Create(paymentModel).Error
	})
	if err != nil {
		return err
	}

	*payment = *paymentModel.ToEntity()
	return nil
}

// UpdateAmount changes a payment amount and moves the user's balance by the difference.
func (r *paymentRepository) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*entity.UserPaymentTransaction, error) {
	var updated model.UserPaymentTransactionModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.UserPaymentTransactionModel
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(activeOnly).
			Where("id = ?", id).
			First(&current)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrUserPaymentTransactionNotFound
			}
			return result.Error
		}

		old := decimal.Zero
		if current.Amount != nil {
			old = *current.Amount
		}

		if delta := amount.Sub(old); !delta.IsZero() {
			if err := incrementBalance(tx, current.UserID, delta); err != nil {
				return err
			}
		}

		result = tx.Model(&model.UserPaymentTransactionModel{}).
			Where("id = ?", id).
			Update("amount", amount)
		if result.Error != nil {
			return result.Error
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	return updated.ToEntity(), nil
}

// FindAllByUserID retrieves every payment of a user in creation order, deleted ones included.
func (r *paymentRepository) FindAllByUserID(ctx context.Context, userID int64) ([]*entity.UserPaymentTransaction, error) {
	var paymentModels []model.UserPaymentTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.UserPaymentTransaction, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments, nil
}

// incrementBalance adds delta to the balance of an active user.
// Returns domainerror.ErrUserNotFound when no active user matched.
func incrementBalance(tx *gorm.DB, userID int64, delta decimal.Decimal) error {
	result := tx.Model(&model.UserModel{}).
		Scopes(activeOnly).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrUserNotFound
	}
	return nil
}
