// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/apptask/backend/internal/domain/entity"
)

// Base holds the columns shared by every table.
type Base struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Deleted   bool      `gorm:"not null;default:false;index"` // Soft-delete flag
}

func (b Base) toEntity() entity.Base {
	return entity.Base{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Deleted:   b.Deleted,
	}
}

func baseFromEntity(b entity.Base) Base {
	return Base{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Deleted:   b.Deleted,
	}
}

// AllModels returns every model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&TransactionModel{},
		&CategoryModel{},
		&ProductModel{},
		&TransactionItemModel{},
		&UserPaymentTransactionModel{},
	}
}
