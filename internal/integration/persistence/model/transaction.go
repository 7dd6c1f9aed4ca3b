package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	Base
	UserID      int64           `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2)"`
	Date        time.Time       `gorm:"type:timestamp"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		Base:        m.Base.toEntity(),
		UserID:      m.UserID,
		TotalAmount: m.TotalAmount,
		Date:        m.Date,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		Base:        baseFromEntity(transaction.Base),
		UserID:      transaction.UserID,
		TotalAmount: transaction.TotalAmount,
		Date:        transaction.Date,
	}
}
