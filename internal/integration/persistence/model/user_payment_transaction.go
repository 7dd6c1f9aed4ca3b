package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// UserPaymentTransactionModel represents the user_payment_transactions table in the database.
type UserPaymentTransactionModel struct {
	Base
	UserID int64            `gorm:"not null;index"`
	Amount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Date   time.Time        `gorm:"type:timestamp"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the UserPaymentTransactionModel.
func (UserPaymentTransactionModel) TableName() string {
	return "user_payment_transactions"
}

// ToEntity converts a UserPaymentTransactionModel to a domain UserPaymentTransaction entity.
func (m *UserPaymentTransactionModel) ToEntity() *entity.UserPaymentTransaction {
	return &entity.UserPaymentTransaction{
		Base:   m.Base.toEntity(),
		UserID: m.UserID,
		Amount: m.Amount,
		Date:   m.Date,
	}
}

// UserPaymentTransactionFromEntity creates a UserPaymentTransactionModel from a domain entity.
func UserPaymentTransactionFromEntity(payment *entity.UserPaymentTransaction) *UserPaymentTransactionModel {
	return &UserPaymentTransactionModel{
		Base:   baseFromEntity(payment.Base),
		UserID: payment.UserID,
		Amount: payment.Amount,
		Date:   payment.Date,
	}
}
