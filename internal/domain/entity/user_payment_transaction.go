package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserPaymentTransaction records a balance top-up. The set of payments of a user
// forms the user's balance ledger.
type UserPaymentTransaction struct {
	Base
	UserID int64
	Amount *decimal.Decimal // Optional at the storage level
	Date   time.Time
}

// NewUserPaymentTransaction creates a new payment entity dated now.
func NewUserPaymentTransaction(userID int64, amount decimal.Decimal) *UserPaymentTransaction {
	base := newBase()

	return &UserPaymentTransaction{
		Base:   base,
		UserID: userID,
		Amount: &amount,
		Date:   base.CreatedAt,
	}
}

// AmountOrZero returns the payment amount, treating a missing amount as zero.
func (p *UserPaymentTransaction) AmountOrZero() decimal.Decimal {
	if p.Amount == nil {
		return decimal.Zero
	}
	return *p.Amount
}
