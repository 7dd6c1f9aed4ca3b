package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a purchase made by a user.
type Transaction struct {
	Base
	UserID      int64
	TotalAmount decimal.Decimal
	Date        time.Time
}

// NewTransaction creates a new Transaction entity dated now.
func NewTransaction(userID int64, totalAmount decimal.Decimal) *Transaction {
	base := newBase()

	return &Transaction{
		Base:        base,
		UserID:      userID,
		TotalAmount: totalAmount,
		Date:        base.CreatedAt,
	}
}
