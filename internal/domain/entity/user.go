package entity

import "github.com/shopspring/decimal"

// User represents an account holder with a stored balance.
// Balance is only changed by payment transactions.
type User struct {
	Base
	Username string
	FullName string
	Balance  decimal.Decimal
}

// NewUser creates a new User entity with a zero balance.
func NewUser(username, fullName string) *User {
	return &User{
		Base:     newBase(),
		Username: username,
		FullName: fullName,
		Balance:  decimal.Zero,
	}
}
