package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUserPaymentTransactionNotFound is returned when a payment does not exist or has been deleted.
var ErrUserPaymentTransactionNotFound = errors.New("user payment transaction not found")

// NewUserPaymentTransactionNotFoundError creates the error for a missing payment.
func NewUserPaymentTransactionNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeUserPaymentTransactionNotFound,
		fmt.Sprintf("user payment transaction %d not found", id),
		ErrUserPaymentTransactionNotFound,
		strconv.FormatInt(id, 10),
	)
}
