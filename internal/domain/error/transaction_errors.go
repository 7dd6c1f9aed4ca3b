package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTransactionNotFound is returned when a transaction does not exist or has been deleted.
var ErrTransactionNotFound = errors.New("transaction not found")

// NewTransactionNotFoundError creates the error for a missing transaction.
func NewTransactionNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeTransactionNotFound,
		fmt.Sprintf("transaction %d not found", id),
		ErrTransactionNotFound,
		strconv.FormatInt(id, 10),
	)
}
