package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTransactionItemNotFound is returned when a transaction item does not exist or has been deleted.
var ErrTransactionItemNotFound = errors.New("transaction item not found")

// NewTransactionItemNotFoundError creates the error for a missing transaction item.
func NewTransactionItemNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeTransactionItemNotFound,
		fmt.Sprintf("transaction item %d not found", id),
		ErrTransactionItemNotFound,
		strconv.FormatInt(id, 10),
	)
}
