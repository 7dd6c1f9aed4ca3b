package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrProductNotFound is returned when a product does not exist or has been deleted.
var ErrProductNotFound = errors.New("product not found")

// NewProductNotFoundError creates the error for a missing product.
func NewProductNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeProductNotFound,
		fmt.Sprintf("product %d not found", id),
		ErrProductNotFound,
		strconv.FormatInt(id, 10),
	)
}
