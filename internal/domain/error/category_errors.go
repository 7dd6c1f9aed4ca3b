package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrCategoryNotFound is returned when a category does not exist or has been deleted.
var ErrCategoryNotFound = errors.New("category not found")

// NewCategoryNotFoundError creates the error for a missing category.
func NewCategoryNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeCategoryNotFound,
		fmt.Sprintf("category %d not found", id),
		ErrCategoryNotFound,
		strconv.FormatInt(id, 10),
	)
}
