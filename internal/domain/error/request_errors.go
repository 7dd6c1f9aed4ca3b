package error

import (
	"errors"
	"fmt"
)

// Request errors.
var (
	// ErrInvalidRequest is returned when a request body, path or query cannot be used.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidSortProperty is returned when a list is sorted by an unknown property.
	ErrInvalidSortProperty = errors.New("invalid sort property")

	// ErrTooManyRequests is returned when a client exceeds the rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// NewInvalidRequestError creates a request validation error. The detail is shown to the client.
func NewInvalidRequestError(detail string) *DomainError {
	return NewDomainError(ErrCodeInvalidRequest, "invalid request: "+detail, ErrInvalidRequest, detail)
}

// NewInvalidSortPropertyError creates the error for an unknown sort property.
func NewInvalidSortPropertyError(property string) *DomainError {
	return NewDomainError(
		ErrCodeInvalidSortProperty,
		fmt.Sprintf("cannot sort by %q", property),
		ErrInvalidSortProperty,
		property,
	)
}

// NewTooManyRequestsError creates the rate limit error.
func NewTooManyRequestsError() *DomainError {
	return NewDomainError(ErrCodeTooManyRequests, "rate limit exceeded", ErrTooManyRequests)
}
