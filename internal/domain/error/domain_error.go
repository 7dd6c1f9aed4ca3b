// Package error defines domain-specific errors for the application.
package error

// ErrorCode identifies a domain error in API responses.
// Every code has a message key in the localization bundle.
type ErrorCode int

const (
	// Not found / uniqueness errors (1XX)
	ErrCodeUserNotFound                   ErrorCode = 100
	ErrCodeUsernameExists                 ErrorCode = 101
	ErrCodeTransactionNotFound            ErrorCode = 102
	ErrCodeCategoryNotFound               ErrorCode = 103
	ErrCodeProductNotFound                ErrorCode = 104
	ErrCodeTransactionItemNotFound        ErrorCode = 105
	ErrCodeUserPaymentTransactionNotFound ErrorCode = 106

	// Request errors
	ErrCodeInvalidRequest      ErrorCode = 107
	ErrCodeInvalidSortProperty ErrorCode = 108
	ErrCodeTooManyRequests     ErrorCode = 109

	// ErrCodeInternal is used for unexpected failures only.
	ErrCodeInternal ErrorCode = 500
)

var messageKeys = map[ErrorCode]string{
	ErrCodeUserNotFound:                   "USER_NOT_FOUND",
	ErrCodeUsernameExists:                 "USER_NAME_EXIST",
	ErrCodeTransactionNotFound:            "TRANSACTION_NOT_FOUND",
	ErrCodeCategoryNotFound:               "CATEGORY_NOT_FOUND",
	ErrCodeProductNotFound:                "PRODUCT_NOT_FOUND",
	ErrCodeTransactionItemNotFound:        "TRANSACTION_ITEM_NOT_FOUND",
	ErrCodeUserPaymentTransactionNotFound: "USER_PAYMENT_TRANSACTION_NOT_FOUND",
	ErrCodeInvalidRequest:                 "INVALID_REQUEST",
	ErrCodeInvalidSortProperty:            "INVALID_SORT_PROPERTY",
	ErrCodeTooManyRequests:                "TOO_MANY_REQUESTS",
	ErrCodeInternal:                       "INTERNAL_ERROR",
}

// MessageKey returns the localization key for the code.
func (c ErrorCode) MessageKey() string {
	if key, ok := messageKeys[c]; ok {
		return key
	}
	return messageKeys[ErrCodeInternal]
}

// DomainError represents a domain error with a code, a developer message and
// the arguments used to render its localized message.
type DomainError struct {
	Code    ErrorCode
	Message string
	Args    []string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError with the given code, message and message arguments.
func NewDomainError(code ErrorCode, message string, err error, args ...string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Args:    args,
		Err:     err,
	}
}
