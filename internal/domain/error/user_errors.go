package error

import (
	"errors"
	"fmt"
	"strconv"
)

// User domain errors.
var (
	// ErrUserNotFound is returned when a user does not exist or has been deleted.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to use a username that is already taken.
	ErrUsernameExists = errors.New("username already exists")
)

// NewUserNotFoundError creates the error for a missing user.
func NewUserNotFoundError(id int64) *DomainError {
	return NewDomainError(
		ErrCodeUserNotFound,
		fmt.Sprintf("user %d not found", id),
		ErrUserNotFound,
		strconv.FormatInt(id, 10),
	)
}

// NewUsernameExistsError creates the error for a taken username.
func NewUsernameExistsError(username string) *DomainError {
	return NewDomainError(
		ErrCodeUsernameExists,
		fmt.Sprintf("username %q already exists", username),
		ErrUsernameExists,
		username,
	)
}
