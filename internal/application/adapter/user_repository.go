package adapter

import (
	"context"

	"github.com/apptask/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	SoftDeleteRepository[entity.User]

	// ExistsByUsername checks if a username is taken, deleted users included.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// UpdateProfile writes the username and full name of an active user and
	// returns the stored row, or nil when the user is not active. The balance
	// column is never written.
	UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error)
}
