package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	*softDeleteStore[entity.User, model.UserModel]
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		softDeleteStore: newSoftDeleteStore(
			db,
			(*model.UserModel).ToEntity,
			model.UserFromEntity,
			baseSortable(map[string]string{
				"username": "username",
				"fullName": "full_name",
				"balance":  "balance",
			}),
		),
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.softDeleteStore.Create(ctx, user); err != nil {
		return translateUserError(user, err)
	}
	return nil
}

// UpdateProfile updates only the profile columns so concurrent balance changes survive.
func (r *userRepository) UpdateProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Scopes(activeOnly).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   user.Username,
			"full_name":  user.FullName,
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return nil, translateUserError(user, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindActiveByID(ctx, user.ID)
}

// ExistsByUsername checks if a username is taken. Deleted users keep their username.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func translateUserError(user *entity.User, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.NewUsernameExistsError(user.Username)
	}
	return err
}
