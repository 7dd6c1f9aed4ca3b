package dto

import "github.com/apptask/backend/internal/domain/entity"

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	FullName string `json:"fullName" binding:"required,max=128"`
}

// UpdateUserRequest represents the request body for user update.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=1,max=255"`
	FullName *string `json:"fullName,omitempty" binding:"omitempty,max=128"`
}

// UserResponse represents a single user in API responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Balance  string `json:"balance"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Balance:  money(user.Balance),
	}
}
