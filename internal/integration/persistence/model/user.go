package model

import (
	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	Base
	Username string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName string          `gorm:"type:varchar(128)"`
	Balance  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		Base:     m.Base.toEntity(),
		Username: m.Username,
		FullName: m.FullName,
		Balance:  m.Balance,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		Base:     baseFromEntity(user.Base),
		Username: user.Username,
		FullName: user.FullName,
		Balance:  user.Balance,
	}
}
