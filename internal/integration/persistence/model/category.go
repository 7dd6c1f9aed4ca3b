package model

import "github.com/apptask/backend/internal/domain/entity"

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	Base
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	OrderNumber int64
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		Base:        m.Base.toEntity(),
		Name:        m.Name,
		Description: m.Description,
		OrderNumber: m.OrderNumber,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Base:        baseFromEntity(category.Base),
		Name:        category.Name,
		Description: category.Description,
		OrderNumber: category.OrderNumber,
	}
}
