package model

import "github.com/apptask/backend/internal/domain/entity"

// ProductModel represents the products table in the database.
type ProductModel struct {
	Base
	Name       string `gorm:"type:varchar(255);not null"`
	Count      int64
	CategoryID int64 `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		Base:       m.Base.toEntity(),
		Name:       m.Name,
		Count:      m.Count,
		CategoryID: m.CategoryID,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		Base:       baseFromEntity(product.Base),
		Name:       product.Name,
		Count:      product.Count,
		CategoryID: product.CategoryID,
	}
}
