package model

import (
	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// TransactionItemModel represents the transaction_items table in the database.
type TransactionItemModel struct {
	Base
	TransactionID int64 `gorm:"not null;index"`
	ProductID     int64 `gorm:"not null;index"`
	Count         int64
	Price         decimal.Decimal `gorm:"type:decimal(15,2)"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2)"`

	// Relationships (not loaded by default, use Preload)
	Transaction *TransactionModel `gorm:"foreignKey:TransactionID;references:ID"`
	Product     *ProductModel     `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for the TransactionItemModel.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// ToEntity converts a TransactionItemModel to a domain TransactionItem entity.
func (m *TransactionItemModel) ToEntity() *entity.TransactionItem {
	return &entity.TransactionItem{
		Base:          m.Base.toEntity(),
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Count:         m.Count,
		Price:         m.Price,
		TotalAmount:   m.TotalAmount,
	}
}

// TransactionItemFromEntity creates a TransactionItemModel from a domain TransactionItem entity.
func TransactionItemFromEntity(item *entity.TransactionItem) *TransactionItemModel {
	return &TransactionItemModel{
		Base:          baseFromEntity(item.Base),
		TransactionID: item.TransactionID,
		ProductID:     item.ProductID,
		Count:         item.Count,
		Price:         item.Price,
		TotalAmount:   item.TotalAmount,
	}
}

// PurchasedProductRow is the projection of the purchase report join.
type PurchasedProductRow struct {
	ID            int64
	Name          string
	Count         int64
	Price         decimal.Decimal
	TotalAmount   decimal.Decimal
	TransactionID int64
}

// ToEntity converts a PurchasedProductRow to a domain PurchasedProduct.
func (r *PurchasedProductRow) ToEntity() *entity.PurchasedProduct {
	return &entity.PurchasedProduct{
		ID:            r.ID,
		Name:          r.Name,
		Count:         r.Count,
		Price:         r.Price,
		TotalAmount:   r.TotalAmount,
		TransactionID: r.TransactionID,
	}
}
