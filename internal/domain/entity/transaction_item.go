package entity

import "github.com/shopspring/decimal"

// TransactionItem is a single product line of a transaction.
type TransactionItem struct {
	Base
	TransactionID int64
	ProductID     int64
	Count         int64
	Price         decimal.Decimal
	TotalAmount   decimal.Decimal
}

// NewTransactionItem creates a new TransactionItem entity.
func NewTransactionItem(transactionID, productID, count int64, price, totalAmount decimal.Decimal) *TransactionItem {
	return &TransactionItem{
		Base:          newBase(),
		TransactionID: transactionID,
		ProductID:     productID,
		Count:         count,
		Price:         price,
		TotalAmount:   totalAmount,
	}
}

// PurchasedProduct is a product line joined with its transaction, used for purchase reports.
type PurchasedProduct struct {
	ID            int64 // Product ID
	Name          string
	Count         int64
	Price         decimal.Decimal
	TotalAmount   decimal.Decimal
	TransactionID int64
}
