package dto

import (
	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// CreateTransactionItemRequest represents the request body for transaction item creation.
type CreateTransactionItemRequest struct {
	TransactionID *int64           `json:"transactionId" binding:"required"`
	ProductID     *int64           `json:"productId" binding:"required"`
	Count         int64            `json:"count" binding:"gte=0"`
	Price         *decimal.Decimal `json:"price" binding:"required"`
	TotalAmount   *decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateTransactionItemRequest represents the request body for transaction item update.
type UpdateTransactionItemRequest struct {
	Count       *int64           `json:"count,omitempty" binding:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

// TransactionItemResponse represents a single transaction item in API responses.
type TransactionItemResponse struct {
	ID            int64  `json:"id"`
	TransactionID int64  `json:"transactionId"`
	ProductID     int64  `json:"productId"`
	Count         int64  `json:"count"`
	Price         string `json:"price"`
	TotalAmount   string `json:"totalAmount"`
}

// ToTransactionItemResponse converts a domain TransactionItem entity to a TransactionItemResponse DTO.
func ToTransactionItemResponse(item *entity.TransactionItem) TransactionItemResponse {
	return TransactionItemResponse{
		ID:            item.ID,
		TransactionID: item.TransactionID,
		ProductID:     item.ProductID,
		Count:         item.Count,
		Price:         money(item.Price),
		TotalAmount:   money(item.TotalAmount),
	}
}
