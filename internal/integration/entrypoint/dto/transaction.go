package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	UserID      *int64           `json:"userId" binding:"required"`
	TotalAmount *decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	TotalAmount string    `json:"totalAmount"`
	Date        time.Time `json:"date"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		TotalAmount: money(tx.TotalAmount),
		Date:        tx.Date,
	}
}
