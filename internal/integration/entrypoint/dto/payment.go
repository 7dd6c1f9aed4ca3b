package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
)

// CreatePaymentRequest represents the request body for a balance top-up.
type CreatePaymentRequest struct {
	UserID *int64           `json:"userId" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// UpdatePaymentRequest represents the request body for payment update.
// Only the amount can change.
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// PaymentResponse represents a single payment transaction in API responses.
type PaymentResponse struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Amount *string   `json:"amount"`
	Date   time.Time `json:"date"`
}

// ToPaymentResponse converts a domain UserPaymentTransaction entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.UserPaymentTransaction) PaymentResponse {
	var amount *string
	if p.Amount != nil {
		s := money(*p.Amount)
		amount = &s
	}

	return PaymentResponse{
		ID:     p.ID,
		UserID: p.UserID,
		Amount: amount,
		Date:   p.Date,
	}
}

// ToPaymentResponses converts a payment ledger.
func ToPaymentResponses(payments []*entity.UserPaymentTransaction) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}
