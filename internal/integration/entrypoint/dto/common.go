package dto

import (
	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/usecase/trash"
	"github.com/apptask/backend/internal/domain/entity"
)

// IDResponse is returned by create endpoints.
type IDResponse struct {
	ID int64 `json:"id"`
}

// PageResponse represents one page of a list endpoint.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ToPageResponse converts a domain page, mapping every element with fn.
func ToPageResponse[E, T any](page *entity.Page[E], fn func(E) T) PageResponse[T] {
	mapped := entity.MapPage(page, fn)
	return PageResponse[T]{
		Content:       mapped.Content,
		Page:          mapped.Number,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
	}
}

// BulkDeleteRequest represents the request body for bulk soft-delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse reports which ids were trashed and which were unknown.
type BulkDeleteResponse struct {
	Deleted []int64 `json:"deleted"`
	Missing []int64 `json:"missing"`
}

// ToBulkDeleteResponse converts the bulk delete output.
func ToBulkDeleteResponse(output *trash.BulkDeleteOutput) BulkDeleteResponse {
	return BulkDeleteResponse{
		Deleted: output.Deleted,
		Missing: output.Missing,
	}
}

// PurchasedProductResponse is a product line of a purchase report.
type PurchasedProductResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Count         int64  `json:"count"`
	Price         string `json:"price"`
	TotalAmount   string `json:"totalAmount"`
	TransactionID int64  `json:"transactionId"`
}

// ToPurchasedProductResponses converts purchase report rows.
func ToPurchasedProductResponses(products []*entity.PurchasedProduct) []PurchasedProductResponse {
	responses := make([]PurchasedProductResponse, len(products))
	for i, p := range products {
		responses[i] = PurchasedProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Count:         p.Count,
			Price:         money(p.Price),
			TotalAmount:   money(p.TotalAmount),
			TransactionID: p.TransactionID,
		}
	}
	return responses
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
