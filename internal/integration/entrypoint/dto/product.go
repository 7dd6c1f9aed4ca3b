package dto

import "github.com/apptask/backend/internal/domain/entity"

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Count      int64  `json:"count" binding:"gte=0"`
	CategoryID *int64 `json:"categoryId" binding:"required"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Count *int64  `json:"count,omitempty" binding:"omitempty,gte=0"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
	CategoryID int64  `json:"categoryId"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Count:      p.Count,
		CategoryID: p.CategoryID,
	}
}
