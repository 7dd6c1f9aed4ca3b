package entity

// Category groups products and carries a display order.
type Category struct {
	Base
	Name        string
	Description *string // Optional
	OrderNumber int64
}

// NewCategory creates a new Category entity.
func NewCategory(name string, description *string, orderNumber int64) *Category {
	return &Category{
		Base:        newBase(),
		Name:        name,
		Description: description,
		OrderNumber: orderNumber,
	}
}
