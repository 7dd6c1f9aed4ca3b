package entity

// Product represents a stocked item that belongs to a category.
type Product struct {
	Base
	Name       string
	Count      int64
	CategoryID int64
}

// NewProduct creates a new Product entity.
func NewProduct(name string, count int64, categoryID int64) *Product {
	return &Product{
		Base:       newBase(),
		Name:       name,
		Count:      count,
		CategoryID: categoryID,
	}
}
