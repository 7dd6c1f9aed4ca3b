package entity

// SortOrder is a single ordering instruction for a list query.
type SortOrder struct {
	Property   string
	Descending bool
}

// PageRequest describes a zero-based page of a list query.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of a list query together with total-count metadata.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page from its content and the total number of matching rows.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:       content,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// MapPage converts the content of a page while keeping its metadata.
func MapPage[T, R any](page *Page[T], fn func(T) R) *Page[R] {
	content := make([]R, len(page.Content))
	for i, item := range page.Content {
		content[i] = fn(item)
	}

	return &Page[R]{
		Content:       content,
		Number:        page.Number,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
