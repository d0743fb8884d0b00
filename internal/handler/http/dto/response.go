package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Pagination describes the page a list response carries.
type Pagination struct {
	TotalCount  int64 `json:"total_count"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
}

// NewPagination computes the page count for total items split into pageSize pages.
func NewPagination(total int64, page, pageSize int) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		TotalCount:  total,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  pages,
	}
}
