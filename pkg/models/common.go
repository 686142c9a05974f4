package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Pagination represents common list pagination parameters
type Pagination struct {
	Page    int `query:"page" validate:"omitempty,min=1"`
	PerPage int `query:"per_page" validate:"omitempty,min=1,max=100"`
}

// Limit returns the page size, defaulting to 20
func (p Pagination) Limit() int {
	if p.PerPage <= 0 {
		return 20
	}
	return p.PerPage
}

// Offset returns the row offset for the requested page
func (p Pagination) Offset() int {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	return (page - 1) * p.Limit()
}
