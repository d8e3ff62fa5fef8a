// Package dto contains request and response contracts for the API endpoints
package dto

// APIResponse represents the standard API response envelope.
// Error is only populated when Success is false; an empty result page is a
// successful response, never an error.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PaginationInfo contains pagination metadata for a result page
type PaginationInfo struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasMore     bool  `json:"hasMore"`
}
