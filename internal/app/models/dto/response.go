package dto

import "time"

// APIResponse is the success envelope returned by every endpoint
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// PaginatedResponse is the success envelope for list endpoints
type PaginatedResponse struct {
	Success    bool           `json:"success" example:"true"`
	Data       interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
	Timestamp  time.Time      `json:"timestamp"`
}

// NewPaginatedResponse wraps one page of items in a list envelope
func NewPaginatedResponse(items interface{}, pagination PaginationInfo) PaginatedResponse {
	return PaginatedResponse{
		Success:    true,
		Data:       items,
		Pagination: pagination,
		Timestamp:  time.Now(),
	}
}
