// Package dto provides request and response shapes for the HTTP API.
// Successful responses are wrapped in an envelope; error bodies are
// produced by the error middleware.
package dto

// Envelope wraps a successful response payload.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Success builds the standard success envelope.
func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// IDResponse carries the identifier of a created entity.
type IDResponse struct {
	ID string `json:"id"`
}

// ListData wraps list results with pagination metadata.
type ListData[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
}

// NewListData builds a ListData, normalising a nil slice to empty.
func NewListData[T any](items []T, total, limit, offset int) ListData[T] {
	if items == nil {
		items = []T{}
	}
	return ListData[T]{Items: items, TotalCount: total, Limit: limit, Offset: offset}
}
