package dto

import (
	"github.com/shopspring/decimal"
)

// --- Quotations ---

// CreateQuotationRequest carries new-quotation data.
type CreateQuotationRequest struct {
	ProductCategory string          `json:"productCategory"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// UpdateStatusRequest carries a status transition for an order document.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// QuotationListRequest narrows quotation listings.
type QuotationListRequest struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// --- Reservations ---

// CreateReservationRequest carries new-reservation data.
type CreateReservationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ReservationListRequest narrows reservation listings.
type ReservationListRequest struct {
	Status string `form:"status"`
	Email  string `form:"email"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
