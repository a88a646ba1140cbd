// Package quotation provides the quotation order document.
package quotation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Status defines the quotation lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// Statuses lists all valid quotation statuses.
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusRejected}
}

// Quotation represents a customer price quotation request.
type Quotation struct {
	ID id.ID `db:"id" json:"id"`

	Status Status `db:"status" json:"status"`

	// ProductCategory groups quotations for reporting
	ProductCategory string `db:"product_category" json:"productCategory"`

	// TotalAmount is the quoted value
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewQuotation creates a pending quotation.
func NewQuotation(category string, amount decimal.Decimal) *Quotation {
	now := time.Now().UTC()
	return &Quotation{
		ID:              id.New(),
		Status:          StatusPending,
		ProductCategory: category,
		TotalAmount:     amount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate checks invariants before persistence.
func (q *Quotation) Validate(ctx context.Context) error {
	if !isValidStatus(q.Status) {
		return apperror.NewValidation("invalid quotation status").
			WithDetail("field", "status").
			WithDetail("value", string(q.Status))
	}
	if q.TotalAmount.IsNegative() {
		return apperror.NewValidation("totalAmount cannot be negative").
			WithDetail("field", "totalAmount")
	}
	return nil
}

// IsClosed reports whether the quotation reached a terminal status.
func (q *Quotation) IsClosed() bool {
	return q.Status == StatusCompleted || q.Status == StatusRejected
}

// ResponseTime returns the elapsed time between creation and last update,
// used as a proxy for processing latency.
func (q *Quotation) ResponseTime() time.Duration {
	return q.UpdatedAt.Sub(q.CreatedAt)
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}
