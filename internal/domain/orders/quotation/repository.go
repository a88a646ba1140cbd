package quotation

import (
	"context"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// ListFilter narrows quotation listings.
type ListFilter struct {
	Status   Status
	Category string

	Limit  int
	Offset int
}

// Repository defines the interface for quotation persistence.
type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	GetByID(ctx context.Context, quotationID id.ID) (*Quotation, error)
	List(ctx context.Context, filter ListFilter) ([]Quotation, int, error)
	Update(ctx context.Context, q *Quotation) error
	Delete(ctx context.Context, quotationID id.ID) error
}
