package supplier

import (
	"context"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// ListFilter narrows supplier listings.
type ListFilter struct {
	Search   string
	Location string
	IsActive *bool

	Limit  int
	Offset int
}

// Repository defines the interface for supplier persistence.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error)
	List(ctx context.Context, filter ListFilter) ([]Supplier, int, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, supplierID id.ID) error
}
