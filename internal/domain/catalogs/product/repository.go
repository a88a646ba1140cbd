package product

import (
	"context"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// ListFilter narrows product listings.
type ListFilter struct {
	Search   string
	Category string
	IsActive *bool
	LowStock bool

	Limit  int
	Offset int
}

// Repository defines the interface for product persistence.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID id.ID) error
}
