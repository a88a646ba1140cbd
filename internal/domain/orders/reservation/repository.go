package reservation

import (
	"context"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// ListFilter narrows reservation listings.
type ListFilter struct {
	Status Status
	Email  string

	Limit  int
	Offset int
}

// Repository defines the interface for reservation persistence.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, reservationID id.ID) (*Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]Reservation, int, error)
	Update(ctx context.Context, r *Reservation) error
	Delete(ctx context.Context, reservationID id.ID) error
}
