// Package reservation provides the reservation order document.
package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Status defines the reservation lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists all valid reservation statuses.
func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

// Reservation represents a customer reservation request.
type Reservation struct {
	ID id.ID `db:"id" json:"id"`

	Status Status `db:"status" json:"status"`

	// Email identifies the reserving customer
	Email string `db:"email" json:"email"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewReservation creates a pending reservation.
func NewReservation(email string) *Reservation {
	now := time.Now().UTC()
	return &Reservation{
		ID:        id.New(),
		Status:    StatusPending,
		Email:     strings.ToLower(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks invariants before persistence.
func (r *Reservation) Validate(ctx context.Context) error {
	if !isValidStatus(r.Status) {
		return apperror.NewValidation("invalid reservation status").
			WithDetail("field", "status").
			WithDetail("value", string(r.Status))
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return apperror.NewValidation("a valid email is required").
			WithDetail("field", "email")
	}
	return nil
}

// IsResolved reports whether the reservation was handled (anything past pending).
func (r *Reservation) IsResolved() bool {
	return r.Status == StatusConfirmed || r.Status == StatusCompleted || r.Status == StatusCancelled
}

// ResponseTime returns the elapsed time between creation and last update.
func (r *Reservation) ResponseTime() time.Duration {
	return r.UpdatedAt.Sub(r.CreatedAt)
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
