// Package supplier provides the supplier catalog.
package supplier

import (
	"context"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Supplier represents a vendor with a supply agreement.
type Supplier struct {
	ID id.ID `db:"id" json:"id"`

	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location"`
	IsActive bool   `db:"is_active" json:"isActive"`

	// AgreementStart and AgreementEnd bound the supply agreement.
	AgreementStart time.Time `db:"agreement_start" json:"agreementStartDate"`
	AgreementEnd   time.Time `db:"agreement_end" json:"agreementEndDate"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(name, location string, start, end time.Time) *Supplier {
	now := time.Now().UTC()
	return &Supplier{
		ID:             id.New(),
		Name:           name,
		Location:       location,
		IsActive:       true,
		AgreementStart: start,
		AgreementEnd:   end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate checks invariants before persistence.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !s.AgreementEnd.IsZero() && s.AgreementEnd.Before(s.AgreementStart) {
		return apperror.NewValidation("agreement end date must not precede start date").
			WithDetail("field", "agreementEndDate")
	}
	return nil
}

// AgreementExpired reports whether the agreement ended before now.
func (s *Supplier) AgreementExpired(now time.Time) bool {
	return s.AgreementEnd.Before(now)
}
