package reservation

import (
	"context"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// Service provides business logic for reservations.
type Service struct {
	repo  Repository
	audit audit.Recorder
}

// NewService creates a new reservation service.
func NewService(repo Repository, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, audit: recorder}
}

// Create validates and persists a new reservation.
func (s *Service) Create(ctx context.Context, r *Reservation) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	if err := r.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.ID) {
		r.ID = id.New()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.repo.Create(ctx, r); err != nil {
		return err
	}

	s.audit.Record(ctx, "reservation", r.ID, audit.ActionCreate, map[string]any{
		"email": r.Email,
	})
	logger.Info(ctx, "reservation created", "reservation_id", r.ID)
	return nil
}

// Get retrieves a reservation by ID.
func (s *Service) Get(ctx context.Context, reservationID id.ID) (*Reservation, error) {
	return s.repo.GetByID(ctx, reservationID)
}

// List retrieves reservations matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Reservation, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus transitions a reservation to a new status.
func (s *Service) UpdateStatus(ctx context.Context, reservationID id.ID, status Status) (*Reservation, error) {
	r, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	r.Status = status
	if err := r.Validate(ctx); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "reservation", r.ID, audit.ActionUpdate, map[string]any{
		"status": string(status),
	})
	return r, nil
}

// Delete removes a reservation.
func (s *Service) Delete(ctx context.Context, reservationID id.ID) error {
	if err := s.repo.Delete(ctx, reservationID); err != nil {
		return err
	}
	s.audit.Record(ctx, "reservation", reservationID, audit.ActionDelete, nil)
	return nil
}
