package quotation

import (
	"context"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// Service provides business logic for quotations.
type Service struct {
	repo  Repository
	audit audit.Recorder
}

// NewService creates a new quotation service.
func NewService(repo Repository, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, audit: recorder}
}

// Create validates and persists a new quotation.
func (s *Service) Create(ctx context.Context, q *Quotation) error {
	if q.Status == "" {
		q.Status = StatusPending
	}
	if err := q.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(q.ID) {
		q.ID = id.New()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	if err := s.repo.Create(ctx, q); err != nil {
		return err
	}

	s.audit.Record(ctx, "quotation", q.ID, audit.ActionCreate, map[string]any{
		"category": q.ProductCategory, "total_amount": q.TotalAmount,
	})
	logger.Info(ctx, "quotation created", "quotation_id", q.ID)
	return nil
}

// Get retrieves a quotation by ID.
func (s *Service) Get(ctx context.Context, quotationID id.ID) (*Quotation, error) {
	return s.repo.GetByID(ctx, quotationID)
}

// List retrieves quotations matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Quotation, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus transitions a quotation to a new status.
func (s *Service) UpdateStatus(ctx context.Context, quotationID id.ID, status Status) (*Quotation, error) {
	q, err := s.repo.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	q.Status = status
	if err := q.Validate(ctx); err != nil {
		return nil, err
	}
	q.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, "quotation", q.ID, audit.ActionUpdate, map[string]any{
		"status": string(status),
	})
	return q, nil
}

// Delete removes a quotation.
func (s *Service) Delete(ctx context.Context, quotationID id.ID) error {
	if err := s.repo.Delete(ctx, quotationID); err != nil {
		return err
	}
	s.audit.Record(ctx, "quotation", quotationID, audit.ActionDelete, nil)
	return nil
}
