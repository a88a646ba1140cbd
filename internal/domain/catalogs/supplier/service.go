package supplier

import (
	"context"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// Service provides business logic for the supplier catalog.
type Service struct {
	repo  Repository
	audit audit.Recorder
}

// NewService creates a new supplier service.
func NewService(repo Repository, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, audit: recorder}
}

// Create validates and persists a new supplier.
func (s *Service) Create(ctx context.Context, sup *Supplier) error {
	if err := sup.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(sup.ID) {
		sup.ID = id.New()
	}
	now := time.Now().UTC()
	sup.CreatedAt = now
	sup.UpdatedAt = now

	if err := s.repo.Create(ctx, sup); err != nil {
		return err
	}

	s.audit.Record(ctx, "supplier", sup.ID, audit.ActionCreate, map[string]any{
		"name": sup.Name, "location": sup.Location,
	})
	logger.Info(ctx, "supplier created", "supplier_id", sup.ID, "name", sup.Name)
	return nil
}

// Get retrieves a supplier by ID.
func (s *Service) Get(ctx context.Context, supplierID id.ID) (*Supplier, error) {
	return s.repo.GetByID(ctx, supplierID)
}

// List retrieves suppliers matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Supplier, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// Update validates and persists changes to a supplier.
func (s *Service) Update(ctx context.Context, sup *Supplier) error {
	if err := sup.Validate(ctx); err != nil {
		return err
	}
	sup.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, sup); err != nil {
		return err
	}
	s.audit.Record(ctx, "supplier", sup.ID, audit.ActionUpdate, map[string]any{
		"is_active": sup.IsActive, "agreement_end": sup.AgreementEnd,
	})
	return nil
}

// Delete removes a supplier.
func (s *Service) Delete(ctx context.Context, supplierID id.ID) error {
	if err := s.repo.Delete(ctx, supplierID); err != nil {
		return err
	}
	s.audit.Record(ctx, "supplier", supplierID, audit.ActionDelete, nil)
	logger.Info(ctx, "supplier deleted", "supplier_id", supplierID)
	return nil
}
