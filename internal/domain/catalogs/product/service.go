package product

import (
	"context"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// Service provides business logic for the product catalog.
type Service struct {
	repo  Repository
	audit audit.Recorder
}

// NewService creates a new product service.
func NewService(repo Repository, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, audit: recorder}
}

// Create validates and persists a new product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.GetBySKU(ctx, p.SKU); err == nil && existing != nil {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	if id.IsNil(p.ID) {
		p.ID = id.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.audit.Record(ctx, "product", p.ID, audit.ActionCreate, map[string]any{
		"sku": p.SKU, "name": p.Name, "category": p.Category,
	})
	logger.Info(ctx, "product created", "product_id", p.ID, "sku", p.SKU)
	return nil
}

// Get retrieves a product by ID.
func (s *Service) Get(ctx context.Context, productID id.ID) (*Product, error) {
	return s.repo.GetByID(ctx, productID)
}

// List retrieves products matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Product, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// Update validates and persists changes to a product.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.GetBySKU(ctx, p.SKU); err == nil && existing != nil && existing.ID != p.ID {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.audit.Record(ctx, "product", p.ID, audit.ActionUpdate, map[string]any{
		"stock": p.Stock, "price": p.Price, "is_active": p.IsActive,
	})
	return nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	s.audit.Record(ctx, "product", productID, audit.ActionDelete, nil)
	logger.Info(ctx, "product deleted", "product_id", productID)
	return nil
}
