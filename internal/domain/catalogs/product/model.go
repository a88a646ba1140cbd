// Package product provides the product catalog.
package product

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Product represents a stocked item offered by the store.
type Product struct {
	ID id.ID `db:"id" json:"id"`

	// SKU is the unique stock keeping unit code
	SKU string `db:"sku" json:"sku"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Category groups products for reporting
	Category string `db:"category" json:"category"`

	// Price is the unit price
	Price decimal.Decimal `db:"price" json:"price"`

	// Stock is the quantity on hand
	Stock int `db:"stock" json:"stock"`

	// MinStock is the reorder threshold
	MinStock int `db:"min_stock" json:"minStock"`

	// IsActive marks products available for sale
	IsActive bool `db:"is_active" json:"isActive"`

	// SupplierID references the supplying vendor
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(sku, name, category string, price decimal.Decimal) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:        id.New(),
		SKU:       sku,
		Name:      name,
		Category:  category,
		Price:     price,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks invariants before persistence.
func (p *Product) Validate(ctx context.Context) error {
	if p.SKU == "" {
		return apperror.NewValidation("sku is required").WithDetail("field", "sku")
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").WithDetail("field", "price")
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").WithDetail("field", "stock")
	}
	if p.MinStock < 0 {
		return apperror.NewValidation("minStock cannot be negative").WithDetail("field", "minStock")
	}
	return nil
}

// IsLowStock reports whether stock is at or below the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock reports whether the product has no stock at all.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// StockValue returns price multiplied by quantity on hand.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
