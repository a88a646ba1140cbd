package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Products ---

// CreateProductRequest carries new-product data.
type CreateProductRequest struct {
	SKU        string          `json:"sku" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"minStock"`
	IsActive   *bool           `json:"isActive"`
	SupplierID string          `json:"supplierId"`
}

// UpdateProductRequest carries product updates. All fields are
// optional; absent fields keep their current value.
type UpdateProductRequest struct {
	SKU        *string          `json:"sku"`
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Price      *decimal.Decimal `json:"price"`
	Stock      *int             `json:"stock"`
	MinStock   *int             `json:"minStock"`
	IsActive   *bool            `json:"isActive"`
	SupplierID *string          `json:"supplierId"`
}

// ProductListRequest narrows product listings.
type ProductListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	IsActive *bool  `form:"isActive"`
	LowStock bool   `form:"lowStock"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// --- Suppliers ---

// CreateSupplierRequest carries new-supplier data.
type CreateSupplierRequest struct {
	Name           string    `json:"name" binding:"required"`
	Location       string    `json:"location"`
	IsActive       *bool     `json:"isActive"`
	AgreementStart time.Time `json:"agreementStartDate"`
	AgreementEnd   time.Time `json:"agreementEndDate"`
}

// UpdateSupplierRequest carries supplier updates.
type UpdateSupplierRequest struct {
	Name           *string    `json:"name"`
	Location       *string    `json:"location"`
	IsActive       *bool      `json:"isActive"`
	AgreementStart *time.Time `json:"agreementStartDate"`
	AgreementEnd   *time.Time `json:"agreementEndDate"`
}

// SupplierListRequest narrows supplier listings.
type SupplierListRequest struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	IsActive *bool  `form:"isActive"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
