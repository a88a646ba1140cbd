package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	p := NewProduct("SKU-1001", "Steel Bolt M8", "Hardware", decimal.RequireFromString("2.50"))

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.IsActive)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestValidate(t *testing.T) {
	p := NewProduct("SKU-1001", "Steel Bolt M8", "Hardware", decimal.RequireFromString("2.50"))
	assert.NoError(t, p.Validate(context.Background()))

	missing := NewProduct("", "Steel Bolt M8", "Hardware", decimal.Zero)
	assert.Error(t, missing.Validate(context.Background()))

	unnamed := NewProduct("SKU-1001", "", "Hardware", decimal.Zero)
	assert.Error(t, unnamed.Validate(context.Background()))

	negative := NewProduct("SKU-1001", "Steel Bolt M8", "Hardware", decimal.RequireFromString("-1"))
	assert.Error(t, negative.Validate(context.Background()))

	badStock := NewProduct("SKU-1001", "Steel Bolt M8", "Hardware", decimal.Zero)
	badStock.Stock = -1
	assert.Error(t, badStock.Validate(context.Background()))
}

func TestStockFlags(t *testing.T) {
	p := NewProduct("SKU-1002", "Steel Nut M8", "Hardware", decimal.RequireFromString("1.20"))
	p.MinStock = 50

	p.Stock = 30
	assert.True(t, p.IsLowStock())
	assert.False(t, p.IsOutOfStock())

	p.Stock = 0
	assert.True(t, p.IsOutOfStock())

	p.Stock = 51
	assert.False(t, p.IsLowStock())
	assert.False(t, p.IsOutOfStock())
}

func TestStockValue(t *testing.T) {
	p := NewProduct("SKU-1001", "Steel Bolt M8", "Hardware", decimal.RequireFromString("2.50"))
	p.Stock = 500

	assert.True(t, p.StockValue().Equal(decimal.RequireFromString("1250")))
}
