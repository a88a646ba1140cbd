package quotation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewQuotation(t *testing.T) {
	q := NewQuotation("Hardware", decimal.RequireFromString("300"))

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, StatusPending, q.Status)
	assert.Equal(t, q.CreatedAt, q.UpdatedAt)
}

func TestValidate(t *testing.T) {
	q := NewQuotation("Hardware", decimal.RequireFromString("300"))
	assert.NoError(t, q.Validate(context.Background()))

	q.Status = Status("shipped")
	assert.Error(t, q.Validate(context.Background()))

	negative := NewQuotation("Hardware", decimal.RequireFromString("-10"))
	assert.Error(t, negative.Validate(context.Background()))
}

func TestIsClosed(t *testing.T) {
	q := NewQuotation("Hardware", decimal.RequireFromString("300"))
	assert.False(t, q.IsClosed())

	q.Status = StatusProcessing
	assert.False(t, q.IsClosed())

	q.Status = StatusCompleted
	assert.True(t, q.IsClosed())

	q.Status = StatusRejected
	assert.True(t, q.IsClosed())
}

func TestResponseTime(t *testing.T) {
	q := NewQuotation("Hardware", decimal.RequireFromString("300"))
	q.UpdatedAt = q.CreatedAt.Add(90 * time.Minute)

	assert.Equal(t, 90*time.Minute, q.ResponseTime())
}
