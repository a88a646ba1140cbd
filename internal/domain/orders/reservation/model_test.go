package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReservation(t *testing.T) {
	r := NewReservation("Alice@Example.com")

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, "alice@example.com", r.Email)
}

func TestValidate(t *testing.T) {
	r := NewReservation("alice@example.com")
	assert.NoError(t, r.Validate(context.Background()))

	r.Status = Status("expired")
	assert.Error(t, r.Validate(context.Background()))

	noEmail := NewReservation("")
	assert.Error(t, noEmail.Validate(context.Background()))

	badEmail := NewReservation("not-an-email")
	assert.Error(t, badEmail.Validate(context.Background()))
}

func TestIsResolved(t *testing.T) {
	r := NewReservation("alice@example.com")
	assert.False(t, r.IsResolved())

	for _, s := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled} {
		r.Status = s
		assert.True(t, r.IsResolved())
	}
}
