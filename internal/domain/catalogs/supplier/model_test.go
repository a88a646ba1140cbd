package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	now := time.Now().UTC()

	s := NewSupplier("Acme Distribution", "Colombo", now, now.AddDate(1, 0, 0))
	assert.NoError(t, s.Validate(context.Background()))

	unnamed := NewSupplier("", "Colombo", now, now.AddDate(1, 0, 0))
	assert.Error(t, unnamed.Validate(context.Background()))

	inverted := NewSupplier("Acme Distribution", "Colombo", now, now.AddDate(0, 0, -1))
	assert.Error(t, inverted.Validate(context.Background()))
}

func TestAgreementExpired(t *testing.T) {
	now := time.Now().UTC()

	active := NewSupplier("Acme Distribution", "Colombo", now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0))
	assert.False(t, active.AgreementExpired(now))

	expired := NewSupplier("Lanka Traders", "Kandy", now.AddDate(-2, 0, 0), now.AddDate(-1, 0, 0))
	assert.True(t, expired.AgreementExpired(now))
}
