package reports

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOptionalMarshalAbsent(t *testing.T) {
	var o Optional[RevenueStats]

	body, err := json.Marshal(o)
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}

func TestOptionalMarshalPresent(t *testing.T) {
	o := Some(RevenueStats{TotalRevenue: decimal.RequireFromString("450")})

	body, err := json.Marshal(o)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"totalRevenue":"450"`)
}

func TestOptionalUnmarshal(t *testing.T) {
	var absent Optional[ResponseTimeStats]
	assert.NoError(t, json.Unmarshal([]byte("{}"), &absent))
	assert.False(t, absent.Valid)

	var present Optional[ResponseTimeStats]
	assert.NoError(t, json.Unmarshal([]byte(`{"avgResponseTime":1200,"maxResponseTime":1500,"minResponseTime":900}`), &present))
	assert.True(t, present.Valid)
	assert.Equal(t, float64(1200), present.Value.AvgResponseTimeMs)
}
