package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

func TestPeriodStart(t *testing.T) {
	assert.Equal(t, time.Date(2026, 7, 25, 10, 30, 0, 0, time.UTC), periodStart(testNow, 30))
	assert.Equal(t, testNow, periodStart(testNow, 0))
}

func TestDailySeries(t *testing.T) {
	rows := []DayCount{
		{Day: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Count: 3},
		{Day: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), Count: 1},
		// Outside the window, must be ignored.
		{Day: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Count: 99},
	}

	points := dailySeries(testNow, rows)

	assert.Len(t, points, 7)
	assert.Equal(t, "2026-08-18", points[0].Date)
	assert.Equal(t, "2026-08-24", points[6].Date)

	byDate := make(map[string]int64)
	for _, p := range points {
		byDate[p.Date] = p.Count
	}
	assert.Equal(t, int64(3), byDate["2026-08-20"])
	assert.Equal(t, int64(1), byDate["2026-08-24"])
	assert.Equal(t, int64(0), byDate["2026-08-19"])
}

func TestDailySeriesEmpty(t *testing.T) {
	points := dailySeries(testNow, nil)

	assert.Len(t, points, 7)
	for _, p := range points {
		assert.Zero(t, p.Count)
	}
}

func TestMonthKeys(t *testing.T) {
	keys := monthKeys(testNow)

	assert.Equal(t, []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}, keys)
}

func TestMonthKeysYearBoundary(t *testing.T) {
	keys := monthKeys(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}, keys)
}

func TestMonthlyCountSeries(t *testing.T) {
	rows := []MonthCount{
		{Month: "2026-06", Count: 4},
		{Month: "2026-08", Count: 2},
	}

	points := monthlyCountSeries(testNow, rows)

	assert.Len(t, points, 6)
	assert.Equal(t, MonthlyPoint{Month: "2026-03", Count: 0}, points[0])
	assert.Equal(t, MonthlyPoint{Month: "2026-06", Count: 4}, points[3])
	assert.Equal(t, MonthlyPoint{Month: "2026-08", Count: 2}, points[5])
}

func TestQuotationMonthlySeries(t *testing.T) {
	counts := []MonthCount{
		{Month: "2026-07", Count: 3},
		{Month: "2026-08", Count: 1},
	}
	revenue := []MonthValue{
		{Month: "2026-07", Value: decimal.RequireFromString("450")},
	}

	points := quotationMonthlySeries(testNow, counts, revenue)

	assert.Len(t, points, 6)
	july := points[4]
	assert.Equal(t, "2026-07", july.Month)
	assert.Equal(t, int64(3), july.Count)
	assert.True(t, july.Revenue.Equal(decimal.RequireFromString("450")))

	august := points[5]
	assert.Equal(t, int64(1), august.Count)
	assert.True(t, august.Revenue.IsZero())
}

func TestLoginBucketLabels(t *testing.T) {
	var labels []string
	for i := range loginBucketBounds {
		labels = append(labels, loginBucketLabel(i))
	}
	assert.Equal(t, []string{"0", "1-4", "5-9", "10-19", "20-49", "50-99", "100+"}, labels)
}

func TestLoginHistogram(t *testing.T) {
	users := []UserActivity{
		{Email: "a@x.com", LoginCount: 0},
		{Email: "b@x.com", LoginCount: 1},
		{Email: "c@x.com", LoginCount: 4},
		{Email: "d@x.com", LoginCount: 5},
		{Email: "e@x.com", LoginCount: 19},
		{Email: "f@x.com", LoginCount: 20},
		{Email: "g@x.com", LoginCount: 99},
		{Email: "h@x.com", LoginCount: 100},
		{Email: "i@x.com", LoginCount: 250},
	}

	buckets := loginHistogram(users)

	assert.Len(t, buckets, 7)

	counts := make(map[string]int64)
	var total int64
	for _, b := range buckets {
		counts[b.Label] = b.Count
		total += b.Count
		assert.NotNil(t, b.Users)
		assert.Len(t, b.Users, int(b.Count))
	}

	// Every user lands in exactly one bucket.
	assert.Equal(t, int64(len(users)), total)

	assert.Equal(t, int64(1), counts["0"])
	assert.Equal(t, int64(2), counts["1-4"])
	assert.Equal(t, int64(1), counts["5-9"])
	assert.Equal(t, int64(1), counts["10-19"])
	assert.Equal(t, int64(1), counts["20-49"])
	assert.Equal(t, int64(1), counts["50-99"])
	assert.Equal(t, int64(2), counts["100+"])
}

func TestLoginHistogramEmpty(t *testing.T) {
	buckets := loginHistogram(nil)

	assert.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Empty(t, b.Users)
	}
}
