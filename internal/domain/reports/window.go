package reports

import (
	"fmt"
	"time"
)

const (
	dailySeriesDays     = 7
	monthlySeriesCount  = 6
	topListLimit        = 10
	topActiveUsersLimit = 5
)

// periodStart returns the start of a trailing window of the given
// number of days. days == 0 yields now, so "recent" counters go to zero.
func periodStart(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// dayStart truncates to UTC midnight.
func dayStart(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// dailySeriesStart returns the oldest instant covered by the daily series.
func dailySeriesStart(now time.Time) time.Time {
	return dayStart(now).AddDate(0, 0, -(dailySeriesDays - 1))
}

// monthlySeriesStart returns the oldest instant covered by the monthly series.
func monthlySeriesStart(now time.Time) time.Time {
	year, month, _ := now.UTC().Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(monthlySeriesCount - 1), 0)
}

// dailySeries zero-fills grouped day rows into a fixed-length series
// ending today, oldest first.
func dailySeries(now time.Time, rows []DayCount) []DailyPoint {
	byDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC().Format("2006-01-02")] += r.Count
	}

	points := make([]DailyPoint, 0, dailySeriesDays)
	for i := dailySeriesDays - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, DailyPoint{Date: date, Count: byDay[date]})
	}
	return points
}

// monthKeys returns the trailing calendar months ending with the
// current one, oldest first, keyed as YYYY-MM.
func monthKeys(now time.Time) []string {
	keys := make([]string, 0, monthlySeriesCount)
	year, month, _ := now.UTC().Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i := monthlySeriesCount - 1; i >= 0; i-- {
		keys = append(keys, first.AddDate(0, -i, 0).Format("2006-01"))
	}
	return keys
}

// monthlyCountSeries zero-fills grouped month rows into a fixed-length
// series ending with the current month.
func monthlyCountSeries(now time.Time, rows []MonthCount) []MonthlyPoint {
	byMonth := make(map[string]int64, len(rows))
	for _, r := range rows {
		byMonth[r.Month] += r.Count
	}

	keys := monthKeys(now)
	points := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, MonthlyPoint{Month: key, Count: byMonth[key]})
	}
	return points
}

// quotationMonthlySeries merges per-month counts and completed revenue
// into a single zero-filled series ending with the current month.
func quotationMonthlySeries(now time.Time, counts []MonthCount, revenue []MonthValue) []QuotationMonthlyPoint {
	countByMonth := make(map[string]int64, len(counts))
	for _, r := range counts {
		countByMonth[r.Month] += r.Count
	}
	revenueByMonth := make(map[string]MonthValue, len(revenue))
	for _, r := range revenue {
		revenueByMonth[r.Month] = r
	}

	keys := monthKeys(now)
	points := make([]QuotationMonthlyPoint, 0, len(keys))
	for _, key := range keys {
		p := QuotationMonthlyPoint{Month: key, Count: countByMonth[key]}
		if r, ok := revenueByMonth[key]; ok {
			p.Revenue = r.Value
		}
		points = append(points, p)
	}
	return points
}

// loginBucketBounds are the inclusive lower bounds of the login-count
// histogram buckets. The last bucket is open-ended.
var loginBucketBounds = []int64{0, 1, 5, 10, 20, 50, 100}

func loginBucketLabel(i int) string {
	lo := loginBucketBounds[i]
	if i == len(loginBucketBounds)-1 {
		return fmt.Sprintf("%d+", lo)
	}
	hi := loginBucketBounds[i+1] - 1
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

// loginHistogram buckets users by login count. Every bucket is present
// even when empty, and every user lands in exactly one bucket.
func loginHistogram(users []UserActivity) []LoginBucket {
	buckets := make([]LoginBucket, len(loginBucketBounds))
	for i, lo := range loginBucketBounds {
		buckets[i] = LoginBucket{
			Label: loginBucketLabel(i),
			Min:   lo,
			Users: []UserActivity{},
		}
	}

	for _, u := range users {
		i := len(loginBucketBounds) - 1
		for ; i > 0; i-- {
			if u.LoginCount >= loginBucketBounds[i] {
				break
			}
		}
		buckets[i].Count++
		buckets[i].Users = append(buckets[i].Users, u)
	}
	return buckets
}
