package reports

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
)

type stubProducts struct {
	counts     ProductCounts
	countsErr  error
	categories []CategoryStat
	stockValue *StockValueStats
	bySupplier []SupplierProductStat
	lowStock   []ProductSummary
	outOfStock []ProductSummary

	countsSince     time.Time
	groupActiveOnly bool
	groupLimit      int
}

func (s *stubProducts) Counts(_ context.Context, since time.Time) (ProductCounts, error) {
	s.countsSince = since
	return s.counts, s.countsErr
}

func (s *stubProducts) CategoryDistribution(context.Context) ([]CategoryStat, error) {
	return s.categories, nil
}

func (s *stubProducts) StockValueStats(context.Context) (*StockValueStats, error) {
	return s.stockValue, nil
}

func (s *stubProducts) GroupBySupplier(_ context.Context, activeOnly bool, limit int) ([]SupplierProductStat, error) {
	s.groupActiveOnly = activeOnly
	s.groupLimit = limit
	return s.bySupplier, nil
}

func (s *stubProducts) LowStock(context.Context) ([]ProductSummary, error) {
	return s.lowStock, nil
}

func (s *stubProducts) OutOfStock(context.Context) ([]ProductSummary, error) {
	return s.outOfStock, nil
}

type stubSuppliers struct {
	counts    SupplierCounts
	locations []LocationStat
}

func (s *stubSuppliers) Counts(context.Context, time.Time) (SupplierCounts, error) {
	return s.counts, nil
}

func (s *stubSuppliers) LocationDistribution(context.Context) ([]LocationStat, error) {
	return s.locations, nil
}

type stubUsers struct {
	counts        UserCounts
	registrations []DayCount
	logins        []DayCount
	active        int64
	loginStats    LoginStats
	top           []UserActivity
	activity      []UserActivity
}

func (s *stubUsers) Counts(context.Context, time.Time) (UserCounts, error) {
	return s.counts, nil
}

func (s *stubUsers) RegistrationsByDay(context.Context, time.Time) ([]DayCount, error) {
	return s.registrations, nil
}

func (s *stubUsers) LoginsByDay(context.Context, time.Time) ([]DayCount, error) {
	return s.logins, nil
}

func (s *stubUsers) ActiveSince(context.Context, time.Time) (int64, error) {
	return s.active, nil
}

func (s *stubUsers) LoginStats(context.Context) (LoginStats, error) {
	return s.loginStats, nil
}

func (s *stubUsers) TopByLoginCount(_ context.Context, limit int) ([]UserActivity, error) {
	if limit > 0 && limit < len(s.top) {
		return s.top[:limit], nil
	}
	return s.top, nil
}

func (s *stubUsers) LoginActivity(context.Context) ([]UserActivity, error) {
	return s.activity, nil
}

type stubQuotations struct {
	counts        QuotationCounts
	revenue       *RevenueStats
	revenueErr    error
	categories    []QuotationCategoryStat
	monthlyCounts []MonthCount
	monthlyValues []MonthValue
	responseTimes *ResponseTimeStats
}

func (s *stubQuotations) Counts(context.Context, time.Time) (QuotationCounts, error) {
	return s.counts, nil
}

func (s *stubQuotations) RevenueStats(context.Context) (*RevenueStats, error) {
	return s.revenue, s.revenueErr
}

func (s *stubQuotations) CategoryStats(context.Context) ([]QuotationCategoryStat, error) {
	return s.categories, nil
}

func (s *stubQuotations) MonthlyCounts(context.Context, time.Time) ([]MonthCount, error) {
	return s.monthlyCounts, nil
}

func (s *stubQuotations) MonthlyRevenue(context.Context, time.Time) ([]MonthValue, error) {
	return s.monthlyValues, nil
}

func (s *stubQuotations) ResponseTimeStats(context.Context) (*ResponseTimeStats, error) {
	return s.responseTimes, nil
}

type stubReservations struct {
	counts        ReservationCounts
	monthlyCounts []MonthCount
	topCustomers  []CustomerStat
	statuses      []StatusStat
	responseTimes *ResponseTimeStats
}

func (s *stubReservations) Counts(context.Context, time.Time) (ReservationCounts, error) {
	return s.counts, nil
}

func (s *stubReservations) MonthlyCounts(context.Context, time.Time) ([]MonthCount, error) {
	return s.monthlyCounts, nil
}

func (s *stubReservations) TopCustomers(context.Context, int) ([]CustomerStat, error) {
	return s.topCustomers, nil
}

func (s *stubReservations) StatusDistribution(context.Context) ([]StatusStat, error) {
	return s.statuses, nil
}

func (s *stubReservations) ResponseTimeStats(context.Context) (*ResponseTimeStats, error) {
	return s.responseTimes, nil
}

func newTestService(
	products *stubProducts,
	suppliers *stubSuppliers,
	users *stubUsers,
	quotations *stubQuotations,
	reservations *stubReservations,
) *Service {
	if products == nil {
		products = &stubProducts{}
	}
	if suppliers == nil {
		suppliers = &stubSuppliers{}
	}
	if users == nil {
		users = &stubUsers{}
	}
	if quotations == nil {
		quotations = &stubQuotations{}
	}
	if reservations == nil {
		reservations = &stubReservations{}
	}
	s := NewService(products, suppliers, users, quotations, reservations)
	s.now = func() time.Time { return testNow }
	return s
}

func TestProductReport(t *testing.T) {
	products := &stubProducts{
		counts: ProductCounts{Total: 12, Active: 10, LowStock: 2, OutOfStock: 1, CreatedSince: 3},
		categories: []CategoryStat{
			{Category: "Hardware", Count: 8, TotalStockValue: decimal.RequireFromString("1286")},
		},
		stockValue: &StockValueStats{
			TotalPrice:      decimal.RequireFromString("49.60"),
			TotalStockValue: decimal.RequireFromString("2234"),
		},
		bySupplier: []SupplierProductStat{{SupplierName: "Acme Distribution", ProductCount: 2}},
		lowStock:   []ProductSummary{{SKU: "SKU-1002", Stock: 30, MinStock: 50}},
		outOfStock: []ProductSummary{{SKU: "SKU-2001", Stock: 0}},
	}
	svc := newTestService(products, nil, nil, nil, nil)

	report, err := svc.ProductReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), report.Overview.TotalProducts)
	assert.Equal(t, int64(2), report.Overview.LowStockProducts)
	assert.Equal(t, int64(1), report.Overview.OutOfStockProducts)
	assert.Equal(t, int64(3), report.Overview.RecentProducts)
	assert.True(t, report.StockValue.Valid)
	assert.Len(t, report.LowStockProducts, 1)
	assert.Len(t, report.OutOfStockProducts, 1)

	// Top suppliers ranks active products only, capped at ten rows.
	assert.True(t, products.groupActiveOnly)
	assert.Equal(t, 10, products.groupLimit)
	// The window runs back from now.
	assert.Equal(t, testNow.AddDate(0, 0, -30), products.countsSince)
}

func TestProductReportEmptyCollections(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)

	report, err := svc.ProductReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.NotNil(t, report.CategoryDistribution)
	assert.Empty(t, report.CategoryDistribution)
	assert.NotNil(t, report.TopSuppliers)
	assert.NotNil(t, report.LowStockProducts)
	assert.NotNil(t, report.OutOfStockProducts)
	assert.False(t, report.StockValue.Valid)

	// No rows means the value sections render as empty objects and the
	// lists as empty arrays, never null.
	body, err := json.Marshal(report)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"stockValue":{}`)
	assert.Contains(t, string(body), `"categoryDistribution":[]`)
}

func TestProductReportNegativePeriod(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)

	_, err := svc.ProductReport(context.Background(), -1)

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, -1, appErr.Details["period"])
}

func TestProductReportZeroPeriod(t *testing.T) {
	products := &stubProducts{}
	svc := newTestService(products, nil, nil, nil, nil)

	_, err := svc.ProductReport(context.Background(), 0)

	assert.NoError(t, err)
	assert.Equal(t, testNow, products.countsSince)
}

func TestProductReportReaderFailure(t *testing.T) {
	products := &stubProducts{countsErr: errors.New("connection refused")}
	svc := newTestService(products, nil, nil, nil, nil)

	_, err := svc.ProductReport(context.Background(), 30)

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeDatabase, appErr.Code)
	assert.Contains(t, appErr.Message, "connection refused")
}

func TestSupplierReport(t *testing.T) {
	products := &stubProducts{
		bySupplier: []SupplierProductStat{{SupplierName: "Lanka Traders", ProductCount: 1}},
	}
	suppliers := &stubSuppliers{
		counts:    SupplierCounts{Total: 2, Active: 2, Expired: 0, ExpiringSoon: 1},
		locations: []LocationStat{{Location: "Colombo", Count: 1}, {Location: "Kandy", Count: 1}},
	}
	svc := newTestService(products, suppliers, nil, nil, nil)

	report, err := svc.SupplierReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), report.Overview.TotalSuppliers)
	assert.Equal(t, int64(1), report.Overview.ExpiringSoon)
	assert.Len(t, report.LocationDistribution, 2)

	// Per-supplier stats cover every supplier and every product state.
	assert.False(t, products.groupActiveOnly)
	assert.Zero(t, products.groupLimit)
	assert.Len(t, report.SupplierProductStats, 1)
}

func TestUserReport(t *testing.T) {
	lastLogin := testNow.AddDate(0, 0, -2)
	firstLogin := testNow.AddDate(0, -3, 0)
	users := &stubUsers{
		counts: UserCounts{Total: 5, Admins: 1, Customers: 4, CreatedSince: 2},
		registrations: []DayCount{
			{Day: time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), Count: 2},
		},
		active: 3,
		loginStats: LoginStats{
			Avg:             6.4,
			Max:             20,
			Min:             0,
			NewestLastLogin: &lastLogin,
			OldestLastLogin: &firstLogin,
		},
		top: []UserActivity{
			{Email: "heavy@x.com", LoginCount: 20, LastLogin: &lastLogin},
		},
		activity: []UserActivity{
			{Email: "heavy@x.com", LoginCount: 20},
			{Email: "idle@x.com", LoginCount: 0},
		},
	}
	svc := newTestService(nil, nil, users, nil, nil)

	report, err := svc.UserReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), report.Overview.TotalUsers)
	assert.Equal(t, int64(1), report.Overview.AdminUsers)

	assert.Equal(t, int64(3), report.ActivityStats.ActiveUsers)
	assert.Equal(t, 6.4, report.ActivityStats.AvgLoginCount)
	assert.Equal(t, int64(20), report.ActivityStats.MaxLoginCount)
	assert.Equal(t, &lastLogin, report.ActivityStats.NewestLastLogin)
	assert.Equal(t, &firstLogin, report.ActivityStats.OldestLastLogin)

	assert.Len(t, report.RegistrationTrends, 7)
	assert.Len(t, report.ActivityTrends, 7)
	assert.Len(t, report.LoginDistribution, 7)
	assert.Len(t, report.TopActiveUsers, 1)
}

func TestUserReportNoLogins(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)

	report, err := svc.UserReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Nil(t, report.ActivityStats.NewestLastLogin)
	assert.Nil(t, report.ActivityStats.OldestLastLogin)

	// Absent bounds are dropped from the payload, never rendered null.
	body, err := json.Marshal(report)
	assert.NoError(t, err)
	assert.NotContains(t, string(body), "newestLastLogin")
	assert.NotContains(t, string(body), "oldestLastLogin")
}

func TestQuotationReport(t *testing.T) {
	quotations := &stubQuotations{
		counts: QuotationCounts{Total: 4, Pending: 2, Completed: 2, CreatedSince: 4},
		revenue: &RevenueStats{
			TotalRevenue:      decimal.RequireFromString("450"),
			AvgQuotationValue: decimal.RequireFromString("225"),
			MaxQuotationValue: decimal.RequireFromString("300"),
			MinQuotationValue: decimal.RequireFromString("150"),
		},
		categories: []QuotationCategoryStat{
			{Category: "Hardware", Count: 2, TotalValue: decimal.RequireFromString("450")},
			{Category: "Paint", Count: 1, TotalValue: decimal.RequireFromString("200")},
		},
		monthlyCounts: []MonthCount{{Month: "2026-08", Count: 4}},
		monthlyValues: []MonthValue{{Month: "2026-08", Value: decimal.RequireFromString("450")}},
		responseTimes: &ResponseTimeStats{AvgResponseTimeMs: 1200, MaxResponseTimeMs: 1500, MinResponseTimeMs: 900},
	}
	svc := newTestService(nil, nil, nil, quotations, nil)

	report, err := svc.QuotationReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), report.Overview.TotalQuotations)
	assert.Equal(t, int64(2), report.Overview.CompletedQuotations)

	// Revenue comes from completed quotations only.
	assert.True(t, report.RevenueStats.Valid)
	assert.True(t, report.RevenueStats.Value.TotalRevenue.Equal(decimal.RequireFromString("450")))

	// Category rows keep the reader's count-descending order.
	assert.Len(t, report.CategoryStats, 2)
	assert.Equal(t, "Hardware", report.CategoryStats[0].Category)
	assert.Equal(t, "Paint", report.CategoryStats[1].Category)

	assert.Len(t, report.MonthlyTrends, 6)
	current := report.MonthlyTrends[5]
	assert.Equal(t, "2026-08", current.Month)
	assert.Equal(t, int64(4), current.Count)
	assert.True(t, current.Revenue.Equal(decimal.RequireFromString("450")))
	assert.True(t, report.MonthlyTrends[0].Revenue.IsZero())

	assert.True(t, report.ResponseTimeStats.Valid)
	assert.Equal(t, float64(1200), report.ResponseTimeStats.Value.AvgResponseTimeMs)
}

func TestQuotationReportNoResolvedQuotations(t *testing.T) {
	svc := newTestService(nil, nil, nil, &stubQuotations{}, nil)

	report, err := svc.QuotationReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.False(t, report.RevenueStats.Valid)
	assert.False(t, report.ResponseTimeStats.Valid)

	body, err := json.Marshal(report)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"revenueStats":{}`)
	assert.Contains(t, string(body), `"responseTimeStats":{}`)
}

func TestReservationReport(t *testing.T) {
	reservations := &stubReservations{
		counts:        ReservationCounts{Total: 2, Pending: 2, CreatedSince: 2},
		monthlyCounts: []MonthCount{{Month: "2026-08", Count: 2}},
		topCustomers:  []CustomerStat{{Email: "alice@example.com", Count: 1}},
		statuses:      []StatusStat{{Status: "pending", Count: 2}},
	}
	svc := newTestService(nil, nil, nil, nil, reservations)

	report, err := svc.ReservationReport(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), report.Overview.TotalReservations)
	assert.Equal(t, int64(2), report.Overview.PendingReservations)
	assert.Len(t, report.MonthlyTrends, 6)
	assert.Equal(t, MonthlyPoint{Month: "2026-08", Count: 2}, report.MonthlyTrends[5])
	assert.Len(t, report.TopCustomers, 1)
	assert.False(t, report.ResponseTimeStats.Valid)
}

func TestDashboardReport(t *testing.T) {
	products := &stubProducts{counts: ProductCounts{Active: 10, LowStock: 2}}
	suppliers := &stubSuppliers{counts: SupplierCounts{Active: 2}}
	users := &stubUsers{counts: UserCounts{Total: 5}}
	quotations := &stubQuotations{
		counts:  QuotationCounts{Total: 4, Pending: 2, CreatedSince: 4},
		revenue: &RevenueStats{TotalRevenue: decimal.RequireFromString("450")},
	}
	reservations := &stubReservations{counts: ReservationCounts{Total: 2, Pending: 2, CreatedSince: 2}}
	svc := newTestService(products, suppliers, users, quotations, reservations)

	report, err := svc.DashboardReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), report.Overview.ActiveProducts)
	assert.Equal(t, int64(2), report.Overview.ActiveSuppliers)
	assert.Equal(t, int64(5), report.Overview.TotalUsers)
	assert.True(t, report.Overview.TotalRevenue.Equal(decimal.RequireFromString("450")))

	assert.Equal(t, int64(2), report.Alerts.LowStockProducts)
	assert.Equal(t, int64(2), report.Alerts.PendingQuotations)
	assert.Equal(t, int64(2), report.Alerts.PendingReservations)

	assert.Equal(t, int64(4), report.RecentActivity.NewQuotations)
	assert.Equal(t, int64(2), report.RecentActivity.NewReservations)

	// The dashboard always looks back over the fixed 30-day window.
	assert.Equal(t, testNow.AddDate(0, 0, -30), products.countsSince)
}

func TestDashboardReportNoRevenue(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)

	report, err := svc.DashboardReport(context.Background())

	assert.NoError(t, err)
	assert.True(t, report.Overview.TotalRevenue.IsZero())
}
