package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductCounts carries the product headline counters in one read.
// Low and out-of-stock counts cover active products only. LowStock
// counts stock <= minStock, so OutOfStock (stock == 0) is a subset of
// it; the detail lists are the disjoint projections.
type ProductCounts struct {
	Total        int64 `db:"total"`
	Active       int64 `db:"active"`
	LowStock     int64 `db:"low_stock"`
	OutOfStock   int64 `db:"out_of_stock"`
	CreatedSince int64 `db:"created_since"`
}

// SupplierCounts carries the supplier headline counters in one read.
type SupplierCounts struct {
	Total        int64 `db:"total"`
	Active       int64 `db:"active"`
	Inactive     int64 `db:"inactive"`
	Expired      int64 `db:"expired"`
	ExpiringSoon int64 `db:"expiring_soon"`
	CreatedSince int64 `db:"created_since"`
}

// UserCounts carries the user headline counters in one read.
type UserCounts struct {
	Total        int64 `db:"total"`
	Admins       int64 `db:"admins"`
	Customers    int64 `db:"customers"`
	CreatedSince int64 `db:"created_since"`
}

// QuotationCounts carries the quotation headline counters in one read.
type QuotationCounts struct {
	Total        int64 `db:"total"`
	Pending      int64 `db:"pending"`
	Processing   int64 `db:"processing"`
	Completed    int64 `db:"completed"`
	Rejected     int64 `db:"rejected"`
	CreatedSince int64 `db:"created_since"`
}

// ReservationCounts carries the reservation headline counters in one read.
type ReservationCounts struct {
	Total        int64 `db:"total"`
	Pending      int64 `db:"pending"`
	Confirmed    int64 `db:"confirmed"`
	Completed    int64 `db:"completed"`
	Cancelled    int64 `db:"cancelled"`
	CreatedSince int64 `db:"created_since"`
}

// DayCount is one raw grouped-by-day row. Day is a UTC midnight.
type DayCount struct {
	Day   time.Time `db:"day"`
	Count int64     `db:"count"`
}

// MonthCount is one raw grouped-by-month row, keyed as YYYY-MM.
type MonthCount struct {
	Month string `db:"month"`
	Count int64  `db:"count"`
}

// MonthValue is one raw grouped-by-month sum row, keyed as YYYY-MM.
type MonthValue struct {
	Month string          `db:"month"`
	Value decimal.Decimal `db:"value"`
}

// LoginStats carries login aggregates over all users: login-count
// avg/max/min plus the newest and oldest recorded last-login. The
// timestamps are nil when no user has ever logged in.
type LoginStats struct {
	Avg             float64    `db:"avg"`
	Max             int64      `db:"max"`
	Min             int64      `db:"min"`
	NewestLastLogin *time.Time `db:"newest_last_login"`
	OldestLastLogin *time.Time `db:"oldest_last_login"`
}

// ProductReader exposes the product collection reads the report
// engine needs.
type ProductReader interface {
	Counts(ctx context.Context, since time.Time) (ProductCounts, error)
	CategoryDistribution(ctx context.Context) ([]CategoryStat, error)
	// StockValueStats aggregates prices over active products.
	// Returns nil when there are no active products.
	StockValueStats(ctx context.Context) (*StockValueStats, error)
	// GroupBySupplier groups products per supplier, joined against
	// supplier records, sorted by product count descending. Products
	// with no resolvable supplier are discarded. limit <= 0 means all.
	GroupBySupplier(ctx context.Context, activeOnly bool, limit int) ([]SupplierProductStat, error)
	// LowStock lists active products with 0 < stock <= minStock,
	// most critical first.
	LowStock(ctx context.Context) ([]ProductSummary, error)
	// OutOfStock lists active products with stock == 0.
	OutOfStock(ctx context.Context) ([]ProductSummary, error)
}

// SupplierReader exposes the supplier collection reads the report
// engine needs.
type SupplierReader interface {
	Counts(ctx context.Context, since time.Time) (SupplierCounts, error)
	LocationDistribution(ctx context.Context) ([]LocationStat, error)
}

// UserReader exposes the user collection reads the report engine needs.
type UserReader interface {
	Counts(ctx context.Context, since time.Time) (UserCounts, error)
	// RegistrationsByDay groups registrations created at or after from
	// by calendar day.
	RegistrationsByDay(ctx context.Context, from time.Time) ([]DayCount, error)
	// LoginsByDay groups users by the calendar day of their last login.
	LoginsByDay(ctx context.Context, from time.Time) ([]DayCount, error)
	// ActiveSince counts users whose last login is at or after since.
	ActiveSince(ctx context.Context, since time.Time) (int64, error)
	LoginStats(ctx context.Context) (LoginStats, error)
	// TopByLoginCount lists the most active customer accounts, login
	// count descending.
	TopByLoginCount(ctx context.Context, limit int) ([]UserActivity, error)
	// LoginActivity lists every user's login projection for bucketing.
	LoginActivity(ctx context.Context) ([]UserActivity, error)
}

// QuotationReader exposes the quotation collection reads the report
// engine needs.
type QuotationReader interface {
	Counts(ctx context.Context, since time.Time) (QuotationCounts, error)
	// RevenueStats aggregates totalAmount over completed quotations.
	// Returns nil when there are none.
	RevenueStats(ctx context.Context) (*RevenueStats, error)
	CategoryStats(ctx context.Context) ([]QuotationCategoryStat, error)
	MonthlyCounts(ctx context.Context, from time.Time) ([]MonthCount, error)
	// MonthlyRevenue sums completed-quotation amounts per month.
	MonthlyRevenue(ctx context.Context, from time.Time) ([]MonthValue, error)
	// ResponseTimeStats aggregates updatedAt-createdAt over completed
	// and rejected quotations, in milliseconds. Returns nil when there
	// are none.
	ResponseTimeStats(ctx context.Context) (*ResponseTimeStats, error)
}

// ReservationReader exposes the reservation collection reads the
// report engine needs.
type ReservationReader interface {
	Counts(ctx context.Context, since time.Time) (ReservationCounts, error)
	MonthlyCounts(ctx context.Context, from time.Time) ([]MonthCount, error)
	// TopCustomers groups reservations by email, count descending.
	TopCustomers(ctx context.Context, limit int) ([]CustomerStat, error)
	StatusDistribution(ctx context.Context) ([]StatusStat, error)
	// ResponseTimeStats aggregates updatedAt-createdAt over resolved
	// (confirmed, completed, cancelled) reservations, in milliseconds.
	// Returns nil when there are none.
	ResponseTimeStats(ctx context.Context) (*ResponseTimeStats, error)
}
