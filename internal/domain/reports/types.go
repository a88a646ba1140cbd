// Package reports provides the read-only report engine.
// Every report is computed fresh per request from the underlying
// collections; results are ephemeral response documents.
package reports

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

// Optional wraps an aggregate section that renders as an empty JSON
// object when the underlying query matched no rows. Never null.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Valid: true, Value: v}
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("{}"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "{}" || string(data) == "null" {
		o.Valid = false
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}

// --- Product report ---

// ProductOverview holds headline product counts.
type ProductOverview struct {
	TotalProducts      int64 `json:"totalProducts"`
	ActiveProducts     int64 `json:"activeProducts"`
	LowStockProducts   int64 `json:"lowStockProducts"`
	OutOfStockProducts int64 `json:"outOfStockProducts"`
	RecentProducts     int64 `json:"recentProducts"`
}

// CategoryStat is one row of the per-category distribution.
type CategoryStat struct {
	Category        string          `json:"category"`
	Count           int64           `json:"count"`
	TotalStockValue decimal.Decimal `json:"totalStockValue"`
}

// StockValueStats summarises prices across active products.
type StockValueStats struct {
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	AvgPrice        decimal.Decimal `json:"avgPrice"`
	MaxPrice        decimal.Decimal `json:"maxPrice"`
	MinPrice        decimal.Decimal `json:"minPrice"`
	TotalStockValue decimal.Decimal `json:"totalStockValue"`
}

// SupplierProductStat is one supplier row with product aggregates,
// produced by joining grouped products against supplier records.
// Products whose supplier reference does not resolve are discarded.
type SupplierProductStat struct {
	SupplierID      id.ID           `json:"supplierId"`
	SupplierName    string          `json:"supplierName"`
	Location        string          `json:"location"`
	IsActive        bool            `json:"isActive"`
	ProductCount    int64           `json:"productCount"`
	TotalStockValue decimal.Decimal `json:"totalStockValue"`
	AvgPrice        decimal.Decimal `json:"avgPrice"`
}

// ProductSummary is the reduced projection used in stock alert lists.
type ProductSummary struct {
	ID        id.ID           `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"minStock"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductReport is the full product report document.
type ProductReport struct {
	Overview             ProductOverview           `json:"overview"`
	CategoryDistribution []CategoryStat            `json:"categoryDistribution"`
	StockValue           Optional[StockValueStats] `json:"stockValue"`
	TopSuppliers         []SupplierProductStat     `json:"topSuppliers"`
	LowStockProducts     []ProductSummary          `json:"lowStockProducts"`
	OutOfStockProducts   []ProductSummary          `json:"outOfStockProducts"`
}

// --- Supplier report ---

// SupplierOverview holds headline supplier counts.
// Expired counts agreements ended before now; ExpiringSoon counts
// agreements ending within the next 30 days (fixed window, independent
// of the report period).
type SupplierOverview struct {
	TotalSuppliers    int64 `json:"totalSuppliers"`
	ActiveSuppliers   int64 `json:"activeSuppliers"`
	InactiveSuppliers int64 `json:"inactiveSuppliers"`
	ExpiredAgreements int64 `json:"expiredAgreements"`
	ExpiringSoon      int64 `json:"expiringSoon"`
	RecentSuppliers   int64 `json:"recentSuppliers"`
}

// LocationStat is one row of the per-location distribution.
type LocationStat struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// SupplierReport is the full supplier report document.
type SupplierReport struct {
	Overview             SupplierOverview      `json:"overview"`
	SupplierProductStats []SupplierProductStat `json:"supplierProductStats"`
	LocationDistribution []LocationStat        `json:"locationDistribution"`
}

// --- User report ---

// UserOverview holds headline user counts.
type UserOverview struct {
	TotalUsers    int64 `json:"totalUsers"`
	AdminUsers    int64 `json:"adminUsers"`
	CustomerUsers int64 `json:"customerUsers"`
	RecentUsers   int64 `json:"recentUsers"`
}

// DailyPoint is one point of a daily time series.
type DailyPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// ActivityStats summarises login activity across all users.
// ActiveUsers counts logins within the last 30 days regardless of the
// report period. The last-login bounds are omitted when no user has
// ever logged in.
type ActivityStats struct {
	ActiveUsers     int64      `json:"activeUsers"`
	AvgLoginCount   float64    `json:"avgLoginCount"`
	MaxLoginCount   int64      `json:"maxLoginCount"`
	MinLoginCount   int64      `json:"minLoginCount"`
	NewestLastLogin *time.Time `json:"newestLastLogin,omitempty"`
	OldestLastLogin *time.Time `json:"oldestLastLogin,omitempty"`
}

// UserActivity is a single user's login activity projection.
type UserActivity struct {
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	LoginCount int64      `json:"loginCount"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

// LoginBucket is one bucket of the login-count histogram.
type LoginBucket struct {
	Label string         `json:"label"` // "0", "1-4", ... "100+"
	Min   int64          `json:"min"`
	Count int64          `json:"count"`
	Users []UserActivity `json:"users"`
}

// UserReport is the full user report document.
type UserReport struct {
	Overview           UserOverview   `json:"overview"`
	RegistrationTrends []DailyPoint   `json:"registrationTrends"`
	ActivityStats      ActivityStats  `json:"activityStats"`
	TopActiveUsers     []UserActivity `json:"topActiveUsers"`
	LoginDistribution  []LoginBucket  `json:"loginDistribution"`
	ActivityTrends     []DailyPoint   `json:"activityTrends"`
}

// --- Quotation report ---

// QuotationOverview holds headline quotation counts.
type QuotationOverview struct {
	TotalQuotations      int64 `json:"totalQuotations"`
	PendingQuotations    int64 `json:"pendingQuotations"`
	ProcessingQuotations int64 `json:"processingQuotations"`
	CompletedQuotations  int64 `json:"completedQuotations"`
	RejectedQuotations   int64 `json:"rejectedQuotations"`
	RecentQuotations     int64 `json:"recentQuotations"`
}

// RevenueStats summarises completed-quotation revenue.
type RevenueStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AvgQuotationValue decimal.Decimal `json:"avgQuotationValue"`
	MaxQuotationValue decimal.Decimal `json:"maxQuotationValue"`
	MinQuotationValue decimal.Decimal `json:"minQuotationValue"`
}

// QuotationCategoryStat is one row of the per-category value distribution.
type QuotationCategoryStat struct {
	Category   string          `json:"category"`
	Count      int64           `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// QuotationMonthlyPoint is one point of the quotation monthly trend.
type QuotationMonthlyPoint struct {
	Month   string          `json:"month"` // YYYY-MM
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ResponseTimeStats summarises processing latency in milliseconds,
// measured as updatedAt - createdAt over resolved documents.
type ResponseTimeStats struct {
	AvgResponseTimeMs float64 `json:"avgResponseTime"`
	MaxResponseTimeMs float64 `json:"maxResponseTime"`
	MinResponseTimeMs float64 `json:"minResponseTime"`
}

// QuotationReport is the full quotation report document.
type QuotationReport struct {
	Overview          QuotationOverview           `json:"overview"`
	RevenueStats      Optional[RevenueStats]      `json:"revenueStats"`
	CategoryStats     []QuotationCategoryStat     `json:"categoryStats"`
	MonthlyTrends     []QuotationMonthlyPoint     `json:"monthlyTrends"`
	ResponseTimeStats Optional[ResponseTimeStats] `json:"responseTimeStats"`
}

// --- Reservation report ---

// ReservationOverview holds headline reservation counts.
type ReservationOverview struct {
	TotalReservations     int64 `json:"totalReservations"`
	PendingReservations   int64 `json:"pendingReservations"`
	ConfirmedReservations int64 `json:"confirmedReservations"`
	CompletedReservations int64 `json:"completedReservations"`
	CancelledReservations int64 `json:"cancelledReservations"`
	RecentReservations    int64 `json:"recentReservations"`
}

// MonthlyPoint is one point of a monthly count series.
type MonthlyPoint struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// CustomerStat is one customer row grouped by email.
type CustomerStat struct {
	Email string `json:"email"`
	Count int64  `json:"count"`
}

// StatusStat is one row of the per-status distribution.
type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ReservationReport is the full reservation report document.
type ReservationReport struct {
	Overview           ReservationOverview         `json:"overview"`
	MonthlyTrends      []MonthlyPoint              `json:"monthlyTrends"`
	TopCustomers       []CustomerStat              `json:"topCustomers"`
	StatusDistribution []StatusStat                `json:"statusDistribution"`
	ResponseTimeStats  Optional[ResponseTimeStats] `json:"responseTimeStats"`
}

// --- Dashboard ---

// DashboardOverview holds the cross-entity headline counts.
type DashboardOverview struct {
	ActiveProducts    int64           `json:"activeProducts"`
	ActiveSuppliers   int64           `json:"activeSuppliers"`
	TotalUsers        int64           `json:"totalUsers"`
	TotalQuotations   int64           `json:"totalQuotations"`
	TotalReservations int64           `json:"totalReservations"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
}

// DashboardAlerts holds counts that need operator attention.
type DashboardAlerts struct {
	LowStockProducts    int64 `json:"lowStockProducts"`
	PendingQuotations   int64 `json:"pendingQuotations"`
	PendingReservations int64 `json:"pendingReservations"`
}

// DashboardActivity holds trailing-30-day activity counts.
type DashboardActivity struct {
	NewQuotations   int64 `json:"newQuotations"`
	NewReservations int64 `json:"newReservations"`
}

// DashboardReport is the full dashboard overview document.
type DashboardReport struct {
	Overview       DashboardOverview `json:"overview"`
	Alerts         DashboardAlerts   `json:"alerts"`
	RecentActivity DashboardActivity `json:"recentActivity"`
}
