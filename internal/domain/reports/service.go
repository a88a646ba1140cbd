package reports

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// DefaultPeriodDays is the trailing window applied when a report
// request carries no explicit period.
const DefaultPeriodDays = 30

// activityWindowDays is the fixed window behind "active user" and
// dashboard recent-activity counters. It does not follow the period.
const activityWindowDays = 30

// Service builds report documents from the collection readers.
// Reports never write; each call recomputes from live data.
type Service struct {
	products     ProductReader
	suppliers    SupplierReader
	users        UserReader
	quotations   QuotationReader
	reservations ReservationReader

	tracer trace.Tracer
	now    func() time.Time
}

// NewService creates the report service.
func NewService(
	products ProductReader,
	suppliers SupplierReader,
	users UserReader,
	quotations QuotationReader,
	reservations ReservationReader,
) *Service {
	return &Service{
		products:     products,
		suppliers:    suppliers,
		users:        users,
		quotations:   quotations,
		reservations: reservations,
		tracer:       otel.Tracer("reports"),
		now:          time.Now,
	}
}

// validatePeriod rejects negative periods. Zero is allowed and makes
// every "recent" counter empty.
func validatePeriod(days int) error {
	if days < 0 {
		return apperror.NewValidation("period must be a non-negative number of days").
			WithDetail("period", days)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func optional[T any](v *T) Optional[T] {
	if v == nil {
		return Optional[T]{}
	}
	return Some(*v)
}

// ProductReport builds the product report for a trailing window of
// periodDays days.
func (s *Service) ProductReport(ctx context.Context, periodDays int) (*ProductReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.product")
	defer span.End()

	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := periodStart(now, periodDays)

	var report ProductReport
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.products.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("product counts: %w", err)
		}
		report.Overview = ProductOverview{
			TotalProducts:      counts.Total,
			ActiveProducts:     counts.Active,
			LowStockProducts:   counts.LowStock,
			OutOfStockProducts: counts.OutOfStock,
			RecentProducts:     counts.CreatedSince,
		}
		return nil
	})
	g.Go(func() error {
		stats, err := s.products.CategoryDistribution(ctx)
		if err != nil {
			return fmt.Errorf("category distribution: %w", err)
		}
		report.CategoryDistribution = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.products.StockValueStats(ctx)
		if err != nil {
			return fmt.Errorf("stock value stats: %w", err)
		}
		report.StockValue = optional(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.products.GroupBySupplier(ctx, true, topListLimit)
		if err != nil {
			return fmt.Errorf("top suppliers: %w", err)
		}
		report.TopSuppliers = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		items, err := s.products.LowStock(ctx)
		if err != nil {
			return fmt.Errorf("low stock products: %w", err)
		}
		report.LowStockProducts = nonNil(items)
		return nil
	})
	g.Go(func() error {
		items, err := s.products.OutOfStock(ctx)
		if err != nil {
			return fmt.Errorf("out of stock products: %w", err)
		}
		report.OutOfStockProducts = nonNil(items)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "product report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}
	return &report, nil
}

// SupplierReport builds the supplier report for a trailing window of
// periodDays days.
func (s *Service) SupplierReport(ctx context.Context, periodDays int) (*SupplierReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.supplier")
	defer span.End()

	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := periodStart(now, periodDays)

	var report SupplierReport
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.suppliers.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("supplier counts: %w", err)
		}
		report.Overview = SupplierOverview{
			TotalSuppliers:    counts.Total,
			ActiveSuppliers:   counts.Active,
			InactiveSuppliers: counts.Inactive,
			ExpiredAgreements: counts.Expired,
			ExpiringSoon:      counts.ExpiringSoon,
			RecentSuppliers:   counts.CreatedSince,
		}
		return nil
	})
	g.Go(func() error {
		stats, err := s.products.GroupBySupplier(ctx, false, 0)
		if err != nil {
			return fmt.Errorf("supplier product stats: %w", err)
		}
		report.SupplierProductStats = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.suppliers.LocationDistribution(ctx)
		if err != nil {
			return fmt.Errorf("location distribution: %w", err)
		}
		report.LocationDistribution = nonNil(stats)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "supplier report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}
	return &report, nil
}

// UserReport builds the user activity report for a trailing window of
// periodDays days. Active-user counters always use a fixed 30-day
// window.
func (s *Service) UserReport(ctx context.Context, periodDays int) (*UserReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.user")
	defer span.End()

	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := periodStart(now, periodDays)
	activeSince := periodStart(now, activityWindowDays)

	var (
		report      UserReport
		activeUsers int64
		loginStats  LoginStats
	)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.users.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("user counts: %w", err)
		}
		report.Overview = UserOverview{
			TotalUsers:    counts.Total,
			AdminUsers:    counts.Admins,
			CustomerUsers: counts.Customers,
			RecentUsers:   counts.CreatedSince,
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.users.RegistrationsByDay(ctx, dailySeriesStart(now))
		if err != nil {
			return fmt.Errorf("registrations by day: %w", err)
		}
		report.RegistrationTrends = dailySeries(now, rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.users.LoginsByDay(ctx, dailySeriesStart(now))
		if err != nil {
			return fmt.Errorf("logins by day: %w", err)
		}
		report.ActivityTrends = dailySeries(now, rows)
		return nil
	})
	g.Go(func() error {
		n, err := s.users.ActiveSince(ctx, activeSince)
		if err != nil {
			return fmt.Errorf("active users: %w", err)
		}
		activeUsers = n
		return nil
	})
	g.Go(func() error {
		stats, err := s.users.LoginStats(ctx)
		if err != nil {
			return fmt.Errorf("login stats: %w", err)
		}
		loginStats = stats
		return nil
	})
	g.Go(func() error {
		users, err := s.users.TopByLoginCount(ctx, topActiveUsersLimit)
		if err != nil {
			return fmt.Errorf("top active users: %w", err)
		}
		report.TopActiveUsers = nonNil(users)
		return nil
	})
	g.Go(func() error {
		users, err := s.users.LoginActivity(ctx)
		if err != nil {
			return fmt.Errorf("login activity: %w", err)
		}
		report.LoginDistribution = loginHistogram(users)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "user report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}

	report.ActivityStats = ActivityStats{
		ActiveUsers:     activeUsers,
		AvgLoginCount:   loginStats.Avg,
		MaxLoginCount:   loginStats.Max,
		MinLoginCount:   loginStats.Min,
		NewestLastLogin: loginStats.NewestLastLogin,
		OldestLastLogin: loginStats.OldestLastLogin,
	}
	return &report, nil
}

// QuotationReport builds the quotation report for a trailing window of
// periodDays days.
func (s *Service) QuotationReport(ctx context.Context, periodDays int) (*QuotationReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.quotation")
	defer span.End()

	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := periodStart(now, periodDays)
	monthsFrom := monthlySeriesStart(now)

	var (
		report          QuotationReport
		monthlyCounts   []MonthCount
		monthlyRevenues []MonthValue
	)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.quotations.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("quotation counts: %w", err)
		}
		report.Overview = QuotationOverview{
			TotalQuotations:      counts.Total,
			PendingQuotations:    counts.Pending,
			ProcessingQuotations: counts.Processing,
			CompletedQuotations:  counts.Completed,
			RejectedQuotations:   counts.Rejected,
			RecentQuotations:     counts.CreatedSince,
		}
		return nil
	})
	g.Go(func() error {
		stats, err := s.quotations.RevenueStats(ctx)
		if err != nil {
			return fmt.Errorf("revenue stats: %w", err)
		}
		report.RevenueStats = optional(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.quotations.CategoryStats(ctx)
		if err != nil {
			return fmt.Errorf("quotation category stats: %w", err)
		}
		report.CategoryStats = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		rows, err := s.quotations.MonthlyCounts(ctx, monthsFrom)
		if err != nil {
			return fmt.Errorf("monthly counts: %w", err)
		}
		monthlyCounts = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.quotations.MonthlyRevenue(ctx, monthsFrom)
		if err != nil {
			return fmt.Errorf("monthly revenue: %w", err)
		}
		monthlyRevenues = rows
		return nil
	})
	g.Go(func() error {
		stats, err := s.quotations.ResponseTimeStats(ctx)
		if err != nil {
			return fmt.Errorf("response time stats: %w", err)
		}
		report.ResponseTimeStats = optional(stats)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "quotation report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}

	report.MonthlyTrends = quotationMonthlySeries(now, monthlyCounts, monthlyRevenues)
	return &report, nil
}

// ReservationReport builds the reservation report for a trailing
// window of periodDays days.
func (s *Service) ReservationReport(ctx context.Context, periodDays int) (*ReservationReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.reservation")
	defer span.End()

	if err := validatePeriod(periodDays); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := periodStart(now, periodDays)

	var report ReservationReport
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.reservations.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("reservation counts: %w", err)
		}
		report.Overview = ReservationOverview{
			TotalReservations:     counts.Total,
			PendingReservations:   counts.Pending,
			ConfirmedReservations: counts.Confirmed,
			CompletedReservations: counts.Completed,
			CancelledReservations: counts.Cancelled,
			RecentReservations:    counts.CreatedSince,
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.reservations.MonthlyCounts(ctx, monthlySeriesStart(now))
		if err != nil {
			return fmt.Errorf("monthly counts: %w", err)
		}
		report.MonthlyTrends = monthlyCountSeries(now, rows)
		return nil
	})
	g.Go(func() error {
		stats, err := s.reservations.TopCustomers(ctx, topListLimit)
		if err != nil {
			return fmt.Errorf("top customers: %w", err)
		}
		report.TopCustomers = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.reservations.StatusDistribution(ctx)
		if err != nil {
			return fmt.Errorf("status distribution: %w", err)
		}
		report.StatusDistribution = nonNil(stats)
		return nil
	})
	g.Go(func() error {
		stats, err := s.reservations.ResponseTimeStats(ctx)
		if err != nil {
			return fmt.Errorf("response time stats: %w", err)
		}
		report.ResponseTimeStats = optional(stats)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "reservation report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}
	return &report, nil
}

// DashboardReport builds the cross-entity dashboard overview. It always
// uses the fixed 30-day activity window.
func (s *Service) DashboardReport(ctx context.Context) (*DashboardReport, error) {
	ctx, span := s.tracer.Start(ctx, "reports.dashboard")
	defer span.End()

	now := s.now().UTC()
	since := periodStart(now, activityWindowDays)

	var (
		report            DashboardReport
		productCounts     ProductCounts
		supplierCounts    SupplierCounts
		userCounts        UserCounts
		quotationCounts   QuotationCounts
		reservationCounts ReservationCounts
		revenue           *RevenueStats
	)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.products.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("product counts: %w", err)
		}
		productCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.suppliers.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("supplier counts: %w", err)
		}
		supplierCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.users.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("user counts: %w", err)
		}
		userCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.quotations.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("quotation counts: %w", err)
		}
		quotationCounts = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.reservations.Counts(ctx, since)
		if err != nil {
			return fmt.Errorf("reservation counts: %w", err)
		}
		reservationCounts = counts
		return nil
	})
	g.Go(func() error {
		stats, err := s.quotations.RevenueStats(ctx)
		if err != nil {
			return fmt.Errorf("revenue stats: %w", err)
		}
		revenue = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "dashboard report failed", "error", err)
		return nil, apperror.NewDatabase(err)
	}

	report.Overview = DashboardOverview{
		ActiveProducts:    productCounts.Active,
		ActiveSuppliers:   supplierCounts.Active,
		TotalUsers:        userCounts.Total,
		TotalQuotations:   quotationCounts.Total,
		TotalReservations: reservationCounts.Total,
	}
	if revenue != nil {
		report.Overview.TotalRevenue = revenue.TotalRevenue
	}
	report.Alerts = DashboardAlerts{
		LowStockProducts:    productCounts.LowStock,
		PendingQuotations:   quotationCounts.Pending,
		PendingReservations: reservationCounts.Pending,
	}
	report.RecentActivity = DashboardActivity{
		NewQuotations:   quotationCounts.CreatedSince,
		NewReservations: reservationCounts.CreatedSince,
	}
	return &report, nil
}
