package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// ReservationReportRepo implements reports.ReservationReader.
type ReservationReportRepo struct {
	txm *postgres.TxManager
}

var _ reports.ReservationReader = (*ReservationReportRepo)(nil)

// NewReservationReportRepo creates a reservation report reader.
func NewReservationReportRepo(txm *postgres.TxManager) *ReservationReportRepo {
	return &ReservationReportRepo{txm: txm}
}

// Counts returns the reservation headline counters.
func (r *ReservationReportRepo) Counts(ctx context.Context, since time.Time) (reports.ReservationCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
			COUNT(*) FILTER (WHERE created_at >= $1) AS created_since
		FROM reservations
	`
	var counts reports.ReservationCounts
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &counts, query, since); err != nil {
		return reports.ReservationCounts{}, fmt.Errorf("reservation counts: %w", err)
	}
	return counts, nil
}

// MonthlyCounts groups reservations by calendar month.
func (r *ReservationReportRepo) MonthlyCounts(ctx context.Context, from time.Time) ([]reports.MonthCount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM reservations
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`
	var rows []reports.MonthCount
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &rows, query, from); err != nil {
		return nil, fmt.Errorf("monthly counts: %w", err)
	}
	return rows, nil
}

// TopCustomers groups reservations by customer email.
func (r *ReservationReportRepo) TopCustomers(ctx context.Context, limit int) ([]reports.CustomerStat, error) {
	query := `
		SELECT email, COUNT(*) AS count
		FROM reservations
		GROUP BY email
		ORDER BY count DESC, email ASC
		LIMIT $1
	`
	var stats []reports.CustomerStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query, limit); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	return stats, nil
}

// StatusDistribution groups reservations by status.
func (r *ReservationReportRepo) StatusDistribution(ctx context.Context) ([]reports.StatusStat, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM reservations
		GROUP BY status
		ORDER BY count DESC, status ASC
	`
	var stats []reports.StatusStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		return nil, fmt.Errorf("status distribution: %w", err)
	}
	return stats, nil
}

// ResponseTimeStats aggregates handling latency over resolved
// reservations. Returns nil when none are resolved.
func (r *ReservationReportRepo) ResponseTimeStats(ctx context.Context) (*reports.ResponseTimeStats, error) {
	query := `
		SELECT
			COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS avg_response_time_ms,
			COALESCE(MAX(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS max_response_time_ms,
			COALESCE(MIN(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS min_response_time_ms
		FROM reservations
		WHERE status IN ('confirmed', 'completed', 'cancelled')
		HAVING COUNT(*) > 0
	`
	var stats reports.ResponseTimeStats
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("response time stats: %w", err)
	}
	return &stats, nil
}
