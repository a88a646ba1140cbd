package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// QuotationReportRepo implements reports.QuotationReader.
type QuotationReportRepo struct {
	txm *postgres.TxManager
}

var _ reports.QuotationReader = (*QuotationReportRepo)(nil)

// NewQuotationReportRepo creates a quotation report reader.
func NewQuotationReportRepo(txm *postgres.TxManager) *QuotationReportRepo {
	return &QuotationReportRepo{txm: txm}
}

// Counts returns the quotation headline counters.
func (r *QuotationReportRepo) Counts(ctx context.Context, since time.Time) (reports.QuotationCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'processing') AS processing,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
			COUNT(*) FILTER (WHERE created_at >= $1) AS created_since
		FROM quotations
	`
	var counts reports.QuotationCounts
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &counts, query, since); err != nil {
		return reports.QuotationCounts{}, fmt.Errorf("quotation counts: %w", err)
	}
	return counts, nil
}

// RevenueStats aggregates completed-quotation amounts. Returns nil
// when no quotation has completed yet.
func (r *QuotationReportRepo) RevenueStats(ctx context.Context) (*reports.RevenueStats, error) {
	query := `
		SELECT
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS avg_quotation_value,
			COALESCE(MAX(total_amount), 0) AS max_quotation_value,
			COALESCE(MIN(total_amount), 0) AS min_quotation_value
		FROM quotations
		WHERE status = 'completed'
		HAVING COUNT(*) > 0
	`
	var stats reports.RevenueStats
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	return &stats, nil
}

// CategoryStats groups quotations by product category, most quoted
// categories first.
func (r *QuotationReportRepo) CategoryStats(ctx context.Context) ([]reports.QuotationCategoryStat, error) {
	query := `
		SELECT
			product_category AS category,
			COUNT(*) AS count,
			COALESCE(SUM(total_amount), 0) AS total_value
		FROM quotations
		GROUP BY product_category
		ORDER BY count DESC, total_value DESC, category ASC
	`
	var stats []reports.QuotationCategoryStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		return nil, fmt.Errorf("quotation category stats: %w", err)
	}
	return stats, nil
}

// MonthlyCounts groups quotations by calendar month.
func (r *QuotationReportRepo) MonthlyCounts(ctx context.Context, from time.Time) ([]reports.MonthCount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM quotations
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

// MonthlyRevenue sums completed-quotation amounts per calendar month.
func (r *QuotationReportRepo) MonthlyRevenue(ctx context.Context, from time.Time) ([]reports.MonthValue, error) {
	query := `
		SELECT
			to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
			COALESCE(SUM(total_amount), 0) AS value
		FROM quotations
		WHERE status = 'completed' AND created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`
	var rows []reports.MonthValue
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &rows, query, from); err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	return rows, nil
}

// ResponseTimeStats aggregates processing latency over closed
// quotations. Returns nil when none are closed.
func (r *QuotationReportRepo) ResponseTimeStats(ctx context.Context) (*reports.ResponseTimeStats, error) {
	query := `
		SELECT
			COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS avg_response_time_ms,
			COALESCE(MAX(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS max_response_time_ms,
			COALESCE(MIN(EXTRACT(EPOCH FROM (updated_at - created_at)) * 1000), 0)::float8 AS min_response_time_ms
		FROM quotations
		WHERE status IN ('completed', 'rejected')
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
