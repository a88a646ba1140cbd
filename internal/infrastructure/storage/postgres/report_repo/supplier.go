package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// SupplierReportRepo implements reports.SupplierReader.
type SupplierReportRepo struct {
	txm *postgres.TxManager
}

var _ reports.SupplierReader = (*SupplierReportRepo)(nil)

// NewSupplierReportRepo creates a supplier report reader.
func NewSupplierReportRepo(txm *postgres.TxManager) *SupplierReportRepo {
	return &SupplierReportRepo{txm: txm}
}

// Counts returns the supplier headline counters. Agreement windows are
// evaluated against the database clock.
func (r *SupplierReportRepo) Counts(ctx context.Context, since time.Time) (reports.SupplierCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active,
			COUNT(*) FILTER (WHERE NOT is_active) AS inactive,
			COUNT(*) FILTER (WHERE agreement_end < NOW()) AS expired,
			COUNT(*) FILTER (WHERE agreement_end >= NOW()
				AND agreement_end <= NOW() + INTERVAL '30 days') AS expiring_soon,
			COUNT(*) FILTER (WHERE created_at >= $1) AS created_since
		FROM suppliers
	`
	var counts reports.SupplierCounts
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &counts, query, since); err != nil {
		return reports.SupplierCounts{}, fmt.Errorf("supplier counts: %w", err)
	}
	return counts, nil
}

// LocationDistribution groups suppliers by location.
func (r *SupplierReportRepo) LocationDistribution(ctx context.Context) ([]reports.LocationStat, error) {
	query := `
		SELECT location, COUNT(*) AS count
		FROM suppliers
		GROUP BY location
		ORDER BY count DESC, location ASC
	`
	var stats []reports.LocationStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		return nil, fmt.Errorf("location distribution: %w", err)
	}
	return stats, nil
}
