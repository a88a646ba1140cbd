// Package report_repo provides the PostgreSQL implementations of the
// report engine's collection readers. Queries are written in raw SQL
// since they are aggregation-heavy and fixed in shape.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// ProductReportRepo implements reports.ProductReader.
type ProductReportRepo struct {
	txm *postgres.TxManager
}

var _ reports.ProductReader = (*ProductReportRepo)(nil)

// NewProductReportRepo creates a product report reader.
func NewProductReportRepo(txm *postgres.TxManager) *ProductReportRepo {
	return &ProductReportRepo{txm: txm}
}

// Counts returns the product headline counters. Low-stock and
// out-of-stock cover active products only; out-of-stock is a subset of
// low-stock here, the detail lists are the disjoint ones.
func (r *ProductReportRepo) Counts(ctx context.Context, since time.Time) (reports.ProductCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active,
			COUNT(*) FILTER (WHERE is_active AND stock <= min_stock) AS low_stock,
			COUNT(*) FILTER (WHERE is_active AND stock = 0) AS out_of_stock,
			COUNT(*) FILTER (WHERE created_at >= $1) AS created_since
		FROM products
	`
	var counts reports.ProductCounts
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &counts, query, since); err != nil {
		return reports.ProductCounts{}, fmt.Errorf("product counts: %w", err)
	}
	return counts, nil
}

// CategoryDistribution groups active products by category.
func (r *ProductReportRepo) CategoryDistribution(ctx context.Context) ([]reports.CategoryStat, error) {
	query := `
		SELECT
			category,
			COUNT(*) AS count,
			COALESCE(SUM(price * stock), 0) AS total_stock_value
		FROM products
		WHERE is_active
		GROUP BY category
		ORDER BY count DESC, category ASC
	`
	var stats []reports.CategoryStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	return stats, nil
}

// StockValueStats aggregates prices over active products. Returns nil
// when there are no active products.
func (r *ProductReportRepo) StockValueStats(ctx context.Context) (*reports.StockValueStats, error) {
	// HAVING drops the row entirely when nothing matched, so the
	// caller can tell "no data" apart from zeros.
	query := `
		SELECT
			COALESCE(SUM(price), 0)         AS total_price,
			COALESCE(AVG(price), 0)         AS avg_price,
			COALESCE(MAX(price), 0)         AS max_price,
			COALESCE(MIN(price), 0)         AS min_price,
			COALESCE(SUM(price * stock), 0) AS total_stock_value
		FROM products
		WHERE is_active
		HAVING COUNT(*) > 0
	`
	var stats reports.StockValueStats
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stock value stats: %w", err)
	}
	return &stats, nil
}

// GroupBySupplier groups products per supplier. The inner join drops
// products whose supplier reference does not resolve.
func (r *ProductReportRepo) GroupBySupplier(ctx context.Context, activeOnly bool, limit int) ([]reports.SupplierProductStat, error) {
	query := `
		SELECT
			s.id        AS supplier_id,
			s.name      AS supplier_name,
			s.location  AS location,
			s.is_active AS is_active,
			COUNT(p.id)                         AS product_count,
			COALESCE(SUM(p.price * p.stock), 0) AS total_stock_value,
			COALESCE(AVG(p.price), 0)           AS avg_price
		FROM products p
		INNER JOIN suppliers s ON s.id = p.supplier_id
		WHERE ($1 = false OR p.is_active)
		GROUP BY s.id, s.name, s.location, s.is_active
		ORDER BY product_count DESC, supplier_name ASC
	`
	args := []any{activeOnly}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var stats []reports.SupplierProductStat
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &stats, query, args...); err != nil {
		return nil, fmt.Errorf("group by supplier: %w", err)
	}
	return stats, nil
}

// LowStock lists active products running low, most critical first.
func (r *ProductReportRepo) LowStock(ctx context.Context) ([]reports.ProductSummary, error) {
	query := `
		SELECT id, sku, name, category, price, stock, min_stock, updated_at
		FROM products
		WHERE is_active AND stock > 0 AND stock <= min_stock
		ORDER BY stock ASC, name ASC
	`
	var items []reports.ProductSummary
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &items, query); err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return items, nil
}

// OutOfStock lists active products with no stock, most recently
// touched first.
func (r *ProductReportRepo) OutOfStock(ctx context.Context) ([]reports.ProductSummary, error) {
	query := `
		SELECT id, sku, name, category, price, stock, min_stock, updated_at
		FROM products
		WHERE is_active AND stock = 0
		ORDER BY updated_at DESC, name ASC
	`
	var items []reports.ProductSummary
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &items, query); err != nil {
		return nil, fmt.Errorf("out of stock: %w", err)
	}
	return items, nil
}
