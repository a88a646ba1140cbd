// Package order_repo provides PostgreSQL implementations for the
// order document repositories.
package order_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/quotation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// qb is the shared squirrel builder with PostgreSQL placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const quotationTable = "quotations"

var quotationCols = []string{
	"id", "status", "product_category", "total_amount", "created_at", "updated_at",
}

// QuotationRepo persists quotations.
type QuotationRepo struct {
	txm *postgres.TxManager
}

var _ quotation.Repository = (*QuotationRepo)(nil)

// NewQuotationRepo creates a quotation repository.
func NewQuotationRepo(txm *postgres.TxManager) *QuotationRepo {
	return &QuotationRepo{txm: txm}
}

// Create inserts a new quotation.
func (r *QuotationRepo) Create(ctx context.Context, q *quotation.Quotation) error {
	sql, args, err := qb.Insert(quotationTable).
		Columns(quotationCols...).
		Values(q.ID, q.Status, q.ProductCategory, q.TotalAmount, q.CreatedAt, q.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// GetByID retrieves a quotation by ID.
func (r *QuotationRepo) GetByID(ctx context.Context, quotationID id.ID) (*quotation.Quotation, error) {
	sql, args, err := qb.Select(quotationCols...).
		From(quotationTable).
		Where(squirrel.Eq{"id": quotationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var q quotation.Quotation
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &q, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("quotation", quotationID.String())
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &q, nil
}

// List retrieves quotations matching the filter, newest first, with
// the total count before pagination.
func (r *QuotationRepo) List(ctx context.Context, filter quotation.ListFilter) ([]quotation.Quotation, int, error) {
	q := qb.Select(quotationCols...).From(quotationTable)

	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"product_category": filter.Category})
	}

	countSQL, countArgs, err := qb.Select("COUNT(*)").FromSelect(q, "sub").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txm.Querier(ctx)
	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quotations: %w", err)
	}

	q = q.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []quotation.Quotation
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list quotations: %w", err)
	}
	return items, total, nil
}

// Update modifies an existing quotation.
func (r *QuotationRepo) Update(ctx context.Context, q *quotation.Quotation) error {
	sql, args, err := qb.Update(quotationTable).
		Set("status", q.Status).
		Set("product_category", q.ProductCategory).
		Set("total_amount", q.TotalAmount).
		Set("updated_at", q.UpdatedAt).
		Where(squirrel.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("quotation", q.ID.String())
	}
	return nil
}

// Delete removes a quotation.
func (r *QuotationRepo) Delete(ctx context.Context, quotationID id.ID) error {
	sql, args, err := qb.Delete(quotationTable).
		Where(squirrel.Eq{"id": quotationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("quotation", quotationID.String())
	}
	return nil
}
