package order_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/reservation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

const reservationTable = "reservations"

var reservationCols = []string{
	"id", "status", "email", "created_at", "updated_at",
}

// ReservationRepo persists reservations.
type ReservationRepo struct {
	txm *postgres.TxManager
}

var _ reservation.Repository = (*ReservationRepo)(nil)

// NewReservationRepo creates a reservation repository.
func NewReservationRepo(txm *postgres.TxManager) *ReservationRepo {
	return &ReservationRepo{txm: txm}
}

// Create inserts a new reservation.
func (r *ReservationRepo) Create(ctx context.Context, res *reservation.Reservation) error {
	sql, args, err := qb.Insert(reservationTable).
		Columns(reservationCols...).
		Values(res.ID, res.Status, res.Email, res.CreatedAt, res.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by ID.
func (r *ReservationRepo) GetByID(ctx context.Context, reservationID id.ID) (*reservation.Reservation, error) {
	sql, args, err := qb.Select(reservationCols...).
		From(reservationTable).
		Where(squirrel.Eq{"id": reservationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var res reservation.Reservation
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &res, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("reservation", reservationID.String())
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// List retrieves reservations matching the filter, newest first, with
// the total count before pagination.
func (r *ReservationRepo) List(ctx context.Context, filter reservation.ListFilter) ([]reservation.Reservation, int, error) {
	q := qb.Select(reservationCols...).From(reservationTable)

	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Email != "" {
		q = q.Where(squirrel.Eq{"email": filter.Email})
	}

	countSQL, countArgs, err := qb.Select("COUNT(*)").FromSelect(q, "sub").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txm.Querier(ctx)
	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
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

	var items []reservation.Reservation
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	return items, total, nil
}

// Update modifies an existing reservation.
func (r *ReservationRepo) Update(ctx context.Context, res *reservation.Reservation) error {
	sql, args, err := qb.Update(reservationTable).
		Set("status", res.Status).
		Set("email", res.Email).
		Set("updated_at", res.UpdatedAt).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("reservation", res.ID.String())
	}
	return nil
}

// Delete removes a reservation.
func (r *ReservationRepo) Delete(ctx context.Context, reservationID id.ID) error {
	sql, args, err := qb.Delete(reservationTable).
		Where(squirrel.Eq{"id": reservationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("reservation", reservationID.String())
	}
	return nil
}
