package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
)

// UserReportRepo implements reports.UserReader.
type UserReportRepo struct {
	txm *postgres.TxManager
}

var _ reports.UserReader = (*UserReportRepo)(nil)

// NewUserReportRepo creates a user report reader.
func NewUserReportRepo(txm *postgres.TxManager) *UserReportRepo {
	return &UserReportRepo{txm: txm}
}

// Counts returns the user headline counters.
func (r *UserReportRepo) Counts(ctx context.Context, since time.Time) (reports.UserCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE role = 'admin') AS admins,
			COUNT(*) FILTER (WHERE role = 'customer') AS customers,
			COUNT(*) FILTER (WHERE created_at >= $1) AS created_since
		FROM users
	`
	var counts reports.UserCounts
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &counts, query, since); err != nil {
		return reports.UserCounts{}, fmt.Errorf("user counts: %w", err)
	}
	return counts, nil
}

// RegistrationsByDay groups registrations by calendar day.
func (r *UserReportRepo) RegistrationsByDay(ctx context.Context, from time.Time) ([]reports.DayCount, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
		FROM users
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`
	var rows []reports.DayCount
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &rows, query, from); err != nil {
		return nil, fmt.Errorf("registrations by day: %w", err)
	}
	return rows, nil
}

// LoginsByDay groups users by the calendar day of their last login.
func (r *UserReportRepo) LoginsByDay(ctx context.Context, from time.Time) ([]reports.DayCount, error) {
	query := `
		SELECT date_trunc('day', last_login) AS day, COUNT(*) AS count
		FROM users
		WHERE last_login IS NOT NULL AND last_login >= $1
		GROUP BY 1
		ORDER BY 1
	`
	var rows []reports.DayCount
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &rows, query, from); err != nil {
		return nil, fmt.Errorf("logins by day: %w", err)
	}
	return rows, nil
}

// ActiveSince counts users who logged in at or after since.
func (r *UserReportRepo) ActiveSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE last_login IS NOT NULL AND last_login >= $1`

	var n int64
	if err := r.txm.Querier(ctx).QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("active users: %w", err)
	}
	return n, nil
}

// LoginStats aggregates login counts and last-login bounds over all
// users. The timestamp bounds stay NULL when nobody has logged in.
func (r *UserReportRepo) LoginStats(ctx context.Context) (reports.LoginStats, error) {
	query := `
		SELECT
			COALESCE(AVG(login_count), 0)::float8 AS avg,
			COALESCE(MAX(login_count), 0) AS max,
			COALESCE(MIN(login_count), 0) AS min,
			MAX(last_login) AS newest_last_login,
			MIN(last_login) AS oldest_last_login
		FROM users
	`
	var stats reports.LoginStats
	if err := pgxscan.Get(ctx, r.txm.Querier(ctx), &stats, query); err != nil {
		return reports.LoginStats{}, fmt.Errorf("login stats: %w", err)
	}
	return stats, nil
}

// TopByLoginCount lists the most active customer accounts.
func (r *UserReportRepo) TopByLoginCount(ctx context.Context, limit int) ([]reports.UserActivity, error) {
	query := `
		SELECT full_name, email, login_count, last_login
		FROM users
		WHERE role = 'customer'
		ORDER BY login_count DESC, email ASC
		LIMIT $1
	`
	var users []reports.UserActivity
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &users, query, limit); err != nil {
		return nil, fmt.Errorf("top by login count: %w", err)
	}
	return users, nil
}

// LoginActivity lists every user's login projection.
func (r *UserReportRepo) LoginActivity(ctx context.Context) ([]reports.UserActivity, error) {
	query := `
		SELECT full_name, email, login_count, last_login
		FROM users
		ORDER BY login_count DESC, email ASC
	`
	var users []reports.UserActivity
	if err := pgxscan.Select(ctx, r.txm.Querier(ctx), &users, query); err != nil {
		return nil, fmt.Errorf("login activity: %w", err)
	}
	return users, nil
}
