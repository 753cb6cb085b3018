package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const sqlEnsureUserStatistics = `
INSERT INTO user_statistics (user_id, status)
VALUES ($1, 'ACTIVE')
ON CONFLICT (user_id) DO NOTHING
`

// EnsureUserStatistics creates the statistics row for a user if it is missing.
// Returns true when a row was created.
func (s *Store) EnsureUserStatistics(ctx context.Context, userID uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, sqlEnsureUserStatistics, userID)
	if err != nil {
		return false, fmt.Errorf("failed to ensure user statistics: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

const sqlGetUserStatistics = `
SELECT user_id, status, created_at, updated_at
FROM user_statistics
WHERE user_id = $1
`

// GetUserStatistics retrieves the statistics row of a user
func (s *Store) GetUserStatistics(ctx context.Context, userID uuid.UUID) (UserStatistics, error) {
	var stats UserStatistics
	err := s.db.GetContext(ctx, &stats, sqlGetUserStatistics, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserStatistics{}, ErrNotFound
		}
		return UserStatistics{}, fmt.Errorf("failed to get user statistics: %w", err)
	}
	return stats, nil
}

const sqlSetUserStatus = `
INSERT INTO user_statistics (user_id, status)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET status = EXCLUDED.status, updated_at = NOW()
`

// SetUserStatus records a lifecycle status change, creating the row when needed
func (s *Store) SetUserStatus(ctx context.Context, userID uuid.UUID, status UserStatus) error {
	if _, err := s.db.ExecContext(ctx, sqlSetUserStatus, userID, status); err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}
	return nil
}

const (
	sqlDeleteUserCohorts = `DELETE FROM user_cohorts WHERE user_id = $1`
	sqlInsertUserCohorts = `
INSERT INTO user_cohorts (user_id, cohort_ref)
SELECT $1, unnest($2::text[])
ON CONFLICT DO NOTHING
`
)

// ReplaceUserCohorts overwrites the cohort memberships of a user
func (s *Store) ReplaceUserCohorts(ctx context.Context, userID uuid.UUID, cohorts []string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlDeleteUserCohorts, userID); err != nil {
			return fmt.Errorf("failed to clear user cohorts: %w", err)
		}
		if len(cohorts) == 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, sqlInsertUserCohorts, userID, pq.Array(cohorts)); err != nil {
			return fmt.Errorf("failed to insert user cohorts: %w", err)
		}
		return nil
	})
}

const sqlGetUserCohorts = `
SELECT cohort_ref
FROM user_cohorts
WHERE user_id = $1
ORDER BY cohort_ref
`

// GetUserCohorts retrieves the cohort references of a user
func (s *Store) GetUserCohorts(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var cohorts []string
	if err := s.db.SelectContext(ctx, &cohorts, sqlGetUserCohorts, userID); err != nil {
		return nil, fmt.Errorf("failed to get user cohorts: %w", err)
	}
	return cohorts, nil
}

// Suspended users drop out of the standings. A plan counts as completed when
// every task of the difficulty on it is DONE.
const sqlGetCompletionTotals = `
WITH live AS (
    SELECT e.id, e.user_id, e.plan_id
    FROM enrollments e
    LEFT JOIN user_statistics us ON us.user_id = e.user_id
    WHERE e.status IN ('PENDING', 'CONFIRMED')
      AND COALESCE(us.status, 'ACTIVE') <> 'SUSPENDED'
),
per_enrollment AS (
    SELECT l.user_id,
           l.id,
           COUNT(tp.id) AS done,
           COUNT(*) AS total,
           MAX(tp.updated_at) AS last_done
    FROM live l
    JOIN plan_tasks t ON t.plan_id = l.plan_id AND t.difficulty = $1
    LEFT JOIN task_progress tp ON tp.enrollment_id = l.id AND tp.task_id = t.id AND tp.status = 'DONE'
    GROUP BY l.user_id, l.id
)
SELECT user_id,
       SUM(done)::int AS tasks_completed,
       (COUNT(*) FILTER (WHERE done = total))::int AS plans_completed,
       MAX(last_done) AS last_completed_at
FROM per_enrollment
GROUP BY user_id
HAVING SUM(done) > 0
`

// GetCompletionTotals aggregates completion history per user for one difficulty
func (s *Store) GetCompletionTotals(ctx context.Context, difficulty Difficulty) ([]CompletionTotals, error) {
	var totals []CompletionTotals
	if err := s.db.SelectContext(ctx, &totals, sqlGetCompletionTotals, difficulty); err != nil {
		return nil, fmt.Errorf("failed to get completion totals: %w", err)
	}
	return totals, nil
}
