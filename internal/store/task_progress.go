package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqlShareLockEnrollment = `
SELECT ` + enrollmentColumns + `
FROM enrollments
WHERE id = $1
FOR SHARE
`

const sqlCompleteTask = `
INSERT INTO task_progress (enrollment_id, task_id, status, updated_at)
VALUES ($1, $2, 'DONE', NOW())
ON CONFLICT (enrollment_id, task_id) DO UPDATE
SET status = 'DONE', updated_at = NOW()
WHERE task_progress.status <> 'DONE'
RETURNING id, enrollment_id, task_id, status, updated_at
`

const sqlStartTask = `
INSERT INTO task_progress (enrollment_id, task_id, status, updated_at)
VALUES ($1, $2, 'STARTED', NOW())
ON CONFLICT (enrollment_id, task_id) DO NOTHING
RETURNING id, enrollment_id, task_id, status, updated_at
`

const sqlGetTaskProgress = `
SELECT id, enrollment_id, task_id, status, updated_at
FROM task_progress
WHERE enrollment_id = $1 AND task_id = $2
`

// CompleteTaskProgress marks the (enrollment, task) row DONE. guard runs against the enrollment while
// it is share-locked, so a concurrent cancel cannot interleave. changed is false when the row was
// already DONE.
func (s *Store) CompleteTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(Enrollment) error) (TaskProgress, bool, error) {
	return s.touchTaskProgress(ctx, sqlCompleteTask, enrollmentID, taskID, guard)
}

// StartTaskProgress creates the (enrollment, task) row as STARTED if it does not exist yet.
func (s *Store) StartTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(Enrollment) error) (TaskProgress, bool, error) {
	return s.touchTaskProgress(ctx, sqlStartTask, enrollmentID, taskID, guard)
}

func (s *Store) touchTaskProgress(ctx context.Context, query string, enrollmentID, taskID uuid.UUID, guard func(Enrollment) error) (TaskProgress, bool, error) {
	var (
		progress TaskProgress
		changed  bool
	)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var enrollment Enrollment
		if err := tx.GetContext(ctx, &enrollment, sqlShareLockEnrollment, enrollmentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock enrollment: %w", err)
		}
		if guard != nil {
			if err := guard(enrollment); err != nil {
				return err
			}
		}

		err := tx.GetContext(ctx, &progress, query, enrollmentID, taskID)
		if err == nil {
			changed = true
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to write task progress: %w", err)
		}

		if err := tx.GetContext(ctx, &progress, sqlGetTaskProgress, enrollmentID, taskID); err != nil {
			return fmt.Errorf("failed to get task progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return TaskProgress{}, false, err
	}
	return progress, changed, nil
}

const sqlListTaskProgress = `
SELECT id, enrollment_id, task_id, status, updated_at
FROM task_progress
WHERE enrollment_id = $1
ORDER BY updated_at ASC
`

// ListTaskProgress retrieves the progress rows of an enrollment
func (s *Store) ListTaskProgress(ctx context.Context, enrollmentID uuid.UUID) ([]TaskProgress, error) {
	var rows []TaskProgress
	if err := s.db.SelectContext(ctx, &rows, sqlListTaskProgress, enrollmentID); err != nil {
		return nil, fmt.Errorf("failed to list task progress: %w", err)
	}
	return rows, nil
}

// Per (difficulty, level): tasks done, crucial done/total, and how many of the
// user's enrollments have every task of that level done.
const sqlGetLevelProgress = `
WITH live AS (
    SELECT id, plan_id
    FROM enrollments
    WHERE user_id = $1 AND status IN ('PENDING', 'CONFIRMED')
),
touched AS (
    SELECT l.id AS enrollment_id, t.difficulty, t.level_number, t.is_crucial,
           (tp.status IS NOT DISTINCT FROM 'DONE') AS done
    FROM live l
    JOIN plan_tasks t ON t.plan_id = l.plan_id
    LEFT JOIN task_progress tp ON tp.enrollment_id = l.id AND tp.task_id = t.id
),
per_enrollment AS (
    SELECT enrollment_id, difficulty, level_number, BOOL_AND(done) AS complete
    FROM touched
    GROUP BY enrollment_id, difficulty, level_number
)
SELECT t.difficulty,
       t.level_number,
       COUNT(*) FILTER (WHERE t.done) AS tasks_done,
       COUNT(*) FILTER (WHERE t.done AND t.is_crucial) AS crucial_done,
       COUNT(*) FILTER (WHERE t.is_crucial) AS crucial_total,
       (SELECT COUNT(*) FROM per_enrollment p
         WHERE p.difficulty = t.difficulty AND p.level_number = t.level_number AND p.complete) AS plans_completed
FROM touched t
GROUP BY t.difficulty, t.level_number
ORDER BY t.difficulty, t.level_number
`

// GetLevelProgress aggregates a user's task history per difficulty and level
func (s *Store) GetLevelProgress(ctx context.Context, userID uuid.UUID) ([]LevelProgress, error) {
	var rows []LevelProgress
	if err := s.db.SelectContext(ctx, &rows, sqlGetLevelProgress, userID); err != nil {
		return nil, fmt.Errorf("failed to get level progress: %w", err)
	}
	return rows, nil
}
