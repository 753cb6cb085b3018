package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const enrollmentColumns = `id, plan_id, user_id, mode, status, payment_status, enrollment_type, team_name, team_size,
	registration_id, approved_by, holds_slot, enrolled_at, updated_at`

// Conditional increment: a concurrent reservation blocks on the row lock and
// re-checks the capacity predicate before it can succeed.
const sqlReserveSlot = `
UPDATE plans
SET reserved_slots = reserved_slots + 1,
    registration_seq = registration_seq + 1
WHERE id = $1
  AND published = TRUE
  AND (capacity IS NULL OR reserved_slots < capacity)
RETURNING code, registration_seq
`

const sqlPlanIsPublished = `
SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1 AND published = TRUE)
`

const sqlCreateEnrollment = `
INSERT INTO enrollments (plan_id, user_id, mode, status, payment_status, enrollment_type, team_name, team_size, registration_id, holds_slot)
VALUES ($1, $2, $3, 'PENDING', 'NONE', $4, $5, $6, $7, TRUE)
RETURNING ` + enrollmentColumns

// CreateEnrollmentWithSlot reserves a plan slot and creates a PENDING enrollment in one transaction.
// Returns ErrNotFound for unknown or unpublished plans and ErrNoCapacity when the plan is full.
func (s *Store) CreateEnrollmentWithSlot(ctx context.Context, params CreateEnrollmentParams) (Enrollment, error) {
	var enrollment Enrollment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var reserved struct {
			Code string `db:"code"`
			Seq  int64  `db:"registration_seq"`
		}
		err := tx.GetContext(ctx, &reserved, sqlReserveSlot, params.PlanID)
		if errors.Is(err, sql.ErrNoRows) {
			var published bool
			if err := tx.GetContext(ctx, &published, sqlPlanIsPublished, params.PlanID); err != nil {
				return fmt.Errorf("failed to check plan: %w", err)
			}
			if !published {
				return ErrNotFound
			}
			return ErrNoCapacity
		}
		if err != nil {
			return fmt.Errorf("failed to reserve slot: %w", err)
		}

		registrationID := params.RegistrationID(reserved.Code, reserved.Seq)
		err = tx.GetContext(ctx, &enrollment, sqlCreateEnrollment,
			params.PlanID,
			params.UserID,
			params.Mode,
			params.Type,
			params.TeamName,
			params.TeamSize,
			registrationID,
		)
		if err != nil {
			return fmt.Errorf("failed to create enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	return enrollment, nil
}

const sqlGetEnrollmentByID = `
SELECT ` + enrollmentColumns + `
FROM enrollments
WHERE id = $1
`

// GetEnrollmentByID retrieves an enrollment by ID
func (s *Store) GetEnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (Enrollment, error) {
	var enrollment Enrollment
	err := s.db.GetContext(ctx, &enrollment, sqlGetEnrollmentByID, enrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Enrollment{}, ErrNotFound
		}
		return Enrollment{}, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return enrollment, nil
}

const sqlLockEnrollment = `
SELECT ` + enrollmentColumns + `
FROM enrollments
WHERE id = $1
FOR UPDATE
`

const sqlCountStartedTasks = `
SELECT COUNT(*)
FROM task_progress
WHERE enrollment_id = $1 AND status IN ('STARTED', 'DONE')
`

const sqlUpdateEnrollmentState = `
UPDATE enrollments
SET status = $2,
    payment_status = $3,
    approved_by = $4,
    holds_slot = $5,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + enrollmentColumns

const sqlReleaseSlot = `
UPDATE plans
SET reserved_slots = reserved_slots - 1
WHERE id = $1 AND reserved_slots > 0
`

// UpdateEnrollmentLocked loads the enrollment under a row lock, lets mutate change it, and persists
// the result. A mutate error aborts the transaction. Dropping HoldsSlot releases the plan slot.
func (s *Store) UpdateEnrollmentLocked(ctx context.Context, enrollmentID uuid.UUID, mutate func(*LockedEnrollment) error) (Enrollment, error) {
	var result Enrollment
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var locked LockedEnrollment
		if err := tx.GetContext(ctx, &locked.Enrollment, sqlLockEnrollment, enrollmentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock enrollment: %w", err)
		}
		if err := tx.GetContext(ctx, &locked.StartedTasks, sqlCountStartedTasks, enrollmentID); err != nil {
			return fmt.Errorf("failed to count started tasks: %w", err)
		}

		before := locked.Enrollment
		if err := mutate(&locked); err != nil {
			return err
		}
		after := locked.Enrollment

		if !enrollmentStateChanged(before, after) {
			result = before
			return nil
		}

		err := tx.GetContext(ctx, &result, sqlUpdateEnrollmentState,
			enrollmentID,
			after.Status,
			after.PaymentStatus,
			after.ApprovedBy,
			after.HoldsSlot,
		)
		if err != nil {
			return fmt.Errorf("failed to update enrollment: %w", err)
		}

		if before.HoldsSlot && !after.HoldsSlot {
			if _, err := tx.ExecContext(ctx, sqlReleaseSlot, before.PlanID); err != nil {
				return fmt.Errorf("failed to release slot: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	return result, nil
}

func enrollmentStateChanged(a, b Enrollment) bool {
	if a.Status != b.Status || a.PaymentStatus != b.PaymentStatus || a.HoldsSlot != b.HoldsSlot {
		return true
	}
	if (a.ApprovedBy == nil) != (b.ApprovedBy == nil) {
		return true
	}
	return a.ApprovedBy != nil && *a.ApprovedBy != *b.ApprovedBy
}

const sqlListEnrollmentsByUser = `
SELECT ` + enrollmentColumns + `
FROM enrollments
WHERE user_id = $1
ORDER BY enrolled_at DESC
`

// ListEnrollmentsByUser retrieves a user's enrollments, newest first
func (s *Store) ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error) {
	var enrollments []Enrollment
	if err := s.db.SelectContext(ctx, &enrollments, sqlListEnrollmentsByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
