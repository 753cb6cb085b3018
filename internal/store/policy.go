package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrPolicyExists is returned when a write collides with another policy on the same scope.
var ErrPolicyExists = errors.New("policy already exists for scope")

const pgUniqueViolation = "23505"

const policyColumns = `id, scope, scope_ref, document, active, created_at, updated_at`

const sqlGetActivePolicies = `
SELECT ` + policyColumns + `
FROM progression_policies
WHERE active = TRUE
  AND (scope = 'GLOBAL'
       OR (scope = 'COHORT' AND scope_ref = ANY($2))
       OR (scope = 'USER' AND scope_ref = $1))
ORDER BY created_at ASC, id ASC
`

// GetActivePolicies retrieves the active policies that apply to a user, oldest first
func (s *Store) GetActivePolicies(ctx context.Context, userID uuid.UUID, cohorts []string) ([]ProgressionPolicy, error) {
	if cohorts == nil {
		cohorts = []string{}
	}
	var policies []ProgressionPolicy
	err := s.db.SelectContext(ctx, &policies, sqlGetActivePolicies, userID.String(), pq.Array(cohorts))
	if err != nil {
		return nil, fmt.Errorf("failed to get active policies: %w", err)
	}
	return policies, nil
}

const sqlGetPolicyByID = `
SELECT ` + policyColumns + `
FROM progression_policies
WHERE id = $1
`

// GetPolicyByID retrieves a policy by ID
func (s *Store) GetPolicyByID(ctx context.Context, policyID uuid.UUID) (ProgressionPolicy, error) {
	var policy ProgressionPolicy
	err := s.db.GetContext(ctx, &policy, sqlGetPolicyByID, policyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProgressionPolicy{}, ErrNotFound
		}
		return ProgressionPolicy{}, fmt.Errorf("failed to get policy: %w", err)
	}
	return policy, nil
}

const sqlUpdatePolicyByID = `
UPDATE progression_policies
SET scope = $2, scope_ref = $3, document = $4, active = $5, updated_at = NOW()
WHERE id = $1
RETURNING ` + policyColumns

const sqlUpsertPolicyByScope = `
INSERT INTO progression_policies (scope, scope_ref, document, active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (scope, (COALESCE(scope_ref, ''))) DO UPDATE
SET document = EXCLUDED.document, active = EXCLUDED.active, updated_at = NOW()
RETURNING ` + policyColumns

// UpsertPolicy updates the policy named by params.ID, or creates/replaces the policy keyed by
// (scope, scope_ref). Returns ErrNotFound for an unknown ID and ErrPolicyExists when an update
// would collide with another policy's scope.
func (s *Store) UpsertPolicy(ctx context.Context, params UpsertPolicyParams) (ProgressionPolicy, error) {
	var (
		policy ProgressionPolicy
		err    error
	)
	if params.ID != nil {
		err = s.db.GetContext(ctx, &policy, sqlUpdatePolicyByID,
			*params.ID, params.Scope, params.ScopeRef, params.Document, params.Active)
	} else {
		err = s.db.GetContext(ctx, &policy, sqlUpsertPolicyByScope,
			params.Scope, params.ScopeRef, params.Document, params.Active)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProgressionPolicy{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ProgressionPolicy{}, ErrPolicyExists
		}
		return ProgressionPolicy{}, fmt.Errorf("failed to upsert policy: %w", err)
	}
	return policy, nil
}

const sqlDeactivatePolicy = `
UPDATE progression_policies
SET active = FALSE, updated_at = NOW()
WHERE id = $1
`

// DeactivatePolicy turns a policy off without deleting it
func (s *Store) DeactivatePolicy(ctx context.Context, policyID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeactivatePolicy, policyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate policy: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
