package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store. Processors depend
// on narrow slices of it declared next to their own code.
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Plan operations
	GetPlanByID(ctx context.Context, planID uuid.UUID) (Plan, error)
	ListPublishedPlans(ctx context.Context) ([]Plan, error)
	GetPlanTask(ctx context.Context, planID, taskID uuid.UUID) (PlanTask, error)
	GetFilterDictionary(ctx context.Context) (FilterDictionary, error)

	// Enrollment operations
	CreateEnrollmentWithSlot(ctx context.Context, params CreateEnrollmentParams) (Enrollment, error)
	GetEnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (Enrollment, error)
	UpdateEnrollmentLocked(ctx context.Context, enrollmentID uuid.UUID, mutate func(*LockedEnrollment) error) (Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error)

	// Task progress operations
	CompleteTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(Enrollment) error) (TaskProgress, bool, error)
	StartTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(Enrollment) error) (TaskProgress, bool, error)
	ListTaskProgress(ctx context.Context, enrollmentID uuid.UUID) ([]TaskProgress, error)
	GetLevelProgress(ctx context.Context, userID uuid.UUID) ([]LevelProgress, error)

	// Level operations
	UpsertUserLevelMax(ctx context.Context, userID uuid.UUID, difficulty Difficulty, level int) (UserLevel, error)
	GetUserLevels(ctx context.Context, userID uuid.UUID) ([]UserLevel, error)

	// Policy operations
	GetActivePolicies(ctx context.Context, userID uuid.UUID, cohorts []string) ([]ProgressionPolicy, error)
	GetPolicyByID(ctx context.Context, policyID uuid.UUID) (ProgressionPolicy, error)
	UpsertPolicy(ctx context.Context, params UpsertPolicyParams) (ProgressionPolicy, error)
	DeactivatePolicy(ctx context.Context, policyID uuid.UUID) error

	// User statistics operations
	EnsureUserStatistics(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUserStatistics(ctx context.Context, userID uuid.UUID) (UserStatistics, error)
	SetUserStatus(ctx context.Context, userID uuid.UUID, status UserStatus) error
	ReplaceUserCohorts(ctx context.Context, userID uuid.UUID, cohorts []string) error
	GetUserCohorts(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Leaderboard operations
	GetCompletionTotals(ctx context.Context, difficulty Difficulty) ([]CompletionTotals, error)
	ReplaceLeaderboardSnapshot(ctx context.Context, difficulty Difficulty, entries []LeaderboardEntry) error
	GetLeaderboardWindow(ctx context.Context, difficulty Difficulty, fromRank, toRank int) ([]LeaderboardEntry, error)
	CountLeaderboardEntries(ctx context.Context, difficulty Difficulty) (int, error)

	// Outbox operations
	InsertOutboxEvent(ctx context.Context, params CreateOutboxEventParams) error
	ListPendingOutboxEvents(ctx context.Context, limit, maxAttempts int) ([]OutboxEvent, error)
	MarkOutboxEventDelivered(ctx context.Context, eventID uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, eventID uuid.UUID, lastError string) error
}

var _ Storer = (*Store)(nil)
