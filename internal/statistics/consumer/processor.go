package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=consumer

import (
	"context"
	"fmt"

	"hunt-server/internal/observability"
	"hunt-server/internal/store"
	"hunt-server/internal/workers"

	"github.com/google/uuid"
)

// Events published by the identity service
const (
	EventUserCreated     = "user.created"
	EventUserUpdated     = "user.updated"
	EventUserSuspended   = "user.suspended"
	EventUserReactivated = "user.reactivated"
)

// UserStatisticsStore persists the per-user lifecycle row
type UserStatisticsStore interface {
	EnsureUserStatistics(ctx context.Context, userID uuid.UUID) (bool, error)
	SetUserStatus(ctx context.Context, userID uuid.UUID, status store.UserStatus) error
	ReplaceUserCohorts(ctx context.Context, userID uuid.UUID, cohorts []string) error
}

// StandingsScheduler queues a leaderboard rebuild for a difficulty
type StandingsScheduler interface {
	EnqueueLeaderboardRegeneration(ctx context.Context, difficulty store.Difficulty) error
}

// UserLifecycleProcessor seeds and maintains user statistics from lifecycle events
type UserLifecycleProcessor struct {
	store     UserStatisticsStore
	standings StandingsScheduler
	logger    *observability.Logger
}

// NewUserLifecycleProcessor creates the processor. standings may be nil, in which case
// status changes reach the leaderboards on the next scheduled regeneration.
func NewUserLifecycleProcessor(stats UserStatisticsStore, standings StandingsScheduler, logger *observability.Logger) *UserLifecycleProcessor {
	return &UserLifecycleProcessor{
		store:     stats,
		standings: standings,
		logger:    logger,
	}
}

func (p *UserLifecycleProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	switch event.Type {
	case EventUserCreated, EventUserUpdated, EventUserSuspended, EventUserReactivated:
	default:
		return nil
	}

	rawID, ok := event.Data["user_id"].(string)
	if !ok || rawID == "" {
		p.logger.Error(ctx, "event missing user_id", fmt.Errorf("invalid or missing user_id"))
		return nil
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		p.logger.Error(ctx, "invalid user_id format", err)
		return nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	cohorts, hasCohorts, err := parseCohorts(event.Data)
	if err != nil {
		p.logger.Error(ctx, "invalid cohorts", err)
		return nil
	}

	created, err := p.store.EnsureUserStatistics(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to initialize user statistics", err)
		return fmt.Errorf("failed to initialize user statistics: %w", err)
	}
	if created {
		p.logger.Info(ctx, "initialized user statistics")
	}

	switch event.Type {
	case EventUserCreated, EventUserUpdated:
		if !hasCohorts {
			return nil
		}
		if err := p.store.ReplaceUserCohorts(ctx, userID, cohorts); err != nil {
			p.logger.Error(ctx, "failed to replace user cohorts", err)
			return fmt.Errorf("failed to replace user cohorts: %w", err)
		}
		return nil
	case EventUserSuspended:
		return p.setStatus(ctx, userID, store.UserStatusSuspended)
	default:
		return p.setStatus(ctx, userID, store.UserStatusActive)
	}
}

func (p *UserLifecycleProcessor) Name() string {
	return "user-lifecycle"
}

func (p *UserLifecycleProcessor) setStatus(ctx context.Context, userID uuid.UUID, status store.UserStatus) error {
	if err := p.store.SetUserStatus(ctx, userID, status); err != nil {
		p.logger.Error(ctx, "failed to set user status", err)
		return fmt.Errorf("failed to set user status: %w", err)
	}
	p.logger.Info(ctx, fmt.Sprintf("user status set to %s", status))

	if p.standings == nil {
		return nil
	}
	for _, difficulty := range store.Difficulties {
		if err := p.standings.EnqueueLeaderboardRegeneration(ctx, difficulty); err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "difficulty", Value: string(difficulty)},
			), "failed to schedule leaderboard regeneration", err)
		}
	}
	return nil
}

// parseCohorts reads the optional cohorts array. A present but empty array clears memberships.
func parseCohorts(data map[string]interface{}) ([]string, bool, error) {
	raw, ok := data["cohorts"]
	if !ok || raw == nil {
		return nil, false, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, false, fmt.Errorf("cohorts must be an array, got %T", raw)
	}
	cohorts := make([]string, 0, len(items))
	for _, item := range items {
		ref, ok := item.(string)
		if !ok || ref == "" {
			return nil, false, fmt.Errorf("cohort reference must be a non-empty string")
		}
		cohorts = append(cohorts, ref)
	}
	return cohorts, true, nil
}
