package jobs

import (
	"context"
	"fmt"

	"hunt-server/internal/observability"
)

// AllRegenerator rebuilds the standings of every difficulty
type AllRegenerator interface {
	RegenerateAll(ctx context.Context) error
}

// LeaderboardRegenerationJob rebuilds every leaderboard on a schedule
type LeaderboardRegenerationJob struct {
	regenerator AllRegenerator
	logger      *observability.Logger
}

// NewLeaderboardRegenerationJob creates a new leaderboard regeneration job
func NewLeaderboardRegenerationJob(regenerator AllRegenerator, logger *observability.Logger) *LeaderboardRegenerationJob {
	return &LeaderboardRegenerationJob{
		regenerator: regenerator,
		logger:      logger,
	}
}

// Name returns the job name
func (j *LeaderboardRegenerationJob) Name() string {
	return "leaderboard_regeneration"
}

// Run regenerates all leaderboards
func (j *LeaderboardRegenerationJob) Run(ctx context.Context) error {
	if err := j.regenerator.RegenerateAll(ctx); err != nil {
		return fmt.Errorf("failed to regenerate leaderboards: %w", err)
	}
	return nil
}
