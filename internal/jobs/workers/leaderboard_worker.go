package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"hunt-server/internal/jobs"
	"hunt-server/internal/observability"

	"github.com/hibiken/asynq"
)

// LeaderboardWorker handles deferred leaderboard regeneration jobs
type LeaderboardWorker struct {
	regenerator LeaderboardRegenerator
	logger      *observability.Logger
}

// NewLeaderboardWorker creates a new leaderboard worker
func NewLeaderboardWorker(regenerator LeaderboardRegenerator, logger *observability.Logger) *LeaderboardWorker {
	return &LeaderboardWorker{
		regenerator: regenerator,
		logger:      logger,
	}
}

// ProcessLeaderboardRegenerationTask processes a leaderboard regeneration task
func (w *LeaderboardWorker) ProcessLeaderboardRegenerationTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.LeaderboardRegenerationJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal leaderboard regeneration job payload", err)
		return fmt.Errorf("failed to unmarshal leaderboard regeneration job payload: %v: %w", err, asynq.SkipRetry)
	}
	if !payload.Difficulty.Valid() {
		w.logger.Warn(ctx, fmt.Sprintf("unknown difficulty %q, dropping", payload.Difficulty))
		return fmt.Errorf("unknown difficulty %q: %w", payload.Difficulty, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "difficulty", Value: string(payload.Difficulty)})

	ranked, err := w.regenerator.RegenerateOverall(ctx, payload.Difficulty)
	if err != nil {
		w.logger.Error(ctx, "failed to regenerate leaderboard", err)
		return fmt.Errorf("failed to regenerate leaderboard: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("regenerated leaderboard with %d entries", ranked))
	return nil
}
