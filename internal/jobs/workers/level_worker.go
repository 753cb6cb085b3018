package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"hunt-server/internal/jobs"
	levelsProcessor "hunt-server/internal/levels/processor"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=level_worker.go -destination=mocks_test.go -package=workers

// LevelEvaluator re-evaluates a user's reached levels
type LevelEvaluator interface {
	EvaluateOnTaskCompletion(ctx context.Context, userID uuid.UUID) (map[store.Difficulty]levelsProcessor.LevelSummary, error)
}

// LeaderboardRegenerator rebuilds the standings of one difficulty
type LeaderboardRegenerator interface {
	RegenerateOverall(ctx context.Context, difficulty store.Difficulty) (int, error)
}

// LevelWorker handles deferred level evaluation jobs
type LevelWorker struct {
	evaluator LevelEvaluator
	logger    *observability.Logger
}

// NewLevelWorker creates a new level worker
func NewLevelWorker(evaluator LevelEvaluator, logger *observability.Logger) *LevelWorker {
	return &LevelWorker{
		evaluator: evaluator,
		logger:    logger,
	}
}

// ProcessLevelEvaluationTask processes a level evaluation task
func (w *LevelWorker) ProcessLevelEvaluationTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.LevelEvaluationJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal level evaluation job payload", err)
		return fmt.Errorf("failed to unmarshal level evaluation job payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.UserID == uuid.Nil {
		w.logger.Warn(ctx, "level evaluation job without user id, dropping")
		return fmt.Errorf("level evaluation job without user id: %w", asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: payload.UserID.String()})

	summary, err := w.evaluator.EvaluateOnTaskCompletion(ctx, payload.UserID)
	if err != nil {
		w.logger.Error(ctx, "failed to evaluate levels", err)
		return fmt.Errorf("failed to evaluate levels: %w", err)
	}

	for difficulty, s := range summary {
		w.logger.Debug(ctx, fmt.Sprintf("%s: reached %d, highest %d", difficulty, s.Reached, s.Highest))
	}
	return nil
}
