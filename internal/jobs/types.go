package jobs

import (
	"encoding/json"
	"time"

	"hunt-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeLevelEvaluation = "levels:evaluate"

	// Low priority queue
	TypeLeaderboardRegeneration = "leaderboard:regenerate"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Bursts of completions for the same user (or difficulty) collapse into one
// task while an earlier one is still waiting in the queue.
const (
	levelEvaluationDelay     = 2 * time.Second
	leaderboardRegenDelay    = 10 * time.Second
	leaderboardRegenUnique   = time.Minute
	levelEvaluationMaxRetry  = 5
	leaderboardRegenMaxRetry = 3
)

// LevelEvaluationJobPayload asks for a user's levels to be re-evaluated
type LevelEvaluationJobPayload struct {
	UserID uuid.UUID `json:"user_id"`
}

// LevelEvaluationTaskID is the per-user task id. While a task with this id
// exists asynq rejects another one, whatever state the first is in.
func LevelEvaluationTaskID(userID uuid.UUID) string {
	return "levels:evaluate:" + userID.String()
}

// NewLevelEvaluationTask creates a level evaluation task, deduplicated per user
func NewLevelEvaluationTask(payload LevelEvaluationJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLevelEvaluation, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(levelEvaluationMaxRetry),
		asynq.ProcessIn(levelEvaluationDelay),
		asynq.TaskID(LevelEvaluationTaskID(payload.UserID)),
	), nil
}

// LeaderboardRegenerationJobPayload asks for one difficulty's standings to be rebuilt
type LeaderboardRegenerationJobPayload struct {
	Difficulty store.Difficulty `json:"difficulty"`
}

// NewLeaderboardRegenerationTask creates a leaderboard regeneration task, deduplicated per difficulty
func NewLeaderboardRegenerationTask(payload LeaderboardRegenerationJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLeaderboardRegeneration, data,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(leaderboardRegenMaxRetry),
		asynq.ProcessIn(leaderboardRegenDelay),
		asynq.Unique(leaderboardRegenUnique),
	), nil
}
