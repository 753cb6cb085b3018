package workers

import (
	"hunt-server/internal/jobs"

	"github.com/hibiken/asynq"
)

// NewServeMux routes every job type to its worker
func NewServeMux(levels *LevelWorker, leaderboards *LeaderboardWorker) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeLevelEvaluation, levels.ProcessLevelEvaluationTask)
	mux.HandleFunc(jobs.TypeLeaderboardRegeneration, leaderboards.ProcessLeaderboardRegenerationTask)
	return mux
}

// ServerConfig returns the asynq server configuration with weighted queues
func ServerConfig(concurrency int) asynq.Config {
	return asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			jobs.QueueHigh:   6,
			jobs.QueueMedium: 3,
			jobs.QueueLow:    1,
		},
	}
}
