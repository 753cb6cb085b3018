package jobs

import (
	"context"
	"errors"
	"fmt"

	"hunt-server/internal/config"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// taskEnqueuer is the subset of *asynq.Client used to submit tasks
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// taskInspector is the subset of *asynq.Inspector used to look up queued tasks
type taskInspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
	Close() error
}

// ErrEvaluationInFlight means a level evaluation for the user is already running
// and may have read progress from before the caller's change.
var ErrEvaluationInFlight = errors.New("level evaluation already in flight")

// Client handles enqueueing background jobs
type Client struct {
	client    taskEnqueuer
	inspector taskInspector
	logger    *observability.Logger
}

// RedisClientOpt builds asynq connection options from the Redis config
func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) *Client {
	opt := RedisClientOpt(cfg)
	return &Client{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		logger:    logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return errors.Join(c.client.Close(), c.inspector.Close())
}

// EnqueueLevelEvaluation enqueues a level evaluation for the user. A task still
// waiting for the same user absorbs the request because it reads progress when
// it runs. A task that is already running may have missed the caller's change,
// so that case returns ErrEvaluationInFlight and the caller evaluates itself.
func (c *Client) EnqueueLevelEvaluation(ctx context.Context, userID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "task_type", Value: TypeLevelEvaluation},
	)

	task, err := NewLevelEvaluationTask(LevelEvaluationJobPayload{UserID: userID})
	if err != nil {
		c.logger.Error(ctx, "failed to create level evaluation task", err)
		return fmt.Errorf("failed to create level evaluation task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	switch {
	case err == nil:
		c.logger.Info(ctx, fmt.Sprintf("enqueued task: %s (queue: %s)", info.ID, info.Queue))
		return nil
	case errors.Is(err, asynq.ErrTaskIDConflict), errors.Is(err, asynq.ErrDuplicateTask):
		if c.waiting(ctx, QueueHigh, LevelEvaluationTaskID(userID)) {
			c.logger.Debug(ctx, "level evaluation already waiting, skipping")
			return nil
		}
		return ErrEvaluationInFlight
	default:
		c.logger.Error(ctx, "failed to enqueue task", err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}
}

// waiting reports whether the task has yet to start its next run. Lookup
// failures count as not waiting.
func (c *Client) waiting(ctx context.Context, queue, id string) bool {
	if c.inspector == nil {
		return false
	}
	info, err := c.inspector.GetTaskInfo(queue, id)
	if err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("failed to inspect task %s: %v", id, err))
		return false
	}
	switch info.State {
	case asynq.TaskStatePending, asynq.TaskStateScheduled, asynq.TaskStateRetry:
		return true
	default:
		return false
	}
}

// EnqueueLeaderboardRegeneration enqueues a standings rebuild for one difficulty
func (c *Client) EnqueueLeaderboardRegeneration(ctx context.Context, difficulty store.Difficulty) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "difficulty", Value: string(difficulty)})

	task, err := NewLeaderboardRegenerationTask(LeaderboardRegenerationJobPayload{Difficulty: difficulty})
	if err != nil {
		c.logger.Error(ctx, "failed to create leaderboard regeneration task", err)
		return fmt.Errorf("failed to create leaderboard regeneration task: %w", err)
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_type", Value: task.Type()})

	info, err := c.client.EnqueueContext(ctx, task)
	if errors.Is(err, asynq.ErrDuplicateTask) || errors.Is(err, asynq.ErrTaskIDConflict) {
		c.logger.Debug(ctx, "task already queued, skipping")
		return nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue task", err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
