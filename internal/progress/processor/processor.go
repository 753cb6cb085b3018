package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"hunt-server/internal/config"
	"hunt-server/internal/domainerr"
	"hunt-server/internal/jobs"
	levelsProcessor "hunt-server/internal/levels/processor"
	"hunt-server/internal/observability"
	"hunt-server/internal/retry"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = domainerr.New("progress", domainerr.ErrNotFound, "enrollment not found")
	ErrTaskNotFound       = domainerr.New("progress", domainerr.ErrNotFound, "task not found on this plan")
	ErrEnrollmentClosed   = domainerr.New("progress", domainerr.ErrInvalidState, "enrollment is cancelled or rejected")
)

// ProgressStore defines the database operations required by ProgressProcessor
type ProgressStore interface {
	GetEnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error)
	GetPlanTask(ctx context.Context, planID, taskID uuid.UUID) (store.PlanTask, error)
	CompleteTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(store.Enrollment) error) (store.TaskProgress, bool, error)
	StartTaskProgress(ctx context.Context, enrollmentID, taskID uuid.UUID, guard func(store.Enrollment) error) (store.TaskProgress, bool, error)
	ListTaskProgress(ctx context.Context, enrollmentID uuid.UUID) ([]store.TaskProgress, error)
}

// EventPublisher emits task completion events
type EventPublisher interface {
	PublishTaskCompleted(ctx context.Context, enrollment store.Enrollment, task store.PlanTask, progress store.TaskProgress) error
}

// LevelEvaluator re-evaluates a user's reached levels inline
type LevelEvaluator interface {
	EvaluateOnTaskCompletion(ctx context.Context, userID uuid.UUID) (map[store.Difficulty]levelsProcessor.LevelSummary, error)
}

// JobEnqueuer schedules deduplicated background work
type JobEnqueuer interface {
	EnqueueLevelEvaluation(ctx context.Context, userID uuid.UUID) error
	EnqueueLeaderboardRegeneration(ctx context.Context, difficulty store.Difficulty) error
}

type ProgressProcessor struct {
	store     ProgressStore
	publisher EventPublisher
	levels    LevelEvaluator
	jobs      JobEnqueuer
	deferred  bool
	logger    *observability.Logger
	retries   []retry.Option
}

// New creates a progress processor. jobs may be nil, in which case levels are
// evaluated inline and no leaderboard regeneration is scheduled.
func New(progressStore ProgressStore, publisher EventPublisher, levels LevelEvaluator, jobs JobEnqueuer, cfg config.ProgressionConfig, logger *observability.Logger) ProgressProcessor {
	return ProgressProcessor{
		store:     progressStore,
		publisher: publisher,
		levels:    levels,
		jobs:      jobs,
		deferred:  jobs != nil && cfg.EvaluationMode == config.EvaluationModeDeferred,
		logger:    logger,
	}
}

// CompleteTask marks a task DONE for the enrollment. Completing an already
// completed task returns the stored record and triggers nothing.
func (p *ProgressProcessor) CompleteTask(ctx context.Context, enrollmentID, taskID uuid.UUID) (store.TaskProgress, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollmentID.String()},
		observability.Field{Key: "task_id", Value: taskID.String()},
	)

	enrollment, task, err := p.load(ctx, enrollmentID, taskID)
	if err != nil {
		return store.TaskProgress{}, err
	}

	var (
		progress store.TaskProgress
		changed  bool
	)
	err = retry.Do(ctx, "progress.complete", func(ctx context.Context) error {
		var err error
		progress, changed, err = p.store.CompleteTaskProgress(ctx, enrollmentID, taskID, guardOpen)
		return err
	}, p.retries...)
	if err != nil {
		return store.TaskProgress{}, p.mapStoreError(ctx, "failed to complete task", err)
	}
	if !changed {
		p.logger.Debug(ctx, "task already completed")
		return progress, nil
	}

	p.logger.Info(ctx, "task completed")

	if err := p.publisher.PublishTaskCompleted(ctx, enrollment, task, progress); err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "event_type", Value: "task.completed"}), "event lost", err)
	}
	p.evaluateLevels(ctx, enrollment.UserID)
	p.scheduleLeaderboard(ctx, task.Difficulty)

	return progress, nil
}

// StartTask records that work on a task has begun. It never downgrades a DONE row.
func (p *ProgressProcessor) StartTask(ctx context.Context, enrollmentID, taskID uuid.UUID) (store.TaskProgress, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollmentID.String()},
		observability.Field{Key: "task_id", Value: taskID.String()},
	)

	if _, _, err := p.load(ctx, enrollmentID, taskID); err != nil {
		return store.TaskProgress{}, err
	}

	progress, _, err := p.store.StartTaskProgress(ctx, enrollmentID, taskID, guardOpen)
	if err != nil {
		return store.TaskProgress{}, p.mapStoreError(ctx, "failed to start task", err)
	}
	return progress, nil
}

// ListProgress returns the progress rows of an enrollment
func (p *ProgressProcessor) ListProgress(ctx context.Context, enrollmentID uuid.UUID) ([]store.TaskProgress, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "enrollment_id", Value: enrollmentID.String()})

	rows, err := p.store.ListTaskProgress(ctx, enrollmentID)
	if err != nil {
		p.logger.Error(ctx, "failed to list task progress", err)
		return nil, err
	}
	if rows == nil {
		rows = []store.TaskProgress{}
	}
	return rows, nil
}

// GetEnrollment returns the enrollment a progress operation targets
func (p *ProgressProcessor) GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error) {
	enrollment, err := p.store.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Enrollment{}, ErrEnrollmentNotFound
		}
		p.logger.Error(ctx, "failed to get enrollment", err)
		return store.Enrollment{}, err
	}
	return enrollment, nil
}

func (p *ProgressProcessor) load(ctx context.Context, enrollmentID, taskID uuid.UUID) (store.Enrollment, store.PlanTask, error) {
	enrollment, err := p.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return store.Enrollment{}, store.PlanTask{}, err
	}
	if err := guardOpen(enrollment); err != nil {
		return store.Enrollment{}, store.PlanTask{}, err
	}

	task, err := p.store.GetPlanTask(ctx, enrollment.PlanID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Enrollment{}, store.PlanTask{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to get plan task", err)
		return store.Enrollment{}, store.PlanTask{}, err
	}
	return enrollment, task, nil
}

func (p *ProgressProcessor) mapStoreError(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrEnrollmentNotFound
	case errors.Is(err, ErrEnrollmentClosed):
		return ErrEnrollmentClosed
	default:
		p.logger.Error(ctx, msg, err)
		return err
	}
}

// evaluateLevels defers evaluation to the job queue when configured. It
// evaluates inline when the queue is unreachable or when a running job may
// already have read progress from before this completion. Failures never fail
// the completion.
func (p *ProgressProcessor) evaluateLevels(ctx context.Context, userID uuid.UUID) {
	if p.deferred {
		err := p.jobs.EnqueueLevelEvaluation(ctx, userID)
		switch {
		case err == nil:
			return
		case errors.Is(err, jobs.ErrEvaluationInFlight):
			p.logger.Debug(ctx, "level evaluation already running, evaluating inline")
		default:
			p.logger.Warn(ctx, "failed to defer level evaluation, evaluating inline")
		}
	}

	if _, err := p.levels.EvaluateOnTaskCompletion(ctx, userID); err != nil {
		p.logger.Error(ctx, "failed to evaluate levels", err)
	}
}

func (p *ProgressProcessor) scheduleLeaderboard(ctx context.Context, difficulty store.Difficulty) {
	if p.jobs == nil {
		return
	}
	if err := p.jobs.EnqueueLeaderboardRegeneration(ctx, difficulty); err != nil {
		p.logger.Error(ctx, "failed to schedule leaderboard regeneration", err)
	}
}

func guardOpen(enrollment store.Enrollment) error {
	switch enrollment.Status {
	case store.EnrollmentStatusCancelled, store.EnrollmentStatusRejected:
		return ErrEnrollmentClosed
	}
	return nil
}
