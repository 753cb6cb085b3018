package scheduler

import (
	"context"
	"fmt"
	"time"

	"hunt-server/internal/observability"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron expressions. A run that is still in
// progress when the next tick fires causes that tick to be skipped.
type Scheduler struct {
	cron   *cron.Cron
	jobs   []string
	logger *observability.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cronLog := cronLogger{logger: logger}
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog))),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a job under a cron spec such as "@every 5m" or "*/10 * * * *"
func (s *Scheduler) Register(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.executeJob(s.ctx, job)
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}
	s.jobs = append(s.jobs, job.Name())
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (schedule: %s)", job.Name(), spec))
	return nil
}

// Start runs the registered jobs until ctx is cancelled, then waits for
// running jobs to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))
	s.cron.Start()

	<-ctx.Done()
	s.cancel()
	<-s.cron.Stop().Done()

	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
	start := time.Now()

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return
	}
	s.logger.Debug(ctx, fmt.Sprintf("Job %s completed in %v", job.Name(), duration))
}

// cronLogger routes cron's internal logging through the observability logger
type cronLogger struct {
	logger *observability.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprintf("cron: %s %v", msg, keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprintf("cron: %s %v", msg, keysAndValues), err)
}
