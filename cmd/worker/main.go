package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hunt-server/internal/bootstrap"
	"hunt-server/internal/config"
	"hunt-server/internal/jobs"
	"hunt-server/internal/jobs/scheduler"
	scheduledJobs "hunt-server/internal/jobs/scheduler/jobs"
	"hunt-server/internal/jobs/workers"
	"hunt-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("the job worker requires REDIS_ENABLED=true")
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	// Deferred job workers
	levelWorker := workers.NewLevelWorker(deps.Levels, logger)
	leaderboardWorker := workers.NewLeaderboardWorker(deps.Leaderboards, logger)

	serverConfig := workers.ServerConfig(cfg.Jobs.Concurrency)
	serverConfig.Logger = &asynqLogger{logger: logger}
	serverConfig.ErrorHandler = asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
	})
	srv := asynq.NewServer(jobs.RedisClientOpt(cfg.Redis), serverConfig)

	// Periodic jobs
	cronScheduler := scheduler.New(logger)
	if err := cronScheduler.Register(cfg.Leaderboard.RegenerateSchedule, scheduledJobs.NewLeaderboardRegenerationJob(deps.Leaderboards, logger)); err != nil {
		log.Fatalf("failed to register leaderboard job: %v", err)
	}
	if err := cronScheduler.Register(cfg.Outbox.RelaySchedule, scheduledJobs.NewOutboxRelayJob(deps.OutboxRelay, logger)); err != nil {
		log.Fatalf("failed to register outbox relay job: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := srv.Start(workers.NewServeMux(levelWorker, leaderboardWorker)); err != nil {
		log.Fatalf("failed to start worker server: %v", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := cronScheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	cancel()
	<-schedulerDone
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
