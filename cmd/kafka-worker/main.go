package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"hunt-server/internal/bootstrap"
	"hunt-server/internal/config"
	enrollmentConsumer "hunt-server/internal/enrollment/consumer"
	"hunt-server/internal/observability"
	statisticsConsumer "hunt-server/internal/statistics/consumer"
	"hunt-server/internal/workers"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting Kafka event worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	// Leaderboard rebuilds after a suspension go through the job queue when Redis is on
	var standings statisticsConsumer.StandingsScheduler
	if deps.Jobs != nil {
		standings = deps.Jobs
	}

	paymentConfig := workers.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.PaymentStatusTopic)
	paymentConfig.NumWorkers = cfg.WorkerPool.PaymentWorkers
	userConfig := workers.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.UserLifecycleTopic)
	userConfig.NumWorkers = cfg.WorkerPool.UserWorkers

	consumers := []workers.EventConsumer{
		workers.NewConsumer(paymentConfig, enrollmentConsumer.NewPaymentStatusProcessor(deps.Enrollments, logger), logger),
		workers.NewConsumer(userConfig, statisticsConsumer.NewUserLifecycleProcessor(&deps.Store, standings, logger), logger),
	}

	logger.Info(ctx, fmt.Sprintf(`Kafka event worker configuration:
  - Payment status: topic %s, %d workers
  - User lifecycle: topic %s, %d workers
  - Kafka brokers: %v
  - Consumer group: %s`,
		cfg.Kafka.PaymentStatusTopic, paymentConfig.NumWorkers,
		cfg.Kafka.UserLifecycleTopic, userConfig.NumWorkers,
		cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	for _, c := range consumers {
		wg.Add(1)
		go func(c workers.EventConsumer) {
			defer wg.Done()
			if err := c.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error(ctx, "event consumer stopped with error", err)
				failed.Store(true)
				cancel()
			}
		}(c)
	}

	logger.Info(ctx, "Kafka event worker server started successfully")

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumers...")
	case <-ctx.Done():
		logger.Info(ctx, "A consumer failed, stopping the rest...")
	}

	for _, c := range consumers {
		c.Stop()
	}
	cancel()
	wg.Wait()

	if failed.Load() {
		// the failed event is uncommitted; a restart redelivers it
		logger.Info(ctx, "Kafka event worker server stopped after a consumer failure")
		deps.Cleanup()
		os.Exit(1)
	}
	logger.Info(ctx, "Kafka event worker server stopped")
}
