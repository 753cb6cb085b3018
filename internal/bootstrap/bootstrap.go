package bootstrap

import (
	"context"
	"fmt"

	"hunt-server/internal/cache"
	"hunt-server/internal/config"
	"hunt-server/internal/events"
	"hunt-server/internal/jobs"
	"hunt-server/internal/leaderboard"
	"hunt-server/internal/observability"
	"hunt-server/internal/pricing"
	"hunt-server/internal/ratelimit"
	"hunt-server/internal/store"

	authHandler "hunt-server/internal/auth/handler"
	authProcessor "hunt-server/internal/auth/processor"
	kafkaClient "hunt-server/internal/clients/kafka"
	redisClient "hunt-server/internal/clients/redis"
	enrollmentHandler "hunt-server/internal/enrollment/handler"
	enrollmentProcessor "hunt-server/internal/enrollment/processor"
	levelsHandler "hunt-server/internal/levels/handler"
	levelsProcessor "hunt-server/internal/levels/processor"
	policyHandler "hunt-server/internal/policy/handler"
	policyProcessor "hunt-server/internal/policy/processor"
	progressHandler "hunt-server/internal/progress/handler"
	progressProcessor "hunt-server/internal/progress/processor"
	searchHandler "hunt-server/internal/search/handler"
	searchProcessor "hunt-server/internal/search/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Redis  *redisClient.Client
	Logger *observability.Logger

	// Messaging
	KafkaProducer *kafkaClient.Producer
	Publisher     *events.Publisher
	OutboxRelay   *events.OutboxRelay
	Jobs          *jobs.Client
	RateLimiter   *ratelimit.Service

	// Processors
	Enrollments  *enrollmentProcessor.EnrollmentProcessor
	Policies     *policyProcessor.PolicyProcessor
	Levels       *levelsProcessor.LevelProcessor
	Progress     *progressProcessor.ProgressProcessor
	Search       *searchProcessor.SearchProcessor
	Leaderboards *leaderboard.Processor

	// Handlers
	AuthHandler        authHandler.Handler
	EnrollmentHandler  enrollmentHandler.Handler
	PolicyHandler      policyHandler.Handler
	LevelsHandler      levelsHandler.Handler
	ProgressHandler    progressHandler.Handler
	SearchHandler      searchHandler.Handler
	LeaderboardHandler leaderboard.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis; a nil client disables the cache and the rank index
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Initialize Kafka producer and the outbox-backed publisher
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.EventsTopic,
	}, logger)
	deps.Publisher = events.NewPublisher(deps.KafkaProducer, &deps.Store, logger)
	deps.OutboxRelay = events.NewOutboxRelay(&deps.Store, deps.KafkaProducer, logger, cfg.Outbox.BatchSize, cfg.Outbox.MaxAttempts)

	// Deferred jobs need Redis; without it level evaluation runs inline
	var jobQueue progressProcessor.JobEnqueuer
	if deps.Redis.IsEnabled() {
		deps.Jobs = jobs.NewClient(cfg.Redis, logger)
		jobQueue = deps.Jobs
	}

	planCache := cache.New(deps.Redis, cfg.Cache.TTL, logger)
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.RequestsPerMinute, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Initialize enrollment processor and handler
	enrollmentProc := enrollmentProcessor.New(&deps.Store, deps.Publisher, pricing.New(), planCache, logger)
	deps.Enrollments = &enrollmentProc
	deps.EnrollmentHandler = enrollmentHandler.New(enrollmentProc, logger)

	// Initialize policy processor and handler
	policyProc := policyProcessor.New(&deps.Store, logger)
	deps.Policies = &policyProc
	deps.PolicyHandler = policyHandler.New(policyProc, logger)

	// Initialize level processor and handler
	levelProc := levelsProcessor.New(&deps.Store, deps.Policies, logger)
	deps.Levels = &levelProc
	deps.LevelsHandler = levelsHandler.New(levelProc, logger)

	// Initialize progress processor and handler
	progressProc := progressProcessor.New(&deps.Store, deps.Publisher, deps.Levels, jobQueue, cfg.Progression, logger)
	deps.Progress = &progressProc
	deps.ProgressHandler = progressHandler.New(progressProc, logger)

	// Initialize search processor and handler
	searchProc := searchProcessor.New(&deps.Store, planCache, searchProcessor.GeoFenceFromConfig(cfg.GeoFence), logger)
	deps.Search = &searchProc
	deps.SearchHandler = searchHandler.New(searchProc, logger)

	// Initialize leaderboard processor and handler
	leaderboardProc := leaderboard.NewProcessor(&deps.Store, leaderboard.NewRedisRankIndex(deps.Redis, logger), logger)
	deps.Leaderboards = &leaderboardProc
	deps.LeaderboardHandler = leaderboard.NewHandler(leaderboardProc, logger)

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "evaluation_mode", Value: cfg.Progression.EvaluationMode},
		observability.Field{Key: "redis_enabled", Value: deps.Redis.IsEnabled()},
	), "dependencies initialized")

	return deps, nil
}

// Ping checks the database and, when enabled, Redis
func (d *Dependencies) Ping(ctx context.Context) error {
	if err := d.Store.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if d.Redis.IsEnabled() {
		if err := d.Redis.Ping(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.Jobs != nil {
		if err := d.Jobs.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
