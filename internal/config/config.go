package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Evaluation modes for level progression after a task completion
const (
	EvaluationModeInline   = "inline"
	EvaluationModeDeferred = "deferred"
)

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	Auth        AuthConfig
	Kafka       KafkaConfig
	Redis       RedisConfig
	Jobs        JobsConfig
	Cache       CacheConfig
	Leaderboard LeaderboardConfig
	Outbox      OutboxConfig
	Progression ProgressionConfig
	WorkerPool  WorkerPoolConfig
	GeoFence    GeoFenceConfig
	RateLimit   RateLimitConfig
	Server      ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds bearer token verification settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers            []string
	EventsTopic        string
	PaymentStatusTopic string
	UserLifecycleTopic string
	ConsumerGroup      string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JobsConfig holds asynq worker settings
type JobsConfig struct {
	Concurrency int
}

// CacheConfig holds search cache settings
type CacheConfig struct {
	TTL time.Duration
}

// LeaderboardConfig holds leaderboard regeneration settings
type LeaderboardConfig struct {
	RegenerateSchedule string
}

// OutboxConfig holds outbox relay settings
type OutboxConfig struct {
	RelaySchedule string
	BatchSize     int
	MaxAttempts   int
}

// ProgressionConfig controls how level evaluation is triggered
type ProgressionConfig struct {
	EvaluationMode string
}

// WorkerPoolConfig holds worker counts for inbound event processing
type WorkerPoolConfig struct {
	PaymentWorkers int
	UserWorkers    int
}

// GeoFenceConfig restricts visible plans to an allow-list of cities or countries
type GeoFenceConfig struct {
	Enabled bool
	Scope   string
	Values  []string
}

// RateLimitConfig caps authenticated API requests per user
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = getEnvWithDefault("JWT_ISSUER", "")

	brokers, err := requireEnv("KAFKA_BROKERS")
	if err != nil {
		return nil, err
	}
	cfg.Kafka.Brokers = splitList(brokers)
	cfg.Kafka.EventsTopic = getEnvWithDefault("KAFKA_EVENTS_TOPIC", "hunt.enrollment.events")
	cfg.Kafka.PaymentStatusTopic = getEnvWithDefault("KAFKA_PAYMENT_STATUS_TOPIC", "hunt.payment.status")
	cfg.Kafka.UserLifecycleTopic = getEnvWithDefault("KAFKA_USER_LIFECYCLE_TOPIC", "hunt.user.lifecycle")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "enrollment-engine")

	if cfg.Redis.Enabled, err = strconv.ParseBool(getEnvWithDefault("REDIS_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_ENABLED: %w", err)
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = atoiEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = getEnvWithDefault("REDIS_PASSWORD", "")
	if cfg.Redis.DB, err = atoiEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	if cfg.Jobs.Concurrency, err = atoiEnv("JOB_CONCURRENCY", "10"); err != nil {
		return nil, err
	}

	cacheTTL := getEnvWithDefault("SEARCH_CACHE_TTL", "5m")
	if cfg.Cache.TTL, err = time.ParseDuration(cacheTTL); err != nil {
		return nil, fmt.Errorf("failed to parse SEARCH_CACHE_TTL: %w", err)
	}

	cfg.Leaderboard.RegenerateSchedule = getEnvWithDefault("LEADERBOARD_REGENERATE_SCHEDULE", "@every 5m")

	cfg.Outbox.RelaySchedule = getEnvWithDefault("OUTBOX_RELAY_SCHEDULE", "@every 30s")
	if cfg.Outbox.BatchSize, err = atoiEnv("OUTBOX_BATCH_SIZE", "100"); err != nil {
		return nil, err
	}
	if cfg.Outbox.MaxAttempts, err = atoiEnv("OUTBOX_MAX_ATTEMPTS", "20"); err != nil {
		return nil, err
	}

	cfg.Progression.EvaluationMode = getEnvWithDefault("LEVEL_EVALUATION_MODE", EvaluationModeDeferred)
	if cfg.Progression.EvaluationMode != EvaluationModeInline && cfg.Progression.EvaluationMode != EvaluationModeDeferred {
		return nil, fmt.Errorf("invalid LEVEL_EVALUATION_MODE %q", cfg.Progression.EvaluationMode)
	}

	if cfg.WorkerPool.PaymentWorkers, err = atoiEnv("PAYMENT_WORKERS", "5"); err != nil {
		return nil, err
	}
	if cfg.WorkerPool.UserWorkers, err = atoiEnv("USER_WORKERS", "3"); err != nil {
		return nil, err
	}

	cfg.GeoFence.Enabled = getEnvWithDefault("GEOFENCE_ENABLED", "false") == "true"
	cfg.GeoFence.Scope = strings.ToUpper(getEnvWithDefault("GEOFENCE_SCOPE", "COUNTRY"))
	if cfg.GeoFence.Scope != "CITY" && cfg.GeoFence.Scope != "COUNTRY" {
		return nil, fmt.Errorf("invalid GEOFENCE_SCOPE %q", cfg.GeoFence.Scope)
	}
	cfg.GeoFence.Values = splitList(getEnvWithDefault("GEOFENCE_VALUES", ""))

	if cfg.RateLimit.RequestsPerMinute, err = atoiEnv("RATE_LIMIT_RPM", "120"); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000"))

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func atoiEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
