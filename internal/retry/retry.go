// Package retry runs operations with bounded exponential backoff.
package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
	"time"

	"hunt-server/internal/domainerr"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrTransient marks an error as safe to retry.
var ErrTransient = errors.New("transient failure")

// Transient wraps err so IsTransient reports true.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrTransient, err)
}

// Config holds retry configuration.
type Config struct {
	// MaxAttempts includes the first attempt.
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Multiplier      float64
	RetryIf         func(error) bool
	OnRetry         func(err error, next time.Duration)
}

// Option configures a retry run.
type Option func(*Config)

// DefaultConfig returns settings for store calls inside a request.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     4,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  5 * time.Second,
		Multiplier:      2,
		RetryIf:         IsTransient,
	}
}

func WithMaxAttempts(n uint64) Option {
	return func(c *Config) { c.MaxAttempts = n }
}

func WithInitialInterval(d time.Duration) Option {
	return func(c *Config) { c.InitialInterval = d }
}

func WithMaxInterval(d time.Duration) Option {
	return func(c *Config) { c.MaxInterval = d }
}

func WithMaxElapsedTime(d time.Duration) Option {
	return func(c *Config) { c.MaxElapsedTime = d }
}

func WithRetryIf(fn func(error) bool) Option {
	return func(c *Config) { c.RetryIf = fn }
}

func WithOnRetry(fn func(err error, next time.Duration)) Option {
	return func(c *Config) { c.OnRetry = fn }
}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget runs out. An exhausted budget is reported as
// domainerr.ErrUnavailable wrapping the last failure.
func Do(ctx context.Context, op string, fn func(ctx context.Context) error, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 1
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = cfg.InitialInterval
	eb.MaxInterval = cfg.MaxInterval
	eb.MaxElapsedTime = cfg.MaxElapsedTime
	if cfg.Multiplier > 0 {
		eb.Multiplier = cfg.Multiplier
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, cfg.MaxAttempts-1), ctx)

	permanent := false
	err := backoff.RetryNotify(func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			permanent = true
			return backoff.Permanent(err)
		}
		return err
	}, b, cfg.OnRetry)

	if err == nil || permanent {
		return err
	}
	return domainerr.Wrap(op, domainerr.ErrUnavailable, err)
}

// IsTransient reports whether err looks like a temporary dependency failure.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
		// class 08: connection exception
		return strings.HasPrefix(pgErr.Code, "08")
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
