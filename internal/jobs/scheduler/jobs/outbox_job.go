package jobs

import (
	"context"
	"fmt"

	"hunt-server/internal/observability"
)

// Relay redelivers undelivered outbox events
type Relay interface {
	Run(ctx context.Context) (int, error)
}

// OutboxRelayJob drains the event outbox on a schedule
type OutboxRelayJob struct {
	relay  Relay
	logger *observability.Logger
}

// NewOutboxRelayJob creates a new outbox relay job
func NewOutboxRelayJob(relay Relay, logger *observability.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		relay:  relay,
		logger: logger,
	}
}

// Name returns the job name
func (j *OutboxRelayJob) Name() string {
	return "outbox_relay"
}

// Run relays one batch of pending events
func (j *OutboxRelayJob) Run(ctx context.Context) error {
	delivered, err := j.relay.Run(ctx)
	if delivered > 0 {
		j.logger.Info(ctx, fmt.Sprintf("relayed %d outbox events", delivered))
	}
	if err != nil {
		return fmt.Errorf("failed to relay outbox events: %w", err)
	}
	return nil
}
