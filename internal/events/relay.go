package events

import (
	"context"
	"encoding/json"
	"fmt"

	"hunt-server/internal/clients/kafka"
	"hunt-server/internal/observability"
)

// OutboxRelay redelivers events that were parked in the outbox
type OutboxRelay struct {
	store       RelayStore
	writer      EventWriter
	logger      *observability.Logger
	batchSize   int
	maxAttempts int
}

// NewOutboxRelay creates a relay that drains up to batchSize events per run
func NewOutboxRelay(store RelayStore, writer EventWriter, logger *observability.Logger, batchSize, maxAttempts int) *OutboxRelay {
	return &OutboxRelay{
		store:       store,
		writer:      writer,
		logger:      logger,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Run delivers one batch of pending events and returns how many reached the bus.
// An event that fails stays pending with its attempt count bumped; the relay
// keeps going with the rest of the batch.
func (r *OutboxRelay) Run(ctx context.Context) (int, error) {
	pending, err := r.store.ListPendingOutboxEvents(ctx, r.batchSize, r.maxAttempts)
	if err != nil {
		r.logger.Error(ctx, "failed to list outbox events", err)
		return 0, fmt.Errorf("failed to list outbox events: %w", err)
	}

	delivered := 0
	for _, pe := range pending {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: pe.ID.String()},
			observability.Field{Key: "event_type", Value: pe.EventType},
			observability.Field{Key: "attempts", Value: pe.Attempts},
		)

		var event kafka.EventMessage
		if err := json.Unmarshal(pe.Payload, &event); err != nil {
			r.logger.Error(eventCtx, "outbox payload is not an event, parking it", err)
			if markErr := r.store.MarkOutboxEventFailed(ctx, pe.ID, "malformed payload"); markErr != nil {
				r.logger.Error(eventCtx, "failed to mark outbox event failed", markErr)
			}
			continue
		}

		if err := r.writer.PublishEvent(ctx, event); err != nil {
			r.logger.Error(eventCtx, "failed to redeliver outbox event", err)
			if markErr := r.store.MarkOutboxEventFailed(ctx, pe.ID, err.Error()); markErr != nil {
				r.logger.Error(eventCtx, "failed to mark outbox event failed", markErr)
			}
			continue
		}

		if err := r.store.MarkOutboxEventDelivered(ctx, pe.ID); err != nil {
			r.logger.Error(eventCtx, "failed to mark outbox event delivered", err)
			continue
		}
		delivered++
	}

	if delivered > 0 {
		r.logger.Info(ctx, fmt.Sprintf("relayed %d of %d outbox events", delivered, len(pending)))
	}
	return delivered, nil
}
