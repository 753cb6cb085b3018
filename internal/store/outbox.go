package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlInsertOutboxEvent = `
INSERT INTO outbox_events (id, event_type, aggregate_id, payload, attempts, last_error)
VALUES ($1, $2, $3, $4, 1, $5)
ON CONFLICT (id) DO NOTHING
`

// InsertOutboxEvent stores an event that could not be published
func (s *Store) InsertOutboxEvent(ctx context.Context, params CreateOutboxEventParams) error {
	_, err := s.db.ExecContext(ctx, sqlInsertOutboxEvent,
		params.ID,
		params.EventType,
		params.AggregateID,
		params.Payload,
		params.LastError,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

const sqlListPendingOutboxEvents = `
SELECT id, event_type, aggregate_id, payload, attempts, last_error, created_at, delivered_at
FROM outbox_events
WHERE delivered_at IS NULL AND attempts < $2
ORDER BY created_at ASC
LIMIT $1
`

// ListPendingOutboxEvents retrieves undelivered events that still have attempts left, oldest first
func (s *Store) ListPendingOutboxEvents(ctx context.Context, limit, maxAttempts int) ([]OutboxEvent, error) {
	var events []OutboxEvent
	if err := s.db.SelectContext(ctx, &events, sqlListPendingOutboxEvents, limit, maxAttempts); err != nil {
		return nil, fmt.Errorf("failed to list outbox events: %w", err)
	}
	return events, nil
}

const sqlMarkOutboxEventDelivered = `
UPDATE outbox_events
SET delivered_at = NOW()
WHERE id = $1
`

// MarkOutboxEventDelivered records a successful redelivery
func (s *Store) MarkOutboxEventDelivered(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlMarkOutboxEventDelivered, eventID); err != nil {
		return fmt.Errorf("failed to mark outbox event delivered: %w", err)
	}
	return nil
}

const sqlMarkOutboxEventFailed = `
UPDATE outbox_events
SET attempts = attempts + 1, last_error = $2
WHERE id = $1
`

// MarkOutboxEventFailed records a failed redelivery attempt
func (s *Store) MarkOutboxEventFailed(ctx context.Context, eventID uuid.UUID, lastError string) error {
	if _, err := s.db.ExecContext(ctx, sqlMarkOutboxEventFailed, eventID, lastError); err != nil {
		return fmt.Errorf("failed to mark outbox event failed: %w", err)
	}
	return nil
}
