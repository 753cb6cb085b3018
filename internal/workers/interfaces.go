package workers

import (
	"context"

	kafka "hunt-server/internal/clients/kafka"
)

// EventMessage is an alias for the Kafka event message type.
type EventMessage = kafka.EventMessage

// EventProcessor handles events from one topic. Implementations must be
// idempotent: an event is redelivered whenever Process returns an error.
type EventProcessor interface {
	Process(ctx context.Context, event EventMessage) error
	Name() string
}

// EventConsumer reads a topic and fans events out to an EventProcessor.
type EventConsumer interface {
	// Start blocks until ctx is cancelled or Stop is called.
	Start(ctx context.Context) error
	// Stop drains in-flight events and returns after full shutdown.
	Stop()
}
