package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hunt-server/internal/clients/kafka"
	"hunt-server/internal/observability"
	"hunt-server/internal/retry"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

// Event types published by the engine
const (
	TypeEnrollmentCreated   = "enrollment.created"
	TypeApprovalRequested   = "approval_requested"
	TypeEnrollmentApproved  = "enrollment.approved"
	TypePaymentRequested    = "payment.requested"
	TypeTaskCompleted       = "task.completed"
	TypeEnrollmentCancelled = "enrollment.cancelled"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=publisher.go -destination=mocks_test.go -package=events

// EventWriter writes a single event to the bus
type EventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// OutboxStore persists events the bus did not accept
type OutboxStore interface {
	InsertOutboxEvent(ctx context.Context, params store.CreateOutboxEventParams) error
}

// RelayStore is the outbox surface the relay needs
type RelayStore interface {
	ListPendingOutboxEvents(ctx context.Context, limit, maxAttempts int) ([]store.OutboxEvent, error)
	MarkOutboxEventDelivered(ctx context.Context, eventID uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, eventID uuid.UUID, lastError string) error
}

// Publisher handles publishing domain events to Kafka. Events the bus rejects after
// bounded retries are written to the outbox for the relay to redeliver.
type Publisher struct {
	writer  EventWriter
	outbox  OutboxStore
	logger  *observability.Logger
	retries []retry.Option
}

// NewPublisher creates a new event publisher
func NewPublisher(writer EventWriter, outbox OutboxStore, logger *observability.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		outbox: outbox,
		logger: logger,
		retries: []retry.Option{
			retry.WithMaxAttempts(3),
			retry.WithInitialInterval(100 * time.Millisecond),
			retry.WithMaxElapsedTime(2 * time.Second),
			retry.WithRetryIf(func(error) bool { return true }),
		},
	}
}

// PublishEnrollmentCreated publishes an enrollment.created event
func (p *Publisher) PublishEnrollmentCreated(ctx context.Context, enrollment store.Enrollment) error {
	data := enrollmentData(enrollment)
	data["mode"] = string(enrollment.Mode)
	data["type"] = string(enrollment.Type)
	data["registration_id"] = enrollment.RegistrationID
	if enrollment.TeamName != nil {
		data["team_name"] = *enrollment.TeamName
	}
	if enrollment.TeamSize != nil {
		data["team_size"] = *enrollment.TeamSize
	}
	return p.publish(ctx, TypeEnrollmentCreated, enrollment.ID.String(), data)
}

// PublishApprovalRequested publishes an approval_requested event
func (p *Publisher) PublishApprovalRequested(ctx context.Context, enrollment store.Enrollment) error {
	return p.publish(ctx, TypeApprovalRequested, enrollment.ID.String(), enrollmentData(enrollment))
}

// PublishEnrollmentApproved publishes an enrollment.approved event with the price to collect
func (p *Publisher) PublishEnrollmentApproved(ctx context.Context, enrollment store.Enrollment, totalMinor int64, currency string) error {
	data := enrollmentData(enrollment)
	if enrollment.ApprovedBy != nil {
		data["approved_by"] = enrollment.ApprovedBy.String()
	}
	data["total_minor"] = totalMinor
	data["currency"] = currency
	return p.publish(ctx, TypeEnrollmentApproved, enrollment.ID.String(), data)
}

// PublishPaymentRequested publishes a payment.requested event
func (p *Publisher) PublishPaymentRequested(ctx context.Context, enrollment store.Enrollment, amountMinor int64, currency string) error {
	data := enrollmentData(enrollment)
	data["amount_minor"] = amountMinor
	data["currency"] = currency
	return p.publish(ctx, TypePaymentRequested, enrollment.ID.String(), data)
}

// PublishTaskCompleted publishes a task.completed event
func (p *Publisher) PublishTaskCompleted(ctx context.Context, enrollment store.Enrollment, task store.PlanTask, progress store.TaskProgress) error {
	data := enrollmentData(enrollment)
	data["task_id"] = task.ID.String()
	data["difficulty"] = string(task.Difficulty)
	data["level_number"] = task.LevelNumber
	data["crucial"] = task.Crucial
	data["completed_at"] = progress.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return p.publish(ctx, TypeTaskCompleted, enrollment.ID.String(), data)
}

// PublishEnrollmentCancelled publishes an enrollment.cancelled event. Refund decisions belong to the consumer.
func (p *Publisher) PublishEnrollmentCancelled(ctx context.Context, enrollment store.Enrollment) error {
	data := enrollmentData(enrollment)
	data["payment_status"] = string(enrollment.PaymentStatus)
	return p.publish(ctx, TypeEnrollmentCancelled, enrollment.ID.String(), data)
}

func enrollmentData(e store.Enrollment) map[string]interface{} {
	return map[string]interface{}{
		"enrollment_id": e.ID.String(),
		"plan_id":       e.PlanID.String(),
		"user_id":       e.UserID.String(),
	}
}

func (p *Publisher) publish(ctx context.Context, eventType, aggregateID string, data map[string]interface{}) error {
	event := kafka.NewEventMessage(uuid.New().String(), eventType, aggregateID, data)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: eventType},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	err := retry.Do(ctx, "publish "+eventType, func(ctx context.Context) error {
		return p.writer.PublishEvent(ctx, event)
	}, p.retries...)
	if err == nil {
		return nil
	}

	p.logger.Warn(ctx, "event bus unavailable, writing event to outbox")
	payload, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal event: %w", marshalErr)
	}
	outboxErr := p.outbox.InsertOutboxEvent(ctx, store.CreateOutboxEventParams{
		ID:          uuid.MustParse(event.ID),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		LastError:   err.Error(),
	})
	if outboxErr != nil {
		p.logger.Error(ctx, "failed to write event to outbox", outboxErr)
		return fmt.Errorf("failed to publish %s: %w", eventType, outboxErr)
	}
	return nil
}
