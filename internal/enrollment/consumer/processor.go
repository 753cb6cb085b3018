package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=consumer

import (
	"context"
	"errors"
	"fmt"

	"hunt-server/internal/domainerr"
	"hunt-server/internal/enrollment/processor"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"
	"hunt-server/internal/workers"

	"github.com/google/uuid"
)

// EventPaymentStatusUpdated is published by the payment service
const EventPaymentStatusUpdated = "payment.status.updated"

// PaymentStatusApplier applies a payment status to an enrollment
type PaymentStatusApplier interface {
	OnPaymentStatusChanged(ctx context.Context, enrollmentID uuid.UUID, status store.PaymentStatus) (store.Enrollment, error)
}

// PaymentStatusProcessor handles payment status events from Kafka
type PaymentStatusProcessor struct {
	enrollments PaymentStatusApplier
	logger      *observability.Logger
}

func NewPaymentStatusProcessor(enrollments PaymentStatusApplier, logger *observability.Logger) *PaymentStatusProcessor {
	return &PaymentStatusProcessor{
		enrollments: enrollments,
		logger:      logger,
	}
}

// Process applies payment.status.updated events. Malformed events and transitions the
// state machine refuses are logged and dropped; anything else is returned for redelivery.
func (p *PaymentStatusProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != EventPaymentStatusUpdated {
		return nil
	}

	rawID, ok := event.Data["enrollment_id"].(string)
	if !ok || rawID == "" {
		p.logger.Error(ctx, "event missing enrollment_id", fmt.Errorf("invalid or missing enrollment_id"))
		return nil
	}
	enrollmentID, err := uuid.Parse(rawID)
	if err != nil {
		p.logger.Error(ctx, "invalid enrollment_id format", err)
		return nil
	}
	rawStatus, ok := event.Data["status"].(string)
	if !ok {
		p.logger.Error(ctx, "event missing status", fmt.Errorf("invalid or missing status"))
		return nil
	}

	status := processor.MapInboundPaymentStatus(rawStatus)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollmentID.String()},
		observability.Field{Key: "payment_status", Value: string(status)},
	)

	_, err = p.enrollments.OnPaymentStatusChanged(ctx, enrollmentID, status)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerr.ErrNotFound), errors.Is(err, domainerr.ErrInvalidState), errors.Is(err, domainerr.ErrInvalidArgument):
		p.logger.Warn(ctx, fmt.Sprintf("dropping payment status event: %v", err))
		return nil
	default:
		p.logger.Error(ctx, "failed to apply payment status", err)
		return fmt.Errorf("failed to apply payment status: %w", err)
	}
}

func (p *PaymentStatusProcessor) Name() string {
	return "payment-status"
}
