package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hunt-server/internal/domainerr"
	"hunt-server/internal/observability"
	"hunt-server/internal/pricing"
	"hunt-server/internal/retry"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidEnrollmentType    = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "enrollment type must be INDIVIDUAL or TEAM")
	ErrTeamNameRequired         = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "team enrollments require a team name")
	ErrTeamSizeTooSmall         = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "team enrollments require a team size of at least 2")
	ErrTeamSizeTooLarge         = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "team enrollments allow at most 20 members")
	ErrTeamFieldsNotAllowed     = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "individual enrollments cannot carry team fields")
	ErrPlanNotFound             = domainerr.New("enrollment", domainerr.ErrNotFound, "plan not found")
	ErrEnrollmentNotFound       = domainerr.New("enrollment", domainerr.ErrNotFound, "enrollment not found")
	ErrCapacityExceeded         = domainerr.New("enrollment", domainerr.ErrCapacityExceeded, "plan has no slots left")
	ErrEnrollmentNotPending     = domainerr.New("enrollment", domainerr.ErrInvalidState, "enrollment is not pending")
	ErrCancelNotAllowed         = domainerr.New("enrollment", domainerr.ErrInvalidState, "enrollment can no longer be cancelled")
	ErrInvalidPaymentTransition = domainerr.New("enrollment", domainerr.ErrInvalidState, "payment status transition not allowed")
	ErrInvalidPaymentStatus     = domainerr.New("enrollment", domainerr.ErrInvalidArgument, "unknown payment status")
)

// MinTeamSize is the smallest team that may enroll
const (
	MinTeamSize = 2
	MaxTeamSize = 20
)

// EnrollmentStore defines the database operations required by EnrollmentProcessor
type EnrollmentStore interface {
	GetPlanByID(ctx context.Context, planID uuid.UUID) (store.Plan, error)
	CreateEnrollmentWithSlot(ctx context.Context, params store.CreateEnrollmentParams) (store.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error)
	UpdateEnrollmentLocked(ctx context.Context, enrollmentID uuid.UUID, mutate func(*store.LockedEnrollment) error) (store.Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]store.Enrollment, error)
}

// EventPublisher emits enrollment lifecycle events
type EventPublisher interface {
	PublishEnrollmentCreated(ctx context.Context, enrollment store.Enrollment) error
	PublishApprovalRequested(ctx context.Context, enrollment store.Enrollment) error
	PublishEnrollmentApproved(ctx context.Context, enrollment store.Enrollment, totalMinor int64, currency string) error
	PublishPaymentRequested(ctx context.Context, enrollment store.Enrollment, amountMinor int64, currency string) error
	PublishEnrollmentCancelled(ctx context.Context, enrollment store.Enrollment) error
}

// PriceCalculator computes what an enrollment owes
type PriceCalculator interface {
	ComputeTotal(plan store.Plan, enrollment store.Enrollment, components ...string) (pricing.Total, error)
}

// CacheInvalidator drops cached plan search and detail responses
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

type EnrollmentProcessor struct {
	store     EnrollmentStore
	publisher EventPublisher
	pricing   PriceCalculator
	cache     CacheInvalidator
	logger    *observability.Logger
	now       func() time.Time
	retries   []retry.Option
}

func New(enrollmentStore EnrollmentStore, publisher EventPublisher, calculator PriceCalculator, cache CacheInvalidator, logger *observability.Logger) EnrollmentProcessor {
	return EnrollmentProcessor{
		store:     enrollmentStore,
		publisher: publisher,
		pricing:   calculator,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

type EnrollRequest struct {
	PlanID   uuid.UUID
	UserID   uuid.UUID
	Type     store.EnrollmentType
	TeamName *string
	TeamSize *int
}

// Enroll reserves a slot on the plan and creates a PENDING enrollment.
func (p *EnrollmentProcessor) Enroll(ctx context.Context, req EnrollRequest) (store.Enrollment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "plan_id", Value: req.PlanID.String()},
		observability.Field{Key: "user_id", Value: req.UserID.String()},
	)

	teamName, err := validateTeam(req.Type, req.TeamName, req.TeamSize)
	if err != nil {
		return store.Enrollment{}, err
	}

	plan, err := p.store.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Enrollment{}, ErrPlanNotFound
		}
		p.logger.Error(ctx, "failed to get plan", err)
		return store.Enrollment{}, err
	}
	if !plan.Published {
		return store.Enrollment{}, ErrPlanNotFound
	}

	year := p.now().UTC().Year()
	params := store.CreateEnrollmentParams{
		PlanID:   plan.ID,
		UserID:   req.UserID,
		Mode:     plan.EnrollmentMode,
		Type:     req.Type,
		TeamName: teamName,
		TeamSize: req.TeamSize,
		RegistrationID: func(planCode string, seq int64) string {
			return RegistrationID(planCode, year, seq)
		},
	}

	var enrollment store.Enrollment
	err = retry.Do(ctx, "enrollment.enroll", func(ctx context.Context) error {
		var err error
		enrollment, err = p.store.CreateEnrollmentWithSlot(ctx, params)
		return err
	}, p.retries...)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoCapacity):
			p.logger.Info(ctx, "plan is at capacity")
			return store.Enrollment{}, ErrCapacityExceeded
		case errors.Is(err, store.ErrNotFound):
			return store.Enrollment{}, ErrPlanNotFound
		}
		p.logger.Error(ctx, "failed to create enrollment", err)
		return store.Enrollment{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollment.ID.String()},
		observability.Field{Key: "registration_id", Value: enrollment.RegistrationID},
	)
	p.logger.Info(ctx, "enrollment created")

	p.emit(ctx, "enrollment.created", p.publisher.PublishEnrollmentCreated(ctx, enrollment))
	switch enrollment.Mode {
	case store.EnrollmentModeApprovalRequired:
		p.emit(ctx, "approval_requested", p.publisher.PublishApprovalRequested(ctx, enrollment))
	case store.EnrollmentModePayToEnroll:
		total, err := p.pricing.ComputeTotal(plan, enrollment)
		if err != nil {
			p.logger.Error(ctx, "failed to compute enrollment total", err)
			break
		}
		if !total.IsZero() {
			p.emit(ctx, "payment.requested", p.publisher.PublishPaymentRequested(ctx, enrollment, total.AmountMinor, total.Currency))
		}
	}

	return enrollment, nil
}

// Approve confirms a PENDING enrollment and records who approved it. The
// enrollment is priced first; when pricing is unavailable nothing changes.
func (p *EnrollmentProcessor) Approve(ctx context.Context, enrollmentID, approverID uuid.UUID) (store.Enrollment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollmentID.String()},
		observability.Field{Key: "approver_id", Value: approverID.String()},
	)

	total, err := p.approvalTotal(ctx, enrollmentID)
	if err != nil {
		return store.Enrollment{}, err
	}

	enrollment, err := p.transition(ctx, enrollmentID, func(e *store.LockedEnrollment) error {
		if e.Status != store.EnrollmentStatusPending {
			return ErrEnrollmentNotPending
		}
		e.Status = store.EnrollmentStatusConfirmed
		e.ApprovedBy = &approverID
		return nil
	})
	if err != nil {
		return store.Enrollment{}, err
	}
	p.logger.Info(ctx, "enrollment approved")

	p.emit(ctx, "enrollment.approved", p.publisher.PublishEnrollmentApproved(ctx, enrollment, total.AmountMinor, total.Currency))
	if !total.IsZero() {
		p.emit(ctx, "payment.requested", p.publisher.PublishPaymentRequested(ctx, enrollment, total.AmountMinor, total.Currency))
	}
	return enrollment, nil
}

func (p *EnrollmentProcessor) approvalTotal(ctx context.Context, enrollmentID uuid.UUID) (pricing.Total, error) {
	enrollment, err := p.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return pricing.Total{}, err
	}
	if enrollment.Status != store.EnrollmentStatusPending {
		return pricing.Total{}, ErrEnrollmentNotPending
	}

	plan, err := p.store.GetPlanByID(ctx, enrollment.PlanID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return pricing.Total{}, ErrPlanNotFound
		}
		p.logger.Error(ctx, "failed to load plan for pricing", err)
		return pricing.Total{}, domainerr.Wrap("enrollment.approve", domainerr.ErrUnavailable, err)
	}
	total, err := p.pricing.ComputeTotal(plan, enrollment)
	if err != nil {
		p.logger.Error(ctx, "failed to compute enrollment total", err)
		return pricing.Total{}, domainerr.Wrap("enrollment.approve", domainerr.ErrUnavailable, err)
	}
	return total, nil
}

// Reject declines a PENDING enrollment and releases its slot.
func (p *EnrollmentProcessor) Reject(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "enrollment_id", Value: enrollmentID.String()})

	enrollment, err := p.transition(ctx, enrollmentID, func(e *store.LockedEnrollment) error {
		if e.Status != store.EnrollmentStatusPending {
			return ErrEnrollmentNotPending
		}
		e.Status = store.EnrollmentStatusRejected
		e.HoldsSlot = false
		return nil
	})
	if err != nil {
		return store.Enrollment{}, err
	}
	p.logger.Info(ctx, "enrollment rejected")
	return enrollment, nil
}

// Cancel withdraws an enrollment that is PENDING, or CONFIRMED with no task started.
// Refund decisions belong to the payment service, which receives enrollment.cancelled.
func (p *EnrollmentProcessor) Cancel(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "enrollment_id", Value: enrollmentID.String()})

	enrollment, err := p.transition(ctx, enrollmentID, func(e *store.LockedEnrollment) error {
		switch {
		case e.Status == store.EnrollmentStatusPending:
		case e.Status == store.EnrollmentStatusConfirmed && e.StartedTasks == 0:
		default:
			return ErrCancelNotAllowed
		}
		e.Status = store.EnrollmentStatusCancelled
		e.HoldsSlot = false
		return nil
	})
	if err != nil {
		return store.Enrollment{}, err
	}
	p.logger.Info(ctx, "enrollment cancelled")

	p.emit(ctx, "enrollment.cancelled", p.publisher.PublishEnrollmentCancelled(ctx, enrollment))
	return enrollment, nil
}

// OnPaymentStatusChanged applies a payment status reported by the payment service.
// Repeating the current status is a no-op.
func (p *EnrollmentProcessor) OnPaymentStatusChanged(ctx context.Context, enrollmentID uuid.UUID, status store.PaymentStatus) (store.Enrollment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "enrollment_id", Value: enrollmentID.String()},
		observability.Field{Key: "payment_status", Value: string(status)},
	)

	if !validPaymentStatus(status) {
		return store.Enrollment{}, ErrInvalidPaymentStatus
	}

	changed := false
	enrollment, err := p.transition(ctx, enrollmentID, func(e *store.LockedEnrollment) error {
		changed = false
		if e.PaymentStatus == status {
			return nil
		}
		if !CanTransitionPayment(e.PaymentStatus, status) {
			return ErrInvalidPaymentTransition
		}
		e.PaymentStatus = status
		changed = true
		return nil
	})
	if err != nil {
		return store.Enrollment{}, err
	}
	if !changed {
		p.logger.Debug(ctx, "payment status unchanged")
		return enrollment, nil
	}

	p.logger.Info(ctx, "payment status updated")
	if p.cache != nil {
		if err := p.cache.InvalidateAll(ctx); err != nil {
			p.logger.Error(ctx, "failed to invalidate plan cache", err)
		}
	}
	return enrollment, nil
}

func (p *EnrollmentProcessor) GetEnrollment(ctx context.Context, enrollmentID uuid.UUID) (store.Enrollment, error) {
	enrollment, err := p.store.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Enrollment{}, ErrEnrollmentNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "enrollment_id", Value: enrollmentID.String()}), "failed to get enrollment", err)
		return store.Enrollment{}, err
	}
	return enrollment, nil
}

func (p *EnrollmentProcessor) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]store.Enrollment, error) {
	enrollments, err := p.store.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()}), "failed to list enrollments", err)
		return nil, err
	}
	if enrollments == nil {
		enrollments = []store.Enrollment{}
	}
	return enrollments, nil
}

func (p *EnrollmentProcessor) transition(ctx context.Context, enrollmentID uuid.UUID, mutate func(*store.LockedEnrollment) error) (store.Enrollment, error) {
	var enrollment store.Enrollment
	err := retry.Do(ctx, "enrollment.transition", func(ctx context.Context) error {
		var err error
		enrollment, err = p.store.UpdateEnrollmentLocked(ctx, enrollmentID, mutate)
		return err
	}, p.retries...)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Enrollment{}, ErrEnrollmentNotFound
		}
		if domainerr.KindOf(err) != nil {
			p.logger.Warn(ctx, err.Error())
			return store.Enrollment{}, err
		}
		p.logger.Error(ctx, "failed to update enrollment", err)
		return store.Enrollment{}, err
	}
	return enrollment, nil
}

// emit logs a publish failure. The publisher has already queued the event for redelivery
// when it returns nil, so only an outbox failure reaches here.
func (p *EnrollmentProcessor) emit(ctx context.Context, eventType string, err error) {
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "event_type", Value: eventType}), "event lost", err)
	}
}

// RegistrationID formats the human-readable registration id, e.g. HUNT-2025-000042.
func RegistrationID(planCode string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", strings.ToUpper(planCode), year, seq)
}

func validateTeam(enrollmentType store.EnrollmentType, teamName *string, teamSize *int) (*string, error) {
	switch enrollmentType {
	case store.EnrollmentTypeIndividual:
		if teamName != nil || teamSize != nil {
			return nil, ErrTeamFieldsNotAllowed
		}
		return nil, nil
	case store.EnrollmentTypeTeam:
		if teamName == nil || strings.TrimSpace(*teamName) == "" {
			return nil, ErrTeamNameRequired
		}
		if teamSize == nil || *teamSize < MinTeamSize {
			return nil, ErrTeamSizeTooSmall
		}
		if *teamSize > MaxTeamSize {
			return nil, ErrTeamSizeTooLarge
		}
		name := strings.TrimSpace(*teamName)
		return &name, nil
	default:
		return nil, ErrInvalidEnrollmentType
	}
}
