package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"hunt-server/internal/domainerr"
	"hunt-server/internal/observability"
	"hunt-server/internal/retry"
	"hunt-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrScopeRefRequired  = domainerr.New("policy", domainerr.ErrPolicyConflict, "scope_ref is required for COHORT and USER policies")
	ErrScopeRefForbidden = domainerr.New("policy", domainerr.ErrPolicyConflict, "GLOBAL policies must not carry a scope_ref")
	ErrScopeTaken        = domainerr.New("policy", domainerr.ErrPolicyConflict, "another policy already owns this scope")
	ErrInvalidScope      = domainerr.New("policy", domainerr.ErrInvalidArgument, "unknown policy scope")
	ErrInvalidDocument   = domainerr.New("policy", domainerr.ErrInvalidArgument, "invalid policy document")
	ErrPolicyNotFound    = domainerr.New("policy", domainerr.ErrNotFound, "policy not found")
)

// PolicyStore defines the database operations required by PolicyProcessor
type PolicyStore interface {
	GetActivePolicies(ctx context.Context, userID uuid.UUID, cohorts []string) ([]store.ProgressionPolicy, error)
	GetUserCohorts(ctx context.Context, userID uuid.UUID) ([]string, error)
	GetPolicyByID(ctx context.Context, policyID uuid.UUID) (store.ProgressionPolicy, error)
	UpsertPolicy(ctx context.Context, params store.UpsertPolicyParams) (store.ProgressionPolicy, error)
	DeactivatePolicy(ctx context.Context, policyID uuid.UUID) error
}

type PolicyProcessor struct {
	store   PolicyStore
	logger  *observability.Logger
	retries []retry.Option
}

func New(policyStore PolicyStore, logger *observability.Logger) PolicyProcessor {
	return PolicyProcessor{
		store:  policyStore,
		logger: logger,
	}
}

// Resolve merges the active GLOBAL, COHORT and USER policies that apply to a user.
// Later layers override earlier ones field by field; cohort policies apply oldest first
// so the most recently created one wins.
func (p *PolicyProcessor) Resolve(ctx context.Context, userID uuid.UUID, cohortRefs []string) (EffectivePolicy, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	var policies []store.ProgressionPolicy
	err := retry.Do(ctx, "policy.resolve", func(ctx context.Context) error {
		var err error
		policies, err = p.store.GetActivePolicies(ctx, userID, cohortRefs)
		return err
	}, p.retries...)
	if err != nil {
		p.logger.Error(ctx, "failed to load active policies", err)
		return EffectivePolicy{}, err
	}

	var global, user []store.ProgressionPolicy
	var cohort []store.ProgressionPolicy
	for _, policy := range policies {
		switch policy.Scope {
		case store.PolicyScopeGlobal:
			global = append(global, policy)
		case store.PolicyScopeCohort:
			cohort = append(cohort, policy)
		case store.PolicyScopeUser:
			user = append(user, policy)
		}
	}

	effective := EffectivePolicy{Applied: []AppliedPolicy{}}
	for _, layer := range [][]store.ProgressionPolicy{global, cohort, user} {
		for _, policy := range layer {
			doc, err := ParseDocument(policy.Document)
			if err != nil {
				// a stored document that no longer validates is skipped rather than blocking the user
				p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "policy_id", Value: policy.ID}), "skipping invalid stored policy", err)
				continue
			}
			effective.Document = effective.Document.overlay(doc)
			effective.Applied = append(effective.Applied, AppliedPolicy{
				ID:       policy.ID.String(),
				Scope:    policy.Scope,
				ScopeRef: policy.ScopeRef,
			})
		}
	}
	return effective, nil
}

// ResolveForUser resolves a user's policy using the cohorts recorded for them.
func (p *PolicyProcessor) ResolveForUser(ctx context.Context, userID uuid.UUID) (EffectivePolicy, error) {
	cohorts, err := p.store.GetUserCohorts(ctx, userID)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID}), "failed to load user cohorts", err)
		return EffectivePolicy{}, err
	}
	return p.Resolve(ctx, userID, cohorts)
}

type SetPolicyRequest struct {
	ID       *uuid.UUID
	Scope    store.PolicyScope
	ScopeRef *string
	Document store.JSONB
	Active   bool
}

// SetPolicy validates and writes a policy, by id when one is given and by scope otherwise.
func (p *PolicyProcessor) SetPolicy(ctx context.Context, req SetPolicyRequest) (store.ProgressionPolicy, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scope", Value: req.Scope})

	scopeRef := normalizeScopeRef(req.ScopeRef)
	switch req.Scope {
	case store.PolicyScopeGlobal:
		if scopeRef != nil {
			return store.ProgressionPolicy{}, ErrScopeRefForbidden
		}
	case store.PolicyScopeCohort, store.PolicyScopeUser:
		if scopeRef == nil {
			return store.ProgressionPolicy{}, ErrScopeRefRequired
		}
	default:
		return store.ProgressionPolicy{}, ErrInvalidScope
	}
	if req.Scope == store.PolicyScopeUser {
		if _, err := uuid.Parse(*scopeRef); err != nil {
			return store.ProgressionPolicy{}, domainerr.Wrap("policy", domainerr.ErrInvalidArgument, errors.New("USER scope_ref must be a user id"))
		}
	}

	doc, err := ParseDocument(req.Document)
	if err != nil {
		return store.ProgressionPolicy{}, err
	}
	normalized, err := doc.JSONB()
	if err != nil {
		return store.ProgressionPolicy{}, domainerr.Wrap("policy", domainerr.ErrInvalidArgument, err)
	}

	policy, err := p.store.UpsertPolicy(ctx, store.UpsertPolicyParams{
		ID:       req.ID,
		Scope:    req.Scope,
		ScopeRef: scopeRef,
		Document: normalized,
		Active:   req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.ProgressionPolicy{}, ErrPolicyNotFound
		case errors.Is(err, store.ErrPolicyExists):
			return store.ProgressionPolicy{}, ErrScopeTaken
		}
		p.logger.Error(ctx, "failed to upsert policy", err)
		return store.ProgressionPolicy{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "policy_id", Value: policy.ID}), "policy saved")
	return policy, nil
}

func (p *PolicyProcessor) GetPolicy(ctx context.Context, policyID uuid.UUID) (store.ProgressionPolicy, error) {
	policy, err := p.store.GetPolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ProgressionPolicy{}, ErrPolicyNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "policy_id", Value: policyID}), "failed to get policy", err)
		return store.ProgressionPolicy{}, err
	}
	return policy, nil
}

func (p *PolicyProcessor) DeactivatePolicy(ctx context.Context, policyID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "policy_id", Value: policyID})
	if err := p.store.DeactivatePolicy(ctx, policyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPolicyNotFound
		}
		p.logger.Error(ctx, "failed to deactivate policy", err)
		return err
	}
	p.logger.Info(ctx, "policy deactivated")
	return nil
}

func normalizeScopeRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*ref)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
