package handler

import (
	"net/http"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/observability"
	"hunt-server/internal/policy/processor"
	"hunt-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PolicyProcessor
	logger    *observability.Logger
}

func New(processor processor.PolicyProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SetPolicyRequest represents the HTTP request for creating or updating a policy
type SetPolicyRequest struct {
	ID       *uuid.UUID             `json:"id,omitempty"`
	Scope    string                 `json:"scope" binding:"required,oneof=GLOBAL COHORT USER"`
	ScopeRef *string                `json:"scope_ref,omitempty"`
	Document map[string]interface{} `json:"document"`
	Active   *bool                  `json:"active,omitempty"`
}

// HandleGetEffectivePolicy resolves the caller's merged policy
func (h *Handler) HandleGetEffectivePolicy(c *gin.Context) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}
	h.respondEffective(c, userID)
}

// HandleGetUserPolicy resolves another user's merged policy
func (h *Handler) HandleGetUserPolicy(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}
	h.respondEffective(c, userID)
}

func (h *Handler) respondEffective(c *gin.Context, userID uuid.UUID) {
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "user_id", Value: userID.String()})

	effective, err := h.processor.ResolveForUser(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	resolved := gin.H{}
	for _, d := range store.Difficulties {
		resolved[string(d)] = gin.H{
			"min_level":       effective.MinLevel(d),
			"level_cap":       effective.LevelCap(d),
			"tasks_per_level": effective.TasksPerLevel(d),
			"plans_per_level": effective.PlansPerLevel(d),
			"invite_override": effective.InviteOverride(d),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":             userID,
		"require_all_crucial": effective.RequireAllCrucial(),
		"difficulties":        resolved,
		"extensions":          effective.Document.Extensions,
		"applied":             effective.Applied,
	})
}

// HandleSetPolicy creates or updates a policy
func (h *Handler) HandleSetPolicy(c *gin.Context) {
	ctx := c.Request.Context()

	var req SetPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	policy, err := h.processor.SetPolicy(ctx, processor.SetPolicyRequest{
		ID:       req.ID,
		Scope:    store.PolicyScope(req.Scope),
		ScopeRef: req.ScopeRef,
		Document: store.JSONB(req.Document),
		Active:   active,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, policy)
}

func (h *Handler) HandleGetPolicy(c *gin.Context) {
	policyID, ok := h.getPolicyID(c)
	if !ok {
		return
	}

	policy, err := h.processor.GetPolicy(c.Request.Context(), policyID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *Handler) HandleDeactivatePolicy(c *gin.Context) {
	policyID, ok := h.getPolicyID(c)
	if !ok {
		return
	}

	if err := h.processor.DeactivatePolicy(c.Request.Context(), policyID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getPolicyID(c *gin.Context) (uuid.UUID, bool) {
	policyID, err := uuid.Parse(c.Param("policy_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid policy ID format"))
		return uuid.UUID{}, false
	}
	return policyID, true
}
