package handler

import (
	"context"
	"net/http"
	"strings"

	"hunt-server/internal/apierrors"
	"hunt-server/internal/auth/processor"
	"hunt-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys set by HandleJWTMiddleware
const (
	ContextUserID = "User-ID"
	ContextRole   = "Role"
	ContextAge    = "Age"
)

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.Principal, error)
}

type Handler struct {
	authProcessor TokenValidator
	logger        *observability.Logger
}

func New(authProcessor TokenValidator, logger *observability.Logger) Handler {
	return Handler{
		authProcessor: authProcessor,
		logger:        logger,
	}
}

// HandleJWTMiddleware authenticates the bearer token and stores the caller in the gin context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	principal, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	c.Set(ContextUserID, principal.UserID.String())
	c.Set(ContextRole, principal.Role)
	if principal.Age != nil {
		c.Set(ContextAge, *principal.Age)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: principal.UserID.String()})
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func (h *Handler) RequireAdmin(c *gin.Context) {
	if c.GetString(ContextRole) != processor.RoleAdmin {
		apierrors.RespondWithError(c, apierrors.Forbidden("Admin role required"))
		return
	}
	c.Next()
}

// UserID returns the authenticated caller, writing a 401 when there is none.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.UUID{}, false
	}
	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid user ID in token"))
		return uuid.UUID{}, false
	}
	return userID, true
}

// Age returns the caller's age when the token carries one
func Age(c *gin.Context) *int {
	raw, exists := c.Get(ContextAge)
	if !exists {
		return nil
	}
	age, ok := raw.(int)
	if !ok {
		return nil
	}
	return &age
}

// IsAdmin reports whether the authenticated caller has the admin role
func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextRole) == processor.RoleAdmin
}

// HandleWhoAmI returns the authenticated caller
func (h *Handler) HandleWhoAmI(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": c.GetString(ContextRole)})
}
