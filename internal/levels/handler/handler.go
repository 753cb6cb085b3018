package handler

import (
	"net/http"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/levels/processor"
	"hunt-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LevelProcessor
	logger    *observability.Logger
}

func New(processor processor.LevelProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetMyLevels returns the caller's stored levels
func (h *Handler) HandleGetMyLevels(c *gin.Context) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	levels, err := h.processor.GetUserLevels(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"levels": levels})
}

// HandleGetUserLevels returns another user's stored levels. Only the user or an admin may read them.
func (h *Handler) HandleGetUserLevels(c *gin.Context) {
	callerID, ok := authHandler.UserID(c)
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}
	if userID != callerID && !authHandler.IsAdmin(c) {
		apierrors.RespondWithError(c, apierrors.Forbidden("Cannot read another user's levels"))
		return
	}

	levels, err := h.processor.GetUserLevels(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "levels": levels})
}

// HandleEvaluateUser re-runs level evaluation for a user, e.g. after a policy change
func (h *Handler) HandleEvaluateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return
	}

	summary, err := h.processor.EvaluateOnTaskCompletion(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "levels": summary})
}
