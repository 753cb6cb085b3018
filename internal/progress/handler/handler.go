package handler

import (
	"net/http"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/observability"
	"hunt-server/internal/progress/processor"
	"hunt-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ProgressProcessor
	logger    *observability.Logger
}

func New(processor processor.ProgressProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleCompleteTask marks a task done for one of the caller's enrollments
func (h *Handler) HandleCompleteTask(c *gin.Context) {
	enrollment, taskID, ok := h.loadTarget(c)
	if !ok {
		return
	}

	progress, err := h.processor.CompleteTask(c.Request.Context(), enrollment.ID, taskID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// HandleStartTask records that the caller started a task
func (h *Handler) HandleStartTask(c *gin.Context) {
	enrollment, taskID, ok := h.loadTarget(c)
	if !ok {
		return
	}

	progress, err := h.processor.StartTask(c.Request.Context(), enrollment.ID, taskID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// HandleListProgress lists the task progress of an enrollment
func (h *Handler) HandleListProgress(c *gin.Context) {
	enrollment, ok := h.loadOwned(c)
	if !ok {
		return
	}

	rows, err := h.processor.ListProgress(c.Request.Context(), enrollment.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment_id": enrollment.ID, "tasks": rows})
}

func (h *Handler) loadTarget(c *gin.Context) (store.Enrollment, uuid.UUID, bool) {
	enrollment, ok := h.loadOwned(c)
	if !ok {
		return store.Enrollment{}, uuid.UUID{}, false
	}
	taskID, ok := getUUIDParam(c, "task_id")
	if !ok {
		return store.Enrollment{}, uuid.UUID{}, false
	}
	return enrollment, taskID, true
}

// loadOwned hides enrollments of other users from non-admin callers
func (h *Handler) loadOwned(c *gin.Context) (store.Enrollment, bool) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		return store.Enrollment{}, false
	}
	enrollmentID, ok := getUUIDParam(c, "enrollment_id")
	if !ok {
		return store.Enrollment{}, false
	}

	enrollment, err := h.processor.GetEnrollment(c.Request.Context(), enrollmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return store.Enrollment{}, false
	}
	if enrollment.UserID != userID && !authHandler.IsAdmin(c) {
		apierrors.RespondWithError(c, processor.ErrEnrollmentNotFound)
		return store.Enrollment{}, false
	}
	return enrollment, true
}

func getUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid "+name+" format"))
		return uuid.UUID{}, false
	}
	return id, true
}
