package handler

import (
	"net/http"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/enrollment/processor"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.EnrollmentProcessor
	logger    *observability.Logger
}

func New(processor processor.EnrollmentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// EnrollRequest represents the HTTP request for enrolling in a plan
type EnrollRequest struct {
	Type     string  `json:"type" binding:"required,oneof=INDIVIDUAL TEAM"`
	TeamName *string `json:"team_name,omitempty" binding:"omitempty,max=128"`
	TeamSize *int    `json:"team_size,omitempty" binding:"omitempty,min=2,max=20"`
}

// PaymentStatusRequest represents a manual payment status correction
type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NONE AWAITING PAID REFUNDED"`
}

// HandleEnroll enrolls the caller in a plan
func (h *Handler) HandleEnroll(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}
	planID, ok := h.getUUIDParam(c, "plan_id")
	if !ok {
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	enrollment, err := h.processor.Enroll(ctx, processor.EnrollRequest{
		PlanID:   planID,
		UserID:   userID,
		Type:     store.EnrollmentType(req.Type),
		TeamName: req.TeamName,
		TeamSize: req.TeamSize,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// HandleListMyEnrollments lists the caller's enrollments
func (h *Handler) HandleListMyEnrollments(c *gin.Context) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	enrollments, err := h.processor.ListEnrollments(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments})
}

func (h *Handler) HandleGetEnrollment(c *gin.Context) {
	enrollment, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// HandleCancelEnrollment cancels an enrollment owned by the caller
func (h *Handler) HandleCancelEnrollment(c *gin.Context) {
	enrollment, ok := h.loadOwned(c)
	if !ok {
		return
	}

	cancelled, err := h.processor.Cancel(c.Request.Context(), enrollment.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

func (h *Handler) HandleApproveEnrollment(c *gin.Context) {
	approverID, ok := authHandler.UserID(c)
	if !ok {
		return
	}
	enrollmentID, ok := h.getUUIDParam(c, "enrollment_id")
	if !ok {
		return
	}

	enrollment, err := h.processor.Approve(c.Request.Context(), enrollmentID, approverID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *Handler) HandleRejectEnrollment(c *gin.Context) {
	enrollmentID, ok := h.getUUIDParam(c, "enrollment_id")
	if !ok {
		return
	}

	enrollment, err := h.processor.Reject(c.Request.Context(), enrollmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// HandleSetPaymentStatus lets an operator apply a payment status the bus never delivered
func (h *Handler) HandleSetPaymentStatus(c *gin.Context) {
	enrollmentID, ok := h.getUUIDParam(c, "enrollment_id")
	if !ok {
		return
	}

	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	enrollment, err := h.processor.OnPaymentStatusChanged(c.Request.Context(), enrollmentID, store.PaymentStatus(req.Status))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// loadOwned fetches the enrollment in the path and checks the caller may see it.
// Other users' enrollments are reported as missing.
func (h *Handler) loadOwned(c *gin.Context) (store.Enrollment, bool) {
	userID, ok := authHandler.UserID(c)
	if !ok {
		return store.Enrollment{}, false
	}
	enrollmentID, ok := h.getUUIDParam(c, "enrollment_id")
	if !ok {
		return store.Enrollment{}, false
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "enrollment_id", Value: enrollmentID.String()})
	enrollment, err := h.processor.GetEnrollment(ctx, enrollmentID)
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

func (h *Handler) getUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid "+name+" format"))
		return uuid.UUID{}, false
	}
	return id, true
}
