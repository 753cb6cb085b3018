package handler

import (
	"net/http"
	"time"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	"hunt-server/internal/observability"
	"hunt-server/internal/search/processor"
	"hunt-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SearchProcessor
	logger    *observability.Logger
}

func New(processor processor.SearchProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SearchPlansRequest represents the HTTP request for searching plans
type SearchPlansRequest struct {
	SubcategoryID  *uuid.UUID `json:"subcategory_id,omitempty"`
	Difficulty     *string    `json:"difficulty,omitempty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Level          *int       `json:"level,omitempty" binding:"omitempty,min=1"`
	From           *time.Time `json:"from,omitempty"`
	To             *time.Time `json:"to,omitempty"`
	TimeWindowType *string    `json:"time_window_type,omitempty" binding:"omitempty,oneof=FIXED FLEXIBLE RECURRING"`
	Currency       string     `json:"currency,omitempty" binding:"omitempty,len=3"`
	MinPrice       *int64     `json:"min_price,omitempty" binding:"omitempty,min=0"`
	MaxPrice       *int64     `json:"max_price,omitempty" binding:"omitempty,min=0"`
	City           *string    `json:"city,omitempty" binding:"omitempty,max=128"`
	Country        *string    `json:"country,omitempty" binding:"omitempty,max=128"`
}

// HandleSearchPlans returns the published plans the caller may see that match the request
func (h *Handler) HandleSearchPlans(c *gin.Context) {
	var req SearchPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	search := processor.SearchRequest{
		SubcategoryID: req.SubcategoryID,
		Level:         req.Level,
		From:          req.From,
		To:            req.To,
		Currency:      req.Currency,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		City:          req.City,
		Country:       req.Country,
	}
	if req.Difficulty != nil {
		d := store.Difficulty(*req.Difficulty)
		search.Difficulty = &d
	}
	if req.TimeWindowType != nil {
		tw := store.TimeWindowType(*req.TimeWindowType)
		search.TimeWindowType = &tw
	}

	plans, err := h.processor.Search(c.Request.Context(), search, authHandler.Age(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "count": len(plans)})
}

// HandleGetPlan returns one visible plan
func (h *Handler) HandleGetPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("plan_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid plan ID format"))
		return
	}

	plan, err := h.processor.GetPlan(c.Request.Context(), planID, authHandler.Age(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// HandleGetFilters returns the filter dictionary
func (h *Handler) HandleGetFilters(c *gin.Context) {
	dict, err := h.processor.FilterDictionary(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dict)
}
