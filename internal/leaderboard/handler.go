package leaderboard

import (
	"net/http"
	"strconv"
	"strings"

	"hunt-server/internal/apierrors"
	"hunt-server/internal/observability"
	"hunt-server/internal/store"

	"github.com/gin-gonic/gin"
)

const defaultContextSize = 5

// Handler handles HTTP requests for the leaderboard API
type Handler struct {
	processor Processor
	logger    *observability.Logger
}

// NewHandler creates a new leaderboard handler
func NewHandler(processor Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetAround handles GET /api/leaderboards/:difficulty/around?rank=&context=
func (h *Handler) HandleGetAround(c *gin.Context) {
	rank, ok := intQuery(c, "rank", 0)
	if !ok {
		return
	}
	contextSize, ok := intQuery(c, "context", defaultContextSize)
	if !ok {
		return
	}

	window, err := h.processor.GetUsersAroundRank(c.Request.Context(), difficultyParam(c), rank, contextSize)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, window)
}

// HandleGetTop handles GET /api/leaderboards/:difficulty/top?limit=
func (h *Handler) HandleGetTop(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 10)
	if !ok {
		return
	}

	window, err := h.processor.GetTopUsers(c.Request.Context(), difficultyParam(c), limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, window)
}

// HandleRegenerate handles POST /api/leaderboards/:difficulty/regenerate
func (h *Handler) HandleRegenerate(c *gin.Context) {
	difficulty := difficultyParam(c)

	ranked, err := h.processor.RegenerateOverall(c.Request.Context(), difficulty)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"difficulty": difficulty, "ranked": ranked})
}

func difficultyParam(c *gin.Context) store.Difficulty {
	return store.Difficulty(strings.ToUpper(c.Param("difficulty")))
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid "+name+" parameter"))
		return 0, false
	}
	return v, true
}
