package api

import (
	"context"
	"net/http"
	"time"

	"hunt-server/internal/apierrors"
	authHandler "hunt-server/internal/auth/handler"
	enrollmentHandler "hunt-server/internal/enrollment/handler"
	"hunt-server/internal/leaderboard"
	levelsHandler "hunt-server/internal/levels/handler"
	policyHandler "hunt-server/internal/policy/handler"
	progressHandler "hunt-server/internal/progress/handler"
	searchHandler "hunt-server/internal/search/handler"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backing services are reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handlers groups every HTTP handler the API mounts
type Handlers struct {
	Auth        authHandler.Handler
	Enrollment  enrollmentHandler.Handler
	Progress    progressHandler.Handler
	Policy      policyHandler.Handler
	Levels      levelsHandler.Handler
	Search      searchHandler.Handler
	Leaderboard leaderboard.Handler

	// RateLimit runs after authentication when set
	RateLimit gin.HandlerFunc
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	health   HealthChecker
}

func New(router *gin.RouterGroup, handlers Handlers, health HealthChecker) API {
	return API{
		router:   router,
		handlers: handlers,
		health:   health,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	middleware := []gin.HandlerFunc{a.handlers.Auth.HandleJWTMiddleware}
	if a.handlers.RateLimit != nil {
		middleware = append(middleware, a.handlers.RateLimit)
	}
	apiGroup := a.router.Group("/api", middleware...)
	admin := a.handlers.Auth.RequireAdmin

	apiGroup.GET("/me", a.handlers.Auth.HandleWhoAmI)

	planGroup := apiGroup.Group("/plans")
	{
		planGroup.POST("/search", a.handlers.Search.HandleSearchPlans)
		planGroup.GET("/filters", a.handlers.Search.HandleGetFilters)
		planGroup.GET("/:plan_id", a.handlers.Search.HandleGetPlan)
		planGroup.POST("/:plan_id/enrollments", a.handlers.Enrollment.HandleEnroll)
	}

	enrollmentGroup := apiGroup.Group("/enrollments")
	{
		enrollmentGroup.GET("", a.handlers.Enrollment.HandleListMyEnrollments)
		enrollmentGroup.GET("/:enrollment_id", a.handlers.Enrollment.HandleGetEnrollment)
		enrollmentGroup.POST("/:enrollment_id/cancel", a.handlers.Enrollment.HandleCancelEnrollment)
		enrollmentGroup.POST("/:enrollment_id/approve", admin, a.handlers.Enrollment.HandleApproveEnrollment)
		enrollmentGroup.POST("/:enrollment_id/reject", admin, a.handlers.Enrollment.HandleRejectEnrollment)
		enrollmentGroup.PUT("/:enrollment_id/payment-status", admin, a.handlers.Enrollment.HandleSetPaymentStatus)

		enrollmentGroup.GET("/:enrollment_id/tasks", a.handlers.Progress.HandleListProgress)
		enrollmentGroup.POST("/:enrollment_id/tasks/:task_id/start", a.handlers.Progress.HandleStartTask)
		enrollmentGroup.POST("/:enrollment_id/tasks/:task_id/complete", a.handlers.Progress.HandleCompleteTask)
	}

	policyGroup := apiGroup.Group("/policies", admin)
	{
		policyGroup.PUT("", a.handlers.Policy.HandleSetPolicy)
		policyGroup.GET("/:policy_id", a.handlers.Policy.HandleGetPolicy)
		policyGroup.DELETE("/:policy_id", a.handlers.Policy.HandleDeactivatePolicy)
	}

	userGroup := apiGroup.Group("/users")
	{
		userGroup.GET("/me/policy", a.handlers.Policy.HandleGetEffectivePolicy)
		userGroup.GET("/me/levels", a.handlers.Levels.HandleGetMyLevels)
		userGroup.GET("/:user_id/policy", admin, a.handlers.Policy.HandleGetUserPolicy)
		userGroup.GET("/:user_id/levels", a.handlers.Levels.HandleGetUserLevels)
		userGroup.POST("/:user_id/levels/evaluate", admin, a.handlers.Levels.HandleEvaluateUser)
	}

	leaderboardGroup := apiGroup.Group("/leaderboards/:difficulty")
	{
		leaderboardGroup.GET("/around", a.handlers.Leaderboard.HandleGetAround)
		leaderboardGroup.GET("/top", a.handlers.Leaderboard.HandleGetTop)
		leaderboardGroup.POST("/regenerate", admin, a.handlers.Leaderboard.HandleRegenerate)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := a.health.Ping(ctx); err != nil {
				apierrors.RespondWithError(c, apierrors.ServiceUnavailable(err))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
