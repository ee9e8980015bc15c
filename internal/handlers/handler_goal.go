package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/spendwise/spendwise_backend/internal/middleware"
)

// goalHandler handles HTTP requests for goal configuration and progress.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(s portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: s}
}

// registerGoalRoutes registers the goal routes.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.PUT("", h.setGoal)
		goals.GET("/progress", h.getGoalProgress)
	}
}

// listGoals godoc
// @Summary List configured goals
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponses(goals))
}

// setGoal godoc
// @Summary Create or update a goal slot
// @Description Upserts the goal identified by (period, category). A zero target clears the slot.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.SetGoalRequest true "Goal definition"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /goals [put]
func (h *goalHandler) setGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal := domain.Goal{
		Period:   req.Period,
		Category: req.Category,
		Target:   req.Target,
		Label:    req.Label,
	}
	if err := h.goalService.SetGoal(c.Request.Context(), goal); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getGoalProgress godoc
// @Summary Goal progress
// @Description Derives the progress record for one goal slot; an unset slot reports zero progress
// @Tags goals
// @Produce json
// @Param period query string true "Goal period (daily, weekly, monthly, yearly, custom)"
// @Param category query string false "Goal category (savings or expense); default savings"
// @Success 200 {object} dto.GoalProgressResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /goals/progress [get]
func (h *goalHandler) getGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := domain.ParseGoalPeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := domain.GoalSavings
	if categoryStr := c.Query("category"); categoryStr != "" {
		parsed, err := domain.ParseGoalCategory(categoryStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category = parsed
	}

	progress, err := h.goalService.GoalProgress(c.Request.Context(), period, category)
	if err != nil {
		logger.Error("Failed to derive goal progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive goal progress"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalProgressResponse(progress))
}
