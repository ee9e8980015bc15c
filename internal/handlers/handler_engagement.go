package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/spendwise/spendwise_backend/internal/middleware"
)

// engagementHandler handles HTTP requests for streaks and achievements.
type engagementHandler struct {
	streakService      portssvc.StreakSvc
	achievementService portssvc.AchievementSvc
}

func newEngagementHandler(streak portssvc.StreakSvc, achievements portssvc.AchievementSvc) *engagementHandler {
	return &engagementHandler{streakService: streak, achievementService: achievements}
}

// registerEngagementRoutes registers the streak and achievement routes.
func registerEngagementRoutes(rg *gin.RouterGroup, streak portssvc.StreakSvc, achievements portssvc.AchievementSvc) {
	h := newEngagementHandler(streak, achievements)

	rg.GET("/streak", h.getStreak)
	rg.GET("/achievements", h.listAchievements)
	rg.POST("/achievements/check", h.checkAchievements)
}

// getStreak godoc
// @Summary Current streak
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.StreakResponse
// @Security BearerAuth
// @Router /streak [get]
func (h *engagementHandler) getStreak(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	streak, err := h.streakService.GetStreak(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load streak", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load streak"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStreakResponse(streak))
}

// listAchievements godoc
// @Summary List achievements
// @Description Returns the full rule table with current unlocked flags without evaluating anything
// @Tags engagement
// @Produce json
// @Success 200 {array} domain.AchievementStatus
// @Security BearerAuth
// @Router /achievements [get]
func (h *engagementHandler) listAchievements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statuses, err := h.achievementService.ListAchievements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list achievements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list achievements"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// checkAchievements godoc
// @Summary Evaluate achievements
// @Description Evaluates every still-locked rule against fresh aggregates and persists any new unlocks
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.AchievementCheckResponse
// @Security BearerAuth
// @Router /achievements/check [post]
func (h *engagementHandler) checkAchievements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	newly, all, err := h.achievementService.CheckAchievements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to evaluate achievements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate achievements"})
		return
	}

	c.JSON(http.StatusOK, dto.AchievementCheckResponse{NewlyUnlocked: newly, Achievements: all})
}
