package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/spendwise_backend/internal/core/domain"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/spendwise/spendwise_backend/internal/middleware"
)

// summaryHandler handles HTTP requests for period summaries and balances.
type summaryHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newSummaryHandler(s portssvc.LedgerSvc) *summaryHandler {
	return &summaryHandler{ledgerService: s}
}

// registerSummaryRoutes registers the summary and balance routes.
func registerSummaryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newSummaryHandler(ledgerService)

	rg.GET("/summary", h.getSummary)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.getBalances)
		balances.PUT("/baseline", h.setBaseline)
		balances.GET("/baseline", h.getBaseline)
	}
}

// getSummary godoc
// @Summary Period summary
// @Description Aggregates the entries of a period keyword or an explicit from/to range into totals and per-mode breakdowns
// @Tags summary
// @Produce json
// @Param period query string false "Period keyword (today, daily, weekly, monthly, quarterly, yearly); default monthly"
// @Param date query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var summary *domain.Summary

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		to, err := domain.ParseDate(toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		summary, err = h.ledgerService.RangeSummary(c.Request.Context(), domain.DateRange{Start: from, End: to})
		if err != nil {
			logger.Error("Failed to compute range summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}
	} else {
		period := domain.PeriodMonthly
		if periodStr := c.Query("period"); periodStr != "" {
			parsed, err := domain.ParsePeriod(periodStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			period = parsed
		}
		ref := domain.Today()
		if dateStr := c.Query("date"); dateStr != "" {
			parsed, err := domain.ParseDate(dateStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ref = parsed
		}
		var err error
		summary, err = h.ledgerService.PeriodSummary(c.Request.Context(), period, ref)
		if err != nil {
			logger.Error("Failed to compute period summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getBalances godoc
// @Summary Current balances
// @Description Folds the whole log on top of the baselines; a rail with an unset baseline is null
// @Tags balances
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *summaryHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.ledgerService.CurrentBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.BalancesResponse{Bank: balances.Bank, Cash: balances.Cash})
}

// getBaseline godoc
// @Summary Get the configured starting balances
// @Tags balances
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Security BearerAuth
// @Router /balances/baseline [get]
func (h *summaryHandler) getBaseline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	baseline, err := h.ledgerService.GetBaseline(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load baseline", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load baseline"})
		return
	}

	c.JSON(http.StatusOK, dto.BalancesResponse{Bank: baseline.Bank, Cash: baseline.Cash})
}

// setBaseline godoc
// @Summary Set the starting balances
// @Description Stores the user-set starting balances; null fields clear them
// @Tags balances
// @Accept json
// @Produce json
// @Param baseline body dto.SetBaselineRequest true "Baseline amounts"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input format"
// @Security BearerAuth
// @Router /balances/baseline [put]
func (h *summaryHandler) setBaseline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setBaseline", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledgerService.SetBaseline(c.Request.Context(), domain.Baseline{Bank: req.Bank, Cash: req.Cash}); err != nil {
		logger.Error("Failed to save baseline", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save baseline"})
		return
	}

	c.Status(http.StatusNoContent)
}
