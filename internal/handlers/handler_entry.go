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

// entryHandler handles HTTP requests related to ledger entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(s portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: s}
}

// registerEntryRoutes registers routes related to entries.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.DELETE("/:id", h.deleteEntry)
		entries.PUT("", h.replaceEntries)
	}
}

// createEntry godoc
// @Summary Record a new entry
// @Description Validates and appends a new ledger entry, updating the streak and running an achievement check
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry":         dto.ToEntryResponse(&result.Entry),
		"streak":        dto.ToStreakResponse(result.Streak),
		"newlyUnlocked": result.NewlyUnlocked,
	})
}

// listEntries godoc
// @Summary List entries
// @Description Lists entries, optionally scoped by a period keyword or an explicit from/to range (inclusive)
// @Tags entries
// @Produce json
// @Param period query string false "Period keyword (today, daily, weekly, monthly, quarterly, yearly)"
// @Param date query string false "Reference date for the period (YYYY-MM-DD, defaults to today)"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := parseListEntriesParams(c)
	if err != nil {
		logger.Warn("Invalid entry listing parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// parseListEntriesParams maps the listing query parameters onto the service
// params. A from/to pair wins over a period keyword.
func parseListEntriesParams(c *gin.Context) (dto.ListEntriesParams, error) {
	var params dto.ListEntriesParams

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			return params, errors.New("custom ranges need both from and to")
		}
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			return params, err
		}
		to, err := domain.ParseDate(toStr)
		if err != nil {
			return params, err
		}
		params.Range = &domain.DateRange{Start: from, End: to}
		return params, nil
	}

	if periodStr := c.Query("period"); periodStr != "" {
		period, err := domain.ParsePeriod(periodStr)
		if err != nil {
			return params, err
		}
		params.Period = &period
		if dateStr := c.Query("date"); dateStr != "" {
			ref, err := domain.ParseDate(dateStr)
			if err != nil {
				return params, err
			}
			params.Ref = &ref
		}
	}
	return params, nil
}

// getEntry godoc
// @Summary Get an entry by ID
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to delete entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// replaceEntries godoc
// @Summary Replace the whole entry log
// @Description Import path: swaps the entire log for the provided set after validating every record
// @Tags entries
// @Accept json
// @Produce json
// @Param entries body dto.ReplaceEntriesRequest true "Full entry set"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /entries [put]
func (h *entryHandler) replaceEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for replaceEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	count, err := h.entryService.ReplaceAllEntries(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error replacing entries", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to replace entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace entries"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}
