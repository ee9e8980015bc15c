package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/spendwise_backend/internal/apperrors"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/dto"
	"github.com/spendwise/spendwise_backend/internal/middleware"
)

// authHandler handles authentication requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(s portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: s}
}

// registerAuthRoutes registers the login route. The rate limit middleware is
// built by the caller so its configuration stays in one place.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvc, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", rateLimit, h.login)
	}
}

// login godoc
// @Summary Log in with the app PIN
// @Description Verifies the configured PIN and issues a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "App PIN"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Wrong PIN"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid PIN"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
