package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/spendwise_backend/cmd/docs"
	portssvc "github.com/spendwise/spendwise_backend/internal/core/ports/services"
	"github.com/spendwise/spendwise_backend/internal/middleware"
	"github.com/spendwise/spendwise_backend/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes, rate limited per client IP
	public := r.Group("/api/v1")
	registerAuthRoutes(public, services.Auth, loginRateLimit(cfg))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// loginRateLimit builds the rate limit middleware for the login endpoint from
// the configured limiter notation.
func loginRateLimit(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, falling back to 10-M", slog.String("value", cfg.LoginRateLimit), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	store := limitermemory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerHomeRoutes(v1)
	registerEntryRoutes(v1, services.Entry)
	registerSummaryRoutes(v1, services.Ledger)
	registerGoalRoutes(v1, services.Goal)
	registerEngagementRoutes(v1, services.Streak, services.Achievement)
	registerCategoryRoutes(v1, services.Category)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
