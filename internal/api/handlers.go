package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/database"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the services the HTTP handlers are built from
type Dependencies struct {
	DB                    *gorm.DB
	Auth                  service.IAuthService
	Profiles              service.IProfileService
	Detection             service.IDetectionService
	Recommendations       service.IRecommendationService
	Dashboard             service.IDashboardService
	Sessions              *middleware.SessionManager
	Manifest              config.MobileManifest
	AnalysisLimiter       middleware.Limiter
	RecommendationLimiter middleware.Limiter
	Logger                *zap.Logger
}

// HealthHandler reports whether the API and its database are reachable
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, h.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Gramin Samriddhi API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	health := NewHealthHandler(deps.DB)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	requireAuth := middleware.AuthMiddleware(deps.Auth, deps.Sessions)
	optionalAuth := middleware.OptionalAuth(deps.Auth, deps.Sessions)

	v1 := router.Group("/api/v1")

	NewAuthHandler(deps.Auth, deps.Sessions, logger).RegisterRoutes(v1, requireAuth, optionalAuth)
	NewShellHandler().RegisterRoutes(v1, optionalAuth)
	NewManifestHandler(deps.Manifest).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(requireAuth)

	NewDashboardHandler(deps.Dashboard, logger).RegisterRoutes(protected)
	NewDiseaseHandler(deps.Detection, deps.AnalysisLimiter, logger).RegisterRoutes(protected)
	NewRecommendationHandler(deps.Recommendations, deps.RecommendationLimiter, logger).RegisterRoutes(protected)
	NewProfileHandler(deps.Profiles, deps.Auth, logger).RegisterRoutes(protected)
}
