package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

var locationRequiredToast = errorToast{"Location required", "Please enter your location to get recommendations"}

// RecommendationHandler handles the crop recommendation screen
type RecommendationHandler struct {
	recommendationService service.IRecommendationService
	limiter               middleware.Limiter
	logger                *zap.Logger
}

func NewRecommendationHandler(recommendationService service.IRecommendationService, limiter middleware.Limiter, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		limiter:               limiter,
		logger:                logger,
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	recommendations := router.Group("/recommendations")
	{
		recommendations.GET("/conditions", h.CurrentConditions)
		recommendations.POST("", middleware.RateLimit(h.limiter, h.logger), h.GetRecommendations)
	}
}

// CurrentConditions returns the soil panel, or null conditions until a location is entered
func (h *RecommendationHandler) CurrentConditions(c *gin.Context) {
	c.JSON(http.StatusOK, types.ConditionsResponse{
		Conditions: h.recommendationService.CurrentConditions(c.Query("location")),
	})
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, service.ErrLocationRequired, locationRequiredToast)
		return
	}

	crops, err := h.recommendationService.Recommend(c.Request.Context(), req.Location)
	if errors.Is(err, service.ErrLocationRequired) {
		validationError(c, err, locationRequiredToast)
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error getting recommendations")
		return
	}

	c.JSON(http.StatusOK, types.RecommendationResponse{
		Location:        req.Location,
		Recommendations: crops,
		Toast: types.Toast{
			Title:       "Recommendations ready!",
			Description: "Found suitable crops for your area",
			Variant:     types.ToastDefault,
		},
	})
}
