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

var noImageToast = errorToast{"No image selected", "Please select an image to analyze"}

// DiseaseHandler handles the disease detection screen
type DiseaseHandler struct {
	detectionService service.IDetectionService
	limiter          middleware.Limiter
	logger           *zap.Logger
}

func NewDiseaseHandler(detectionService service.IDetectionService, limiter middleware.Limiter, logger *zap.Logger) *DiseaseHandler {
	return &DiseaseHandler{
		detectionService: detectionService,
		limiter:          limiter,
		logger:           logger,
	}
}

func (h *DiseaseHandler) RegisterRoutes(router *gin.RouterGroup) {
	detection := router.Group("/disease-detection")
	{
		detection.POST("/image", h.LoadImage)
		detection.POST("/analyze", middleware.RateLimit(h.limiter, h.logger), h.AnalyzeImage)
		detection.POST("/camera", h.CameraCapture)
	}
}

// LoadImage reads the multipart "image" field into a data URL. Nothing is stored.
func (h *DiseaseHandler) LoadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		validationError(c, service.ErrNoImage, noImageToast)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		backendError(c, h.logger, err, "Error reading image")
		return
	}
	defer file.Close()

	resp, err := h.detectionService.EncodeImage(file)
	switch {
	case errors.Is(err, service.ErrNoImage):
		validationError(c, err, noImageToast)
	case errors.Is(err, service.ErrNotAnImage):
		validationError(c, err, errorToast{"Unsupported file", "Please choose a photo of the affected plant"})
	case errors.Is(err, service.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, types.NewErrorResponse(err.Error(), "Image too large", "Please choose a smaller photo"))
	case err != nil:
		backendError(c, h.logger, err, "Error reading image")
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// AnalyzeImage runs the simulated analysis on the selected image
func (h *DiseaseHandler) AnalyzeImage(c *gin.Context) {
	var req types.AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, service.ErrNoImage, noImageToast)
		return
	}

	result, err := h.detectionService.AnalyzeImage(c.Request.Context(), req.Image)
	if errors.Is(err, service.ErrNoImage) {
		validationError(c, err, noImageToast)
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error analyzing image")
		return
	}

	c.JSON(http.StatusOK, types.AnalyzeImageResponse{
		Result: result,
		Toast: types.Toast{
			Title:       "Analysis complete!",
			Description: "Detected: " + result.Disease,
			Variant:     types.ToastDefault,
		},
	})
}

// CameraCapture only explains that capture lives in the native app
func (h *DiseaseHandler) CameraCapture(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toast": h.detectionService.CameraToast()})
}
