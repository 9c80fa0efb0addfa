package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// DashboardHandler handles the home screen
type DashboardHandler struct {
	dashboardService service.IDashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.IDashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.POST("/messages", h.SendMessage)
	}
}

// GetDashboard returns the greeting, stat cards and recent conversations
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Dashboard())
}

// SendMessage accepts a chat message and returns the cleared input
func (h *DashboardHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err, errorToast{"Empty message", "Type a question to send"})
		return
	}

	resp, err := h.dashboardService.SendMessage(c.Request.Context(), userID, req.Message)
	if errors.Is(err, service.ErrEmptyMessage) {
		validationError(c, err, errorToast{"Empty message", "Type a question to send"})
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error sending message")
		return
	}

	c.JSON(http.StatusOK, resp)
}
