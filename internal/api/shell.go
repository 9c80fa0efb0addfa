package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/navigation"
)

// ShellHandler serves the routed app shell
type ShellHandler struct{}

func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

func (h *ShellHandler) RegisterRoutes(router *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	router.GET("/shell", optionalAuth, h.ResolveShell)
}

// ResolveShell returns the auth view for signed-out requests, otherwise the
// page and tab bar for the requested path.
func (h *ShellHandler) ResolveShell(c *gin.Context) {
	_, authenticated := middleware.UserID(c)
	c.JSON(http.StatusOK, navigation.BuildShell(c.Query("path"), authenticated))
}
