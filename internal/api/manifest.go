package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/config"
)

// ManifestHandler serves the packaging manifest of the mobile wrapper
type ManifestHandler struct {
	manifest config.MobileManifest
}

func NewManifestHandler(manifest config.MobileManifest) *ManifestHandler {
	return &ManifestHandler{manifest: manifest}
}

func (h *ManifestHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/app/manifest", h.GetManifest)
}

func (h *ManifestHandler) GetManifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.manifest)
}
