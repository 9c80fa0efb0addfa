package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/internal/api"
	"github.com/gramin-samriddhi/backend/internal/middleware"
)

// SetupRouter builds the gin engine: recovery, request logging and CORS first,
// then every API route.
func SetupRouter(deps api.Dependencies, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(allowedOrigins))

	deps.Logger = logger
	api.RegisterRoutes(router, deps)

	return router
}
