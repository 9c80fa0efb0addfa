package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins covers the local dev servers and the native shells
var DefaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://localhost:5173",
	"capacitor://localhost",
	"https://localhost",
}

// CORS allows the configured webview and dev-server origins, with credentials
// so the session cookie is sent. The native shells use their own URL schemes.
// An empty list falls back to DefaultAllowedOrigins.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		AllowWildcard:    true,
		CustomSchemas:    []string{"capacitor://", "ionic://"},
		MaxAge:           24 * time.Hour,
	})
}
