package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gramin-samriddhi/backend/internal/types"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "user_id"
	ContextClaims = "claims"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

var errMissingToken = errors.New("missing authorization token")

// AuthMiddleware rejects requests without a valid token. The token comes from
// the Authorization header, or from the session cookie when the header is absent.
func AuthMiddleware(validator TokenValidator, sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, validator, sessions)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse(
				err.Error(),
				"Authentication required",
				"Please sign in to continue",
			))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and never aborts
func OptionalAuth(validator TokenValidator, sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, validator, sessions); err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, validator TokenValidator, sessions *SessionManager) (*types.TokenClaims, error) {
	token, err := extractToken(c, sessions)
	if err != nil {
		return nil, err
	}
	return validator.ValidateToken(c.Request.Context(), token)
}

func extractToken(c *gin.Context, sessions *SessionManager) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", errors.New("invalid authorization header format")
		}
		return parts[1], nil
	}

	if sessions != nil {
		if token := sessions.Token(c.Request); token != "" {
			return token, nil
		}
	}
	return "", errMissingToken
}

func setClaims(c *gin.Context, claims *types.TokenClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextClaims, claims)
}

// UserID returns the authenticated user set by AuthMiddleware or OptionalAuth
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// Claims returns the validated token claims of the request
func Claims(c *gin.Context) (*types.TokenClaims, bool) {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*types.TokenClaims)
	return claims, ok
}
