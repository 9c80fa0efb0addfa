package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token. The registered ID
// claim is what sign-out revokes.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      AccountInfo `json:"user"`
}

// SessionResponse describes the current auth state
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *AccountInfo `json:"user,omitempty"`
}
