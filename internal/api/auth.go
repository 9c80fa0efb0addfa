package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// AuthHandler handles account and session requests
type AuthHandler struct {
	authService service.IAuthService
	sessions    *middleware.SessionManager
	logger      *zap.Logger
}

func NewAuthHandler(authService service.IAuthService, sessions *middleware.SessionManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth routes. Logout needs a signed-in user, session does not.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", requireAuth, h.Logout)
		auth.GET("/session", optionalAuth, h.Session)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err, errorToast{"Invalid registration", "Enter a valid email and a password of at least 6 characters"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		c.JSON(http.StatusConflict, types.NewErrorResponse(err.Error(), "Account exists", "An account with this email already exists"))
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error creating account")
		return
	}

	h.issueToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err, errorToast{"Invalid sign in", "Enter your email and password"})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, types.NewErrorResponse(err.Error(), "Sign in failed", "Invalid email or password"))
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error signing in")
		return
	}

	h.issueToken(c, http.StatusOK, user)
}

// issueToken signs a token for user, stores it in the session cookie and returns it
func (h *AuthHandler) issueToken(c *gin.Context, status int, user *models.User) {
	token, claims, err := h.authService.GenerateToken(user)
	if err != nil {
		backendError(c, h.logger, err, "Error signing in")
		return
	}

	if h.sessions != nil {
		if err := h.sessions.SetToken(c.Writer, c.Request, token); err != nil {
			h.logger.Warn("failed to write session cookie", zap.Error(err))
		}
	}

	c.JSON(status, types.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		User:      accountInfo(user),
	})
}

// Logout revokes the current token and clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		currentUser(c)
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), claims); err != nil {
		backendError(c, h.logger, err, "Error signing out")
		return
	}

	if h.sessions != nil {
		if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
			h.logger.Warn("failed to clear session cookie", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Session reports whether the request carries a valid token and for whom
func (h *AuthHandler) Session(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusOK, types.SessionResponse{Authenticated: false})
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		// token outlived its account
		h.logger.Debug("session user not found", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(http.StatusOK, types.SessionResponse{Authenticated: false})
		return
	}

	info := accountInfo(user)
	c.JSON(http.StatusOK, types.SessionResponse{Authenticated: true, User: &info})
}

func accountInfo(user *models.User) types.AccountInfo {
	return types.AccountInfo{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
