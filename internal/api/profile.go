package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramin-samriddhi/backend/internal/service"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// ProfileHandler handles the farmer profile editor
type ProfileHandler struct {
	profileService service.IProfileService
	authService    service.IAuthService
	logger         *zap.Logger
}

func NewProfileHandler(profileService service.IProfileService, authService service.IAuthService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
		logger:         logger,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.LoadProfile)
		profile.PUT("", h.SaveProfile)
		profile.GET("/languages", h.ListLanguages)
	}
}

// LoadProfile returns the stored profile, or the empty form, with the account details
func (h *ProfileHandler) LoadProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	form, err := h.profileService.LoadProfile(c.Request.Context(), userID)
	if err != nil {
		backendError(c, h.logger, err, "Error loading profile")
		return
	}

	resp := types.ProfileResponse{Profile: form}
	if user, err := h.authService.GetUserByID(c.Request.Context(), userID); err == nil {
		info := accountInfo(user)
		resp.Account = &info
	} else {
		h.logger.Warn("account lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}

// SaveProfile upserts the five profile fields
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var form types.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		validationError(c, err, errorToast{"Error saving profile", "The profile form could not be read"})
		return
	}

	saved, err := h.profileService.SaveProfile(c.Request.Context(), userID, form)
	if errors.Is(err, service.ErrUnsupportedLanguage) {
		validationError(c, err, errorToast{"Error saving profile", "Choose one of the listed languages"})
		return
	}
	if err != nil {
		backendError(c, h.logger, err, "Error saving profile")
		return
	}

	c.JSON(http.StatusOK, types.ProfileResponse{
		Profile: saved,
		Toast: &types.Toast{
			Title:       "Profile saved",
			Description: "Your profile has been updated successfully",
			Variant:     types.ToastDefault,
		},
	})
}

func (h *ProfileHandler) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.profileService.Languages()})
}
