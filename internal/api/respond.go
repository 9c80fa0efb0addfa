package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/middleware"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// errorToast pairs the toast title shown for a failed operation with its description
type errorToast struct {
	title       string
	description string
}

// validationError responds 400 with a destructive toast
func validationError(c *gin.Context, err error, toast errorToast) {
	c.JSON(http.StatusBadRequest, types.NewErrorResponse(err.Error(), toast.title, toast.description))
}

// backendError responds 500 and shows the backend message in the toast.
// Cancelled requests are only logged at debug level.
func backendError(c *gin.Context, logger *zap.Logger, err error, title string) {
	if errors.Is(err, context.Canceled) {
		logger.Debug("request cancelled", zap.String("path", c.Request.URL.Path))
	} else {
		logger.Error(title, zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, types.NewErrorResponse(err.Error(), title, err.Error()))
}

// currentUser returns the authenticated user or answers 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.NewErrorResponse(
			"user not authenticated",
			"Authentication required",
			"Please sign in to continue",
		))
		return uuid.Nil, false
	}
	return userID, true
}
