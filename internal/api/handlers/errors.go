package handlers

import (
	"errors"
	"net/http"

	"employee-portal-backend/internal/auth"
	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"
	"employee-portal-backend/internal/view"

	"github.com/gin-gonic/gin"
)

// screensFor returns the screens of the request's session, or writes 401 when there is none
func screensFor(c *gin.Context, registry *view.Registry) (*auth.Session, *view.Screens, bool) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, nil, false
	}
	return session, registry.For(session.ID(), session.ExpiresAt()), true
}

// respondScreenError maps a screen failure to a status and returns the screen's state alongside
func respondScreenError(c *gin.Context, err error, state interface{}) {
	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Screen request failed")
	}
	c.JSON(status, gin.H{"error": message, "state": state})
}

func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNoSession), apperrors.IsAuthentication(err):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperrors.ErrStaleResponse),
		errors.Is(err, apperrors.ErrNotEditing),
		errors.Is(err, apperrors.ErrProfileNotLoaded):
		return http.StatusConflict, err.Error()
	case apperrors.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusBadGateway, "Store request failed"
	}
}
