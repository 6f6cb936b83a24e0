package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scentara/perfume-api/services"
	"go.uber.org/zap"
)

// statusFor maps domain errors onto HTTP statuses: missing resources to
// 404, uniqueness conflicts to 409, business-rule rejections to 400,
// credential failures to 401. Anything unmapped is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicateAddress),
		errors.Is(err, services.ErrAlreadyWishlisted),
		errors.Is(err, services.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotAnonymous),
		errors.Is(err, services.ErrPasswordLoginUnset),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrProductInactive),
		errors.Is(err, services.ErrNoActiveItems),
		errors.Is(err, services.ErrOrderNotPayable),
		errors.Is(err, services.ErrOrderTerminal),
		errors.Is(err, services.ErrOAuthStateInvalid),
		errors.Is(err, services.ErrProviderMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) string {
	id, _ := c.Get("user_id")
	s, _ := id.(string)
	return s
}
