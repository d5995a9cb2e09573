package v1

import (
	"errors"
	"net/http"

	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the envelope, mapping typed
// application errors to their HTTP status
func respondError(c *gin.Context, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Type.HTTPStatus(), gin.H{
			"status":  "error",
			"message": appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

// respondBindError reports a malformed or incomplete request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// callerCapabilities resolves the capability set of the authenticated caller.
// The middleware guarantees the context keys are set on protected routes.
func callerCapabilities(c *gin.Context) (models.Capabilities, string, bool) {
	authUUID := c.GetString("authUuid")
	viewerUUID := c.GetString("uuid")

	caps, err := services.ResolveCapabilities(authUUID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Could not resolve caller permissions",
		})
		return models.Capabilities{}, "", false
	}
	return caps, viewerUUID, true
}
