package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cadastra/backend/internal/logging"
	"github.com/cadastra/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "cadastra API is running",
	})
}

// parseID reads the :id route parameter as a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// validationFailed writes the collected field messages when err is a
// validation failure, reporting whether it handled the error.
func validationFailed(c *gin.Context, err error) bool {
	ve, ok := service.AsValidationError(err)
	if !ok {
		return false
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": ve.Result.Messages()})
	return true
}

// internalError logs the failure and answers with a generic message. The
// raw error text stays out of the response.
func internalError(c *gin.Context, err error) {
	logging.Logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func isNotFound(err error) bool { return errors.Is(err, service.ErrNotFound) }
func isNotOwner(err error) bool { return errors.Is(err, service.ErrNotOwner) }
