// Package apierr maps repository and domain errors onto JSON error responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-app/internal/repository"
)

// Write responds with the status matching err. Unknown errors become a 500
// carrying fallback, and are logged.
func Write(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var nf *repository.ErrNotFound
	var conflict *repository.ErrConflict
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.Is(err, repository.ErrProtected):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// BadRequest responds 400 with msg.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
