package handlers

import (
	"net/http"

	"psrcustoms/apperr"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a classified service error onto the wire. Validation
// errors carry field-level detail; internal failures stay opaque.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "Server error"})
		return
	}

	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		c.JSON(status, gin.H{"errors": fields})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// badRequest rejects a body that did not bind as JSON at all.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
