package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseResponseIDParam reads a response id path parameter. Malformed ids are
// answered with 404 since no response can carry them.
func parseResponseIDParam(c *gin.Context, param string) (string, bool) {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return "", false
	}
	if _, err := uuid.Parse(idStr); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Survey response not found",
		})
		return "", false
	}
	return idStr, true
}
