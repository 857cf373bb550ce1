package handlers

import (
	"errors"
	"net/http"

	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/gin-gonic/gin"
)

// handleServiceError maps service errors onto HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	// Handle custom error types first
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
		return
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		h.RespondWithError(c, http.StatusUnprocessableEntity, businessRuleError.Message, err, map[string]interface{}{
			"rule":    businessRuleError.Rule,
			"context": businessRuleError.Context,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrResponseNotFound):
		h.RespondWithError(c, http.StatusNotFound, "Survey response not found", err)
	case errors.Is(err, services.ErrAlreadySubmitted):
		h.RespondWithError(c, http.StatusConflict, "Survey response already submitted", err)
	case errors.Is(err, services.ErrUnknownField):
		h.RespondWithError(c, http.StatusBadRequest, "Unknown survey field", err, err.Error())
	case errors.Is(err, services.ErrInvalidExportFormat):
		h.RespondWithError(c, http.StatusBadRequest, "Invalid export format", err, err.Error())
	case errors.Is(err, services.ErrSaveFailed):
		h.RespondWithError(c, http.StatusServiceUnavailable, "Your response could not be saved, please try again", err)
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request", err, err.Error())
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, "Resource not found", err)
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, "Resource conflict", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
