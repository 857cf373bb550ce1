package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	serviceManager services.ServiceManager
	validator      *validator.Validator
}

func NewAdminHandler(serviceManager services.ServiceManager, validator *validator.Validator, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		serviceManager: serviceManager,
		validator:      validator,
	}
}

// ListResponses returns the whole collection with its timestamp
// @Summary List responses
// @Tags admin
// @Produce json
// @Success 200 {object} models.SurveyDataStore
// @Router /admin/responses [get]
func (h *AdminHandler) ListResponses(c *gin.Context) {
	c.JSON(http.StatusOK, h.serviceManager.Gateway().Snapshot(c.Request.Context()))
}

// GetStats returns the survey summary
// @Summary Survey statistics
// @Tags admin
// @Produce json
// @Success 200 {object} services.SurveySummary
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.serviceManager.Stats().Summary(c.Request.Context()))
}

// ExportResponses streams the collection as a downloadable file
// @Summary Export responses
// @Tags admin
// @Produce application/json,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "json, csv or xlsx" default(json)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /admin/export [get]
func (h *AdminHandler) ExportResponses(c *gin.Context) {
	req := models.ExportRequest{Format: models.ExportJSON}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request parameters",
			Details: err.Error(),
		})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, fmt.Errorf("%w: %v", services.ErrInvalidExportFormat, err))
		return
	}

	result, err := h.serviceManager.Export().Export(c.Request.Context(), req.Format)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Exported responses", "format", result.Format, "count", result.Count)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// ClearResponses empties the local collection. Remote rows are kept.
// @Summary Clear local responses
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/responses [delete]
func (h *AdminHandler) ClearResponses(c *gin.Context) {
	ctx := c.Request.Context()
	h.serviceManager.Survey().ClearAll(ctx)

	h.RespondWithSuccess(c, http.StatusOK, "Local responses cleared", gin.H{
		"remoteUntouched": h.serviceManager.Gateway().IsPrimaryAvailable(),
	})
}

// GetStorageStatus reports whether the primary store is in use
// @Summary Storage status
// @Tags admin
// @Produce json
// @Success 200 {object} services.StorageStatus
// @Router /admin/storage [get]
func (h *AdminHandler) GetStorageStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.serviceManager.Gateway().Status(c.Request.Context()))
}
