package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	BaseHandler
	surveyService services.SurveyService
}

func NewSurveyHandler(surveyService services.SurveyService, logger utils.Logger) *SurveyHandler {
	return &SurveyHandler{
		BaseHandler:   NewBaseHandler(logger),
		surveyService: surveyService,
	}
}

// StartSurvey creates a new response and its first draft
// @Summary Start survey
// @Tags surveys
// @Produce json
// @Success 201 {object} services.SurveyState
// @Router /surveys [post]
func (h *SurveyHandler) StartSurvey(c *gin.Context) {
	state, err := h.surveyService.Start(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Survey started", "response_id", state.Response.ID)
	c.JSON(http.StatusCreated, state)
}

// GetSurvey returns the current answers and the visible sections
// @Summary Get survey
// @Tags surveys
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} services.SurveyState
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	id, ok := parseResponseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.surveyService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetFlow returns only the visible sections
// @Summary Get survey flow
// @Tags surveys
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} services.FlowPlan
// @Router /surveys/{id}/flow [get]
func (h *SurveyHandler) GetFlow(c *gin.Context) {
	id, ok := parseResponseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.surveyService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state.Flow)
}

// UpdateAnswer replaces a single answer
// @Summary Update answer
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Response ID"
// @Param answer body models.AnswerPayload true "Section, field and new value"
// @Success 200 {object} services.SurveyState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /surveys/{id}/answers [put]
func (h *SurveyHandler) UpdateAnswer(c *gin.Context) {
	id, ok := parseResponseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.AnswerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	state, err := h.surveyService.ApplyAnswer(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitSurvey stamps the response and stores it
// @Summary Submit survey
// @Tags surveys
// @Produce json
// @Param id path string true "Response ID"
// @Success 200 {object} services.SubmitResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /surveys/{id}/submit [post]
func (h *SurveyHandler) SubmitSurvey(c *gin.Context) {
	id, ok := parseResponseIDParam(c, "id")
	if !ok {
		return
	}

	h.LogRequest(c, "Submitting survey", "response_id", id)

	result, err := h.surveyService.Submit(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Thank you for completing the survey", result,
		"response_id", id, "tier", result.Save.Tier)
}
