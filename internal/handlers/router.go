package handlers

import (
	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	surveyHandler *SurveyHandler
	adminHandler  *AdminHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		surveyHandler: NewSurveyHandler(serviceManager.Survey(), logger),
		adminHandler:  NewAdminHandler(serviceManager, validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Respondent routes
		surveys := v1.Group("/surveys")
		{
			surveys.POST("", hm.surveyHandler.StartSurvey)
			surveys.GET("/:id", hm.surveyHandler.GetSurvey)
			surveys.GET("/:id/flow", hm.surveyHandler.GetFlow)
			surveys.PUT("/:id/answers", hm.surveyHandler.UpdateAnswer)
			surveys.POST("/:id/submit", hm.surveyHandler.SubmitSurvey)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.GET("/responses", hm.adminHandler.ListResponses)
			admin.DELETE("/responses", hm.adminHandler.ClearResponses)
			admin.GET("/stats", hm.adminHandler.GetStats)
			admin.GET("/export", hm.adminHandler.ExportResponses)
			admin.GET("/storage", hm.adminHandler.GetStorageStatus)
		}
	}
}
