package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse wraps results that carry a user-facing message
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler carries the request-scoped logging shared by all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) requestFields(c *gin.Context, extra ...interface{}) []interface{} {
	fields := []interface{}{
		"request_id", c.GetHeader(utils.RequestIDHeader),
		"method", c.Request.Method,
		"path", c.FullPath(),
	}
	return append(fields, extra...)
}

func (h *BaseHandler) LogRequest(c *gin.Context, message string, extra ...interface{}) {
	h.logger.Info(message, h.requestFields(c, append([]interface{}{"client_ip", c.ClientIP()}, extra...)...)...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, message string, extra ...interface{}) {
	h.logger.LogError(err, message, h.requestFields(c, extra...)...)
}

func (h *BaseHandler) LogInfo(c *gin.Context, message string, extra ...interface{}) {
	h.logger.Info(message, h.requestFields(c, extra...)...)
}

func (h *BaseHandler) LogWarn(c *gin.Context, message string, extra ...interface{}) {
	h.logger.Warn(message, h.requestFields(c, extra...)...)
}

// errorCode names the status class for clients that branch on it.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "already_submitted"
	case http.StatusUnprocessableEntity:
		return "incomplete_response"
	case http.StatusServiceUnavailable:
		return "storage_unavailable"
	default:
		return "internal_error"
	}
}

// RespondWithError writes an ErrorResponse. Server errors are logged at
// error level, client errors as warnings.
func (h *BaseHandler) RespondWithError(c *gin.Context, status int, message string, err error, details ...interface{}) {
	resp := ErrorResponse{Message: message, Code: errorCode(status)}
	if len(details) > 0 {
		resp.Details = details[0]
	}

	if err != nil && status >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", status)
	} else {
		h.LogWarn(c, message, "status_code", status, "error", err)
	}

	c.JSON(status, resp)
}

func (h *BaseHandler) RespondWithSuccess(c *gin.Context, status int, message string, data interface{}, extra ...interface{}) {
	h.LogInfo(c, message, append([]interface{}{"status_code", status}, extra...)...)
	c.JSON(status, SuccessResponse{Message: message, Data: data})
}

// HealthCheck reports that the process is serving requests
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "influencer-survey",
	})
}
