package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/events"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/memory"
	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := services.NewTieredStorage(config.RemoteStoreConfig{}, nil, memory.NewSlotMemory())
	v := validator.New()
	manager := services.NewServiceManager(storage, events.NewMockEventPublisher(slogger), v, slogger)

	router := gin.New()
	NewHandlerManager(manager, v, utils.NewSlogLogger(slogger)).SetupRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func startSurvey(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/surveys", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var state services.SurveyState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.NotEmpty(t, state.Response.ID)
	return state.Response.ID
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestSurveyRoutes_Lifecycle(t *testing.T) {
	router := setupRouter(t)
	id := startSurvey(t, router)

	w := doRequest(router, http.MethodPut, "/api/v1/surveys/"+id+"/answers", map[string]interface{}{
		"section": "social_media",
		"field":   "usesSocialMedia",
		"value":   true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/v1/surveys/"+id+"/flow", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var flow services.FlowPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flow))
	assert.True(t, flow.IsVisible("influencer_relations"))

	w = doRequest(router, http.MethodPost, "/api/v1/surveys/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"tier":"local"`)

	w = doRequest(router, http.MethodPost, "/api/v1/surveys/"+id+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"already_submitted"`)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/responses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

func TestSurveyRoutes_NotFound(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/surveys/5a0c0c8e-2b5e-4b7a-9d4e-1f2a3b4c5d6e", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/surveys/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSurveyRoutes_BadAnswers(t *testing.T) {
	router := setupRouter(t)
	id := startSurvey(t, router)
	path := "/api/v1/surveys/" + id + "/answers"

	w := doRequest(router, http.MethodPut, path, map[string]interface{}{
		"section": "demographics", "field": "shoeSize", "value": 42,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown survey field")

	w = doRequest(router, http.MethodPut, path, map[string]interface{}{
		"section": "demographics", "field": "gender", "value": "robot",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")

	w = doRequest(router, http.MethodPut, path, map[string]interface{}{"value": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes_Export(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/admin/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Body.String(), "no responses yield an empty CSV")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))

	id := startSurvey(t, router)
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/api/v1/surveys/"+id+"/submit", nil).Code)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/export?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, strings.Split(w.Body.String(), "\n"), 2)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lastUpdated"`)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes_StatsAndClear(t *testing.T) {
	router := setupRouter(t)
	id := startSurvey(t, router)
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/api/v1/surveys/"+id+"/submit", nil).Code)

	w := doRequest(router, http.MethodGet, "/api/v1/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary services.SurveySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalResponses)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/storage", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status services.StorageStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.PrimaryAvailable)
	assert.Nil(t, status.RemoteCount)
	assert.Equal(t, 1, status.LocalCount)
	assert.Equal(t, 0, status.OpenDrafts)

	w = doRequest(router, http.MethodDelete, "/api/v1/admin/responses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/admin/stats", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.TotalResponses)
}
