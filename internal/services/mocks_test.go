package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
)

var errRemoteDown = errors.New("connection refused")

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) List(ctx context.Context) ([]*models.SurveyResponse, error) {
	args := m.Called(ctx)
	responses, _ := args.Get(0).([]*models.SurveyResponse)
	return responses, args.Error(1)
}

func (m *MockResponseRepository) Insert(ctx context.Context, response *models.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// flakySlots wraps the in-memory slot store and fails writes to keys with
// the configured prefix.
type flakySlots struct {
	*memory.SlotMemory
	failWritePrefix string
}

func (f *flakySlots) Write(ctx context.Context, key string, value []byte) error {
	if f.failWritePrefix != "" && strings.HasPrefix(key, f.failWritePrefix) {
		return errors.New("quota exceeded")
	}
	return f.SlotMemory.Write(ctx, key, value)
}

var configuredRemote = config.RemoteStoreConfig{URL: "postgres://db:5432/survey", Key: "secret"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func submittedResponse(id string, at time.Time) *models.SurveyResponse {
	r := models.NewSurveyResponse(id)
	r.SubmittedAt = &at
	return r
}
