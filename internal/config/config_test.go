package config

import (
	"io"
	"log/slog"
	"testing"

	"github.com/SAP-F-2025/influencer-survey/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStoreConfig_IsConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  RemoteStoreConfig
		want bool
	}{
		{"empty", RemoteStoreConfig{}, false},
		{"missing key", RemoteStoreConfig{URL: "postgres://db:5432/survey"}, false},
		{"missing url", RemoteStoreConfig{Key: "secret"}, false},
		{"placeholder url", RemoteStoreConfig{URL: PlaceholderRemoteURL, Key: "secret"}, false},
		{"placeholder key", RemoteStoreConfig{URL: "postgres://db:5432/survey", Key: PlaceholderRemoteKey}, false},
		{"configured", RemoteStoreConfig{URL: "postgres://db:5432/survey", Key: "secret"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.IsConfigured())
		})
	}
}

func TestRemoteStoreConfig_DSN(t *testing.T) {
	cfg := RemoteStoreConfig{URL: "postgres://survey@db:5432/survey?sslmode=disable", Key: "s3cret"}

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://survey:s3cret@db:5432/survey?sslmode=disable", dsn)

	_, err = RemoteStoreConfig{URL: "mysql://db/survey", Key: "x"}.DSN()
	assert.Error(t, err)

	_, err = RemoteStoreConfig{}.DSN()
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SURVEY_REMOTE_URL", "")
	t.Setenv("SURVEY_LOCAL_DRIVER", "")
	t.Setenv("EVENTS_ENABLED", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Local.Driver)
	assert.False(t, cfg.Remote.IsConfigured())
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "survey-events", cfg.Events.Topic)
}

func TestEventConfig_CreateEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled := EventConfig{Enabled: false}
	pub, err := disabled.CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, pub)

	unknown := EventConfig{Enabled: true, Publisher: "carrier-pigeon"}
	pub, err = unknown.CreateEventPublisher(logger)
	require.NoError(t, err)
	assert.IsType(t, &events.MockEventPublisher{}, pub)

	brokers := EventConfig{KafkaBrokers: "a:9092, b:9092"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, brokers.GetKafkaBrokers())
}
