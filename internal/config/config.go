package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Values shipped in .env.example; treated the same as an unset variable.
const (
	PlaceholderRemoteURL = "your-database-url"
	PlaceholderRemoteKey = "your-access-key"
)

type Config struct {
	Port        string
	Environment string
	Remote      RemoteStoreConfig
	Local       LocalStoreConfig
	Events      EventConfig
}

// RemoteStoreConfig identifies the primary response store.
type RemoteStoreConfig struct {
	URL string
	Key string
}

// LocalStoreConfig selects the backend for the fallback slots.
type LocalStoreConfig struct {
	Driver   string // sqlite, redis or memory
	Path     string
	RedisURL string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the process environment is used instead.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Remote: RemoteStoreConfig{
			URL: getEnv("SURVEY_REMOTE_URL", ""),
			Key: getEnv("SURVEY_REMOTE_KEY", ""),
		},
		Local: LocalStoreConfig{
			Driver:   getEnv("SURVEY_LOCAL_DRIVER", "sqlite"),
			Path:     getEnv("SURVEY_LOCAL_PATH", "data/survey-local.db"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Events: EventConfig{
			Enabled:      getEnvBool("EVENTS_ENABLED", false),
			Publisher:    getEnv("EVENTS_PUBLISHER", "kafka"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("SURVEY_EVENTS_TOPIC", "survey-events"),
		},
	}, nil
}

// IsConfigured reports whether both the endpoint and the credential are set
// to real values. An unconfigured remote store routes every call to the
// local fallback.
func (c RemoteStoreConfig) IsConfigured() bool {
	u := strings.TrimSpace(c.URL)
	k := strings.TrimSpace(c.Key)
	if u == "" || k == "" {
		return false
	}
	return u != PlaceholderRemoteURL && k != PlaceholderRemoteKey
}

// DSN builds the postgres connection string, using the credential as the
// password of the endpoint URL.
func (c RemoteStoreConfig) DSN() (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("remote store is not configured")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid remote store url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported remote store scheme %q", u.Scheme)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.Key)
	return u.String(), nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
