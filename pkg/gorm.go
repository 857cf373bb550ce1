package pkg

import (
	"fmt"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the remote response store. It returns nil, nil when the
// remote store is not configured.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.Remote.IsConfigured() {
		return nil, nil
	}

	dsn, err := cfg.Remote.DSN()
	if err != nil {
		return nil, err
	}

	var logLevel logger.LogLevel
	if cfg.IsProduction() {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
