package pkg

import (
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/influencer-survey/internal/cache"
	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/memory"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/sqlite"
)

// OpenSlotStore returns the local fallback backend selected by
// SURVEY_LOCAL_DRIVER.
func OpenSlotStore(cfg *config.Config, logger *slog.Logger) (repositories.SlotRepository, error) {
	switch cfg.Local.Driver {
	case "sqlite", "":
		logger.Info("Using sqlite local store", "path", cfg.Local.Path)
		return sqlite.NewSlotSQLite(cfg.Local.Path)
	case "redis":
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis local store")
		return cache.NewRedisSlots(client, "influencer-survey", logger), nil
	case "memory":
		logger.Warn("Using in-memory local store, data is lost on restart")
		return memory.NewSlotMemory(), nil
	default:
		return nil, fmt.Errorf("unknown local store driver %q", cfg.Local.Driver)
	}
}
