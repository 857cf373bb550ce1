package pkg

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/events"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/postgres"
	"github.com/SAP-F-2025/influencer-survey/internal/services"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
)

// Runtime holds everything the server and the CLI share.
type Runtime struct {
	Config    *config.Config
	Services  services.ServiceManager
	Validator *validator.Validator
	Logger    *slog.Logger

	closers []func() error
}

// NewRuntime connects the stores and the event publisher and builds the
// services. A remote store that cannot be reached is logged and skipped.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{Config: cfg, Logger: logger, Validator: validator.New()}

	var primary repositories.ResponseRepository
	db, err := InitDatabase(cfg)
	switch {
	case err != nil:
		logger.Warn("Remote store unavailable, using local store only", "error", err)
	case db == nil:
		logger.Info("Remote store not configured, using local store only")
	default:
		if err := postgres.AutoMigrate(db); err != nil {
			logger.Warn("Failed to migrate remote store", "error", err)
		}
		repo := postgres.NewResponsePostgreSQL(db)
		if err := repo.Ping(ctx); err != nil {
			logger.Warn("Remote store did not answer ping", "error", err)
		}
		primary = repo
		if sqlDB, err := db.DB(); err == nil {
			rt.closers = append(rt.closers, sqlDB.Close)
		}
	}

	slots, err := OpenSlotStore(cfg, logger)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, slots.Close)

	eventPublisher, err := cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		// Fallback to mock publisher
		eventPublisher = events.NewMockEventPublisher(logger)
	}
	rt.closers = append(rt.closers, eventPublisher.Close)

	storage := services.NewTieredStorage(cfg.Remote, primary, slots)
	rt.Services = services.NewServiceManager(storage, eventPublisher, rt.Validator, logger)
	return rt, nil
}

// Close releases resources in reverse order of acquisition.
func (rt *Runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
