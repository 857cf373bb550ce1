package services

import (
	"log/slog"

	"github.com/SAP-F-2025/influencer-survey/internal/events"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
)

// ServiceManager hands out the services built over one persistence gateway
type ServiceManager interface {
	Survey() SurveyService
	Stats() StatsService
	Export() ExportService
	Gateway() PersistenceGateway
}

type serviceManager struct {
	gateway PersistenceGateway
	survey  SurveyService
	stats   StatsService
	export  ExportService
}

func NewServiceManager(
	storage *TieredStorage,
	eventPublisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) ServiceManager {
	gateway := NewPersistenceGateway(storage, logger)
	return &serviceManager{
		gateway: gateway,
		survey:  NewSurveyService(gateway, eventPublisher, validator, logger),
		stats:   NewStatsService(gateway, logger),
		export:  NewExportService(gateway, logger),
	}
}

func (m *serviceManager) Survey() SurveyService       { return m.survey }
func (m *serviceManager) Stats() StatsService         { return m.stats }
func (m *serviceManager) Export() ExportService       { return m.export }
func (m *serviceManager) Gateway() PersistenceGateway { return m.gateway }
