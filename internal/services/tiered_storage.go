package services

import (
	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
)

// TieredStorage pairs the primary response store with the local fallback
// slots. The primary tier is consulted first whenever it is available.
type TieredStorage struct {
	primary    repositories.ResponseRepository
	fallback   repositories.SlotRepository
	configured bool
}

// NewTieredStorage builds the storage pair. primary may be nil, in which case
// every call goes to the fallback.
func NewTieredStorage(remote config.RemoteStoreConfig, primary repositories.ResponseRepository, fallback repositories.SlotRepository) *TieredStorage {
	return &TieredStorage{
		primary:    primary,
		fallback:   fallback,
		configured: remote.IsConfigured() && primary != nil,
	}
}

// IsPrimaryAvailable is the cheap precondition checked before every remote call.
func (t *TieredStorage) IsPrimaryAvailable() bool {
	return t.configured
}

func (t *TieredStorage) Primary() repositories.ResponseRepository {
	return t.primary
}

func (t *TieredStorage) Fallback() repositories.SlotRepository {
	return t.fallback
}
