package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories"
)

// Fallback slot keys
const (
	DataSlotKey     = "survey_data"
	DraftSlotPrefix = "survey_draft:"
)

func draftSlotKey(responseID string) string {
	return DraftSlotPrefix + responseID
}

// StorageTier names where a completed response ended up.
type StorageTier string

const (
	TierRemote StorageTier = "remote"
	TierLocal  StorageTier = "local"
)

// SaveResult describes the outcome of SaveCompleted.
type SaveResult struct {
	ResponseID   string      `json:"responseId"`
	Tier         StorageTier `json:"tier"`
	DraftCleared bool        `json:"draftCleared"`
}

// PersistenceGateway stores completed responses and drafts. Storage failures
// are logged and absorbed; the only error surfaced is ErrSaveFailed when a
// completed response could not be written anywhere.
type PersistenceGateway interface {
	LoadAll(ctx context.Context) []*models.SurveyResponse
	Snapshot(ctx context.Context) models.SurveyDataStore
	SaveCompleted(ctx context.Context, response *models.SurveyResponse) (SaveResult, error)
	SaveDraft(ctx context.Context, response *models.SurveyResponse)
	LoadDraft(ctx context.Context, responseID string) (*models.SurveyResponse, bool)
	ClearDraft(ctx context.Context, responseID string)
	DraftIDs(ctx context.Context) []string
	ClearAll(ctx context.Context)
	IsPrimaryAvailable() bool
	Status(ctx context.Context) StorageStatus
}

// StorageStatus is an operator view of both tiers. RemoteCount is nil when
// the remote store is not in use or could not be counted.
type StorageStatus struct {
	PrimaryAvailable bool   `json:"primaryAvailable"`
	RemoteCount      *int64 `json:"remoteCount,omitempty"`
	LocalCount       int    `json:"localCount"`
	OpenDrafts       int    `json:"openDrafts"`
}

type persistenceGateway struct {
	storage *TieredStorage
	logger  *ServiceLogger
	now     func() time.Time

	// serializes read-modify-write of the data slot
	mu sync.Mutex
}

// NewPersistenceGateway builds the gateway over both storage tiers.
func NewPersistenceGateway(storage *TieredStorage, logger *slog.Logger) PersistenceGateway {
	return &persistenceGateway{
		storage: storage,
		logger:  NewServiceLogger(logger, LogConfig{Service: "influencer-survey", Component: "persistence"}),
		now:     time.Now,
	}
}

func (g *persistenceGateway) IsPrimaryAvailable() bool {
	return g.storage.IsPrimaryAvailable()
}

func (g *persistenceGateway) Status(ctx context.Context) StorageStatus {
	status := StorageStatus{
		PrimaryAvailable: g.storage.IsPrimaryAvailable(),
		LocalCount:       len(g.readStore(ctx).Responses),
		OpenDrafts:       len(g.DraftIDs(ctx)),
	}
	if status.PrimaryAvailable {
		if n, err := g.storage.Primary().Count(ctx); err != nil {
			g.logger.Logger().WarnContext(ctx, "Failed to count remote responses", "error", err)
		} else {
			status.RemoteCount = &n
		}
	}
	return status
}

func (g *persistenceGateway) LoadAll(ctx context.Context) []*models.SurveyResponse {
	responses, _ := g.load(ctx)
	return responses
}

func (g *persistenceGateway) Snapshot(ctx context.Context) models.SurveyDataStore {
	responses, tier := g.load(ctx)
	snapshot := models.SurveyDataStore{Responses: responses, LastUpdated: g.now().UTC()}
	if tier == TierLocal {
		snapshot.LastUpdated = g.readStore(ctx).LastUpdated
	}
	return snapshot
}

func (g *persistenceGateway) load(ctx context.Context) ([]*models.SurveyResponse, StorageTier) {
	op := g.logger.WithOperation(ctx, "load_all", "")

	if g.storage.IsPrimaryAvailable() {
		responses, err := g.storage.Primary().List(ctx)
		if err == nil {
			if responses == nil {
				responses = []*models.SurveyResponse{}
			}
			op.LogResult(nil, slog.String("tier", string(TierRemote)), slog.Int("count", len(responses)))
			return responses, TierRemote
		}
		g.logger.Logger().WarnContext(ctx, "Remote load failed, using local store", "error", err)
	}

	store := g.readStore(ctx)
	op.LogResult(nil, slog.String("tier", string(TierLocal)), slog.Int("count", len(store.Responses)))
	return store.Responses, TierLocal
}

func (g *persistenceGateway) SaveCompleted(ctx context.Context, response *models.SurveyResponse) (SaveResult, error) {
	op := g.logger.WithOperation(ctx, "save_completed", response.ID)
	result := SaveResult{ResponseID: response.ID}

	if g.storage.IsPrimaryAvailable() {
		if err := g.storage.Primary().Insert(ctx, response); err != nil {
			g.logger.Logger().WarnContext(ctx, "Remote save failed, saving locally",
				"response_id", response.ID, "error", err)
		} else {
			result.Tier = TierRemote
		}
	}

	if result.Tier == "" {
		if err := g.appendLocal(ctx, response); err != nil {
			// Nothing was stored; the draft stays so the respondent can retry.
			err = fmt.Errorf("%w: %v", ErrSaveFailed, err)
			op.LogResult(err)
			return result, err
		}
		result.Tier = TierLocal
	}

	result.DraftCleared = g.removeDraft(ctx, response.ID)
	op.LogResult(nil, slog.String("tier", string(result.Tier)))
	return result, nil
}

func (g *persistenceGateway) appendLocal(ctx context.Context, response *models.SurveyResponse) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	store := g.readStore(ctx)
	store.Responses = append(store.Responses, response)
	store.LastUpdated = g.now().UTC()

	data, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}
	return g.storage.Fallback().Write(ctx, DataSlotKey, data)
}

// readStore returns the fallback collection. Missing or malformed content
// yields the empty store.
func (g *persistenceGateway) readStore(ctx context.Context) models.SurveyDataStore {
	raw, err := g.storage.Fallback().Read(ctx, DataSlotKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrSlotEmpty) {
			g.logger.Logger().WarnContext(ctx, "Failed to read local store", "error", err)
		}
		return models.EmptyDataStore()
	}

	var store models.SurveyDataStore
	if err := json.Unmarshal(raw, &store); err != nil {
		g.logger.Logger().WarnContext(ctx, "Local store is malformed, ignoring it", "error", err)
		return models.EmptyDataStore()
	}
	if store.Responses == nil {
		store.Responses = []*models.SurveyResponse{}
	}
	return store
}

func (g *persistenceGateway) SaveDraft(ctx context.Context, response *models.SurveyResponse) {
	data, err := json.Marshal(response)
	if err == nil {
		err = g.storage.Fallback().Write(ctx, draftSlotKey(response.ID), data)
	}
	if err != nil {
		g.logger.Logger().WarnContext(ctx, "Failed to save draft", "response_id", response.ID, "error", err)
		return
	}
	g.logger.Logger().DebugContext(ctx, "Draft saved", "response_id", response.ID)
}

func (g *persistenceGateway) LoadDraft(ctx context.Context, responseID string) (*models.SurveyResponse, bool) {
	raw, err := g.storage.Fallback().Read(ctx, draftSlotKey(responseID))
	if err != nil {
		if !errors.Is(err, repositories.ErrSlotEmpty) {
			g.logger.Logger().WarnContext(ctx, "Failed to read draft", "response_id", responseID, "error", err)
		}
		return nil, false
	}

	// Drafts may omit any field; missing slices are restored from the template.
	draft := models.NewSurveyResponse(responseID)
	if err := json.Unmarshal(raw, draft); err != nil {
		g.logger.Logger().WarnContext(ctx, "Draft is malformed, ignoring it", "response_id", responseID, "error", err)
		return nil, false
	}
	if draft.ID != responseID {
		g.logger.Logger().WarnContext(ctx, "Draft id does not match its slot", "response_id", responseID, "draft_id", draft.ID)
		return nil, false
	}
	return draft, true
}

func (g *persistenceGateway) ClearDraft(ctx context.Context, responseID string) {
	g.removeDraft(ctx, responseID)
}

func (g *persistenceGateway) removeDraft(ctx context.Context, responseID string) bool {
	if err := g.storage.Fallback().Remove(ctx, draftSlotKey(responseID)); err != nil {
		g.logger.Logger().WarnContext(ctx, "Failed to clear draft", "response_id", responseID, "error", err)
		return false
	}
	return true
}

func (g *persistenceGateway) DraftIDs(ctx context.Context) []string {
	keys, err := g.storage.Fallback().Keys(ctx, DraftSlotPrefix)
	if err != nil {
		g.logger.Logger().WarnContext(ctx, "Failed to list drafts", "error", err)
		return nil
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k[len(DraftSlotPrefix):])
	}
	return ids
}

// ClearAll resets the local collection only. Rows in the remote store are
// left in place.
func (g *persistenceGateway) ClearAll(ctx context.Context) {
	op := g.logger.WithOperation(ctx, "clear_all", "")

	g.mu.Lock()
	defer g.mu.Unlock()

	store := models.EmptyDataStore()
	store.LastUpdated = g.now().UTC()
	data, err := json.Marshal(store)
	if err == nil {
		err = g.storage.Fallback().Write(ctx, DataSlotKey, data)
	}
	if err != nil {
		g.logger.Logger().WarnContext(ctx, "Failed to clear local store", "error", err)
	}

	if g.storage.IsPrimaryAvailable() {
		g.logger.Logger().WarnContext(ctx, "Remote responses are not cleared by clear all")
	}
	op.LogResult(nil, slog.Bool("remote_untouched", g.storage.IsPrimaryAvailable()))
}
