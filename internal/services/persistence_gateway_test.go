package services

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var gatewayClock = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestGateway(remote *MockResponseRepository, slots *flakySlots) *persistenceGateway {
	var storage *TieredStorage
	if remote == nil {
		storage = NewTieredStorage(config.RemoteStoreConfig{}, nil, slots)
	} else {
		storage = NewTieredStorage(configuredRemote, remote, slots)
	}
	g := NewPersistenceGateway(storage, discardLogger()).(*persistenceGateway)
	g.now = fixedClock(gatewayClock)
	return g
}

func newSlots() *flakySlots {
	return &flakySlots{SlotMemory: memory.NewSlotMemory()}
}

func TestTieredStorage_IsPrimaryAvailable(t *testing.T) {
	remote := new(MockResponseRepository)
	slots := memory.NewSlotMemory()

	assert.True(t, NewTieredStorage(configuredRemote, remote, slots).IsPrimaryAvailable())
	assert.False(t, NewTieredStorage(configuredRemote, nil, slots).IsPrimaryAvailable())
	assert.False(t, NewTieredStorage(config.RemoteStoreConfig{URL: config.PlaceholderRemoteURL, Key: "k"}, remote, slots).IsPrimaryAvailable())
}

func TestPersistenceGateway_LoadAllPrefersRemote(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	newest := submittedResponse("b", gatewayClock)
	older := submittedResponse("a", gatewayClock.Add(-time.Hour))
	remote.On("List", mock.Anything).Return([]*models.SurveyResponse{newest, older}, nil)

	// local content must be ignored when the remote answers
	require.NoError(t, g.appendLocal(ctx, submittedResponse("local", gatewayClock)))

	got := g.LoadAll(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	remote.AssertExpectations(t)
}

func TestPersistenceGateway_LoadAllFallsBackOnRemoteFailure(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	remote.On("List", mock.Anything).Return(nil, errRemoteDown)
	require.NoError(t, g.appendLocal(ctx, submittedResponse("local", gatewayClock)))

	got := g.LoadAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "local", got[0].ID)
}

func TestPersistenceGateway_LoadAllUnconfiguredSkipsRemote(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	storage := NewTieredStorage(config.RemoteStoreConfig{}, remote, slots)
	g := NewPersistenceGateway(storage, discardLogger())

	got := g.LoadAll(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	remote.AssertNotCalled(t, "List", mock.Anything)
}

func TestPersistenceGateway_LoadAllMalformedLocal(t *testing.T) {
	ctx := context.Background()
	slots := newSlots()
	g := newTestGateway(nil, slots)

	require.NoError(t, slots.Write(ctx, DataSlotKey, []byte("{not json")))

	got := g.LoadAll(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPersistenceGateway_SaveCompletedRemote(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	r := submittedResponse("r-1", gatewayClock)
	remote.On("Insert", mock.Anything, r).Return(nil)
	g.SaveDraft(ctx, r)

	result, err := g.SaveCompleted(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, TierRemote, result.Tier)
	assert.True(t, result.DraftCleared)

	_, ok := g.LoadDraft(ctx, "r-1")
	assert.False(t, ok, "draft must be cleared after a remote save")
	assert.Empty(t, g.readStore(ctx).Responses, "remote save must not touch the local store")
	remote.AssertExpectations(t)
}

func TestPersistenceGateway_SaveCompletedFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	r := submittedResponse("r-2", gatewayClock)
	remote.On("Insert", mock.Anything, r).Return(errRemoteDown)
	g.SaveDraft(ctx, r)

	result, err := g.SaveCompleted(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, TierLocal, result.Tier)

	_, ok := g.LoadDraft(ctx, "r-2")
	assert.False(t, ok, "draft must be cleared after a local save")

	store := g.readStore(ctx)
	require.Len(t, store.Responses, 1)
	assert.Equal(t, "r-2", store.Responses[0].ID)
	assert.True(t, store.LastUpdated.Equal(gatewayClock))
}

func TestPersistenceGateway_SaveCompletedAppends(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(nil, newSlots())

	for _, id := range []string{"a", "b", "c"} {
		_, err := g.SaveCompleted(ctx, submittedResponse(id, gatewayClock))
		require.NoError(t, err)
	}

	got := g.LoadAll(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestPersistenceGateway_SaveCompletedBothTiersFail(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	r := submittedResponse("r-3", gatewayClock)
	g.SaveDraft(ctx, r)
	slots.failWritePrefix = DataSlotKey
	remote.On("Insert", mock.Anything, r).Return(errRemoteDown)

	_, err := g.SaveCompleted(ctx, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaveFailed)
	assert.True(t, IsStorageFailure(err))

	_, ok := g.LoadDraft(ctx, "r-3")
	assert.True(t, ok, "draft is kept when nothing was saved")
}

func TestPersistenceGateway_Drafts(t *testing.T) {
	ctx := context.Background()
	slots := newSlots()
	g := newTestGateway(nil, slots)

	_, ok := g.LoadDraft(ctx, "missing")
	assert.False(t, ok)

	r := models.NewSurveyResponse("d-1")
	models.SetGender{Value: models.GenderMale}.Apply(r)
	g.SaveDraft(ctx, r)

	models.SetGender{Value: models.GenderFemale}.Apply(r)
	g.SaveDraft(ctx, r)

	draft, ok := g.LoadDraft(ctx, "d-1")
	require.True(t, ok)
	assert.Equal(t, models.GenderFemale, draft.Demographics.Gender, "last write wins")
	assert.Equal(t, []string{"d-1"}, g.DraftIDs(ctx))

	// partial drafts keep template defaults for omitted fields
	require.NoError(t, slots.Write(ctx, draftSlotKey("d-2"), []byte(`{"id":"d-2","demographics":{"gender":"other"}}`)))
	partial, ok := g.LoadDraft(ctx, "d-2")
	require.True(t, ok)
	assert.Equal(t, models.GenderOther, partial.Demographics.Gender)
	assert.NotNil(t, partial.SocialMedia.Platforms)

	require.NoError(t, slots.Write(ctx, draftSlotKey("d-3"), []byte("garbage")))
	_, ok = g.LoadDraft(ctx, "d-3")
	assert.False(t, ok)

	g.ClearDraft(ctx, "d-1")
	_, ok = g.LoadDraft(ctx, "d-1")
	assert.False(t, ok)
}

func TestPersistenceGateway_SaveDraftSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	slots := newSlots()
	slots.failWritePrefix = DraftSlotPrefix
	g := newTestGateway(nil, slots)

	assert.NotPanics(t, func() { g.SaveDraft(ctx, models.NewSurveyResponse("x")) })
	_, ok := g.LoadDraft(ctx, "x")
	assert.False(t, ok)
}

func TestPersistenceGateway_ClearAllLeavesRemote(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	require.NoError(t, g.appendLocal(ctx, submittedResponse("local", gatewayClock)))
	g.ClearAll(ctx)

	assert.Empty(t, g.readStore(ctx).Responses)
	remote.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	remote.AssertNotCalled(t, "List", mock.Anything)
}

func TestPersistenceGateway_Snapshot(t *testing.T) {
	ctx := context.Background()
	slots := newSlots()
	g := newTestGateway(nil, slots)

	stamp := gatewayClock.Add(-2 * time.Hour)
	g.now = fixedClock(stamp)
	_, err := g.SaveCompleted(ctx, submittedResponse("s", stamp))
	require.NoError(t, err)

	g.now = fixedClock(gatewayClock)
	snapshot := g.Snapshot(ctx)
	require.Len(t, snapshot.Responses, 1)
	assert.True(t, snapshot.LastUpdated.Equal(stamp), "local snapshot carries the store timestamp")
}

func TestPersistenceGateway_Status(t *testing.T) {
	ctx := context.Background()
	remote := new(MockResponseRepository)
	slots := newSlots()
	g := newTestGateway(remote, slots)

	require.NoError(t, g.appendLocal(ctx, submittedResponse("local", gatewayClock)))
	g.SaveDraft(ctx, models.NewSurveyResponse("draft-1"))
	remote.On("Count", mock.Anything).Return(int64(7), nil).Once()

	status := g.Status(ctx)
	assert.True(t, status.PrimaryAvailable)
	require.NotNil(t, status.RemoteCount)
	assert.Equal(t, int64(7), *status.RemoteCount)
	assert.Equal(t, 1, status.LocalCount)
	assert.Equal(t, 1, status.OpenDrafts)

	remote.On("Count", mock.Anything).Return(int64(0), errRemoteDown).Once()
	assert.Nil(t, g.Status(ctx).RemoteCount)
	remote.AssertExpectations(t)
}
